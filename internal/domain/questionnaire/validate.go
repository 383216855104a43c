package questionnaire

import (
	"github.com/linskybing/portal-go/pkg/validation"
)

// Validate normalizes in and reports every rule it breaks.
func Validate(in *SubmitInput) error {
	in.Normalize()
	if err := validation.Struct(in); err != nil {
		return err
	}
	return nil
}
