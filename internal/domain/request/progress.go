package request

import "github.com/linskybing/portal-go/pkg/i18n"

type StepState string

const (
	StepComplete StepState = "complete"
	StepActive   StepState = "active"
	StepPending  StepState = "pending"
)

// Step i of the tracker corresponds to CustomerStatuses[i].
var stepLabels = []i18n.Key{
	i18n.KeyStepForm,
	i18n.KeyStepBuild,
	i18n.KeyStepPreview,
	i18n.KeyStepApproval,
	i18n.KeyStepPayment,
}

func RenderStep(stepIndex int, current CustomerStatus) StepState {
	rank := current.Rank()
	switch {
	case stepIndex < rank:
		return StepComplete
	case stepIndex == rank:
		return StepActive
	default:
		return StepPending
	}
}

type TrackerStep struct {
	Index int            `json:"index"`
	Key   CustomerStatus `json:"key"`
	Label string         `json:"label"`
	State StepState      `json:"state"`
}

func Tracker(current CustomerStatus, tr *i18n.Translator, lang i18n.Language) []TrackerStep {
	steps := make([]TrackerStep, len(CustomerStatuses))
	for i, s := range CustomerStatuses {
		steps[i] = TrackerStep{
			Index: i,
			Key:   s,
			Label: tr.Translate(stepLabels[i], lang),
			State: RenderStep(i, current),
		}
	}
	return steps
}
