package utils

import (
	"github.com/gin-gonic/gin"
	"github.com/linskybing/portal-go/pkg/i18n"
)

const LanguageKey = "lang"

// GetLanguage returns the language resolved for the request, French by default.
func GetLanguage(c *gin.Context) i18n.Language {
	if v, ok := c.Get(LanguageKey); ok {
		if lang, ok := v.(i18n.Language); ok {
			return lang
		}
	}
	return i18n.FR
}
