package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/linskybing/portal-go/pkg/i18n"
	"github.com/linskybing/portal-go/pkg/utils"
)

// Language resolves the request language from ?lang=, the lang cookie,
// then Accept-Language, falling back to def.
func Language(def i18n.Language) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(utils.LanguageKey, resolveLanguage(c, def))
		c.Next()
	}
}

func resolveLanguage(c *gin.Context, def i18n.Language) i18n.Language {
	if lang, ok := i18n.ParseLanguage(c.Query("lang")); ok {
		return lang
	}
	if cookie, err := c.Cookie("lang"); err == nil {
		if lang, ok := i18n.ParseLanguage(cookie); ok {
			return lang
		}
	}
	for _, part := range strings.Split(c.GetHeader("Accept-Language"), ",") {
		tag, _, _ := strings.Cut(part, ";")
		if lang, ok := i18n.ParseLanguage(tag); ok {
			return lang
		}
	}
	return def
}
