package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/linskybing/portal-go/pkg/i18n"
	"github.com/linskybing/portal-go/pkg/response"
)

type I18nHandler struct {
	Responder
}

func NewI18nHandler(r Responder) *I18nHandler {
	return &I18nHandler{Responder: r}
}

// Catalogue godoc
// @Summary Every UI string in one language
// @Tags i18n
// @Produce json
// @Param lang path string true "fr or en"
// @Success 200 {object} map[string]string
// @Failure 400 {object} response.ErrorResponse "Unsupported language"
// @Router /api/i18n/{lang} [get]
func (h *I18nHandler) Catalogue(c *gin.Context) {
	lang, ok := i18n.ParseLanguage(c.Param("lang"))
	if !ok {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{
			Error: "unsupported language " + c.Param("lang"),
			Code:  string(i18n.KeyErrBadRequest),
		})
		return
	}
	c.Header("Cache-Control", "public, max-age=300")
	c.JSON(http.StatusOK, h.tr.Catalogue(lang))
}
