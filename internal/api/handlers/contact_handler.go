package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/linskybing/portal-go/internal/application"
	"github.com/linskybing/portal-go/internal/domain/contact"
	"github.com/linskybing/portal-go/pkg/i18n"
)

type ContactHandler struct {
	Responder
	svc *application.ContactService
}

func NewContactHandler(svc *application.ContactService, r Responder) *ContactHandler {
	return &ContactHandler{Responder: r, svc: svc}
}

// Create godoc
// @Summary Leave a message for the team
// @Tags contact
// @Accept json
// @Produce json
// @Param input body contact.CreateInquiryInput true "Message"
// @Success 201 {object} response.MessageResponse
// @Failure 400 {object} response.ErrorResponse
// @Failure 429 {object} response.ErrorResponse
// @Router /api/contact [post]
func (h *ContactHandler) Create(c *gin.Context) {
	var input contact.CreateInquiryInput
	if err := c.ShouldBindJSON(&input); err != nil {
		h.BadRequest(c, err)
		return
	}
	if _, err := h.svc.Create(input); err != nil {
		h.Error(c, err)
		return
	}
	h.Message(c, http.StatusCreated, i18n.KeyContactReceived)
}
