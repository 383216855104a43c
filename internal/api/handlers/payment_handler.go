package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/linskybing/portal-go/internal/application"
	"github.com/linskybing/portal-go/internal/domain/payment"
	"github.com/linskybing/portal-go/pkg/i18n"
	"github.com/linskybing/portal-go/pkg/utils"
)

type PaymentHandler struct {
	Responder
	svc *application.PaymentService
}

func NewPaymentHandler(svc *application.PaymentService, r Responder) *PaymentHandler {
	return &PaymentHandler{Responder: r, svc: svc}
}

// Catalog godoc
// @Summary Packages and payment methods
// @Tags payments
// @Produce json
// @Param lang query string false "fr or en"
// @Success 200 {object} payment.CatalogDTO
// @Router /api/packages [get]
func (h *PaymentHandler) Catalog(c *gin.Context) {
	c.JSON(http.StatusOK, h.svc.Catalog(utils.GetLanguage(c)))
}

// Confirm godoc
// @Summary Pay for the website
// @Description Allowed once a preview is available. Marks the request paid.
// @Tags payments
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param input body payment.ConfirmInput true "Package and method"
// @Success 201 {object} payment.Receipt
// @Failure 400 {object} response.ErrorResponse
// @Failure 409 {object} response.ErrorResponse "Payment not available yet"
// @Router /api/payments [post]
func (h *PaymentHandler) Confirm(c *gin.Context) {
	userID, ok := h.userID(c)
	if !ok {
		return
	}
	var input payment.ConfirmInput
	if err := c.ShouldBindJSON(&input); err != nil {
		h.BadRequest(c, err)
		return
	}

	p, err := h.svc.Confirm(c.Request.Context(), userID, input)
	if err != nil {
		h.Error(c, err)
		return
	}
	c.JSON(http.StatusCreated, payment.Receipt{Payment: p, Message: h.text(c, i18n.KeyPaymentConfirmed)})
}

// List godoc
// @Summary Caller's payments
// @Tags payments
// @Produce json
// @Security BearerAuth
// @Success 200 {array} payment.Payment
// @Router /api/payments [get]
func (h *PaymentHandler) List(c *gin.Context) {
	userID, ok := h.userID(c)
	if !ok {
		return
	}
	items, err := h.svc.List(userID)
	if err != nil {
		h.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, items)
}
