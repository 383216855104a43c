package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/linskybing/portal-go/internal/application"
	"github.com/linskybing/portal-go/internal/domain/request"
	"github.com/linskybing/portal-go/pkg/i18n"
	"github.com/linskybing/portal-go/pkg/utils"
)

type DashboardHandler struct {
	Responder
	svc *application.DashboardService
}

func NewDashboardHandler(svc *application.DashboardService, r Responder) *DashboardHandler {
	return &DashboardHandler{Responder: r, svc: svc}
}

// Get godoc
// @Summary Customer dashboard
// @Description Status, preview link, countdown and progress tracker, recomputed on every call.
// @Tags dashboard
// @Produce json
// @Security BearerAuth
// @Success 200 {object} request.Dashboard
// @Router /api/dashboard [get]
func (h *DashboardHandler) Get(c *gin.Context) {
	userID, ok := h.userID(c)
	if !ok {
		return
	}
	d, err := h.svc.Get(userID, utils.GetLanguage(c))
	if err != nil {
		h.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, d)
}

type approvalResponse struct {
	Message   string            `json:"message"`
	Dashboard request.Dashboard `json:"dashboard"`
}

// ApprovePreview godoc
// @Summary Approve the current preview
// @Tags dashboard
// @Produce json
// @Security BearerAuth
// @Success 200 {object} approvalResponse
// @Failure 409 {object} response.ErrorResponse "No preview to approve"
// @Router /api/dashboard/approve [post]
func (h *DashboardHandler) ApprovePreview(c *gin.Context) {
	userID, ok := h.userID(c)
	if !ok {
		return
	}
	d, err := h.svc.ApprovePreview(userID, utils.GetLanguage(c))
	if err != nil {
		h.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, approvalResponse{Message: h.text(c, i18n.KeyPreviewApproved), Dashboard: d})
}
