package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/linskybing/portal-go/internal/application"
	"github.com/linskybing/portal-go/internal/domain/contact"
	"github.com/linskybing/portal-go/internal/domain/request"
	"github.com/linskybing/portal-go/internal/domain/user"
	"github.com/linskybing/portal-go/pkg/i18n"
	"github.com/linskybing/portal-go/pkg/response"
	"github.com/linskybing/portal-go/pkg/utils"
)

// AdminHandler serves the staff console.
type AdminHandler struct {
	Responder
	requests *application.RequestService
	identity *application.IdentityService
	contacts *application.ContactService
}

func NewAdminHandler(requests *application.RequestService, identity *application.IdentityService, contacts *application.ContactService, r Responder) *AdminHandler {
	return &AdminHandler{Responder: r, requests: requests, identity: identity, contacts: contacts}
}

type requestActionResponse struct {
	Message string            `json:"message"`
	Request request.AdminView `json:"request"`
}

// ListRequests godoc
// @Summary List website requests, newest first
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param status query string false "Staff status filter"
// @Param page query int false "Page" default(1)
// @Param limit query int false "Page size" default(20)
// @Success 200 {object} response.ListResponse[request.AdminView]
// @Failure 400 {object} response.ErrorResponse "Unknown status"
// @Failure 403 {object} response.ErrorResponse
// @Router /api/admin/requests [get]
func (h *AdminHandler) ListRequests(c *gin.Context) {
	page, limit := utils.ParsePaging(c)
	items, total, err := h.requests.List(c.Query("status"), page, limit, utils.GetLanguage(c))
	if err != nil {
		h.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, response.ListResponse[request.AdminView]{Items: items, Total: total, Page: page, Limit: limit})
}

// GetRequest godoc
// @Summary Request detail
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param id path int true "Request ID"
// @Success 200 {object} request.AdminView
// @Failure 404 {object} response.ErrorResponse
// @Router /api/admin/requests/{id} [get]
func (h *AdminHandler) GetRequest(c *gin.Context) {
	id, ok := h.idParam(c, "id")
	if !ok {
		return
	}
	v, err := h.requests.Get(id, utils.GetLanguage(c))
	if err != nil {
		h.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, v)
}

// SetStatus godoc
// @Summary Override the staff status
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Request ID"
// @Param input body request.SetStatusInput true "Status"
// @Success 200 {object} requestActionResponse
// @Failure 400 {object} response.ErrorResponse "Invalid status"
// @Failure 404 {object} response.ErrorResponse
// @Router /api/admin/requests/{id}/status [put]
func (h *AdminHandler) SetStatus(c *gin.Context) {
	id, ok := h.idParam(c, "id")
	if !ok {
		return
	}
	var input request.SetStatusInput
	if err := c.ShouldBindJSON(&input); err != nil {
		h.BadRequest(c, err)
		return
	}

	v, err := h.requests.SetStatus(id, input.Status, utils.GetLanguage(c))
	if err != nil {
		h.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, requestActionResponse{Message: h.text(c, i18n.KeyStatusUpdated), Request: v})
}

// SetPreviewLink godoc
// @Summary Save the preview link and mark the preview sent
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Request ID"
// @Param input body request.SetPreviewLinkInput true "Preview link"
// @Success 200 {object} requestActionResponse
// @Failure 400 {object} response.ErrorResponse "Empty or invalid link"
// @Failure 404 {object} response.ErrorResponse
// @Router /api/admin/requests/{id}/preview [put]
func (h *AdminHandler) SetPreviewLink(c *gin.Context) {
	id, ok := h.idParam(c, "id")
	if !ok {
		return
	}
	var input request.SetPreviewLinkInput
	if err := c.ShouldBindJSON(&input); err != nil {
		h.BadRequest(c, err)
		return
	}

	v, err := h.requests.SetPreviewLink(id, input.PreviewLink, utils.GetLanguage(c))
	if err != nil {
		h.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, requestActionResponse{Message: h.text(c, i18n.KeyPreviewSaved), Request: v})
}

// ExportQuestionnaire godoc
// @Summary Download the intake of a request
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param id path int true "Request ID"
// @Success 200 {object} questionnaire.Export
// @Failure 404 {object} response.ErrorResponse
// @Router /api/admin/requests/{id}/questionnaire [get]
func (h *AdminHandler) ExportQuestionnaire(c *gin.Context) {
	id, ok := h.idParam(c, "id")
	if !ok {
		return
	}
	out, err := h.requests.Export(c.Request.Context(), id, utils.GetLanguage(c))
	if err != nil {
		h.Error(c, err)
		return
	}
	c.Header("Content-Disposition", `attachment; filename="questionnaire.json"`)
	c.JSON(http.StatusOK, out)
}

// Stats godoc
// @Summary Console counters
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Success 200 {object} request.Stats
// @Router /api/admin/stats [get]
func (h *AdminHandler) Stats(c *gin.Context) {
	stats, err := h.requests.Stats()
	if err != nil {
		h.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, stats)
}

// ListUsers godoc
// @Summary Accounts, optionally by role
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param role query string false "customer, admin or super_admin"
// @Success 200 {array} user.UserDTO
// @Router /api/admin/users [get]
func (h *AdminHandler) ListUsers(c *gin.Context) {
	users, err := h.identity.ListUsers(c.Query("role"))
	if err != nil {
		h.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, users)
}

type roleResponse struct {
	Message string       `json:"message"`
	User    user.UserDTO `json:"user"`
}

// UpdateRole godoc
// @Summary Change a user's role
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "User ID"
// @Param input body user.UpdateRoleInput true "Role"
// @Success 200 {object} roleResponse
// @Failure 403 {object} response.ErrorResponse "Super admin only, or self demotion"
// @Router /api/admin/users/{id}/role [put]
func (h *AdminHandler) UpdateRole(c *gin.Context) {
	actorID, ok := h.userID(c)
	if !ok {
		return
	}
	id, ok := h.idParam(c, "id")
	if !ok {
		return
	}
	var input user.UpdateRoleInput
	if err := c.ShouldBindJSON(&input); err != nil {
		h.BadRequest(c, err)
		return
	}

	u, err := h.identity.UpdateRole(actorID, id, input.Role)
	if err != nil {
		h.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, roleResponse{Message: h.text(c, i18n.KeyRoleUpdated), User: u})
}

// ListContacts godoc
// @Summary Contact inquiries
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param status query string false "new, read or replied"
// @Param page query int false "Page" default(1)
// @Param limit query int false "Page size" default(20)
// @Success 200 {object} response.ListResponse[contact.Inquiry]
// @Router /api/admin/contacts [get]
func (h *AdminHandler) ListContacts(c *gin.Context) {
	page, limit := utils.ParsePaging(c)
	items, total, err := h.contacts.List(c.Query("status"), page, limit)
	if err != nil {
		h.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, response.ListResponse[contact.Inquiry]{Items: items, Total: total, Page: page, Limit: limit})
}

// UpdateContactStatus godoc
// @Summary Mark an inquiry read or replied
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Inquiry ID"
// @Param input body contact.UpdateStatusInput true "Status"
// @Success 200 {object} response.MessageResponse
// @Failure 404 {object} response.ErrorResponse
// @Router /api/admin/contacts/{id}/status [put]
func (h *AdminHandler) UpdateContactStatus(c *gin.Context) {
	id, ok := h.idParam(c, "id")
	if !ok {
		return
	}
	var input contact.UpdateStatusInput
	if err := c.ShouldBindJSON(&input); err != nil {
		h.BadRequest(c, err)
		return
	}
	if err := h.contacts.UpdateStatus(id, input.Status); err != nil {
		h.Error(c, err)
		return
	}
	h.Message(c, http.StatusOK, i18n.KeyInquiryUpdated)
}
