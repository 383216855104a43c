package handlers

import (
	"net/http"
	"path/filepath"

	"github.com/gin-gonic/gin"
	"github.com/linskybing/portal-go/internal/application"
	"github.com/linskybing/portal-go/internal/domain/questionnaire"
	"github.com/linskybing/portal-go/pkg/i18n"
	"github.com/linskybing/portal-go/pkg/utils"
)

type QuestionnaireHandler struct {
	Responder
	svc *application.QuestionnaireService
}

func NewQuestionnaireHandler(svc *application.QuestionnaireService, r Responder) *QuestionnaireHandler {
	return &QuestionnaireHandler{Responder: r, svc: svc}
}

// Submit godoc
// @Summary Submit the website questionnaire
// @Description Creates the website request with its deadline. One active request per customer.
// @Tags questionnaire
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param input body questionnaire.SubmitInput true "Questionnaire"
// @Success 201 {object} questionnaire.Receipt
// @Failure 400 {object} response.ErrorResponse "Field errors"
// @Failure 409 {object} response.ErrorResponse "Submission in flight or active request"
// @Router /api/questionnaire [post]
func (h *QuestionnaireHandler) Submit(c *gin.Context) {
	userID, ok := h.userID(c)
	if !ok {
		return
	}
	var input questionnaire.SubmitInput
	if err := c.ShouldBindJSON(&input); err != nil {
		h.BadRequest(c, err)
		return
	}

	receipt, err := h.svc.Submit(c.Request.Context(), userID, input)
	if err != nil {
		h.Error(c, err)
		return
	}

	lang := utils.GetLanguage(c)
	receipt.Message = h.tr.Translate(i18n.KeySubmitted, lang)
	if receipt.DomainFeeXOF > 0 {
		receipt.DomainFeeNote = h.tr.Format(i18n.KeyDomainFeeNotice, lang, receipt.DomainFeeXOF)
	}
	c.JSON(http.StatusCreated, receipt)
}

// Status godoc
// @Summary Whether the caller submitted, and what
// @Tags questionnaire
// @Produce json
// @Security BearerAuth
// @Success 200 {object} questionnaire.Status
// @Router /api/questionnaire [get]
func (h *QuestionnaireHandler) Status(c *gin.Context) {
	userID, ok := h.userID(c)
	if !ok {
		return
	}
	status, err := h.svc.Status(userID)
	if err != nil {
		h.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, status)
}

// UploadAttachment godoc
// @Summary Stage a file for the next submission
// @Tags questionnaire
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param file formData file true "Attachment"
// @Success 201 {object} questionnaire.Attachment
// @Failure 400 {object} response.ErrorResponse
// @Failure 503 {object} response.ErrorResponse "Storage not configured"
// @Router /api/questionnaire/attachments [post]
func (h *QuestionnaireHandler) UploadAttachment(c *gin.Context) {
	userID, ok := h.userID(c)
	if !ok {
		return
	}
	fh, err := c.FormFile("file")
	if err != nil {
		h.BadRequest(c, err)
		return
	}
	f, err := fh.Open()
	if err != nil {
		h.BadRequest(c, err)
		return
	}
	defer f.Close()

	contentType := fh.Header.Get("Content-Type")
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	a, err := h.svc.UploadAttachment(c.Request.Context(), userID, filepath.Base(fh.Filename), contentType, f, fh.Size)
	if err != nil {
		h.Error(c, err)
		return
	}
	c.JSON(http.StatusCreated, a)
}

// ListAttachments godoc
// @Summary Files staged for the next submission
// @Tags questionnaire
// @Produce json
// @Security BearerAuth
// @Success 200 {array} questionnaire.Attachment
// @Router /api/questionnaire/attachments [get]
func (h *QuestionnaireHandler) ListAttachments(c *gin.Context) {
	userID, ok := h.userID(c)
	if !ok {
		return
	}
	items, err := h.svc.ListAttachments(userID)
	if err != nil {
		h.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, items)
}

// RemoveAttachment godoc
// @Summary Remove a staged file
// @Tags questionnaire
// @Produce json
// @Security BearerAuth
// @Param id path int true "Attachment ID"
// @Success 200 {object} response.MessageResponse
// @Failure 404 {object} response.ErrorResponse
// @Router /api/questionnaire/attachments/{id} [delete]
func (h *QuestionnaireHandler) RemoveAttachment(c *gin.Context) {
	userID, ok := h.userID(c)
	if !ok {
		return
	}
	id, ok := h.idParam(c, "id")
	if !ok {
		return
	}
	if err := h.svc.RemoveAttachment(c.Request.Context(), userID, id); err != nil {
		h.Error(c, err)
		return
	}
	h.Message(c, http.StatusOK, i18n.KeyAttachmentRemoved)
}
