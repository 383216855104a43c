package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/linskybing/portal-go/internal/application"
	"github.com/linskybing/portal-go/internal/domain/request"
	"github.com/linskybing/portal-go/pkg/i18n"
	"github.com/linskybing/portal-go/pkg/logger"
	"github.com/linskybing/portal-go/pkg/response"
	"github.com/linskybing/portal-go/pkg/utils"
	"github.com/linskybing/portal-go/pkg/validation"
	"gorm.io/gorm"
)

// failure is how one known error is rendered. Detail keeps err.Error() as the message.
type failure struct {
	status int
	key    i18n.Key
	detail bool
}

var failures = []struct {
	err error
	failure
}{
	{utils.ErrNoClaims, failure{http.StatusUnauthorized, i18n.KeyErrUnauthorized, false}},
	{application.ErrInvalidCredentials, failure{http.StatusUnauthorized, i18n.KeyErrInvalidCredentials, false}},
	{application.ErrEmailTaken, failure{http.StatusConflict, i18n.KeyErrEmailTaken, false}},
	{application.ErrSubmissionInFlight, failure{http.StatusConflict, i18n.KeyErrSubmissionInFlight, false}},
	{request.ErrActiveRequestExists, failure{http.StatusConflict, i18n.KeyErrActiveRequestExists, false}},
	{application.ErrPaymentNotAllowed, failure{http.StatusConflict, i18n.KeyErrPaymentNotAllowed, false}},
	{application.ErrPaymentInFlight, failure{http.StatusConflict, i18n.KeyErrPaymentInFlight, false}},
	{request.ErrApprovalNotAllowed, failure{http.StatusConflict, i18n.KeyErrApprovalNotAllowed, false}},
	{application.ErrCannotDemoteSelf, failure{http.StatusForbidden, i18n.KeyErrForbidden, true}},
	{request.ErrInvalidStatus, failure{http.StatusBadRequest, i18n.KeyErrBadRequest, true}},
	{request.ErrEmptyPreviewLink, failure{http.StatusBadRequest, i18n.KeyErrBadRequest, true}},
	{request.ErrInvalidPreviewLink, failure{http.StatusBadRequest, i18n.KeyErrBadRequest, true}},
	{application.ErrInvalidRole, failure{http.StatusBadRequest, i18n.KeyErrBadRequest, true}},
	{application.ErrInvalidInquiryStatus, failure{http.StatusBadRequest, i18n.KeyErrBadRequest, true}},
	{application.ErrUnknownPackage, failure{http.StatusBadRequest, i18n.KeyErrBadRequest, true}},
	{request.ErrRequestNotFound, failure{http.StatusNotFound, i18n.KeyErrNotFound, false}},
	{application.ErrUserNotFound, failure{http.StatusNotFound, i18n.KeyErrNotFound, false}},
	{application.ErrInquiryNotFound, failure{http.StatusNotFound, i18n.KeyErrNotFound, false}},
	{application.ErrAttachmentNotFound, failure{http.StatusNotFound, i18n.KeyErrNotFound, false}},
	{application.ErrQuestionnaireAbsent, failure{http.StatusNotFound, i18n.KeyErrNotFound, false}},
	{gorm.ErrRecordNotFound, failure{http.StatusNotFound, i18n.KeyErrNotFound, false}},
	{application.ErrStorageUnavailable, failure{http.StatusServiceUnavailable, i18n.KeyErrUnavailable, false}},
}

// Responder renders localized success messages and failures.
type Responder struct {
	tr  *i18n.Translator
	log logger.Logger
}

func NewResponder(tr *i18n.Translator, log logger.Logger) Responder {
	if log == nil {
		log = logger.NewNop()
	}
	return Responder{tr: tr, log: log}
}

func (r Responder) text(c *gin.Context, key i18n.Key) string {
	return r.tr.Translate(key, utils.GetLanguage(c))
}

// Error maps err to a status code and a translated body. Unknown errors are
// logged and answered with a generic 500.
func (r Responder) Error(c *gin.Context, err error) {
	if verrs, ok := validation.FromError(err); ok {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{
			Error:  r.text(c, i18n.KeyErrValidation),
			Code:   string(i18n.KeyErrValidation),
			Fields: verrs.Localize(r.tr, utils.GetLanguage(c)),
		})
		return
	}

	for _, f := range failures {
		if !errors.Is(err, f.err) {
			continue
		}
		msg := r.text(c, f.key)
		if f.detail {
			msg = err.Error()
		}
		c.JSON(f.status, response.ErrorResponse{Error: msg, Code: string(f.key)})
		return
	}

	r.log.Error("request failed",
		logger.String("method", c.Request.Method),
		logger.String("path", c.FullPath()),
		logger.Error(err),
	)
	c.JSON(http.StatusInternalServerError, response.ErrorResponse{
		Error: r.text(c, i18n.KeyErrGeneric),
		Code:  string(i18n.KeyErrGeneric),
	})
}

// BadRequest answers malformed bodies and params.
func (r Responder) BadRequest(c *gin.Context, err error) {
	if _, ok := validation.FromError(err); ok {
		r.Error(c, err)
		return
	}
	c.JSON(http.StatusBadRequest, response.ErrorResponse{
		Error: r.text(c, i18n.KeyErrBadRequest),
		Code:  string(i18n.KeyErrBadRequest),
	})
}

func (r Responder) Message(c *gin.Context, status int, key i18n.Key) {
	c.JSON(status, response.MessageResponse{Message: r.text(c, key)})
}

// userID aborts with 401 when the caller has no session.
func (r Responder) userID(c *gin.Context) (uint, bool) {
	id, err := utils.GetUserIDFromContext(c)
	if err != nil {
		r.Error(c, utils.ErrNoClaims)
		return 0, false
	}
	return id, true
}

func (r Responder) idParam(c *gin.Context, name string) (uint, bool) {
	id, err := utils.ParseIDParam(c, name)
	if err != nil || id == 0 {
		r.BadRequest(c, err)
		return 0, false
	}
	return id, true
}
