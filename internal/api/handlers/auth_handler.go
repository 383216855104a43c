package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/linskybing/portal-go/internal/application"
	"github.com/linskybing/portal-go/internal/config"
	"github.com/linskybing/portal-go/internal/domain/user"
	"github.com/linskybing/portal-go/pkg/i18n"
	"github.com/linskybing/portal-go/pkg/response"
	"github.com/linskybing/portal-go/pkg/utils"
)

const tokenCookie = "token"

type AuthHandler struct {
	Responder
	svc *application.IdentityService
}

func NewAuthHandler(svc *application.IdentityService, r Responder) *AuthHandler {
	return &AuthHandler{Responder: r, svc: svc}
}

// SignUp godoc
// @Summary Create a customer account
// @Tags auth
// @Accept json
// @Produce json
// @Param input body user.SignUpInput true "Account"
// @Success 201 {object} user.Profile
// @Failure 400 {object} response.ErrorResponse "Invalid input"
// @Failure 409 {object} response.ErrorResponse "Email already registered"
// @Router /api/auth/signup [post]
func (h *AuthHandler) SignUp(c *gin.Context) {
	var input user.SignUpInput
	if err := c.ShouldBindJSON(&input); err != nil {
		h.BadRequest(c, err)
		return
	}

	profile, err := h.svc.SignUp(input)
	if err != nil {
		h.Error(c, err)
		return
	}
	c.JSON(http.StatusCreated, profile)
}

// SignIn godoc
// @Summary Sign in with email and password
// @Tags auth
// @Accept json
// @Produce json
// @Param input body user.SignInInput true "Credentials"
// @Success 200 {object} response.TokenResponse
// @Failure 400 {object} response.ErrorResponse "Invalid input"
// @Failure 401 {object} response.ErrorResponse "Invalid email or password"
// @Failure 429 {object} response.ErrorResponse "Too many attempts"
// @Router /api/auth/signin [post]
func (h *AuthHandler) SignIn(c *gin.Context) {
	var input user.SignInInput
	if err := c.ShouldBindJSON(&input); err != nil {
		h.BadRequest(c, err)
		return
	}

	session, err := h.svc.SignIn(input)
	if err != nil {
		h.Error(c, err)
		return
	}

	maxAge := int(time.Until(session.ExpiresAt).Seconds())
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(tokenCookie, session.Token, maxAge, "/", "", config.IsProduction, true)

	c.JSON(http.StatusOK, response.TokenResponse{
		Token:  session.Token,
		UserID: session.User.ID,
		Email:  session.User.Email,
		Name:   session.User.Name,
		Role:   string(session.User.Role),
	})
}

// SignOut godoc
// @Summary Revoke the current session
// @Tags auth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} response.MessageResponse
// @Failure 401 {object} response.ErrorResponse
// @Router /api/auth/signout [post]
func (h *AuthHandler) SignOut(c *gin.Context) {
	claims, err := utils.GetClaimsFromContext(c)
	if err != nil {
		h.Error(c, utils.ErrNoClaims)
		return
	}
	if err := h.svc.SignOut(c.Request.Context(), claims); err != nil {
		h.Error(c, err)
		return
	}

	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(tokenCookie, "", -1, "/", "", config.IsProduction, true)
	h.Message(c, http.StatusOK, i18n.KeySignedOut)
}

// Session godoc
// @Summary Current user and profile
// @Tags auth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} user.SessionDTO
// @Failure 401 {object} response.ErrorResponse
// @Router /api/auth/session [get]
func (h *AuthHandler) Session(c *gin.Context) {
	claims, err := utils.GetClaimsFromContext(c)
	if err != nil {
		h.Error(c, utils.ErrNoClaims)
		return
	}
	session, err := h.svc.GetCurrentSession(claims)
	if err != nil {
		h.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, session)
}

// GetProfile godoc
// @Summary Caller's profile
// @Tags profile
// @Produce json
// @Security BearerAuth
// @Success 200 {object} user.Profile
// @Router /api/profile [get]
func (h *AuthHandler) GetProfile(c *gin.Context) {
	userID, ok := h.userID(c)
	if !ok {
		return
	}
	profile, err := h.svc.GetProfile(userID)
	if err != nil {
		h.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, profile)
}

type profileResponse struct {
	Message string       `json:"message"`
	Profile user.Profile `json:"profile"`
}

// UpdateProfile godoc
// @Summary Update name or phone
// @Tags profile
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param input body user.UpdateProfileInput true "Profile fields"
// @Success 200 {object} profileResponse
// @Failure 400 {object} response.ErrorResponse
// @Router /api/profile [put]
func (h *AuthHandler) UpdateProfile(c *gin.Context) {
	userID, ok := h.userID(c)
	if !ok {
		return
	}
	var input user.UpdateProfileInput
	if err := c.ShouldBindJSON(&input); err != nil {
		h.BadRequest(c, err)
		return
	}

	profile, err := h.svc.UpdateProfile(userID, input)
	if err != nil {
		h.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, profileResponse{Message: h.text(c, i18n.KeyProfileUpdated), Profile: profile})
}
