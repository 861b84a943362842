package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/devlogkr/blog_backend/internal/core/ports/services"
	"github.com/devlogkr/blog_backend/internal/dto"
	"github.com/devlogkr/blog_backend/internal/middleware"
	"github.com/gin-gonic/gin"
)

// AuthHandler handles authentication related requests.
type AuthHandler struct {
	userService   portssvc.UserSvcFacade
	tokenService  portssvc.TokenSvcFacade
	googleService portssvc.GoogleAuthSvcFacade
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(us portssvc.UserSvcFacade, ts portssvc.TokenSvcFacade, gs portssvc.GoogleAuthSvcFacade) *AuthHandler {
	return &AuthHandler{
		userService:   us,
		tokenService:  ts,
		googleService: gs,
	}
}

// Signup godoc
// @Summary Register a new account
// @Description Creates a user from email, password and display name and returns the user with a bearer token.
// @Tags auth
// @Accept json
// @Produce json
// @Param signup body dto.SignupRequest true "Signup Info"
// @Success 201 {object} dto.Envelope{data=dto.AuthResponse}
// @Failure 400 {object} dto.Envelope
// @Failure 409 {object} dto.Envelope
// @Router /auth/signup [post]
func (h *AuthHandler) Signup(c *gin.Context) {
	ctx := c.Request.Context()

	var req dto.SignupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindingError(c, err)
		return
	}

	user, err := h.userService.Signup(ctx, req)
	if err != nil {
		respondError(c, err)
		return
	}

	token, _, err := h.tokenService.GenerateAccessToken(ctx, user)
	if err != nil {
		middleware.GetLoggerFromCtx(ctx).Error("Failed to sign token after signup", slog.String("error", err.Error()))
		respondError(c, err)
		return
	}

	respond(c, http.StatusCreated, "account created", dto.NewAuthResponse(user, token))
}

// Login godoc
// @Summary User login
// @Description Authenticates email and password and returns the user with a bearer token.
// @Tags auth
// @Accept json
// @Produce json
// @Param login body dto.LoginRequest true "Login Credentials"
// @Success 200 {object} dto.Envelope{data=dto.AuthResponse}
// @Failure 400 {object} dto.Envelope
// @Failure 401 {object} dto.Envelope
// @Router /auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	ctx := c.Request.Context()

	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindingError(c, err)
		return
	}

	user, err := h.userService.Authenticate(ctx, req.Email, req.Password)
	if err != nil {
		respondError(c, err)
		return
	}

	token, _, err := h.tokenService.GenerateAccessToken(ctx, user)
	if err != nil {
		middleware.GetLoggerFromCtx(ctx).Error("Failed to sign token after login", slog.String("error", err.Error()))
		respondError(c, err)
		return
	}

	respond(c, http.StatusOK, "login successful", dto.NewAuthResponse(user, token))
}

// GoogleLogin godoc
// @Summary Login with a Google credential
// @Description Verifies a Google Identity Services ID token, creates or links the account and returns the user with a bearer token.
// @Tags auth
// @Accept json
// @Produce json
// @Param credential body dto.GoogleLoginRequest true "Google ID token"
// @Success 200 {object} dto.Envelope{data=dto.AuthResponse}
// @Failure 400 {object} dto.Envelope
// @Failure 401 {object} dto.Envelope
// @Router /auth/google [post]
func (h *AuthHandler) GoogleLogin(c *gin.Context) {
	ctx := c.Request.Context()
	logger := middleware.GetLoggerFromCtx(ctx)

	var req dto.GoogleLoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindingError(c, err)
		return
	}

	payload, err := h.googleService.ValidateGoogleIDToken(ctx, req.Credential)
	if err != nil {
		logger.Warn("Google credential validation failed", slog.String("error", err.Error()))
		respondError(c, err)
		return
	}

	email, _ := payload.Claims["email"].(string)
	name, _ := payload.Claims["name"].(string)
	pictureURL, _ := payload.Claims["picture"].(string)

	user, err := h.userService.CreateOAuthUser(ctx, name, email, payload.Subject, pictureURL)
	if err != nil {
		logger.Error("Failed to create or link google user", slog.String("error", err.Error()))
		respondError(c, err)
		return
	}

	token, _, err := h.tokenService.GenerateAccessToken(ctx, user)
	if err != nil {
		logger.Error("Failed to sign token after google login", slog.String("error", err.Error()))
		respondError(c, err)
		return
	}

	respond(c, http.StatusOK, "login successful", dto.NewAuthResponse(user, token))
}

// Me godoc
// @Summary Current user profile
// @Description Returns the profile of the authenticated user.
// @Tags auth
// @Produce json
// @Success 200 {object} dto.Envelope{data=dto.UserResponse}
// @Failure 401 {object} dto.Envelope
// @Failure 404 {object} dto.Envelope
// @Security BearerAuth
// @Router /auth/me [get]
func (h *AuthHandler) Me(c *gin.Context) {
	ctx := c.Request.Context()

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, dto.NewErrorResponse("authentication required"))
		return
	}

	user, err := h.userService.GetUserByID(ctx, userID)
	if err != nil {
		respondError(c, err)
		return
	}

	respond(c, http.StatusOK, "profile fetched", dto.ToUserResponse(user))
}
