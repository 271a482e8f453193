package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"modelhub-server/internal/domain/user"
	"modelhub-server/internal/infrastructure/auth"
	"modelhub-server/internal/interfaces/httpserver/middlewares"
	"modelhub-server/internal/interfaces/httpserver/requests"
	"modelhub-server/internal/interfaces/httpserver/responses"
	"modelhub-server/internal/utils/platformerrors"
)

// AuthHandler exposes account registration and token endpoints.
type AuthHandler struct {
	users  *user.Service
	tokens *auth.TokenService
	log    zerolog.Logger
}

func NewAuthHandler(users *user.Service, tokens *auth.TokenService, log zerolog.Logger) *AuthHandler {
	return &AuthHandler{
		users:  users,
		tokens: tokens,
		log:    log.With().Str("component", "auth-handler").Logger(),
	}
}

// Register godoc
// @Summary      Register an account
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        request  body      requests.RegisterRequest  true  "Credentials"
// @Success      201      {object}  responses.UserResponse
// @Failure      409      {object}  responses.ErrorResponse
// @Router       /v1/auth/register [post]
func (h *AuthHandler) Register(c *gin.Context) {
	var req requests.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.HandleNewError(c, platformerrors.ErrorTypeValidation, err.Error(), "9a0b1c2d-3e4f-4a5b-8c6d-7e8f9a0b1c2d")
		return
	}

	account, err := h.users.Register(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		responses.HandleError(c, err, "failed to register account")
		return
	}
	c.JSON(http.StatusCreated, responses.NewUserResponse(account))
}

// Login godoc
// @Summary      Exchange credentials for an access token
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        request  body      requests.LoginRequest  true  "Credentials"
// @Success      200      {object}  responses.TokenResponse
// @Failure      401      {object}  responses.ErrorResponse
// @Router       /v1/auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req requests.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.HandleNewError(c, platformerrors.ErrorTypeValidation, err.Error(), "5e6f7a8b-9c0d-4e1f-a2b3-c4d5e6f7a8b9")
		return
	}

	account, err := h.users.Authenticate(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		responses.HandleError(c, err, "authentication failed")
		return
	}

	token, expiresAt, err := h.tokens.Issue(c.Request.Context(), account)
	if err != nil {
		responses.HandleError(c, err, "failed to issue token")
		return
	}
	c.JSON(http.StatusOK, responses.TokenResponse{
		AccessToken: token,
		TokenType:   "Bearer",
		ExpiresAt:   expiresAt,
	})
}

// Me godoc
// @Summary      Current account
// @Tags         auth
// @Produce      json
// @Success      200  {object}  responses.UserResponse
// @Failure      401  {object}  responses.ErrorResponse
// @Security     BearerAuth
// @Router       /v1/auth/me [get]
func (h *AuthHandler) Me(c *gin.Context) {
	principal, ok := middlewares.PrincipalFromContext(c)
	if !ok {
		responses.HandleNewError(c, platformerrors.ErrorTypeUnauthorized, "not authenticated", "1c2d3e4f-5a6b-4c7d-9e8f-0a1b2c3d4e5f")
		return
	}

	account, err := h.users.Get(c.Request.Context(), principal.UserID)
	if err != nil {
		responses.HandleError(c, err, "failed to load account")
		return
	}
	c.JSON(http.StatusOK, responses.NewUserResponse(account))
}
