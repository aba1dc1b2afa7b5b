package controllers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/craftline/storefront/app/services"
	"github.com/craftline/storefront/pkg/auth"
	"github.com/craftline/storefront/pkg/bind"
	"github.com/craftline/storefront/pkg/middleware"
	"github.com/craftline/storefront/pkg/response"
)

// AuthController serves registration, login and the current account.
type AuthController struct {
	auth *services.AuthService
}

func NewAuthController(auth *services.AuthService) *AuthController {
	return &AuthController{auth: auth}
}

// Register handles POST /api/account.
func (c *AuthController) Register(w http.ResponseWriter, r *http.Request) {
	var in services.RegisterInput
	errs, err := bind.JSON(r, &in)
	if err != nil {
		response.Error(w, http.StatusBadRequest, err.Error())
		return
	}
	if errs != nil {
		response.ValidationError(w, errs)
		return
	}

	user, err := c.auth.Register(in)
	if err != nil {
		if errors.Is(err, services.ErrEmailTaken) {
			response.Conflict(w, "An account with this email already exists")
			return
		}
		serverError(w, r, err)
		return
	}

	response.Created(w, user)
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Login handles POST /api/token.
func (c *AuthController) Login(w http.ResponseWriter, r *http.Request) {
	var in loginRequest
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	token, err := c.auth.Login(in.Email, in.Password)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrMissingCredentials):
			response.Error(w, http.StatusBadRequest, err.Error())
		case errors.Is(err, services.ErrInvalidCredentials):
			response.Error(w, http.StatusUnauthorized, "Invalid credentials")
		default:
			serverError(w, r, err)
		}
		return
	}

	response.Success(w, map[string]interface{}{
		"token":      token,
		"expires_in": int(auth.TokenTTL().Seconds()),
	})
}

// Me handles GET /api/account and returns the authenticated user.
func (c *AuthController) Me(w http.ResponseWriter, r *http.Request) {
	user := middleware.UserFromCtx(r.Context())
	if user == nil {
		response.Unauthorized(w)
		return
	}
	response.Success(w, user)
}
