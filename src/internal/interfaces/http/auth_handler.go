package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/hopeworks/impact_hub/src/internal/application/auth"
	"github.com/hopeworks/impact_hub/src/internal/domain/user"
)

// ===========================
// Auth handlers
// ===========================

type AuthHandler struct {
	signup      auth.SignupUseCase
	login       auth.LoginUseCase
	currentUser auth.CurrentUserUseCase
}

func NewAuthHandler(signup auth.SignupUseCase, login auth.LoginUseCase, currentUser auth.CurrentUserUseCase) *AuthHandler {
	return &AuthHandler{signup: signup, login: login, currentUser: currentUser}
}

// Login POST /login
func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, "Invalid email or password")
		return
	}

	result, err := h.login.Execute(auth.LoginCommand{Email: req.Email, Password: req.Password})
	switch {
	case err == nil:
	case errors.Is(err, auth.ErrInvalidPassword):
		respondError(c, "Invalid password")
		return
	case errors.Is(err, auth.ErrInvalidCredentials):
		respondError(c, "Invalid email or password")
		return
	default:
		respondInternal(c)
		return
	}

	setSessionCookie(c, result.User.ID())
	respondOK(c, "Logged in!", gin.H{"user": toUserPayload(result.User)})
}

// Signup POST /signup
func (h *AuthHandler) Signup(c *gin.Context) {
	var req SignupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, "Invalid signup data")
		return
	}

	result, err := h.signup.Execute(auth.SignupCommand{
		Email:           req.Email,
		Password:        req.Password,
		ConfirmPassword: req.ConfirmPass,
		FirstName:       req.Fname,
		LastName:        req.Lname,
	})
	switch {
	case err == nil:
	case errors.Is(err, auth.ErrPasswordMismatch):
		respondError(c, "Passwords do not match")
		return
	case errors.Is(err, user.ErrEmailAlreadyRegistered):
		respondError(c, "Email already exists")
		return
	case errors.Is(err, auth.ErrMissingField):
		respondError(c, "Email and password are required")
		return
	default:
		respondInternal(c)
		return
	}

	setSessionCookie(c, result.User.ID())
	respondOK(c, "User registered successfully", gin.H{"user": toUserPayload(result.User)})
}

// Logout POST /logout
func (h *AuthHandler) Logout(c *gin.Context) {
	clearSessionCookie(c)
	respondOK(c, "Logged out!", nil)
}

// Me GET /me
//
// Never errors: an absent or stale cookie answers logged_in false.
func (h *AuthHandler) Me(c *gin.Context) {
	u, err := h.currentUser.Execute(sessionValue(c))
	if err != nil {
		if errors.Is(err, user.ErrUserNotFound) {
			c.JSON(http.StatusOK, gin.H{"logged_in": false})
			return
		}
		respondInternal(c)
		return
	}
	c.JSON(http.StatusOK, gin.H{"logged_in": true, "user": toUserPayload(u)})
}
