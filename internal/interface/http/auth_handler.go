package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/stakeflow/stakeflow/internal/application"
	"github.com/stakeflow/stakeflow/internal/interface/middleware"
	"github.com/stakeflow/stakeflow/pkg/helpers"
	"github.com/stakeflow/stakeflow/pkg/response"
	"github.com/stakeflow/stakeflow/pkg/validation"
)

type AuthHandler struct {
	Svc    *application.AuthService
	Logger *logrus.Logger
}

func NewAuthHandler(svc *application.AuthService, logger *logrus.Logger) *AuthHandler {
	return &AuthHandler{Svc: svc, Logger: logger}
}

type registerRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type loginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type updateProfileRequest struct {
	CurrentPassword string `json:"currentPassword" binding:"required"`
	Email           string `json:"email"`
	NewPassword     string `json:"newPassword"`
}

// Register POST /api/register
func (h *AuthHandler) Register(c *gin.Context) {
	var req registerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "All input is required", validation.ToDetails(err))
		return
	}
	res, err := h.Svc.Register(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		// Uniqueness violations surface as store errors here, per contract.
		helpers.LogError(h.Logger, "register failed", err, logrus.Fields{"email": req.Email})
		response.Error(c, http.StatusInternalServerError, "User already exists or database error", nil)
		return
	}
	response.JSON(c, http.StatusCreated, gin.H{
		"message": "User registered successfully",
		"token":   res.Token,
	})
}

// Login POST /api/login
func (h *AuthHandler) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "All input is required", validation.ToDetails(err))
		return
	}
	res, err := h.Svc.Login(c.Request.Context(), req.Email, req.Password)
	switch {
	case err == nil:
	case err == application.ErrUserNotFound:
		response.Error(c, http.StatusNotFound, "User not found", nil)
		return
	case err == application.ErrInvalidCredentials:
		response.Error(c, http.StatusUnauthorized, "Invalid Password", nil)
		return
	default:
		helpers.LogError(h.Logger, "login failed", err, logrus.Fields{"email": req.Email})
		response.Error(c, http.StatusInternalServerError, "database error", nil)
		return
	}
	response.JSON(c, http.StatusOK, gin.H{
		"id":          res.UserID,
		"email":       res.Email,
		"role":        res.Role,
		"accessToken": res.Token,
	})
}

// UpdateProfile PUT /api/profile
func (h *AuthHandler) UpdateProfile(c *gin.Context) {
	uid := c.GetInt64(middleware.CtxUserIDKey)
	var req updateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "Current password is required to save changes.", validation.ToDetails(err))
		return
	}
	err := h.Svc.UpdateProfile(c.Request.Context(), uid, application.UpdateProfileInput{
		CurrentPassword: req.CurrentPassword,
		Email:           req.Email,
		NewPassword:     req.NewPassword,
	})
	switch {
	case err == nil:
	case err == application.ErrUserNotFound:
		response.Error(c, http.StatusNotFound, "User not found", nil)
		return
	case err == application.ErrInvalidCredentials:
		response.Error(c, http.StatusUnauthorized, "Incorrect current password", nil)
		return
	case err == application.ErrEmailTaken:
		response.Error(c, http.StatusBadRequest, "Email already in use", nil)
		return
	default:
		helpers.LogError(h.Logger, "profile update failed", err, logrus.Fields{"user_id": uid})
		response.Error(c, http.StatusInternalServerError, err.Error(), nil)
		return
	}
	response.Message(c, http.StatusOK, "Profile updated successfully!")
}
