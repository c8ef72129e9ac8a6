package handlers

import (
	"log"
	"net/http"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"

	"github.com/224saisrikanth/Judment-analysis/auth"
)

// AuthHandler handles login, logout and credential settings
type AuthHandler struct {
	creds *auth.CredentialStore
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(creds *auth.CredentialStore) *AuthHandler {
	return &AuthHandler{creds: creds}
}

// LoginRequest represents the request body for login
type LoginRequest struct {
	Username string `json:"username" form:"username" binding:"required"`
	Password string `json:"password" form:"password" binding:"required"`
}

// Login handles POST /api/login
func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "INVALID_REQUEST",
				"message": "Username and password are required",
			},
		})
		return
	}

	if !h.creds.Authenticate(req.Username, req.Password) {
		c.JSON(http.StatusUnauthorized, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "INVALID_CREDENTIALS",
				"message": "Invalid username or password. Please try again.",
			},
		})
		return
	}

	session := sessions.Default(c)
	session.Set(sessionAuthenticated, true)
	session.Set(sessionUsername, req.Username)
	session.Set(sessionDisplayName, h.creds.DisplayName(req.Username))
	if err := session.Save(); err != nil {
		log.Printf("failed to save session: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "SESSION_FAILED",
				"message": "Could not create session",
			},
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data": gin.H{
			"username":     req.Username,
			"display_name": h.creds.DisplayName(req.Username),
		},
	})
}

// Logout handles POST /api/logout
func (h *AuthHandler) Logout(c *gin.Context) {
	session := sessions.Default(c)
	session.Clear()
	session.Options(sessions.Options{MaxAge: -1})
	if err := session.Save(); err != nil {
		log.Printf("failed to clear session: %v", err)
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}

// Session handles GET /api/session
func (h *AuthHandler) Session(c *gin.Context) {
	session := sessions.Default(c)
	username, _ := session.Get(sessionUsername).(string)
	displayName, _ := session.Get(sessionDisplayName).(string)

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data": gin.H{
			"username":     username,
			"display_name": displayName,
		},
	})
}

// ChangePasswordRequest represents the request body for a password change
type ChangePasswordRequest struct {
	CurrentPassword string `json:"current_password" form:"current_password" binding:"required"`
	NewPassword     string `json:"new_password" form:"new_password" binding:"required"`
	ConfirmPassword string `json:"confirm_password" form:"confirm_password" binding:"required"`
}

// ChangePassword handles POST /api/settings/change-password
func (h *AuthHandler) ChangePassword(c *gin.Context) {
	var req ChangePasswordRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "INVALID_REQUEST",
				"message": "All fields are required.",
			},
		})
		return
	}

	if req.NewPassword != req.ConfirmPassword {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "PASSWORD_MISMATCH",
				"message": "New passwords do not match.",
			},
		})
		return
	}

	session := sessions.Default(c)
	username, _ := session.Get(sessionUsername).(string)

	ok, message := h.creds.ChangePassword(username, req.CurrentPassword, req.NewPassword)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "CHANGE_FAILED",
				"message": message,
			},
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    gin.H{"message": message},
	})
}

// ChangeUsernameRequest represents the request body for a username change
type ChangeUsernameRequest struct {
	NewUsername string `json:"new_username" form:"new_username" binding:"required"`
	Password    string `json:"password" form:"password" binding:"required"`
}

// ChangeUsername handles POST /api/settings/change-username
func (h *AuthHandler) ChangeUsername(c *gin.Context) {
	var req ChangeUsernameRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "INVALID_REQUEST",
				"message": "All fields are required.",
			},
		})
		return
	}

	session := sessions.Default(c)
	username, _ := session.Get(sessionUsername).(string)

	ok, message := h.creds.ChangeUsername(username, req.NewUsername, req.Password)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "CHANGE_FAILED",
				"message": message,
			},
		})
		return
	}

	session.Set(sessionUsername, req.NewUsername)
	session.Set(sessionDisplayName, h.creds.DisplayName(req.NewUsername))
	if err := session.Save(); err != nil {
		log.Printf("failed to update session: %v", err)
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data": gin.H{
			"message":      message,
			"username":     req.NewUsername,
			"display_name": h.creds.DisplayName(req.NewUsername),
		},
	})
}
