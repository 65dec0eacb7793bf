package controllers

import (
	"fmt"
	"net/http"

	"github.com/ameerhamza-malik/ItemManagement/middleware"
	"github.com/ameerhamza-malik/ItemManagement/models"
	"github.com/ameerhamza-malik/ItemManagement/services"
	"github.com/ameerhamza-malik/ItemManagement/validation"
	"github.com/gin-gonic/gin"
)

// ## User Handlers

// Register creates a new account. It does not log the user in; the client
// is expected to follow up with a login request.
func (h *Handler) Register(c *gin.Context) {
	var form validation.RegistrationForm
	if err := c.ShouldBindJSON(&form); err != nil {
		h.jsonError(c, http.StatusBadRequest, "Invalid request body")
		return
	}
	if errs := form.Validate(); len(errs) > 0 {
		h.validationError(c, errs)
		return
	}

	// Check for an existing account before hashing; the unique indexes
	// remain the backstop for concurrent registrations.
	var count int64
	if err := h.DB.Model(&models.User{}).
		Where("username = ? OR email = ?", form.Username, form.Email).
		Count(&count).Error; err != nil {
		h.Log.WithError(err).Error("Failed to check for existing user")
		h.jsonError(c, http.StatusInternalServerError, "Registration failed")
		return
	}
	if count > 0 {
		h.jsonError(c, http.StatusBadRequest, "Username or email already exists")
		return
	}

	// Offload the slow hashing operation to the worker pool.
	hash, err := h.Hasher.GenerateHash(form.Password)
	if err != nil {
		h.Log.WithError(err).Error("Failed to hash password")
		h.jsonError(c, http.StatusInternalServerError, "Registration failed")
		return
	}

	user := models.User{Username: form.Username, Email: form.Email, PasswordHash: hash}
	if result := h.DB.Create(&user); result.Error != nil {
		// Unique index violation from a concurrent registration.
		h.jsonError(c, http.StatusBadRequest, "Username or email already exists")
		return
	}

	h.Log.WithField("user_id", user.ID).Info("User registered")
	c.JSON(http.StatusCreated, gin.H{"message": "Registration successful! Please log in."})
}

// Login verifies credentials and establishes the session. Unknown usernames
// and wrong passwords get the same answer.
func (h *Handler) Login(c *gin.Context) {
	var form validation.LoginForm
	if err := c.ShouldBindJSON(&form); err != nil {
		h.jsonError(c, http.StatusBadRequest, "Invalid request body")
		return
	}
	if errs := form.Validate(); len(errs) > 0 {
		h.validationError(c, errs)
		return
	}

	var user models.User
	if err := h.DB.Where("username = ?", form.Username).First(&user).Error; err != nil {
		h.jsonError(c, http.StatusUnauthorized, "Invalid username or password")
		return
	}

	if !h.Hasher.Verify(user.PasswordHash, form.Password) {
		h.jsonError(c, http.StatusUnauthorized, "Invalid username or password")
		return
	}

	tokenString, claims, err := services.NewSessionToken(user.ID, h.Cfg.SecretKey)
	if err != nil {
		h.Log.WithError(err).Error("Failed to sign session token")
		h.jsonError(c, http.StatusInternalServerError, "Could not establish session")
		return
	}
	csrfToken := services.CSRFToken(claims.SessionID, h.Cfg.SecretKey)

	maxAge := int(services.SessionDuration.Seconds())
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(middleware.AuthCookieName, tokenString, maxAge, "/", "", false, true)
	// Double-submit cookie: readable by the page so it can echo the token
	// back in the X-CSRF-Token header.
	c.SetCookie(middleware.CSRFCookieName, csrfToken, maxAge, "/", "", false, false)

	h.Log.WithField("user_id", user.ID).Info("User logged in")
	c.JSON(http.StatusOK, gin.H{
		"message":    fmt.Sprintf("Welcome back, %s!", user.Username),
		"csrf_token": csrfToken,
	})
}

// Logout destroys the session by expiring both cookies immediately.
func (h *Handler) Logout(c *gin.Context) {
	c.SetCookie(middleware.AuthCookieName, "", -1, "/", "", false, true)
	c.SetCookie(middleware.CSRFCookieName, "", -1, "/", "", false, false)
	c.JSON(http.StatusOK, gin.H{"message": "You have been logged out successfully"})
}

// GetProfile returns the authenticated user's own account.
func (h *Handler) GetProfile(c *gin.Context) {
	user, err := h.getUserFromContext(c)
	if err != nil {
		h.jsonError(c, http.StatusUnauthorized, err.Error())
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"user": gin.H{
			"id":        user.ID,
			"username":  user.Username,
			"email":     user.Email,
			"createdAt": user.CreatedAt,
		},
	})
}
