package controllers

import (
	"errors"
	"fmt"
	"log"
	"net/http"
	"regexp"

	"github.com/gin-gonic/gin"

	"hotel-backoffice/services"
	"hotel-backoffice/utils"
)

var fullNamePattern = regexp.MustCompile(`^[A-Za-z ]+$`)

type UserController struct {
	Auth *services.AuthService
	// BaseURL is the externally visible address used in verification links.
	BaseURL string
}

func NewUserController(auth *services.AuthService, baseURL string) *UserController {
	return &UserController{Auth: auth, BaseURL: baseURL}
}

type registerPayload struct {
	FullName string `json:"fullName" binding:"required,min=3"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
}

type loginPayload struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type oauthPayload struct {
	Email         string `json:"email" binding:"required,email"`
	FullName      string `json:"fullName"`
	EmailVerified bool   `json:"emailVerified"`
}

// Register (POST /users)
func (uc *UserController) Register(c *gin.Context) {
	var payload registerPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Fullname, a valid email and a password of at least 6 characters are required")
		return
	}
	if !fullNamePattern.MatchString(payload.FullName) {
		utils.JSONError(c, http.StatusBadRequest, "FullName should only contain alphabets")
		return
	}

	user, token, err := uc.Auth.Register(c.Request.Context(), payload.FullName, payload.Email, payload.Password)
	if err != nil {
		if errors.Is(err, services.ErrEmailTaken) {
			utils.JSONError(c, http.StatusConflict, "Email already registered")
			return
		}
		log.Printf("❌ register: %v", err)
		utils.JSONError(c, http.StatusInternalServerError, "Internal Server Error")
		return
	}

	link := fmt.Sprintf("%s/verify-user/%s", uc.BaseURL, token)
	if err := utils.SendVerificationEmail(user.Email, link); err != nil {
		log.Printf("⚠️ verification email for %s not sent: %v", user.Email, err)
	}

	utils.JSONMessage(c, http.StatusCreated, "User registered successfully, please verify your email", user)
}

// Verify (GET /verify-user/:token)
func (uc *UserController) Verify(c *gin.Context) {
	user, err := uc.Auth.Verify(c.Request.Context(), c.Param("token"))
	if err != nil {
		switch {
		case errors.Is(err, services.ErrInvalidToken):
			utils.JSONError(c, http.StatusBadRequest, "Invalid or expired verification link")
		case errors.Is(err, services.ErrUserNotFound):
			utils.JSONError(c, http.StatusNotFound, "User not found")
		default:
			log.Printf("❌ verify user: %v", err)
			utils.JSONError(c, http.StatusInternalServerError, "Internal Server Error")
		}
		return
	}

	utils.JSONMessage(c, http.StatusOK, "User verified successfully", user)
}

// Login (POST /login)
func (uc *UserController) Login(c *gin.Context) {
	var payload loginPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Email and password are required")
		return
	}

	user, token, err := uc.Auth.Login(c.Request.Context(), payload.Email, payload.Password)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrInvalidCredentials):
			utils.JSONError(c, http.StatusUnauthorized, "Invalid email or password")
		case errors.Is(err, services.ErrNotVerified):
			utils.JSONError(c, http.StatusForbidden, "Account not verified")
		default:
			log.Printf("❌ login: %v", err)
			utils.JSONError(c, http.StatusInternalServerError, "Internal Server Error")
		}
		return
	}

	utils.JSONMessage(c, http.StatusOK, "Login successful", gin.H{"token": token, "user": user})
}

// OAuthLogin (POST /oauth/login) upserts a user from an identity already
// verified by an upstream OAuth flow.
func (uc *UserController) OAuthLogin(c *gin.Context) {
	var payload oauthPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "A valid email is required")
		return
	}

	user, token, err := uc.Auth.UpsertExternalUser(c.Request.Context(), services.ExternalProfile{
		Email:         payload.Email,
		FullName:      payload.FullName,
		EmailVerified: payload.EmailVerified,
	})
	if err != nil {
		log.Printf("❌ oauth login: %v", err)
		utils.JSONError(c, http.StatusInternalServerError, "Internal Server Error")
		return
	}

	utils.JSONMessage(c, http.StatusOK, "Login successful", gin.H{"token": token, "user": user})
}

// GetAll (GET /users, authenticated)
func (uc *UserController) GetAll(c *gin.Context) {
	users, err := uc.Auth.ListUsers(c.Request.Context())
	if err != nil {
		log.Printf("❌ list users: %v", err)
		utils.JSONError(c, http.StatusInternalServerError, "Internal Server Error")
		return
	}

	utils.JSONMessage(c, http.StatusOK, "Users fetched successfully", users)
}

// MakeAdmin (PATCH /make-admin/:id, superadmin only)
func (uc *UserController) MakeAdmin(c *gin.Context) {
	id, ok := parseID(c.Param("id"))
	if !ok {
		utils.JSONError(c, http.StatusNotFound, "User not found")
		return
	}

	user, err := uc.Auth.MakeAdmin(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, services.ErrUserNotFound) {
			utils.JSONError(c, http.StatusNotFound, "User not found")
			return
		}
		log.Printf("❌ make admin: %v", err)
		utils.JSONError(c, http.StatusInternalServerError, "Internal Server Error")
		return
	}

	utils.JSONMessage(c, http.StatusOK, "User is now an admin", user)
}
