package controllers

import (
	"errors"
	"log"
	"net/http"
	"strings"

	"tyco-hotel-backend/services"
	"tyco-hotel-backend/utils"

	"github.com/gin-gonic/gin"
)

type loginPayload struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type AuthController struct {
	AuthSvc *services.AuthService
}

func NewAuthController(svc *services.AuthService) *AuthController {
	return &AuthController{AuthSvc: svc}
}

func (ctrl *AuthController) Login(c *gin.Context) {
	var payload loginPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request payload")
		return
	}

	email := strings.TrimSpace(payload.Email)
	if email == "" || payload.Password == "" {
		utils.JSONError(c, http.StatusBadRequest, "Email and password are required")
		return
	}

	token, admin, err := ctrl.AuthSvc.Login(email, payload.Password)
	if err != nil {
		// unknown user and wrong password look identical to the caller
		if errors.Is(err, services.ErrUserNotFound) || errors.Is(err, services.ErrWrongPassword) {
			utils.JSONError(c, http.StatusUnauthorized, "Invalid credentials")
			return
		}
		log.Printf("login failed for %s: %v", email, err)
		utils.JSONError(c, http.StatusInternalServerError, "Login failed")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"token": token,
		"admin": gin.H{
			"id":        admin.ID,
			"full_name": admin.FullName,
			"email":     admin.Email,
		},
	})
}
