package main

import (
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

func GenerateToken(userID uint) (string, error) {
	claims := jwt.MapClaims{
		"user_id": userID,
		"exp":     time.Now().Add(24 * time.Hour).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(jwtSecret())
}

// ========================
// SIGNUP HANDLER
// ========================

// Signup checks the two password fields locally, then hands the public
// account details to the external registration collaborator. The local
// row is only created after the collaborator accepts (or when no
// collaborator is configured); a rejected or failed registration leaves
// nothing behind.
func (app *App) Signup(c *gin.Context) {
	var body SignupRequest

	if err := c.ShouldBindJSON(&body); err != nil {
		jsonError(c, http.StatusBadRequest, err.Error())
		return
	}

	if body.Password != body.ConfirmPassword {
		jsonError(c, http.StatusBadRequest, "Passwords do not match")
		return
	}

	if app.Registrar != nil {
		if err := app.Registrar.Register(c.Request.Context(), body); err != nil {
			log.Printf("registration collaborator: %v", err)
			var remote *RemoteError
			if errors.As(err, &remote) {
				jsonError(c, http.StatusBadGateway, "Registration failed: "+remote.Message)
			} else {
				jsonError(c, http.StatusBadGateway, "Registration failed: Network error. Please try again.")
			}
			return
		}
	}

	user := User{
		Email:    body.Email,
		Password: body.Password,
		FullName: body.FullName,
		Phone:    body.Phone,
		Parish:   body.Parish,
		Role:     body.Role,
		Bio:      body.Bio,
	}

	if err := app.DB.Create(&user).Error; err != nil {
		jsonError(c, http.StatusBadRequest, "User already exists")
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Registration successful! Please login.",
		"user":    user.PublicProfile(),
	})
}

// ========================
// LOGIN HANDLER
// ========================

func (app *App) Login(c *gin.Context) {
	var req LoginRequest
	var user User

	if err := c.ShouldBindJSON(&req); err != nil {
		jsonError(c, http.StatusBadRequest, err.Error())
		return
	}

	// find user
	if err := app.DB.Where("email = ?", req.Email).First(&user).Error; err != nil {
		jsonError(c, http.StatusUnauthorized, "Invalid credentials")
		return
	}

	// demo deployment: passwords are compared as-is
	if user.Password != req.Password {
		jsonError(c, http.StatusUnauthorized, "Invalid credentials")
		return
	}

	token, err := GenerateToken(user.ID)
	if err != nil {
		jsonError(c, http.StatusInternalServerError, "Failed to generate token")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"token": token,
		"user":  user.PublicProfile(),
	})
}

// Me returns the session profile for the authenticated user: every
// public field, never the password. Clients call it on startup to
// restore the signed-in view without re-authenticating.
func (app *App) Me(c *gin.Context) {
	userID, ok := getUserIDFromContext(c)
	if !ok {
		jsonError(c, http.StatusUnauthorized, "unauthorized")
		return
	}

	var user User
	if err := app.DB.First(&user, userID).Error; err != nil {
		jsonError(c, http.StatusUnauthorized, "unauthorized")
		return
	}

	c.JSON(http.StatusOK, user.PublicProfile())
}
