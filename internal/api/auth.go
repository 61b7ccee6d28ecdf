package api

import (
	"net/http" // HTTP status codes
	"regexp"   // Regular expressions
	"strings"  // String manipulation

	"finledger/internal/domain" // Importing domain models
	"finledger/internal/utils"  // Utility functions

	"github.com/gin-gonic/gin"   // Gin web framework
	"golang.org/x/crypto/bcrypt" // Password hashing
	"gorm.io/gorm"               // GORM ORM library
)

// Request struct for registration
type RegisterRequest struct {
	Email    string `json:"email" binding:"required"`    // Email must be provided
	Name     string `json:"name"`                        // Optional display name
	Password string `json:"password" binding:"required"` // Password must be provided
}

// Request struct for login
type LoginRequest struct {
	Email    string `json:"email" binding:"required"`    // Email must be provided
	Password string `json:"password" binding:"required"` // Password must be provided
}

// Response struct for authentication
type AuthResponse struct {
	Token string `json:"token"` // JWT token
}

var emailPattern = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

// isValidEmail checks that the email has a plausible address shape
func isValidEmail(email string) bool {
	return emailPattern.MatchString(email)
}

// isValidPassword checks if the password length is between 8 and 72 characters
func isValidPassword(password string) bool {
	return len(password) >= 8 && len(password) <= 72
}

// RegisterHandler creates a new user account
func RegisterHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req RegisterRequest // Bind JSON request to struct
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
			return
		}
		// Validate email and password
		if !isValidEmail(req.Email) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid email address"})
			return
		}
		if !isValidPassword(req.Password) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Password must be 8-72 characters"})
			return
		}
		// Hash the password and create the user
		hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to hash password"})
			return
		}
		// Lowercase the email to ensure uniqueness
		user := domain.User{Email: strings.ToLower(req.Email), Name: req.Name, Password: string(hash)}
		if err := db.Create(&user).Error; err != nil {
			// Creation fails on duplicate email
			c.JSON(http.StatusBadRequest, gin.H{"error": "Email already registered"})
			return
		}
		c.JSON(http.StatusCreated, gin.H{"message": "User registered successfully"})
	}
}

// LoginHandler authenticates a user and returns a JWT token
func LoginHandler(db *gorm.DB, jwtSecret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req LoginRequest // Bind JSON request to struct
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
			return
		}
		var user domain.User // Fetch user from database
		if err := db.Where("email = ?", strings.ToLower(req.Email)).First(&user).Error; err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid credentials"})
			return
		}
		// Compare provided password with stored hash
		if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid credentials"})
			return
		}
		// Generate JWT token
		token, err := utils.GenerateJWT(user.ID, user.Email, jwtSecret)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate token"})
			return
		}
		c.JSON(http.StatusOK, AuthResponse{Token: token})
	}
}
