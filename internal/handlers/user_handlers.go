package handlers

import (
	"database/sql"
	"net/http"
	"strings"
	"time"

	"github.com/MinHtutZaw/e-commerce-sub000/internal/auth"
	"github.com/MinHtutZaw/e-commerce-sub000/internal/models"
	"github.com/gin-gonic/gin"
)

// RegisterInput holds the signup form. Separate from models.User so a
// client can never send us an 'id' or a 'role'.
type RegisterInput struct {
	FullName    string `json:"fullName" binding:"required"`
	Email       string `json:"email" binding:"required,email"`
	Password    string `json:"password" binding:"required,min=8"`
	PhoneNumber string `json:"phoneNumber" binding:"required"`
}

// Register is the handler for POST /v1/register.
// Every self-registered account is a customer; administrators are
// created directly in the database.
func (h *Handlers) Register(c *gin.Context) {
	// 1. --- Bind & Validate JSON ---
	var input RegisterInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	// 2. --- Hash the Password ---
	var password models.Password
	if err := password.Set(input.Password); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to hash password"})
		return
	}

	// 3. --- Save to Database ---
	now := time.Now()
	result, err := h.DB.Exec(`
		INSERT INTO users (role, email, password_hash, full_name, phone_number, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)`,
		models.RoleCustomer, strings.ToLower(input.Email), password.Hash,
		input.FullName, input.PhoneNumber, now, now)
	if err != nil {
		// Duplicate email shows up as a MySQL unique-key violation.
		if strings.Contains(err.Error(), "Duplicate entry") {
			c.JSON(http.StatusConflict, gin.H{"error": "An account with this email already exists"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create account"})
		return
	}
	userID, err := result.LastInsertId()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create account"})
		return
	}

	// 4. --- Send Success Response ---
	c.JSON(http.StatusCreated, gin.H{
		"message": "Account created successfully",
		"user": models.User{
			ID:          userID,
			Role:        models.RoleCustomer,
			Email:       strings.ToLower(input.Email),
			FullName:    input.FullName,
			PhoneNumber: input.PhoneNumber,
			CreatedAt:   now,
			UpdatedAt:   now,
		},
	})
}

// LoginInput holds the login form.
type LoginInput struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// Login is the handler for POST /v1/login.
func (h *Handlers) Login(c *gin.Context) {
	// 1. --- Bind & Validate JSON ---
	var input LoginInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	// 2. --- Fetch the User ---
	var user models.User
	err := h.DB.QueryRow(`
		SELECT id, role, email, password_hash, full_name, phone_number, created_at, updated_at
		FROM users WHERE email = ?`, strings.ToLower(input.Email)).
		Scan(&user.ID, &user.Role, &user.Email, &user.PasswordHash,
			&user.FullName, &user.PhoneNumber, &user.CreatedAt, &user.UpdatedAt)
	if err != nil {
		if err == sql.ErrNoRows {
			// Same message as a wrong password, on purpose.
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid email or password"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Login failed"})
		return
	}

	// 3. --- Check the Password ---
	password := models.Password{Hash: user.PasswordHash}
	matches, err := password.Matches(input.Password)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Login failed"})
		return
	}
	if !matches {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid email or password"})
		return
	}

	// 4. --- Issue a Token ---
	token, err := auth.GenerateToken(user.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate token"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"token": token,
		"user":  user,
	})
}

// GetMe is the handler for GET /v1/me.
func (h *Handlers) GetMe(c *gin.Context) {
	userID := currentUserID(c)

	var user models.User
	err := h.DB.QueryRow(`
		SELECT id, role, email, full_name, phone_number, created_at, updated_at
		FROM users WHERE id = ?`, userID).
		Scan(&user.ID, &user.Role, &user.Email, &user.FullName,
			&user.PhoneNumber, &user.CreatedAt, &user.UpdatedAt)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load profile"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"user": user})
}
