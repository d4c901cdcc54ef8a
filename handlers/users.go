// users.go - Admin-only CRUD handlers for user accounts

package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"go-asset-backend/models"
)

// ListUsers returns every account. The password hash is never serialized.
func (h *Handler) ListUsers(c *gin.Context) {
	var users []models.User
	if err := h.DB.Find(&users).Error; err != nil {
		h.serverError(c, err)
		return
	}
	c.JSON(http.StatusOK, users)
}

// CreateUser creates an account on behalf of an admin and returns the
// sanitized record.
func (h *Handler) CreateUser(c *gin.Context) {
	var input RegisterInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"msg": err.Error()})
		return
	}

	var count int64
	if err := h.DB.Model(&models.User{}).Where("email = ?", input.Email).Count(&count).Error; err != nil {
		h.serverError(c, err)
		return
	}
	if count > 0 {
		c.JSON(http.StatusBadRequest, gin.H{"msg": "User already exists"})
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		h.serverError(c, err)
		return
	}

	role := input.Role
	if role == "" {
		role = models.RoleOperator
	}

	user := models.User{
		Name:     input.Name,
		Email:    input.Email,
		Password: string(hash),
		Role:     role,
	}
	if err := h.DB.Create(&user).Error; err != nil {
		h.serverError(c, err)
		return
	}
	c.JSON(http.StatusOK, user)
}

// DeleteUser removes an account by id.
func (h *Handler) DeleteUser(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"msg": "User not found"})
		return
	}

	var user models.User
	if err := h.DB.First(&user, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"msg": "User not found"})
		} else {
			h.serverError(c, err)
		}
		return
	}

	if err := h.DB.Delete(&user).Error; err != nil {
		h.serverError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"msg": "User removed"})
}
