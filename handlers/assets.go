// assets.go - CRUD handlers for assets with realtime event publishing

package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"go-asset-backend/middleware"
	"go-asset-backend/models"
)

// Realtime events emitted on asset mutations.
const (
	EventNewAsset    = "newAsset"
	EventUpdateAsset = "updateAsset"
	EventDeleteAsset = "deleteAsset"
)

type CreateAssetInput struct {
	Name      string   `json:"name" binding:"required"`
	Type      string   `json:"type" binding:"required,oneof=well motor transformer"`
	Latitude  *float64 `json:"latitude" binding:"required"`
	Longitude *float64 `json:"longitude" binding:"required"`
	Comments  string   `json:"comments"`
}

// UpdateAssetInput uses pointer fields so "field absent from the payload"
// and "field explicitly set to a zero value" are distinct: absent fields
// preserve the stored value, present fields always apply.
type UpdateAssetInput struct {
	Name      *string  `json:"name"`
	Type      *string  `json:"type" binding:"omitempty,oneof=well motor transformer"`
	Latitude  *float64 `json:"latitude"`
	Longitude *float64 `json:"longitude"`
	Comments  *string  `json:"comments"`
}

// caller returns the authenticated identity attached by the auth middleware.
func caller(c *gin.Context) (uint, string) {
	return c.MustGet(middleware.ContextUserID).(uint), c.GetString(middleware.ContextRole)
}

// canAccess reports whether the caller may act on the asset: admins always,
// operators only on assets they own.
func canAccess(c *gin.Context, asset *models.Asset) bool {
	userID, role := caller(c)
	return role == models.RoleAdmin || asset.CreatedBy == userID
}

// findAsset loads an asset by path id, writing 404 when it does not exist.
func (h *Handler) findAsset(c *gin.Context) (*models.Asset, bool) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"msg": "Asset not found"})
		return nil, false
	}

	var asset models.Asset
	if err := h.DB.First(&asset, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"msg": "Asset not found"})
		} else {
			h.serverError(c, err)
		}
		return nil, false
	}
	return &asset, true
}

// ListAssets returns all assets for admins, and only the caller's own
// assets for operators. No pagination; the full result set is materialized.
func (h *Handler) ListAssets(c *gin.Context) {
	userID, role := caller(c)

	query := h.DB
	if role != models.RoleAdmin {
		query = query.Where("created_by = ?", userID)
	}

	var assets []models.Asset
	if err := query.Find(&assets).Error; err != nil {
		h.serverError(c, err)
		return
	}
	c.JSON(http.StatusOK, assets)
}

// CreateAsset creates an asset owned by the caller. Any owner field in the
// request body is ignored; ownership always follows the token identity.
func (h *Handler) CreateAsset(c *gin.Context) {
	var input CreateAssetInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"msg": err.Error()})
		return
	}

	userID, _ := caller(c)
	asset := models.Asset{
		Name:      input.Name,
		Type:      input.Type,
		Latitude:  *input.Latitude,
		Longitude: *input.Longitude,
		Comments:  input.Comments,
		CreatedBy: userID,
	}
	if err := h.DB.Create(&asset).Error; err != nil {
		h.serverError(c, err)
		return
	}

	h.publish(EventNewAsset, asset)
	c.JSON(http.StatusOK, asset)
}

// GetAsset returns a single asset, gated to its owner or an admin.
func (h *Handler) GetAsset(c *gin.Context) {
	asset, ok := h.findAsset(c)
	if !ok {
		return
	}
	if !canAccess(c, asset) {
		c.JSON(http.StatusForbidden, gin.H{"msg": "Not authorized to view this asset"})
		return
	}
	c.JSON(http.StatusOK, asset)
}

// UpdateAsset applies the fields present in the payload to an asset, gated
// to its owner or an admin.
func (h *Handler) UpdateAsset(c *gin.Context) {
	asset, ok := h.findAsset(c)
	if !ok {
		return
	}
	if !canAccess(c, asset) {
		c.JSON(http.StatusForbidden, gin.H{"msg": "Not authorized to update this asset"})
		return
	}

	var input UpdateAssetInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"msg": err.Error()})
		return
	}

	if input.Name != nil {
		asset.Name = *input.Name
	}
	if input.Type != nil {
		asset.Type = *input.Type
	}
	if input.Latitude != nil {
		asset.Latitude = *input.Latitude
	}
	if input.Longitude != nil {
		asset.Longitude = *input.Longitude
	}
	if input.Comments != nil {
		asset.Comments = *input.Comments
	}

	if err := h.DB.Save(asset).Error; err != nil {
		h.serverError(c, err)
		return
	}

	h.publish(EventUpdateAsset, asset)
	c.JSON(http.StatusOK, asset)
}

// DeleteAsset removes an asset, gated to its owner or an admin. The emitted
// event carries only the deleted id.
func (h *Handler) DeleteAsset(c *gin.Context) {
	asset, ok := h.findAsset(c)
	if !ok {
		return
	}
	if !canAccess(c, asset) {
		c.JSON(http.StatusForbidden, gin.H{"msg": "Not authorized to delete this asset"})
		return
	}

	if err := h.DB.Delete(asset).Error; err != nil {
		h.serverError(c, err)
		return
	}

	h.publish(EventDeleteAsset, c.Param("id"))
	c.JSON(http.StatusOK, gin.H{"msg": "Asset removed"})
}
