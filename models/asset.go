// asset.go - Defines the Asset model for the database

package models

import "time"

// Types of physical assets the system tracks.
const (
	AssetTypeWell        = "well"
	AssetTypeMotor       = "motor"
	AssetTypeTransformer = "transformer"
)

// Asset represents a tracked physical object (well, motor, transformer) with
// its geolocation. CreatedBy references the owning user.
type Asset struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"not null" json:"name"`
	Type      string    `gorm:"not null" json:"type"`
	Latitude  float64   `gorm:"not null" json:"latitude"`
	Longitude float64   `gorm:"not null" json:"longitude"`
	Comments  string    `json:"comments"`
	CreatedBy uint      `gorm:"not null;index" json:"createdBy"`
	Creator   *User     `gorm:"foreignKey:CreatedBy;constraint:OnDelete:CASCADE" json:"-"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
