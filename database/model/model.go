// Package model defines the persisted entities of the priceboard backend.
package model

import (
	"time"

	"github.com/aurify/priceboard/util/json_util"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Account roles.
const (
	RoleSuperAdmin = "super_admin"
	RoleAdmin      = "admin"
	RoleUser       = "user"
)

// Account statuses.
const (
	StatusActive    = "active"
	StatusInactive  = "inactive"
	StatusSuspended = "suspended"
)

// Metals accepted for commodities.
var Metals = []string{"GOLD", "KILOBAR", "TTBAR", "SILVER"}

// User is an admin account. Emails are stored lowercased; uniqueness is
// enforced by the store.
type User struct {
	Id           string    `json:"id" gorm:"primaryKey;size:36"`
	CompanyName  string    `json:"companyName" gorm:"not null"`
	Email        string    `json:"email" gorm:"uniqueIndex;not null"`
	Phone        string    `json:"phone"`
	PasswordHash string    `json:"-" gorm:"column:password_hash;not null"`
	Role         string    `json:"role" gorm:"not null;default:user"`
	Status       string    `json:"status" gorm:"not null;default:active"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.Id == "" {
		u.Id = uuid.NewString()
	}
	return nil
}

// Commodity is an owner-scoped metal definition. At most one row may exist
// per (admin, metal, purity, unit).
type Commodity struct {
	Id          string    `json:"id" gorm:"primaryKey;size:36"`
	AdminId     string    `json:"-" gorm:"index;uniqueIndex:idx_commodity_admin_metal_purity_unit;not null"`
	Metal       string    `json:"metal" gorm:"uniqueIndex:idx_commodity_admin_metal_purity_unit;not null"`
	Purity      string    `json:"purity" gorm:"uniqueIndex:idx_commodity_admin_metal_purity_unit;not null"`
	Unit        string    `json:"unit" gorm:"uniqueIndex:idx_commodity_admin_metal_purity_unit;not null"`
	BuyPremium  float64   `json:"buyPremium" gorm:"default:0"`
	SellPremium float64   `json:"sellPremium" gorm:"default:0"`
	SellCharges float64   `json:"sellCharges" gorm:"default:0"`
	BuyCharges  float64   `json:"buyCharges" gorm:"default:0"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

func (c *Commodity) BeforeCreate(tx *gorm.DB) error {
	if c.Id == "" {
		c.Id = uuid.NewString()
	}
	return nil
}

// SpotRateSettings holds the bid/ask spreads of one owner. One row per
// owner.
type SpotRateSettings struct {
	Id              string    `json:"-" gorm:"primaryKey;size:36"`
	UserId          string    `json:"-" gorm:"uniqueIndex;not null"`
	GoldBidSpread   float64   `json:"goldBidSpread" gorm:"not null"`
	GoldAskSpread   float64   `json:"goldAskSpread" gorm:"not null"`
	SilverBidSpread float64   `json:"silverBidSpread" gorm:"not null"`
	SilverAskSpread float64   `json:"silverAskSpread" gorm:"not null"`
	CreatedAt       time.Time `json:"-"`
	UpdatedAt       time.Time `json:"-"`
}

func (s *SpotRateSettings) BeforeCreate(tx *gorm.DB) error {
	if s.Id == "" {
		s.Id = uuid.NewString()
	}
	return nil
}

// TemplateConfig stores an opaque display configuration per
// (owner, template). The payload is kept verbatim; its shape is not
// validated.
type TemplateConfig struct {
	Id         string               `json:"-" gorm:"primaryKey;size:36"`
	UserId     string               `json:"-" gorm:"uniqueIndex:idx_template_user_template;not null"`
	TemplateId string               `json:"templateId" gorm:"uniqueIndex:idx_template_user_template;not null"`
	Config     json_util.RawMessage `json:"config" gorm:"type:text;not null"`
	CreatedAt  time.Time            `json:"-"`
	UpdatedAt  time.Time            `json:"-"`
}

func (t *TemplateConfig) BeforeCreate(tx *gorm.DB) error {
	if t.Id == "" {
		t.Id = uuid.NewString()
	}
	return nil
}
