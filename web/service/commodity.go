package service

import (
	"errors"
	"strings"

	"github.com/aurify/priceboard/database"
	"github.com/aurify/priceboard/database/model"
)

var ErrCommodityExists = errors.New("this commodity already exists")
var ErrCommodityNotFound = errors.New("commodity not found")

// ValidationError carries per-field schema violations, mapped by the
// controllers to a 400 response.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	return "validation failed"
}

func validMetal(metal string) bool {
	for _, m := range model.Metals {
		if metal == m {
			return true
		}
	}
	return false
}

// CommodityService provides owner-scoped CRUD for commodity definitions.
type CommodityService struct{}

// GetCommodities lists the owner's commodities, most recent first.
func (s *CommodityService) GetCommodities(adminId string) ([]*model.Commodity, error) {
	db := database.GetDB()

	var commodities []*model.Commodity
	err := db.Model(model.Commodity{}).
		Where("admin_id = ?", adminId).
		Order("created_at desc").
		Find(&commodities).
		Error
	if err != nil {
		return nil, err
	}
	return commodities, nil
}

// AddCommodity creates a commodity after normalizing metal to
// uppercase-trimmed and purity/unit to trimmed strings. At most one
// commodity may exist per (owner, metal, purity, unit); the pre-check and
// the unique index both map to ErrCommodityExists, the index winning any
// race.
func (s *CommodityService) AddCommodity(commodity *model.Commodity) (*model.Commodity, error) {
	db := database.GetDB()

	commodity.Metal = strings.ToUpper(strings.TrimSpace(commodity.Metal))
	commodity.Purity = strings.TrimSpace(commodity.Purity)
	commodity.Unit = strings.TrimSpace(commodity.Unit)

	fields := make(map[string]string)
	if !validMetal(commodity.Metal) {
		fields["metal"] = "Metal must be GOLD, KILOBAR, TTBAR, or SILVER"
	}
	for name, value := range map[string]float64{
		"buyPremium":  commodity.BuyPremium,
		"sellPremium": commodity.SellPremium,
		"sellCharges": commodity.SellCharges,
		"buyCharges":  commodity.BuyCharges,
	} {
		if value < 0 {
			fields[name] = name + " must not be negative"
		}
	}
	if len(fields) > 0 {
		return nil, &ValidationError{Fields: fields}
	}

	var count int64
	err := db.Model(model.Commodity{}).
		Where("admin_id = ? and metal = ? and purity = ? and unit = ?",
			commodity.AdminId, commodity.Metal, commodity.Purity, commodity.Unit).
		Count(&count).
		Error
	if err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, ErrCommodityExists
	}

	if err := db.Create(commodity).Error; err != nil {
		if database.IsDuplicateKey(err) {
			return nil, ErrCommodityExists
		}
		return nil, err
	}
	return commodity, nil
}

// commodityColumns maps the patchable payload fields to their columns.
var commodityColumns = map[string]string{
	"buyPremium":  "buy_premium",
	"sellPremium": "sell_premium",
	"sellCharges": "sell_charges",
	"buyCharges":  "buy_charges",
}

// UpdateCommodity applies the given premium/charge values to the owner's
// commodity and returns the post-update row. Fields are keyed by payload
// name. A missing or foreign-owned id yields ErrCommodityNotFound.
func (s *CommodityService) UpdateCommodity(id string, adminId string, fields map[string]float64) (*model.Commodity, error) {
	db := database.GetDB()

	invalid := make(map[string]string)
	columns := make(map[string]any)
	for name, value := range fields {
		column, ok := commodityColumns[name]
		if !ok {
			continue
		}
		if value < 0 {
			invalid[name] = name + " must not be negative"
			continue
		}
		columns[column] = value
	}
	if len(invalid) > 0 {
		return nil, &ValidationError{Fields: invalid}
	}

	result := db.Model(model.Commodity{}).
		Where("id = ? and admin_id = ?", id, adminId).
		Updates(columns)
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, ErrCommodityNotFound
	}

	commodity := &model.Commodity{}
	err := db.Model(model.Commodity{}).
		Where("id = ? and admin_id = ?", id, adminId).
		First(commodity).
		Error
	if err != nil {
		return nil, err
	}
	return commodity, nil
}

// DelCommodity deletes the owner's commodity. A missing or foreign-owned id
// yields ErrCommodityNotFound.
func (s *CommodityService) DelCommodity(id string, adminId string) error {
	db := database.GetDB()

	result := db.Where("id = ? and admin_id = ?", id, adminId).
		Delete(model.Commodity{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrCommodityNotFound
	}
	return nil
}
