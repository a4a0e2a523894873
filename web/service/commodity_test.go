package service

import (
	"testing"
	"time"

	"github.com/aurify/priceboard/database"
	"github.com/aurify/priceboard/database/model"

	"github.com/stretchr/testify/assert"
)

func TestAddCommodityNormalizesAndRejectsDuplicates(t *testing.T) {
	setup()
	defer teardown()

	commodityService := CommodityService{}

	created, err := commodityService.AddCommodity(&model.Commodity{
		AdminId: "owner-1",
		Metal:   "  gold ",
		Purity:  " 999.9 ",
		Unit:    " g ",
	})
	assert.NoError(t, err)
	assert.Equal(t, "GOLD", created.Metal)
	assert.Equal(t, "999.9", created.Purity)
	assert.Equal(t, "g", created.Unit)
	assert.Equal(t, float64(0), created.BuyPremium)
	assert.NotEmpty(t, created.Id)

	// Equivalent after normalization, regardless of raw spelling.
	_, err = commodityService.AddCommodity(&model.Commodity{
		AdminId: "owner-1",
		Metal:   "GOLD",
		Purity:  "999.9",
		Unit:    "g",
	})
	assert.ErrorIs(t, err, ErrCommodityExists)

	// A different owner may hold the same triple.
	_, err = commodityService.AddCommodity(&model.Commodity{
		AdminId: "owner-2",
		Metal:   "gold",
		Purity:  "999.9",
		Unit:    "g",
	})
	assert.NoError(t, err)
}

func TestAddCommodityValidation(t *testing.T) {
	setup()
	defer teardown()

	commodityService := CommodityService{}

	_, err := commodityService.AddCommodity(&model.Commodity{
		AdminId: "owner-1",
		Metal:   "platinum",
		Purity:  "999.9",
		Unit:    "g",
	})
	var validationErr *ValidationError
	assert.ErrorAs(t, err, &validationErr)
	assert.Contains(t, validationErr.Fields, "metal")

	_, err = commodityService.AddCommodity(&model.Commodity{
		AdminId:    "owner-1",
		Metal:      "gold",
		Purity:     "999.9",
		Unit:       "g",
		BuyPremium: -1,
	})
	assert.ErrorAs(t, err, &validationErr)
	assert.Contains(t, validationErr.Fields, "buyPremium")
}

func TestGetCommoditiesOrder(t *testing.T) {
	setup()
	defer teardown()

	db := database.GetDB()
	older := &model.Commodity{
		AdminId: "owner-1", Metal: "GOLD", Purity: "999.9", Unit: "g",
		CreatedAt: time.Now().Add(-time.Hour),
	}
	newer := &model.Commodity{
		AdminId: "owner-1", Metal: "SILVER", Purity: "999", Unit: "kg",
		CreatedAt: time.Now(),
	}
	foreign := &model.Commodity{
		AdminId: "owner-2", Metal: "TTBAR", Purity: "999", Unit: "bar",
	}
	assert.NoError(t, db.Create(older).Error)
	assert.NoError(t, db.Create(newer).Error)
	assert.NoError(t, db.Create(foreign).Error)

	commodityService := CommodityService{}
	commodities, err := commodityService.GetCommodities("owner-1")
	assert.NoError(t, err)
	assert.Len(t, commodities, 2)
	assert.Equal(t, "SILVER", commodities[0].Metal)
	assert.Equal(t, "GOLD", commodities[1].Metal)
}

func TestUpdateCommodity(t *testing.T) {
	setup()
	defer teardown()

	commodityService := CommodityService{}

	created, err := commodityService.AddCommodity(&model.Commodity{
		AdminId: "owner-1", Metal: "gold", Purity: "999.9", Unit: "g",
	})
	assert.NoError(t, err)

	updated, err := commodityService.UpdateCommodity(created.Id, "owner-1", map[string]float64{
		"buyPremium":  2.5,
		"sellCharges": 1,
	})
	assert.NoError(t, err)
	assert.Equal(t, 2.5, updated.BuyPremium)
	assert.Equal(t, float64(1), updated.SellCharges)
	assert.Equal(t, float64(0), updated.SellPremium)
	assert.Equal(t, "GOLD", updated.Metal)

	// Another owner's id behaves like a missing one.
	_, err = commodityService.UpdateCommodity(created.Id, "owner-2", map[string]float64{
		"buyPremium": 9,
	})
	assert.ErrorIs(t, err, ErrCommodityNotFound)

	_, err = commodityService.UpdateCommodity("no-such-id", "owner-1", map[string]float64{
		"buyPremium": 9,
	})
	assert.ErrorIs(t, err, ErrCommodityNotFound)
}

func TestDelCommodity(t *testing.T) {
	setup()
	defer teardown()

	commodityService := CommodityService{}

	created, err := commodityService.AddCommodity(&model.Commodity{
		AdminId: "owner-1", Metal: "gold", Purity: "999.9", Unit: "g",
	})
	assert.NoError(t, err)

	err = commodityService.DelCommodity(created.Id, "owner-2")
	assert.ErrorIs(t, err, ErrCommodityNotFound)

	err = commodityService.DelCommodity(created.Id, "owner-1")
	assert.NoError(t, err)

	err = commodityService.DelCommodity(created.Id, "owner-1")
	assert.ErrorIs(t, err, ErrCommodityNotFound)
}
