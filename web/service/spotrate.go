package service

import (
	"github.com/aurify/priceboard/database"
	"github.com/aurify/priceboard/database/model"
)

// Default spreads served when an owner has no stored settings.
const (
	DefaultGoldBidSpread   = 0
	DefaultGoldAskSpread   = 0.5
	DefaultSilverBidSpread = 0
	DefaultSilverAskSpread = 0.05
)

// SpotRateService manages the single spread-settings row per owner.
type SpotRateService struct{}

func defaultSettings(userId string) *model.SpotRateSettings {
	return &model.SpotRateSettings{
		UserId:          userId,
		GoldBidSpread:   DefaultGoldBidSpread,
		GoldAskSpread:   DefaultGoldAskSpread,
		SilverBidSpread: DefaultSilverBidSpread,
		SilverAskSpread: DefaultSilverAskSpread,
	}
}

// GetSettings returns the owner's stored spreads, or the defaults when no
// row exists. A read never creates a row.
func (s *SpotRateService) GetSettings(userId string) (*model.SpotRateSettings, error) {
	db := database.GetDB()

	settings := &model.SpotRateSettings{}
	err := db.Model(model.SpotRateSettings{}).
		Where("user_id = ?", userId).
		First(settings).
		Error
	if database.IsNotFound(err) {
		return defaultSettings(userId), nil
	} else if err != nil {
		return nil, err
	}
	return settings, nil
}

// UpdateSettings applies the given spread columns to the owner's row,
// creating it from the defaults first when absent, and returns the resulting
// row. A concurrent create loses to the unique index on user_id and falls
// back to an update.
func (s *SpotRateService) UpdateSettings(userId string, fields map[string]any) (*model.SpotRateSettings, error) {
	db := database.GetDB()

	settings := &model.SpotRateSettings{}
	err := db.Model(model.SpotRateSettings{}).
		Where("user_id = ?", userId).
		First(settings).
		Error
	if database.IsNotFound(err) {
		settings = defaultSettings(userId)
		applyFields(settings, fields)
		err = db.Create(settings).Error
		if err == nil {
			return settings, nil
		}
		if !database.IsDuplicateKey(err) {
			return nil, err
		}
		// Lost the race, update the row the winner created.
	} else if err != nil {
		return nil, err
	}

	if len(fields) > 0 {
		err = db.Model(model.SpotRateSettings{}).
			Where("user_id = ?", userId).
			Updates(fields).
			Error
		if err != nil {
			return nil, err
		}
	}

	result := &model.SpotRateSettings{}
	err = db.Model(model.SpotRateSettings{}).
		Where("user_id = ?", userId).
		First(result).
		Error
	if err != nil {
		return nil, err
	}
	return result, nil
}

func applyFields(settings *model.SpotRateSettings, fields map[string]any) {
	for key, value := range fields {
		v, ok := value.(float64)
		if !ok {
			continue
		}
		switch key {
		case "gold_bid_spread":
			settings.GoldBidSpread = v
		case "gold_ask_spread":
			settings.GoldAskSpread = v
		case "silver_bid_spread":
			settings.SilverBidSpread = v
		case "silver_ask_spread":
			settings.SilverAskSpread = v
		}
	}
}
