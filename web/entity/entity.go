// Package entity defines the JSON payloads shared by the web layer.
package entity

import (
	"github.com/aurify/priceboard/database/model"
)

// Msg is the common response envelope. Every API response carries Success;
// the remaining fields are set per endpoint.
type Msg struct {
	Success bool              `json:"success"`
	Message string            `json:"message,omitempty"`
	Errors  map[string]string `json:"errors,omitempty"`
	Data    any               `json:"data,omitempty"`
	Token   string            `json:"token,omitempty"`
	User    *SanitizedUser    `json:"user,omitempty"`
}

// SanitizedUser is the account projection returned to clients. It never
// carries the password hash.
type SanitizedUser struct {
	Id          string `json:"id"`
	CompanyName string `json:"companyName"`
	Email       string `json:"email"`
	Phone       string `json:"phone"`
	Role        string `json:"role"`
	Status      string `json:"status"`
}

// SanitizeUser maps an account row to its client projection.
func SanitizeUser(u *model.User) *SanitizedUser {
	return &SanitizedUser{
		Id:          u.Id,
		CompanyName: u.CompanyName,
		Email:       u.Email,
		Phone:       u.Phone,
		Role:        u.Role,
		Status:      u.Status,
	}
}

// CommodityView is the commodity projection returned by the API.
type CommodityView struct {
	Id          string  `json:"id"`
	Metal       string  `json:"metal"`
	Purity      string  `json:"purity"`
	Unit        string  `json:"unit"`
	BuyPremium  float64 `json:"buyPremium"`
	SellPremium float64 `json:"sellPremium"`
	SellCharges float64 `json:"sellCharges"`
	BuyCharges  float64 `json:"buyCharges"`
}

// NewCommodityView maps a commodity row to its client projection.
func NewCommodityView(c *model.Commodity) CommodityView {
	return CommodityView{
		Id:          c.Id,
		Metal:       c.Metal,
		Purity:      c.Purity,
		Unit:        c.Unit,
		BuyPremium:  c.BuyPremium,
		SellPremium: c.SellPremium,
		SellCharges: c.SellCharges,
		BuyCharges:  c.BuyCharges,
	}
}

// SpotRateView is the spread projection returned by the API.
type SpotRateView struct {
	GoldBidSpread   float64 `json:"goldBidSpread"`
	GoldAskSpread   float64 `json:"goldAskSpread"`
	SilverBidSpread float64 `json:"silverBidSpread"`
	SilverAskSpread float64 `json:"silverAskSpread"`
}

// NewSpotRateView maps a settings row to its client projection.
func NewSpotRateView(s *model.SpotRateSettings) SpotRateView {
	return SpotRateView{
		GoldBidSpread:   s.GoldBidSpread,
		GoldAskSpread:   s.GoldAskSpread,
		SilverBidSpread: s.SilverBidSpread,
		SilverAskSpread: s.SilverAskSpread,
	}
}
