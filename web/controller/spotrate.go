package controller

import (
	"net/http"

	"github.com/aurify/priceboard/web/entity"
	"github.com/aurify/priceboard/web/middleware"
	"github.com/aurify/priceboard/web/service"

	"github.com/gin-gonic/gin"
)

// spreadColumns maps the patchable payload fields to their columns.
var spreadColumns = map[string]string{
	"goldBidSpread":   "gold_bid_spread",
	"goldAskSpread":   "gold_ask_spread",
	"silverBidSpread": "silver_bid_spread",
	"silverAskSpread": "silver_ask_spread",
}

// SpotRateController handles the per-owner spot rate spread settings.
type SpotRateController struct {
	spotRateService service.SpotRateService
}

// NewSpotRateController creates a new SpotRateController and initializes its
// routes.
func NewSpotRateController(g *gin.RouterGroup) *SpotRateController {
	a := &SpotRateController{}
	a.initRouter(g)
	return a
}

func (a *SpotRateController) initRouter(g *gin.RouterGroup) {
	g = g.Group("/spotrate")

	g.GET("/settings", a.getSettings)
	g.PATCH("/settings", a.updateSettings)
}

// getSettings returns the owner's spreads, falling back to the defaults when
// nothing is stored. The read never creates a row.
func (a *SpotRateController) getSettings(c *gin.Context) {
	claims := middleware.GetClaims(c)

	settings, err := a.spotRateService.GetSettings(claims.Id)
	if err != nil {
		jsonInternal(c, "Failed to fetch settings", err)
		return
	}
	jsonData(c, http.StatusOK, entity.NewSpotRateView(settings))
}

// updateSettings upserts any subset of the four spread fields. Entries that
// are not JSON numbers are dropped, not coerced.
func (a *SpotRateController) updateSettings(c *gin.Context) {
	body := map[string]any{}
	_ = c.ShouldBindJSON(&body)

	fields := make(map[string]any)
	for key, column := range spreadColumns {
		if value, ok := body[key].(float64); ok {
			fields[column] = value
		}
	}

	claims := middleware.GetClaims(c)
	settings, err := a.spotRateService.UpdateSettings(claims.Id, fields)
	if err != nil {
		jsonInternal(c, "Failed to update settings", err)
		return
	}
	jsonData(c, http.StatusOK, entity.NewSpotRateView(settings))
}
