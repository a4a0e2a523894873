package controller

import (
	"errors"
	"net/http"

	"github.com/aurify/priceboard/database/model"
	"github.com/aurify/priceboard/web/entity"
	"github.com/aurify/priceboard/web/middleware"
	"github.com/aurify/priceboard/web/service"

	"github.com/gin-gonic/gin"
)

// allowedCommodityFields are the only payload keys a PATCH may carry;
// anything else is ignored.
var allowedCommodityFields = []string{"buyPremium", "sellPremium", "sellCharges", "buyCharges"}

// CommodityController handles the owner-scoped commodity resource.
type CommodityController struct {
	commodityService service.CommodityService
}

// NewCommodityController creates a new CommodityController and initializes
// its routes.
func NewCommodityController(g *gin.RouterGroup) *CommodityController {
	a := &CommodityController{}
	a.initRouter(g)
	return a
}

func (a *CommodityController) initRouter(g *gin.RouterGroup) {
	g = g.Group("/commodities")

	g.GET("", a.list)
	g.POST("", a.create)
	g.PATCH("/:id", a.update)
	g.DELETE("/:id", a.del)
}

// list returns the owner's commodities, most recent first.
func (a *CommodityController) list(c *gin.Context) {
	claims := middleware.GetClaims(c)

	commodities, err := a.commodityService.GetCommodities(claims.Id)
	if err != nil {
		jsonInternal(c, "Failed to fetch commodities", err)
		return
	}

	views := make([]entity.CommodityView, 0, len(commodities))
	for _, commodity := range commodities {
		views = append(views, entity.NewCommodityView(commodity))
	}
	jsonData(c, http.StatusOK, views)
}

// create adds a commodity. Metal and purity must be truthy; unit is only
// rejected when absent or null, so a zero or empty-string unit passes.
func (a *CommodityController) create(c *gin.Context) {
	body := map[string]any{}
	_ = c.ShouldBindJSON(&body)

	unit, unitPresent := body["unit"]
	if isFalsy(body["metal"]) || isFalsy(body["purity"]) || !unitPresent || unit == nil {
		jsonMsg(c, http.StatusBadRequest, "metal, purity, and unit are required")
		return
	}

	claims := middleware.GetClaims(c)
	commodity := &model.Commodity{
		AdminId:     claims.Id,
		Metal:       stringify(body["metal"]),
		Purity:      stringify(body["purity"]),
		Unit:        stringify(unit),
		BuyPremium:  toNumber(body["buyPremium"]),
		SellPremium: toNumber(body["sellPremium"]),
		SellCharges: toNumber(body["sellCharges"]),
		BuyCharges:  toNumber(body["buyCharges"]),
	}

	created, err := a.commodityService.AddCommodity(commodity)
	var validationErr *service.ValidationError
	if errors.Is(err, service.ErrCommodityExists) {
		jsonMsg(c, http.StatusConflict, "This commodity already exists")
		return
	} else if errors.As(err, &validationErr) {
		c.JSON(http.StatusBadRequest, entity.Msg{
			Success: false,
			Message: "Validation failed",
			Errors:  validationErr.Fields,
		})
		return
	} else if err != nil {
		jsonInternal(c, "Failed to create commodity", err)
		return
	}

	jsonData(c, http.StatusCreated, entity.NewCommodityView(created))
}

// update patches the premium/charge fields of the owner's commodity. Keys
// outside the allowed set are ignored; a payload with none of them is a 400.
func (a *CommodityController) update(c *gin.Context) {
	body := map[string]any{}
	_ = c.ShouldBindJSON(&body)

	fields := make(map[string]float64)
	for _, key := range allowedCommodityFields {
		if value, present := body[key]; present {
			fields[key] = toNumber(value)
		}
	}
	if len(fields) == 0 {
		jsonMsg(c, http.StatusBadRequest, "No valid fields to update")
		return
	}

	claims := middleware.GetClaims(c)
	commodity, err := a.commodityService.UpdateCommodity(c.Param("id"), claims.Id, fields)
	var validationErr *service.ValidationError
	if errors.Is(err, service.ErrCommodityNotFound) {
		jsonMsg(c, http.StatusNotFound, "Commodity not found")
		return
	} else if errors.As(err, &validationErr) {
		c.JSON(http.StatusBadRequest, entity.Msg{
			Success: false,
			Message: "Validation failed",
			Errors:  validationErr.Fields,
		})
		return
	} else if err != nil {
		jsonInternal(c, "Failed to update commodity", err)
		return
	}

	jsonData(c, http.StatusOK, entity.NewCommodityView(commodity))
}

// del removes the owner's commodity. A foreign-owned id looks the same as a
// missing one.
func (a *CommodityController) del(c *gin.Context) {
	claims := middleware.GetClaims(c)

	err := a.commodityService.DelCommodity(c.Param("id"), claims.Id)
	if errors.Is(err, service.ErrCommodityNotFound) {
		jsonMsg(c, http.StatusNotFound, "Commodity not found")
		return
	} else if err != nil {
		jsonInternal(c, "Failed to delete commodity", err)
		return
	}

	jsonMsg(c, http.StatusOK, "Commodity deleted")
}
