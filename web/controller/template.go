package controller

import (
	"encoding/json"
	"net/http"

	"github.com/aurify/priceboard/util/json_util"
	"github.com/aurify/priceboard/web/middleware"
	"github.com/aurify/priceboard/web/service"

	"github.com/gin-gonic/gin"
)

// TemplateController handles the per-owner display template configurations.
type TemplateController struct {
	templateService service.TemplateService
}

// NewTemplateController creates a new TemplateController and initializes its
// routes.
func NewTemplateController(g *gin.RouterGroup) *TemplateController {
	a := &TemplateController{}
	a.initRouter(g)
	return a
}

func (a *TemplateController) initRouter(g *gin.RouterGroup) {
	g = g.Group("/templates")

	g.GET("/:templateId", a.getConfig)
	g.PUT("/:templateId", a.upsertConfig)
}

// getConfig returns the stored payload for the template, or the built-in
// default annotated with the requested template id.
func (a *TemplateController) getConfig(c *gin.Context) {
	claims := middleware.GetClaims(c)

	config, err := a.templateService.GetConfig(claims.Id, c.Param("templateId"))
	if err != nil {
		jsonInternal(c, "Failed to load template config", err)
		return
	}
	jsonData(c, http.StatusOK, config)
}

// upsertConfig replaces the stored payload wholesale. The payload is opaque;
// only its presence is checked.
func (a *TemplateController) upsertConfig(c *gin.Context) {
	body := map[string]any{}
	_ = c.ShouldBindJSON(&body)

	config := body["config"]
	if isFalsy(config) {
		jsonMsg(c, http.StatusBadRequest, "Config payload is required")
		return
	}

	raw, err := json.Marshal(config)
	if err != nil {
		jsonMsg(c, http.StatusBadRequest, "Config payload is required")
		return
	}

	claims := middleware.GetClaims(c)
	stored, err := a.templateService.UpsertConfig(claims.Id, c.Param("templateId"), json_util.RawMessage(raw))
	if err != nil {
		jsonInternal(c, "Failed to save template config", err)
		return
	}
	jsonData(c, http.StatusOK, stored)
}
