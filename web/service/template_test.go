package service

import (
	"encoding/json"
	"testing"

	"github.com/aurify/priceboard/database"
	"github.com/aurify/priceboard/database/model"
	"github.com/aurify/priceboard/util/json_util"

	"github.com/stretchr/testify/assert"
)

func TestGetConfigDefault(t *testing.T) {
	setup()
	defer teardown()

	templateService := TemplateService{}

	raw, err := templateService.GetConfig("owner-1", "template-7")
	assert.NoError(t, err)

	var payload map[string]any
	assert.NoError(t, json.Unmarshal(raw, &payload))
	assert.Equal(t, "template-7", payload["templateId"])
	assert.Equal(t, "#0b1120", payload["backgroundColor"])
	assert.Equal(t, "#ffffff", payload["textColor"])
	assert.Equal(t, "Inter", payload["fontFamily"])
	assert.Len(t, payload["elements"], 2)

	// The read must not have created a row.
	var count int64
	err = database.GetDB().Model(model.TemplateConfig{}).Count(&count).Error
	assert.NoError(t, err)
	assert.Equal(t, int64(0), count)
}

func TestUpsertConfigReplacesWholesale(t *testing.T) {
	setup()
	defer teardown()

	templateService := TemplateService{}

	first := json_util.RawMessage(`{"backgroundColor":"#000000","extra":{"a":1}}`)
	stored, err := templateService.UpsertConfig("owner-1", "template-7", first)
	assert.NoError(t, err)
	assert.JSONEq(t, string(first), string(stored))

	raw, err := templateService.GetConfig("owner-1", "template-7")
	assert.NoError(t, err)
	assert.JSONEq(t, string(first), string(raw))

	// No merge: the second payload replaces the first entirely.
	second := json_util.RawMessage(`{"fontFamily":"Roboto"}`)
	_, err = templateService.UpsertConfig("owner-1", "template-7", second)
	assert.NoError(t, err)

	raw, err = templateService.GetConfig("owner-1", "template-7")
	assert.NoError(t, err)
	assert.JSONEq(t, `{"fontFamily":"Roboto"}`, string(raw))

	var count int64
	err = database.GetDB().Model(model.TemplateConfig{}).Count(&count).Error
	assert.NoError(t, err)
	assert.Equal(t, int64(1), count)

	// Other owners and templates are unaffected.
	raw, err = templateService.GetConfig("owner-2", "template-7")
	assert.NoError(t, err)
	var payload map[string]any
	assert.NoError(t, json.Unmarshal(raw, &payload))
	assert.Equal(t, "#0b1120", payload["backgroundColor"])

	raw, err = templateService.GetConfig("owner-1", "template-8")
	assert.NoError(t, err)
	assert.NoError(t, json.Unmarshal(raw, &payload))
	assert.Equal(t, "template-8", payload["templateId"])
}
