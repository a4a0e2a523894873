package service

import (
	"encoding/json"

	"github.com/aurify/priceboard/database"
	"github.com/aurify/priceboard/database/model"
	"github.com/aurify/priceboard/util/json_util"
)

// TemplateService stores one opaque display configuration per
// (owner, template).
type TemplateService struct{}

// templateElement is one toggleable display element of the default payload.
type templateElement struct {
	Key     string `json:"key"`
	Enabled bool   `json:"enabled"`
}

// defaultTemplateConfig is the built-in payload served when an owner has not
// stored a configuration for the template yet.
type defaultTemplateConfig struct {
	TemplateId      string            `json:"templateId"`
	BackgroundColor string            `json:"backgroundColor"`
	TextColor       string            `json:"textColor"`
	FontFamily      string            `json:"fontFamily"`
	Elements        []templateElement `json:"elements"`
}

// DefaultConfig returns the built-in payload annotated with the requested
// template id.
func (s *TemplateService) DefaultConfig(templateId string) json_util.RawMessage {
	payload, _ := json.Marshal(defaultTemplateConfig{
		TemplateId:      templateId,
		BackgroundColor: "#0b1120",
		TextColor:       "#ffffff",
		FontFamily:      "Inter",
		Elements: []templateElement{
			{Key: "spotRate", Enabled: true},
			{Key: "commodities", Enabled: true},
		},
	})
	return payload
}

// GetConfig returns the stored payload for (owner, template), or the
// built-in default when absent. A read never creates a row.
func (s *TemplateService) GetConfig(userId string, templateId string) (json_util.RawMessage, error) {
	db := database.GetDB()

	templateConfig := &model.TemplateConfig{}
	err := db.Model(model.TemplateConfig{}).
		Where("user_id = ? and template_id = ?", userId, templateId).
		First(templateConfig).
		Error
	if database.IsNotFound(err) {
		return s.DefaultConfig(templateId), nil
	} else if err != nil {
		return nil, err
	}
	return templateConfig.Config, nil
}

// UpsertConfig replaces the stored payload for (owner, template) wholesale
// and returns it. The payload is opaque, no shape is enforced. A concurrent
// create loses to the unique index on (user_id, template_id) and falls back
// to an update.
func (s *TemplateService) UpsertConfig(userId string, templateId string, config json_util.RawMessage) (json_util.RawMessage, error) {
	db := database.GetDB()

	templateConfig := &model.TemplateConfig{
		UserId:     userId,
		TemplateId: templateId,
		Config:     config,
	}
	err := db.Create(templateConfig).Error
	if err == nil {
		return templateConfig.Config, nil
	}
	if !database.IsDuplicateKey(err) {
		return nil, err
	}

	err = db.Model(model.TemplateConfig{}).
		Where("user_id = ? and template_id = ?", userId, templateId).
		Update("config", config).
		Error
	if err != nil {
		return nil, err
	}
	return config, nil
}
