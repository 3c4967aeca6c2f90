package templates

import (
	_ "embed"

	"brm-service/internal/app/models"

	"github.com/goccy/go-json"
)

//go:embed seed/default_templates.json
var defaultTemplates []byte

// DefaultTemplates returns the templates seeded into an empty collection.
func DefaultTemplates() ([]models.Template, error) {
	var templates []models.Template
	if err := json.Unmarshal(defaultTemplates, &templates); err != nil {
		return nil, err
	}
	return templates, nil
}
