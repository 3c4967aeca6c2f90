package templates

import (
	"context"
	"net/http"
	"testing"

	"brm-service/internal/app/services/core/coretest"
	"brm-service/internal/pkg/exceptions"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestCreateTemplateAssignsIDs(t *testing.T) {
	repos, _ := coretest.NewRepositories(t)
	uc := NewTemplateUsecase(repos, zap.NewNop())
	ctx := context.Background()

	template, err := uc.CreateTemplate(ctx, []byte(`{
		"name": "Onboarding",
		"sections": [
			{"id": "s1", "title": "Basics", "questions": [{"id": "q1", "text": "Name", "type": "text", "required": true}]},
			{"title": "Extra", "questions": [{"text": "Notes", "type": "text"}]}
		]
	}`))
	require.NoError(t, err)

	require.Len(t, template.Sections, 2)
	assert.Equal(t, "s1", template.Sections[0].ID)
	assert.Equal(t, "q1", template.Sections[0].Questions[0].ID)
	assert.NotEmpty(t, template.Sections[1].ID)
	assert.NotEmpty(t, template.Sections[1].Questions[0].ID)

	found, err := uc.FindTemplateByID(ctx, template.ID)
	require.NoError(t, err)
	assert.Equal(t, template.Sections, found.Sections)

	_, err = uc.FindTemplateByID(ctx, "missing")
	var customErr *exceptions.CustomError
	require.ErrorAs(t, err, &customErr)
	assert.Equal(t, http.StatusNotFound, customErr.StatusCode)
}

func TestSeedTemplates(t *testing.T) {
	repos, _ := coretest.NewRepositories(t)
	uc := NewTemplateUsecase(repos, zap.NewNop())
	ctx := context.Background()

	defaults, err := DefaultTemplates()
	require.NoError(t, err)
	require.NotEmpty(t, defaults)

	seeded, err := uc.SeedTemplates(ctx, defaults)
	require.NoError(t, err)
	assert.Equal(t, len(defaults), seeded)

	seeded, err = uc.SeedTemplates(ctx, defaults)
	require.NoError(t, err)
	assert.Zero(t, seeded, "a populated collection is left alone")

	templates, err := uc.FindAll(ctx)
	require.NoError(t, err)
	assert.Len(t, templates, len(defaults))
	assert.Equal(t, defaults[0].ID, templates[0].ID)
}
