package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewInternalConfig(t *testing.T) {
	t.Setenv("APP_SUBMIT_POLICY", "require_answers")
	t.Setenv("APP_CORS_ALLOWED_ORIGINS", "http://a.test, http://b.test,")
	t.Setenv("APP_MAX_REQUESTS", "not-a-number")

	internalConfig := NewInternalConfig()

	assert.Equal(t, "require_answers", internalConfig.App.SubmitPolicy)
	assert.Equal(t, []string{"http://a.test", "http://b.test"}, internalConfig.App.CorsAllowedOrigins)
	assert.Equal(t, 0, internalConfig.App.MaxRequests, "invalid numbers fall back to the default")
	assert.Equal(t, "/api", internalConfig.App.EndpointPrefix)
}

func TestValidate(t *testing.T) {
	t.Run("Defaults Are Valid", func(t *testing.T) {
		err := Validate(NewDriverConfig(), NewInternalConfig())
		require.NoError(t, err)
	})

	t.Run("Unknown Storage Driver", func(t *testing.T) {
		t.Setenv("STORAGE_DRIVER", "postgres")

		err := Validate(NewDriverConfig(), NewInternalConfig())
		require.Error(t, err)
		assert.Contains(t, err.Error(), "Driver")
	})

	t.Run("Unknown Submit Policy", func(t *testing.T) {
		t.Setenv("APP_SUBMIT_POLICY", "sometimes")

		err := Validate(NewDriverConfig(), NewInternalConfig())
		require.Error(t, err)
		assert.Contains(t, err.Error(), "SubmitPolicy")
	})
}
