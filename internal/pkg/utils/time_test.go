package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNextTimestamp(t *testing.T) {
	t.Run("Advances Past Future Previous", func(t *testing.T) {
		previous := FormatTimestamp(time.Now().Add(time.Hour))
		next := NextTimestamp(previous)

		prev, err := time.Parse(TimestampLayout, previous)
		require.NoError(t, err)
		parsed, err := time.Parse(TimestampLayout, next)
		require.NoError(t, err)
		assert.Equal(t, prev.Add(time.Millisecond), parsed)
	})

	t.Run("Same Millisecond", func(t *testing.T) {
		now := Now()
		assert.Greater(t, NextTimestamp(now), now)
	})

	t.Run("Unparseable Previous", func(t *testing.T) {
		next := NextTimestamp("")
		_, err := time.Parse(TimestampLayout, next)
		assert.NoError(t, err)
	})
}
