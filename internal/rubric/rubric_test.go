package rubric

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGet(t *testing.T) {
	t.Run("known platform", func(t *testing.T) {
		r, err := Get("TikTok")
		require.NoError(t, err)
		assert.Equal(t, "TikTok", r.Platform)
		assert.Len(t, r.Criteria, 5)
	})

	t.Run("unknown platform", func(t *testing.T) {
		_, err := Get("MySpace")
		assert.ErrorIs(t, err, ErrUnknownPlatform)
	})
}

func TestPlatforms(t *testing.T) {
	platforms := Platforms()
	assert.Equal(t, []string{"TikTok", "Twitter/X", "YouTube", "Instagram"}, platforms)

	// Every listed platform must have a rubric.
	for _, p := range platforms {
		_, err := Get(p)
		assert.NoError(t, err, p)
	}
}

func TestWeightsSumToOne(t *testing.T) {
	for _, p := range Platforms() {
		t.Run(p, func(t *testing.T) {
			r, err := Get(p)
			require.NoError(t, err)

			var sum float64
			for _, c := range r.Criteria {
				assert.Greater(t, c.Weight, 0.0)
				assert.LessOrEqual(t, c.Weight, 1.0)
				assert.NotEmpty(t, c.Description)
				sum += c.Weight
			}
			assert.InDelta(t, 1.0, sum, 1e-9)
		})
	}
}

func TestPromptBlock(t *testing.T) {
	r, err := Get("Twitter/X")
	require.NoError(t, err)

	block := r.PromptBlock()
	assert.Contains(t, block, "Platform: Twitter/X")
	assert.Contains(t, block, "Scoring Criteria (use these exact weights):")
	assert.Contains(t, block, "- hot_take_factor (30%):")
	assert.Contains(t, block, "- hashtag_strategy (10%):")
}
