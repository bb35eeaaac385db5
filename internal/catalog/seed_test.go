package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSeed(t *testing.T) {
	products := Seed()
	assert.Len(t, products, 8)

	ids := map[uint]bool{}
	for _, p := range products {
		assert.False(t, ids[p.ID], "duplicate id %d", p.ID)
		ids[p.ID] = true

		assert.NotEmpty(t, p.Name)
		assert.Greater(t, p.Price, 0.0)
		assert.NotEmpty(t, p.Image)
		assert.NotEmpty(t, p.Description)
		assert.NotEmpty(t, p.Category)
		assert.Positive(t, p.DurationMin)
	}
}

func TestSeed_ReturnsFreshSlice(t *testing.T) {
	first := Seed()
	first[0].Name = "changed"
	assert.Equal(t, "Braids & Cornrows", Seed()[0].Name)
}
