package search

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	assert.Equal(t, "pool", Normalize("  POOL "))
	assert.Equal(t, "", Normalize("   "))
}

func TestAny(t *testing.T) {
	assert.True(t, Any("guest", "Asha", "Guest Services"))
	assert.False(t, Any("safety", "Asha", "Guest Services"))
	assert.True(t, Any("", "Asha"))
	assert.False(t, Any("x"))
}

func TestFilter(t *testing.T) {
	type product struct{ Description, Category string }
	items := []product{
		{"Pool Noodles", "Toys"},
		{"Sunscreen SPF 50", "Safety"},
		{"Pool Towels", "Linen"},
	}
	fields := func(p product) []string { return []string{p.Description, p.Category} }

	assert.Len(t, Filter(items, "pool", fields), 2)
	assert.Equal(t, []product{{"Sunscreen SPF 50", "Safety"}}, Filter(items, "SAFE", fields))
	assert.Len(t, Filter(items, " ", fields), 3)
	assert.Empty(t, Filter(items, "cable", fields))
}
