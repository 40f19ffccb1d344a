package catalog

import (
	"context"
	"regexp"
	"testing"

	"github.com/roycode360/theglamstore-sub001/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func matchesAny(t *testing.T, patterns []Pattern, value string) bool {
	t.Helper()
	for _, p := range patterns {
		rx, err := regexp.Compile("(?i)" + p.Expr)
		require.NoError(t, err)
		if rx.MatchString(value) {
			return true
		}
	}
	return false
}

func TestBuildMatchSet_RawTokenOnlyWhenUnmatched(t *testing.T) {
	patterns := BuildMatchSet("limited edition", nil, nil)

	// strict + segment form of the raw token, nothing else
	require.Len(t, patterns, 2)
	assert.True(t, matchesAny(t, patterns, "Limited Edition"))
	assert.True(t, matchesAny(t, patterns, "Sale > Limited-Edition"))
	assert.False(t, matchesAny(t, patterns, "Unlimited Editions"))
}

func TestBuildMatchSet_DeduplicatesEqualValues(t *testing.T) {
	// slug and name normalize to the identical pattern pair
	matched := cat(1, "sneakers", "sneakers", nil)
	patterns := BuildMatchSet("sneakers", &matched, nil)

	seen := make(map[string]struct{})
	for _, p := range patterns {
		_, dup := seen[p.Key()]
		assert.False(t, dup, "duplicate pattern %q", p.Expr)
		seen[p.Key()] = struct{}{}
	}
	assert.Len(t, patterns, 2)
}

func TestBuildMatchSet_SkipsEmptyValues(t *testing.T) {
	matched := cat(1, "", "sneakers", nil)
	child := cat(2, "Heels", "", nil)

	patterns := BuildMatchSet("sneakers", &matched, []models.Category{child})

	for _, p := range patterns {
		assert.NotEmpty(t, p.Expr)
	}
	assert.True(t, matchesAny(t, patterns, "Heels"))
}

// End-to-end over the resolver + builder: a category filter with descendants
// and denormalized product text.
func TestMatchSet_WomensShoesScenario(t *testing.T) {
	shoes := cat(1, "Women's Shoes", "womens-shoes", nil)
	sneakers := cat(2, "Sneakers", "sneakers", oidOf(shoes))
	heels := cat(3, "Heels", "heels", oidOf(shoes))

	store := &mockCategoryStore{categories: []models.Category{shoes, sneakers, heels}}

	matched, descendants, err := ResolveHierarchy(context.Background(), store, "womens-shoes")
	require.NoError(t, err)
	require.NotNil(t, matched)

	patterns := BuildMatchSet("womens-shoes", matched, descendants)

	assert.True(t, matchesAny(t, patterns, "Sneakers"))
	assert.True(t, matchesAny(t, patterns, "Heels"))
	assert.True(t, matchesAny(t, patterns, "Women's Shoes"))
	assert.False(t, matchesAny(t, patterns, "Men's Shoes"))
}
