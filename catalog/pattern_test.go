package catalog

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// compile builds a Go matcher from a pattern the way Mongo would apply it
// with the "i" option set.
func compile(t *testing.T, p Pattern) *regexp.Regexp {
	t.Helper()
	require.Equal(t, "i", p.Options)
	rx, err := regexp.Compile("(?i)" + p.Expr)
	require.NoError(t, err)
	return rx
}

func TestStrict_SeparatorVariants(t *testing.T) {
	p, ok := Strict("womens-shoes")
	require.True(t, ok)
	rx := compile(t, p)

	for _, v := range []string{
		"womens-shoes",
		"womens shoes",
		"womens_shoes",
		"womens/shoes",
		"Womens   Shoes",
		"WOMENS-SHOES",
	} {
		assert.True(t, rx.MatchString(v), "should match %q", v)
	}
}

func TestStrict_VariantInputsProduceSamePattern(t *testing.T) {
	base, ok := Strict("womens shoes")
	require.True(t, ok)

	for _, raw := range []string{"womens-shoes", "womens_shoes", "womens / shoes", "WOMENS SHOES"} {
		p, ok := Strict(raw)
		require.True(t, ok)
		assert.Equal(t, base.Key(), p.Key(), "pattern for %q", raw)
	}
}

func TestStrict_RejectsPartialMatches(t *testing.T) {
	p, ok := Strict("shoes")
	require.True(t, ok)
	rx := compile(t, p)

	assert.True(t, rx.MatchString("Shoes"))
	assert.False(t, rx.MatchString("Horseshoes"))
	assert.False(t, rx.MatchString("Shoes and Bags"))
	assert.False(t, rx.MatchString("Women > Shoes"))
}

func TestStrict_EmptyInput(t *testing.T) {
	for _, raw := range []string{"", "   ", "---", " - _ / "} {
		_, ok := Strict(raw)
		assert.False(t, ok, "input %q should yield no pattern", raw)
	}
}

func TestStrict_EscapesMetacharacters(t *testing.T) {
	p, ok := Strict("bags (leather) 100%.*")
	require.True(t, ok)
	rx := compile(t, p)

	assert.True(t, rx.MatchString("Bags (Leather) 100%.*"))
	assert.False(t, rx.MatchString("Bags Leather 100X"))
}

func TestSegment_BreadcrumbBoundaries(t *testing.T) {
	p, ok := Segment("Shoes")
	require.True(t, ok)
	rx := compile(t, p)

	assert.True(t, rx.MatchString("Women > Shoes > Sneakers"))
	assert.True(t, rx.MatchString("Shoes"))
	assert.True(t, rx.MatchString("shoes/accessories"))
	assert.False(t, rx.MatchString("Horseshoes"))
	assert.False(t, rx.MatchString("Snowshoesing"))
}

func TestSegment_MultiTokenValue(t *testing.T) {
	p, ok := Segment("womens shoes")
	require.True(t, ok)
	rx := compile(t, p)

	assert.True(t, rx.MatchString("Womens Shoes"))
	assert.True(t, rx.MatchString("Sale > Womens-Shoes > Heels"))
	assert.False(t, rx.MatchString("Mens Shoes"))
}

func TestSubstring(t *testing.T) {
	p, ok := Substring("run")
	require.True(t, ok)
	rx := compile(t, p)

	assert.True(t, rx.MatchString("Running Shoes"))
	assert.True(t, rx.MatchString("TRAILRUNNER"))
	assert.False(t, rx.MatchString("walking"))

	_, ok = Substring("   ")
	assert.False(t, ok)
}

func TestSubstring_EscapesMetacharacters(t *testing.T) {
	p, ok := Substring("50% off (today)")
	require.True(t, ok)
	rx := compile(t, p)

	assert.True(t, rx.MatchString("up to 50% off (today) only"))
	assert.False(t, rx.MatchString("50x off today"))
}
