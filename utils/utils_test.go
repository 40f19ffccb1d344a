package utils

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateSlug(t *testing.T) {
	cases := map[string]string{
		"Women's Shoes":   "women-s-shoes",
		"Éclat de Soirée": "eclat-de-soiree",
		"  Bags & More  ": "bags-more",
		"SALE!!!":         "sale",
	}
	for in, want := range cases {
		assert.Equal(t, want, GenerateSlug(in), "input %q", in)
	}
}

func TestParseBoolQuery(t *testing.T) {
	b, err := ParseBoolQuery("")
	require.NoError(t, err)
	assert.Nil(t, b)

	b, err = ParseBoolQuery("true")
	require.NoError(t, err)
	require.NotNil(t, b)
	assert.True(t, *b)

	_, err = ParseBoolQuery("maybe")
	assert.Error(t, err)
}

func TestParseFloatQuery(t *testing.T) {
	f, err := ParseFloatQuery("")
	require.NoError(t, err)
	assert.Nil(t, f)

	f, err = ParseFloatQuery("59.90")
	require.NoError(t, err)
	require.NotNil(t, f)
	assert.InDelta(t, 59.90, *f, 1e-9)

	_, err = ParseFloatQuery("cheap")
	assert.Error(t, err)
}

func TestParseIntDefault(t *testing.T) {
	assert.Equal(t, 7, ParseIntDefault("", 7))
	assert.Equal(t, 3, ParseIntDefault("3", 7))
	assert.Equal(t, 7, ParseIntDefault("x", 7))
}

func TestNewOrderNumber(t *testing.T) {
	a := NewOrderNumber()
	b := NewOrderNumber()

	assert.True(t, strings.HasPrefix(a, "GS-"))
	assert.NotEqual(t, a, b)
}

func TestObjectNameFromGCSPublicURL(t *testing.T) {
	obj, err := ObjectNameFromGCSPublicURL("glamstore", "https://storage.googleapis.com/glamstore/products/heels/1.jpg")
	require.NoError(t, err)
	assert.Equal(t, "products/heels/1.jpg", obj)

	obj, err = ObjectNameFromGCSPublicURL("glamstore", "https://glamstore.storage.googleapis.com/products/heels/2.jpg")
	require.NoError(t, err)
	assert.Equal(t, "products/heels/2.jpg", obj)

	_, err = ObjectNameFromGCSPublicURL("glamstore", "https://example.com/whatever.jpg")
	assert.Error(t, err)
}
