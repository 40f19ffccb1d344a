package catalog

import (
	"testing"

	"github.com/roycode360/theglamstore-sub001/models"
	"github.com/stretchr/testify/assert"
)

func TestProjectProduct_FillsDefaults(t *testing.T) {
	v := projectProduct(models.Product{Name: "Bare", Price: 19.99})

	assert.Equal(t, "", v.Slug)
	assert.Equal(t, "", v.Brand)
	assert.NotNil(t, v.Sizes)
	assert.NotNil(t, v.Colors)
	assert.NotNil(t, v.Images)
	assert.Empty(t, v.Sizes)
	assert.Nil(t, v.SalePrice)
	assert.Nil(t, v.StockQuantity)
	assert.False(t, v.IsFeatured)
}

func TestProjectPage_TotalPages(t *testing.T) {
	cases := []struct {
		total    int64
		pageSize int
		want     int
	}{
		{0, 10, 1},
		{1, 10, 1},
		{10, 10, 1},
		{11, 10, 2},
		{25, 10, 3},
	}
	for _, tc := range cases {
		page := projectPage(nil, tc.total, 1, tc.pageSize)
		assert.Equal(t, tc.want, page.TotalPages, "total=%d pageSize=%d", tc.total, tc.pageSize)
	}
}
