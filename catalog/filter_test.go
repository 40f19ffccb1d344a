package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/v2/bson"
)

func f64(v float64) *float64 { return &v }
func boolp(v bool) *bool     { return &v }

func TestComposeFilter_NoFilters(t *testing.T) {
	assert.Equal(t, bson.M{}, ComposeFilter(Filters{}, nil))
}

func TestComposeFilter_SingleConditionIsNotWrapped(t *testing.T) {
	filter := ComposeFilter(Filters{OnSaleOnly: true}, nil)
	assert.Equal(t, bson.M{"salePrice": bson.M{"$ne": nil}}, filter)
}

func TestComposeFilter_Search(t *testing.T) {
	filter := ComposeFilter(Filters{Search: "silk"}, nil)

	rx := bson.Regex{Pattern: "silk", Options: "i"}
	assert.Equal(t, bson.M{"$or": bson.A{
		bson.M{"name": rx},
		bson.M{"brand": rx},
		bson.M{"category": rx},
	}}, filter)
}

func TestComposeFilter_CategorySinglePattern(t *testing.T) {
	p, ok := Strict("heels")
	require.True(t, ok)

	filter := ComposeFilter(Filters{}, []Pattern{p})
	assert.Equal(t, bson.M{"category": p.Regex()}, filter)
}

func TestComposeFilter_CategoryMultiplePatternsOr(t *testing.T) {
	p1, _ := Strict("heels")
	p2, _ := Segment("heels")

	filter := ComposeFilter(Filters{}, []Pattern{p1, p2})
	assert.Equal(t, bson.M{"$or": bson.A{
		bson.M{"category": p1.Regex()},
		bson.M{"category": p2.Regex()},
	}}, filter)
}

func TestComposeFilter_Brand(t *testing.T) {
	filter := ComposeFilter(Filters{Brand: "jimmy-choo"}, nil)

	p, _ := Strict("jimmy-choo")
	assert.Equal(t, bson.M{"brand": p.Regex()}, filter)

	assert.Equal(t, bson.M{}, ComposeFilter(Filters{Brand: "   "}, nil))
}

func TestComposeFilter_PriceRangeMatchesSaleOrListPrice(t *testing.T) {
	filter := ComposeFilter(Filters{MinPrice: f64(50), MaxPrice: f64(70)}, nil)

	assert.Equal(t, bson.M{"$or": bson.A{
		bson.M{"salePrice": bson.M{"$ne": nil, "$gte": 50.0, "$lte": 70.0}},
		bson.M{"price": bson.M{"$gte": 50.0, "$lte": 70.0}},
	}}, filter)
}

func TestComposeFilter_PriceRangeMinOnly(t *testing.T) {
	filter := ComposeFilter(Filters{MinPrice: f64(100)}, nil)

	assert.Equal(t, bson.M{"$or": bson.A{
		bson.M{"salePrice": bson.M{"$ne": nil, "$gte": 100.0}},
		bson.M{"price": bson.M{"$gte": 100.0}},
	}}, filter)
}

func TestComposeFilter_ActiveFlag(t *testing.T) {
	assert.Equal(t, bson.M{"isActive": true}, ComposeFilter(Filters{Active: boolp(true)}, nil))
	assert.Equal(t, bson.M{"isActive": false}, ComposeFilter(Filters{Active: boolp(false)}, nil))
}

func TestComposeFilter_StockGates(t *testing.T) {
	inStock := bson.M{"stockQuantity": bson.M{"$gt": 0}}
	outOfStock := bson.M{"stockQuantity": bson.M{"$not": bson.M{"$gt": 0}}}

	assert.Equal(t, inStock, ComposeFilter(Filters{InStockOnly: true}, nil))
	assert.Equal(t, outOfStock, ComposeFilter(Filters{OutOfStock: true}, nil))

	// inStockOnly wins when both are somehow set
	assert.Equal(t, inStock, ComposeFilter(Filters{InStockOnly: true, OutOfStock: true}, nil))
}

func TestComposeFilter_AllConditionsAnded(t *testing.T) {
	p, _ := Strict("heels")
	filter := ComposeFilter(Filters{
		Search:      "red",
		Brand:       "gucci",
		MinPrice:    f64(10),
		Active:      boolp(true),
		InStockOnly: true,
		OnSaleOnly:  true,
	}, []Pattern{p})

	conds, ok := filter["$and"].([]bson.M)
	require.True(t, ok, "expected an $and composition")
	assert.Len(t, conds, 7)
}
