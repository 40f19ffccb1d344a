package catalog

import (
	"go.mongodb.org/mongo-driver/v2/bson"
)

// Filters carries one request's worth of listing parameters.
type Filters struct {
	Search      string
	Category    string
	Brand       string
	MinPrice    *float64
	MaxPrice    *float64
	Active      *bool
	InStockOnly bool
	OutOfStock  bool
	OnSaleOnly  bool
	SortBy      string
	SortDir     string
}

// ComposeFilter merges every active condition into a single predicate. Each
// condition ANDs with the rest; category, search and price alternatives OR
// internally. No active conditions yields an unconstrained predicate.
func ComposeFilter(f Filters, categoryPatterns []Pattern) bson.M {
	conds := make([]bson.M, 0, 7)

	if p, ok := Substring(f.Search); ok {
		rx := p.Regex()
		conds = append(conds, bson.M{"$or": bson.A{
			bson.M{"name": rx},
			bson.M{"brand": rx},
			bson.M{"category": rx},
		}})
	}

	if len(categoryPatterns) == 1 {
		conds = append(conds, bson.M{"category": categoryPatterns[0].Regex()})
	} else if len(categoryPatterns) > 1 {
		alts := make(bson.A, 0, len(categoryPatterns))
		for _, p := range categoryPatterns {
			alts = append(alts, bson.M{"category": p.Regex()})
		}
		conds = append(conds, bson.M{"$or": alts})
	}

	if p, ok := Strict(f.Brand); ok {
		conds = append(conds, bson.M{"brand": p.Regex()})
	}

	if f.MinPrice != nil || f.MaxPrice != nil {
		// In range when either the sale price (if set) or the list price
		// satisfies the bounds. A shopper filtering on budget cares about
		// what they would actually pay.
		saleRange := bson.M{"$ne": nil}
		listRange := bson.M{}
		if f.MinPrice != nil {
			saleRange["$gte"] = *f.MinPrice
			listRange["$gte"] = *f.MinPrice
		}
		if f.MaxPrice != nil {
			saleRange["$lte"] = *f.MaxPrice
			listRange["$lte"] = *f.MaxPrice
		}
		conds = append(conds, bson.M{"$or": bson.A{
			bson.M{"salePrice": saleRange},
			bson.M{"price": listRange},
		}})
	}

	if f.Active != nil {
		conds = append(conds, bson.M{"isActive": *f.Active})
	}

	switch {
	case f.InStockOnly:
		conds = append(conds, bson.M{"stockQuantity": bson.M{"$gt": 0}})
	case f.OutOfStock:
		// $not($gt 0) also catches null/missing: untracked stock is not in stock
		conds = append(conds, bson.M{"stockQuantity": bson.M{"$not": bson.M{"$gt": 0}}})
	}

	if f.OnSaleOnly {
		conds = append(conds, bson.M{"salePrice": bson.M{"$ne": nil}})
	}

	switch len(conds) {
	case 0:
		return bson.M{}
	case 1:
		return conds[0]
	default:
		return bson.M{"$and": conds}
	}
}
