package gen

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/roach88/shopgen/internal/config"
	"github.com/roach88/shopgen/internal/dataset"
	"github.com/roach88/shopgen/internal/rng"
)

// priceBand returns the uniform price range for a category. Bands reflect
// realistic magnitudes: electronics highest, mid-range apparel and home,
// low for the rest.
func priceBand(category string) (lo, hi float64) {
	switch category {
	case "Electronics":
		return 25, 850
	case "Fashion", "Sports":
		return 10, 220
	case "Home", "Beauty":
		return 5, 180
	default:
		return 3, 60
	}
}

// products builds the product table. The id suffix in the name keeps
// names unique even when noun/suffix pairs repeat.
func products(cfg config.Config, src *rng.Source) []dataset.Product {
	out := make([]dataset.Product, 0, cfg.Products)
	for id := 1; id <= cfg.Products; id++ {
		category := rng.Pick(src, dataset.Categories)
		noun := rng.Pick(src, dataset.ProductNouns)
		suffix := rng.Pick(src, dataset.ProductSuffixes)

		lo, hi := priceBand(category)
		price := decimal.NewFromFloat(src.Float64Between(lo, hi)).Round(2)

		out = append(out, dataset.Product{
			ID:       id,
			Name:     fmt.Sprintf("%s %s %d", noun, suffix, id),
			Category: category,
			Price:    price,
		})
	}
	return out
}
