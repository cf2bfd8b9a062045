package gen

import (
	"time"

	"github.com/roach88/shopgen/internal/config"
	"github.com/roach88/shopgen/internal/dataset"
	"github.com/roach88/shopgen/internal/rng"
)

// Generate builds a full dataset from the configured counts and windows.
// The source carries all randomness; same seed and config, same output.
func Generate(cfg config.Config, src *rng.Source) *dataset.Tables {
	t := &dataset.Tables{
		Customers: customers(cfg, src),
		Products:  products(cfg, src),
	}
	transactions(cfg, src, t)
	return t
}

// dateBetween draws a uniform calendar date in [from, to] inclusive,
// counted in whole days.
func dateBetween(src *rng.Source, from, to time.Time) time.Time {
	days := int(to.Sub(from).Hours() / 24)
	return from.AddDate(0, 0, src.IntBetween(0, days))
}
