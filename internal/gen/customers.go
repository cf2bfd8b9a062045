package gen

import (
	"github.com/roach88/shopgen/internal/config"
	"github.com/roach88/shopgen/internal/dataset"
	"github.com/roach88/shopgen/internal/rng"
)

// customers builds the customer table. Signup dates come from the wider
// window [SignupFrom, OrdersTo] so some customers predate the first order.
func customers(cfg config.Config, src *rng.Source) []dataset.Customer {
	out := make([]dataset.Customer, 0, cfg.Customers)
	for id := 1; id <= cfg.Customers; id++ {
		first := rng.Pick(src, dataset.FirstNames)
		last := rng.Pick(src, dataset.LastNames)
		out = append(out, dataset.Customer{
			ID:         id,
			FullName:   first + " " + last,
			Email:      emailFor(first, last, id),
			Country:    rng.Pick(src, dataset.Countries),
			SignupDate: dateBetween(src, cfg.SignupFrom, cfg.OrdersTo),
		})
	}
	return out
}
