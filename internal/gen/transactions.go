package gen

import (
	"github.com/shopspring/decimal"

	"github.com/roach88/shopgen/internal/config"
	"github.com/roach88/shopgen/internal/dataset"
	"github.com/roach88/shopgen/internal/rng"
)

// statusDist is the explicit status distribution. Completed dominates so
// most orders carry a single charge.
var statusDist = []rng.Weighted[dataset.OrderStatus]{
	{Value: dataset.StatusCompleted, P: 0.6},
	{Value: dataset.StatusCancelled, P: 0.2},
	{Value: dataset.StatusRefunded, P: 0.2},
}

// Item and payment date offset ranges, in days from the anchor date.
const (
	maxItemsPerOrder = 5
	maxQuantity      = 4

	completedPayOffsetMax = 3
	refundedPayOffsetMax  = 2
	refundDelayMin        = 3
	refundDelayMax        = 20
)

// transactions builds orders, order items, and payments together, one
// order at a time: the charge amount depends on the order's accumulated
// item total. Order, item, and payment ids are each assigned sequentially
// across the whole run.
func transactions(cfg config.Config, src *rng.Source, t *dataset.Tables) {
	t.Orders = make([]dataset.Order, 0, cfg.Orders)

	itemID := 1
	paymentID := 1
	for orderID := 1; orderID <= cfg.Orders; orderID++ {
		customerID := src.IntBetween(1, len(t.Customers))
		orderDate := dateBetween(src, cfg.OrdersFrom, cfg.OrdersTo)
		status := rng.Choose(src, statusDist)

		t.Orders = append(t.Orders, dataset.Order{
			ID:         orderID,
			CustomerID: customerID,
			OrderDate:  orderDate,
			Status:     status,
		})

		// Items: 1-5 distinct products, exact decimal running total.
		itemCount := src.IntBetween(1, maxItemsPerOrder)
		productIDs := src.SampleInts(len(t.Products), itemCount)

		total := decimal.Zero
		for _, productID := range productIDs {
			qty := src.IntBetween(1, maxQuantity)
			price := t.Products[productID-1].Price
			total = total.Add(price.Mul(decimal.NewFromInt(int64(qty))))

			t.OrderItems = append(t.OrderItems, dataset.OrderItem{
				ID:        itemID,
				OrderID:   orderID,
				ProductID: productID,
				Quantity:  qty,
			})
			itemID++
		}
		total = total.Round(2)

		switch status {
		case dataset.StatusCompleted:
			payDate := orderDate.AddDate(0, 0, src.IntBetween(0, completedPayOffsetMax))
			t.Payments = append(t.Payments, dataset.Payment{
				ID:          paymentID,
				OrderID:     orderID,
				PaymentDate: payDate,
				Amount:      total,
				Method:      rng.Pick(src, dataset.PayMethods),
			})
			paymentID++

		case dataset.StatusRefunded:
			payDate := orderDate.AddDate(0, 0, src.IntBetween(0, refundedPayOffsetMax))
			t.Payments = append(t.Payments, dataset.Payment{
				ID:          paymentID,
				OrderID:     orderID,
				PaymentDate: payDate,
				Amount:      total,
				Method:      rng.Pick(src, dataset.PayMethods),
			})
			paymentID++

			// Adjustment: full negation, strictly after the charge.
			refundDate := payDate.AddDate(0, 0, src.IntBetween(refundDelayMin, refundDelayMax))
			t.Payments = append(t.Payments, dataset.Payment{
				ID:          paymentID,
				OrderID:     orderID,
				PaymentDate: refundDate,
				Amount:      total.Neg(),
				Method:      dataset.MethodRefund,
			})
			paymentID++

		case dataset.StatusCancelled:
			// No payment.
		}
	}
}
