// Package check verifies the cross-table consistency rules of a dataset.
//
// The generator satisfies these rules by construction; check exists so a
// dataset read back from disk (or produced by an older build) can be
// verified independently. Each violation becomes a structured Finding
// rather than an error: a verify run reports everything it sees.
package check

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/roach88/shopgen/internal/dataset"
)

// Finding is one invariant violation, addressed by table and row id.
type Finding struct {
	Table   string `json:"table"`
	ID      int    `json:"id"`
	Message string `json:"message"`
}

func (f Finding) String() string {
	return fmt.Sprintf("%s[%d]: %s", f.Table, f.ID, f.Message)
}

const (
	minItemsPerOrder = 1
	maxItemsPerOrder = 5
	minQuantity      = 1
	maxQuantity      = 4
)

// Dataset runs every check and returns the findings in table order:
// customers, products, orders, order_items, payments.
func Dataset(t *dataset.Tables) []Finding {
	var findings []Finding
	add := func(table string, id int, format string, args ...any) {
		findings = append(findings, Finding{Table: table, ID: id, Message: fmt.Sprintf(format, args...)})
	}

	checkCustomers(t, add)
	checkProducts(t, add)
	checkOrders(t, add)
	checkOrderItems(t, add)
	checkPayments(t, add)

	return findings
}

type addFunc func(table string, id int, format string, args ...any)

func checkCustomers(t *dataset.Tables, add addFunc) {
	seen := make(map[string]int, len(t.Customers))
	for i, c := range t.Customers {
		if c.ID != i+1 {
			add("customers", c.ID, "identifier out of sequence, want %d", i+1)
		}
		if prev, dup := seen[c.Email]; dup {
			add("customers", c.ID, "email %q already used by customer %d", c.Email, prev)
		}
		seen[c.Email] = c.ID
	}
}

func checkProducts(t *dataset.Tables, add addFunc) {
	for i, p := range t.Products {
		if p.ID != i+1 {
			add("products", p.ID, "identifier out of sequence, want %d", i+1)
		}
		if !p.Price.IsPositive() {
			add("products", p.ID, "price %s is not positive", p.Price)
		}
	}
}

func checkOrders(t *dataset.Tables, add addFunc) {
	for i, o := range t.Orders {
		if o.ID != i+1 {
			add("orders", o.ID, "identifier out of sequence, want %d", i+1)
		}
		if o.CustomerID < 1 || o.CustomerID > len(t.Customers) {
			add("orders", o.ID, "customer_id %d does not resolve", o.CustomerID)
		}
		switch o.Status {
		case dataset.StatusCompleted, dataset.StatusCancelled, dataset.StatusRefunded:
		default:
			add("orders", o.ID, "unknown status %q", o.Status)
		}
	}
}

func checkOrderItems(t *dataset.Tables, add addFunc) {
	type orderAgg struct {
		count    int
		products map[int]bool
	}
	byOrder := make(map[int]*orderAgg)

	for i, it := range t.OrderItems {
		if it.ID != i+1 {
			add("order_items", it.ID, "identifier out of sequence, want %d", i+1)
		}
		if it.OrderID < 1 || it.OrderID > len(t.Orders) {
			add("order_items", it.ID, "order_id %d does not resolve", it.OrderID)
			continue
		}
		if it.ProductID < 1 || it.ProductID > len(t.Products) {
			add("order_items", it.ID, "product_id %d does not resolve", it.ProductID)
			continue
		}
		if it.Quantity < minQuantity || it.Quantity > maxQuantity {
			add("order_items", it.ID, "quantity %d outside [%d,%d]", it.Quantity, minQuantity, maxQuantity)
		}

		agg := byOrder[it.OrderID]
		if agg == nil {
			agg = &orderAgg{products: make(map[int]bool)}
			byOrder[it.OrderID] = agg
		}
		if agg.products[it.ProductID] {
			add("order_items", it.ID, "duplicate product %d in order %d", it.ProductID, it.OrderID)
		}
		agg.products[it.ProductID] = true
		agg.count++
	}

	for _, o := range t.Orders {
		agg := byOrder[o.ID]
		if agg == nil {
			add("orders", o.ID, "order has no items")
			continue
		}
		if agg.count < minItemsPerOrder || agg.count > maxItemsPerOrder {
			add("orders", o.ID, "order has %d items, want [%d,%d]", agg.count, minItemsPerOrder, maxItemsPerOrder)
		}
	}
}

func checkPayments(t *dataset.Tables, add addFunc) {
	// Exact decimal totals per order, from the items.
	totals := make(map[int]decimal.Decimal, len(t.Orders))
	for _, it := range t.OrderItems {
		if it.ProductID < 1 || it.ProductID > len(t.Products) {
			continue // already reported by checkOrderItems
		}
		price := t.Products[it.ProductID-1].Price
		totals[it.OrderID] = totals[it.OrderID].Add(price.Mul(decimal.NewFromInt(int64(it.Quantity))))
	}

	byOrder := make(map[int][]dataset.Payment)
	for i, p := range t.Payments {
		if p.ID != i+1 {
			add("payments", p.ID, "identifier out of sequence, want %d", i+1)
		}
		if p.OrderID < 1 || p.OrderID > len(t.Orders) {
			add("payments", p.ID, "order_id %d does not resolve", p.OrderID)
			continue
		}
		order := t.Orders[p.OrderID-1]
		if p.PaymentDate.Before(order.OrderDate) {
			add("payments", p.ID, "payment date %s before order date %s",
				p.PaymentDate.Format(dataset.DateFormat), order.OrderDate.Format(dataset.DateFormat))
		}
		byOrder[p.OrderID] = append(byOrder[p.OrderID], p)
	}

	for _, o := range t.Orders {
		payments := byOrder[o.ID]
		total := totals[o.ID].Round(2)

		switch o.Status {
		case dataset.StatusCancelled:
			if len(payments) != 0 {
				add("orders", o.ID, "cancelled order has %d payments, want 0", len(payments))
			}

		case dataset.StatusCompleted:
			if len(payments) != 1 {
				add("orders", o.ID, "completed order has %d payments, want 1", len(payments))
				continue
			}
			checkCharge(o, payments[0], total, add)

		case dataset.StatusRefunded:
			if len(payments) != 2 {
				add("orders", o.ID, "refunded order has %d payments, want 2", len(payments))
				continue
			}
			charge, adjustment := payments[0], payments[1]
			checkCharge(o, charge, total, add)
			if adjustment.Method != dataset.MethodRefund {
				add("payments", adjustment.ID, "adjustment method %q, want %q", adjustment.Method, dataset.MethodRefund)
			}
			if !adjustment.Amount.Equal(charge.Amount.Neg()) {
				add("payments", adjustment.ID, "adjustment %s does not negate charge %s",
					adjustment.Amount, charge.Amount)
			}
			if !adjustment.PaymentDate.After(charge.PaymentDate) {
				add("payments", adjustment.ID, "adjustment date %s not after charge date %s",
					adjustment.PaymentDate.Format(dataset.DateFormat), charge.PaymentDate.Format(dataset.DateFormat))
			}
		}
	}
}

func checkCharge(o dataset.Order, p dataset.Payment, total decimal.Decimal, add addFunc) {
	if !p.Amount.IsPositive() {
		add("payments", p.ID, "charge amount %s is not positive", p.Amount)
	}
	if p.Method == dataset.MethodRefund {
		add("payments", p.ID, "charge uses reserved method %q", dataset.MethodRefund)
	}
	if !p.Amount.Equal(total) {
		add("payments", p.ID, "charge %s does not match item total %s for order %d", p.Amount, total, o.ID)
	}
}
