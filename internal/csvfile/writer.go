// Package csvfile serializes a dataset to the five flat files and parses
// them back.
//
// One file per table, UTF-8, comma-delimited, a fixed header row, then
// data rows in generation order. Encoding is plain encoding/csv quoting;
// dates serialize as YYYY-MM-DD and money with exactly two decimal
// places, so a writer/reader round trip is byte-stable.
package csvfile

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"

	"github.com/roach88/shopgen/internal/dataset"
)

// File names inside the output directory.
const (
	FileCustomers  = "customers.csv"
	FileProducts   = "products.csv"
	FileOrders     = "orders.csv"
	FileOrderItems = "order_items.csv"
	FilePayments   = "payments.csv"
)

// Column headers, in schema order.
var (
	HeaderCustomers  = []string{"customer_id", "full_name", "email", "country", "signup_date"}
	HeaderProducts   = []string{"product_id", "product_name", "category", "price"}
	HeaderOrders     = []string{"order_id", "customer_id", "order_date", "status"}
	HeaderOrderItems = []string{"order_item_id", "order_id", "product_id", "quantity"}
	HeaderPayments   = []string{"payment_id", "order_id", "payment_date", "amount", "payment_method"}
)

// WriteDir writes all five files into dir, creating it if absent and
// overwriting existing files. Any I/O error aborts the write; partially
// written output is not cleaned up.
func WriteDir(dir string, t *dataset.Tables) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("failed to create output dir: %w", err)
	}

	files := []struct {
		name  string
		write func(io.Writer) error
	}{
		{FileCustomers, func(w io.Writer) error { return WriteCustomers(w, t.Customers) }},
		{FileProducts, func(w io.Writer) error { return WriteProducts(w, t.Products) }},
		{FileOrders, func(w io.Writer) error { return WriteOrders(w, t.Orders) }},
		{FileOrderItems, func(w io.Writer) error { return WriteOrderItems(w, t.OrderItems) }},
		{FilePayments, func(w io.Writer) error { return WritePayments(w, t.Payments) }},
	}
	for _, f := range files {
		if err := writeFile(filepath.Join(dir, f.name), f.write); err != nil {
			return err
		}
	}
	return nil
}

func writeFile(path string, write func(io.Writer) error) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	if err := write(f); err != nil {
		f.Close()
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("failed to close %s: %w", path, err)
	}
	return nil
}

// WriteCustomers writes the customers table, header included.
func WriteCustomers(w io.Writer, customers []dataset.Customer) error {
	return writeRows(w, HeaderCustomers, len(customers), func(i int) []string {
		c := customers[i]
		return []string{
			strconv.Itoa(c.ID),
			c.FullName,
			c.Email,
			c.Country,
			c.SignupDate.Format(dataset.DateFormat),
		}
	})
}

// WriteProducts writes the products table, header included.
func WriteProducts(w io.Writer, products []dataset.Product) error {
	return writeRows(w, HeaderProducts, len(products), func(i int) []string {
		p := products[i]
		return []string{
			strconv.Itoa(p.ID),
			p.Name,
			p.Category,
			p.Price.StringFixed(2),
		}
	})
}

// WriteOrders writes the orders table, header included.
func WriteOrders(w io.Writer, orders []dataset.Order) error {
	return writeRows(w, HeaderOrders, len(orders), func(i int) []string {
		o := orders[i]
		return []string{
			strconv.Itoa(o.ID),
			strconv.Itoa(o.CustomerID),
			o.OrderDate.Format(dataset.DateFormat),
			string(o.Status),
		}
	})
}

// WriteOrderItems writes the order items table, header included.
func WriteOrderItems(w io.Writer, items []dataset.OrderItem) error {
	return writeRows(w, HeaderOrderItems, len(items), func(i int) []string {
		it := items[i]
		return []string{
			strconv.Itoa(it.ID),
			strconv.Itoa(it.OrderID),
			strconv.Itoa(it.ProductID),
			strconv.Itoa(it.Quantity),
		}
	})
}

// WritePayments writes the payments table, header included.
func WritePayments(w io.Writer, payments []dataset.Payment) error {
	return writeRows(w, HeaderPayments, len(payments), func(i int) []string {
		p := payments[i]
		return []string{
			strconv.Itoa(p.ID),
			strconv.Itoa(p.OrderID),
			p.PaymentDate.Format(dataset.DateFormat),
			p.Amount.StringFixed(2),
			p.Method,
		}
	})
}

func writeRows(w io.Writer, header []string, n int, row func(i int) []string) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(header); err != nil {
		return err
	}
	for i := 0; i < n; i++ {
		if err := cw.Write(row(i)); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
