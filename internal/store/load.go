package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/roach88/shopgen/internal/dataset"
)

// LoadTables replaces the database contents with the given dataset inside
// a single transaction and records a load_runs row. Returns the run id.
//
// Replace semantics: re-loading the same database first clears the five
// data tables (children before parents, foreign keys are enforced); the
// load-run history is kept.
func (s *Store) LoadTables(ctx context.Context, t *dataset.Tables, sourceDir string) (string, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return "", fmt.Errorf("load: failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	for _, table := range []string{"payments", "order_items", "orders", "products", "customers"} {
		if _, err := tx.ExecContext(ctx, "DELETE FROM "+table); err != nil {
			return "", fmt.Errorf("load: failed to clear %s: %w", table, err)
		}
	}

	if err := insertCustomers(ctx, tx, t.Customers); err != nil {
		return "", err
	}
	if err := insertProducts(ctx, tx, t.Products); err != nil {
		return "", err
	}
	if err := insertOrders(ctx, tx, t.Orders); err != nil {
		return "", err
	}
	if err := insertOrderItems(ctx, tx, t.OrderItems); err != nil {
		return "", err
	}
	if err := insertPayments(ctx, tx, t.Payments); err != nil {
		return "", err
	}

	runID := uuid.Must(uuid.NewV7()).String()
	_, err = tx.ExecContext(ctx, `
		INSERT INTO load_runs
		(id, source_dir, customers, products, orders, order_items, payments, loaded_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`,
		runID,
		sourceDir,
		len(t.Customers),
		len(t.Products),
		len(t.Orders),
		len(t.OrderItems),
		len(t.Payments),
		time.Now().UTC().Format(time.RFC3339),
	)
	if err != nil {
		return "", fmt.Errorf("load: failed to record run: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return "", fmt.Errorf("load: failed to commit: %w", err)
	}
	return runID, nil
}

func insertCustomers(ctx context.Context, tx *sql.Tx, customers []dataset.Customer) error {
	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO customers (customer_id, full_name, email, country, signup_date)
		VALUES (?, ?, ?, ?, ?)
	`)
	if err != nil {
		return fmt.Errorf("load customers: %w", err)
	}
	defer stmt.Close()

	for _, c := range customers {
		_, err := stmt.ExecContext(ctx, c.ID, c.FullName, c.Email, c.Country,
			c.SignupDate.Format(dataset.DateFormat))
		if err != nil {
			return fmt.Errorf("load customer %d: %w", c.ID, err)
		}
	}
	return nil
}

func insertProducts(ctx context.Context, tx *sql.Tx, products []dataset.Product) error {
	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO products (product_id, product_name, category, price)
		VALUES (?, ?, ?, ?)
	`)
	if err != nil {
		return fmt.Errorf("load products: %w", err)
	}
	defer stmt.Close()

	for _, p := range products {
		_, err := stmt.ExecContext(ctx, p.ID, p.Name, p.Category, p.Price.StringFixed(2))
		if err != nil {
			return fmt.Errorf("load product %d: %w", p.ID, err)
		}
	}
	return nil
}

func insertOrders(ctx context.Context, tx *sql.Tx, orders []dataset.Order) error {
	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO orders (order_id, customer_id, order_date, status)
		VALUES (?, ?, ?, ?)
	`)
	if err != nil {
		return fmt.Errorf("load orders: %w", err)
	}
	defer stmt.Close()

	for _, o := range orders {
		_, err := stmt.ExecContext(ctx, o.ID, o.CustomerID,
			o.OrderDate.Format(dataset.DateFormat), string(o.Status))
		if err != nil {
			return fmt.Errorf("load order %d: %w", o.ID, err)
		}
	}
	return nil
}

func insertOrderItems(ctx context.Context, tx *sql.Tx, items []dataset.OrderItem) error {
	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO order_items (order_item_id, order_id, product_id, quantity)
		VALUES (?, ?, ?, ?)
	`)
	if err != nil {
		return fmt.Errorf("load order items: %w", err)
	}
	defer stmt.Close()

	for _, it := range items {
		_, err := stmt.ExecContext(ctx, it.ID, it.OrderID, it.ProductID, it.Quantity)
		if err != nil {
			return fmt.Errorf("load order item %d: %w", it.ID, err)
		}
	}
	return nil
}

func insertPayments(ctx context.Context, tx *sql.Tx, payments []dataset.Payment) error {
	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO payments (payment_id, order_id, payment_date, amount, payment_method)
		VALUES (?, ?, ?, ?, ?)
	`)
	if err != nil {
		return fmt.Errorf("load payments: %w", err)
	}
	defer stmt.Close()

	for _, p := range payments {
		_, err := stmt.ExecContext(ctx, p.ID, p.OrderID,
			p.PaymentDate.Format(dataset.DateFormat), p.Amount.StringFixed(2), p.Method)
		if err != nil {
			return fmt.Errorf("load payment %d: %w", p.ID, err)
		}
	}
	return nil
}
