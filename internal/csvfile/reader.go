package csvfile

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"slices"
	"strconv"
	"time"

	"github.com/shopspring/decimal"

	"github.com/roach88/shopgen/internal/dataset"
)

// ReadDir parses a generated dataset back from dir. Headers are checked
// against the fixed schemas; a mismatch means the directory does not hold
// a shopgen dataset and is an error, not a skip.
func ReadDir(dir string) (*dataset.Tables, error) {
	t := &dataset.Tables{}

	err := readFile(filepath.Join(dir, FileCustomers), HeaderCustomers, func(rec []string) error {
		c, err := parseCustomer(rec)
		if err != nil {
			return err
		}
		t.Customers = append(t.Customers, c)
		return nil
	})
	if err != nil {
		return nil, err
	}

	err = readFile(filepath.Join(dir, FileProducts), HeaderProducts, func(rec []string) error {
		p, err := parseProduct(rec)
		if err != nil {
			return err
		}
		t.Products = append(t.Products, p)
		return nil
	})
	if err != nil {
		return nil, err
	}

	err = readFile(filepath.Join(dir, FileOrders), HeaderOrders, func(rec []string) error {
		o, err := parseOrder(rec)
		if err != nil {
			return err
		}
		t.Orders = append(t.Orders, o)
		return nil
	})
	if err != nil {
		return nil, err
	}

	err = readFile(filepath.Join(dir, FileOrderItems), HeaderOrderItems, func(rec []string) error {
		it, err := parseOrderItem(rec)
		if err != nil {
			return err
		}
		t.OrderItems = append(t.OrderItems, it)
		return nil
	})
	if err != nil {
		return nil, err
	}

	err = readFile(filepath.Join(dir, FilePayments), HeaderPayments, func(rec []string) error {
		p, err := parsePayment(rec)
		if err != nil {
			return err
		}
		t.Payments = append(t.Payments, p)
		return nil
	})
	if err != nil {
		return nil, err
	}

	return t, nil
}

func readFile(path string, header []string, row func(rec []string) error) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = len(header)

	first, err := r.Read()
	if err != nil {
		return fmt.Errorf("failed to read header of %s: %w", path, err)
	}
	if !slices.Equal(first, header) {
		return fmt.Errorf("%s: unexpected header %v, want %v", path, first, header)
	}

	line := 1
	for {
		rec, err := r.Read()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return fmt.Errorf("failed to read %s: %w", path, err)
		}
		line++
		if err := row(rec); err != nil {
			return fmt.Errorf("%s line %d: %w", path, line, err)
		}
	}
}

func parseCustomer(rec []string) (dataset.Customer, error) {
	id, err := strconv.Atoi(rec[0])
	if err != nil {
		return dataset.Customer{}, fmt.Errorf("customer_id: %w", err)
	}
	signup, err := parseDate(rec[4])
	if err != nil {
		return dataset.Customer{}, fmt.Errorf("signup_date: %w", err)
	}
	return dataset.Customer{
		ID:         id,
		FullName:   rec[1],
		Email:      rec[2],
		Country:    rec[3],
		SignupDate: signup,
	}, nil
}

func parseProduct(rec []string) (dataset.Product, error) {
	id, err := strconv.Atoi(rec[0])
	if err != nil {
		return dataset.Product{}, fmt.Errorf("product_id: %w", err)
	}
	price, err := decimal.NewFromString(rec[3])
	if err != nil {
		return dataset.Product{}, fmt.Errorf("price: %w", err)
	}
	return dataset.Product{
		ID:       id,
		Name:     rec[1],
		Category: rec[2],
		Price:    price,
	}, nil
}

func parseOrder(rec []string) (dataset.Order, error) {
	id, err := strconv.Atoi(rec[0])
	if err != nil {
		return dataset.Order{}, fmt.Errorf("order_id: %w", err)
	}
	customerID, err := strconv.Atoi(rec[1])
	if err != nil {
		return dataset.Order{}, fmt.Errorf("customer_id: %w", err)
	}
	date, err := parseDate(rec[2])
	if err != nil {
		return dataset.Order{}, fmt.Errorf("order_date: %w", err)
	}
	return dataset.Order{
		ID:         id,
		CustomerID: customerID,
		OrderDate:  date,
		Status:     dataset.OrderStatus(rec[3]),
	}, nil
}

func parseOrderItem(rec []string) (dataset.OrderItem, error) {
	ints := make([]int, 4)
	names := []string{"order_item_id", "order_id", "product_id", "quantity"}
	for i := range ints {
		v, err := strconv.Atoi(rec[i])
		if err != nil {
			return dataset.OrderItem{}, fmt.Errorf("%s: %w", names[i], err)
		}
		ints[i] = v
	}
	return dataset.OrderItem{
		ID:        ints[0],
		OrderID:   ints[1],
		ProductID: ints[2],
		Quantity:  ints[3],
	}, nil
}

func parsePayment(rec []string) (dataset.Payment, error) {
	id, err := strconv.Atoi(rec[0])
	if err != nil {
		return dataset.Payment{}, fmt.Errorf("payment_id: %w", err)
	}
	orderID, err := strconv.Atoi(rec[1])
	if err != nil {
		return dataset.Payment{}, fmt.Errorf("order_id: %w", err)
	}
	date, err := parseDate(rec[2])
	if err != nil {
		return dataset.Payment{}, fmt.Errorf("payment_date: %w", err)
	}
	amount, err := decimal.NewFromString(rec[3])
	if err != nil {
		return dataset.Payment{}, fmt.Errorf("amount: %w", err)
	}
	return dataset.Payment{
		ID:          id,
		OrderID:     orderID,
		PaymentDate: date,
		Amount:      amount,
		Method:      rec[4],
	}, nil
}

func parseDate(s string) (time.Time, error) {
	return time.ParseInLocation(dataset.DateFormat, s, time.UTC)
}
