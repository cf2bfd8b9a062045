package dataset

import (
	"time"

	"github.com/shopspring/decimal"
)

// DateFormat is the serialized form of every calendar date in the dataset.
const DateFormat = "2006-01-02"

// OrderStatus is the terminal state of an order, fixed at creation.
type OrderStatus string

const (
	StatusCompleted OrderStatus = "completed"
	StatusCancelled OrderStatus = "cancelled"
	StatusRefunded  OrderStatus = "refunded"
)

// Customer is a reference entity: no foreign keys into other tables.
type Customer struct {
	ID         int
	FullName   string
	Email      string
	Country    string
	SignupDate time.Time
}

// Product is a reference entity. Price is always positive with two
// decimal places.
type Product struct {
	ID       int
	Name     string
	Category string
	Price    decimal.Decimal
}

// Order references a customer. Its status drives how many payments exist:
// completed has one charge, refunded has a charge plus a negated
// adjustment, cancelled has none.
type Order struct {
	ID         int
	CustomerID int
	OrderDate  time.Time
	Status     OrderStatus
}

// OrderItem references an order and a product. Products are distinct
// within one order.
type OrderItem struct {
	ID        int
	OrderID   int
	ProductID int
	Quantity  int
}

// Payment references an order. Amount is positive for a charge and
// negative for a refund adjustment; Method is "refund" on adjustments.
type Payment struct {
	ID          int
	OrderID     int
	PaymentDate time.Time
	Amount      decimal.Decimal
	Method      string
}

// Tables holds one full generated dataset in generation order.
type Tables struct {
	Customers  []Customer
	Products   []Product
	Orders     []Order
	OrderItems []OrderItem
	Payments   []Payment
}
