package csvfile

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/sebdah/goldie/v2"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/shopgen/internal/dataset"
)

func date(t *testing.T, s string) time.Time {
	t.Helper()
	d, err := time.ParseInLocation(dataset.DateFormat, s, time.UTC)
	require.NoError(t, err)
	return d
}

// fixtureTables is a small hand-built dataset covering each payment shape
// and a field that needs CSV quoting.
func fixtureTables(t *testing.T) *dataset.Tables {
	t.Helper()
	return &dataset.Tables{
		Customers: []dataset.Customer{
			{ID: 1, FullName: "Ana García", Email: "ana.garcia1@example.com", Country: "Mexico", SignupDate: date(t, "2022-03-15")},
			{ID: 2, FullName: "Luis Pérez", Email: "luis.perez2@example.com", Country: "Spain", SignupDate: date(t, "2023-11-02")},
		},
		Products: []dataset.Product{
			{ID: 1, Name: "Headphones Pro 1", Category: "Electronics", Price: decimal.RequireFromString("199.99")},
			{ID: 2, Name: "Lamp, Ultra 2", Category: "Home", Price: decimal.RequireFromString("45.50")},
		},
		Orders: []dataset.Order{
			{ID: 1, CustomerID: 1, OrderDate: date(t, "2023-05-10"), Status: dataset.StatusCompleted},
			{ID: 2, CustomerID: 2, OrderDate: date(t, "2023-06-01"), Status: dataset.StatusRefunded},
			{ID: 3, CustomerID: 1, OrderDate: date(t, "2023-07-04"), Status: dataset.StatusCancelled},
		},
		OrderItems: []dataset.OrderItem{
			{ID: 1, OrderID: 1, ProductID: 1, Quantity: 2},
			{ID: 2, OrderID: 2, ProductID: 2, Quantity: 1},
			{ID: 3, OrderID: 2, ProductID: 1, Quantity: 1},
			{ID: 4, OrderID: 3, ProductID: 2, Quantity: 3},
		},
		Payments: []dataset.Payment{
			{ID: 1, OrderID: 1, PaymentDate: date(t, "2023-05-12"), Amount: decimal.RequireFromString("399.98"), Method: "card"},
			{ID: 2, OrderID: 2, PaymentDate: date(t, "2023-06-02"), Amount: decimal.RequireFromString("245.49"), Method: "paypal"},
			{ID: 3, OrderID: 2, PaymentDate: date(t, "2023-06-10"), Amount: decimal.RequireFromString("-245.49"), Method: "refund"},
		},
	}
}

func TestWriteTables_Golden(t *testing.T) {
	tables := fixtureTables(t)
	g := goldie.New(t,
		goldie.WithFixtureDir("testdata/golden"),
		goldie.WithNameSuffix(".golden"),
	)

	var buf bytes.Buffer
	require.NoError(t, WriteCustomers(&buf, tables.Customers))
	g.Assert(t, "customers", buf.Bytes())

	buf.Reset()
	require.NoError(t, WriteProducts(&buf, tables.Products))
	g.Assert(t, "products", buf.Bytes())

	buf.Reset()
	require.NoError(t, WriteOrders(&buf, tables.Orders))
	g.Assert(t, "orders", buf.Bytes())

	buf.Reset()
	require.NoError(t, WriteOrderItems(&buf, tables.OrderItems))
	g.Assert(t, "order_items", buf.Bytes())

	buf.Reset()
	require.NoError(t, WritePayments(&buf, tables.Payments))
	g.Assert(t, "payments", buf.Bytes())
}

func TestWriteDir_CreatesAllFiles(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "out", "nested")
	require.NoError(t, WriteDir(dir, fixtureTables(t)))

	for _, name := range []string{FileCustomers, FileProducts, FileOrders, FileOrderItems, FilePayments} {
		info, err := os.Stat(filepath.Join(dir, name))
		require.NoError(t, err, "missing %s", name)
		assert.Positive(t, info.Size())
	}
}

func TestWriteDir_Overwrites(t *testing.T) {
	dir := t.TempDir()
	tables := fixtureTables(t)

	require.NoError(t, WriteDir(dir, tables))
	first, err := os.ReadFile(filepath.Join(dir, FileCustomers))
	require.NoError(t, err)

	// Second run replaces, not appends.
	require.NoError(t, WriteDir(dir, tables))
	second, err := os.ReadFile(filepath.Join(dir, FileCustomers))
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestWriteDir_FailsOnUnwritableLocation(t *testing.T) {
	// A regular file where the directory should go.
	path := filepath.Join(t.TempDir(), "blocked")
	require.NoError(t, os.WriteFile(path, []byte("x"), 0o644))

	err := WriteDir(filepath.Join(path, "out"), fixtureTables(t))
	require.Error(t, err)
}

func TestRoundTrip(t *testing.T) {
	dir := t.TempDir()
	tables := fixtureTables(t)
	require.NoError(t, WriteDir(dir, tables))

	got, err := ReadDir(dir)
	require.NoError(t, err)

	// Byte-level comparison sidesteps decimal representation details.
	assert.Equal(t, snapshot(t, tables), snapshot(t, got))
}

func TestReadDir_MissingFile(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, WriteDir(dir, fixtureTables(t)))
	require.NoError(t, os.Remove(filepath.Join(dir, FilePayments)))

	_, err := ReadDir(dir)
	require.Error(t, err)
	assert.Contains(t, err.Error(), FilePayments)
}

func TestReadDir_RejectsWrongHeader(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, WriteDir(dir, fixtureTables(t)))
	require.NoError(t, os.WriteFile(filepath.Join(dir, FileOrders),
		[]byte("order_id,buyer_id,order_date,status\n1,1,2023-05-10,completed\n"), 0o644))

	_, err := ReadDir(dir)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unexpected header")
}

func TestReadDir_RejectsMalformedRow(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, WriteDir(dir, fixtureTables(t)))
	require.NoError(t, os.WriteFile(filepath.Join(dir, FileOrderItems),
		[]byte("order_item_id,order_id,product_id,quantity\n1,1,1,two\n"), 0o644))

	_, err := ReadDir(dir)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "quantity")
}

func snapshot(t *testing.T, tables *dataset.Tables) []byte {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, WriteCustomers(&buf, tables.Customers))
	require.NoError(t, WriteProducts(&buf, tables.Products))
	require.NoError(t, WriteOrders(&buf, tables.Orders))
	require.NoError(t, WriteOrderItems(&buf, tables.OrderItems))
	require.NoError(t, WritePayments(&buf, tables.Payments))
	return buf.Bytes()
}
