package entity_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/beanbrews-backoffice/internal/domain"
	"github.com/jhoicas/beanbrews-backoffice/internal/domain/entity"
)

func TestStatusColor(t *testing.T) {
	cases := []struct {
		status entity.Status
		color  string
	}{
		{entity.StatusNotStarted, "red"},
		{entity.StatusPending, "orange"},
		{entity.StatusFinished, "green"},
		{entity.Status("CANCELLED"), "gray"},
		{entity.Status(""), "gray"},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.color, tc.status.Color(), "color de %q", tc.status)
	}
}

func TestStatusKnown(t *testing.T) {
	assert.True(t, entity.StatusPending.Known())
	assert.False(t, entity.Status("CANCELLED").Known(), "un estado fuera de la enumeración no es conocido")
}

func TestDisplayStock(t *testing.T) {
	assert.Equal(t, "SOLD OUT", entity.StockItem{Stock: 0}.DisplayStock())
	assert.Equal(t, "5 bags", entity.StockItem{Stock: 5}.DisplayStock())
	// la pluralización es literal, sin caso singular
	assert.Equal(t, "1 bags", entity.StockItem{Stock: 1}.DisplayStock())
}

func TestParseCustomerFailClosed(t *testing.T) {
	c, err := entity.ParseCustomer([]byte(`{"id":3,"username":"budi88","name":"Budi"}`))
	require.NoError(t, err)
	assert.Equal(t, 3, c.ID)

	_, err = entity.ParseCustomer([]byte(`{"username":"budi88"}`))
	require.ErrorIs(t, err, domain.ErrBadPayload, "sin id el payload debe rechazarse")

	_, err = entity.ParseCustomer([]byte(`{"id":3}`))
	require.ErrorIs(t, err, domain.ErrBadPayload, "sin username el payload debe rechazarse")
}

func TestParseStockItemFailClosed(t *testing.T) {
	s, err := entity.ParseStockItem([]byte(`{"id":1,"name":"Arabica","origin":"Brazil","stock":5,"price":50000}`))
	require.NoError(t, err)
	assert.Equal(t, "Arabica", s.Name)
	assert.Equal(t, "50000", s.Price.String())

	_, err = entity.ParseStockItem([]byte(`{"id":1,"name":"Arabica","stock":-2}`))
	require.ErrorIs(t, err, domain.ErrBadPayload, "stock negativo debe rechazarse")
}

func TestParseOrderFailClosed(t *testing.T) {
	raw := []byte(`{"order_id":9,"customer_name":"Budi","created_at":"2025-08-01 09:30","status":"PENDING","items":[{"item_id":2,"qty":2}]}`)
	o, err := entity.ParseOrder(raw)
	require.NoError(t, err)
	assert.Equal(t, entity.StatusPending, o.Status)

	_, err = entity.ParseOrder([]byte(`{"order_id":9,"customer_name":"Budi","items":[{"item_id":2,"qty":0}]}`))
	require.ErrorIs(t, err, domain.ErrBadPayload, "qty < 1 debe rechazarse")

	_, err = entity.ParseOrder([]byte(`{"customer_name":"Budi"}`))
	require.ErrorIs(t, err, domain.ErrBadPayload, "sin order_id debe rechazarse")
}

func TestOrderItemsList(t *testing.T) {
	catalog := map[int]entity.StockItem{
		2: {ID: 2, Name: "Robusta"},
	}
	lookup := func(id int) (entity.StockItem, bool) {
		s, ok := catalog[id]
		return s, ok
	}

	o := entity.Order{Items: []entity.OrderItem{
		{ItemID: 1, Name: "Arabica", Qty: 2}, // nombre ya unido por el backend
		{ItemID: 2, Qty: 1},                  // se resuelve contra el catálogo
		{ItemID: 99, Qty: 3},                 // sin coincidencia
	}}
	assert.Equal(t, "Arabica (x2), Robusta (x1), Unknown (x3)", o.ItemsList(lookup))
}

func TestOrderCreatedAtTime(t *testing.T) {
	o := entity.Order{CreatedAt: "2025-08-01 09:30"}
	ts, err := o.CreatedAtTime()
	require.NoError(t, err)
	assert.Equal(t, 9, ts.Hour())

	o.CreatedAt = "01/08/2025"
	_, err = o.CreatedAtTime()
	assert.Error(t, err)
}
