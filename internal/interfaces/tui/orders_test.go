package tui

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/beanbrews-backoffice/internal/domain/entity"
)

func sampleStocks() []entity.StockItem {
	return []entity.StockItem{
		{ID: 1, Name: "Arabica", Origin: "Brazil", Stock: 5},
		{ID: 2, Name: "Robusta", Origin: "Vietnam", Stock: 12},
	}
}

func sampleOrders() []entity.Order {
	return []entity.Order{
		{
			OrderID:      12,
			CustomerName: "Budi",
			CreatedAt:    "2025-08-01 09:30",
			Status:       entity.StatusPending,
			Items:        []entity.OrderItem{{ItemID: 1, Name: "Arabica", Qty: 2}},
		},
	}
}

func loadedOrders(t *testing.T) OrdersModel {
	t.Helper()
	m := NewOrdersModel(nil)
	m, _ = m.Update(stocksLoadedMsg{list: sampleStocks()})
	m, _ = m.Update(ordersLoadedMsg{list: sampleOrders()})
	require.False(t, m.loading)
	return m
}

func TestOrdersLoadJoinsItems(t *testing.T) {
	m := loadedOrders(t)
	require.Len(t, m.rowIDs, 1)
	rows := m.table.Rows()
	require.Len(t, rows, 1)
	assert.Equal(t, "Arabica (x2)", rows[0][4])
	assert.Equal(t, "PENDING", rows[0][3])
}

func TestOrdersQtyOverStockBlocksSubmit(t *testing.T) {
	m := loadedOrders(t)
	m, _ = m.Update(key("a"))
	require.Equal(t, ordForm, m.mode)
	require.Len(t, m.lines, 1, "el formulario abre con una línea vacía")

	m.customer.SetValue("Budi")
	m.createdAt.SetValue("2025-08-01 09:30")
	m.statusIdx = 1 // PENDING
	m.lines[0].itemIdx = 0
	m.lines[0].qty.SetValue("6")

	m, cmd := m.submit()
	assert.Nil(t, cmd, "6 bolsas con stock 5 no debe enviarse")
	assert.Equal(t, "Qty cannot exceed current stock (5)", m.errs.ByField("items[0].qty"))

	// exactamente el stock disponible pasa
	m.lines[0].qty.SetValue("5")
	m, cmd = m.submit()
	assert.NotNil(t, cmd)
	assert.Empty(t, m.errs)
}

func TestOrdersCeilingFollowsSelectedItem(t *testing.T) {
	m := loadedOrders(t)
	m, _ = m.Update(key("a"))
	m.customer.SetValue("Budi")
	m.createdAt.SetValue("2025-08-01 09:30")
	m.statusIdx = 0
	m.lines[0].itemIdx = 0 // Arabica, stock 5
	m.lines[0].qty.SetValue("8")

	m, cmd := m.submit()
	assert.Nil(t, cmd)
	assert.True(t, m.errs.Has("items[0].qty"))

	// cambiar la selección a Robusta (stock 12) revalida contra el tope nuevo
	m.lines[0].itemIdx = 1
	m, cmd = m.submit()
	assert.NotNil(t, cmd)
	assert.Empty(t, m.errs)
}

func TestOrdersAddRemoveLines(t *testing.T) {
	m := loadedOrders(t)
	m, _ = m.Update(key("a"))
	require.Len(t, m.lines, 1)

	m, _ = m.Update(key("ctrl+a"))
	assert.Len(t, m.lines, 2)
	li, sub, ok := m.lineField(m.focus)
	require.True(t, ok, "el foco salta a la línea nueva")
	assert.Equal(t, 1, li)
	assert.Equal(t, 0, sub)

	m, _ = m.Update(key("ctrl+x"))
	assert.Len(t, m.lines, 1)

	// siempre queda al menos una línea
	m, _ = m.Update(key("ctrl+x"))
	assert.Len(t, m.lines, 1)
}

func TestOrdersEditPrePopulates(t *testing.T) {
	m := loadedOrders(t)
	m, _ = m.Update(key("e"))
	require.Equal(t, ordForm, m.mode)
	assert.Equal(t, 12, m.editingID)
	assert.Equal(t, "Budi", m.customer.Value())
	assert.Equal(t, "2025-08-01 09:30", m.createdAt.Value())
	assert.Equal(t, 1, m.statusIdx, "PENDING es el segundo estado del selector")
	require.Len(t, m.lines, 1)
	assert.Equal(t, 0, m.lines[0].itemIdx, "la línea apunta a Arabica en el catálogo")
	assert.Equal(t, "2", m.lines[0].qty.Value())
}

func TestOrdersEmptyFormErrors(t *testing.T) {
	m := loadedOrders(t)
	m, _ = m.Update(key("a"))

	m, cmd := m.submit()
	assert.Nil(t, cmd)
	assert.Equal(t, "Please input customer name!", m.errs.ByField("customer_name"))
	assert.Equal(t, "Please select date and time!", m.errs.ByField("created_at"))
	assert.Equal(t, "Please select status", m.errs.ByField("status"))
	assert.Equal(t, "Select a coffee", m.errs.ByField("items[0].item"))
	assert.Equal(t, "Quantity required", m.errs.ByField("items[0].qty"))
}

func TestOrdersStatusCycler(t *testing.T) {
	m := loadedOrders(t)
	m, _ = m.Update(key("a"))
	m.setFocus(ordFieldStatus)

	// sin selección, la primera flecha cae en NOT STARTED
	m, _ = m.Update(key("right"))
	assert.Equal(t, 0, m.statusIdx)
	m, _ = m.Update(key("right"))
	assert.Equal(t, 1, m.statusIdx)
}

func TestOrdersSavedPatchesWithoutRefetch(t *testing.T) {
	m := loadedOrders(t)
	m, _ = m.Update(key("a"))

	// la respuesta de una mutación trae las líneas sin nombre
	saved := entity.Order{
		OrderID:      13,
		CustomerName: "Sari",
		CreatedAt:    "2025-08-02 10:15",
		Status:       entity.StatusNotStarted,
		Items:        []entity.OrderItem{{ItemID: 2, Qty: 1}},
	}
	m, _ = m.Update(orderSavedMsg{order: &saved})
	assert.Equal(t, ordList, m.mode)
	require.Len(t, m.rowIDs, 2)

	rows := m.table.Rows()
	assert.Equal(t, "Robusta (x1)", rows[1][4], "el nombre se resuelve contra el snapshot del catálogo")
}

func TestOrdersDeletedRemovesRow(t *testing.T) {
	m := loadedOrders(t)
	m, _ = m.Update(key("d"))
	require.Equal(t, ordConfirm, m.mode)

	m, cmd := m.Update(key("y"))
	assert.NotNil(t, cmd)
	m, _ = m.Update(orderDeletedMsg{id: 12})
	assert.Empty(t, m.rowIDs)
}

func TestOrdersUnknownStatusRendersGray(t *testing.T) {
	// un estado fuera de la enumeración no debe romper el render
	m := NewOrdersModel(nil)
	m, _ = m.Update(stocksLoadedMsg{list: sampleStocks()})
	m, _ = m.Update(ordersLoadedMsg{list: []entity.Order{{
		OrderID: 1, CustomerName: "X", CreatedAt: "2025-08-01 09:30",
		Status: entity.Status("CANCELLED"),
		Items:  []entity.OrderItem{{ItemID: 1, Qty: 1}},
	}}})
	assert.NotPanics(t, func() { _ = m.View() })
	assert.Equal(t, "gray", entity.Status("CANCELLED").Color())
}
