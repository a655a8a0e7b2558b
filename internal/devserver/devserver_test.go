package devserver_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/beanbrews-backoffice/internal/devserver"
	"github.com/jhoicas/beanbrews-backoffice/pkg/logger"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

func newTestServer(t *testing.T) *devserver.Server {
	t.Helper()
	s, err := devserver.New(filepath.Join(t.TempDir(), "test.db"), logger.Nop())
	require.NoError(t, err, "el servidor de desarrollo debe arrancar sobre una base vacía")
	require.NoError(t, s.Seed())
	return s
}

// do ejecuta una petición contra la app de fiber y decodifica el JSON en out.
func do(t *testing.T, s *devserver.Server, method, path string, body any, out any) {
	t.Helper()
	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := s.App().Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	// el contrato responde siempre 200, también en errores de aplicación
	require.Equal(t, http.StatusOK, resp.StatusCode)
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal(raw, out), "cuerpo: %s", raw)
}

// stockByName busca un café del catálogo por nombre.
func stockByName(t *testing.T, s *devserver.Server, name string) map[string]any {
	t.Helper()
	var items []map[string]any
	do(t, s, http.MethodGet, "/stocks", nil, &items)
	for _, it := range items {
		if it["name"] == name {
			return it
		}
	}
	t.Fatalf("café %q no está en el catálogo", name)
	return nil
}

func orderBody(customer string, status string, lines ...map[string]any) map[string]any {
	return map[string]any{
		"customer_name": customer,
		"created_at":    "2025-08-02T10:15:00Z",
		"status":        status,
		"order_items":   lines,
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Catálogo
// ──────────────────────────────────────────────────────────────────────────────

func TestSeedCatalog(t *testing.T) {
	s := newTestServer(t)

	var items []map[string]any
	do(t, s, http.MethodGet, "/stocks", nil, &items)
	require.Len(t, items, 4)

	arabica := stockByName(t, s, "Arabica")
	assert.Equal(t, float64(5), arabica["stock"])

	// sembrar dos veces no duplica
	require.NoError(t, s.Seed())
	do(t, s, http.MethodGet, "/stocks", nil, &items)
	assert.Len(t, items, 4)
}

func TestItemCRUD(t *testing.T) {
	s := newTestServer(t)

	var created map[string]any
	do(t, s, http.MethodPost, "/stocks", map[string]any{
		"name": "Kintamani", "origin": "Bali", "stock": 10, "price": 58000,
	}, &created)
	id := int(created["id"].(float64))
	require.Positive(t, id)

	var updated map[string]any
	do(t, s, http.MethodPut, fmt.Sprintf("/stocks/%d", id), map[string]any{
		"name": "Kintamani", "origin": "Bali", "stock": 7, "price": 58000,
	}, &updated)
	assert.Equal(t, float64(7), updated["stock"])

	var deleted map[string]any
	do(t, s, http.MethodDelete, fmt.Sprintf("/stocks/%d", id), nil, &deleted)
	assert.Equal(t, "Items deleted successfully", deleted["message"])

	var errResp map[string]any
	do(t, s, http.MethodDelete, fmt.Sprintf("/stocks/%d", id), nil, &errResp)
	assert.Equal(t, "Item does not exist!", errResp["error"])
}

// ──────────────────────────────────────────────────────────────────────────────
// Clientes
// ──────────────────────────────────────────────────────────────────────────────

func TestDuplicateUsername(t *testing.T) {
	s := newTestServer(t)

	var resp map[string]any
	do(t, s, http.MethodPost, "/users", map[string]any{
		"username": "budi88", "name": "Otro Budi", "email": "otro@example.com", "phone": "+628000000000",
	}, &resp)
	assert.Equal(t, "Username already exists!", resp["error"])
}

func TestDeleteMissingUser(t *testing.T) {
	s := newTestServer(t)

	var resp map[string]any
	do(t, s, http.MethodDelete, "/users/9999", nil, &resp)
	assert.Equal(t, "User does not exist!", resp["error"])
}

// ──────────────────────────────────────────────────────────────────────────────
// Pedidos y stock
// ──────────────────────────────────────────────────────────────────────────────

func TestCreateOrderDecrementsStock(t *testing.T) {
	s := newTestServer(t)
	arabica := stockByName(t, s, "Arabica")
	id := int(arabica["id"].(float64))

	var resp map[string]any
	do(t, s, http.MethodPost, "/orders", orderBody("Budi", "PENDING",
		map[string]any{"item_id": id, "qty": 2}), &resp)
	require.NotContains(t, resp, "error", "cuerpo: %v", resp)
	assert.NotZero(t, resp["order_id"])
	assert.Equal(t, "2025-08-02 10:15", resp["created_at"], "created_at se normaliza al persistir")

	assert.Equal(t, float64(3), stockByName(t, s, "Arabica")["stock"],
		"crear el pedido descuenta el stock")
}

func TestCreateOrderNotEnoughStock(t *testing.T) {
	s := newTestServer(t)
	arabica := stockByName(t, s, "Arabica")
	id := int(arabica["id"].(float64))

	var resp map[string]any
	do(t, s, http.MethodPost, "/orders", orderBody("Budi", "PENDING",
		map[string]any{"item_id": id, "qty": 6}), &resp)
	assert.Equal(t, fmt.Sprintf("Not enough stock for item %d", id), resp["error"])

	// todo o nada: el stock no cambió
	assert.Equal(t, float64(5), stockByName(t, s, "Arabica")["stock"])
}

func TestCreateOrderRequiredFields(t *testing.T) {
	s := newTestServer(t)

	var resp map[string]any
	do(t, s, http.MethodPost, "/orders", map[string]any{"customer_name": "Budi"}, &resp)
	assert.Equal(t, "customer_name and items are required", resp["error"])
}

func TestUpdateOrderRestoresStock(t *testing.T) {
	s := newTestServer(t)
	arabica := stockByName(t, s, "Arabica")
	robusta := stockByName(t, s, "Robusta")
	arabicaID := int(arabica["id"].(float64))
	robustaID := int(robusta["id"].(float64))

	var created map[string]any
	do(t, s, http.MethodPost, "/orders", orderBody("Budi", "PENDING",
		map[string]any{"item_id": arabicaID, "qty": 3}), &created)
	require.NotContains(t, created, "error")
	orderID := int(created["order_id"].(float64))
	require.Equal(t, float64(2), stockByName(t, s, "Arabica")["stock"])

	// cambiar la línea a otro café: devuelve el stock viejo y descuenta el nuevo
	var updated map[string]any
	do(t, s, http.MethodPut, fmt.Sprintf("/orders/%d", orderID), orderBody("Budi", "FINISHED",
		map[string]any{"item_id": robustaID, "qty": 1}), &updated)
	require.NotContains(t, updated, "error")
	assert.Equal(t, "Order updated", updated["message"])

	assert.Equal(t, float64(5), stockByName(t, s, "Arabica")["stock"])
	assert.Equal(t, float64(11), stockByName(t, s, "Robusta")["stock"])
}

func TestListOrdersNewestFirstWithJoinedItems(t *testing.T) {
	s := newTestServer(t)
	arabica := stockByName(t, s, "Arabica")
	id := int(arabica["id"].(float64))

	var created map[string]any
	do(t, s, http.MethodPost, "/orders", orderBody("Sari", "NOT STARTED",
		map[string]any{"item_id": id, "qty": 1}), &created)
	require.NotContains(t, created, "error")

	var list []map[string]any
	do(t, s, http.MethodGet, "/orders", nil, &list)
	require.Len(t, list, 2)
	assert.Equal(t, "Sari", list[0]["customer_name"], "el pedido más reciente va primero")

	items := list[0]["items"].([]any)
	require.Len(t, items, 1)
	line := items[0].(map[string]any)
	assert.Equal(t, "Arabica", line["name"], "las líneas vienen con el café unido")
	assert.Equal(t, "Brazil", line["origin"])
}

func TestDeleteOrder(t *testing.T) {
	s := newTestServer(t)

	var resp map[string]any
	do(t, s, http.MethodDelete, "/orders/9999", nil, &resp)
	assert.Equal(t, "Order does not exist!", resp["error"])

	var list []map[string]any
	do(t, s, http.MethodGet, "/orders", nil, &list)
	require.Len(t, list, 1)
	orderID := int(list[0]["order_id"].(float64))

	do(t, s, http.MethodDelete, fmt.Sprintf("/orders/%d", orderID), nil, &resp)
	assert.Equal(t, "Order deleted successfully", resp["message"])

	do(t, s, http.MethodGet, "/orders", nil, &list)
	assert.Empty(t, list)
}
