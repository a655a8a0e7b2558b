package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/beanbrews-backoffice/pkg/logger"
)

func newTestApp() App {
	return NewApp(nil, 8, logger.Nop())
}

func TestAppSwitchRemountsScreen(t *testing.T) {
	a := newTestApp()
	assert.Equal(t, ScreenOrders, a.active)

	model, cmd := a.Update(key("2"))
	a = model.(App)
	assert.Equal(t, ScreenStock, a.active)
	assert.NotNil(t, cmd, "cambiar de pantalla dispara el fetch de montaje")
	assert.True(t, a.stock.loading)

	// volver a pulsar la pantalla activa no remonta
	model, cmd = a.Update(key("2"))
	a = model.(App)
	assert.Nil(t, cmd)
}

func TestAppTabCycles(t *testing.T) {
	a := newTestApp()
	for _, want := range []Screen{ScreenStock, ScreenCustomers, ScreenOrders} {
		model, _ := a.Update(key("tab"))
		a = model.(App)
		assert.Equal(t, want, a.active)
	}
}

func TestAppQuit(t *testing.T) {
	a := newTestApp()
	_, cmd := a.Update(key("q"))
	require.NotNil(t, cmd)
	_, ok := cmd().(tea.QuitMsg)
	assert.True(t, ok)
}

func TestAppGlobalKeysDisabledInForm(t *testing.T) {
	a := newTestApp()
	model, _ := a.Update(ordersLoadedMsg{list: nil})
	a = model.(App)
	model, _ = a.Update(key("a")) // abre el modal de pedido
	a = model.(App)
	require.True(t, a.orders.InForm())

	// "q" y "2" van al formulario, no a la navegación global
	model, cmd := a.Update(key("q"))
	a = model.(App)
	if cmd != nil {
		_, quit := cmd().(tea.QuitMsg)
		assert.False(t, quit, "dentro de un modal 'q' no cierra la aplicación")
	}
	model, _ = a.Update(key("2"))
	a = model.(App)
	assert.Equal(t, ScreenOrders, a.active, "dentro de un modal no se cambia de pantalla")

	// ctrl+c sí corta siempre
	_, cmd = a.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
	require.NotNil(t, cmd)
	_, quit := cmd().(tea.QuitMsg)
	assert.True(t, quit)
}
