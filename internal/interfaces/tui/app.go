// Package tui implementa el back-office de la cafetería como aplicación de
// terminal: un shell de navegación con tres pantallas (pedidos, stock y
// clientes), exactamente una montada a la vez. Cada cambio de pantalla
// remonta la destino y vuelve a disparar sus fetch.
package tui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/jhoicas/beanbrews-backoffice/internal/infrastructure/rest"
	"github.com/jhoicas/beanbrews-backoffice/pkg/logger"
)

// Screen identifica la pantalla activa del shell.
type Screen int

const (
	ScreenOrders Screen = iota
	ScreenStock
	ScreenCustomers
)

var screenTitles = [...]string{"[1] Coffee Orders", "[2] Coffee Stock", "[3] Customer Data"}

// App modelo raíz: enruta teclas y mensajes a la pantalla activa y maneja
// la navegación global, que solo aplica con la pantalla en modo lista.
type App struct {
	log       *logger.Logger
	active    Screen
	orders    OrdersModel
	stock     StockModel
	customers CustomersModel
	width     int
}

func NewApp(client *rest.Client, pageSize int, log *logger.Logger) App {
	return App{
		log:       log,
		active:    ScreenOrders,
		orders:    NewOrdersModel(client),
		stock:     NewStockModel(client, pageSize),
		customers: NewCustomersModel(client),
	}
}

func (a App) Init() tea.Cmd {
	// la pantalla inicial ya se construyó en estado "cargando"
	return tea.Batch(a.orders.loadOrders, a.orders.loadStocks)
}

// inForm indica si la pantalla activa tiene un modal abierto y captura
// todas las teclas.
func (a App) inForm() bool {
	switch a.active {
	case ScreenStock:
		return a.stock.InForm()
	case ScreenCustomers:
		return a.customers.InForm()
	default:
		return a.orders.InForm()
	}
}

func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		return a, nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return a, tea.Quit
		}
		if !a.inForm() {
			switch msg.String() {
			case "q":
				return a, tea.Quit
			case "1":
				return a.switchTo(ScreenOrders)
			case "2":
				return a.switchTo(ScreenStock)
			case "3":
				return a.switchTo(ScreenCustomers)
			case "tab":
				return a.switchTo((a.active + 1) % 3)
			}
		}
	}

	var cmd tea.Cmd
	switch a.active {
	case ScreenStock:
		a.stock, cmd = a.stock.Update(msg)
	case ScreenCustomers:
		a.customers, cmd = a.customers.Update(msg)
	default:
		a.orders, cmd = a.orders.Update(msg)
	}
	return a, cmd
}

// switchTo remonta la pantalla destino: estado de lista limpio y fetch
// fresco, como un componente que se vuelve a montar.
func (a App) switchTo(s Screen) (tea.Model, tea.Cmd) {
	if s == a.active {
		return a, nil
	}
	a.active = s
	a.log.Debug().Int("screen", int(s)).Msg("cambio de pantalla")

	var cmd tea.Cmd
	switch s {
	case ScreenStock:
		a.stock, cmd = a.stock.Mount()
	case ScreenCustomers:
		a.customers, cmd = a.customers.Mount()
	default:
		a.orders, cmd = a.orders.Mount()
	}
	return a, cmd
}

func (a App) View() string {
	var tabs []string
	for i, title := range screenTitles {
		style := tabStyle
		if Screen(i) == a.active {
			style = activeTabStyle
		}
		tabs = append(tabs, style.Render(title))
	}

	var body string
	switch a.active {
	case ScreenStock:
		body = a.stock.View()
	case ScreenCustomers:
		body = a.customers.View()
	default:
		body = a.orders.View()
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render("Bean & Brews — Back Office") + "\n")
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, tabs...) + "\n\n")
	b.WriteString(body + "\n")
	if !a.inForm() {
		b.WriteString("\n" + helpStyle.Render("1/2/3 or tab to switch screen · q to quit"))
	}
	return b.String()
}
