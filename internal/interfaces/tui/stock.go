package tui

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/paginator"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/beanbrews-backoffice/internal/application/store"
	"github.com/jhoicas/beanbrews-backoffice/internal/domain/entity"
	"github.com/jhoicas/beanbrews-backoffice/internal/domain/validate"
	"github.com/jhoicas/beanbrews-backoffice/internal/infrastructure/rest"
)

type stockMode int

const (
	stockList stockMode = iota
	stockForm
	stockConfirm
)

const (
	stockFieldName = iota
	stockFieldOrigin
	stockFieldStock
	stockFieldPrice
	stockFieldCount
)

const stockCardsPerRow = 4

var stockFieldNames = [stockFieldCount]string{"name", "origin", "stock", "price"}
var stockFieldLabels = [stockFieldCount]string{"Coffee Name", "Origin", "Stock (bags)", "Price (Rp)"}

// StockModel pantalla "Coffee Stock": grilla de tarjetas paginada en el
// cliente sobre el catálogo completo (el backend no pagina).
type StockModel struct {
	client *rest.Client
	store  *store.Keyed[int, entity.StockItem]

	pager  paginator.Model
	cursor int // selección dentro de la página

	mode      stockMode
	inputs    [stockFieldCount]textinput.Model
	focus     int
	errs      validate.Errors
	editingID int
	deleteID  int

	loading bool
	notice  string
}

func NewStockModel(client *rest.Client, pageSize int) StockModel {
	if pageSize < 1 {
		pageSize = 8
	}
	p := paginator.New()
	p.Type = paginator.Dots
	p.PerPage = pageSize
	p.ActiveDot = lipgloss.NewStyle().Foreground(lipgloss.Color("208")).Render("•")
	p.InactiveDot = mutedStyle.Render("•")

	return StockModel{
		client:  client,
		store:   store.NewKeyed(func(s entity.StockItem) int { return s.ID }),
		pager:   p,
		loading: true,
	}
}

func (m StockModel) Mount() (StockModel, tea.Cmd) {
	m.mode = stockList
	m.loading = true
	m.notice = ""
	m.errs = nil
	return m, m.loadStocks
}

func (m StockModel) InForm() bool { return m.mode != stockList }

func (m StockModel) loadStocks() tea.Msg {
	list, err := m.client.ListStocks()
	if err != nil {
		return errMsg{op: "fetch coffee items", err: err}
	}
	return stocksLoadedMsg{list: list}
}

func (m StockModel) saveStock(id int, f rest.StockFields) tea.Cmd {
	return func() tea.Msg {
		var (
			item *entity.StockItem
			err  error
		)
		if id > 0 {
			item, err = m.client.UpdateStock(id, f)
		} else {
			item, err = m.client.CreateStock(f)
		}
		if err != nil {
			return errMsg{op: "add/modify coffee", err: err}
		}
		return stockSavedMsg{item: item}
	}
}

func (m StockModel) deleteStock(id int) tea.Cmd {
	return func() tea.Msg {
		if err := m.client.DeleteStock(id); err != nil {
			return errMsg{op: "delete coffee", err: err}
		}
		return stockDeletedMsg{id: id}
	}
}

func (m StockModel) Update(msg tea.Msg) (StockModel, tea.Cmd) {
	switch msg := msg.(type) {
	case stocksLoadedMsg:
		m.loading = false
		m.store.Replace(msg.list)
		m.syncPager()
		return m, nil

	case stockSavedMsg:
		m.store.Upsert(*msg.item)
		m.syncPager()
		m.closeForm()
		return m, nil

	case stockDeletedMsg:
		m.store.Remove(msg.id)
		m.syncPager()
		m.notice = ""
		return m, nil

	case errMsg:
		m.loading = false
		m.notice = msg.notice()
		return m, nil

	case tea.KeyMsg:
		switch m.mode {
		case stockForm:
			return m.updateForm(msg)
		case stockConfirm:
			return m.updateConfirm(msg)
		default:
			return m.updateList(msg)
		}
	}
	return m, nil
}

func (m StockModel) updateList(msg tea.KeyMsg) (StockModel, tea.Cmd) {
	switch msg.String() {
	case "a":
		m.openForm(0)
		return m, nil
	case "e", "enter":
		if id, ok := m.selectedID(); ok {
			m.openForm(id)
		}
		return m, nil
	case "d":
		if id, ok := m.selectedID(); ok {
			m.deleteID = id
			m.mode = stockConfirm
		}
		return m, nil
	case "r":
		m.loading = true
		m.notice = ""
		return m, m.loadStocks
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
		return m, nil
	case "down", "j":
		if m.cursor < m.pageLen()-1 {
			m.cursor++
		}
		return m, nil
	}
	// left/right cambian de página
	var cmd tea.Cmd
	m.pager, cmd = m.pager.Update(msg)
	m.clampCursor()
	return m, cmd
}

func (m StockModel) updateForm(msg tea.KeyMsg) (StockModel, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.closeForm()
		return m, nil
	case "tab", "down":
		m.setFocus((m.focus + 1) % stockFieldCount)
		return m, nil
	case "shift+tab", "up":
		m.setFocus((m.focus + stockFieldCount - 1) % stockFieldCount)
		return m, nil
	case "enter":
		return m.submit()
	}
	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	return m, cmd
}

func (m StockModel) updateConfirm(msg tea.KeyMsg) (StockModel, tea.Cmd) {
	switch msg.String() {
	case "y", "enter":
		id := m.deleteID
		m.deleteID = 0
		m.mode = stockList
		return m, m.deleteStock(id)
	case "n", "esc":
		m.deleteID = 0
		m.mode = stockList
		return m, nil
	}
	return m, nil
}

func (m StockModel) submit() (StockModel, tea.Cmd) {
	name := strings.TrimSpace(m.inputs[stockFieldName].Value())
	origin := strings.TrimSpace(m.inputs[stockFieldOrigin].Value())
	stockRaw := strings.TrimSpace(m.inputs[stockFieldStock].Value())
	priceRaw := strings.TrimSpace(m.inputs[stockFieldPrice].Value())

	m.errs = validate.StockItem(name, origin, stockRaw, priceRaw)
	if len(m.errs) > 0 {
		return m, nil
	}

	// ya validados: parsean seguro
	stockN, _ := strconv.Atoi(stockRaw)
	price, _ := decimal.NewFromString(priceRaw)
	f := rest.StockFields{Name: name, Origin: origin, Stock: stockN, Price: price}
	return m, m.saveStock(m.editingID, f)
}

func (m *StockModel) openForm(id int) {
	for i := range m.inputs {
		m.inputs[i] = newInput(stockFieldLabels[i], 24)
	}
	if id > 0 {
		if s, ok := m.store.Get(id); ok {
			m.inputs[stockFieldName].SetValue(s.Name)
			m.inputs[stockFieldOrigin].SetValue(s.Origin)
			m.inputs[stockFieldStock].SetValue(strconv.Itoa(s.Stock))
			m.inputs[stockFieldPrice].SetValue(s.Price.String())
		}
	}
	m.editingID = id
	m.errs = nil
	m.notice = ""
	m.mode = stockForm
	m.setFocus(0)
}

func (m *StockModel) closeForm() {
	m.mode = stockList
	m.editingID = 0
	m.errs = nil
	m.notice = ""
}

func (m *StockModel) setFocus(i int) {
	m.focus = i
	for j := range m.inputs {
		if j == i {
			m.inputs[j].Focus()
		} else {
			m.inputs[j].Blur()
		}
	}
}

func (m *StockModel) syncPager() {
	m.pager.SetTotalPages(m.store.Len())
	if m.pager.Page >= m.pager.TotalPages {
		m.pager.Page = m.pager.TotalPages - 1
	}
	if m.pager.Page < 0 {
		m.pager.Page = 0
	}
	m.clampCursor()
}

func (m *StockModel) clampCursor() {
	if n := m.pageLen(); m.cursor >= n {
		m.cursor = n - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

func (m StockModel) pageLen() int {
	start, end := m.pager.GetSliceBounds(m.store.Len())
	return end - start
}

func (m StockModel) selectedID() (int, bool) {
	list := m.store.List()
	start, _ := m.pager.GetSliceBounds(len(list))
	i := start + m.cursor
	if i < 0 || i >= len(list) {
		return 0, false
	}
	return list[i].ID, true
}

func (m StockModel) View() string {
	var b strings.Builder
	b.WriteString(headerStyle.Render("Coffee Stock") + "\n\n")

	switch m.mode {
	case stockForm:
		b.WriteString(m.formView())
	case stockConfirm:
		b.WriteString(confirmBox())
	default:
		if m.loading {
			b.WriteString(mutedStyle.Render("Loading stock...") + "\n")
		} else {
			b.WriteString(m.gridView())
			b.WriteString("\n" + m.pager.View() + "\n")
		}
		b.WriteString(helpStyle.Render("[a] add  [e] edit  [d] delete  [r] refresh  [←/→] page  [↑/↓] select"))
	}

	if m.notice != "" {
		b.WriteString("\n" + noticeStyle.Render(m.notice))
	}
	return b.String()
}

func (m StockModel) gridView() string {
	list := m.store.List()
	start, end := m.pager.GetSliceBounds(len(list))
	page := list[start:end]
	if len(page) == 0 {
		return mutedStyle.Render("No coffee in stock yet.") + "\n"
	}

	cards := make([]string, 0, len(page))
	for i, item := range page {
		cards = append(cards, renderStockCard(item, i == m.cursor))
	}

	var rows []string
	for len(cards) > 0 {
		n := stockCardsPerRow
		if n > len(cards) {
			n = len(cards)
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cards[:n]...))
		cards = cards[n:]
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

// renderStockCard tarjeta de un café; con stock agotado el marcador
// "SOLD OUT" va en rojo.
func renderStockCard(item entity.StockItem, selected bool) string {
	stockLine := item.DisplayStock()
	if item.Stock == 0 {
		stockLine = soldOutStyle.Render(stockLine)
	}
	var b strings.Builder
	b.WriteString(headerStyle.Render(item.Name) + "\n")
	b.WriteString("Origin: " + item.Origin + "\n")
	b.WriteString("Stock:  " + stockLine + "\n")
	b.WriteString("Price:  Rp " + item.Price.String() + " / bag")

	style := cardStyle
	if selected {
		style = cardSelectedStyle
	}
	return style.Render(b.String())
}

func (m StockModel) formView() string {
	title := "Add Coffee"
	if m.editingID > 0 {
		title = "Edit Coffee"
	}
	var b strings.Builder
	b.WriteString(headerStyle.Render(title) + "\n\n")
	for i := range m.inputs {
		b.WriteString(renderField(stockFieldLabels[i], m.inputs[i].View(), m.errs.ByField(stockFieldNames[i])))
	}
	b.WriteString("\n" + helpStyle.Render("[enter] save  [tab] next field  [esc] cancel"))
	return boxStyle.Render(b.String())
}
