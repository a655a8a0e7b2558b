package tui

import (
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/jhoicas/beanbrews-backoffice/internal/application/store"
	"github.com/jhoicas/beanbrews-backoffice/internal/domain/entity"
	"github.com/jhoicas/beanbrews-backoffice/internal/domain/validate"
	"github.com/jhoicas/beanbrews-backoffice/internal/infrastructure/rest"
)

type ordersMode int

const (
	ordList ordersMode = iota
	ordForm
	ordConfirm
)

// Campos fijos del formulario de pedido; a partir de ordFieldLines van los
// pares (café, cantidad) de cada línea: 3+2i el café, 4+2i la cantidad.
const (
	ordFieldCustomer = iota
	ordFieldCreatedAt
	ordFieldStatus
	ordFieldLines
)

// orderLine línea del formulario: índice sobre el catálogo (-1 sin
// selección) más la cantidad como texto libre.
type orderLine struct {
	itemIdx int
	qty     textinput.Model
}

// OrdersModel pantalla "Coffee Orders". Mantiene dos stores: los pedidos y
// un snapshot del catálogo tomado al montar, usado para unir nombres, armar
// el selector de cafés y validar cantidades contra el stock vigente.
type OrdersModel struct {
	client *rest.Client
	orders *store.Keyed[int, entity.Order]
	stocks *store.Keyed[int, entity.StockItem]

	table  table.Model
	rowIDs []int

	mode      ordersMode
	customer  textinput.Model
	createdAt textinput.Model
	statusIdx int
	lines     []orderLine
	focus     int
	errs      validate.Errors
	editingID int
	deleteID  int

	loading bool
	notice  string
}

func NewOrdersModel(client *rest.Client) OrdersModel {
	t := table.New(
		table.WithColumns([]table.Column{
			{Title: "ID", Width: 5},
			{Title: "Customer", Width: 18},
			{Title: "Created At", Width: 17},
			{Title: "Status", Width: 12},
			{Title: "Items", Width: 38},
		}),
		table.WithFocused(true),
		table.WithHeight(10),
	)
	s := table.DefaultStyles()
	s.Header = s.Header.Bold(true).BorderBottom(true)
	s.Selected = s.Selected.Bold(true).Foreground(cardSelectedStyle.GetBorderTopForeground())
	t.SetStyles(s)

	return OrdersModel{
		client:  client,
		orders:  store.NewKeyed(func(o entity.Order) int { return o.OrderID }),
		stocks:  store.NewKeyed(func(s entity.StockItem) int { return s.ID }),
		table:   t,
		loading: true,
	}
}

// Mount dispara los dos fetch de montaje: pedidos y snapshot del catálogo.
func (m OrdersModel) Mount() (OrdersModel, tea.Cmd) {
	m.mode = ordList
	m.loading = true
	m.notice = ""
	m.errs = nil
	return m, tea.Batch(m.loadOrders, m.loadStocks)
}

func (m OrdersModel) InForm() bool { return m.mode != ordList }

// lookup consulta del catálogo por id, sobre el snapshot local.
func (m OrdersModel) lookup(itemID int) (entity.StockItem, bool) {
	return m.stocks.Get(itemID)
}

func (m OrdersModel) loadOrders() tea.Msg {
	list, err := m.client.ListOrders()
	if err != nil {
		return errMsg{op: "fetch orders", err: err}
	}
	return ordersLoadedMsg{list: list}
}

func (m OrdersModel) loadStocks() tea.Msg {
	list, err := m.client.ListStocks()
	if err != nil {
		return errMsg{op: "fetch coffee items", err: err}
	}
	return stocksLoadedMsg{list: list}
}

func (m OrdersModel) saveOrder(id int, f rest.OrderFields) tea.Cmd {
	return func() tea.Msg {
		var (
			order *entity.Order
			err   error
		)
		if id > 0 {
			order, err = m.client.UpdateOrder(id, f)
		} else {
			order, err = m.client.CreateOrder(f)
		}
		if err != nil {
			return errMsg{op: "create order", err: err}
		}
		return orderSavedMsg{order: order}
	}
}

func (m OrdersModel) deleteOrder(id int) tea.Cmd {
	return func() tea.Msg {
		if err := m.client.DeleteOrder(id); err != nil {
			return errMsg{op: "delete order", err: err}
		}
		return orderDeletedMsg{id: id}
	}
}

func (m OrdersModel) Update(msg tea.Msg) (OrdersModel, tea.Cmd) {
	switch msg := msg.(type) {
	case ordersLoadedMsg:
		m.loading = false
		m.orders.Replace(msg.list)
		m.refreshRows()
		return m, nil

	case stocksLoadedMsg:
		m.stocks.Replace(msg.list)
		// las filas unen nombres contra el snapshot: rearmarlas
		m.refreshRows()
		return m, nil

	case orderSavedMsg:
		m.orders.Upsert(*msg.order)
		m.refreshRows()
		m.closeForm()
		return m, nil

	case orderDeletedMsg:
		m.orders.Remove(msg.id)
		m.refreshRows()
		m.notice = ""
		return m, nil

	case errMsg:
		m.loading = false
		m.notice = msg.notice()
		return m, nil

	case tea.KeyMsg:
		switch m.mode {
		case ordForm:
			return m.updateForm(msg)
		case ordConfirm:
			return m.updateConfirm(msg)
		default:
			return m.updateList(msg)
		}
	}
	return m, nil
}

func (m OrdersModel) updateList(msg tea.KeyMsg) (OrdersModel, tea.Cmd) {
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
			m.mode = ordConfirm
		}
		return m, nil
	case "r":
		m.loading = true
		m.notice = ""
		return m, tea.Batch(m.loadOrders, m.loadStocks)
	}
	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

func (m OrdersModel) updateForm(msg tea.KeyMsg) (OrdersModel, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.closeForm()
		return m, nil
	case "tab", "down":
		m.setFocus(m.nextFocus(1))
		return m, nil
	case "shift+tab", "up":
		m.setFocus(m.nextFocus(-1))
		return m, nil
	case "ctrl+a":
		m.addLine()
		return m, nil
	case "ctrl+x":
		m.removeLine()
		return m, nil
	case "enter":
		return m.submit()
	case "left", "right":
		delta := 1
		if msg.String() == "left" {
			delta = -1
		}
		if m.focus == ordFieldStatus {
			m.cycleStatus(delta)
			return m, nil
		}
		if li, sub, ok := m.lineField(m.focus); ok && sub == 0 {
			m.cycleItem(li, delta)
			return m, nil
		}
	}

	// el resto va al input enfocado, si el foco está sobre un input
	var cmd tea.Cmd
	switch {
	case m.focus == ordFieldCustomer:
		m.customer, cmd = m.customer.Update(msg)
	case m.focus == ordFieldCreatedAt:
		m.createdAt, cmd = m.createdAt.Update(msg)
	default:
		if li, sub, ok := m.lineField(m.focus); ok && sub == 1 {
			m.lines[li].qty, cmd = m.lines[li].qty.Update(msg)
		}
	}
	return m, cmd
}

func (m OrdersModel) updateConfirm(msg tea.KeyMsg) (OrdersModel, tea.Cmd) {
	switch msg.String() {
	case "y", "enter":
		id := m.deleteID
		m.deleteID = 0
		m.mode = ordList
		return m, m.deleteOrder(id)
	case "n", "esc":
		m.deleteID = 0
		m.mode = ordList
		return m, nil
	}
	return m, nil
}

// submit revalida el formulario completo, líneas incluidas, contra el stock
// vigente; con cualquier error no sale petición y el modal queda abierto.
func (m OrdersModel) submit() (OrdersModel, tea.Cmd) {
	form := m.formValues()
	m.errs = validate.Order(form, m.lookup)
	if len(m.errs) > 0 {
		return m, nil
	}

	created, _ := time.Parse(entity.CreatedAtLayout, strings.TrimSpace(form.CreatedAt))
	f := rest.OrderFields{
		CustomerName: form.CustomerName,
		CreatedAt:    created.UTC().Format(time.RFC3339),
		Status:       entity.Status(form.Status),
		Items:        make([]rest.OrderLineFields, 0, len(form.Lines)),
	}
	for _, line := range form.Lines {
		qty, _ := strconv.Atoi(strings.TrimSpace(line.Qty))
		f.Items = append(f.Items, rest.OrderLineFields{ItemID: line.ItemID, Qty: qty})
	}
	return m, m.saveOrder(m.editingID, f)
}

func (m OrdersModel) formValues() validate.OrderForm {
	form := validate.OrderForm{
		CustomerName: strings.TrimSpace(m.customer.Value()),
		CreatedAt:    strings.TrimSpace(m.createdAt.Value()),
	}
	if m.statusIdx >= 0 {
		form.Status = string(entity.Statuses()[m.statusIdx])
	}
	options := m.stocks.List()
	for _, line := range m.lines {
		in := validate.OrderLineInput{Qty: line.qty.Value()}
		if line.itemIdx >= 0 && line.itemIdx < len(options) {
			in.ItemID = options[line.itemIdx].ID
		}
		form.Lines = append(form.Lines, in)
	}
	return form
}

func (m *OrdersModel) openForm(id int) {
	m.customer = newInput("Customer name", 30)
	m.createdAt = newInput("YYYY-MM-DD HH:MM", 30)
	m.statusIdx = -1
	m.lines = nil

	if id > 0 {
		if o, ok := m.orders.Get(id); ok {
			m.customer.SetValue(o.CustomerName)
			m.createdAt.SetValue(o.CreatedAt)
			for i, s := range entity.Statuses() {
				if s == o.Status {
					m.statusIdx = i
					break
				}
			}
			options := m.stocks.List()
			for _, it := range o.Items {
				line := m.newLine()
				for j, opt := range options {
					if opt.ID == it.ItemID {
						line.itemIdx = j
						break
					}
				}
				line.qty.SetValue(strconv.Itoa(it.Qty))
				m.lines = append(m.lines, line)
			}
		}
	} else {
		m.lines = append(m.lines, m.newLine())
	}

	m.editingID = id
	m.errs = nil
	m.notice = ""
	m.mode = ordForm
	m.setFocus(ordFieldCustomer)
}

func (m *OrdersModel) closeForm() {
	m.mode = ordList
	m.editingID = 0
	m.errs = nil
	m.notice = ""
}

func (m OrdersModel) newLine() orderLine {
	return orderLine{itemIdx: -1, qty: newInput("Qty", 8)}
}

func (m *OrdersModel) addLine() {
	m.lines = append(m.lines, m.newLine())
	m.setFocus(ordFieldLines + 2*(len(m.lines)-1))
}

// removeLine quita la línea bajo el foco, o la última si el foco está en la
// cabecera del formulario. Siempre queda al menos una línea.
func (m *OrdersModel) removeLine() {
	if len(m.lines) <= 1 {
		return
	}
	li := len(m.lines) - 1
	if i, _, ok := m.lineField(m.focus); ok {
		li = i
	}
	m.lines = append(m.lines[:li], m.lines[li+1:]...)
	m.setFocus(m.clampFocus(m.focus))
}

func (m OrdersModel) fieldCount() int {
	return ordFieldLines + 2*len(m.lines)
}

// lineField descompone un índice de foco en (línea, 0=café|1=cantidad).
func (m OrdersModel) lineField(focus int) (int, int, bool) {
	if focus < ordFieldLines {
		return 0, 0, false
	}
	off := focus - ordFieldLines
	li := off / 2
	if li >= len(m.lines) {
		return 0, 0, false
	}
	return li, off % 2, true
}

func (m OrdersModel) nextFocus(delta int) int {
	n := m.fieldCount()
	return (m.focus + delta + n) % n
}

func (m OrdersModel) clampFocus(focus int) int {
	if n := m.fieldCount(); focus >= n {
		return n - 1
	}
	return focus
}

func (m *OrdersModel) setFocus(i int) {
	m.focus = i
	m.customer.Blur()
	m.createdAt.Blur()
	for j := range m.lines {
		m.lines[j].qty.Blur()
	}
	switch {
	case i == ordFieldCustomer:
		m.customer.Focus()
	case i == ordFieldCreatedAt:
		m.createdAt.Focus()
	default:
		if li, sub, ok := m.lineField(i); ok && sub == 1 {
			m.lines[li].qty.Focus()
		}
	}
}

func (m *OrdersModel) cycleStatus(delta int) {
	statuses := entity.Statuses()
	m.statusIdx = (m.statusIdx + delta + len(statuses)) % len(statuses)
}

func (m *OrdersModel) cycleItem(li, delta int) {
	n := m.stocks.Len()
	if n == 0 {
		return
	}
	m.lines[li].itemIdx = (m.lines[li].itemIdx + delta + n) % n
}

func (m *OrdersModel) refreshRows() {
	list := m.orders.List()
	rows := make([]table.Row, 0, len(list))
	m.rowIDs = m.rowIDs[:0]
	for _, o := range list {
		rows = append(rows, table.Row{
			strconv.Itoa(o.OrderID),
			o.CustomerName,
			o.CreatedAt,
			string(o.Status),
			o.ItemsList(m.stocks.Get),
		})
		m.rowIDs = append(m.rowIDs, o.OrderID)
	}
	m.table.SetRows(rows)
}

func (m OrdersModel) selectedID() (int, bool) {
	i := m.table.Cursor()
	if i < 0 || i >= len(m.rowIDs) {
		return 0, false
	}
	return m.rowIDs[i], true
}

func (m OrdersModel) View() string {
	var b strings.Builder
	b.WriteString(headerStyle.Render("Coffee Orders") + "\n\n")

	switch m.mode {
	case ordForm:
		b.WriteString(m.formView())
	case ordConfirm:
		b.WriteString(confirmBox())
	default:
		if m.loading {
			b.WriteString(mutedStyle.Render("Loading orders...") + "\n")
		} else {
			b.WriteString(m.table.View() + "\n")
			b.WriteString(m.selectedDetail())
		}
		b.WriteString(helpStyle.Render("[a] add  [e] edit  [d] delete  [r] refresh"))
	}

	if m.notice != "" {
		b.WriteString("\n" + noticeStyle.Render(m.notice))
	}
	return b.String()
}

// selectedDetail línea de resumen bajo la tabla con el estado coloreado del
// pedido seleccionado.
func (m OrdersModel) selectedDetail() string {
	id, ok := m.selectedID()
	if !ok {
		return ""
	}
	o, ok := m.orders.Get(id)
	if !ok {
		return ""
	}
	badge := statusStyle(o.Status).Render(string(o.Status))
	return mutedStyle.Render("Order #"+strconv.Itoa(o.OrderID)+" · ") + badge +
		mutedStyle.Render(" · "+o.ItemsList(m.stocks.Get)) + "\n"
}

func (m OrdersModel) formView() string {
	title := "Add Order"
	if m.editingID > 0 {
		title = "Edit Order"
	}
	var b strings.Builder
	b.WriteString(headerStyle.Render(title) + "\n\n")

	b.WriteString(renderField("Customer Name", m.customer.View(), m.errs.ByField("customer_name")))
	b.WriteString(renderField("Created At", m.createdAt.View(), m.errs.ByField("created_at")))
	b.WriteString(renderField("Status", m.statusView(), m.errs.ByField("status")))

	b.WriteString(labelStyle.Render("Items") + "\n")
	if msg := m.errs.ByField("items"); msg != "" {
		b.WriteString(errorStyle.Render(msg) + "\n")
	}
	options := m.stocks.List()
	for i, line := range m.lines {
		b.WriteString(m.lineView(i, line, options))
	}

	b.WriteString("\n" + helpStyle.Render(
		"[enter] save  [tab] next  [←/→] pick  [ctrl+a] add item  [ctrl+x] remove item  [esc] cancel"))
	return boxStyle.Render(b.String())
}

func (m OrdersModel) statusView() string {
	label := "select status"
	if m.statusIdx >= 0 {
		label = string(entity.Statuses()[m.statusIdx])
	}
	view := "< " + label + " >"
	if m.focus == ordFieldStatus {
		return headerStyle.Render(view)
	}
	if m.statusIdx >= 0 {
		return statusStyle(entity.Statuses()[m.statusIdx]).Render(view)
	}
	return view
}

// lineView fila café+cantidad; la opción de café se anota con el stock
// vigente para elegir con contexto.
func (m OrdersModel) lineView(i int, line orderLine, options []entity.StockItem) string {
	itemLabel := "select a coffee"
	if line.itemIdx >= 0 && line.itemIdx < len(options) {
		opt := options[line.itemIdx]
		itemLabel = opt.Name + " (" + opt.DisplayStock() + ")"
	}
	picker := "< " + itemLabel + " >"
	if li, sub, ok := m.lineField(m.focus); ok && li == i && sub == 0 {
		picker = headerStyle.Render(picker)
	}

	var b strings.Builder
	b.WriteString("  " + picker + "  " + line.qty.View() + "\n")
	if msg := m.errs.ByField(validate.LineItemField(i, "item")); msg != "" {
		b.WriteString("  " + errorStyle.Render(msg) + "\n")
	}
	if msg := m.errs.ByField(validate.LineItemField(i, "qty")); msg != "" {
		b.WriteString("  " + errorStyle.Render(msg) + "\n")
	}
	return b.String()
}
