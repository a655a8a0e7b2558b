package tui

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/jhoicas/beanbrews-backoffice/internal/application/store"
	"github.com/jhoicas/beanbrews-backoffice/internal/domain/entity"
	"github.com/jhoicas/beanbrews-backoffice/internal/domain/validate"
	"github.com/jhoicas/beanbrews-backoffice/internal/infrastructure/rest"
)

type custMode int

const (
	custList custMode = iota
	custForm
	custConfirm
)

// Índices de los inputs del formulario de cliente.
const (
	custFieldUsername = iota
	custFieldName
	custFieldEmail
	custFieldPhone
	custFieldCount
)

var custFieldNames = [custFieldCount]string{"username", "name", "email", "phone"}
var custFieldLabels = [custFieldCount]string{"Username", "Name", "Email", "Phone"}

// CustomersModel pantalla "Customer Data": tabla de clientes, modal de
// alta/edición y confirmación de borrado. El store es la única copia local y
// se parchea con la respuesta de cada mutación.
type CustomersModel struct {
	client *rest.Client
	store  *store.Keyed[int, entity.Customer]

	table  table.Model
	rowIDs []int

	mode      custMode
	inputs    [custFieldCount]textinput.Model
	focus     int
	errs      validate.Errors
	editingID int
	deleteID  int

	loading bool
	notice  string
}

func NewCustomersModel(client *rest.Client) CustomersModel {
	t := table.New(
		table.WithColumns([]table.Column{
			{Title: "ID", Width: 5},
			{Title: "Username", Width: 14},
			{Title: "Name", Width: 20},
			{Title: "Email", Width: 26},
			{Title: "Phone", Width: 15},
		}),
		table.WithFocused(true),
		table.WithHeight(10),
	)
	s := table.DefaultStyles()
	s.Header = s.Header.Bold(true).BorderBottom(true)
	s.Selected = s.Selected.Bold(true).Foreground(cardSelectedStyle.GetBorderTopForeground())
	t.SetStyles(s)

	return CustomersModel{
		client:  client,
		store:   store.NewKeyed(func(c entity.Customer) int { return c.ID }),
		table:   t,
		loading: true,
	}
}

// Mount reinicia la pantalla y dispara el fetch de montaje.
func (m CustomersModel) Mount() (CustomersModel, tea.Cmd) {
	m.mode = custList
	m.loading = true
	m.notice = ""
	m.errs = nil
	return m, m.loadCustomers
}

// InForm indica si la pantalla captura todas las teclas (modal abierto).
func (m CustomersModel) InForm() bool { return m.mode != custList }

func (m CustomersModel) loadCustomers() tea.Msg {
	list, err := m.client.ListCustomers()
	if err != nil {
		return errMsg{op: "fetch users", err: err}
	}
	return customersLoadedMsg{list: list}
}

func (m CustomersModel) saveCustomer(id int, f rest.CustomerFields) tea.Cmd {
	return func() tea.Msg {
		var (
			cust *entity.Customer
			err  error
		)
		if id > 0 {
			cust, err = m.client.UpdateCustomer(id, f)
		} else {
			cust, err = m.client.CreateCustomer(f)
		}
		if err != nil {
			return errMsg{op: "add user", err: err}
		}
		return customerSavedMsg{customer: cust}
	}
}

func (m CustomersModel) deleteCustomer(id int) tea.Cmd {
	return func() tea.Msg {
		if err := m.client.DeleteCustomer(id); err != nil {
			return errMsg{op: "delete user", err: err}
		}
		return customerDeletedMsg{id: id}
	}
}

func (m CustomersModel) Update(msg tea.Msg) (CustomersModel, tea.Cmd) {
	switch msg := msg.(type) {
	case customersLoadedMsg:
		m.loading = false
		m.store.Replace(msg.list)
		m.refreshRows()
		return m, nil

	case customerSavedMsg:
		m.store.Upsert(*msg.customer)
		m.refreshRows()
		m.closeForm()
		return m, nil

	case customerDeletedMsg:
		m.store.Remove(msg.id)
		m.refreshRows()
		m.notice = ""
		return m, nil

	case errMsg:
		// el modal, si estaba abierto, queda abierto para corregir
		m.loading = false
		m.notice = msg.notice()
		return m, nil

	case tea.KeyMsg:
		switch m.mode {
		case custForm:
			return m.updateForm(msg)
		case custConfirm:
			return m.updateConfirm(msg)
		default:
			return m.updateList(msg)
		}
	}
	return m, nil
}

func (m CustomersModel) updateList(msg tea.KeyMsg) (CustomersModel, tea.Cmd) {
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
			m.mode = custConfirm
		}
		return m, nil
	case "r":
		m.loading = true
		m.notice = ""
		return m, m.loadCustomers
	}
	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

func (m CustomersModel) updateForm(msg tea.KeyMsg) (CustomersModel, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.closeForm()
		return m, nil
	case "tab", "down":
		m.setFocus((m.focus + 1) % custFieldCount)
		return m, nil
	case "shift+tab", "up":
		m.setFocus((m.focus + custFieldCount - 1) % custFieldCount)
		return m, nil
	case "enter":
		return m.submit()
	}
	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	return m, cmd
}

func (m CustomersModel) updateConfirm(msg tea.KeyMsg) (CustomersModel, tea.Cmd) {
	switch msg.String() {
	case "y", "enter":
		id := m.deleteID
		m.deleteID = 0
		m.mode = custList
		return m, m.deleteCustomer(id)
	case "n", "esc":
		m.deleteID = 0
		m.mode = custList
		return m, nil
	}
	return m, nil
}

// submit valida todo el formulario; con errores no sale ninguna petición y
// el modal sigue abierto mostrando el mensaje junto a cada campo.
func (m CustomersModel) submit() (CustomersModel, tea.Cmd) {
	f := rest.CustomerFields{
		Username: strings.TrimSpace(m.inputs[custFieldUsername].Value()),
		Name:     strings.TrimSpace(m.inputs[custFieldName].Value()),
		Email:    strings.TrimSpace(m.inputs[custFieldEmail].Value()),
		Phone:    strings.TrimSpace(m.inputs[custFieldPhone].Value()),
	}
	m.errs = validate.Customer(f.Username, f.Name, f.Email, f.Phone)
	if len(m.errs) > 0 {
		return m, nil
	}
	return m, m.saveCustomer(m.editingID, f)
}

func (m *CustomersModel) openForm(id int) {
	for i := range m.inputs {
		m.inputs[i] = newInput(custFieldLabels[i], 30)
	}
	if id > 0 {
		if c, ok := m.store.Get(id); ok {
			m.inputs[custFieldUsername].SetValue(c.Username)
			m.inputs[custFieldName].SetValue(c.Name)
			m.inputs[custFieldEmail].SetValue(c.Email)
			m.inputs[custFieldPhone].SetValue(c.Phone)
		}
	}
	m.editingID = id
	m.errs = nil
	m.notice = ""
	m.mode = custForm
	m.setFocus(0)
}

func (m *CustomersModel) closeForm() {
	m.mode = custList
	m.editingID = 0
	m.errs = nil
	m.notice = ""
}

func (m *CustomersModel) setFocus(i int) {
	m.focus = i
	for j := range m.inputs {
		if j == i {
			m.inputs[j].Focus()
		} else {
			m.inputs[j].Blur()
		}
	}
}

func (m *CustomersModel) refreshRows() {
	list := m.store.List()
	rows := make([]table.Row, 0, len(list))
	m.rowIDs = m.rowIDs[:0]
	for _, c := range list {
		rows = append(rows, table.Row{strconv.Itoa(c.ID), c.Username, c.Name, c.Email, c.Phone})
		m.rowIDs = append(m.rowIDs, c.ID)
	}
	m.table.SetRows(rows)
}

func (m CustomersModel) selectedID() (int, bool) {
	i := m.table.Cursor()
	if i < 0 || i >= len(m.rowIDs) {
		return 0, false
	}
	return m.rowIDs[i], true
}

func (m CustomersModel) View() string {
	var b strings.Builder
	b.WriteString(headerStyle.Render("Customer Data") + "\n\n")

	switch m.mode {
	case custForm:
		b.WriteString(m.formView())
	case custConfirm:
		b.WriteString(confirmBox())
	default:
		if m.loading {
			b.WriteString(mutedStyle.Render("Loading customers...") + "\n")
		} else {
			b.WriteString(m.table.View() + "\n")
		}
		b.WriteString(helpStyle.Render("[a] add  [e] edit  [d] delete  [r] refresh"))
	}

	if m.notice != "" {
		b.WriteString("\n" + noticeStyle.Render(m.notice))
	}
	return b.String()
}

func (m CustomersModel) formView() string {
	title := "Add Customer"
	if m.editingID > 0 {
		title = "Edit Customer"
	}
	var b strings.Builder
	b.WriteString(headerStyle.Render(title) + "\n\n")
	for i := range m.inputs {
		b.WriteString(renderField(custFieldLabels[i], m.inputs[i].View(), m.errs.ByField(custFieldNames[i])))
	}
	b.WriteString("\n" + helpStyle.Render("[enter] save  [tab] next field  [esc] cancel"))
	return boxStyle.Render(b.String())
}
