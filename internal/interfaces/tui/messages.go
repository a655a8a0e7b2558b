package tui

import (
	"errors"

	"github.com/jhoicas/beanbrews-backoffice/internal/domain/entity"
	"github.com/jhoicas/beanbrews-backoffice/internal/infrastructure/rest"
)

// Mensajes de las pantallas: cada fetch/mutación corre como tea.Cmd y su
// resultado vuelve por aquí, en el orden en que llegan las respuestas.
type (
	customersLoadedMsg struct{ list []entity.Customer }
	customerSavedMsg   struct{ customer *entity.Customer }
	customerDeletedMsg struct{ id int }

	stocksLoadedMsg struct{ list []entity.StockItem }
	stockSavedMsg   struct{ item *entity.StockItem }
	stockDeletedMsg struct{ id int }

	ordersLoadedMsg struct{ list []entity.Order }
	orderSavedMsg   struct{ order *entity.Order }
	orderDeletedMsg struct{ id int }
)

// errMsg fallo de una operación. Un *rest.APIError se muestra tal cual
// (mensaje del backend); cualquier otro error se reduce al aviso genérico
// "Failed to <op>".
type errMsg struct {
	op  string
	err error
}

func (e errMsg) notice() string {
	var apiErr *rest.APIError
	if errors.As(e.err, &apiErr) {
		return apiErr.Message
	}
	return "Failed to " + e.op
}
