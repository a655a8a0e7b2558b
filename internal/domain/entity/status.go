package entity

// Status estado de un pedido. El backend maneja una enumeración cerrada,
// pero la UI debe tolerar valores no reconocidos sin fallar.
type Status string

const (
	StatusNotStarted Status = "NOT STARTED"
	StatusPending    Status = "PENDING"
	StatusFinished   Status = "FINISHED"
)

// Statuses valores válidos en orden de presentación (para selectores).
func Statuses() []Status {
	return []Status{StatusNotStarted, StatusPending, StatusFinished}
}

// Known indica si el valor pertenece a la enumeración cerrada.
func (s Status) Known() bool {
	switch s {
	case StatusNotStarted, StatusPending, StatusFinished:
		return true
	}
	return false
}

// Color nombre de color para renderizar el estado. Cualquier valor
// desconocido cae al gris por defecto.
func (s Status) Color() string {
	switch s {
	case StatusNotStarted:
		return "red"
	case StatusPending:
		return "orange"
	case StatusFinished:
		return "green"
	default:
		return "gray"
	}
}
