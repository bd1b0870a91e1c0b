package domain

// Mercado Pago payment statuses this system reacts to. Anything else is
// treated as still in flight.
const (
	PagoApproved  = "approved"
	PagoPending   = "pending"
	PagoInProcess = "in_process"
	PagoRejected  = "rejected"
	PagoCancelled = "cancelled"
)

// MapPagoEstado maps a provider payment status to the reserva estado it
// should drive. Unknown statuses leave the reserva pendiente.
func MapPagoEstado(status string) ReservaEstado {
	switch status {
	case PagoApproved:
		return EstadoConfirmada
	case PagoRejected, PagoCancelled:
		return EstadoCancelada
	default:
		return EstadoPendiente
	}
}

// PreferenciaInput carries everything the gateway needs to build a payment
// preference for a reserva (or a weekly serie paid in one go).
type PreferenciaInput struct {
	ReservaID   string
	Titulo      string
	Descripcion string
	Monto       int64
	PayerEmail  string
}

// Preferencia is the provider-side payment preference: its id and the
// redirect URL the customer's browser is handed off to.
type Preferencia struct {
	ID        string
	InitPoint string
}

// Pago is the authoritative view of a payment fetched from the provider.
type Pago struct {
	ID                string
	Status            string
	ExternalReference string
}
