package schedule

import "github.com/navalhaapp/barber-dashboard/internal/httperr"

// ===============================
// Visit Status
// ===============================

type Status string

const (
	StatusPending   Status = "pendente"
	StatusConfirmed Status = "confirmado"
	StatusCompleted Status = "atendido"
	StatusCancelled Status = "cancelado"
)

func ParseStatus(s string) (Status, bool) {
	switch Status(s) {
	case StatusPending, StatusConfirmed, StatusCompleted, StatusCancelled:
		return Status(s), true
	}
	return "", false
}

func InitialStatus() Status {
	return StatusPending
}

// ===============================
// Transition rules
// ===============================

// CanConfirm: somente visitas pendentes podem ser confirmadas
func CanConfirm(current Status) error {
	if current != StatusPending {
		return httperr.ErrBusiness("invalid_state")
	}
	return nil
}

// CanCancel: tudo que ainda não foi atendido pode ser cancelado.
// Cancelar de novo é permitido (idempotente).
func CanCancel(current Status) error {
	if current == StatusCompleted {
		return httperr.ErrBusiness("invalid_state")
	}
	return nil
}

// CanComplete: exige confirmação prévia; refinalizar é permitido para
// permitir edição de uma visita já atendida.
func CanComplete(current Status) error {
	if current != StatusConfirmed && current != StatusCompleted {
		return httperr.ErrBusiness("invalid_state")
	}
	return nil
}
