package schedule

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/navalhaapp/barber-dashboard/internal/httperr"
)

func TestParseStatus(t *testing.T) {
	for _, s := range []string{"pendente", "confirmado", "atendido", "cancelado"} {
		got, ok := ParseStatus(s)
		assert.True(t, ok)
		assert.Equal(t, Status(s), got)
	}

	_, ok := ParseStatus("agendado")
	assert.False(t, ok)
	_, ok = ParseStatus("")
	assert.False(t, ok)
}

func TestCanConfirm(t *testing.T) {
	assert.NoError(t, CanConfirm(StatusPending))

	for _, s := range []Status{StatusConfirmed, StatusCompleted, StatusCancelled} {
		err := CanConfirm(s)
		assert.True(t, httperr.IsBusiness(err, "invalid_state"), string(s))
	}
}

func TestCanCancel(t *testing.T) {
	assert.NoError(t, CanCancel(StatusPending))
	assert.NoError(t, CanCancel(StatusConfirmed))

	// cancelar de novo é permitido
	assert.NoError(t, CanCancel(StatusCancelled))

	err := CanCancel(StatusCompleted)
	assert.True(t, httperr.IsBusiness(err, "invalid_state"))
}

func TestCanComplete(t *testing.T) {
	assert.NoError(t, CanComplete(StatusConfirmed))

	// refinalizar uma visita atendida é permitido
	assert.NoError(t, CanComplete(StatusCompleted))

	for _, s := range []Status{StatusPending, StatusCancelled} {
		err := CanComplete(s)
		assert.True(t, httperr.IsBusiness(err, "invalid_state"), string(s))
	}
}
