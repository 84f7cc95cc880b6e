package audit

import "log"

// Actions recorded by the usecases.
const (
	ActionVisitBooked      = "visit_booked"
	ActionVisitConflict    = "visit_conflict"
	ActionVisitConfirmed   = "visit_confirmed"
	ActionVisitCancelled   = "visit_cancelled"
	ActionVisitCompleted   = "visit_completed"
	ActionSubscribed       = "subscription_created"
	ActionSubCancelled     = "subscription_cancelled"
)

type Event struct {
	BarbershopID uint
	UserID       *uint
	Action       string
	Entity       string
	EntityID     *uint
	Metadata     any
}

type Dispatcher struct {
	logger *Logger
	queue  chan Event
}

func NewDispatcher(logger *Logger) *Dispatcher {
	d := &Dispatcher{
		logger: logger,
		queue:  make(chan Event, 100),
	}

	go d.worker()
	return d
}

func (d *Dispatcher) worker() {
	for ev := range d.queue {
		if err := d.logger.Log(
			ev.BarbershopID,
			ev.UserID,
			ev.Action,
			ev.Entity,
			ev.EntityID,
			ev.Metadata,
		); err != nil {
			log.Println("audit error:", err)
		}
	}
}

func (d *Dispatcher) Dispatch(ev Event) {
	if d == nil {
		return
	}

	select {
	case d.queue <- ev:
	default:
		// fila cheia: descartamos o evento, auditoria nunca derruba a API
		log.Println("audit queue full, dropping event")
	}
}
