package metrics

// Noop реализация бизнес-метрик для запуска без Prometheus
type Noop struct{}

// NewNoop создает пустой recorder
func NewNoop() *Noop {
	return &Noop{}
}

func (Noop) RecordReservationCreated(string, bool) {}
func (Noop) RecordConflict(string)                 {}
func (Noop) RecordTransition(string)               {}
func (Noop) RecordAutoReleased(int)                {}
