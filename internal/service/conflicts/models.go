package conflicts

import (
	"time"

	"github.com/m04kA/SMC-PrepRoomService/internal/domain"
)

// Candidate запрошенное окно бронирования
type Candidate struct {
	PrepRoomID   string
	CaseID       string // Пустое значение отключает проверку пересечений внутри дела
	ReservedFrom time.Time
	ReservedTo   time.Time
	Priority     domain.Priority
}

// DurationMinutes длительность кандидата в минутах
func (c Candidate) DurationMinutes() int {
	return int(c.ReservedTo.Sub(c.ReservedFrom).Minutes())
}

// Decision результат проверки кандидата
type Decision struct {
	Room      *domain.PrepRoom
	Conflict  *domain.ConflictInfo // Первый найденный конфликт, nil если окно свободно
	Conflicts []domain.ConflictInfo
}

// HasConflict возвращает true, если кандидат не может быть создан без override
func (d *Decision) HasConflict() bool {
	return d.Conflict != nil
}
