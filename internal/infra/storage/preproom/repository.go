package preproom

import (
	"github.com/m04kA/SMC-PrepRoomService/internal/domain"
)

var _ domain.PrepRoomRepository = (*Repository)(nil)

const (
	roomsTable        = "prep_rooms"
	reservationsTable = "prep_room_reservations"
)

var roomColumns = []string{
	"id",
	"funeral_home_id",
	"room_number",
	"capacity",
	"status",
	"created_by",
	"created_at",
	"updated_at",
}

var reservationColumns = []string{
	"id",
	"prep_room_id",
	"embalmer_id",
	"case_id",
	"family_id",
	"priority",
	"reserved_from",
	"reserved_to",
	"duration_minutes",
	"notes",
	"status",
	"checked_in_at",
	"checked_out_at",
	"actual_duration_minutes",
	"override_approved_by",
	"override_reason",
	"cancellation_reason",
	"cancelled_at",
	"released_at",
	"created_by",
	"created_at",
	"updated_at",
}

// Repository PostgreSQL реализация порта хранилища комнат и бронирований
type Repository struct {
	db     DBExecutor
	policy domain.SchedulingPolicy
}

// NewRepository создает новый экземпляр репозитория
func NewRepository(db DBExecutor, policy domain.SchedulingPolicy) *Repository {
	return &Repository{db: db, policy: policy}
}

// blockingStatuses статусы, которые занимают окно комнаты, в виде значений для SQL
func blockingStatuses() []string {
	statuses := make([]string, 0, len(domain.BlockingStatuses))
	for _, status := range domain.BlockingStatuses {
		statuses = append(statuses, string(status))
	}
	return statuses
}
