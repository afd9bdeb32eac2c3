package memory

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/m04kA/SMC-PrepRoomService/internal/domain"
)

var _ domain.PrepRoomRepository = (*Repository)(nil)

// Repository in-memory реализация порта хранилища
// Используется для локального запуска без PostgreSQL и в тестах use case'ов
type Repository struct {
	mu           sync.RWMutex
	rooms        map[string]domain.PrepRoom
	reservations map[string]domain.Reservation
	policy       domain.SchedulingPolicy
}

// NewRepository создает пустое хранилище
func NewRepository(policy domain.SchedulingPolicy) *Repository {
	return &Repository{
		rooms:        make(map[string]domain.PrepRoom),
		reservations: make(map[string]domain.Reservation),
		policy:       policy,
	}
}

// AddRoom добавляет комнату (настройка помещений вне планировщика)
func (r *Repository) AddRoom(room domain.PrepRoom) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rooms[room.ID] = room
}

// SetRoomStatus меняет статус комнаты (операционные события вне планировщика)
func (r *Repository) SetRoomStatus(roomID string, status domain.RoomStatus) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	room, ok := r.rooms[roomID]
	if !ok {
		return domain.ErrRoomNotFound
	}
	room.Status = status
	r.rooms[roomID] = room
	return nil
}

// GetPrepRoomByID получает комнату по ID
func (r *Repository) GetPrepRoomByID(ctx context.Context, id string) (*domain.PrepRoom, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("%w: GetPrepRoomByID: %v", domain.ErrPersistence, err)
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	room, ok := r.rooms[id]
	if !ok {
		return nil, domain.ErrRoomNotFound
	}
	return &room, nil
}

// GetPrepRoomsByFuneralHome получает все комнаты похоронного дома
func (r *Repository) GetPrepRoomsByFuneralHome(ctx context.Context, funeralHomeID string) ([]*domain.PrepRoom, error) {
	return r.listRooms(ctx, funeralHomeID, false)
}

// GetAvailablePrepRooms получает комнаты похоронного дома в статусе available
func (r *Repository) GetAvailablePrepRooms(ctx context.Context, funeralHomeID string) ([]*domain.PrepRoom, error) {
	return r.listRooms(ctx, funeralHomeID, true)
}

func (r *Repository) listRooms(ctx context.Context, funeralHomeID string, onlyAvailable bool) ([]*domain.PrepRoom, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("%w: listRooms: %v", domain.ErrPersistence, err)
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	rooms := make([]*domain.PrepRoom, 0)
	for _, room := range r.rooms {
		if room.FuneralHomeID != funeralHomeID {
			continue
		}
		if onlyAvailable && !room.IsBookable() {
			continue
		}
		room := room
		rooms = append(rooms, &room)
	}

	sort.Slice(rooms, func(i, j int) bool {
		return rooms[i].RoomNumber < rooms[j].RoomNumber
	})
	return rooms, nil
}

// CreateReservation сохраняет новое бронирование
func (r *Repository) CreateReservation(ctx context.Context, reservation *domain.Reservation) (*domain.Reservation, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("%w: CreateReservation: %v", domain.ErrPersistence, err)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.rooms[reservation.PrepRoomID]; !ok {
		return nil, domain.ErrRoomNotFound
	}
	if _, exists := r.reservations[reservation.ID]; exists {
		return nil, fmt.Errorf("%w: CreateReservation: duplicate id %s", domain.ErrPersistence, reservation.ID)
	}

	stored := *reservation
	r.reservations[stored.ID] = stored
	return &stored, nil
}

// GetReservationByID получает бронирование по ID
func (r *Repository) GetReservationByID(ctx context.Context, id string) (*domain.Reservation, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("%w: GetReservationByID: %v", domain.ErrPersistence, err)
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	reservation, ok := r.reservations[id]
	if !ok {
		return nil, domain.ErrReservationNotFound
	}
	return &reservation, nil
}

// GetReservationsByCase получает все бронирования дела
func (r *Repository) GetReservationsByCase(ctx context.Context, caseID string) ([]*domain.Reservation, error) {
	return r.filterReservations(ctx, func(res domain.Reservation) bool {
		return res.CaseID == caseID
	})
}

// GetReservationsByRoomAndDateRange получает бронирования комнаты, пересекающие период [start, end)
func (r *Repository) GetReservationsByRoomAndDateRange(ctx context.Context, roomID string, start, end time.Time) ([]*domain.Reservation, error) {
	return r.filterReservations(ctx, func(res domain.Reservation) bool {
		return res.PrepRoomID == roomID && domain.HasDirectOverlap(res.ReservedFrom, res.ReservedTo, start, end)
	})
}

// FindReservationsByStatus получает бронирования в указанном статусе
func (r *Repository) FindReservationsByStatus(ctx context.Context, status domain.ReservationStatus) ([]*domain.Reservation, error) {
	return r.filterReservations(ctx, func(res domain.Reservation) bool {
		return res.Status == status
	})
}

// UpdateReservation перезаписывает бронирование значением, полученным из перехода
func (r *Repository) UpdateReservation(ctx context.Context, reservation *domain.Reservation) (*domain.Reservation, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("%w: UpdateReservation: %v", domain.ErrPersistence, err)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.reservations[reservation.ID]; !ok {
		return nil, domain.ErrReservationNotFound
	}

	stored := *reservation
	r.reservations[stored.ID] = stored
	return &stored, nil
}

// CheckConflicts возвращает конфликты кандидата с бронированиями комнаты
// Приоритет не ослабляет правила, принудительное создание идёт через override
func (r *Repository) CheckConflicts(ctx context.Context, roomID string, start, end time.Time, _ domain.Priority) ([]domain.ConflictInfo, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("%w: CheckConflicts: %v", domain.ErrPersistence, err)
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	if _, ok := r.rooms[roomID]; !ok {
		return nil, domain.ErrRoomNotFound
	}

	existing := r.roomReservationsLocked(roomID)
	return domain.DetectConflicts(existing, start, end, r.policy.Buffer), nil
}

// FindAvailableSlots ищет свободные окна в комнатах похоронного дома
func (r *Repository) FindAvailableSlots(ctx context.Context, query domain.SlotQuery) ([]domain.AvailableSlot, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("%w: FindAvailableSlots: %v", domain.ErrPersistence, err)
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	rooms := make([]domain.PrepRoom, 0)
	booked := make(map[string][]domain.Reservation)
	for _, room := range r.rooms {
		if room.FuneralHomeID != query.FuneralHomeID {
			continue
		}
		rooms = append(rooms, room)
		booked[room.ID] = r.roomReservationsLocked(room.ID)
	}

	return domain.FindFreeSlots(rooms, booked, query, r.policy), nil
}

// GetRoomUtilization агрегирует бронирования комнат похоронного дома за период
func (r *Repository) GetRoomUtilization(ctx context.Context, funeralHomeID string, start, end time.Time) ([]domain.RoomUtilization, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("%w: GetRoomUtilization: %v", domain.ErrPersistence, err)
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	rooms := make([]domain.PrepRoom, 0)
	for _, room := range r.rooms {
		if room.FuneralHomeID == funeralHomeID {
			rooms = append(rooms, room)
		}
	}
	sort.Slice(rooms, func(i, j int) bool {
		return rooms[i].RoomNumber < rooms[j].RoomNumber
	})

	result := make([]domain.RoomUtilization, 0, len(rooms))
	for _, room := range rooms {
		inRange := make([]domain.Reservation, 0)
		for _, res := range r.roomReservationsLocked(room.ID) {
			if domain.HasDirectOverlap(res.ReservedFrom, res.ReservedTo, start, end) {
				inRange = append(inRange, res)
			}
		}
		result = append(result, domain.BuildRoomUtilization(room, inRange))
	}

	return result, nil
}

// roomReservationsLocked возвращает бронирования комнаты, отсортированные по началу и ID
// Вызывающий должен держать r.mu
func (r *Repository) roomReservationsLocked(roomID string) []domain.Reservation {
	out := make([]domain.Reservation, 0)
	for _, res := range r.reservations {
		if res.PrepRoomID == roomID {
			out = append(out, res)
		}
	}
	sortReservations(out)
	return out
}

func (r *Repository) filterReservations(ctx context.Context, match func(domain.Reservation) bool) ([]*domain.Reservation, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("%w: filterReservations: %v", domain.ErrPersistence, err)
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	matched := make([]domain.Reservation, 0)
	for _, res := range r.reservations {
		if match(res) {
			matched = append(matched, res)
		}
	}
	sortReservations(matched)

	out := make([]*domain.Reservation, len(matched))
	for i := range matched {
		out[i] = &matched[i]
	}
	return out, nil
}

func sortReservations(list []domain.Reservation) {
	sort.Slice(list, func(i, j int) bool {
		if !list[i].ReservedFrom.Equal(list[j].ReservedFrom) {
			return list[i].ReservedFrom.Before(list[j].ReservedFrom)
		}
		return list[i].ID < list[j].ID
	})
}

// snapshot копирует состояние хранилища (для отката транзакции)
func (r *Repository) snapshot() (map[string]domain.PrepRoom, map[string]domain.Reservation) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	rooms := make(map[string]domain.PrepRoom, len(r.rooms))
	for id, room := range r.rooms {
		rooms[id] = room
	}
	reservations := make(map[string]domain.Reservation, len(r.reservations))
	for id, res := range r.reservations {
		reservations[id] = res
	}
	return rooms, reservations
}

func (r *Repository) restore(rooms map[string]domain.PrepRoom, reservations map[string]domain.Reservation) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rooms = rooms
	r.reservations = reservations
}
