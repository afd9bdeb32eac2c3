package domain

import (
	"sort"
	"time"
)

// AvailableSlot represents a free window of a room that satisfies duration and buffer rules
type AvailableSlot struct {
	PrepRoomID      string
	RoomNumber      string
	StartTime       time.Time
	EndTime         time.Time
	DurationMinutes int
}

// StartsWithin returns true if the slot starts in [now, now+window]
func (s *AvailableSlot) StartsWithin(now time.Time, window time.Duration) bool {
	return !s.StartTime.Before(now) && !s.StartTime.After(now.Add(window))
}

// SlotQuery describes a free slot search over the rooms of a funeral home
type SlotQuery struct {
	FuneralHomeID   string
	ReservedFrom    time.Time // Начало окна поиска
	ReservedTo      time.Time // Конец окна поиска (слот должен завершиться не позже)
	DurationMinutes int
	Capacity        int // Минимальная вместимость комнаты
	Limit           int // 0 = без ограничения
}

// RoomUtilization aggregates reservations of one room over a period
type RoomUtilization struct {
	PrepRoomID     string
	RoomNumber     string
	MaxCapacity    int
	ReservedCount  int
	AvailableSlots int
}

// OccupancyRate returns the utilization of the room as a percentage
func (u *RoomUtilization) OccupancyRate() float64 {
	if u.MaxCapacity == 0 {
		return 0
	}
	return float64(u.ReservedCount) / float64(u.MaxCapacity) * 100
}

// FindFreeSlots walks the search window with the policy step and returns the
// windows where a reservation of the requested duration would not collide with
// any blocking reservation of the room. Slots are ordered by start time, then
// by room number. booked is keyed by room id.
func FindFreeSlots(rooms []PrepRoom, booked map[string][]Reservation, query SlotQuery, policy SchedulingPolicy) []AvailableSlot {
	slots := make([]AvailableSlot, 0)
	if query.DurationMinutes <= 0 || !query.ReservedTo.After(query.ReservedFrom) {
		return slots
	}

	step := policy.SlotStep
	if step <= 0 {
		step = DefaultSlotStepMinutes * time.Minute
	}
	duration := time.Duration(query.DurationMinutes) * time.Minute

	candidates := make([]PrepRoom, 0, len(rooms))
	for _, room := range rooms {
		if !room.IsBookable() || room.Capacity < query.Capacity {
			continue
		}
		candidates = append(candidates, room)
	}
	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].RoomNumber < candidates[j].RoomNumber
	})

	for start := query.ReservedFrom; !start.Add(duration).After(query.ReservedTo); start = start.Add(step) {
		end := start.Add(duration)
		for _, room := range candidates {
			if isWindowTaken(booked[room.ID], start, end, policy.Buffer) {
				continue
			}
			slots = append(slots, AvailableSlot{
				PrepRoomID:      room.ID,
				RoomNumber:      room.RoomNumber,
				StartTime:       start,
				EndTime:         end,
				DurationMinutes: query.DurationMinutes,
			})
			if query.Limit > 0 && len(slots) >= query.Limit {
				return slots
			}
		}
	}

	return slots
}

// BuildRoomUtilization counts the blocking reservations of a room.
// The room is single-occupancy for scheduling, so AvailableSlots never goes below zero.
func BuildRoomUtilization(room PrepRoom, reservations []Reservation) RoomUtilization {
	reserved := 0
	for _, reservation := range reservations {
		if reservation.BlocksCalendar() {
			reserved++
		}
	}

	available := room.Capacity - reserved
	if available < 0 {
		available = 0
	}

	return RoomUtilization{
		PrepRoomID:     room.ID,
		RoomNumber:     room.RoomNumber,
		MaxCapacity:    room.Capacity,
		ReservedCount:  reserved,
		AvailableSlots: available,
	}
}

func isWindowTaken(reservations []Reservation, start, end time.Time, buffer time.Duration) bool {
	for _, reservation := range reservations {
		if _, ok := ClassifyConflict(reservation, start, end, buffer); ok {
			return true
		}
	}
	return false
}
