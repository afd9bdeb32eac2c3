package domain

import "time"

// Reservation duration bounds (minutes)
const (
	MinReservationMinutes = 120 // 2 hours
	MaxReservationMinutes = 480 // 8 hours
)

// Default scheduling policy values
const (
	DefaultBufferMinutes             = 30
	DefaultAutoReleaseTimeoutMinutes = 30
	DefaultSlotStepMinutes           = 30
	DefaultAlternativesLimit         = 3
	DefaultBrowseLimit               = 10
	DefaultAlternativesHorizonHours  = 24
	DefaultUrgentWindowMinutes       = 120
)

// Business validation constants
const (
	MaxNotesLength              = 500
	MaxCancellationReasonLength = 500
	MaxOverrideReasonLength     = 500
	MinRoomCapacity             = 1
)

// Time format constants
const (
	DateFormat     = "2006-01-02" // YYYY-MM-DD
	DateTimeFormat = time.RFC3339
)

// ReleasedStatuses список статусов, освобождающих комнату
// Такие бронирования не участвуют в проверке конфликтов
var ReleasedStatuses = []ReservationStatus{
	StatusAutoReleased,
	StatusCancelled,
}

// BlockingStatuses список статусов, занимающих окно комнаты
// Завершённое бронирование продолжает занимать своё запланированное окно
var BlockingStatuses = []ReservationStatus{
	StatusConfirmed,
	StatusInProgress,
	StatusCompleted,
}
