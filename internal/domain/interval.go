package domain

import "time"

// HasTimeOverlap reports whether the candidate interval [candidateStart, candidateEnd)
// intersects the existing interval widened by buffer on both ends.
//
// Примеры (buffer = 30m, existing 10:00-14:00):
// - candidate 14:00-16:00 → пересечение (нет зазора)
// - candidate 14:29-16:29 → пересечение (зазор меньше буфера)
// - candidate 14:30-16:30 → нет пересечения (зазор равен буферу)
func HasTimeOverlap(existingStart, existingEnd, candidateStart, candidateEnd time.Time, buffer time.Duration) bool {
	expandedStart := existingStart.Add(-buffer)
	expandedEnd := existingEnd.Add(buffer)
	return expandedStart.Before(candidateEnd) && expandedEnd.After(candidateStart)
}

// HasDirectOverlap reports whether two intervals intersect without any buffer
func HasDirectOverlap(existingStart, existingEnd, candidateStart, candidateEnd time.Time) bool {
	return existingStart.Before(candidateEnd) && existingEnd.After(candidateStart)
}

// IsValidDuration reports whether a reservation duration is within 2-8 hours inclusive
func IsValidDuration(durationMinutes int) bool {
	return durationMinutes >= MinReservationMinutes && durationMinutes <= MaxReservationMinutes
}
