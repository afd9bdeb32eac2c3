package domain

import "time"

// SchedulingPolicy holds the tunable scheduling rules of a deployment
type SchedulingPolicy struct {
	Buffer               time.Duration // Minimum idle gap between reservations of one room
	AutoReleaseTimeout   time.Duration // Grace period after ReservedFrom before an unclaimed hold is released
	SlotStep             time.Duration // Granularity of the free slot search
	AlternativesLimit    int           // Suggestions returned with a conflict
	BrowseLimit          int           // Slots returned by availability browsing
	AlternativesHorizon  time.Duration // How far ahead alternatives are searched
	UrgentWindow         time.Duration // Slots starting within this window are flagged urgent
	AllowSameCaseOverlap bool          // Whether one case may hold overlapping reservations in different rooms
}

// DefaultSchedulingPolicy returns the policy used when nothing is configured
func DefaultSchedulingPolicy() SchedulingPolicy {
	return SchedulingPolicy{
		Buffer:               DefaultBufferMinutes * time.Minute,
		AutoReleaseTimeout:   DefaultAutoReleaseTimeoutMinutes * time.Minute,
		SlotStep:             DefaultSlotStepMinutes * time.Minute,
		AlternativesLimit:    DefaultAlternativesLimit,
		BrowseLimit:          DefaultBrowseLimit,
		AlternativesHorizon:  DefaultAlternativesHorizonHours * time.Hour,
		UrgentWindow:         DefaultUrgentWindowMinutes * time.Minute,
		AllowSameCaseOverlap: true,
	}
}
