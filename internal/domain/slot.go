package domain

import "github.com/gymsys/GMS-ScheduleService/pkg/types"

// HourlySlot represents one bookable slot of the gym day in the client
// booking flow, together with its remaining trainer capacity.
type HourlySlot struct {
	StartTime       types.TimeString
	DurationMinutes int
	AvailableSpots  int // trainers still free in this slot
	TotalSpots      int // active trainers considered for this slot
}

// IsFull returns true if the slot has no available spots
func (s *HourlySlot) IsFull() bool {
	return s.AvailableSpots <= 0
}

// IsPartiallyAvailable returns true if the slot has some but not all spots available
func (s *HourlySlot) IsPartiallyAvailable() bool {
	return s.AvailableSpots > 0 && s.AvailableSpots < s.TotalSpots
}

// IsFullyAvailable returns true if all spots are available
func (s *HourlySlot) IsFullyAvailable() bool {
	return s.AvailableSpots == s.TotalSpots
}

// OccupancyRate returns the occupancy rate as a percentage (0-100)
func (s *HourlySlot) OccupancyRate() float64 {
	if s.TotalSpots == 0 {
		return 0
	}
	occupied := s.TotalSpots - s.AvailableSpots
	return float64(occupied) / float64(s.TotalSpots) * 100
}
