package domain

import "time"

// Slot a candidate one-hour interval within a day's operating window.
// Derived on every availability query, never persisted.
type Slot struct {
	StartTime   time.Time
	EndTime     time.Time
	IsAvailable bool
	Price       float64 // всегда часовая ставка корта, независимо от будущей длительности брони
}

// Overlaps проверяет пересечение слота с интервалом [start, end)
func (s *Slot) Overlaps(start, end time.Time) bool {
	return IntervalsOverlap(s.StartTime, s.EndTime, start, end)
}
