package models

import (
	"sort"
	"time"
)

// A user keeps at most this many recent measurement summaries.
const RecentMeasurementCap = 30

type BodyMeasurement struct {
	ID                string    `json:"id"`
	UserID            string    `json:"userId"`
	MeasurementDate   time.Time `json:"measurementDate"`
	WeightKg          float64   `json:"weightKg"`
	BodyFatPercentage *float64  `json:"bodyFatPercentage,omitempty"`
	CreatedAt         time.Time `json:"createdAt"`
	UpdatedAt         time.Time `json:"updatedAt"`
}

// MeasurementSummary is the denormalized per-user cache entry serving the
// recent-trend view without re-querying the full measurement history.
type MeasurementSummary struct {
	ID                int       `json:"id"` // sequential local id, not the row id
	Date              time.Time `json:"date"`
	WeightKg          float64   `json:"weightKg"`
	BodyFatPercentage *float64  `json:"bodyFatPercentage,omitempty"`
}

// RecentMeasurements is a bounded list kept ascending by date. It is updated
// via read-modify-write on the owning user row; concurrent writers for the
// same user are last-write-wins, not linearizable.
type RecentMeasurements []MeasurementSummary

// Append returns a new list containing the given summary with the next local
// id, sorted ascending by date and truncated to the cap (oldest evicted).
func (rm RecentMeasurements) Append(date time.Time, weightKg float64, bodyFat *float64) RecentMeasurements {
	next := 1
	for _, m := range rm {
		if m.ID >= next {
			next = m.ID + 1
		}
	}

	out := make(RecentMeasurements, 0, len(rm)+1)
	out = append(out, rm...)
	out = append(out, MeasurementSummary{
		ID:                next,
		Date:              date,
		WeightKg:          weightKg,
		BodyFatPercentage: bodyFat,
	})

	sort.SliceStable(out, func(i, j int) bool { return out[i].Date.Before(out[j].Date) })
	if len(out) > RecentMeasurementCap {
		out = out[len(out)-RecentMeasurementCap:]
	}
	return out
}
