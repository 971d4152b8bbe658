package models

import (
	"fmt"
	"sort"
	"time"
)

// TimeRange is a same-day open interval on a provider's weekly schedule.
type TimeRange struct {
	From string `bson:"from" json:"from"` // "HH:MM"
	To   string `bson:"to" json:"to"`     // "HH:MM", strictly after From
}

// DayAvailability holds a provider's open ranges for one weekday.
type DayAvailability struct {
	Day    string      `bson:"day" json:"day"` // e.g. "Monday"
	Ranges []TimeRange `bson:"slots" json:"slots"`
}

// Provider is the service-provider document. The booking core reads
// availability and charges and writes only the rating projection fields.
type Provider struct {
	ID           string            `bson:"id" json:"id"`
	UserID       string            `bson:"user_id" json:"userId"`
	Services     []string          `bson:"services" json:"services"` // e.g. ["plumber", "electrician"]
	Location     string            `bson:"location" json:"location"`
	Bio          string            `bson:"bio,omitempty" json:"bio,omitempty"`
	Charges      float64           `bson:"charges" json:"charges"`
	Availability []DayAvailability `bson:"availability" json:"availability"`
	Rating       float64           `bson:"rating" json:"rating"` // mean review score, 1 decimal
	TotalReviews int               `bson:"total_reviews" json:"totalReviews"`
	IsBlocked    bool              `bson:"is_blocked" json:"isBlocked"`
	CreatedAt    time.Time         `bson:"created_at" json:"createdAt"`
	UpdatedAt    time.Time         `bson:"updated_at" json:"updatedAt"`
}

var weekdays = map[string]bool{
	"Sunday": true, "Monday": true, "Tuesday": true, "Wednesday": true,
	"Thursday": true, "Friday": true, "Saturday": true,
}

// ParseClock parses a canonical "HH:MM" label into minutes from midnight.
// Only the zero-padded five-character form is accepted: slot identity is raw
// string equality everywhere, so "9:30" must not name the same minute as
// "09:30".
func ParseClock(label string) (int, error) {
	if len(label) != 5 || label[2] != ':' {
		return 0, fmt.Errorf("invalid time %q: expected HH:MM", label)
	}
	for _, i := range []int{0, 1, 3, 4} {
		if label[i] < '0' || label[i] > '9' {
			return 0, fmt.Errorf("invalid time %q: expected HH:MM", label)
		}
	}
	h := int(label[0]-'0')*10 + int(label[1]-'0')
	m := int(label[3]-'0')*10 + int(label[4]-'0')
	if h > 23 || m > 59 {
		return 0, fmt.Errorf("invalid time %q: out of 24h clock", label)
	}
	return h*60 + m, nil
}

// ValidateAvailability checks the weekly availability shape: known day names,
// at most one entry per day, well-formed ranges with from < to, and no
// overlapping ranges within a day. Ranges need not be contiguous.
func ValidateAvailability(availability []DayAvailability) error {
	seen := make(map[string]bool, len(availability))
	for _, day := range availability {
		if !weekdays[day.Day] {
			return fmt.Errorf("invalid day name %q", day.Day)
		}
		if seen[day.Day] {
			return fmt.Errorf("duplicate availability entry for %s", day.Day)
		}
		seen[day.Day] = true

		type span struct{ from, to int }
		spans := make([]span, 0, len(day.Ranges))
		for _, r := range day.Ranges {
			from, err := ParseClock(r.From)
			if err != nil {
				return fmt.Errorf("%s: %w", day.Day, err)
			}
			to, err := ParseClock(r.To)
			if err != nil {
				return fmt.Errorf("%s: %w", day.Day, err)
			}
			if from >= to {
				return fmt.Errorf("%s: range %s-%s must start before it ends", day.Day, r.From, r.To)
			}
			spans = append(spans, span{from, to})
		}
		sort.Slice(spans, func(i, j int) bool { return spans[i].from < spans[j].from })
		for i := 1; i < len(spans); i++ {
			if spans[i].from < spans[i-1].to {
				return fmt.Errorf("%s: overlapping time ranges", day.Day)
			}
		}
	}
	return nil
}

// RangesForDay returns the declared ranges for a weekday, or nil when the
// provider does not work that day.
func RangesForDay(availability []DayAvailability, day string) []TimeRange {
	for _, d := range availability {
		if d.Day == day {
			return d.Ranges
		}
	}
	return nil
}
