package booking

import (
	"context"
	"errors"
	"fmt"
	"time"

	"servehub/config"
	providerRepo "servehub/database/repository/provider"
	"servehub/models"
)

// SlotGrid describes the platform-wide bookable day: fixed-width intervals
// from the opening label up to and including the closing label. The grid is
// not provider-specific.
type SlotGrid struct {
	StartMinutes int
	EndMinutes   int
	IntervalMins int
}

// DefaultSlotGrid is the 08:00-20:00 / 30-minute grid.
var DefaultSlotGrid = SlotGrid{StartMinutes: 480, EndMinutes: 1200, IntervalMins: 30}

// SlotGridFromConfig builds the grid from configuration, falling back to the
// defaults on malformed values.
func SlotGridFromConfig() SlotGrid {
	grid := DefaultSlotGrid
	if start, err := models.ParseClock(config.AppConfig.SlotDayStart); err == nil {
		grid.StartMinutes = start
	}
	if end, err := models.ParseClock(config.AppConfig.SlotDayEnd); err == nil {
		grid.EndMinutes = end
	}
	if iv := config.AppConfig.SlotIntervalMins; iv > 0 {
		grid.IntervalMins = iv
	}
	return grid
}

// Labels generates the full candidate grid, inclusive of the closing label.
func (g SlotGrid) Labels() []string {
	var labels []string
	for m := g.StartMinutes; m <= g.EndMinutes; m += g.IntervalMins {
		labels = append(labels, formatClock(m))
	}
	return labels
}

// Contains reports whether a time label is on the grid.
func (g SlotGrid) Contains(label string) bool {
	m, err := models.ParseClock(label)
	if err != nil {
		return false
	}
	if m < g.StartMinutes || m > g.EndMinutes {
		return false
	}
	return (m-g.StartMinutes)%g.IntervalMins == 0
}

func formatClock(minutes int) string {
	return fmt.Sprintf("%02d:%02d", minutes/60, minutes%60)
}

// GetAvailableSlots combines the fixed grid with the ledger's taken set for
// the provider/date. Past dates are not rejected here; temporal policy
// belongs to the caller. The provider's declared ranges for the weekday ride
// along so the caller can intersect if it chooses to.
func (s *DefaultBookingService) GetAvailableSlots(ctx context.Context, providerID, date string) (*models.SlotCatalog, error) {
	day, err := dayOfWeek(date)
	if err != nil {
		return nil, newValidationError("date", err.Error())
	}

	provider, err := s.ProviderRepo.GetByID(ctx, providerID)
	if err != nil {
		if errors.Is(err, providerRepo.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("fetching provider: %w", err)
	}

	taken, err := s.Repo.TakenSlots(ctx, providerID, date)
	if err != nil {
		return nil, fmt.Errorf("fetching taken slots: %w", err)
	}
	takenSet := make(map[string]bool, len(taken))
	for _, t := range taken {
		takenSet[t] = true
	}

	labels := s.Grid.Labels()
	slots := make([]models.Slot, 0, len(labels))
	for _, label := range labels {
		slots = append(slots, models.Slot{Time: label, Available: !takenSet[label]})
	}

	return &models.SlotCatalog{
		ProviderID:     providerID,
		Date:           date,
		Day:            day,
		Slots:          slots,
		DeclaredRanges: models.RangesForDay(provider.Availability, day),
	}, nil
}

// GetTakenSlots exposes the raw taken set for a provider/date.
func (s *DefaultBookingService) GetTakenSlots(ctx context.Context, providerID, date string) ([]string, error) {
	if _, err := dayOfWeek(date); err != nil {
		return nil, newValidationError("date", err.Error())
	}
	taken, err := s.Repo.TakenSlots(ctx, providerID, date)
	if err != nil {
		return nil, fmt.Errorf("fetching taken slots: %w", err)
	}
	return taken, nil
}

// dayOfWeek resolves a "YYYY-MM-DD" date key to its weekday name.
func dayOfWeek(date string) (string, error) {
	d, err := time.Parse("2006-01-02", date)
	if err != nil {
		return "", fmt.Errorf("expected YYYY-MM-DD, got %q", date)
	}
	return d.Weekday().String(), nil
}
