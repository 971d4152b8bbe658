package models

// Slot is one entry of the bookable grid for a provider/date, tagged with
// whether a non-cancelled booking already claims it.
type Slot struct {
	Time      string `json:"time"` // grid label, e.g. "09:30"
	Available bool   `json:"available"`
}

// SlotCatalog is the full grid for a provider on one date. DeclaredRanges
// carries the provider's stated open hours for that weekday so callers can
// intersect if they choose; the grid itself is platform-wide.
type SlotCatalog struct {
	ProviderID     string      `json:"providerId"`
	Date           string      `json:"date"`
	Day            string      `json:"day"`
	Slots          []Slot      `json:"slots"`
	DeclaredRanges []TimeRange `json:"declaredRanges,omitempty"`
}
