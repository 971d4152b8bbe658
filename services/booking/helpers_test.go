package booking

import (
	"context"
	"sort"
	"sync"
	"time"

	bookingRepo "servehub/database/repository/booking"
	providerRepo "servehub/database/repository/provider"
	userRepo "servehub/database/repository/user"
	"servehub/models"

	"go.uber.org/zap"
)

// fakeBookingRepo is an in-memory ledger mirroring the storage guarantees the
// Mongo implementation gets from its indexes: one non-cancelled booking per
// (provider, date, time), and status-pinned updates.
type fakeBookingRepo struct {
	mu       sync.Mutex
	bookings map[string]*models.Booking
}

func newFakeBookingRepo() *fakeBookingRepo {
	return &fakeBookingRepo{bookings: make(map[string]*models.Booking)}
}

func (r *fakeBookingRepo) Create(ctx context.Context, booking *models.Booking) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, b := range r.bookings {
		if b.ProviderID == booking.ProviderID && b.Date == booking.Date &&
			b.Time == booking.Time && b.Status != models.StatusCancelled {
			return bookingRepo.ErrDuplicateSlot
		}
	}
	clone := *booking
	r.bookings[booking.ID] = &clone
	return nil
}

func (r *fakeBookingRepo) GetByID(ctx context.Context, id string) (*models.Booking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	b, ok := r.bookings[id]
	if !ok {
		return nil, bookingRepo.ErrNotFound
	}
	clone := *b
	return &clone, nil
}

func (r *fakeBookingRepo) UpdateStatusIfCurrent(ctx context.Context, id string, current, next models.BookingStatus) (*models.Booking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	b, ok := r.bookings[id]
	if !ok || b.Status != current {
		return nil, bookingRepo.ErrNotFound
	}
	b.Status = next
	b.UpdatedAt = time.Now()
	clone := *b
	return &clone, nil
}

func (r *fakeBookingRepo) TakenSlots(ctx context.Context, providerID, date string) ([]string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var taken []string
	for _, b := range r.bookings {
		if b.ProviderID == providerID && b.Date == date && b.Status != models.StatusCancelled {
			taken = append(taken, b.Time)
		}
	}
	sort.Strings(taken)
	return taken, nil
}

func (r *fakeBookingRepo) ListByCustomer(ctx context.Context, customerID string, opts bookingRepo.ListOptions) ([]models.Booking, error) {
	return r.list(func(b *models.Booking) bool { return b.CustomerID == customerID }), nil
}

func (r *fakeBookingRepo) ListByProvider(ctx context.Context, providerID string, opts bookingRepo.ListOptions) ([]models.Booking, error) {
	return r.list(func(b *models.Booking) bool { return b.ProviderID == providerID }), nil
}

func (r *fakeBookingRepo) list(match func(*models.Booking) bool) []models.Booking {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []models.Booking
	for _, b := range r.bookings {
		if match(b) {
			out = append(out, *b)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Date != out[j].Date {
			return out[i].Date > out[j].Date
		}
		return out[i].Time > out[j].Time
	})
	return out
}

func (r *fakeBookingRepo) HasCompletedBooking(ctx context.Context, customerID, providerID string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, b := range r.bookings {
		if b.CustomerID == customerID && b.ProviderID == providerID && b.Status == models.StatusCompleted {
			return true, nil
		}
	}
	return false, nil
}

type fakeProviderRepo struct {
	mu        sync.Mutex
	providers map[string]*models.Provider
}

func newFakeProviderRepo(providers ...*models.Provider) *fakeProviderRepo {
	r := &fakeProviderRepo{providers: make(map[string]*models.Provider)}
	for _, p := range providers {
		clone := *p
		r.providers[p.ID] = &clone
	}
	return r
}

func (r *fakeProviderRepo) GetByID(ctx context.Context, id string) (*models.Provider, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	p, ok := r.providers[id]
	if !ok {
		return nil, providerRepo.ErrNotFound
	}
	clone := *p
	return &clone, nil
}

func (r *fakeProviderRepo) UpdateAvailability(ctx context.Context, id string, availability []models.DayAvailability) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	p, ok := r.providers[id]
	if !ok {
		return providerRepo.ErrNotFound
	}
	p.Availability = availability
	return nil
}

func (r *fakeProviderRepo) UpdateRating(ctx context.Context, id string, averageRating float64, totalReviews int) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	p, ok := r.providers[id]
	if !ok {
		return providerRepo.ErrNotFound
	}
	p.Rating = averageRating
	p.TotalReviews = totalReviews
	return nil
}

func (r *fakeProviderRepo) ListIDs(ctx context.Context) ([]string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	ids := make([]string, 0, len(r.providers))
	for id := range r.providers {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids, nil
}

type fakeUserRepo struct {
	users map[string]*models.User
}

func newFakeUserRepo(users ...*models.User) *fakeUserRepo {
	r := &fakeUserRepo{users: make(map[string]*models.User)}
	for _, u := range users {
		clone := *u
		r.users[u.ID] = &clone
	}
	return r
}

func (r *fakeUserRepo) GetByID(ctx context.Context, id string) (*models.User, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, userRepo.ErrNotFound
	}
	clone := *u
	return &clone, nil
}

func testProvider() *models.Provider {
	return &models.Provider{
		ID:      "prov-1",
		UserID:  "user-prov-1",
		Charges: 120,
		Availability: []models.DayAvailability{
			{Day: "Monday", Ranges: []models.TimeRange{{From: "09:00", To: "17:00"}}},
		},
	}
}

func newTestService(repo *fakeBookingRepo, providers *fakeProviderRepo) *DefaultBookingService {
	return &DefaultBookingService{
		Repo:         repo,
		ProviderRepo: providers,
		UserRepo:     newFakeUserRepo(),
		Grid:         DefaultSlotGrid,
		Logger:       zap.NewNop(),
	}
}
