package review

import (
	"context"
	"sort"
	"sync"
	"testing"

	bookingRepo "servehub/database/repository/booking"
	providerRepo "servehub/database/repository/provider"
	userRepo "servehub/database/repository/user"
	"servehub/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// fakeReviewRepo keys reviews by (customer, provider), mirroring the unique
// index the Mongo implementation upserts against.
type fakeReviewRepo struct {
	mu      sync.Mutex
	reviews map[string]*models.Review
}

func newFakeReviewRepo() *fakeReviewRepo {
	return &fakeReviewRepo{reviews: make(map[string]*models.Review)}
}

func reviewKey(customerID, providerID string) string {
	return customerID + "/" + providerID
}

func (r *fakeReviewRepo) Upsert(ctx context.Context, review *models.Review) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	key := reviewKey(review.CustomerID, review.ProviderID)
	existing, ok := r.reviews[key]
	if ok {
		existing.Rating = review.Rating
		existing.Comment = review.Comment
		existing.UpdatedAt = review.UpdatedAt
		return true, nil
	}
	clone := *review
	r.reviews[key] = &clone
	return false, nil
}

func (r *fakeReviewRepo) AggregateProviderRating(ctx context.Context, providerID string) (float64, int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var sum, n int
	for _, rv := range r.reviews {
		if rv.ProviderID == providerID {
			sum += rv.Rating
			n++
		}
	}
	if n == 0 {
		return 0, 0, nil
	}
	return float64(sum) / float64(n), n, nil
}

func (r *fakeReviewRepo) ListByProvider(ctx context.Context, providerID string) ([]models.Review, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []models.Review
	for _, rv := range r.reviews {
		if rv.ProviderID == providerID {
			out = append(out, *rv)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

// completedBookings answers the review gate; every other ledger method is
// unused by the review service.
type completedBookings map[string]bool

func (c completedBookings) HasCompletedBooking(ctx context.Context, customerID, providerID string) (bool, error) {
	return c[reviewKey(customerID, providerID)], nil
}

func (c completedBookings) Create(ctx context.Context, b *models.Booking) error { return nil }
func (c completedBookings) GetByID(ctx context.Context, id string) (*models.Booking, error) {
	return nil, bookingRepo.ErrNotFound
}
func (c completedBookings) UpdateStatusIfCurrent(ctx context.Context, id string, current, next models.BookingStatus) (*models.Booking, error) {
	return nil, bookingRepo.ErrNotFound
}
func (c completedBookings) TakenSlots(ctx context.Context, providerID, date string) ([]string, error) {
	return nil, nil
}
func (c completedBookings) ListByCustomer(ctx context.Context, customerID string, opts bookingRepo.ListOptions) ([]models.Booking, error) {
	return nil, nil
}
func (c completedBookings) ListByProvider(ctx context.Context, providerID string, opts bookingRepo.ListOptions) ([]models.Booking, error) {
	return nil, nil
}

type fakeProviderRepo struct {
	mu        sync.Mutex
	providers map[string]*models.Provider
}

func newFakeProviderRepo(ids ...string) *fakeProviderRepo {
	r := &fakeProviderRepo{providers: make(map[string]*models.Provider)}
	for _, id := range ids {
		r.providers[id] = &models.Provider{ID: id, UserID: "user-" + id}
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
	return ids, nil
}

func (r *fakeProviderRepo) rating(id string) (float64, int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	p := r.providers[id]
	return p.Rating, p.TotalReviews
}

type fakeUserRepo struct{ users map[string]*models.User }

func (r *fakeUserRepo) GetByID(ctx context.Context, id string) (*models.User, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, userRepo.ErrNotFound
	}
	clone := *u
	return &clone, nil
}

func newTestService(providers *fakeProviderRepo, gate completedBookings) (*DefaultReviewService, *fakeReviewRepo) {
	repo := newFakeReviewRepo()
	svc := &DefaultReviewService{
		Repo:         repo,
		BookingRepo:  gate,
		ProviderRepo: providers,
		UserRepo:     &fakeUserRepo{users: map[string]*models.User{}},
		Logger:       zap.NewNop(),
	}
	return svc, repo
}

func TestSubmitReviewRequiresCompletedBooking(t *testing.T) {
	providers := newFakeProviderRepo("prov-1")
	svc, _ := newTestService(providers, completedBookings{})

	_, err := svc.SubmitReview(context.Background(), "cust-1", "prov-1", 5, "great")
	assert.ErrorIs(t, err, ErrNotAllowed)
}

func TestSubmitReviewUpdatesRatingProjection(t *testing.T) {
	providers := newFakeProviderRepo("prov-1")
	gate := completedBookings{
		reviewKey("cust-1", "prov-1"): true,
		reviewKey("cust-2", "prov-1"): true,
		reviewKey("cust-3", "prov-1"): true,
	}
	svc, _ := newTestService(providers, gate)

	for i, rating := range []int{5, 4, 3} {
		customer := []string{"cust-1", "cust-2", "cust-3"}[i]
		_, err := svc.SubmitReview(context.Background(), customer, "prov-1", rating, "")
		require.NoError(t, err)
	}

	avg, total := providers.rating("prov-1")
	assert.Equal(t, 4.0, avg)
	assert.Equal(t, 3, total)
}

func TestSubmitReviewRoundsToOneDecimal(t *testing.T) {
	providers := newFakeProviderRepo("prov-1")
	gate := completedBookings{
		reviewKey("cust-1", "prov-1"): true,
		reviewKey("cust-2", "prov-1"): true,
		reviewKey("cust-3", "prov-1"): true,
	}
	svc, _ := newTestService(providers, gate)

	// 5, 5, 4 -> 4.666... -> 4.7
	for i, rating := range []int{5, 5, 4} {
		customer := []string{"cust-1", "cust-2", "cust-3"}[i]
		_, err := svc.SubmitReview(context.Background(), customer, "prov-1", rating, "")
		require.NoError(t, err)
	}

	avg, _ := providers.rating("prov-1")
	assert.Equal(t, 4.7, avg)
}

func TestSubmitReviewUpsertsPerCustomer(t *testing.T) {
	providers := newFakeProviderRepo("prov-1")
	gate := completedBookings{reviewKey("cust-1", "prov-1"): true}
	svc, repo := newTestService(providers, gate)

	_, err := svc.SubmitReview(context.Background(), "cust-1", "prov-1", 2, "meh")
	require.NoError(t, err)
	_, err = svc.SubmitReview(context.Background(), "cust-1", "prov-1", 5, "they fixed it")
	require.NoError(t, err)

	reviews, err := repo.ListByProvider(context.Background(), "prov-1")
	require.NoError(t, err)
	require.Len(t, reviews, 1, "one review per customer per provider")
	assert.Equal(t, 5, reviews[0].Rating)

	avg, total := providers.rating("prov-1")
	assert.Equal(t, 5.0, avg)
	assert.Equal(t, 1, total)
}

func TestSubmitReviewRejectsBadInput(t *testing.T) {
	providers := newFakeProviderRepo("prov-1")
	gate := completedBookings{reviewKey("cust-1", "prov-1"): true}
	svc, _ := newTestService(providers, gate)

	for _, rating := range []int{0, -1, 6} {
		_, err := svc.SubmitReview(context.Background(), "cust-1", "prov-1", rating, "")
		assert.ErrorIs(t, err, ErrInvalidRating, "rating %d", rating)
	}

	long := make([]byte, 501)
	for i := range long {
		long[i] = 'x'
	}
	_, err := svc.SubmitReview(context.Background(), "cust-1", "prov-1", 5, string(long))
	assert.ErrorIs(t, err, ErrInvalidRating)

	_, err = svc.SubmitReview(context.Background(), "cust-1", "ghost", 5, "")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestRecomputeProviderRatingIsIdempotent(t *testing.T) {
	providers := newFakeProviderRepo("prov-1")
	gate := completedBookings{reviewKey("cust-1", "prov-1"): true}
	svc, _ := newTestService(providers, gate)

	_, err := svc.SubmitReview(context.Background(), "cust-1", "prov-1", 4, "")
	require.NoError(t, err)

	first, err := svc.RecomputeProviderRating(context.Background(), "prov-1")
	require.NoError(t, err)
	second, err := svc.RecomputeProviderRating(context.Background(), "prov-1")
	require.NoError(t, err)

	assert.Equal(t, first, second)
	avg, total := providers.rating("prov-1")
	assert.Equal(t, 4.0, avg)
	assert.Equal(t, 1, total)
}

func TestRecomputeWithNoReviewsZeroesProjection(t *testing.T) {
	providers := newFakeProviderRepo("prov-1")
	svc, _ := newTestService(providers, completedBookings{})

	summary, err := svc.RecomputeProviderRating(context.Background(), "prov-1")
	require.NoError(t, err)
	assert.Equal(t, 0.0, summary.AverageRating)
	assert.Equal(t, 0, summary.TotalReviews)
}

func TestListProviderReviewsJoinsReviewer(t *testing.T) {
	providers := newFakeProviderRepo("prov-1")
	gate := completedBookings{reviewKey("cust-1", "prov-1"): true}
	svc, _ := newTestService(providers, gate)
	svc.UserRepo = &fakeUserRepo{users: map[string]*models.User{
		"cust-1": {ID: "cust-1", Name: "Amina", ProfilePic: "pic.jpg"},
	}}

	_, err := svc.SubmitReview(context.Background(), "cust-1", "prov-1", 5, "solid work")
	require.NoError(t, err)

	views, err := svc.ListProviderReviews(context.Background(), "prov-1")
	require.NoError(t, err)
	require.Len(t, views, 1)
	require.NotNil(t, views[0].Customer)
	assert.Equal(t, "Amina", views[0].Customer.Name)
	assert.Equal(t, 5, views[0].Rating)
}
