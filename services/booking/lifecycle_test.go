package booking

import (
	"context"
	"testing"

	"servehub/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func bookPending(t *testing.T, svc *DefaultBookingService) *models.Booking {
	t.Helper()
	b, err := svc.CreateBooking(context.Background(), validRequest())
	require.NoError(t, err)
	return b
}

func TestSetStatusWalksLegalPath(t *testing.T) {
	svc := newTestService(newFakeBookingRepo(), newFakeProviderRepo(testProvider()))
	b := bookPending(t, svc)

	confirmed, err := svc.SetStatus(context.Background(), b.ID, models.StatusConfirmed)
	require.NoError(t, err)
	assert.Equal(t, models.StatusConfirmed, confirmed.Status)

	completed, err := svc.SetStatus(context.Background(), b.ID, models.StatusCompleted)
	require.NoError(t, err)
	assert.Equal(t, models.StatusCompleted, completed.Status)
}

func TestSetStatusRejectsIllegalEdges(t *testing.T) {
	svc := newTestService(newFakeBookingRepo(), newFakeProviderRepo(testProvider()))

	// pending -> completed skips confirmation.
	b := bookPending(t, svc)
	_, err := svc.SetStatus(context.Background(), b.ID, models.StatusCompleted)
	assert.ErrorIs(t, err, ErrInvalidTransition)

	// Terminal statuses accept nothing.
	_, err = svc.SetStatus(context.Background(), b.ID, models.StatusCancelled)
	require.NoError(t, err)
	for _, next := range []models.BookingStatus{models.StatusPending, models.StatusConfirmed, models.StatusCompleted} {
		_, err = svc.SetStatus(context.Background(), b.ID, next)
		assert.ErrorIs(t, err, ErrInvalidTransition, "cancelled -> %s", next)
	}
}

func TestSetStatusLeavesBookingUnchangedOnRejection(t *testing.T) {
	repo := newFakeBookingRepo()
	svc := newTestService(repo, newFakeProviderRepo(testProvider()))
	b := bookPending(t, svc)

	_, err := svc.SetStatus(context.Background(), b.ID, models.StatusCompleted)
	require.ErrorIs(t, err, ErrInvalidTransition)

	stored, err := repo.GetByID(context.Background(), b.ID)
	require.NoError(t, err)
	assert.Equal(t, models.StatusPending, stored.Status)
}

func TestSetStatusUnknownBooking(t *testing.T) {
	svc := newTestService(newFakeBookingRepo(), newFakeProviderRepo(testProvider()))

	_, err := svc.SetStatus(context.Background(), "no-such-booking", models.StatusConfirmed)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestSetStatusLosesRaceToConcurrentTransition(t *testing.T) {
	repo := newFakeBookingRepo()
	svc := newTestService(repo, newFakeProviderRepo(testProvider()))
	b := bookPending(t, svc)

	// Another actor moves the booking after our read would have happened.
	_, err := repo.UpdateStatusIfCurrent(context.Background(), b.ID, models.StatusPending, models.StatusCancelled)
	require.NoError(t, err)

	_, err = svc.SetStatus(context.Background(), b.ID, models.StatusConfirmed)
	assert.ErrorIs(t, err, ErrInvalidTransition)
}
