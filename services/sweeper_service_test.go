package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hotel-manager/models"
)

// checkIn walks a booking to "In stay" so the sweeper has something to do.
func (e *engine) checkIn(t *testing.T, id uint) {
	t.Helper()
	_, err := e.booking.Confirm(id)
	require.NoError(t, err)
	_, err = e.booking.CheckIn(id)
	require.NoError(t, err)
}

func TestSweep_CompletesPastCheckouts(t *testing.T) {
	e := newEngine(t)
	rt := e.seedType(t, "Standard", 1000)
	r1 := e.seedRoom(t, "101", rt.ID)
	r2 := e.seedRoom(t, "102", rt.ID)

	past, err := e.booking.Create(bookingInput(r1.ID, "2024-03-01", "2024-03-04"))
	require.NoError(t, err)
	e.checkIn(t, past.ID)

	future, err := e.booking.Create(bookingInput(r2.ID, "2024-03-01", "2024-03-20"))
	require.NoError(t, err)
	e.checkIn(t, future.ID)

	report, err := e.sweeper.AutoCompleteCheckouts(date(2024, 3, 10))
	require.NoError(t, err)
	assert.Equal(t, 1, report.Completed)
	assert.Zero(t, report.Skipped)

	got, err := e.booking.GetByID(past.ID)
	require.NoError(t, err)
	assert.Equal(t, models.BookingCompleted, got.Status)
	assert.Equal(t, models.RoomAvailable, e.roomStatus(t, r1.ID))

	got, err = e.booking.GetByID(future.ID)
	require.NoError(t, err)
	assert.Equal(t, models.BookingInStay, got.Status)
	assert.Equal(t, models.RoomBooked, e.roomStatus(t, r2.ID))
}

func TestSweep_CheckoutTodayCompletes(t *testing.T) {
	e := newEngine(t)
	rt := e.seedType(t, "Standard", 1000)
	room := e.seedRoom(t, "101", rt.ID)

	booking, err := e.booking.Create(bookingInput(room.ID, "2024-03-01", "2024-03-04"))
	require.NoError(t, err)
	e.checkIn(t, booking.ID)

	report, err := e.sweeper.AutoCompleteCheckouts(date(2024, 3, 4))
	require.NoError(t, err)
	assert.Equal(t, 1, report.Completed)
}

func TestSweep_Idempotent(t *testing.T) {
	e := newEngine(t)
	rt := e.seedType(t, "Standard", 1000)
	room := e.seedRoom(t, "101", rt.ID)

	booking, err := e.booking.Create(bookingInput(room.ID, "2024-03-01", "2024-03-04"))
	require.NoError(t, err)
	e.checkIn(t, booking.ID)

	first, err := e.sweeper.AutoCompleteCheckouts(date(2024, 3, 10))
	require.NoError(t, err)
	assert.Equal(t, 1, first.Completed)

	second, err := e.sweeper.AutoCompleteCheckouts(date(2024, 3, 10))
	require.NoError(t, err)
	assert.Zero(t, second.Completed)
	assert.Zero(t, second.Skipped)
}

func TestSweep_IgnoresNonInStayBookings(t *testing.T) {
	e := newEngine(t)
	rt := e.seedType(t, "Standard", 1000)
	room := e.seedRoom(t, "101", rt.ID)

	// Pending with a past checkout: never picked up, only in-stay bookings
	// get auto-completed.
	booking, err := e.booking.Create(bookingInput(room.ID, "2024-03-01", "2024-03-04"))
	require.NoError(t, err)

	report, err := e.sweeper.AutoCompleteCheckouts(date(2024, 3, 10))
	require.NoError(t, err)
	assert.Zero(t, report.Completed)

	got, err := e.booking.GetByID(booking.ID)
	require.NoError(t, err)
	assert.Equal(t, models.BookingPending, got.Status)
}

func TestSweep_SkipsMissingCheckoutDate(t *testing.T) {
	e := newEngine(t)
	rt := e.seedType(t, "Standard", 1000)
	room := e.seedRoom(t, "101", rt.ID)

	booking, err := e.booking.Create(bookingInput(room.ID, "2024-03-01", "2024-03-04"))
	require.NoError(t, err)
	e.checkIn(t, booking.ID)

	require.NoError(t, e.db.Model(&models.Booking{}).
		Where("id = ?", booking.ID).Update("check_out_date", nil).Error)

	report, err := e.sweeper.AutoCompleteCheckouts(date(2024, 3, 10))
	require.NoError(t, err)
	assert.Zero(t, report.Completed)
	assert.Equal(t, 1, report.Skipped)
	require.Len(t, report.Reasons, 1)
	assert.Contains(t, report.Reasons[0], "missing checkout date")

	// Still in stay, room still held.
	got, err := e.booking.GetByID(booking.ID)
	require.NoError(t, err)
	assert.Equal(t, models.BookingInStay, got.Status)
	assert.Equal(t, models.RoomBooked, e.roomStatus(t, room.ID))
}

func TestSweep_RunUsesInjectedClock(t *testing.T) {
	e := newEngine(t)
	rt := e.seedType(t, "Standard", 1000)
	room := e.seedRoom(t, "101", rt.ID)

	booking, err := e.booking.Create(bookingInput(room.ID, "2024-03-01", "2024-03-04"))
	require.NoError(t, err)
	e.checkIn(t, booking.ID)

	e.sweeper.Now = func() time.Time { return date(2024, 3, 10) }
	report, err := e.sweeper.Run()
	require.NoError(t, err)
	assert.Equal(t, 1, report.Completed)
}
