package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hotel-manager/models"
)

func TestCreateBooking_PricesAndMarksRoomBooked(t *testing.T) {
	e := newEngine(t)
	rt := e.seedType(t, "Deluxe", 500000)
	room := e.seedRoom(t, "101", rt.ID)

	booking, err := e.booking.Create(bookingInput(room.ID, "2024-03-01", "2024-03-04"))
	require.NoError(t, err)

	assert.Equal(t, models.BookingPending, booking.Status)
	assert.Equal(t, 3, booking.Nights)
	assert.Equal(t, float64(1500000), booking.TotalAmount)
	assert.NotEmpty(t, booking.ReferenceCode)
	assert.Equal(t, "Somsak Jaidee", booking.GuestName)
	assert.Nil(t, booking.CustomerID)

	assert.Equal(t, models.RoomBooked, e.roomStatus(t, room.ID))
}

func TestCreateBooking_SequentialIDs(t *testing.T) {
	e := newEngine(t)
	rt := e.seedType(t, "Standard", 1000)
	r1 := e.seedRoom(t, "101", rt.ID)
	r2 := e.seedRoom(t, "102", rt.ID)
	r3 := e.seedRoom(t, "103", rt.ID)

	b1, err := e.booking.Create(bookingInput(r1.ID, "2024-03-01", "2024-03-02"))
	require.NoError(t, err)
	b2, err := e.booking.Create(bookingInput(r2.ID, "2024-03-01", "2024-03-02"))
	require.NoError(t, err)
	b3, err := e.booking.Create(bookingInput(r3.ID, "2024-03-01", "2024-03-02"))
	require.NoError(t, err)

	assert.Equal(t, uint(1), b1.ID)
	assert.Equal(t, uint(2), b2.ID)
	assert.Equal(t, uint(3), b3.ID)
}

func TestCreateBooking_RejectsInvalidInput(t *testing.T) {
	e := newEngine(t)
	rt := e.seedType(t, "Standard", 1000)
	room := e.seedRoom(t, "101", rt.ID)

	// checkout before checkin
	_, err := e.booking.Create(bookingInput(room.ID, "2024-03-04", "2024-03-01"))
	assert.ErrorIs(t, err, ErrInvalidDateRange)

	// zero nights
	_, err = e.booking.Create(bookingInput(room.ID, "2024-03-01", "2024-03-01"))
	assert.ErrorIs(t, err, ErrInvalidDateRange)

	// unparsable date
	_, err = e.booking.Create(bookingInput(room.ID, "soon", "2024-03-04"))
	assert.ErrorIs(t, err, ErrInvalidDateRange)

	// non-positive guest count
	in := bookingInput(room.ID, "2024-03-01", "2024-03-04")
	in.NumGuests = 0
	_, err = e.booking.Create(in)
	assert.ErrorIs(t, err, ErrInvalidGuestCount)

	// missing guest name
	in = bookingInput(room.ID, "2024-03-01", "2024-03-04")
	in.GuestName = "  "
	_, err = e.booking.Create(in)
	assert.ErrorIs(t, err, ErrMissingRequiredField)

	// unknown room
	_, err = e.booking.Create(bookingInput(999, "2024-03-01", "2024-03-04"))
	assert.ErrorIs(t, err, ErrNotFound)

	// unknown customer
	in = bookingInput(room.ID, "2024-03-01", "2024-03-04")
	missing := uint(42)
	in.CustomerID = &missing
	_, err = e.booking.Create(in)
	assert.ErrorIs(t, err, ErrNotFound)

	// nothing was written, room untouched
	assert.Equal(t, models.RoomAvailable, e.roomStatus(t, room.ID))
}

func TestCreateBooking_RefusesOverlap(t *testing.T) {
	e := newEngine(t)
	rt := e.seedType(t, "Standard", 1000)
	room := e.seedRoom(t, "101", rt.ID)

	_, err := e.booking.Create(bookingInput(room.ID, "2024-01-10", "2024-01-15"))
	require.NoError(t, err)

	_, err = e.booking.Create(bookingInput(room.ID, "2024-01-12", "2024-01-14"))
	assert.ErrorIs(t, err, ErrRoomUnavailable)

	// Adjacent range is fine: checkout day frees the room for new arrivals.
	_, err = e.booking.Create(bookingInput(room.ID, "2024-01-15", "2024-01-20"))
	assert.NoError(t, err)
}

func TestLifecycle_HappyPath(t *testing.T) {
	e := newEngine(t)
	rt := e.seedType(t, "Standard", 1000)
	room := e.seedRoom(t, "101", rt.ID)

	booking, err := e.booking.Create(bookingInput(room.ID, "2024-03-01", "2024-03-04"))
	require.NoError(t, err)

	confirmed, err := e.booking.Confirm(booking.ID)
	require.NoError(t, err)
	assert.Equal(t, models.BookingConfirmed, confirmed.Status)

	inStay, err := e.booking.CheckIn(booking.ID)
	require.NoError(t, err)
	assert.Equal(t, models.BookingInStay, inStay.Status)

	// Room stays Booked through the whole active lifecycle.
	assert.Equal(t, models.RoomBooked, e.roomStatus(t, room.ID))
}

func TestLifecycle_RejectsWrongOrder(t *testing.T) {
	e := newEngine(t)
	rt := e.seedType(t, "Standard", 1000)
	room := e.seedRoom(t, "101", rt.ID)

	booking, err := e.booking.Create(bookingInput(room.ID, "2024-03-01", "2024-03-04"))
	require.NoError(t, err)

	// Check-in straight from Pending is not allowed.
	_, err = e.booking.CheckIn(booking.ID)
	assert.ErrorIs(t, err, ErrInvalidTransition)

	_, err = e.booking.Confirm(booking.ID)
	require.NoError(t, err)

	// Double confirm fails.
	_, err = e.booking.Confirm(booking.ID)
	assert.ErrorIs(t, err, ErrInvalidTransition)

	// Unknown booking is a clean not-found, never a crash.
	_, err = e.booking.Confirm(9999)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestCancel_ReleasesRoom(t *testing.T) {
	e := newEngine(t)
	rt := e.seedType(t, "Standard", 1000)
	room := e.seedRoom(t, "101", rt.ID)

	booking, err := e.booking.Create(bookingInput(room.ID, "2024-03-01", "2024-03-04"))
	require.NoError(t, err)
	assert.Equal(t, models.RoomBooked, e.roomStatus(t, room.ID))

	cancelled, err := e.booking.CancelAdmin(booking.ID)
	require.NoError(t, err)
	assert.Equal(t, models.BookingCancelled, cancelled.Status)
	assert.Equal(t, models.RoomAvailable, e.roomStatus(t, room.ID))
}

func TestCancel_OwnershipCheck(t *testing.T) {
	e := newEngine(t)
	rt := e.seedType(t, "Standard", 1000)
	room := e.seedRoom(t, "101", rt.ID)
	owner := e.seedCustomer(t, "Owner", "owner@example.com")
	other := e.seedCustomer(t, "Other", "other@example.com")

	in := bookingInput(room.ID, "2024-03-01", "2024-03-04")
	in.CustomerID = &owner.ID
	booking, err := e.booking.Create(in)
	require.NoError(t, err)

	// Someone else cannot cancel it.
	_, err = e.booking.Cancel(booking.ID, &other.ID)
	assert.ErrorIs(t, err, ErrNotOwner)

	// A guest booking (no account) cannot be self-service cancelled either.
	guest, err := e.booking.Create(bookingInput(e.seedRoom(t, "102", rt.ID).ID, "2024-03-01", "2024-03-04"))
	require.NoError(t, err)
	_, err = e.booking.Cancel(guest.ID, &owner.ID)
	assert.ErrorIs(t, err, ErrNotOwner)

	// The owner can.
	cancelled, err := e.booking.Cancel(booking.ID, &owner.ID)
	require.NoError(t, err)
	assert.Equal(t, models.BookingCancelled, cancelled.Status)
}

func TestTerminalStatesAreImmutable(t *testing.T) {
	e := newEngine(t)
	rt := e.seedType(t, "Standard", 1000)
	room := e.seedRoom(t, "101", rt.ID)

	booking, err := e.booking.Create(bookingInput(room.ID, "2024-03-01", "2024-03-04"))
	require.NoError(t, err)
	_, err = e.booking.CancelAdmin(booking.ID)
	require.NoError(t, err)

	for _, attempt := range []func(uint) (*models.Booking, error){
		e.booking.Confirm, e.booking.CheckIn, e.booking.CancelAdmin,
	} {
		_, err := attempt(booking.ID)
		assert.ErrorIs(t, err, ErrInvalidTransition)
	}

	got, err := e.booking.GetByID(booking.ID)
	require.NoError(t, err)
	assert.Equal(t, models.BookingCancelled, got.Status)
}

func TestTransitionStatus_StaleReadCannotOverwriteTerminal(t *testing.T) {
	e := newEngine(t)
	rt := e.seedType(t, "Standard", 1000)
	room := e.seedRoom(t, "101", rt.ID)

	booking, err := e.booking.Create(bookingInput(room.ID, "2024-03-01", "2024-03-04"))
	require.NoError(t, err)
	e.checkIn(t, booking.ID)

	// The sweeper completes the stay while a cancel request is in flight.
	report, err := e.sweeper.AutoCompleteCheckouts(date(2024, 3, 10))
	require.NoError(t, err)
	require.Equal(t, 1, report.Completed)

	// The cancel's status check passed against the old "In stay" read; the
	// guarded write must refuse to move the now-Completed row.
	moved, err := e.bookings.TransitionStatus(booking.ID, models.BookingInStay, models.BookingCancelled)
	require.NoError(t, err)
	assert.False(t, moved)

	got, err := e.booking.GetByID(booking.ID)
	require.NoError(t, err)
	assert.Equal(t, models.BookingCompleted, got.Status)
}

func TestCreateBooking_RetriesOnReferenceCollision(t *testing.T) {
	e := newEngine(t)
	rt := e.seedType(t, "Standard", 1000)
	r1 := e.seedRoom(t, "101", rt.ID)
	r2 := e.seedRoom(t, "102", rt.ID)

	first, err := e.booking.Create(bookingInput(r1.ID, "2024-03-01", "2024-03-04"))
	require.NoError(t, err)

	// First generated code collides with an existing booking, the retry gets
	// a fresh one.
	codes := []string{first.ReferenceCode, "BK-FRESH001"}
	e.booking.NewRef = func() string {
		code := codes[0]
		if len(codes) > 1 {
			codes = codes[1:]
		}
		return code
	}

	second, err := e.booking.Create(bookingInput(r2.ID, "2024-03-01", "2024-03-04"))
	require.NoError(t, err)
	assert.Equal(t, "BK-FRESH001", second.ReferenceCode)
	assert.NotEqual(t, first.ReferenceCode, second.ReferenceCode)
}

func TestListByStatus_NormalizesSpellings(t *testing.T) {
	e := newEngine(t)
	rt := e.seedType(t, "Standard", 1000)
	room := e.seedRoom(t, "101", rt.ID)

	booking, err := e.booking.Create(bookingInput(room.ID, "2024-03-01", "2024-03-04"))
	require.NoError(t, err)

	// Simulate legacy data written with the drifted spelling.
	require.NoError(t, e.db.Model(&models.Booking{}).
		Where("id = ?", booking.ID).Update("status", "Canceled").Error)

	for _, query := range []string{"Cancelled", "Canceled"} {
		list, err := e.booking.ListByStatus(query)
		require.NoError(t, err)
		require.Len(t, list, 1, query)
		// Engine only ever sees the canonical value.
		assert.Equal(t, models.BookingCancelled, list[0].Status)
	}

	_, err = e.booking.ListByStatus("Checked-Out")
	assert.ErrorIs(t, err, ErrUnknownStatus)
}

func TestGetByReference(t *testing.T) {
	e := newEngine(t)
	rt := e.seedType(t, "Standard", 1000)
	room := e.seedRoom(t, "101", rt.ID)

	booking, err := e.booking.Create(bookingInput(room.ID, "2024-03-01", "2024-03-04"))
	require.NoError(t, err)

	got, err := e.booking.GetByReference(booking.ReferenceCode)
	require.NoError(t, err)
	assert.Equal(t, booking.ID, got.ID)

	_, err = e.booking.GetByReference("BK-NOPE0000")
	assert.ErrorIs(t, err, ErrNotFound)
}
