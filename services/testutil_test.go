package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"hotel-manager/models"
	"hotel-manager/repository"
)

// engine bundles a fresh in-memory database with the full service wiring.
type engine struct {
	db        *gorm.DB
	bookings  repository.BookingRepository
	rooms     repository.RoomRepository
	types     repository.RoomTypeRepository
	customers repository.CustomerRepository

	availability *AvailabilityService
	booking      *BookingService
	sweeper      *SweeperService
	room         *RoomService
	roomType     *RoomTypeService
	customer     *CustomerService
}

func newEngine(t *testing.T) *engine {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err, "open sqlite")

	require.NoError(t, db.AutoMigrate(
		&models.RoomType{},
		&models.Customer{},
		&models.Room{},
		&models.Booking{},
	), "migrate schema")

	e := &engine{
		db:        db,
		bookings:  repository.NewGormBookingRepository(db),
		rooms:     repository.NewGormRoomRepository(db),
		types:     repository.NewGormRoomTypeRepository(db),
		customers: repository.NewGormCustomerRepository(db),
	}
	e.availability = NewAvailabilityService(e.rooms, e.bookings)
	e.booking = NewBookingService(db, e.bookings, e.rooms, e.types, e.customers)
	e.sweeper = NewSweeperService(db, e.bookings, e.rooms)
	e.room = NewRoomService(e.rooms, e.types)
	e.roomType = NewRoomTypeService(e.types, e.rooms)
	e.customer = NewCustomerService(e.customers, e.bookings)
	return e
}

func (e *engine) seedType(t *testing.T, name string, price float64) *models.RoomType {
	t.Helper()
	rt := &models.RoomType{TypeName: name, Description: name + " Room", PricePerNight: price}
	require.NoError(t, e.db.Create(rt).Error)
	return rt
}

func (e *engine) seedRoom(t *testing.T, number string, typeID uint) *models.Room {
	t.Helper()
	room := &models.Room{RoomNumber: number, RoomTypeID: typeID, Status: models.RoomAvailable}
	require.NoError(t, e.db.Create(room).Error)
	return room
}

func (e *engine) seedCustomer(t *testing.T, name, email string) *models.Customer {
	t.Helper()
	c := &models.Customer{FullName: name, Email: email}
	require.NoError(t, e.db.Create(c).Error)
	return c
}

func (e *engine) roomStatus(t *testing.T, id uint) models.RoomStatus {
	t.Helper()
	var room models.Room
	require.NoError(t, e.db.First(&room, id).Error)
	return room.Status
}

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func bookingInput(roomID uint, checkIn, checkOut string) CreateBookingInput {
	return CreateBookingInput{
		RoomID:     roomID,
		CheckIn:    checkIn,
		CheckOut:   checkOut,
		NumGuests:  2,
		GuestName:  "Somsak Jaidee",
		GuestPhone: "0812345678",
		GuestEmail: "somsak@example.com",
	}
}
