package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nitturkaryash/chic-salon-ecosystem-main/models"
	"github.com/nitturkaryash/chic-salon-ecosystem-main/storage"
)

func newTestBook(t *testing.T) (*AppointmentBook, *Catalog, *Ledger) {
	t.Helper()
	store := storage.NewMemoryStore()
	catalog := NewCatalog(store)
	ledger := NewLedger(store)
	book := NewAppointmentBook(store, catalog, ledger)

	_, err := catalog.Add("Haircut & Style", "60", 800, "")
	require.NoError(t, err)
	return book, catalog, ledger
}

func TestCreateAppointmentSnapshotsService(t *testing.T) {
	book, _, _ := newTestBook(t)
	date := time.Date(2025, time.April, 29, 0, 0, 0, 0, time.UTC)

	appointment, err := book.Create("Asha Verma", "asha@example.com", "+919876543210", 1, date, "10:00 AM")
	require.NoError(t, err)
	assert.Equal(t, int64(1), appointment.ID)
	assert.Equal(t, "Haircut & Style", appointment.Service)
	assert.Equal(t, "April 29, 2025", appointment.Date)
	assert.Equal(t, "10:00 AM", appointment.Time)
	assert.Equal(t, 800.0, appointment.Price)
	assert.Equal(t, models.Minutes("60"), appointment.Duration)
}

func TestCreateAppointmentUpsertsLedger(t *testing.T) {
	book, _, ledger := newTestBook(t)
	date := time.Date(2025, time.April, 29, 0, 0, 0, 0, time.UTC)

	_, err := book.Create("Asha Verma", "asha@example.com", "+919876543210", 1, date, "10:00 AM")
	require.NoError(t, err)
	_, err = book.Create("Asha Verma", "asha@example.com", "+919876543210", 1, date.AddDate(0, 0, 7), "11:00 AM")
	require.NoError(t, err)

	clients, err := ledger.List()
	require.NoError(t, err)
	require.Len(t, clients, 1)
	assert.Equal(t, 2, clients[0].TotalVisits)
	assert.Equal(t, 1600.0, clients[0].TotalSpent)
	assert.Equal(t, "May 6, 2025", clients[0].LastVisitDate)
}

func TestCreateAppointmentValidation(t *testing.T) {
	book, _, ledger := newTestBook(t)
	date := time.Date(2025, time.April, 29, 0, 0, 0, 0, time.UTC)

	var validationErr *models.ValidationError

	_, err := book.Create("Asha", "a@example.com", "+919876543210", 1, time.Time{}, "10:00 AM")
	require.ErrorAs(t, err, &validationErr)

	_, err = book.Create("Asha", "a@example.com", "+919876543210", 0, date, "10:00 AM")
	require.ErrorAs(t, err, &validationErr)

	_, err = book.Create("Asha", "a@example.com", "+919876543210", 1, date, "")
	require.ErrorAs(t, err, &validationErr)

	_, err = book.Create("Asha", "a@example.com", "+919876543210", 1, date, "9:30 AM")
	require.ErrorAs(t, err, &validationErr)

	var serviceErr *models.InvalidServiceError
	_, err = book.Create("Asha", "a@example.com", "+919876543210", 42, date, "10:00 AM")
	require.ErrorAs(t, err, &serviceErr)

	// Nothing may be written on a rejected booking
	appointments, err := book.List()
	require.NoError(t, err)
	assert.Empty(t, appointments)
	clients, err := ledger.List()
	require.NoError(t, err)
	assert.Empty(t, clients)
}

func TestListAppointmentsSortedByStart(t *testing.T) {
	book, _, _ := newTestBook(t)

	late := time.Date(2025, time.May, 2, 0, 0, 0, 0, time.UTC)
	early := time.Date(2025, time.April, 29, 0, 0, 0, 0, time.UTC)

	_, err := book.Create("Meera", "meera@example.com", "+918888888888", 1, late, "9:00 AM")
	require.NoError(t, err)
	_, err = book.Create("Asha", "asha@example.com", "+919876543210", 1, early, "2:00 PM")
	require.NoError(t, err)
	_, err = book.Create("Sara", "sara@example.com", "+917777777777", 1, early, "10:00 AM")
	require.NoError(t, err)

	appointments, err := book.List()
	require.NoError(t, err)
	require.Len(t, appointments, 3)
	assert.Equal(t, "Sara", appointments[0].CustomerName)
	assert.Equal(t, "Asha", appointments[1].CustomerName)
	assert.Equal(t, "Meera", appointments[2].CustomerName)
}
