package services

import (
	"sort"
	"strings"
	"time"

	"github.com/nitturkaryash/chic-salon-ecosystem-main/models"
	"github.com/nitturkaryash/chic-salon-ecosystem-main/storage"
)

const appointmentDateFormat = "January 2, 2006"

// TimeSlots are the bookable slots of a working day.
var TimeSlots = []string{
	"9:00 AM", "10:00 AM", "11:00 AM", "12:00 PM",
	"1:00 PM", "2:00 PM", "3:00 PM", "4:00 PM", "5:00 PM",
}

func validTimeSlot(slot string) bool {
	for _, s := range TimeSlots {
		if s == slot {
			return true
		}
	}
	return false
}

// AppointmentBook schedules bookings. Creating one snapshots price and
// duration from the catalog and records the visit in the client ledger; the
// two writes are independent, matching the per-collection persistence model.
type AppointmentBook struct {
	store   storage.Store
	catalog *Catalog
	ledger  *Ledger
}

func NewAppointmentBook(store storage.Store, catalog *Catalog, ledger *Ledger) *AppointmentBook {
	return &AppointmentBook{store: store, catalog: catalog, ledger: ledger}
}

// List returns appointments sorted ascending by date and time.
func (b *AppointmentBook) List() ([]models.Appointment, error) {
	appointments := []models.Appointment{}
	if err := b.store.Load(storage.CollectionAppointments, &appointments); err != nil {
		return nil, err
	}

	sort.SliceStable(appointments, func(i, j int) bool {
		return appointmentStart(appointments[i]).Before(appointmentStart(appointments[j]))
	})
	return appointments, nil
}

// Create validates the booking, appends it and upserts the client ledger
// with the service price as the visit amount.
func (b *AppointmentBook) Create(customerName, email, phone string, serviceID int64, date time.Time, slot string) (models.Appointment, error) {
	if strings.TrimSpace(customerName) == "" {
		return models.Appointment{}, models.NewValidationError("customer name is required")
	}
	if date.IsZero() {
		return models.Appointment{}, models.NewValidationError("date is required")
	}
	if serviceID == 0 {
		return models.Appointment{}, models.NewValidationError("service is required")
	}
	if slot == "" {
		return models.Appointment{}, models.NewValidationError("time is required")
	}
	if !validTimeSlot(slot) {
		return models.Appointment{}, models.NewValidationError("unknown time slot %q", slot)
	}

	svc, err := b.catalog.Get(serviceID)
	if err != nil {
		return models.Appointment{}, err
	}

	appointments := []models.Appointment{}
	if err := b.store.Load(storage.CollectionAppointments, &appointments); err != nil {
		return models.Appointment{}, err
	}

	appointment := models.Appointment{
		ID:           nextAppointmentID(appointments),
		CustomerName: customerName,
		Email:        email,
		Phone:        phone,
		Service:      svc.Name,
		Date:         date.Format(appointmentDateFormat),
		Time:         slot,
		Price:        svc.Price,
		Duration:     svc.DurationMinutes,
	}
	appointments = append(appointments, appointment)

	if err := b.store.Save(storage.CollectionAppointments, appointments); err != nil {
		return models.Appointment{}, err
	}

	if _, err := b.ledger.UpsertFromTransaction(customerName, email, phone, appointment.Date, svc.Price); err != nil {
		return models.Appointment{}, err
	}
	return appointment, nil
}

// appointmentStart parses the stored display date and slot back into a
// point in time. Unparseable records sort first rather than failing the
// listing.
func appointmentStart(a models.Appointment) time.Time {
	t, err := time.Parse(appointmentDateFormat+" 3:04 PM", a.Date+" "+a.Time)
	if err != nil {
		return time.Time{}
	}
	return t
}

func nextAppointmentID(appointments []models.Appointment) int64 {
	var max int64
	for _, a := range appointments {
		if a.ID > max {
			max = a.ID
		}
	}
	return max + 1
}
