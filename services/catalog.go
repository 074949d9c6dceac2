package services

import (
	"github.com/nitturkaryash/chic-salon-ecosystem-main/models"
	"github.com/nitturkaryash/chic-salon-ecosystem-main/storage"
)

// Catalog is the source of truth for sellable services. POS lines and
// appointment bookings snapshot from it; orders never hold references back
// into it.
type Catalog struct {
	store storage.Store
}

func NewCatalog(store storage.Store) *Catalog {
	return &Catalog{store: store}
}

// List returns services in insertion order.
func (c *Catalog) List() ([]models.Service, error) {
	services := []models.Service{}
	if err := c.store.Load(storage.CollectionServices, &services); err != nil {
		return nil, err
	}
	return services, nil
}

// Get resolves a service id, returning InvalidServiceError when it is
// unknown.
func (c *Catalog) Get(id int64) (models.Service, error) {
	services, err := c.List()
	if err != nil {
		return models.Service{}, err
	}
	for _, svc := range services {
		if svc.ID == id {
			return svc, nil
		}
	}
	return models.Service{}, &models.InvalidServiceError{ServiceID: id}
}

// Add assigns a fresh id and appends. Presence of name/duration/price is the
// caller's responsibility; the catalog itself does not validate.
func (c *Catalog) Add(name string, duration models.Minutes, price float64, description string) (models.Service, error) {
	services, err := c.List()
	if err != nil {
		return models.Service{}, err
	}

	svc := models.Service{
		ID:              nextServiceID(services),
		Name:            name,
		DurationMinutes: duration,
		Price:           price,
		Description:     description,
	}
	services = append(services, svc)

	if err := c.store.Save(storage.CollectionServices, services); err != nil {
		return models.Service{}, err
	}
	return svc, nil
}

// Remove filters out the matching service. Removing an unknown id is a
// no-op; stylists referencing the removed id keep their dangling entries.
func (c *Catalog) Remove(id int64) error {
	services, err := c.List()
	if err != nil {
		return err
	}

	kept := services[:0]
	for _, svc := range services {
		if svc.ID != id {
			kept = append(kept, svc)
		}
	}
	if len(kept) == len(services) {
		return nil
	}
	return c.store.Save(storage.CollectionServices, kept)
}

func nextServiceID(services []models.Service) int64 {
	var max int64
	for _, svc := range services {
		if svc.ID > max {
			max = svc.ID
		}
	}
	return max + 1
}
