package services

import (
	"strings"

	"github.com/nitturkaryash/chic-salon-ecosystem-main/models"
	"github.com/nitturkaryash/chic-salon-ecosystem-main/storage"
)

// Roster is the stylist collection. Service assignments are ids into the
// catalog with no referential integrity: a removed service leaves dangling
// ids that ServiceNames simply skips.
type Roster struct {
	store   storage.Store
	catalog *Catalog
}

func NewRoster(store storage.Store, catalog *Catalog) *Roster {
	return &Roster{store: store, catalog: catalog}
}

func (r *Roster) List() ([]models.Stylist, error) {
	stylists := []models.Stylist{}
	if err := r.store.Load(storage.CollectionStylists, &stylists); err != nil {
		return nil, err
	}
	return stylists, nil
}

func (r *Roster) Add(name, phone, email, specialization string, serviceIDs []int64) (models.Stylist, error) {
	if strings.TrimSpace(name) == "" {
		return models.Stylist{}, models.NewValidationError("name is required")
	}
	if strings.TrimSpace(phone) == "" {
		return models.Stylist{}, models.NewValidationError("phone is required")
	}
	if len(serviceIDs) == 0 {
		return models.Stylist{}, models.NewValidationError("at least one service is required")
	}

	stylists, err := r.List()
	if err != nil {
		return models.Stylist{}, err
	}

	stylist := models.Stylist{
		ID:             nextStylistID(stylists),
		Name:           name,
		Phone:          phone,
		Email:          email,
		Specialization: specialization,
		Services:       serviceIDs,
	}
	stylists = append(stylists, stylist)

	if err := r.store.Save(storage.CollectionStylists, stylists); err != nil {
		return models.Stylist{}, err
	}
	return stylist, nil
}

// Delete removes the matching stylist; unknown ids are a no-op.
func (r *Roster) Delete(id int64) (bool, error) {
	stylists, err := r.List()
	if err != nil {
		return false, err
	}

	kept := stylists[:0]
	for _, stylist := range stylists {
		if stylist.ID != id {
			kept = append(kept, stylist)
		}
	}
	if len(kept) == len(stylists) {
		return false, nil
	}
	if err := r.store.Save(storage.CollectionStylists, kept); err != nil {
		return false, err
	}
	return true, nil
}

// ServiceNames resolves a stylist's service ids against the catalog,
// skipping ids that no longer resolve.
func (r *Roster) ServiceNames(stylist models.Stylist) ([]string, error) {
	services, err := r.catalog.List()
	if err != nil {
		return nil, err
	}

	byID := make(map[int64]models.Service, len(services))
	for _, svc := range services {
		byID[svc.ID] = svc
	}

	names := []string{}
	for _, id := range stylist.Services {
		if svc, ok := byID[id]; ok {
			names = append(names, svc.Name)
		}
	}
	return names, nil
}

func nextStylistID(stylists []models.Stylist) int64 {
	var max int64
	for _, stylist := range stylists {
		if stylist.ID > max {
			max = stylist.ID
		}
	}
	return max + 1
}
