package services

import (
	"strings"

	"github.com/nitturkaryash/chic-salon-ecosystem-main/models"
	"github.com/nitturkaryash/chic-salon-ecosystem-main/storage"
)

// Ledger tracks cumulative visit and spend history per client. Identity is
// email or phone: the scan walks the collection in order and the first
// record whose email or phone matches wins. Empty identifiers never match,
// so two identity-less records can't merge.
type Ledger struct {
	store storage.Store
}

func NewLedger(store storage.Store) *Ledger {
	return &Ledger{store: store}
}

func (l *Ledger) List() ([]models.Client, error) {
	clients := []models.Client{}
	if err := l.store.Load(storage.CollectionClients, &clients); err != nil {
		return nil, err
	}
	return clients, nil
}

// Search filters clients by name, email or phone substring.
func (l *Ledger) Search(term string) ([]models.Client, error) {
	clients, err := l.List()
	if err != nil {
		return nil, err
	}
	if term == "" {
		return clients, nil
	}

	lower := strings.ToLower(term)
	matched := []models.Client{}
	for _, client := range clients {
		if strings.Contains(strings.ToLower(client.Name), lower) ||
			strings.Contains(strings.ToLower(client.Email), lower) ||
			strings.Contains(client.Phone, term) {
			matched = append(matched, client)
		}
	}
	return matched, nil
}

// UpsertFromTransaction records one visit. A matched client gets visits+1,
// spend incremented and the visit date, in place; an unmatched identity
// becomes a fresh record appended to the collection. The whole collection is
// persisted once, after the update.
func (l *Ledger) UpsertFromTransaction(name, email, phone, visitDate string, amountSpent float64) (models.Client, error) {
	clients, err := l.List()
	if err != nil {
		return models.Client{}, err
	}

	for i, client := range clients {
		if !matchesIdentity(client, email, phone) {
			continue
		}
		client.TotalVisits++
		client.TotalSpent += amountSpent
		client.LastVisitDate = visitDate
		clients[i] = client
		if err := l.store.Save(storage.CollectionClients, clients); err != nil {
			return models.Client{}, err
		}
		return client, nil
	}

	client := models.Client{
		ID:            nextClientID(clients),
		Name:          name,
		Email:         email,
		Phone:         phone,
		LastVisitDate: visitDate,
		TotalVisits:   1,
		TotalSpent:    amountSpent,
	}
	clients = append(clients, client)
	if err := l.store.Save(storage.CollectionClients, clients); err != nil {
		return models.Client{}, err
	}
	return client, nil
}

func matchesIdentity(client models.Client, email, phone string) bool {
	if email != "" && client.Email == email {
		return true
	}
	if phone != "" && client.Phone == phone {
		return true
	}
	return false
}

func nextClientID(clients []models.Client) int64 {
	var max int64
	for _, client := range clients {
		if client.ID > max {
			max = client.ID
		}
	}
	return max + 1
}
