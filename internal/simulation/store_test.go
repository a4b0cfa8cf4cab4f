package simulation

import (
	"context"
	"time"

	"github.com/blockflix/blockflix/internal/catalog"
	"github.com/blockflix/blockflix/internal/model"
	"github.com/blockflix/blockflix/internal/repository"
)

// memStore is an in-memory Store used by the simulation tests.  It
// mirrors the MySQL repository's contract, including the sentinel
// errors of the open-rental lookup.
type memStore struct {
	cat      *catalog.Catalog
	users    []model.User
	payments []model.Payment
	rentals  []model.Rental

	resets       int
	nextUserID   uint64
	nextRentalID uint64
}

func newMemStore() *memStore {
	return &memStore{cat: &catalog.Catalog{}}
}

func (m *memStore) Reset(context.Context) error {
	m.cat = &catalog.Catalog{}
	m.users = nil
	m.payments = nil
	m.rentals = nil
	m.nextUserID = 0
	m.nextRentalID = 0
	m.resets++
	return nil
}

func (m *memStore) SaveCatalog(_ context.Context, cat *catalog.Catalog) error {
	m.cat = cat
	return nil
}

func (m *memStore) BulkCreateUsers(_ context.Context, users []model.User) error {
	for _, u := range users {
		m.nextUserID++
		u.ID = m.nextUserID
		m.users = append(m.users, u)
	}
	return nil
}

func (m *memStore) UserIDsCreatedBy(_ context.Context, cutoff time.Time) ([]uint64, error) {
	var ids []uint64
	for _, u := range m.users {
		if !u.CreatedAt.After(cutoff) {
			ids = append(ids, u.ID)
		}
	}
	return ids, nil
}

func (m *memStore) BulkCreatePayments(_ context.Context, payments []model.Payment) error {
	m.payments = append(m.payments, payments...)
	return nil
}

func (m *memStore) EligibleFilmIDs(_ context.Context, asOf time.Time, minPopularity float64) ([]uint64, error) {
	var ids []uint64
	for _, f := range m.cat.Films {
		if f.ReleaseDate == nil || f.ReleaseDate.After(asOf) || f.Popularity < minPopularity {
			continue
		}
		ids = append(ids, f.ID)
	}
	return ids, nil
}

func (m *memStore) OpenRentalForUser(_ context.Context, userID uint64) (*model.Rental, error) {
	var open []model.Rental
	for _, r := range m.rentals {
		if r.UserID == userID && r.ReturnDate == nil {
			open = append(open, r)
		}
	}
	switch len(open) {
	case 0:
		return nil, repository.ErrNoOpenRental
	case 1:
		r := open[0]
		return &r, nil
	default:
		return nil, repository.ErrMultipleOpenRentals
	}
}

func (m *memStore) CreateRental(_ context.Context, rental *model.Rental) error {
	m.nextRentalID++
	rental.ID = m.nextRentalID
	m.rentals = append(m.rentals, *rental)
	return nil
}

func (m *memStore) CloseRental(_ context.Context, rentalID uint64, returnedAt time.Time) error {
	for i := range m.rentals {
		if m.rentals[i].ID == rentalID && m.rentals[i].ReturnDate == nil {
			t := returnedAt
			m.rentals[i].ReturnDate = &t
			return nil
		}
	}
	return repository.ErrRentalNotFound
}

// openRentalCount reports how many rentals a user currently has out.
func (m *memStore) openRentalCount(userID uint64) int {
	n := 0
	for _, r := range m.rentals {
		if r.UserID == userID && r.ReturnDate == nil {
			n++
		}
	}
	return n
}

// paymentsOn counts payments dated exactly to the given month.
func (m *memStore) paymentsOn(month time.Time) int {
	n := 0
	for _, p := range m.payments {
		if p.PaymentDate.Equal(month) {
			n++
		}
	}
	return n
}

// usersCreatedBy counts users that exist as of the given month.
func (m *memStore) usersCreatedBy(month time.Time) int {
	n := 0
	for _, u := range m.users {
		if !u.CreatedAt.After(month) {
			n++
		}
	}
	return n
}
