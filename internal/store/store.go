// Package store implements the expense collection.
//
// The collection is an ordered in-memory sequence of expenses. All
// mutations are serialized through a single lock, reads work on
// snapshots so that aggregations never observe a mutation mid-traversal.
// Records can optionally be written through to a Repository so that the
// collection survives restarts.
package store

import (
	"sync"
	"time"

	"github.com/expense-manager/backend/internal/models"
	"github.com/shopspring/decimal"
)

// Repository persists expenses on behalf of the store.
type Repository interface {
	// All returns every persisted expense, ordered by ID ascending.
	All() ([]models.Expense, error)

	// Create inserts an expense with the ID set on it.
	Create(expense *models.Expense) error

	// Update writes all fields of an existing expense.
	Update(expense *models.Expense) error

	// Delete removes the expense with the given ID.
	Delete(id uint64) error
}

// Store holds the expense collection.
type Store struct {
	mu       sync.RWMutex
	expenses []models.Expense
	nextID   uint64
	repo     Repository

	// Now returns the current time. It is used for expenses without a
	// date and can be replaced in tests.
	Now func() time.Time
}

// New returns a store backed by the repository. Persisted expenses are
// loaded into the collection and the ID counter continues after the
// highest ID seen so that IDs are never reused.
func New(repo Repository) (*Store, error) {
	s := &Store{
		repo:   repo,
		nextID: 1,
		Now:    time.Now,
	}

	if repo == nil {
		return s, nil
	}

	expenses, err := repo.All()
	if err != nil {
		return nil, err
	}

	s.expenses = expenses
	for _, expense := range expenses {
		if expense.ID >= s.nextID {
			s.nextID = expense.ID + 1
		}
	}

	return s, nil
}

// Add validates the expense, assigns the next ID and appends it to the
// collection. Invalid expenses are rejected with ErrExpenseInvalid and
// never enter the collection, not even partially.
func (s *Store) Add(expense *models.Expense) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if expense.Date.IsZero() {
		expense.Date = s.Now().In(time.UTC)
	}

	// Normalize the same way the database would
	_ = expense.BeforeSave(nil)

	if !expense.IsValid() {
		return models.ErrExpenseInvalid
	}

	expense.ID = s.nextID
	if s.repo != nil {
		if err := s.repo.Create(expense); err != nil {
			expense.ID = 0
			return err
		}
	}

	s.nextID++
	s.expenses = append(s.expenses, *expense)
	return nil
}

// Get returns the expense with the given ID and whether it exists.
func (s *Store) Get(id uint64) (models.Expense, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	i, ok := s.index(id)
	if !ok {
		return models.Expense{}, false
	}

	return s.expenses[i], true
}

// Remove deletes the expense with the given ID and reports whether it
// existed. Its ID is not handed out again.
func (s *Store) Remove(id uint64) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i, ok := s.index(id)
	if !ok {
		return false, nil
	}

	if s.repo != nil {
		if err := s.repo.Delete(id); err != nil {
			return false, err
		}
	}

	s.expenses = append(s.expenses[:i], s.expenses[i+1:]...)
	return true, nil
}

// Update applies the set fields of the update to the expense with the
// given ID and reports whether it exists. The updated expense is
// validated before it is committed, updates resulting in an invalid
// expense are rejected with ErrExpenseInvalid.
func (s *Store) Update(id uint64, update Update) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i, ok := s.index(id)
	if !ok {
		return false, nil
	}

	candidate := s.expenses[i]
	update.apply(&candidate)
	_ = candidate.BeforeSave(nil)

	if !candidate.IsValid() {
		return true, models.ErrExpenseInvalid
	}

	if err := s.persist(&candidate); err != nil {
		return true, err
	}

	s.expenses[i] = candidate
	return true, nil
}

// All returns a snapshot of the collection in insertion order.
func (s *Store) All() []models.Expense {
	s.mu.RLock()
	defer s.mu.RUnlock()

	snapshot := make([]models.Expense, len(s.expenses))
	copy(snapshot, s.expenses)
	return snapshot
}

// Count returns the number of expenses in the collection.
func (s *Store) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return len(s.expenses)
}

// RecategorizeAll applies the category mapping to every expense and
// returns the number of expenses that changed.
func (s *Store) RecategorizeAll(mapping models.CategoryMapping) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var changed int
	for i := range s.expenses {
		candidate := s.expenses[i]
		if !candidate.Recategorize(mapping) {
			continue
		}

		if err := s.persist(&candidate); err != nil {
			return changed, err
		}

		s.expenses[i] = candidate
		changed++
	}

	return changed, nil
}

// DiscountCategory applies a percentage discount to all expenses of the
// category and returns the number of expenses that changed. Percentages
// outside the open interval (0, 100) change nothing.
func (s *Store) DiscountCategory(category string, percent decimal.Decimal) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var changed int
	for i := range s.expenses {
		if !s.expenses[i].MatchesCategory(category) {
			continue
		}

		candidate := s.expenses[i]
		if !candidate.ApplyDiscount(percent) {
			continue
		}

		if err := s.persist(&candidate); err != nil {
			return changed, err
		}

		s.expenses[i] = candidate
		changed++
	}

	return changed, nil
}

// index returns the position of the expense with the given ID.
// The caller must hold the lock.
func (s *Store) index(id uint64) (int, bool) {
	for i := range s.expenses {
		if s.expenses[i].ID == id {
			return i, true
		}
	}

	return 0, false
}

func (s *Store) persist(expense *models.Expense) error {
	if s.repo == nil {
		return nil
	}

	return s.repo.Update(expense)
}
