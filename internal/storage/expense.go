// Package storage persists expenses in the database.
package storage

import (
	"github.com/expense-manager/backend/internal/models"
	"gorm.io/gorm"
)

// ExpenseRepository stores expenses with gorm. It implements
// store.Repository.
type ExpenseRepository struct {
	db *gorm.DB
}

// NewExpenseRepository returns a repository using the given database.
func NewExpenseRepository(db *gorm.DB) *ExpenseRepository {
	return &ExpenseRepository{db: db}
}

// All returns every persisted expense, ordered by ID ascending. Since
// IDs increase monotonically, this is the insertion order.
func (r *ExpenseRepository) All() ([]models.Expense, error) {
	var expenses []models.Expense
	err := r.db.Order("id ASC").Find(&expenses).Error
	return expenses, err
}

// Create inserts the expense with the ID set on it.
func (r *ExpenseRepository) Create(expense *models.Expense) error {
	return r.db.Create(expense).Error
}

// Update writes all fields of an existing expense.
func (r *ExpenseRepository) Update(expense *models.Expense) error {
	return r.db.Save(expense).Error
}

// Delete removes the expense with the given ID. Deleting an unknown ID
// is not an error, the store checks existence itself.
func (r *ExpenseRepository) Delete(id uint64) error {
	return r.db.Delete(&models.Expense{}, id).Error
}
