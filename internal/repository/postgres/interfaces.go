package postgres

import (
	"auxite/models"
)

//go:generate mockery --case=snake --name=TransactionRepo

type TransactionRepo interface {
	Store(m *models.Transaction) error
	GetByOrderID(orderID string) ([]models.Transaction, error)
	GetByOwner(owner string, limit int) ([]models.Transaction, error)
}
