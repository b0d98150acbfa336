package postgres

import (
	"github.com/jmoiron/sqlx"

	"auxite/models"
)

type TransactionRepository struct {
	conn *sqlx.DB
}

func NewTransactionRepository(conn *sqlx.DB) TransactionRepo {
	return &TransactionRepository{
		conn: conn,
	}
}

func (r *TransactionRepository) Store(m *models.Transaction) error {
	if _, err := r.conn.NamedExec("INSERT INTO transactions (id,order_id,owner,kind,asset,quantity,settlement_asset,amount,execution_price,settlement_ref,created_at) VALUES (:id,:order_id,:owner,:kind,:asset,:quantity,:settlement_asset,:amount,:execution_price,:settlement_ref,:created_at)", m); err != nil {
		return err
	}

	return nil
}

func (r *TransactionRepository) GetByOrderID(orderID string) ([]models.Transaction, error) {
	var out []models.Transaction

	if err := r.conn.Select(&out, "SELECT * FROM transactions WHERE order_id = $1 ORDER BY created_at DESC;", orderID); err != nil {
		return nil, err
	}

	return out, nil
}

func (r *TransactionRepository) GetByOwner(owner string, limit int) ([]models.Transaction, error) {
	var out []models.Transaction

	if err := r.conn.Select(&out, "SELECT * FROM transactions WHERE owner = $1 ORDER BY created_at DESC LIMIT $2;", owner, limit); err != nil {
		return nil, err
	}

	return out, nil
}
