package purchase

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const purchaseCols = `id, user_id, medicine_id, medicine_name, price, idempotency_key, created_at`

type repoPG struct{ pool *pgxpool.Pool }

func NewRepoPG(pool *pgxpool.Pool) Repository {
	return &repoPG{pool: pool}
}

func scanPurchase(row pgx.Row) (*Purchase, error) {
	var p Purchase
	err := row.Scan(&p.ID, &p.UserID, &p.MedicineID, &p.MedicineName, &p.Price,
		&p.IdempotencyKey, &p.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	return &p, err
}

func (r *repoPG) Create(ctx context.Context, p *Purchase) error {
	return r.pool.QueryRow(ctx, `
		INSERT INTO purchases (user_id, medicine_id, medicine_name, price, idempotency_key)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at`,
		p.UserID, p.MedicineID, p.MedicineName, p.Price, p.IdempotencyKey,
	).Scan(&p.ID, &p.CreatedAt)
}

func (r *repoPG) GetByIdempotencyKey(ctx context.Context, userID, key string) (*Purchase, error) {
	return scanPurchase(r.pool.QueryRow(ctx,
		`SELECT `+purchaseCols+` FROM purchases WHERE user_id = $1 AND idempotency_key = $2`,
		userID, key))
}

func (r *repoPG) ListByUser(ctx context.Context, userID string, limit, offset int) ([]*Purchase, int, error) {
	var total int
	if err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM purchases WHERE user_id = $1`, userID).Scan(&total); err != nil {
		return nil, 0, err
	}

	rows, err := r.pool.Query(ctx, `
		SELECT `+purchaseCols+` FROM purchases
		WHERE user_id = $1
		ORDER BY created_at DESC
		LIMIT $2 OFFSET $3`, userID, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var items []*Purchase
	for rows.Next() {
		p, err := scanPurchase(rows)
		if err != nil {
			return nil, 0, err
		}
		items = append(items, p)
	}
	return items, total, rows.Err()
}
