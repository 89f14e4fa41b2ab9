package collection

import (
	"context"
	"fmt"
	"time"

	"collectapi/internal/coin"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PostgresRepo struct {
	db      *pgxpool.Pool
	timeout time.Duration
}

func NewPostgresRepo(db *pgxpool.Pool, timeout time.Duration) *PostgresRepo {
	return &PostgresRepo{db: db, timeout: timeout}
}

func (r *PostgresRepo) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, r.timeout)
}

const itemColumns = `
	i.id, i.user_id, i.coin_id, i.quantity, i.condition, i.purchase_price,
	i.purchase_date, i.notes, i.created_at, i.updated_at,
	c.id, c.catalog_number, c.name, c.description, c.country, c.category,
	c.year, c.denomination, c.composition, c.weight, c.diameter, c.thickness,
	c.edge, c.mintage, c.mint_mark, c.designer, c.series, c.rarity,
	c.obverse_image, c.reverse_image, c.estimated_value, c.created_at,
	c.updated_at`

func scanItem(row pgx.Row) (Item, error) {
	var item Item
	var c coin.Coin
	err := row.Scan(
		&item.ID, &item.UserID, &item.CoinID, &item.Quantity, &item.Condition,
		&item.PurchasePrice, &item.PurchaseDate, &item.Notes,
		&item.CreatedAt, &item.UpdatedAt,
		&c.ID, &c.CatalogNumber, &c.Name, &c.Description, &c.Country,
		&c.Category, &c.Year, &c.Denomination, &c.Composition, &c.Weight,
		&c.Diameter, &c.Thickness, &c.Edge, &c.Mintage, &c.MintMark,
		&c.Designer, &c.Series, &c.Rarity, &c.ObverseImage, &c.ReverseImage,
		&c.EstimatedValue, &c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		return Item{}, err
	}
	item.Coin = &c
	return item, nil
}

func (r *PostgresRepo) List(ctx context.Context, userID, limit, offset int) ([]Item, int, error) {
	timeoutCtx, cancel := r.withTimeout(ctx)
	defer cancel()

	var total int
	err := r.db.QueryRow(timeoutCtx,
		`SELECT COUNT(*) FROM user_coin_collection WHERE user_id = $1`, userID,
	).Scan(&total)
	if err != nil {
		return nil, 0, err
	}

	sql := fmt.Sprintf(`
		SELECT %s
		FROM user_coin_collection i
		JOIN coins c ON c.id = i.coin_id
		WHERE i.user_id = $1
		ORDER BY i.created_at DESC
		LIMIT $2 OFFSET $3`, itemColumns)

	rows, err := r.db.Query(timeoutCtx, sql, userID, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	items := []Item{}
	for rows.Next() {
		item, err := scanItem(rows)
		if err != nil {
			return nil, 0, err
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}
	return items, total, nil
}

func (r *PostgresRepo) Add(ctx context.Context, item *Item) error {
	const sql = `
		INSERT INTO user_coin_collection (user_id, coin_id, quantity, condition, purchase_price, purchase_date, notes)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, created_at, updated_at`

	timeoutCtx, cancel := r.withTimeout(ctx)
	defer cancel()

	return r.db.QueryRow(timeoutCtx, sql,
		item.UserID, item.CoinID, item.Quantity, item.Condition,
		item.PurchasePrice, item.PurchaseDate, item.Notes,
	).Scan(&item.ID, &item.CreatedAt, &item.UpdatedAt)
}

func (r *PostgresRepo) Update(ctx context.Context, item *Item) error {
	const sql = `
		UPDATE user_coin_collection
		SET quantity = $1, condition = $2, purchase_price = $3,
		    purchase_date = $4, notes = $5, updated_at = now()
		WHERE id = $6 AND user_id = $7`

	timeoutCtx, cancel := r.withTimeout(ctx)
	defer cancel()

	tag, err := r.db.Exec(timeoutCtx, sql,
		item.Quantity, item.Condition, item.PurchasePrice,
		item.PurchaseDate, item.Notes, item.ID, item.UserID,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *PostgresRepo) Remove(ctx context.Context, userID, id int) error {
	timeoutCtx, cancel := r.withTimeout(ctx)
	defer cancel()

	tag, err := r.db.Exec(timeoutCtx,
		`DELETE FROM user_coin_collection WHERE id = $1 AND user_id = $2`, id, userID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

var _ Repository = (*PostgresRepo)(nil)
