package marketplace

import (
	"context"
	"errors"
	"fmt"
	"time"

	"collectapi/internal/coin"
	"collectapi/internal/query"

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

const listingColumns = `
	l.id, l.coin_id, l.seller_id, u.name, l.condition, l.price, l.quantity,
	l.currency, l.description, l.images, l.status, l.created_at, l.updated_at,
	c.id, c.catalog_number, c.name, c.description, c.country, c.category,
	c.year, c.denomination, c.composition, c.weight, c.diameter, c.thickness,
	c.edge, c.mintage, c.mint_mark, c.designer, c.series, c.rarity,
	c.obverse_image, c.reverse_image, c.estimated_value, c.created_at,
	c.updated_at`

// buildFilter pins searches to active listings regardless of the other
// filters.
func buildFilter(q Query) *query.Builder {
	b := query.NewBuilder()
	b.Where("l.status", "=", StatusActive)
	if q.Search != "" {
		b.Search(q.Search, "c.name", "c.description", "c.catalog_number")
	}
	if q.Country != "" {
		b.Where("c.country", "=", q.Country)
	}
	if q.Category != "" {
		b.Where("c.category", "=", q.Category)
	}
	if q.Condition != "" {
		b.Where("l.condition", "=", q.Condition)
	}
	if q.Rarity != "" {
		b.Where("c.rarity", "=", q.Rarity)
	}
	if q.PriceMin != nil {
		b.Where("l.price", ">=", *q.PriceMin)
	}
	if q.PriceMax != nil {
		b.Where("l.price", "<=", *q.PriceMax)
	}
	return b
}

func scanListing(row pgx.Row) (Listing, error) {
	var l Listing
	var c coin.Coin
	err := row.Scan(
		&l.ID, &l.CoinID, &l.SellerID, &l.SellerName, &l.Condition, &l.Price,
		&l.Quantity, &l.Currency, &l.Description, &l.Images, &l.Status,
		&l.CreatedAt, &l.UpdatedAt,
		&c.ID, &c.CatalogNumber, &c.Name, &c.Description, &c.Country,
		&c.Category, &c.Year, &c.Denomination, &c.Composition, &c.Weight,
		&c.Diameter, &c.Thickness, &c.Edge, &c.Mintage, &c.MintMark,
		&c.Designer, &c.Series, &c.Rarity, &c.ObverseImage, &c.ReverseImage,
		&c.EstimatedValue, &c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		return Listing{}, err
	}
	l.Coin = &c
	return l, nil
}

func (r *PostgresRepo) Search(ctx context.Context, q Query) ([]Listing, int, error) {
	b := buildFilter(q)
	where := b.WhereClause()

	countSQL := fmt.Sprintf(`
		SELECT COUNT(*)
		FROM marketplace_listings l
		JOIN coins c ON c.id = l.coin_id
		%s`, where)

	var total int
	timeoutCtx, cancel := r.withTimeout(ctx)
	defer cancel()
	if err := r.db.QueryRow(timeoutCtx, countSQL, b.Args()...).Scan(&total); err != nil {
		return nil, 0, err
	}

	dataSQL := fmt.Sprintf(`
		SELECT %s
		FROM marketplace_listings l
		JOIN coins c ON c.id = l.coin_id
		JOIN users u ON u.id = l.seller_id
		%s
		ORDER BY l.created_at DESC
		LIMIT $%d OFFSET $%d`,
		listingColumns, where, b.NumArgs()+1, b.NumArgs()+2)

	rows, err := r.db.Query(timeoutCtx, dataSQL, b.ArgsWith(q.Limit, q.Offset)...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	listings := []Listing{}
	for rows.Next() {
		l, err := scanListing(rows)
		if err != nil {
			return nil, 0, err
		}
		listings = append(listings, l)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}
	return listings, total, nil
}

func (r *PostgresRepo) GetByID(ctx context.Context, id int) (Listing, error) {
	sql := fmt.Sprintf(`
		SELECT %s
		FROM marketplace_listings l
		JOIN coins c ON c.id = l.coin_id
		JOIN users u ON u.id = l.seller_id
		WHERE l.id = $1`, listingColumns)

	timeoutCtx, cancel := r.withTimeout(ctx)
	defer cancel()

	l, err := scanListing(r.db.QueryRow(timeoutCtx, sql, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return Listing{}, ErrNotFound
		}
		return Listing{}, err
	}
	return l, nil
}

func (r *PostgresRepo) Create(ctx context.Context, l *Listing) error {
	const sql = `
		INSERT INTO marketplace_listings (coin_id, seller_id, condition, price, quantity, currency, description, images, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id, created_at, updated_at`

	timeoutCtx, cancel := r.withTimeout(ctx)
	defer cancel()

	return r.db.QueryRow(timeoutCtx, sql,
		l.CoinID, l.SellerID, l.Condition, l.Price, l.Quantity, l.Currency,
		l.Description, l.Images, l.Status,
	).Scan(&l.ID, &l.CreatedAt, &l.UpdatedAt)
}

func (r *PostgresRepo) UpdateStatus(ctx context.Context, id, sellerID int, status string) error {
	const sql = `
		UPDATE marketplace_listings
		SET status = $1, updated_at = now()
		WHERE id = $2 AND seller_id = $3`

	timeoutCtx, cancel := r.withTimeout(ctx)
	defer cancel()

	tag, err := r.db.Exec(timeoutCtx, sql, status, id, sellerID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() > 0 {
		return nil
	}

	// Distinguish a missing listing from someone else's listing.
	var exists bool
	err = r.db.QueryRow(timeoutCtx,
		`SELECT EXISTS (SELECT 1 FROM marketplace_listings WHERE id = $1)`, id,
	).Scan(&exists)
	if err != nil {
		return err
	}
	if exists {
		return ErrForbidden
	}
	return ErrNotFound
}

var _ Repository = (*PostgresRepo)(nil)
