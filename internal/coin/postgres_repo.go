package coin

import (
	"context"
	"errors"
	"fmt"
	"time"

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

const coinColumns = `
	id, catalog_number, name, description, country, category, year,
	denomination, composition, weight, diameter, thickness, edge, mintage,
	mint_mark, designer, series, rarity, obverse_image, reverse_image,
	estimated_value, created_at, updated_at`

func buildFilter(q Query) *query.Builder {
	b := query.NewBuilder()
	if q.Search != "" {
		b.Search(q.Search, "name", "description", "catalog_number")
	}
	if q.Country != "" {
		b.Where("country", "=", q.Country)
	}
	if q.Category != "" {
		b.Where("category", "=", q.Category)
	}
	if q.Rarity != "" {
		b.Where("rarity", "=", q.Rarity)
	}
	if q.YearFrom != nil {
		b.Where("year", ">=", *q.YearFrom)
	}
	if q.YearTo != nil {
		b.Where("year", "<=", *q.YearTo)
	}
	if q.PriceMin != nil {
		b.Where("estimated_value", ">=", *q.PriceMin)
	}
	if q.PriceMax != nil {
		b.Where("estimated_value", "<=", *q.PriceMax)
	}
	return b
}

func (r *PostgresRepo) List(ctx context.Context, q Query) ([]Coin, int, error) {
	b := buildFilter(q)
	where := b.WhereClause()

	countSQL := fmt.Sprintf("SELECT COUNT(*) FROM coins %s", where)
	var total int
	timeoutCtx, cancel := r.withTimeout(ctx)
	defer cancel()
	if err := r.db.QueryRow(timeoutCtx, countSQL, b.Args()...).Scan(&total); err != nil {
		return nil, 0, err
	}

	dataSQL := fmt.Sprintf(`
		SELECT %s
		FROM coins
		%s
		ORDER BY created_at DESC, name
		LIMIT $%d OFFSET $%d`,
		coinColumns, where, b.NumArgs()+1, b.NumArgs()+2)

	timeoutCtx2, cancel2 := r.withTimeout(ctx)
	defer cancel2()
	rows, err := r.db.Query(timeoutCtx2, dataSQL, b.ArgsWith(q.Limit, q.Offset)...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var out []Coin
	for rows.Next() {
		c, err := scanCoin(rows)
		if err != nil {
			return nil, 0, err
		}
		out = append(out, c)
	}
	return out, total, rows.Err()
}

func scanCoin(row pgx.Row) (Coin, error) {
	var c Coin
	err := row.Scan(
		&c.ID, &c.CatalogNumber, &c.Name, &c.Description, &c.Country, &c.Category, &c.Year,
		&c.Denomination, &c.Composition, &c.Weight, &c.Diameter, &c.Thickness, &c.Edge, &c.Mintage,
		&c.MintMark, &c.Designer, &c.Series, &c.Rarity, &c.ObverseImage, &c.ReverseImage,
		&c.EstimatedValue, &c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		return Coin{}, err
	}
	return c, nil
}

func (r *PostgresRepo) GetByID(ctx context.Context, id int) (Coin, error) {
	sql := fmt.Sprintf(`SELECT %s FROM coins WHERE id = $1 LIMIT 1`, coinColumns)

	timeoutCtx, cancel := r.withTimeout(ctx)
	defer cancel()
	c, err := scanCoin(r.db.QueryRow(timeoutCtx, sql, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return Coin{}, ErrNotFound
		}
		return Coin{}, err
	}
	return c, nil
}

func (r *PostgresRepo) Create(ctx context.Context, c *Coin) error {
	const sql = `
		INSERT INTO coins (catalog_number, name, description, country, category, year,
		                   denomination, composition, weight, diameter, thickness, edge,
		                   mintage, mint_mark, designer, series, rarity, obverse_image,
		                   reverse_image, estimated_value, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12,
		        $13, $14, $15, $16, $17, $18, $19, $20, NOW(), NOW())
		RETURNING id, created_at, updated_at`

	timeoutCtx, cancel := r.withTimeout(ctx)
	defer cancel()
	return r.db.QueryRow(timeoutCtx, sql,
		c.CatalogNumber, c.Name, c.Description, c.Country, c.Category, c.Year,
		c.Denomination, c.Composition, c.Weight, c.Diameter, c.Thickness, c.Edge,
		c.Mintage, c.MintMark, c.Designer, c.Series, c.Rarity, c.ObverseImage,
		c.ReverseImage, c.EstimatedValue,
	).Scan(&c.ID, &c.CreatedAt, &c.UpdatedAt)
}

func (r *PostgresRepo) Update(ctx context.Context, c *Coin) error {
	const sql = `
		UPDATE coins SET
			catalog_number = $2, name = $3, description = $4, country = $5,
			category = $6, year = $7, denomination = $8, composition = $9,
			weight = $10, diameter = $11, thickness = $12, edge = $13,
			mintage = $14, mint_mark = $15, designer = $16, series = $17,
			rarity = $18, obverse_image = $19, reverse_image = $20,
			estimated_value = $21, updated_at = NOW()
		WHERE id = $1
		RETURNING updated_at`

	timeoutCtx, cancel := r.withTimeout(ctx)
	defer cancel()
	err := r.db.QueryRow(timeoutCtx, sql,
		c.ID, c.CatalogNumber, c.Name, c.Description, c.Country,
		c.Category, c.Year, c.Denomination, c.Composition,
		c.Weight, c.Diameter, c.Thickness, c.Edge,
		c.Mintage, c.MintMark, c.Designer, c.Series,
		c.Rarity, c.ObverseImage, c.ReverseImage, c.EstimatedValue,
	).Scan(&c.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return ErrNotFound
	}
	return err
}

func (r *PostgresRepo) Delete(ctx context.Context, id int) error {
	timeoutCtx, cancel := r.withTimeout(ctx)
	defer cancel()
	tag, err := r.db.Exec(timeoutCtx, `DELETE FROM coins WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *PostgresRepo) ListCategories(ctx context.Context) ([]string, error) {
	const sql = `SELECT DISTINCT category FROM coins ORDER BY category`

	timeoutCtx, cancel := r.withTimeout(ctx)
	defer cancel()
	rows, err := r.db.Query(timeoutCtx, sql)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []string
	for rows.Next() {
		var c string
		if err := rows.Scan(&c); err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

var _ Repository = (*PostgresRepo)(nil)
