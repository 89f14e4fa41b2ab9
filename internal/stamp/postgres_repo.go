package stamp

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

const stampColumns = `
	s.id, s.sacc_number, s.title, s.description, s.issue_date, s.face_value,
	s.category_id, sc.name, sc.description, s.series_name, s.designer,
	s.printer, s.perforation, s.watermark, s.image_url, s.rarity_level,
	s.created_at, s.updated_at`

// buildFilter compiles a Query into WHERE predicates. The same builder feeds
// both the count query and the data query so their filters cannot drift.
func buildFilter(q Query) *query.Builder {
	b := query.NewBuilder()
	if q.Search != "" {
		b.Search(q.Search, "s.title", "s.description", "s.sacc_number")
	}
	if q.Category != nil {
		b.Where("s.category_id", "=", *q.Category)
	}
	if q.Rarity != "" {
		b.Where("s.rarity_level", "=", q.Rarity)
	}
	if q.YearFrom != nil {
		b.Where("EXTRACT(YEAR FROM s.issue_date)", ">=", *q.YearFrom)
	}
	if q.YearTo != nil {
		b.Where("EXTRACT(YEAR FROM s.issue_date)", "<=", *q.YearTo)
	}
	return b
}

func (r *PostgresRepo) List(ctx context.Context, q Query) ([]Stamp, int, error) {
	b := buildFilter(q)
	where := b.WhereClause()

	countSQL := fmt.Sprintf("SELECT COUNT(*) FROM stamps s %s", where)
	var total int
	timeoutCtx, cancel := r.withTimeout(ctx)
	defer cancel()
	if err := r.db.QueryRow(timeoutCtx, countSQL, b.Args()...).Scan(&total); err != nil {
		return nil, 0, err
	}

	dataSQL := fmt.Sprintf(`
		SELECT %s
		FROM stamps s
		LEFT JOIN stamp_categories sc ON s.category_id = sc.id
		%s
		ORDER BY s.issue_date DESC NULLS LAST, s.title
		LIMIT $%d OFFSET $%d`,
		stampColumns, where, b.NumArgs()+1, b.NumArgs()+2)

	timeoutCtx2, cancel2 := r.withTimeout(ctx)
	defer cancel2()
	rows, err := r.db.Query(timeoutCtx2, dataSQL, b.ArgsWith(q.Limit, q.Offset)...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var out []Stamp
	for rows.Next() {
		st, err := scanStamp(rows)
		if err != nil {
			return nil, 0, err
		}
		out = append(out, st)
	}
	return out, total, rows.Err()
}

func scanStamp(row pgx.Row) (Stamp, error) {
	var st Stamp
	var catName, catDescription *string
	err := row.Scan(
		&st.ID, &st.SACCNumber, &st.Title, &st.Description, &st.IssueDate, &st.FaceValue,
		&st.CategoryID, &catName, &catDescription, &st.SeriesName, &st.Designer,
		&st.Printer, &st.Perforation, &st.Watermark, &st.ImageURL, &st.RarityLevel,
		&st.CreatedAt, &st.UpdatedAt,
	)
	if err != nil {
		return Stamp{}, err
	}
	if st.CategoryID != nil && catName != nil {
		st.Category = &Category{ID: *st.CategoryID, Name: *catName, Description: catDescription}
	}
	return st, nil
}

func (r *PostgresRepo) GetByID(ctx context.Context, id int) (Stamp, error) {
	sql := fmt.Sprintf(`
		SELECT %s
		FROM stamps s
		LEFT JOIN stamp_categories sc ON s.category_id = sc.id
		WHERE s.id = $1
		LIMIT 1`, stampColumns)

	timeoutCtx, cancel := r.withTimeout(ctx)
	defer cancel()
	st, err := scanStamp(r.db.QueryRow(timeoutCtx, sql, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return Stamp{}, ErrNotFound
		}
		return Stamp{}, err
	}
	return st, nil
}

func (r *PostgresRepo) Create(ctx context.Context, st *Stamp) error {
	const sql = `
		INSERT INTO stamps (sacc_number, title, description, issue_date, face_value,
		                    category_id, series_name, designer, printer, perforation,
		                    watermark, image_url, rarity_level, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, NOW(), NOW())
		RETURNING id, created_at, updated_at`

	timeoutCtx, cancel := r.withTimeout(ctx)
	defer cancel()
	return r.db.QueryRow(timeoutCtx, sql,
		st.SACCNumber, st.Title, st.Description, st.IssueDate, st.FaceValue,
		st.CategoryID, st.SeriesName, st.Designer, st.Printer, st.Perforation,
		st.Watermark, st.ImageURL, st.RarityLevel,
	).Scan(&st.ID, &st.CreatedAt, &st.UpdatedAt)
}

func (r *PostgresRepo) Update(ctx context.Context, st *Stamp) error {
	const sql = `
		UPDATE stamps SET
			sacc_number = $2, title = $3, description = $4, issue_date = $5,
			face_value = $6, category_id = $7, series_name = $8, designer = $9,
			printer = $10, perforation = $11, watermark = $12, image_url = $13,
			rarity_level = $14, updated_at = NOW()
		WHERE id = $1
		RETURNING updated_at`

	timeoutCtx, cancel := r.withTimeout(ctx)
	defer cancel()
	err := r.db.QueryRow(timeoutCtx, sql,
		st.ID, st.SACCNumber, st.Title, st.Description, st.IssueDate,
		st.FaceValue, st.CategoryID, st.SeriesName, st.Designer,
		st.Printer, st.Perforation, st.Watermark, st.ImageURL, st.RarityLevel,
	).Scan(&st.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return ErrNotFound
	}
	return err
}

func (r *PostgresRepo) Delete(ctx context.Context, id int) error {
	timeoutCtx, cancel := r.withTimeout(ctx)
	defer cancel()
	tag, err := r.db.Exec(timeoutCtx, `DELETE FROM stamps WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *PostgresRepo) ListCategories(ctx context.Context) ([]Category, error) {
	const sql = `SELECT id, name, description FROM stamp_categories ORDER BY name`

	timeoutCtx, cancel := r.withTimeout(ctx)
	defer cancel()
	rows, err := r.db.Query(timeoutCtx, sql)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Category
	for rows.Next() {
		var c Category
		if err := rows.Scan(&c.ID, &c.Name, &c.Description); err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

var _ Repository = (*PostgresRepo)(nil)
