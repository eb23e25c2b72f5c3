package provider

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/carelink/carelink/internal/platform/query"
)

const doctorCols = `id, name, specialty, experience, location, price, rating,
	review_count, available_today, features, image, created_at, updated_at`

type doctorRepoPG struct{ pool *pgxpool.Pool }

func NewDoctorRepoPG(pool *pgxpool.Pool) DoctorRepository {
	return &doctorRepoPG{pool: pool}
}

func scanDoctor(row pgx.Row) (*Doctor, error) {
	var d Doctor
	err := row.Scan(&d.ID, &d.Name, &d.Specialty, &d.Experience, &d.Location,
		&d.Price, &d.Rating, &d.ReviewCount, &d.AvailableToday, &d.Features,
		&d.Image, &d.CreatedAt, &d.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	return &d, err
}

// doctorFilters builds the WHERE clause for a doctor search. Doctors match
// specialty by substring, unlike specialists.
func doctorFilters(f Filters) *query.Builder {
	return query.NewBuilder().
		Contains("name", f.Search).
		Contains("location", f.Location).
		Contains("specialty", f.Specialty)
}

func (r *doctorRepoPG) Search(ctx context.Context, f Filters, limit, offset int) ([]*Doctor, int, error) {
	b := doctorFilters(f)
	where, args := b.Clause(1)

	var total int
	if err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM doctors`+where, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	idx := b.NextIdx(1)
	sql := `SELECT ` + doctorCols + ` FROM doctors` + where +
		fmt.Sprintf(` ORDER BY name LIMIT $%d OFFSET $%d`, idx, idx+1)
	rows, err := r.pool.Query(ctx, sql, append(args, limit, offset)...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var items []*Doctor
	for rows.Next() {
		d, err := scanDoctor(rows)
		if err != nil {
			return nil, 0, err
		}
		items = append(items, d)
	}
	return items, total, rows.Err()
}

func (r *doctorRepoPG) Featured(ctx context.Context, limit int) ([]*Doctor, error) {
	rows, err := r.pool.Query(ctx, `SELECT `+doctorCols+` FROM doctors
		ORDER BY rating DESC NULLS LAST, review_count DESC LIMIT $1`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []*Doctor
	for rows.Next() {
		d, err := scanDoctor(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, d)
	}
	return items, rows.Err()
}

func (r *doctorRepoPG) GetByID(ctx context.Context, id uuid.UUID) (*Doctor, error) {
	return scanDoctor(r.pool.QueryRow(ctx, `SELECT `+doctorCols+` FROM doctors WHERE id = $1`, id))
}

func (r *doctorRepoPG) FindByLocation(ctx context.Context, city string, limit int) ([]*Doctor, error) {
	b := query.NewBuilder().Contains("location", city)
	where, args := b.Clause(1)
	sql := `SELECT ` + doctorCols + ` FROM doctors` + where +
		fmt.Sprintf(` ORDER BY name LIMIT $%d`, b.NextIdx(1))
	rows, err := r.pool.Query(ctx, sql, append(args, limit)...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []*Doctor
	for rows.Next() {
		d, err := scanDoctor(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, d)
	}
	return items, rows.Err()
}

const specialistCols = doctorCols

type specialistRepoPG struct{ pool *pgxpool.Pool }

func NewSpecialistRepoPG(pool *pgxpool.Pool) SpecialistRepository {
	return &specialistRepoPG{pool: pool}
}

func scanSpecialist(row pgx.Row) (*Specialist, error) {
	var s Specialist
	err := row.Scan(&s.ID, &s.Name, &s.Specialty, &s.Experience, &s.Location,
		&s.Price, &s.Rating, &s.ReviewCount, &s.AvailableToday, &s.Features,
		&s.Image, &s.CreatedAt, &s.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	return &s, err
}

func (r *specialistRepoPG) Search(ctx context.Context, f Filters, limit, offset int) ([]*Specialist, int, error) {
	// Specialists match specialty exactly; "all" disables the filter.
	b := query.NewBuilder().
		Contains("name", f.Search).
		Contains("location", f.Location).
		Match("specialty", f.Specialty)
	where, args := b.Clause(1)

	var total int
	if err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM specialists`+where, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	idx := b.NextIdx(1)
	sql := `SELECT ` + specialistCols + ` FROM specialists` + where +
		fmt.Sprintf(` ORDER BY name LIMIT $%d OFFSET $%d`, idx, idx+1)
	rows, err := r.pool.Query(ctx, sql, append(args, limit, offset)...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var items []*Specialist
	for rows.Next() {
		s, err := scanSpecialist(rows)
		if err != nil {
			return nil, 0, err
		}
		items = append(items, s)
	}
	return items, total, rows.Err()
}

func (r *specialistRepoPG) GetByID(ctx context.Context, id uuid.UUID) (*Specialist, error) {
	return scanSpecialist(r.pool.QueryRow(ctx, `SELECT `+specialistCols+` FROM specialists WHERE id = $1`, id))
}

func (r *specialistRepoPG) Specialties(ctx context.Context) ([]string, error) {
	rows, err := r.pool.Query(ctx, `SELECT DISTINCT specialty FROM specialists ORDER BY specialty`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var specialties []string
	for rows.Next() {
		var s string
		if err := rows.Scan(&s); err != nil {
			return nil, err
		}
		specialties = append(specialties, s)
	}
	return specialties, rows.Err()
}
