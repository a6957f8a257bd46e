package repository

import (
	"cinema-booking/internal/model"
	apperrors "cinema-booking/pkg/app_errors"
	"context"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type ShowtimeRepository interface {
	FindByID(ctx context.Context, id int) (*model.ShowtimeDetail, error)
	FindBySchedule(ctx context.Context, movieTitle, hallName, cinemaName string, startsAt time.Time) (*model.ShowtimeDetail, error)
}

type ShowtimeRepositoryImpl struct {
	pool *pgxpool.Pool
}

func NewShowtimeRepository(pool *pgxpool.Pool) ShowtimeRepository {
	return &ShowtimeRepositoryImpl{
		pool: pool,
	}
}

// 場次一律 join 出電影、影廳、影城資訊，訂票流程不做二次補查
const showtimeDetailColumns = `
	s.id, s.movie_id, s.hall_id, s.starts_at, s.ends_at, s.base_price,
	s.created_at, s.updated_at,
	m.title AS movie_title,
	h.name AS hall_name,
	c.name AS cinema_name,
	h.seat_capacity AS hall_capacity,
	h.is_special AS hall_special
`

const showtimeDetailJoins = `
	FROM showtimes s
	JOIN movies m ON m.id = s.movie_id
	JOIN halls h ON h.id = s.hall_id
	JOIN cinemas c ON c.id = h.cinema_id
`

func scanShowtimeDetail(row pgx.Row) (*model.ShowtimeDetail, error) {
	var detail model.ShowtimeDetail
	err := row.Scan(
		&detail.ID,
		&detail.MovieID,
		&detail.HallID,
		&detail.StartsAt,
		&detail.EndsAt,
		&detail.BasePrice,
		&detail.CreatedAt,
		&detail.UpdatedAt,
		&detail.MovieTitle,
		&detail.HallName,
		&detail.CinemaName,
		&detail.HallCapacity,
		&detail.HallSpecial,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, apperrors.ErrShowtimeNotFound
		}
		return nil, err
	}
	return &detail, nil
}

func (r *ShowtimeRepositoryImpl) FindByID(ctx context.Context, id int) (*model.ShowtimeDetail, error) {
	query := `SELECT ` + showtimeDetailColumns + showtimeDetailJoins + `WHERE s.id = $1`

	return scanShowtimeDetail(r.pool.QueryRow(ctx, query, id))
}

func (r *ShowtimeRepositoryImpl) FindBySchedule(ctx context.Context, movieTitle, hallName, cinemaName string, startsAt time.Time) (*model.ShowtimeDetail, error) {
	query := `SELECT ` + showtimeDetailColumns + showtimeDetailJoins + `
		WHERE m.title = $1 AND h.name = $2 AND c.name = $3 AND s.starts_at = $4
	`

	return scanShowtimeDetail(r.pool.QueryRow(ctx, query, movieTitle, hallName, cinemaName, startsAt))
}
