package repository

import (
	"cinema-booking/internal/model"
	apperrors "cinema-booking/pkg/app_errors"
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// 活躍票券 (RESERVED/PAID) 的座位唯一性由這個 partial unique index 保證，
// 程式層的預檢只是提早給出友善錯誤
const seatUniqueConstraint = "uq_tickets_active_seat"

type TicketRepository interface {
	FindByID(ctx context.Context, id int) (*model.Ticket, error)
	FindByPaymentID(ctx context.Context, paymentID int) ([]*model.Ticket, error)
	ListActiveSeats(ctx context.Context, showtimeID int) ([]model.SeatRef, error)

	// Transaction methods
	CountActive(ctx context.Context, tx pgx.Tx, showtimeID int) (int, error)
	SeatTaken(ctx context.Context, tx pgx.Tx, showtimeID int, seat model.SeatRef) (bool, error)
	CreateBatch(ctx context.Context, tx pgx.Tx, tickets []*model.Ticket) ([]*model.Ticket, error)
}

type TicketRepositoryImpl struct {
	pool *pgxpool.Pool
}

func NewTicketRepository(pool *pgxpool.Pool) TicketRepository {
	return &TicketRepositoryImpl{
		pool: pool,
	}
}

const ticketColumns = `
	id, showtime_id, user_id, payment_id, seat_letter, seat_number,
	price, status, created_at, updated_at
`

func scanTicket(row pgx.Row) (*model.Ticket, error) {
	var ticket model.Ticket
	err := row.Scan(
		&ticket.ID,
		&ticket.ShowtimeID,
		&ticket.UserID,
		&ticket.PaymentID,
		&ticket.SeatLetter,
		&ticket.SeatNumber,
		&ticket.Price,
		&ticket.Status,
		&ticket.CreatedAt,
		&ticket.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &ticket, nil
}

func (r *TicketRepositoryImpl) FindByID(ctx context.Context, id int) (*model.Ticket, error) {
	query := `SELECT ` + ticketColumns + ` FROM tickets WHERE id = $1`

	ticket, err := scanTicket(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, apperrors.ErrInvalidInput
		}
		return nil, err
	}
	return ticket, nil
}

func (r *TicketRepositoryImpl) FindByPaymentID(ctx context.Context, paymentID int) ([]*model.Ticket, error) {
	query := `
		SELECT ` + ticketColumns + `
		FROM tickets
		WHERE payment_id = $1
		ORDER BY seat_letter, seat_number
	`

	rows, err := r.pool.Query(ctx, query, paymentID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	tickets := make([]*model.Ticket, 0)
	for rows.Next() {
		ticket, err := scanTicket(rows)
		if err != nil {
			return nil, err
		}
		tickets = append(tickets, ticket)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return tickets, nil
}

func (r *TicketRepositoryImpl) ListActiveSeats(ctx context.Context, showtimeID int) ([]model.SeatRef, error) {
	query := `
		SELECT seat_letter, seat_number
		FROM tickets
		WHERE showtime_id = $1 AND status IN ('RESERVED', 'PAID')
		ORDER BY seat_letter, seat_number
	`

	rows, err := r.pool.Query(ctx, query, showtimeID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	seats := make([]model.SeatRef, 0)
	for rows.Next() {
		var seat model.SeatRef
		if err := rows.Scan(&seat.SeatLetter, &seat.SeatNumber); err != nil {
			return nil, err
		}
		seats = append(seats, seat)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return seats, nil
}

func (r *TicketRepositoryImpl) CountActive(ctx context.Context, tx pgx.Tx, showtimeID int) (int, error) {
	query := `
		SELECT COUNT(*)
		FROM tickets
		WHERE showtime_id = $1 AND status IN ('RESERVED', 'PAID')
	`

	var count int
	err := tx.QueryRow(ctx, query, showtimeID).Scan(&count)
	if err != nil {
		return 0, err
	}

	return count, nil
}

func (r *TicketRepositoryImpl) SeatTaken(ctx context.Context, tx pgx.Tx, showtimeID int, seat model.SeatRef) (bool, error) {
	query := `
		SELECT EXISTS (
			SELECT 1
			FROM tickets
			WHERE showtime_id = $1
			  AND seat_letter = $2
			  AND seat_number = $3
			  AND status IN ('RESERVED', 'PAID')
		)
	`

	var taken bool
	err := tx.QueryRow(ctx, query, showtimeID, seat.SeatLetter, seat.SeatNumber).Scan(&taken)
	if err != nil {
		return false, err
	}

	return taken, nil
}

// CreateBatch 在一個交易內用單一 INSERT 寫入整批票券。
// 只要有一個座位撞到唯一索引，整批 INSERT 一起失敗，不會留下部分票券。
func (r *TicketRepositoryImpl) CreateBatch(ctx context.Context, tx pgx.Tx, tickets []*model.Ticket) ([]*model.Ticket, error) {
	if len(tickets) == 0 {
		return nil, apperrors.ErrEmptySeats
	}

	values := make([]string, 0, len(tickets))
	args := make([]interface{}, 0, len(tickets)*7)
	argPos := 1

	for _, ticket := range tickets {
		values = append(values, fmt.Sprintf("($%d, $%d, $%d, $%d, $%d, $%d, $%d)",
			argPos, argPos+1, argPos+2, argPos+3, argPos+4, argPos+5, argPos+6))
		args = append(args,
			ticket.ShowtimeID, ticket.UserID, ticket.PaymentID,
			ticket.SeatLetter, ticket.SeatNumber, ticket.Price, ticket.Status,
		)
		argPos += 7
	}

	query := fmt.Sprintf(`
		INSERT INTO tickets (
			showtime_id, user_id, payment_id, seat_letter, seat_number, price, status
		)
		VALUES %s
		RETURNING `+ticketColumns,
		strings.Join(values, ", "))

	rows, err := tx.Query(ctx, query, args...)
	if err != nil {
		if isUniqueViolation(err, seatUniqueConstraint) {
			return nil, apperrors.ErrSeatTaken
		}
		return nil, fmt.Errorf("failed to create tickets: %w", err)
	}
	defer rows.Close()

	created := make([]*model.Ticket, 0, len(tickets))
	for rows.Next() {
		ticket, err := scanTicket(rows)
		if err != nil {
			return nil, err
		}
		created = append(created, ticket)
	}

	if err := rows.Err(); err != nil {
		// pgx 批次寫入的約束錯誤可能到讀取結果時才浮現
		if isUniqueViolation(err, seatUniqueConstraint) {
			return nil, apperrors.ErrSeatTaken
		}
		return nil, fmt.Errorf("failed to create tickets: %w", err)
	}

	return created, nil
}
