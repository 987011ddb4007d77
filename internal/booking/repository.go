package booking

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"

	"github.com/itemshare/item-sharing-backend/internal/db"
	"github.com/itemshare/item-sharing-backend/internal/pkg/request"
)

// Repository defines methods for accessing booking data from storage.
type Repository interface {
	Create(ctx context.Context, b *Booking) error
	GetByID(ctx context.Context, id int64) (*Booking, error)
	UpdateStatus(ctx context.Context, id int64, status Status) error
	// List returns the bookings scoped to the user's role, filtered by
	// state evaluated at now, ordered by start time descending.
	List(ctx context.Context, role Role, userID int64, state State, now time.Time, pg request.Paging) ([]*Booking, error)
}

type pgxRepository struct {
	db db.DBTX
}

// NewPgxRepository creates a Repository backed by the given pool or transaction.
func NewPgxRepository(db db.DBTX) Repository {
	return &pgxRepository{db: db}
}

func (r *pgxRepository) Create(ctx context.Context, b *Booking) error {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Insert("public.bookings").
		Columns("start_time", "end_time", "item_id", "booker_id", "status").
		Values(b.Start, b.End, b.ItemID, b.BookerID, b.Status).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return fmt.Errorf("build create booking query failed: %w", err)
	}

	if err := r.db.QueryRow(ctx, query, args...).Scan(&b.ID); err != nil {
		return fmt.Errorf("create booking failed: %w", err)
	}
	return nil
}

func (r *pgxRepository) GetByID(ctx context.Context, id int64) (*Booking, error) {
	query, args, err := r.selectBookings().
		Where(squirrel.Eq{"b.id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build get booking query failed: %w", err)
	}

	var b Booking
	if err := r.db.QueryRow(ctx, query, args...).Scan(
		&b.ID, &b.Start, &b.End, &b.ItemID, &b.ItemName,
		&b.BookerID, &b.BookerName, &b.OwnerID, &b.Status,
	); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get booking failed: %w", err)
	}
	return &b, nil
}

func (r *pgxRepository) UpdateStatus(ctx context.Context, id int64, status Status) error {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Update("public.bookings").
		Set("status", status).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build update booking query failed: %w", err)
	}

	ct, err := r.db.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("update booking failed: %w", err)
	}
	if ct.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *pgxRepository) List(ctx context.Context, role Role, userID int64, state State, now time.Time, pg request.Paging) ([]*Booking, error) {
	query := r.selectBookings()

	switch role {
	case RoleOwner:
		query = query.Where(squirrel.Eq{"i.owner_id": userID})
	default:
		query = query.Where(squirrel.Eq{"b.booker_id": userID})
	}

	if pred := state.predicate(now); pred != nil {
		query = query.Where(pred)
	}

	// Most recent start first; id breaks start-time ties deterministically.
	sql, args, err := query.
		OrderBy("b.start_time DESC", "b.id DESC").
		Limit(pg.Limit()).
		Offset(pg.Offset()).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list bookings query failed: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("list bookings failed: %w", err)
	}
	defer rows.Close()

	var bookings []*Booking
	for rows.Next() {
		var b Booking
		if err := rows.Scan(
			&b.ID, &b.Start, &b.End, &b.ItemID, &b.ItemName,
			&b.BookerID, &b.BookerName, &b.OwnerID, &b.Status,
		); err != nil {
			return nil, fmt.Errorf("scan booking failed: %w", err)
		}
		bookings = append(bookings, &b)
	}
	return bookings, rows.Err()
}

func (r *pgxRepository) selectBookings() squirrel.SelectBuilder {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	return psql.Select(
		"b.id", "b.start_time", "b.end_time", "b.item_id", "i.name",
		"b.booker_id", "u.name", "i.owner_id", "b.status",
	).
		From("public.bookings b").
		Join("public.items i ON b.item_id = i.id").
		Join("public.users u ON b.booker_id = u.id")
}
