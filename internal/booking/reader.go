package booking

import (
	"context"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/itemshare/item-sharing-backend/internal/db"
	"github.com/itemshare/item-sharing-backend/internal/item"
)

// ItemBookingReader implements item.BookingReader: the last/next approved
// booking per item and the finished-booking check behind the comment gate.
type ItemBookingReader struct {
	db db.DBTX
}

func NewItemBookingReader(db db.DBTX) *ItemBookingReader {
	return &ItemBookingReader{db: db}
}

func (r *ItemBookingReader) LastByItemIDs(ctx context.Context, itemIDs []int64, now time.Time) (map[int64]item.BookingBrief, error) {
	// Latest finished-or-running approved booking: start <= now, greatest end wins.
	return r.briefByItemIDs(ctx, itemIDs,
		squirrel.LtOrEq{"start_time": now}, "item_id, end_time DESC")
}

func (r *ItemBookingReader) NextByItemIDs(ctx context.Context, itemIDs []int64, now time.Time) (map[int64]item.BookingBrief, error) {
	// Nearest upcoming approved booking: start > now, smallest end wins.
	return r.briefByItemIDs(ctx, itemIDs,
		squirrel.Gt{"start_time": now}, "item_id, end_time ASC")
}

func (r *ItemBookingReader) HasFinished(ctx context.Context, bookerID, itemID int64, now time.Time) (bool, error) {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	subQuery, args, err := psql.Select("1").
		From("public.bookings").
		Where(squirrel.Eq{"booker_id": bookerID}).
		Where(squirrel.Eq{"item_id": itemID}).
		Where(squirrel.Eq{"status": StatusApproved}).
		Where(squirrel.Lt{"end_time": now}).
		ToSql()
	if err != nil {
		return false, fmt.Errorf("build finished booking query failed: %w", err)
	}

	var exists bool
	if err := r.db.QueryRow(ctx, "SELECT EXISTS ("+subQuery+")", args...).Scan(&exists); err != nil {
		return false, fmt.Errorf("check finished booking failed: %w", err)
	}
	return exists, nil
}

// briefByItemIDs selects one approved booking per item id, choosing the row
// DISTINCT ON keeps after applying the given end_time ordering.
func (r *ItemBookingReader) briefByItemIDs(ctx context.Context, itemIDs []int64, timePred squirrel.Sqlizer, order string) (map[int64]item.BookingBrief, error) {
	if len(itemIDs) == 0 {
		return map[int64]item.BookingBrief{}, nil
	}

	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Select("id", "booker_id", "item_id").
		Options("DISTINCT ON (item_id)").
		From("public.bookings").
		Where(squirrel.Expr("item_id = ANY(?)", itemIDs)).
		Where(squirrel.Eq{"status": StatusApproved}).
		Where(timePred).
		OrderBy(order).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build booking brief query failed: %w", err)
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("booking brief query failed: %w", err)
	}
	defer rows.Close()

	briefs := make(map[int64]item.BookingBrief)
	for rows.Next() {
		var brief item.BookingBrief
		var itemID int64
		if err := rows.Scan(&brief.ID, &brief.BookerID, &itemID); err != nil {
			return nil, fmt.Errorf("scan booking brief failed: %w", err)
		}
		briefs[itemID] = brief
	}
	return briefs, rows.Err()
}
