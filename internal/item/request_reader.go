package item

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/itemshare/item-sharing-backend/internal/db"
	"github.com/itemshare/item-sharing-backend/internal/itemrequest"
)

// RequestItemReader implements itemrequest.ItemReader on top of the items
// table, serving the batched request fan-out.
type RequestItemReader struct {
	db db.DBTX
}

func NewRequestItemReader(db db.DBTX) *RequestItemReader {
	return &RequestItemReader{db: db}
}

func (r *RequestItemReader) ByRequestIDs(ctx context.Context, requestIDs []int64) (map[int64][]itemrequest.ItemBrief, error) {
	if len(requestIDs) == 0 {
		return map[int64][]itemrequest.ItemBrief{}, nil
	}

	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Select("id", "name", "description", "available", "owner_id", "request_id").
		From("public.items").
		Where(squirrel.Expr("request_id = ANY(?)", requestIDs)).
		OrderBy("id").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build items by request query failed: %w", err)
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("items by request failed: %w", err)
	}
	defer rows.Close()

	grouped := make(map[int64][]itemrequest.ItemBrief)
	for rows.Next() {
		var brief itemrequest.ItemBrief
		if err := rows.Scan(&brief.ID, &brief.Name, &brief.Description, &brief.Available,
			&brief.OwnerID, &brief.RequestID); err != nil {
			return nil, fmt.Errorf("scan item brief failed: %w", err)
		}
		grouped[brief.RequestID] = append(grouped[brief.RequestID], brief)
	}
	return grouped, rows.Err()
}
