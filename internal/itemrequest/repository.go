package itemrequest

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"

	"github.com/itemshare/item-sharing-backend/internal/db"
	"github.com/itemshare/item-sharing-backend/internal/pkg/request"
)

// Repository defines methods for accessing item-request data from storage.
type Repository interface {
	Create(ctx context.Context, req *ItemRequest) error
	GetByID(ctx context.Context, id int64) (*ItemRequest, error)
	FindAllByRequester(ctx context.Context, requesterID int64) ([]*ItemRequest, error)
	// FindAllOthers returns requests posted by anyone but the given user.
	FindAllOthers(ctx context.Context, userID int64, pg request.Paging) ([]*ItemRequest, error)
}

type pgxRepository struct {
	db db.DBTX
}

// NewPgxRepository creates a Repository backed by the given pool or transaction.
func NewPgxRepository(db db.DBTX) Repository {
	return &pgxRepository{db: db}
}

const requestColumns = "id, description, requester_id, created_at"

func (r *pgxRepository) Create(ctx context.Context, req *ItemRequest) error {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Insert("public.requests").
		Columns("description", "requester_id", "created_at").
		Values(req.Description, req.RequesterID, req.Created).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return fmt.Errorf("build create request query failed: %w", err)
	}

	if err := r.db.QueryRow(ctx, query, args...).Scan(&req.ID); err != nil {
		return fmt.Errorf("create request failed: %w", err)
	}
	return nil
}

func (r *pgxRepository) GetByID(ctx context.Context, id int64) (*ItemRequest, error) {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Select(requestColumns).
		From("public.requests").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build get request query failed: %w", err)
	}

	var req ItemRequest
	if err := r.db.QueryRow(ctx, query, args...).
		Scan(&req.ID, &req.Description, &req.RequesterID, &req.Created); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get request failed: %w", err)
	}
	return &req, nil
}

func (r *pgxRepository) FindAllByRequester(ctx context.Context, requesterID int64) ([]*ItemRequest, error) {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Select(requestColumns).
		From("public.requests").
		Where(squirrel.Eq{"requester_id": requesterID}).
		OrderBy("created_at ASC", "id ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build requester requests query failed: %w", err)
	}
	return r.queryRequests(ctx, query, args)
}

func (r *pgxRepository) FindAllOthers(ctx context.Context, userID int64, pg request.Paging) ([]*ItemRequest, error) {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Select(requestColumns).
		From("public.requests").
		Where(squirrel.NotEq{"requester_id": userID}).
		OrderBy("created_at ASC", "id ASC").
		Limit(pg.Limit()).
		Offset(pg.Offset()).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build other requests query failed: %w", err)
	}
	return r.queryRequests(ctx, query, args)
}

func (r *pgxRepository) queryRequests(ctx context.Context, query string, args []any) ([]*ItemRequest, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list requests failed: %w", err)
	}
	defer rows.Close()

	var requests []*ItemRequest
	for rows.Next() {
		var req ItemRequest
		if err := rows.Scan(&req.ID, &req.Description, &req.RequesterID, &req.Created); err != nil {
			return nil, fmt.Errorf("scan request failed: %w", err)
		}
		requests = append(requests, &req)
	}
	return requests, rows.Err()
}
