package item

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"

	"github.com/itemshare/item-sharing-backend/internal/db"
	"github.com/itemshare/item-sharing-backend/internal/pkg/request"
)

// Repository defines methods for accessing item data from storage.
type Repository interface {
	Create(ctx context.Context, it *Item) error
	GetByID(ctx context.Context, id int64) (*Item, error)
	Update(ctx context.Context, it *Item) error
	FindAllByOwner(ctx context.Context, ownerID int64, pg request.Paging) ([]*Item, error)
	Search(ctx context.Context, text string, pg request.Paging) ([]*Item, error)
}

type pgxRepository struct {
	db db.DBTX
}

// NewPgxRepository creates a Repository backed by the given pool or transaction.
func NewPgxRepository(db db.DBTX) Repository {
	return &pgxRepository{db: db}
}

const itemColumns = "id, name, description, available, owner_id, request_id"

func (r *pgxRepository) Create(ctx context.Context, it *Item) error {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Insert("public.items").
		Columns("name", "description", "available", "owner_id", "request_id").
		Values(it.Name, it.Description, it.Available, it.OwnerID, it.RequestID).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return fmt.Errorf("build create item query failed: %w", err)
	}

	if err := r.db.QueryRow(ctx, query, args...).Scan(&it.ID); err != nil {
		return fmt.Errorf("create item failed: %w", err)
	}
	return nil
}

func (r *pgxRepository) GetByID(ctx context.Context, id int64) (*Item, error) {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Select(itemColumns).
		From("public.items").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build get item query failed: %w", err)
	}

	var it Item
	if err := r.db.QueryRow(ctx, query, args...).
		Scan(&it.ID, &it.Name, &it.Description, &it.Available, &it.OwnerID, &it.RequestID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get item failed: %w", err)
	}
	return &it, nil
}

func (r *pgxRepository) Update(ctx context.Context, it *Item) error {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Update("public.items").
		Set("name", it.Name).
		Set("description", it.Description).
		Set("available", it.Available).
		Where(squirrel.Eq{"id": it.ID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build update item query failed: %w", err)
	}

	ct, err := r.db.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("update item failed: %w", err)
	}
	if ct.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *pgxRepository) FindAllByOwner(ctx context.Context, ownerID int64, pg request.Paging) ([]*Item, error) {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Select(itemColumns).
		From("public.items").
		Where(squirrel.Eq{"owner_id": ownerID}).
		OrderBy("id").
		Limit(pg.Limit()).
		Offset(pg.Offset()).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build owner items query failed: %w", err)
	}
	return r.queryItems(ctx, query, args)
}

func (r *pgxRepository) Search(ctx context.Context, text string, pg request.Paging) ([]*Item, error) {
	pattern := "%" + text + "%"
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Select(itemColumns).
		From("public.items").
		Where(squirrel.Eq{"available": true}).
		Where(squirrel.Or{
			squirrel.ILike{"name": pattern},
			squirrel.ILike{"description": pattern},
		}).
		OrderBy("id").
		Limit(pg.Limit()).
		Offset(pg.Offset()).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build search items query failed: %w", err)
	}
	return r.queryItems(ctx, query, args)
}

func (r *pgxRepository) queryItems(ctx context.Context, query string, args []any) ([]*Item, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list items failed: %w", err)
	}
	defer rows.Close()

	var items []*Item
	for rows.Next() {
		var it Item
		if err := rows.Scan(&it.ID, &it.Name, &it.Description, &it.Available, &it.OwnerID, &it.RequestID); err != nil {
			return nil, fmt.Errorf("scan item failed: %w", err)
		}
		items = append(items, &it)
	}
	return items, rows.Err()
}
