package item

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/itemshare/item-sharing-backend/internal/db"
)

// CommentRepository defines methods for accessing comment data from storage.
type CommentRepository interface {
	Create(ctx context.Context, cm *Comment) error
	// FindByItemIDs returns comments grouped by item id, newest first
	// within each group.
	FindByItemIDs(ctx context.Context, itemIDs []int64) (map[int64][]Comment, error)
}

type pgxCommentRepository struct {
	db db.DBTX
}

// NewPgxCommentRepository creates a CommentRepository backed by the given
// pool or transaction.
func NewPgxCommentRepository(db db.DBTX) CommentRepository {
	return &pgxCommentRepository{db: db}
}

func (r *pgxCommentRepository) Create(ctx context.Context, cm *Comment) error {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Insert("public.comments").
		Columns("text", "item_id", "author_id", "created_at").
		Values(cm.Text, cm.ItemID, cm.AuthorID, cm.Created).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return fmt.Errorf("build create comment query failed: %w", err)
	}

	if err := r.db.QueryRow(ctx, query, args...).Scan(&cm.ID); err != nil {
		return fmt.Errorf("create comment failed: %w", err)
	}
	return nil
}

func (r *pgxCommentRepository) FindByItemIDs(ctx context.Context, itemIDs []int64) (map[int64][]Comment, error) {
	if len(itemIDs) == 0 {
		return map[int64][]Comment{}, nil
	}

	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Select(
		"c.id", "c.text", "c.item_id", "c.author_id", "u.name", "c.created_at",
	).
		From("public.comments c").
		Join("public.users u ON c.author_id = u.id").
		Where(squirrel.Expr("c.item_id = ANY(?)", itemIDs)).
		OrderBy("c.created_at DESC", "c.id DESC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build comments query failed: %w", err)
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list comments failed: %w", err)
	}
	defer rows.Close()

	grouped := make(map[int64][]Comment)
	for rows.Next() {
		var cm Comment
		if err := rows.Scan(&cm.ID, &cm.Text, &cm.ItemID, &cm.AuthorID, &cm.AuthorName, &cm.Created); err != nil {
			return nil, fmt.Errorf("scan comment failed: %w", err)
		}
		grouped[cm.ItemID] = append(grouped[cm.ItemID], cm)
	}
	return grouped, rows.Err()
}
