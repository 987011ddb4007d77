package item

import (
	"context"
	"strings"
	"time"

	"github.com/itemshare/item-sharing-backend/internal/itemrequest"
	"github.com/itemshare/item-sharing-backend/internal/pkg/request"
	"github.com/itemshare/item-sharing-backend/internal/user"
)

// CreateRequest carries the fields required to list an item.
type CreateRequest struct {
	Name        string
	Description string
	Available   bool
	RequestID   *int64
}

// UpdateRequest carries a partial item update. Nil fields are left as is.
type UpdateRequest struct {
	Name        *string
	Description *string
	Available   *bool
}

// Service defines business logic related to items and their comments.
type Service interface {
	Create(ctx context.Context, ownerID int64, req CreateRequest) (*Item, error)
	Update(ctx context.Context, itemID, ownerID int64, req UpdateRequest) (*Item, error)
	GetByID(ctx context.Context, itemID, viewerID int64) (*Detail, error)
	GetUserItems(ctx context.Context, ownerID int64, pg request.Paging) ([]*Detail, error)
	Search(ctx context.Context, text string, pg request.Paging) ([]*Item, error)
	AddComment(ctx context.Context, itemID, authorID int64, text string) (*Comment, error)
}

type service struct {
	repo     Repository
	comments CommentRepository
	users    user.Repository
	requests itemrequest.Repository
	bookings BookingReader
}

// NewService creates a new item Service.
func NewService(
	repo Repository,
	comments CommentRepository,
	users user.Repository,
	requests itemrequest.Repository,
	bookings BookingReader,
) Service {
	return &service{
		repo:     repo,
		comments: comments,
		users:    users,
		requests: requests,
		bookings: bookings,
	}
}

func (s *service) Create(ctx context.Context, ownerID int64, req CreateRequest) (*Item, error) {
	if _, err := s.users.GetByID(ctx, ownerID); err != nil {
		return nil, err
	}
	if req.RequestID != nil {
		if _, err := s.requests.GetByID(ctx, *req.RequestID); err != nil {
			return nil, err
		}
	}

	it := &Item{
		Name:        req.Name,
		Description: req.Description,
		Available:   req.Available,
		OwnerID:     ownerID,
		RequestID:   req.RequestID,
	}
	if err := s.repo.Create(ctx, it); err != nil {
		return nil, err
	}
	return it, nil
}

func (s *service) Update(ctx context.Context, itemID, ownerID int64, req UpdateRequest) (*Item, error) {
	if _, err := s.users.GetByID(ctx, ownerID); err != nil {
		return nil, err
	}
	it, err := s.repo.GetByID(ctx, itemID)
	if err != nil {
		return nil, err
	}
	if it.OwnerID != ownerID {
		return nil, ErrOnlyOwner
	}

	if req.Name != nil {
		it.Name = *req.Name
	}
	if req.Description != nil {
		it.Description = *req.Description
	}
	// Flipping availability only affects new bookings; existing ones survive.
	if req.Available != nil {
		it.Available = *req.Available
	}

	if err := s.repo.Update(ctx, it); err != nil {
		return nil, err
	}
	return it, nil
}

func (s *service) GetByID(ctx context.Context, itemID, viewerID int64) (*Detail, error) {
	it, err := s.repo.GetByID(ctx, itemID)
	if err != nil {
		return nil, err
	}

	details, err := s.decorate(ctx, []*Item{it}, viewerID)
	if err != nil {
		return nil, err
	}
	return details[0], nil
}

func (s *service) GetUserItems(ctx context.Context, ownerID int64, pg request.Paging) ([]*Detail, error) {
	if err := pg.Validate(); err != nil {
		return nil, err
	}
	if _, err := s.users.GetByID(ctx, ownerID); err != nil {
		return nil, err
	}

	items, err := s.repo.FindAllByOwner(ctx, ownerID, pg)
	if err != nil {
		return nil, err
	}
	return s.decorate(ctx, items, ownerID)
}

func (s *service) Search(ctx context.Context, text string, pg request.Paging) ([]*Item, error) {
	if err := pg.Validate(); err != nil {
		return nil, err
	}
	if strings.TrimSpace(text) == "" {
		return []*Item{}, nil
	}
	return s.repo.Search(ctx, text, pg)
}

func (s *service) AddComment(ctx context.Context, itemID, authorID int64, text string) (*Comment, error) {
	author, err := s.users.GetByID(ctx, authorID)
	if err != nil {
		return nil, err
	}
	if _, err := s.repo.GetByID(ctx, itemID); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	ok, err := s.bookings.HasFinished(ctx, authorID, itemID, now)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, ErrCommentNotAllowed
	}

	cm := &Comment{
		Text:       text,
		ItemID:     itemID,
		AuthorID:   authorID,
		AuthorName: author.Name,
		Created:    now,
	}
	if err := s.comments.Create(ctx, cm); err != nil {
		return nil, err
	}
	return cm, nil
}

// decorate attaches comments to every item and, for items the viewer owns,
// the last and next approved bookings. The batch queries are keyed by the
// full item id set so the owner list view costs a fixed number of queries.
func (s *service) decorate(ctx context.Context, items []*Item, viewerID int64) ([]*Detail, error) {
	ids := make([]int64, len(items))
	ownedIDs := make([]int64, 0, len(items))
	for i, it := range items {
		ids[i] = it.ID
		if it.OwnerID == viewerID {
			ownedIDs = append(ownedIDs, it.ID)
		}
	}

	comments, err := s.comments.FindByItemIDs(ctx, ids)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	var last, next map[int64]BookingBrief
	if len(ownedIDs) > 0 {
		if last, err = s.bookings.LastByItemIDs(ctx, ownedIDs, now); err != nil {
			return nil, err
		}
		if next, err = s.bookings.NextByItemIDs(ctx, ownedIDs, now); err != nil {
			return nil, err
		}
	}

	details := make([]*Detail, len(items))
	for i, it := range items {
		d := &Detail{Item: *it, Comments: comments[it.ID]}
		if d.Comments == nil {
			d.Comments = []Comment{}
		}
		if it.OwnerID == viewerID {
			if b, ok := last[it.ID]; ok {
				d.LastBooking = &b
			}
			if b, ok := next[it.ID]; ok {
				d.NextBooking = &b
			}
		}
		details[i] = d
	}
	return details, nil
}
