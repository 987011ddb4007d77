package itemrequest

import (
	"context"
	"time"

	"github.com/itemshare/item-sharing-backend/internal/pkg/request"
	"github.com/itemshare/item-sharing-backend/internal/user"
)

// Service defines business logic related to item requests.
type Service interface {
	Create(ctx context.Context, userID int64, description string) (*ItemRequest, error)
	GetByID(ctx context.Context, userID, requestID int64) (*WithItems, error)
	// GetOwn lists the user's requests, oldest first, with items attached.
	GetOwn(ctx context.Context, userID int64) ([]*WithItems, error)
	// GetAll lists other users' requests, oldest first, paginated.
	GetAll(ctx context.Context, userID int64, pg request.Paging) ([]*WithItems, error)
}

type service struct {
	repo  Repository
	users user.Repository
	items ItemReader
}

// NewService creates a new item-request Service.
func NewService(repo Repository, users user.Repository, items ItemReader) Service {
	return &service{repo: repo, users: users, items: items}
}

func (s *service) Create(ctx context.Context, userID int64, description string) (*ItemRequest, error) {
	if _, err := s.users.GetByID(ctx, userID); err != nil {
		return nil, err
	}

	req := &ItemRequest{
		Description: description,
		RequesterID: userID,
		Created:     time.Now().UTC(),
	}
	if err := s.repo.Create(ctx, req); err != nil {
		return nil, err
	}
	return req, nil
}

func (s *service) GetByID(ctx context.Context, userID, requestID int64) (*WithItems, error) {
	if _, err := s.users.GetByID(ctx, userID); err != nil {
		return nil, err
	}
	req, err := s.repo.GetByID(ctx, requestID)
	if err != nil {
		return nil, err
	}

	decorated, err := s.attachItems(ctx, []*ItemRequest{req})
	if err != nil {
		return nil, err
	}
	return decorated[0], nil
}

func (s *service) GetOwn(ctx context.Context, userID int64) ([]*WithItems, error) {
	if _, err := s.users.GetByID(ctx, userID); err != nil {
		return nil, err
	}
	requests, err := s.repo.FindAllByRequester(ctx, userID)
	if err != nil {
		return nil, err
	}
	return s.attachItems(ctx, requests)
}

func (s *service) GetAll(ctx context.Context, userID int64, pg request.Paging) ([]*WithItems, error) {
	if err := pg.Validate(); err != nil {
		return nil, err
	}
	if _, err := s.users.GetByID(ctx, userID); err != nil {
		return nil, err
	}
	requests, err := s.repo.FindAllOthers(ctx, userID, pg)
	if err != nil {
		return nil, err
	}
	return s.attachItems(ctx, requests)
}

// attachItems resolves the items for the whole request set in one batched
// call keyed by the request ids, avoiding a query per request.
func (s *service) attachItems(ctx context.Context, requests []*ItemRequest) ([]*WithItems, error) {
	ids := make([]int64, len(requests))
	for i, req := range requests {
		ids[i] = req.ID
	}

	var grouped map[int64][]ItemBrief
	if len(ids) > 0 {
		var err error
		if grouped, err = s.items.ByRequestIDs(ctx, ids); err != nil {
			return nil, err
		}
	}

	result := make([]*WithItems, len(requests))
	for i, req := range requests {
		items := grouped[req.ID]
		if items == nil {
			items = []ItemBrief{}
		}
		result[i] = &WithItems{ItemRequest: *req, Items: items}
	}
	return result, nil
}
