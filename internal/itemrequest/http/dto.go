package http

import (
	"time"

	"github.com/itemshare/item-sharing-backend/internal/itemrequest"
)

type CreateItemRequestRequest struct {
	Description string `json:"description" binding:"required"`
}

// RequestItemTag is the view of an item attached to a request response.
type RequestItemTag struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Available   bool   `json:"available"`
	RequestID   int64  `json:"requestId"`
}

type ItemRequestResponse struct {
	ID          int64            `json:"id"`
	Description string           `json:"description"`
	Created     time.Time        `json:"created"`
	Items       []RequestItemTag `json:"items"`
}

func NewItemRequestResponse(req *itemrequest.WithItems) ItemRequestResponse {
	items := make([]RequestItemTag, len(req.Items))
	for i, it := range req.Items {
		items[i] = RequestItemTag{
			ID:          it.ID,
			Name:        it.Name,
			Description: it.Description,
			Available:   it.Available,
			RequestID:   it.RequestID,
		}
	}
	return ItemRequestResponse{
		ID:          req.ID,
		Description: req.Description,
		Created:     req.Created,
		Items:       items,
	}
}

// NewCreatedResponse shapes a freshly created request, which has no items yet.
func NewCreatedResponse(req *itemrequest.ItemRequest) ItemRequestResponse {
	return ItemRequestResponse{
		ID:          req.ID,
		Description: req.Description,
		Created:     req.Created,
		Items:       []RequestItemTag{},
	}
}
