package itemrequest

import (
	"context"
	"time"

	"github.com/itemshare/item-sharing-backend/internal/pkg/apperror"
)

var ErrNotFound = apperror.NotFound("request not found")

// ItemRequest is a want-ad: a user posts it hoping someone lists a matching
// item. Zero or more items may be created against it.
type ItemRequest struct {
	ID          int64
	Description string
	RequesterID int64
	Created     time.Time
}

// ItemBrief is the view of an item attached to a request listing.
type ItemBrief struct {
	ID          int64
	Name        string
	Description string
	Available   bool
	OwnerID     int64
	RequestID   int64
}

// ItemReader resolves the items created against a set of requests in one
// batched call. Implemented by the item module and injected at wiring time.
type ItemReader interface {
	ByRequestIDs(ctx context.Context, requestIDs []int64) (map[int64][]ItemBrief, error)
}

// WithItems is a request decorated with the items that fulfill it.
type WithItems struct {
	ItemRequest
	Items []ItemBrief
}
