package item

import (
	"context"
	"time"

	"github.com/itemshare/item-sharing-backend/internal/pkg/apperror"
)

var (
	ErrNotFound          = apperror.NotFound("item not found")
	ErrOnlyOwner         = apperror.Unauthorized("only the owner can change item properties")
	ErrCommentNotAllowed = apperror.InvalidInput("comment can be added only after a finished booking")
)

// Item represents a listed item. RequestID links the item to the want-ad it
// fulfills, when any.
type Item struct {
	ID          int64
	Name        string
	Description string
	Available   bool
	OwnerID     int64
	RequestID   *int64
}

// Comment is renter feedback left on an item after a finished booking.
type Comment struct {
	ID         int64
	Text       string
	ItemID     int64
	AuthorID   int64
	AuthorName string
	Created    time.Time
}

// BookingBrief is the minimal booking reference exposed on item views.
type BookingBrief struct {
	ID       int64
	BookerID int64
}

// BookingReader is the slice of booking storage the item module needs:
// last/next approved bookings per item and the comment eligibility check.
// Implemented by the booking module and injected at wiring time.
type BookingReader interface {
	// LastByItemIDs returns, per item, the approved booking with
	// start_time <= now holding the greatest end_time.
	LastByItemIDs(ctx context.Context, itemIDs []int64, now time.Time) (map[int64]BookingBrief, error)
	// NextByItemIDs returns, per item, the approved booking with
	// start_time > now holding the smallest end_time.
	NextByItemIDs(ctx context.Context, itemIDs []int64, now time.Time) (map[int64]BookingBrief, error)
	// HasFinished reports whether the booker has an approved booking of the
	// item that ended strictly before now.
	HasFinished(ctx context.Context, bookerID, itemID int64, now time.Time) (bool, error)
}

// Detail is an item decorated for the detail and owner-list views.
// LastBooking and NextBooking are only populated for the owner.
type Detail struct {
	Item
	LastBooking *BookingBrief
	NextBooking *BookingBrief
	Comments    []Comment
}
