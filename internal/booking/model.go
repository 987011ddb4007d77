package booking

import (
	"time"

	"github.com/itemshare/item-sharing-backend/internal/pkg/apperror"
)

var (
	ErrNotFound         = apperror.NotFound("booking not found")
	ErrInvalidTimeRange = apperror.InvalidInput("start time must be before end time")
	ErrSelfBooking      = apperror.InvalidInput("owner can't book own item")
	ErrItemUnavailable  = apperror.InvalidInput("item is not available for booking")
	ErrNotOwner         = apperror.Unauthorized("only the item owner can approve or reject")
	ErrAccessDenied     = apperror.Unauthorized("only the booker or the item owner can view the booking")
	ErrAlreadyDecided   = apperror.InvalidState("only WAITING bookings can be approved or rejected")
)

// Status is the lifecycle status of a booking. A booking is created WAITING
// and transitions exactly once to APPROVED or REJECTED; both are terminal.
type Status string

const (
	StatusWaiting  Status = "WAITING"
	StatusApproved Status = "APPROVED"
	StatusRejected Status = "REJECTED"
	StatusCanceled Status = "CANCELED"
)

// Booking is a time-bounded reservation of an item. Item and booker names
// and the item's owner are denormalized onto the struct by the joined
// repository queries.
type Booking struct {
	ID         int64
	Start      time.Time
	End        time.Time
	ItemID     int64
	ItemName   string
	BookerID   int64
	BookerName string
	OwnerID    int64
	Status     Status
}
