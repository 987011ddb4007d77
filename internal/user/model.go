package user

import "github.com/itemshare/item-sharing-backend/internal/pkg/apperror"

var (
	ErrNotFound         = apperror.NotFound("user not found")
	ErrEmailAlreadyUsed = apperror.Conflict("email already in use")
	ErrStillReferenced  = apperror.Conflict("user is referenced by items or bookings")
)

// User represents a registered user.
type User struct {
	ID    int64
	Name  string
	Email string
}
