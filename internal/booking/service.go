package booking

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/itemshare/item-sharing-backend/internal/db"
	"github.com/itemshare/item-sharing-backend/internal/item"
	"github.com/itemshare/item-sharing-backend/internal/pkg/request"
	"github.com/itemshare/item-sharing-backend/internal/user"
)

// CreateRequest carries the fields required to request a booking.
type CreateRequest struct {
	ItemID int64
	Start  time.Time
	End    time.Time
}

// Service defines the booking lifecycle and its query operations.
type Service interface {
	Create(ctx context.Context, bookerID int64, req CreateRequest) (*Booking, error)
	Approve(ctx context.Context, ownerID, bookingID int64, approved bool) (*Booking, error)
	GetByID(ctx context.Context, userID, bookingID int64) (*Booking, error)
	ListByBooker(ctx context.Context, userID int64, stateToken string, pg request.Paging) ([]*Booking, error)
	ListByOwner(ctx context.Context, userID int64, stateToken string, pg request.Paging) ([]*Booking, error)
}

type service struct {
	pool  *pgxpool.Pool
	repo  Repository
	users user.Repository
}

// NewService creates a new booking Service. The pool is used to run the
// create and approve read-modify-write sequences inside one transaction.
func NewService(pool *pgxpool.Pool, repo Repository, users user.Repository) Service {
	return &service{pool: pool, repo: repo, users: users}
}

func (s *service) Create(ctx context.Context, bookerID int64, req CreateRequest) (*Booking, error) {
	if !req.Start.Before(req.End) {
		return nil, ErrInvalidTimeRange
	}

	var b *Booking
	err := db.WithTx(ctx, s.pool, func(tx pgx.Tx) error {
		booker, err := user.NewPgxRepository(tx).GetByID(ctx, bookerID)
		if err != nil {
			return err
		}

		// The availability check and the insert share the transaction
		// snapshot. Overlap with existing bookings is deliberately not
		// checked; availability is the only gate.
		it, err := item.NewPgxRepository(tx).GetByID(ctx, req.ItemID)
		if err != nil {
			return err
		}
		if it.OwnerID == bookerID {
			return ErrSelfBooking
		}
		if !it.Available {
			return ErrItemUnavailable
		}

		b = &Booking{
			Start:      req.Start,
			End:        req.End,
			ItemID:     it.ID,
			ItemName:   it.Name,
			BookerID:   booker.ID,
			BookerName: booker.Name,
			OwnerID:    it.OwnerID,
			Status:     StatusWaiting,
		}
		return NewPgxRepository(tx).Create(ctx, b)
	})
	if err != nil {
		return nil, err
	}
	return b, nil
}

func (s *service) Approve(ctx context.Context, ownerID, bookingID int64, approved bool) (*Booking, error) {
	var b *Booking
	err := db.WithTx(ctx, s.pool, func(tx pgx.Tx) error {
		repo := NewPgxRepository(tx)

		var err error
		if b, err = repo.GetByID(ctx, bookingID); err != nil {
			return err
		}
		if b.OwnerID != ownerID {
			return ErrNotOwner
		}
		// One-shot transition: APPROVED and REJECTED are terminal, so a
		// second decision fails even for the rightful owner.
		if b.Status != StatusWaiting {
			return ErrAlreadyDecided
		}

		b.Status = StatusRejected
		if approved {
			b.Status = StatusApproved
		}
		return repo.UpdateStatus(ctx, b.ID, b.Status)
	})
	if err != nil {
		return nil, err
	}
	return b, nil
}

func (s *service) GetByID(ctx context.Context, userID, bookingID int64) (*Booking, error) {
	b, err := s.repo.GetByID(ctx, bookingID)
	if err != nil {
		return nil, err
	}
	if userID != b.BookerID && userID != b.OwnerID {
		return nil, ErrAccessDenied
	}
	return b, nil
}

func (s *service) ListByBooker(ctx context.Context, userID int64, stateToken string, pg request.Paging) ([]*Booking, error) {
	return s.list(ctx, RoleBooker, userID, stateToken, pg)
}

func (s *service) ListByOwner(ctx context.Context, userID int64, stateToken string, pg request.Paging) ([]*Booking, error) {
	return s.list(ctx, RoleOwner, userID, stateToken, pg)
}

func (s *service) list(ctx context.Context, role Role, userID int64, stateToken string, pg request.Paging) ([]*Booking, error) {
	if err := pg.Validate(); err != nil {
		return nil, err
	}
	state, err := ParseState(stateToken)
	if err != nil {
		return nil, err
	}
	if _, err := s.users.GetByID(ctx, userID); err != nil {
		return nil, err
	}

	return s.repo.List(ctx, role, userID, state, time.Now().UTC(), pg)
}
