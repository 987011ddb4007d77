package http

import (
	"time"

	"github.com/itemshare/item-sharing-backend/internal/booking"
)

type CreateBookingRequest struct {
	ItemID int64     `json:"itemId" binding:"required"`
	Start  time.Time `json:"start" binding:"required"`
	End    time.Time `json:"end" binding:"required"`
}

// BookerTag and ItemTag are the minimal references embedded in booking
// responses.
type BookerTag struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

type ItemTag struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

type BookingResponse struct {
	ID     int64     `json:"id"`
	Start  time.Time `json:"start"`
	End    time.Time `json:"end"`
	Status string    `json:"status"`
	Booker BookerTag `json:"booker"`
	Item   ItemTag   `json:"item"`
}

func NewBookingResponse(b *booking.Booking) BookingResponse {
	return BookingResponse{
		ID:     b.ID,
		Start:  b.Start,
		End:    b.End,
		Status: string(b.Status),
		Booker: BookerTag{ID: b.BookerID, Name: b.BookerName},
		Item:   ItemTag{ID: b.ItemID, Name: b.ItemName},
	}
}
