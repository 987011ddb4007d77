package http

import (
	"time"

	"github.com/itemshare/item-sharing-backend/internal/item"
)

type CreateItemRequest struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description" binding:"required"`
	Available   *bool  `json:"available" binding:"required"`
	RequestID   *int64 `json:"requestId"`
}

type UpdateItemRequest struct {
	Name        *string `json:"name" binding:"omitempty,min=1"`
	Description *string `json:"description" binding:"omitempty,min=1"`
	Available   *bool   `json:"available"`
}

type CreateCommentRequest struct {
	Text string `json:"text" binding:"required"`
}

type ItemResponse struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Available   bool   `json:"available"`
	RequestID   *int64 `json:"requestId,omitempty"`
}

func NewItemResponse(it *item.Item) ItemResponse {
	return ItemResponse{
		ID:          it.ID,
		Name:        it.Name,
		Description: it.Description,
		Available:   it.Available,
		RequestID:   it.RequestID,
	}
}

// BookingTag is the owner-only booking reference on item views.
type BookingTag struct {
	ID       int64 `json:"id"`
	BookerID int64 `json:"bookerId"`
}

type CommentResponse struct {
	ID         int64     `json:"id"`
	Text       string    `json:"text"`
	AuthorName string    `json:"authorName"`
	Created    time.Time `json:"created"`
}

func NewCommentResponse(cm *item.Comment) CommentResponse {
	return CommentResponse{
		ID:         cm.ID,
		Text:       cm.Text,
		AuthorName: cm.AuthorName,
		Created:    cm.Created,
	}
}

// ItemDetailResponse is the item view decorated with bookings and comments.
type ItemDetailResponse struct {
	ItemResponse
	LastBooking *BookingTag       `json:"lastBooking"`
	NextBooking *BookingTag       `json:"nextBooking"`
	Comments    []CommentResponse `json:"comments"`
}

func NewItemDetailResponse(d *item.Detail) ItemDetailResponse {
	resp := ItemDetailResponse{
		ItemResponse: NewItemResponse(&d.Item),
		Comments:     make([]CommentResponse, len(d.Comments)),
	}
	if d.LastBooking != nil {
		resp.LastBooking = &BookingTag{ID: d.LastBooking.ID, BookerID: d.LastBooking.BookerID}
	}
	if d.NextBooking != nil {
		resp.NextBooking = &BookingTag{ID: d.NextBooking.ID, BookerID: d.NextBooking.BookerID}
	}
	for i := range d.Comments {
		resp.Comments[i] = NewCommentResponse(&d.Comments[i])
	}
	return resp
}
