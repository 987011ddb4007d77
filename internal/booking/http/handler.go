package http

import (
	"context"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/itemshare/item-sharing-backend/internal/booking"
	"github.com/itemshare/item-sharing-backend/internal/identity"
	"github.com/itemshare/item-sharing-backend/internal/pkg/apperror"
	"github.com/itemshare/item-sharing-backend/internal/pkg/request"
	"github.com/itemshare/item-sharing-backend/internal/pkg/response"
)

type Handler struct {
	service booking.Service
}

func NewHandler(service booking.Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) Create(c *gin.Context) {
	var body CreateBookingRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		response.Error(c, apperror.InvalidInput("invalid request body"))
		return
	}

	b, err := h.service.Create(c.Request.Context(), identity.UserID(c), booking.CreateRequest{
		ItemID: body.ItemID,
		Start:  body.Start,
		End:    body.End,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusCreated, NewBookingResponse(b))
}

func (h *Handler) Approve(c *gin.Context) {
	id, err := request.PathID(c, "id")
	if err != nil {
		response.Error(c, err)
		return
	}

	approved, err := strconv.ParseBool(c.Query("approved"))
	if err != nil {
		response.Error(c, apperror.InvalidInput("approved query parameter must be true or false"))
		return
	}

	b, err := h.service.Approve(c.Request.Context(), identity.UserID(c), id, approved)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, NewBookingResponse(b))
}

func (h *Handler) Get(c *gin.Context) {
	id, err := request.PathID(c, "id")
	if err != nil {
		response.Error(c, err)
		return
	}

	b, err := h.service.GetByID(c.Request.Context(), identity.UserID(c), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, NewBookingResponse(b))
}

func (h *Handler) ListByBooker(c *gin.Context) {
	h.list(c, h.service.ListByBooker)
}

func (h *Handler) ListByOwner(c *gin.Context) {
	h.list(c, h.service.ListByOwner)
}

type listFn func(ctx context.Context, userID int64, stateToken string, pg request.Paging) ([]*booking.Booking, error)

func (h *Handler) list(c *gin.Context, fn listFn) {
	var pg request.Paging
	if err := c.ShouldBindQuery(&pg); err != nil {
		response.Error(c, apperror.InvalidInput("invalid paging parameters"))
		return
	}
	state := c.DefaultQuery("state", string(booking.StateAll))

	bookings, err := fn(c.Request.Context(), identity.UserID(c), state, pg)
	if err != nil {
		response.Error(c, err)
		return
	}

	items := make([]BookingResponse, len(bookings))
	for i, b := range bookings {
		items[i] = NewBookingResponse(b)
	}
	c.JSON(http.StatusOK, items)
}
