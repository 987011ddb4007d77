package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/itemshare/item-sharing-backend/internal/identity"
	"github.com/itemshare/item-sharing-backend/internal/itemrequest"
	"github.com/itemshare/item-sharing-backend/internal/pkg/apperror"
	"github.com/itemshare/item-sharing-backend/internal/pkg/request"
	"github.com/itemshare/item-sharing-backend/internal/pkg/response"
)

type Handler struct {
	service itemrequest.Service
}

func NewHandler(service itemrequest.Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) Create(c *gin.Context) {
	var body CreateItemRequestRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		response.Error(c, apperror.InvalidInput("invalid request body"))
		return
	}

	req, err := h.service.Create(c.Request.Context(), identity.UserID(c), body.Description)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusCreated, NewCreatedResponse(req))
}

func (h *Handler) Get(c *gin.Context) {
	id, err := request.PathID(c, "id")
	if err != nil {
		response.Error(c, err)
		return
	}

	req, err := h.service.GetByID(c.Request.Context(), identity.UserID(c), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, NewItemRequestResponse(req))
}

func (h *Handler) ListOwn(c *gin.Context) {
	requests, err := h.service.GetOwn(c.Request.Context(), identity.UserID(c))
	if err != nil {
		response.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, toResponses(requests))
}

func (h *Handler) ListAll(c *gin.Context) {
	var pg request.Paging
	if err := c.ShouldBindQuery(&pg); err != nil {
		response.Error(c, apperror.InvalidInput("invalid paging parameters"))
		return
	}

	requests, err := h.service.GetAll(c.Request.Context(), identity.UserID(c), pg)
	if err != nil {
		response.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, toResponses(requests))
}

func toResponses(requests []*itemrequest.WithItems) []ItemRequestResponse {
	out := make([]ItemRequestResponse, len(requests))
	for i, req := range requests {
		out[i] = NewItemRequestResponse(req)
	}
	return out
}
