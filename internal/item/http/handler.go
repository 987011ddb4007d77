package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/itemshare/item-sharing-backend/internal/identity"
	"github.com/itemshare/item-sharing-backend/internal/item"
	"github.com/itemshare/item-sharing-backend/internal/pkg/apperror"
	"github.com/itemshare/item-sharing-backend/internal/pkg/request"
	"github.com/itemshare/item-sharing-backend/internal/pkg/response"
)

type Handler struct {
	service item.Service
}

func NewHandler(service item.Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) Create(c *gin.Context) {
	var body CreateItemRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		response.Error(c, apperror.InvalidInput("invalid request body"))
		return
	}

	it, err := h.service.Create(c.Request.Context(), identity.UserID(c), item.CreateRequest{
		Name:        body.Name,
		Description: body.Description,
		Available:   *body.Available,
		RequestID:   body.RequestID,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusCreated, NewItemResponse(it))
}

func (h *Handler) Update(c *gin.Context) {
	id, err := request.PathID(c, "id")
	if err != nil {
		response.Error(c, err)
		return
	}

	var body UpdateItemRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		response.Error(c, apperror.InvalidInput("invalid request body"))
		return
	}

	it, err := h.service.Update(c.Request.Context(), id, identity.UserID(c), item.UpdateRequest{
		Name:        body.Name,
		Description: body.Description,
		Available:   body.Available,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, NewItemResponse(it))
}

func (h *Handler) Get(c *gin.Context) {
	id, err := request.PathID(c, "id")
	if err != nil {
		response.Error(c, err)
		return
	}

	detail, err := h.service.GetByID(c.Request.Context(), id, identity.UserID(c))
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, NewItemDetailResponse(detail))
}

func (h *Handler) ListOwn(c *gin.Context) {
	var pg request.Paging
	if err := c.ShouldBindQuery(&pg); err != nil {
		response.Error(c, apperror.InvalidInput("invalid paging parameters"))
		return
	}

	details, err := h.service.GetUserItems(c.Request.Context(), identity.UserID(c), pg)
	if err != nil {
		response.Error(c, err)
		return
	}

	items := make([]ItemDetailResponse, len(details))
	for i, d := range details {
		items[i] = NewItemDetailResponse(d)
	}
	c.JSON(http.StatusOK, items)
}

func (h *Handler) Search(c *gin.Context) {
	var pg request.Paging
	if err := c.ShouldBindQuery(&pg); err != nil {
		response.Error(c, apperror.InvalidInput("invalid paging parameters"))
		return
	}

	found, err := h.service.Search(c.Request.Context(), c.Query("text"), pg)
	if err != nil {
		response.Error(c, err)
		return
	}

	items := make([]ItemResponse, len(found))
	for i, it := range found {
		items[i] = NewItemResponse(it)
	}
	c.JSON(http.StatusOK, items)
}

func (h *Handler) AddComment(c *gin.Context) {
	id, err := request.PathID(c, "id")
	if err != nil {
		response.Error(c, err)
		return
	}

	var body CreateCommentRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		response.Error(c, apperror.InvalidInput("invalid request body"))
		return
	}

	cm, err := h.service.AddComment(c.Request.Context(), id, identity.UserID(c), body.Text)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusCreated, NewCommentResponse(cm))
}
