package tests

import (
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	bookingHttp "github.com/itemshare/item-sharing-backend/internal/booking/http"
	itemHttp "github.com/itemshare/item-sharing-backend/internal/item/http"
)

func TestItemCRUDAndSearch(t *testing.T) {
	clearTables()

	owner := createTestUser(t, "owner", "owner@items.com")
	other := createTestUser(t, "other", "other@items.com")

	var itemID int64

	t.Run("Create Item: Validation", func(t *testing.T) {
		// Missing available flag
		w := executeRequest("POST", "/items", map[string]any{
			"name": "saw", "description": "a saw",
		}, owner.ID)
		assert.Equal(t, http.StatusBadRequest, w.Code, "available is required")

		// Missing identity header
		available := true
		wNoID := executeRequest("POST", "/items", itemHttp.CreateItemRequest{
			Name: "saw", Description: "a saw", Available: &available,
		}, 0)
		assert.Equal(t, http.StatusBadRequest, wNoID.Code)

		// Unknown owner
		wGhost := executeRequest("POST", "/items", itemHttp.CreateItemRequest{
			Name: "saw", Description: "a saw", Available: &available,
		}, 99999)
		assert.Equal(t, http.StatusNotFound, wGhost.Code)

		// Unknown request reference
		ghostRequest := int64(99999)
		wReq := executeRequest("POST", "/items", itemHttp.CreateItemRequest{
			Name: "saw", Description: "a saw", Available: &available, RequestID: &ghostRequest,
		}, owner.ID)
		assert.Equal(t, http.StatusNotFound, wReq.Code)
	})

	t.Run("Create Item: Success", func(t *testing.T) {
		available := true
		w := executeRequest("POST", "/items", itemHttp.CreateItemRequest{
			Name: "cordless drill", Description: "18V with two batteries", Available: &available,
		}, owner.ID)
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

		resp := decode[itemHttp.ItemResponse](t, w)
		assert.NotZero(t, resp.ID)
		assert.Equal(t, "cordless drill", resp.Name)
		assert.True(t, resp.Available)
		assert.Nil(t, resp.RequestID)

		itemID = resp.ID
	})

	t.Run("Update Item: Only Owner", func(t *testing.T) {
		name := "hammer drill"
		w := executeRequest("PATCH", itemPath(itemID), itemHttp.UpdateItemRequest{Name: &name}, other.ID)
		assert.Equal(t, http.StatusForbidden, w.Code, "Non-owner must not update the item")
	})

	t.Run("Update Item: Partial Fields", func(t *testing.T) {
		name := "hammer drill"
		w := executeRequest("PATCH", itemPath(itemID), itemHttp.UpdateItemRequest{Name: &name}, owner.ID)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		resp := decode[itemHttp.ItemResponse](t, w)
		assert.Equal(t, "hammer drill", resp.Name)
		assert.Equal(t, "18V with two batteries", resp.Description, "Untouched fields must survive")
		assert.True(t, resp.Available)

		// Flip availability only
		unavailable := false
		wFlip := executeRequest("PATCH", itemPath(itemID), itemHttp.UpdateItemRequest{Available: &unavailable}, owner.ID)
		require.Equal(t, http.StatusOK, wFlip.Code)
		assert.False(t, decode[itemHttp.ItemResponse](t, wFlip).Available)

		// Restore for search tests
		availableAgain := true
		executeRequest("PATCH", itemPath(itemID), itemHttp.UpdateItemRequest{Available: &availableAgain}, owner.ID)
	})

	t.Run("Update Item: Not Found", func(t *testing.T) {
		name := "x"
		w := executeRequest("PATCH", itemPath(99999), itemHttp.UpdateItemRequest{Name: &name}, owner.ID)
		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("Get Item: Any User May View", func(t *testing.T) {
		w := executeRequest("GET", itemPath(itemID), nil, other.ID)
		require.Equal(t, http.StatusOK, w.Code)

		resp := decode[itemHttp.ItemDetailResponse](t, w)
		assert.Equal(t, "hammer drill", resp.Name)
		assert.NotNil(t, resp.Comments)

		wMissing := executeRequest("GET", itemPath(99999), nil, other.ID)
		assert.Equal(t, http.StatusNotFound, wMissing.Code)
	})

	t.Run("Search: Matches Name and Description Case-Insensitively", func(t *testing.T) {
		createTestItem(t, owner.ID, "garden LADDER", true)
		createTestItem(t, other.ID, "tool box with ladder straps", true)
		// Unavailable items never appear in search results
		createTestItem(t, owner.ID, "ladder broken", false)

		w := executeRequest("GET", "/items/search?text=lAdDeR", nil, other.ID)
		require.Equal(t, http.StatusOK, w.Code)
		resp := decode[[]itemHttp.ItemResponse](t, w)
		require.Len(t, resp, 2)
		for _, it := range resp {
			assert.True(t, it.Available)
		}
	})

	t.Run("Search: Blank Text Yields Empty List", func(t *testing.T) {
		for _, query := range []string{"", "%20%20%20"} {
			w := executeRequest("GET", "/items/search?text="+query, nil, other.ID)
			require.Equal(t, http.StatusOK, w.Code)
			assert.Empty(t, decode[[]itemHttp.ItemResponse](t, w))
		}
	})
}

func TestItemBookingViewAndComments(t *testing.T) {
	clearTables()

	owner := createTestUser(t, "owner", "owner@comments.com")
	renter := createTestUser(t, "renter", "renter@comments.com")
	visitor := createTestUser(t, "visitor", "visitor@comments.com")

	item := createTestItem(t, owner.ID, "projector", true)

	now := time.Now().UTC().Truncate(time.Second)

	// A finished rental and an upcoming one
	past := executeRequest("POST", "/bookings", bookingHttp.CreateBookingRequest{
		ItemID: item.ID, Start: now.Add(-48 * time.Hour), End: now.Add(-24 * time.Hour),
	}, renter.ID)
	require.Equal(t, http.StatusCreated, past.Code)
	pastID := decode[bookingHttp.BookingResponse](t, past).ID

	future := executeRequest("POST", "/bookings", bookingHttp.CreateBookingRequest{
		ItemID: item.ID, Start: now.Add(24 * time.Hour), End: now.Add(48 * time.Hour),
	}, renter.ID)
	require.Equal(t, http.StatusCreated, future.Code)
	futureID := decode[bookingHttp.BookingResponse](t, future).ID

	t.Run("Comment Requires a Finished Approved Rental", func(t *testing.T) {
		// The past booking is still WAITING, so commenting is premature
		w := executeRequest("POST", itemPath(item.ID)+"/comment", itemHttp.CreateCommentRequest{Text: "great"}, renter.ID)
		assert.Equal(t, http.StatusBadRequest, w.Code, "Waiting bookings must not unlock commenting")
	})

	// Approve both rentals
	for _, id := range []int64{pastID, futureID} {
		w := executeRequest("PATCH", bookingPath(id)+"?approved=true", nil, owner.ID)
		require.Equal(t, http.StatusOK, w.Code)
	}

	t.Run("Comment: Success After the Rental Ends", func(t *testing.T) {
		w := executeRequest("POST", itemPath(item.ID)+"/comment", itemHttp.CreateCommentRequest{Text: "worked flawlessly"}, renter.ID)
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

		resp := decode[itemHttp.CommentResponse](t, w)
		assert.NotZero(t, resp.ID)
		assert.Equal(t, "worked flawlessly", resp.Text)
		assert.Equal(t, "renter", resp.AuthorName)
		assert.False(t, resp.Created.IsZero())
	})

	t.Run("Comment: Rejected Without Any Rental", func(t *testing.T) {
		w := executeRequest("POST", itemPath(item.ID)+"/comment", itemHttp.CreateCommentRequest{Text: "never used it"}, visitor.ID)
		assert.Equal(t, http.StatusBadRequest, w.Code)

		// An approved but unfinished rental is not enough either: only the
		// past booking belongs to the renter, the future one has not ended.
		wEmpty := executeRequest("POST", itemPath(item.ID)+"/comment", itemHttp.CreateCommentRequest{Text: ""}, renter.ID)
		assert.Equal(t, http.StatusBadRequest, wEmpty.Code, "Blank comment text is invalid")
	})

	t.Run("Owner Sees Last and Next Booking", func(t *testing.T) {
		w := executeRequest("GET", itemPath(item.ID), nil, owner.ID)
		require.Equal(t, http.StatusOK, w.Code)

		resp := decode[itemHttp.ItemDetailResponse](t, w)
		require.NotNil(t, resp.LastBooking)
		require.NotNil(t, resp.NextBooking)
		assert.Equal(t, pastID, resp.LastBooking.ID)
		assert.Equal(t, renter.ID, resp.LastBooking.BookerID)
		assert.Equal(t, futureID, resp.NextBooking.ID)

		require.Len(t, resp.Comments, 1)
		assert.Equal(t, "worked flawlessly", resp.Comments[0].Text)
	})

	t.Run("Non-Owner Sees Comments but No Bookings", func(t *testing.T) {
		for _, viewer := range []int64{renter.ID, visitor.ID} {
			w := executeRequest("GET", itemPath(item.ID), nil, viewer)
			require.Equal(t, http.StatusOK, w.Code)

			resp := decode[itemHttp.ItemDetailResponse](t, w)
			assert.Nil(t, resp.LastBooking, "Booking refs are owner-only")
			assert.Nil(t, resp.NextBooking, "Booking refs are owner-only")
			require.Len(t, resp.Comments, 1)
		}
	})

	t.Run("Owner List Matches the Single Item View", func(t *testing.T) {
		w := executeRequest("GET", "/items", nil, owner.ID)
		require.Equal(t, http.StatusOK, w.Code)

		resp := decode[[]itemHttp.ItemDetailResponse](t, w)
		require.Len(t, resp, 1)

		single := executeRequest("GET", itemPath(item.ID), nil, owner.ID)
		detail := decode[itemHttp.ItemDetailResponse](t, single)

		assert.Equal(t, detail.LastBooking, resp[0].LastBooking)
		assert.Equal(t, detail.NextBooking, resp[0].NextBooking)
		assert.Equal(t, detail.Comments, resp[0].Comments)
	})
}
