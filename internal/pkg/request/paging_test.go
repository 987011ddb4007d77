package request

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/itemshare/item-sharing-backend/internal/pkg/apperror"
)

func TestPagingValidate(t *testing.T) {
	tests := []struct {
		name    string
		paging  Paging
		wantErr string
	}{
		{"defaults", Paging{From: 0, Size: 10}, ""},
		{"mid page", Paging{From: 7, Size: 3}, ""},
		{"negative from", Paging{From: -1, Size: 10}, "from must not be negative"},
		{"zero size", Paging{From: 0, Size: 0}, "size must be positive"},
		{"negative size", Paging{From: 0, Size: -5}, "size must be positive"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.paging.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}

			var appErr *apperror.AppError
			require.ErrorAs(t, err, &appErr)
			assert.Equal(t, apperror.KindInvalidInput, appErr.Kind)
			assert.Equal(t, tt.wantErr, appErr.Message)
		})
	}
}

// Offset is page aligned: the whole page containing row From is returned,
// not the rows starting at From.
func TestPagingOffset(t *testing.T) {
	tests := []struct {
		from, size int
		want       uint64
	}{
		{0, 10, 0},
		{5, 10, 0},  // row 5 lives on page 0
		{9, 10, 0},
		{10, 10, 10},
		{15, 10, 10}, // row 15 lives on page 1
		{20, 10, 20},
		{7, 3, 6},
		{1, 1, 1},
	}

	for _, tt := range tests {
		p := Paging{From: tt.from, Size: tt.size}
		assert.Equal(t, tt.want, p.Offset(), "from=%d size=%d", tt.from, tt.size)
		assert.Equal(t, uint64(tt.size), p.Limit())
	}
}
