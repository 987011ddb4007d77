package request

import "github.com/itemshare/item-sharing-backend/internal/pkg/apperror"

// Paging carries the offset/limit pair accepted by list endpoints.
// From is a zero-based item offset, Size the page size.
type Paging struct {
	From int `form:"from,default=0"`
	Size int `form:"size,default=10"`
}

// Validate checks the paging bounds shared by all list endpoints.
func (p Paging) Validate() error {
	if p.From < 0 {
		return apperror.InvalidInput("from must not be negative")
	}
	if p.Size < 1 {
		return apperror.InvalidInput("size must be positive")
	}
	return nil
}

// Limit returns the page size as required by SQL builders.
func (p Paging) Limit() uint64 {
	return uint64(p.Size)
}

// Offset translates From into a page-aligned row offset: the page holding
// row From is selected as a whole, so Offset is (From/Size)*Size rather
// than From itself.
func (p Paging) Offset() uint64 {
	return uint64(p.From/p.Size) * uint64(p.Size)
}
