package pagination

import (
	"net/url"
	"strconv"
)

// PageRequest holds the page selection parsed from query strings and
// forwarded to the backend.
type PageRequest struct {
	Page     int `form:"page" binding:"omitempty,min=1"`
	PageSize int `form:"pageSize" binding:"omitempty,min=1,max=100"`
}

// Defaults fills in default values when page or pageSize are not provided.
func (p *PageRequest) Defaults() {
	if p.Page == 0 {
		p.Page = 1
	}
	if p.PageSize == 0 {
		p.PageSize = 10
	}
}

// Query returns the parameters in the backend's pagination contract.
func (p PageRequest) Query() url.Values {
	v := url.Values{}
	v.Set("pageNumber", strconv.Itoa(p.Page))
	v.Set("pageSize", strconv.Itoa(p.PageSize))
	return v
}

// Result is the backend's pagination envelope.
type Result[T any] struct {
	Data         []T `json:"data"`
	TotalRecords int `json:"totalRecords"`
	PageNumber   int `json:"pageNumber"`
	PageSize     int `json:"pageSize"`
	TotalPages   int `json:"totalPages"`
}

// HasPrev reports whether an earlier page exists.
func (r Result[T]) HasPrev() bool { return r.PageNumber > 1 }

// HasNext reports whether a later page exists.
func (r Result[T]) HasNext() bool { return r.PageNumber < r.TotalPages }
