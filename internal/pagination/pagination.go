// Package pagination converts raw (page, limit) query parameters plus a
// known total count into a bounded window and a {meta, data} envelope.
//
// Invalid inputs are clamped, never rejected: a non-positive limit becomes 1
// and an out-of-range page becomes 1. This leniency is deliberate and is the
// only place in the backend where bad input is auto-corrected instead of
// raising a validation error.
package pagination

// DefaultLimit is applied by handlers when the query string omits limit.
const DefaultLimit = 10

type Meta struct {
	Total       int  `json:"total"`
	LastPage    int  `json:"last_page"`
	CurrentPage int  `json:"current_page"`
	Limit       int  `json:"limit"`
	Prev        *int `json:"prev"`
	Next        *int `json:"next"`
}

type Envelope[T any] struct {
	Meta Meta `json:"meta"`
	Data []T  `json:"data"`
}

// ValidateLimit clamps a non-positive limit to 1.
func ValidateLimit(limit int) int {
	if limit < 1 {
		return 1
	}
	return limit
}

// ValidatePage resets page to 1 when it falls outside [1, ceil(total/limit)].
// With total == 0 the upper bound is 0, so every page normalizes to 1: an
// empty result set always reports page 1.
func ValidatePage(page, total, limit int) int {
	if page < 1 || page > lastPage(total, limit) {
		return 1
	}
	return page
}

// Paginate wraps data in the response envelope. It re-applies both clamps so
// the emitted meta is consistent even if the caller skipped validation.
func Paginate[T any](data []T, total, page, limit int) Envelope[T] {
	limit = ValidateLimit(limit)
	page = ValidatePage(page, total, limit)

	last := lastPage(total, limit)

	var prev, next *int
	if page > 1 {
		p := page - 1
		prev = &p
	}
	if total != 0 && page != last {
		n := page + 1
		next = &n
	}

	if data == nil {
		data = []T{}
	}

	return Envelope[T]{
		Meta: Meta{
			Total:       total,
			LastPage:    last,
			CurrentPage: page,
			Limit:       limit,
			Prev:        prev,
			Next:        next,
		},
		Data: data,
	}
}

// Offset returns the zero-based row offset for a validated (page, limit).
func Offset(page, limit int) int {
	return (page - 1) * limit
}

func lastPage(total, limit int) int {
	if limit < 1 {
		limit = 1
	}
	if total <= 0 {
		return 0
	}
	return (total + limit - 1) / limit
}
