// Package tracking holds the fixed catalog of financing tracking statuses.
// The catalog is reference data: seven entries, loaded once at process start
// and immutable for the process lifetime. Transitions between any two
// distinct statuses are allowed; the catalog defines valid states, not
// valid edges.
package tracking

import "strings"

type Status struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// Status codes as stored in tracking_statuses. IDs follow the seed order.
const (
	WaitingForSales    = "WAITING_FOR_SALES"
	Contacted          = "CONTACTED"
	CollectDocuments   = "COLLECT_DOCUMENTS"
	WaitingForApproval = "WAITING_FOR_APPROVAL"
	Approved           = "APPROVED"
	Rejected           = "REJECTED"
	Canceled           = "CANCELED"
)

// Catalog is an injected read-only status provider.
type Catalog struct {
	statuses []Status
	byID     map[int]Status
}

// Default returns the catalog matching the seeded tracking_statuses rows.
func Default() *Catalog {
	return New([]Status{
		{ID: 1, Name: WaitingForSales},
		{ID: 2, Name: Contacted},
		{ID: 3, Name: CollectDocuments},
		{ID: 4, Name: WaitingForApproval},
		{ID: 5, Name: Approved},
		{ID: 6, Name: Rejected},
		{ID: 7, Name: Canceled},
	})
}

func New(statuses []Status) *Catalog {
	byID := make(map[int]Status, len(statuses))
	for _, s := range statuses {
		byID[s.ID] = s
	}
	return &Catalog{statuses: statuses, byID: byID}
}

// All returns the statuses in catalog order. Callers must not mutate the
// returned slice.
func (c *Catalog) All() []Status {
	out := make([]Status, len(c.statuses))
	copy(out, c.statuses)
	return out
}

// ByID looks up a status; ok is false for ids outside the catalog.
func (c *Catalog) ByID(id int) (Status, bool) {
	s, ok := c.byID[id]
	return s, ok
}

// Replace swaps the catalog contents. This is the explicit invalidation hook
// for administrative changes; nothing in the request path calls it.
func (c *Catalog) Replace(statuses []Status) {
	next := New(statuses)
	c.statuses = next.statuses
	c.byID = next.byID
}

// DisplayName turns a status code into its human form:
// WAITING_FOR_SALES -> "Waiting For Sales".
func DisplayName(code string) string {
	words := strings.Split(strings.ToLower(code), "_")
	for i, w := range words {
		if w == "" {
			continue
		}
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}
