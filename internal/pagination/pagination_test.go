package pagination

import "testing"

func TestValidateLimitClampsNonPositive(t *testing.T) {
	for _, limit := range []int{-10, -1, 0} {
		if got := ValidateLimit(limit); got != 1 {
			t.Fatalf("ValidateLimit(%d) = %d, want 1", limit, got)
		}
	}
	if got := ValidateLimit(25); got != 25 {
		t.Fatalf("ValidateLimit(25) = %d, want 25", got)
	}
}

func TestValidatePageEmptyTotalAlwaysFirstPage(t *testing.T) {
	for _, page := range []int{-5, 0, 1, 2, 99} {
		if got := ValidatePage(page, 0, 10); got != 1 {
			t.Fatalf("ValidatePage(%d, 0, 10) = %d, want 1", page, got)
		}
	}
}

func TestValidatePageIdentityOnValidInput(t *testing.T) {
	// 25 rows, limit 10 -> pages 1..3 are valid
	for page := 1; page <= 3; page++ {
		if got := ValidatePage(page, 25, 10); got != page {
			t.Fatalf("ValidatePage(%d, 25, 10) = %d, want %d", page, got, page)
		}
	}
}

func TestValidatePageOutOfRangeResets(t *testing.T) {
	if got := ValidatePage(4, 25, 10); got != 1 {
		t.Fatalf("page past last_page should reset to 1, got %d", got)
	}
	if got := ValidatePage(0, 25, 10); got != 1 {
		t.Fatalf("page below 1 should reset to 1, got %d", got)
	}
}

func TestPaginateEnvelopeMiddlePage(t *testing.T) {
	env := Paginate([]string{"a", "b"}, 25, 2, 10)

	if env.Meta.Total != 25 || env.Meta.LastPage != 3 || env.Meta.CurrentPage != 2 || env.Meta.Limit != 10 {
		t.Fatalf("unexpected meta: %+v", env.Meta)
	}
	if env.Meta.Prev == nil || *env.Meta.Prev != 1 {
		t.Fatalf("prev should be 1, got %v", env.Meta.Prev)
	}
	if env.Meta.Next == nil || *env.Meta.Next != 3 {
		t.Fatalf("next should be 3, got %v", env.Meta.Next)
	}
}

func TestPaginateEnvelopeBoundaries(t *testing.T) {
	first := Paginate([]int{1}, 25, 1, 10)
	if first.Meta.Prev != nil {
		t.Fatalf("prev must be null on page 1, got %v", *first.Meta.Prev)
	}
	if first.Meta.Next == nil {
		t.Fatalf("next must be set on page 1 of 3")
	}

	last := Paginate([]int{1}, 25, 3, 10)
	if last.Meta.Next != nil {
		t.Fatalf("next must be null on the last page, got %v", *last.Meta.Next)
	}
	if last.Meta.Prev == nil || *last.Meta.Prev != 2 {
		t.Fatalf("prev should be 2 on page 3, got %v", last.Meta.Prev)
	}
}

func TestPaginateEmptyResult(t *testing.T) {
	env := Paginate[int](nil, 0, 7, 10)

	if env.Meta.Total != 0 || env.Meta.LastPage != 0 || env.Meta.CurrentPage != 1 {
		t.Fatalf("unexpected meta for empty result: %+v", env.Meta)
	}
	if env.Meta.Prev != nil || env.Meta.Next != nil {
		t.Fatalf("prev and next must be null for an empty result")
	}
	if env.Data == nil || len(env.Data) != 0 {
		t.Fatalf("data must be an empty slice, not nil")
	}
}

func TestPaginateClampsRawInput(t *testing.T) {
	env := Paginate([]int{1, 2, 3, 4, 5}, 5, 99, 0)

	if env.Meta.CurrentPage != 1 {
		t.Fatalf("out-of-range page should clamp to 1, got %d", env.Meta.CurrentPage)
	}
	if env.Meta.Limit != 1 {
		t.Fatalf("zero limit should clamp to 1, got %d", env.Meta.Limit)
	}
}

func TestOffset(t *testing.T) {
	if got := Offset(1, 10); got != 0 {
		t.Fatalf("Offset(1,10) = %d, want 0", got)
	}
	if got := Offset(3, 10); got != 20 {
		t.Fatalf("Offset(3,10) = %d, want 20", got)
	}
}
