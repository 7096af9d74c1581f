package tracking

import "testing"

func TestDefaultCatalogHasSevenOrderedStatuses(t *testing.T) {
	c := Default()
	all := c.All()

	want := []string{
		WaitingForSales,
		Contacted,
		CollectDocuments,
		WaitingForApproval,
		Approved,
		Rejected,
		Canceled,
	}

	if len(all) != len(want) {
		t.Fatalf("catalog has %d statuses, want %d", len(all), len(want))
	}
	for i, name := range want {
		if all[i].Name != name {
			t.Fatalf("status[%d] = %s, want %s", i, all[i].Name, name)
		}
		if all[i].ID != i+1 {
			t.Fatalf("status %s has id %d, want %d", name, all[i].ID, i+1)
		}
	}
}

func TestByIDRejectsUnknown(t *testing.T) {
	c := Default()

	if _, ok := c.ByID(0); ok {
		t.Fatalf("id 0 should not be in the catalog")
	}
	if _, ok := c.ByID(8); ok {
		t.Fatalf("id 8 should not be in the catalog")
	}
	s, ok := c.ByID(2)
	if !ok || s.Name != Contacted {
		t.Fatalf("ByID(2) = %+v ok=%v, want CONTACTED", s, ok)
	}
}

func TestDisplayName(t *testing.T) {
	cases := map[string]string{
		WaitingForSales:    "Waiting For Sales",
		Contacted:          "Contacted",
		CollectDocuments:   "Collect Documents",
		WaitingForApproval: "Waiting For Approval",
		Approved:           "Approved",
		Rejected:           "Rejected",
		Canceled:           "Canceled",
	}
	for code, want := range cases {
		if got := DisplayName(code); got != want {
			t.Fatalf("DisplayName(%s) = %q, want %q", code, got, want)
		}
	}
}

func TestReplaceSwapsCatalog(t *testing.T) {
	c := Default()
	c.Replace([]Status{{ID: 42, Name: "ON_HOLD"}})

	if _, ok := c.ByID(1); ok {
		t.Fatalf("old entries must be gone after Replace")
	}
	if s, ok := c.ByID(42); !ok || s.Name != "ON_HOLD" {
		t.Fatalf("replacement entry missing, got %+v ok=%v", s, ok)
	}
	if len(c.All()) != 1 {
		t.Fatalf("catalog should hold exactly the replacement entries")
	}
}
