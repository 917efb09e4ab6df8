package status

import (
	"testing"
	"time"
)

func TestLabels(t *testing.T) {
	cases := map[Code]string{
		InProgress:     "In Progress",
		Completed:      "Completed",
		UnderReview:    "Under Review",
		RevisionNeeded: "Revision Needed",
		Approved:       "Approved",
		Failed:         "Failed",
		NotStarted:     "Not Started",
		Code(6):        "Pending",
		Code(42):       "Pending",
	}
	for code, want := range cases {
		if got := code.Label(); got != want {
			t.Fatalf("code %d: expected %q, got %q", int(code), want, got)
		}
	}
}

func TestParse(t *testing.T) {
	if _, err := Parse(2); err == nil {
		t.Fatalf("expected legacy code 2 to be rejected")
	}
	if _, err := Parse(6); err == nil {
		t.Fatalf("expected unused code 6 to be rejected")
	}
	c, err := Parse(5)
	if err != nil || c != Approved {
		t.Fatalf("expected Approved, got %v (%v)", c, err)
	}
}

func TestLatest(t *testing.T) {
	base := time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)

	if _, ok := Latest(nil); ok {
		t.Fatalf("expected no entry for empty ledger")
	}

	t.Run("later timestamp wins regardless of id", func(t *testing.T) {
		entries := []Entry{
			{ID: 1, Code: InProgress, CreatedAt: base},
			{ID: 3, Code: UnderReview, CreatedAt: base.Add(-time.Minute)},
			{ID: 2, Code: RevisionNeeded, CreatedAt: base.Add(time.Minute)},
		}
		cur, _ := Latest(entries)
		if cur.Code != RevisionNeeded {
			t.Fatalf("expected Revision Needed, got %s", cur.Code)
		}
	})

	t.Run("equal timestamps fall back to id", func(t *testing.T) {
		entries := []Entry{
			{ID: 7, Code: Approved, CreatedAt: base},
			{ID: 4, Code: UnderReview, CreatedAt: base},
		}
		cur, _ := Latest(entries)
		if cur.ID != 7 {
			t.Fatalf("expected id 7, got %d", cur.ID)
		}
	})
}

func TestDerive(t *testing.T) {
	tests := []struct {
		name    string
		project Code
		phases  []PhaseState
		want    Code
	}{
		{"no phases uses ledger", 0, nil, NotStarted},
		{"nothing started", InProgress, []PhaseState{{}, {}}, InProgress},
		{"one started", NotStarted, []PhaseState{{}, {Started: true, Code: UnderReview}, {}}, InProgress},
		{"failed wins", InProgress, []PhaseState{{Started: true, Code: Approved}, {Started: true, Code: Failed}}, Failed},
		{"all approved", InProgress, []PhaseState{{Started: true, Code: Approved}, {Started: true, Code: Approved}}, Approved},
		{"approved but one not started", InProgress, []PhaseState{{Started: true, Code: Approved}, {}}, InProgress},
		{"legacy completed counts as closed", InProgress, []PhaseState{{Started: true, Code: Completed}, {Started: true, Code: Approved}}, Approved},
		{"revision is not closed", InProgress, []PhaseState{{Started: true, Code: Approved}, {Started: true, Code: RevisionNeeded}}, InProgress},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Derive(tt.project, tt.phases); got != tt.want {
				t.Fatalf("expected %s, got %s", tt.want, got)
			}
		})
	}
}

func TestTerminal(t *testing.T) {
	for _, c := range []Code{Approved, Failed, Completed} {
		if !c.Terminal() {
			t.Errorf("%s should be terminal", c)
		}
	}
	for _, c := range []Code{InProgress, UnderReview, RevisionNeeded, NotStarted} {
		if c.Terminal() {
			t.Errorf("%s should not be terminal", c)
		}
	}
}
