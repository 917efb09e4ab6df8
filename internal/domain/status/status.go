package status

import (
	"fmt"
	"time"
)

// Code is a workflow status identifier stored on ledger rows.
type Code int

const (
	InProgress     Code = 1
	Completed      Code = 2 // legacy, readable but never written
	UnderReview    Code = 3
	RevisionNeeded Code = 4
	Approved       Code = 5
	Failed         Code = 7
	NotStarted     Code = 8
)

// LabelPending is shown for codes outside the known table.
const LabelPending = "Pending"

var labels = map[Code]string{
	InProgress:     "In Progress",
	Completed:      "Completed",
	UnderReview:    "Under Review",
	RevisionNeeded: "Revision Needed",
	Approved:       "Approved",
	Failed:         "Failed",
	NotStarted:     "Not Started",
}

func (c Code) Label() string {
	if l, ok := labels[c]; ok {
		return l
	}
	return LabelPending
}

// Known reports whether c has a label in the status table.
func (c Code) Known() bool {
	_, ok := labels[c]
	return ok
}

// Writable reports whether c may be appended to a ledger.
func (c Code) Writable() bool {
	return c.Known() && c != Completed
}

// Terminal reports whether c closes a phase: Approved, Failed or the legacy Completed.
func (c Code) Terminal() bool {
	return c == Approved || c == Failed || c == Completed
}

func (c Code) String() string {
	return fmt.Sprintf("%d (%s)", int(c), c.Label())
}

// Parse converts a raw integer into a writable Code.
func Parse(n int) (Code, error) {
	c := Code(n)
	if !c.Writable() {
		return 0, fmt.Errorf("status code %d is not writable", n)
	}
	return c, nil
}

// Scope identifies which ledger an entry belongs to.
type Scope string

const (
	ScopeProject Scope = "project"
	ScopePhase   Scope = "phase"
)

func (s Scope) Valid() bool {
	return s == ScopeProject || s == ScopePhase
}

// Entry is one immutable row of a status ledger.
type Entry struct {
	ID        uint      `json:"id"`
	Scope     Scope     `json:"scope"`
	ScopeID   uint      `json:"scope_id"`
	Code      Code      `json:"status_code"`
	ActorID   uint      `json:"actor_id"`
	CreatedAt time.Time `json:"created_at"`
}

func (e Entry) Label() string {
	return e.Code.Label()
}

// Newer reports whether e wins over other when choosing the current status.
// Later creation time wins; equal times fall back to the higher id.
func (e Entry) Newer(other Entry) bool {
	if !e.CreatedAt.Equal(other.CreatedAt) {
		return e.CreatedAt.After(other.CreatedAt)
	}
	return e.ID > other.ID
}

// Latest returns the current entry of a set of rows from one ledger.
func Latest(entries []Entry) (Entry, bool) {
	if len(entries) == 0 {
		return Entry{}, false
	}
	cur := entries[0]
	for _, e := range entries[1:] {
		if e.Newer(cur) {
			cur = e
		}
	}
	return cur, true
}
