package model

type ActionType string

const (
	ActionTypeCommitment  ActionType = "commitment"
	ActionTypePerformance ActionType = "performance"
	ActionTypeOneTime     ActionType = "one-time"
)

func (t ActionType) Valid() bool {
	switch t {
	case ActionTypeCommitment, ActionTypePerformance, ActionTypeOneTime:
		return true
	}
	return false
}

// ActionItem is one entry of today's checklist.
type ActionItem struct {
	ID        string     `json:"id" db:"id"`
	Title     string     `json:"title" db:"title"`
	GoalTitle string     `json:"goalTitle,omitempty" db:"goal_title"`
	Type      ActionType `json:"type" db:"type"`
	Time      string     `json:"time,omitempty" db:"time"`
	Streak    int        `json:"streak" db:"streak"`
	Done      bool       `json:"done" db:"done"`
}

// Consistent reports whether the item can round-trip through two toggles.
// A completed item has counted itself in its streak, so it needs one.
func (a ActionItem) Consistent() bool {
	return a.Streak >= 0 && (!a.Done || a.Streak > 0)
}

// Toggled returns a copy with Done flipped and Streak moved with it:
// +1 when completing, -1 when un-completing. Streak never goes below zero.
func (a ActionItem) Toggled() ActionItem {
	if a.Done {
		a.Done = false
		if a.Streak > 0 {
			a.Streak--
		}
		return a
	}
	a.Done = true
	a.Streak++
	return a
}
