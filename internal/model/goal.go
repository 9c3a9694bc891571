package model

type GoalStatus string

const (
	GoalStatusOnTrack        GoalStatus = "On Track"
	GoalStatusNeedsAttention GoalStatus = "Needs Attention"
	GoalStatusCritical       GoalStatus = "Critical"
)

func (s GoalStatus) Valid() bool {
	switch s {
	case GoalStatusOnTrack, GoalStatusNeedsAttention, GoalStatusCritical:
		return true
	}
	return false
}

type Goal struct {
	ID          string     `json:"id" db:"id"`
	Title       string     `json:"title" db:"title"`
	Metric      string     `json:"metric" db:"metric"`
	Deadline    string     `json:"deadline" db:"deadline"`
	Why         string     `json:"why,omitempty" db:"why"`
	Consistency int        `json:"consistency" db:"consistency"`
	Status      GoalStatus `json:"status" db:"status"`
}
