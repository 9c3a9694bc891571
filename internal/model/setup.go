package model

type Privacy string

const (
	PrivacyPrivate Privacy = "private"
	PrivacyPublic  Privacy = "public"
)

type Frequency string

const (
	FrequencyDaily    Frequency = "daily"
	FrequencyWeekly   Frequency = "weekly"
	FrequencyWeekdays Frequency = "weekdays"
	FrequencyCustom   Frequency = "custom"
)

func (f Frequency) Valid() bool {
	switch f {
	case FrequencyDaily, FrequencyWeekly, FrequencyWeekdays, FrequencyCustom:
		return true
	}
	return false
}

type GoalDraft struct {
	Title    string  `json:"title"`
	Metric   string  `json:"metric"`
	Deadline string  `json:"deadline"`
	Why      string  `json:"why,omitempty"`
	Privacy  Privacy `json:"privacy,omitempty"`
}

type PerformanceHabit struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Time     string `json:"time,omitempty"`
	Reminder bool   `json:"reminder,omitempty"`
}

type Milestone struct {
	Name    string `json:"name"`
	Outcome string `json:"outcome"`
	Date    string `json:"date"`
}

// PlannedAction is an action defined in the wizard. One-time actions carry a
// Date, commitments a Frequency.
type PlannedAction struct {
	Type          ActionType `json:"type"`
	Name          string     `json:"name"`
	Why           string     `json:"why,omitempty"`
	Date          string     `json:"date,omitempty"`
	Frequency     Frequency  `json:"frequency,omitempty"`
	MilestoneLink string     `json:"milestoneLink,omitempty"`
}

type SetupState struct {
	CurrentStep       int                `json:"currentStep"`
	GoalData          GoalDraft          `json:"goalData"`
	PerformanceHabits []PerformanceHabit `json:"performanceHabits"`
	Milestones        []Milestone        `json:"milestones"`
	Actions           []PlannedAction    `json:"actions"`
}

// NewSetupState returns the wizard's initial value: step 0, nothing filled in.
func NewSetupState() SetupState {
	return SetupState{
		PerformanceHabits: []PerformanceHabit{},
		Milestones:        []Milestone{},
		Actions:           []PlannedAction{},
	}
}

func (s SetupState) Clone() SetupState {
	s.PerformanceHabits = append([]PerformanceHabit{}, s.PerformanceHabits...)
	s.Milestones = append([]Milestone{}, s.Milestones...)
	s.Actions = append([]PlannedAction{}, s.Actions...)
	return s
}
