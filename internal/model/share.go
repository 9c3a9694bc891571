package model

// ShareDraft is the in-progress content of the share composer.
type ShareDraft struct {
	Type        PostType   `json:"type"`
	Visibility  Visibility `json:"visibility,omitempty"`
	Text        string     `json:"text,omitempty"`
	PromptSeed  string     `json:"promptSeed,omitempty"`
	PhotoURI    string     `json:"photoUri,omitempty"`
	AudioURI    string     `json:"audioUri,omitempty"`
	ActionTitle string     `json:"actionTitle,omitempty"`
	Goal        string     `json:"goal,omitempty"`
	Streak      *int       `json:"streak,omitempty"`
	GoalColor   string     `json:"goalColor,omitempty"`
}

func (d *ShareDraft) Clone() *ShareDraft {
	if d == nil {
		return nil
	}
	cp := *d
	if d.Streak != nil {
		s := *d.Streak
		cp.Streak = &s
	}
	return &cp
}

// AppPhase gates the app between the setup wizard and the main tabs.
type AppPhase string

const (
	AppPhaseSetup AppPhase = "setup"
	AppPhaseMain  AppPhase = "main"
)

func (p AppPhase) Valid() bool {
	return p == AppPhaseSetup || p == AppPhaseMain
}
