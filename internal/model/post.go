package model

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"golang.org/x/text/unicode/norm"
)

type PostType string

const (
	PostTypeCheckin PostType = "checkin"
	PostTypeStatus  PostType = "status"
	PostTypePhoto   PostType = "photo"
	PostTypeAudio   PostType = "audio"
	PostTypeGoal    PostType = "goal"
)

func (t PostType) Valid() bool {
	switch t {
	case PostTypeCheckin, PostTypeStatus, PostTypePhoto, PostTypeAudio, PostTypeGoal:
		return true
	}
	return false
}

// Visibility selects which feed a post lives in.
type Visibility string

const (
	VisibilityCircle Visibility = "circle"
	VisibilityFollow Visibility = "follow"
)

func (v Visibility) Valid() bool {
	return v == VisibilityCircle || v == VisibilityFollow
}

type Post struct {
	ID          string     `json:"id" db:"id"`
	User        string     `json:"user" db:"user_name"`
	Avatar      string     `json:"avatar,omitempty" db:"avatar"`
	Type        PostType   `json:"type" db:"type"`
	Visibility  Visibility `json:"visibility" db:"visibility"`
	Content     string     `json:"content" db:"content"`
	Time        string     `json:"time" db:"time_label"`
	Reactions   Reactions  `json:"reactions" db:"reactions"`
	Comments    *int       `json:"comments,omitempty" db:"comments"`
	PhotoURI    string     `json:"photoUri,omitempty" db:"photo_uri"`
	AudioURI    string     `json:"audioUri,omitempty" db:"audio_uri"`
	ActionTitle string     `json:"actionTitle,omitempty" db:"action_title"`
	Goal        string     `json:"goal,omitempty" db:"goal"`
	Streak      *int       `json:"streak,omitempty" db:"streak"`
	GoalColor   string     `json:"goalColor,omitempty" db:"goal_color"`
}

// Clone copies the post including its reaction map.
func (p Post) Clone() Post {
	p.Reactions = p.Reactions.Clone()
	if p.Comments != nil {
		c := *p.Comments
		p.Comments = &c
	}
	if p.Streak != nil {
		s := *p.Streak
		p.Streak = &s
	}
	return p
}

// Reactions counts emoji reactions on a post. Counters only grow.
type Reactions map[string]int

// ReactionKey normalises an emoji so composed and decomposed forms share a counter.
func ReactionKey(emoji string) string {
	return norm.NFC.String(strings.TrimSpace(emoji))
}

func (r Reactions) Clone() Reactions {
	out := make(Reactions, len(r))
	for k, v := range r {
		out[k] = v
	}
	return out
}

// Incremented returns a new map with emoji bumped by one.
func (r Reactions) Incremented(emoji string) Reactions {
	out := r.Clone()
	out[ReactionKey(emoji)]++
	return out
}

func (r Reactions) Value() (driver.Value, error) {
	if r == nil {
		return "{}", nil
	}
	b, err := json.Marshal(map[string]int(r))
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

func (r *Reactions) Scan(src any) error {
	var b []byte
	switch v := src.(type) {
	case nil:
		*r = Reactions{}
		return nil
	case string:
		b = []byte(v)
	case []byte:
		b = v
	default:
		return fmt.Errorf("reactions: unsupported type %T", src)
	}
	m := map[string]int{}
	if len(b) > 0 {
		if err := json.Unmarshal(b, &m); err != nil {
			return errors.Join(errors.New("reactions: invalid json"), err)
		}
	}
	*r = m
	return nil
}
