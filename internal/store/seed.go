package store

import "github.com/templui/momentum/internal/model"

func intp(n int) *int { return &n }

// Demo returns the initial state populated with the demo checklist and feeds.
func Demo() State {
	st := Initial()
	st.Actions = DemoActions()
	st.CircleFeed, st.FollowFeed = DemoFeeds()
	return st
}

func DemoActions() []model.ActionItem {
	return []model.ActionItem{
		{ID: "1", Title: "Morning workout", GoalTitle: "Lose 10 lbs", Type: model.ActionTypeCommitment, Time: "7:00", Streak: 7},
		{ID: "2", Title: "Meditation 10m", Type: model.ActionTypePerformance, Streak: 3},
	}
}

func DemoFeeds() (circle, follow []model.Post) {
	circle = []model.Post{
		{
			ID: "p1", User: "Alex", Avatar: "🏃", Visibility: model.VisibilityCircle, Type: model.PostTypeCheckin,
			Content: "Crushed HIIT 💪", ActionTitle: "Morning workout", Goal: "Lose 10 lbs", Streak: intp(8), GoalColor: "#10B981",
			Reactions: model.Reactions{"👏": 5, "💪": 3, "🔥": 4}, Time: "2h",
		},
		{
			ID: "p3", User: "Jordan", Avatar: "🧘", Visibility: model.VisibilityCircle, Type: model.PostTypeCheckin,
			Content: "Finding peace in the chaos", ActionTitle: "Evening meditation", Goal: "Daily mindfulness", Streak: intp(21), GoalColor: "#8B5CF6",
			Reactions: model.Reactions{"🙏": 8, "✨": 5, "💜": 3}, Time: "4h",
		},
		{
			ID: "p5", User: "Taylor", Avatar: "📚", Visibility: model.VisibilityCircle, Type: model.PostTypeStatus,
			Content:   "Just finished Chapter 7 of Atomic Habits. The compound effect is real!",
			Reactions: model.Reactions{"🧠": 6, "💡": 4, "👍": 7}, Time: "5h",
		},
		{
			ID: "p7", User: "Cameron", Avatar: "🎨", Visibility: model.VisibilityCircle, Type: model.PostTypePhoto,
			Content: "Morning light hitting just right ☀️", PhotoURI: "https://picsum.photos/400/300",
			Reactions: model.Reactions{"😍": 12, "🌟": 8, "📸": 3}, Time: "6h",
		},
		{
			ID: "p9", User: "Riley", Avatar: "💼", Visibility: model.VisibilityCircle, Type: model.PostTypeCheckin,
			Content: "Deep work session complete!", ActionTitle: "Focus block", Goal: "Launch side project", Streak: intp(15), GoalColor: "#FFD700",
			Reactions: model.Reactions{"🚀": 9, "💻": 6, "🎯": 4}, Time: "8h",
		},
		{
			ID: "p11", User: "Quinn", Avatar: "🍳", Visibility: model.VisibilityCircle, Type: model.PostTypeStatus,
			Content:   "Meal prepped for the entire week! Future me will thank present me 🙌",
			Reactions: model.Reactions{"🥗": 10, "💪": 5}, Time: "12h",
		},
		{
			ID: "p13", User: "Blake", Avatar: "🏔️", Visibility: model.VisibilityCircle, Type: model.PostTypeCheckin,
			Content: "5AM club checking in!", ActionTitle: "Morning routine", Goal: "Build discipline", Streak: intp(30), GoalColor: "#FF6B6B",
			Reactions: model.Reactions{"🌅": 7, "⏰": 4, "🔥": 11}, Time: "1d",
		},
	}

	follow = []model.Post{
		{
			ID: "p2", User: "Jordan", Avatar: "🧑‍🏫", Visibility: model.VisibilityFollow, Type: model.PostTypeStatus,
			Content: "Hardest thing about today was saying no to sweets 😅", Reactions: model.Reactions{"👏": 2}, Time: "1h",
		},
		{
			ID: "p4", User: "Morgan", Avatar: "🎯", Visibility: model.VisibilityFollow, Type: model.PostTypeStatus,
			Content:   "Sometimes the biggest win is just showing up. Even when you don't feel like it.",
			Reactions: model.Reactions{"💯": 15, "❤️": 8, "🙌": 6}, Time: "3h",
		},
		{
			ID: "p6", User: "Dakota", Avatar: "🌱", Visibility: model.VisibilityFollow, Type: model.PostTypeCheckin,
			Content: "Day 1 again, but that's okay", ActionTitle: "No social media", Goal: "Digital detox", Streak: intp(1), GoalColor: "#06B6D4",
			Reactions: model.Reactions{"💪": 18, "🤗": 12, "⭐": 5}, Time: "5h",
		},
		{
			ID: "p8", User: "Avery", Avatar: "🏋️", Visibility: model.VisibilityFollow, Type: model.PostTypePhoto,
			Content: "New PR! 225lbs", PhotoURI: "https://picsum.photos/400/400",
			Reactions: model.Reactions{"💪": 25, "🔥": 20, "🎉": 15}, Time: "7h",
		},
		{
			ID: "p10", User: "Phoenix", Avatar: "🎸", Visibility: model.VisibilityFollow, Type: model.PostTypeAudio,
			Content: "Late night jam session 🎵", AudioURI: "sample.mp3",
			Reactions: model.Reactions{"🎶": 8, "🤘": 6, "🔥": 4}, Time: "10h",
		},
		{
			ID: "p12", User: "River", Avatar: "📖", Visibility: model.VisibilityFollow, Type: model.PostTypeStatus,
			Content:   "The comfort zone is a beautiful place, but nothing ever grows there 🌿",
			Reactions: model.Reactions{"🌱": 22, "💭": 10, "✨": 14}, Time: "14h",
		},
		{
			ID: "p14", User: "Sage", Avatar: "🧘‍♀️", Visibility: model.VisibilityFollow, Type: model.PostTypeCheckin,
			Content: "Breathwork changed everything", ActionTitle: "Morning breathwork", Goal: "Reduce anxiety", Streak: intp(45), GoalColor: "#A78BFA",
			Reactions: model.Reactions{"😌": 9, "🙏": 12}, Time: "1d",
		},
		{
			ID: "p15", User: "Drew", Avatar: "☕", Visibility: model.VisibilityFollow, Type: model.PostTypeStatus,
			Content:   "Coffee first, adulting second ☕ Who else is team caffeine?",
			Reactions: model.Reactions{"☕": 30, "😂": 15, "🙋": 20}, Time: "1d",
		},
	}
	return circle, follow
}
