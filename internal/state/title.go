package state

// Title is a ranked achievement label derived from lifetime statistics.
type Title string

const (
	TitleNovice               Title = "Novice"
	TitleStreakStarter        Title = "Streak Starter"
	TitleConsistentCompetitor Title = "Consistent Competitor"
	TitleRivalsBane           Title = "Rival's Bane"
	TitleDeepWorker           Title = "Deep Worker"
	TitleUnstoppableForce     Title = "Unstoppable Force"
	TitleFocusGrandmaster     Title = "Focus Grandmaster"
)

// AllTitles returns every title from lowest to highest rank.
func AllTitles() []Title {
	return []Title{
		TitleNovice,
		TitleStreakStarter,
		TitleConsistentCompetitor,
		TitleRivalsBane,
		TitleDeepWorker,
		TitleUnstoppableForce,
		TitleFocusGrandmaster,
	}
}

// Rank returns the title's position in AllTitles, or -1 if unknown.
func (t Title) Rank() int {
	for i, known := range AllTitles() {
		if known == t {
			return i
		}
	}
	return -1
}

// ParseTitle maps a stored title string to a Title. Older data stored the
// rank-1 title without a space.
func ParseTitle(s string) (Title, bool) {
	if s == "StreakStarter" {
		return TitleStreakStarter, true
	}
	t := Title(s)
	if t.Rank() < 0 {
		return TitleNovice, false
	}
	return t, true
}

// Icon returns the display glyph for the title.
func (t Title) Icon() string {
	switch t {
	case TitleStreakStarter:
		return "🔥"
	case TitleConsistentCompetitor:
		return "📅"
	case TitleRivalsBane:
		return "⚔️"
	case TitleDeepWorker:
		return "🧠"
	case TitleUnstoppableForce:
		return "🚀"
	case TitleFocusGrandmaster:
		return "👑"
	default:
		return "🌱"
	}
}
