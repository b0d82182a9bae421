package engine

import (
	"fmt"

	"github.com/abhisek/rivalgoals/internal/state"
)

const (
	// RivalGainChance is the probability that one tick yields XP.
	RivalGainChance = 0.3
)

// RivalGainAmounts are the XP amounts a successful tick picks from.
var RivalGainAmounts = []int{25, 50, 75, 100, 125, 150}

// RivalActivityMessages are the templates for the rival's activity feed. Each
// takes the XP actually gained.
var RivalActivityMessages = []string{
	"Riva just finished reading a chapter (+%d XP).",
	"Riva completed a coding exercise (+%d XP).",
	"Riva outlined a new project strategy (+%d XP).",
	"Riva debugged a tricky piece of code (+%d XP).",
	"Riva reviewed and refactored some legacy systems (+%d XP).",
	"Riva helped a colleague with a complex problem (+%d XP).",
	"Riva learned a new productivity hack (+%d XP).",
	"Riva crushed a challenging task (+%d XP).",
	"Riva automated a repetitive process (+%d XP).",
	"Riva shipped a small update (+%d XP).",
	"Riva finalized a design mockup (+%d XP).",
	"Riva conducted user research (+%d XP).",
	"Riva is on a roll, gaining %d XP!",
}

// attemptRivalGain runs one probabilistic rival tick. When the target is
// already met it returns s itself and persist=false.
func attemptRivalGain(s state.AppState, rnd Rand) (state.AppState, bool) {
	if s.CurrentRivaXP >= s.RivaTargetToday {
		return s, false
	}

	next := s.Clone()
	if rnd.Float64() >= RivalGainChance {
		return next, true
	}

	amount := RivalGainAmounts[rnd.IntN(len(RivalGainAmounts))]
	next.CurrentRivaXP = min(s.CurrentRivaXP+amount, s.RivaTargetToday)

	if gained := next.CurrentRivaXP - s.CurrentRivaXP; gained > 0 {
		tmpl := RivalActivityMessages[rnd.IntN(len(RivalActivityMessages))]
		msg := fmt.Sprintf(tmpl, gained)
		next.LastRivaActivityMessage = &msg
	}
	return next, true
}
