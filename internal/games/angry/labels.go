package angry

import (
	"strconv"

	"github.com/JamieStevensDev/Angry-nerds/internal/core"
)

// Label is a line of text placed in world space.
type Label struct {
	Text  string
	Pos   core.Vec2
	Scale float64
	HUD   bool // Part of the counters row
}

// Screen text.
const (
	TitlePrompt       = "press space to go to the instructions"
	InstructionsLine1 = "Click and drag from the alien and release to send the alien towards the cow."
	InstructionsLine2 = "Capture all the cows in order to win, before you run out of aliens!"
	InstructionsPlay  = "press space when ready to play!"
	WinMessage        = "Congratulations"
	LoseMessage       = "You Lose"
	PausedMessage     = "Paused"
)

// labels returns the text shown for the current round state.
func labels(r RoundState, paused bool) []Label {
	var out []Label

	switch r.Stage {
	case StageTitle:
		out = append(out, Label{Text: TitlePrompt, Pos: core.V(300, 850), Scale: 2})
	case StageInstructions:
		out = append(out,
			Label{Text: InstructionsLine1, Pos: core.V(300, 850), Scale: 1},
			Label{Text: InstructionsLine2, Pos: core.V(300, 875), Scale: 1},
			Label{Text: InstructionsPlay, Pos: core.V(300, 900), Scale: 1},
		)
	case StagePlaying:
		out = append(out,
			Label{Text: "Aliens Remaining:" + strconv.Itoa(r.ProjectilesRemaining), Pos: core.V(500, 75), Scale: 1, HUD: true},
			Label{Text: "Cows Left:" + strconv.Itoa(r.TargetsRemaining), Pos: core.V(900, 75), Scale: 1, HUD: true},
			Label{Text: "Score:" + strconv.Itoa(r.Score), Pos: core.V(1300, 75), Scale: 1, HUD: true},
		)
	}

	switch {
	case r.Lost:
		out = append(out, Label{Text: LoseMessage, Pos: core.V(700, 500), Scale: 2})
	case r.Won:
		out = append(out, Label{Text: WinMessage, Pos: core.V(700, 500), Scale: 2})
	case paused:
		out = append(out, Label{Text: PausedMessage, Pos: core.V(700, 500), Scale: 2})
	}

	return out
}
