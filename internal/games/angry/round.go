package angry

// Stage is the screen the player is on.
type Stage int

const (
	StageTitle Stage = iota
	StageInstructions
	StagePlaying
)

// String returns the stage name.
func (s Stage) String() string {
	switch s {
	case StageTitle:
		return "title"
	case StageInstructions:
		return "instructions"
	case StagePlaying:
		return "playing"
	default:
		return "unknown"
	}
}

// RoundState is the complete rule state of one round. It is a value: every
// transition returns a new RoundState and nothing else holds a reference.
type RoundState struct {
	Stage        Stage
	Won          bool
	Lost         bool
	ResetPending bool // Consumed by the next tick

	TargetsRemaining     int
	ProjectilesRemaining int
	Score                int

	InitialTargets     int
	InitialProjectiles int
	PointsPerTarget    int
}

// NewRoundState returns a fresh round on the title stage.
func NewRoundState(targets, projectiles, points int) RoundState {
	return RoundState{
		Stage:                StageTitle,
		TargetsRemaining:     targets,
		ProjectilesRemaining: projectiles,
		InitialTargets:       targets,
		InitialProjectiles:   projectiles,
		PointsPerTarget:      points,
	}
}

// InMenu reports whether the title screen is showing.
func (r RoundState) InMenu() bool {
	return r.Stage == StageTitle
}

// Over reports whether the round has been won or lost.
func (r RoundState) Over() bool {
	return r.Won || r.Lost
}

// Active reports whether projectiles move and collide this tick.
func (r RoundState) Active() bool {
	return r.Stage == StagePlaying && !r.Over()
}

// Advance applies the advance key: title to instructions, instructions to
// playing, and a finished round back to instructions with a reset queued.
func (r RoundState) Advance() RoundState {
	switch {
	case r.Stage == StageTitle:
		r.Stage = StageInstructions
	case r.Stage == StageInstructions:
		r.Stage = StagePlaying
	case r.Over():
		r.Stage = StageInstructions
		r.Won, r.Lost = false, false
		r.ResetPending = true
	}
	return r
}

// Restart skips the instructions after a finished round.
func (r RoundState) Restart() RoundState {
	if !r.Over() {
		return r
	}
	r.Stage = StagePlaying
	r.Won, r.Lost = false, false
	r.ResetPending = true
	return r
}

// HitTarget records a target hit.
func (r RoundState) HitTarget() RoundState {
	if r.TargetsRemaining > 0 {
		r.TargetsRemaining--
		r.Score += r.PointsPerTarget
	}
	return r
}

// LoseProjectile records a projectile leaving the play area.
func (r RoundState) LoseProjectile() RoundState {
	if r.ProjectilesRemaining > 0 {
		r.ProjectilesRemaining--
	}
	return r
}

// Settle sets the win or lose flag once a counter reaches zero.
// Clearing every target wins even if the last projectile was spent on it.
func (r RoundState) Settle() RoundState {
	if r.Stage != StagePlaying || r.Over() {
		return r
	}
	switch {
	case r.TargetsRemaining == 0:
		r.Won = true
	case r.ProjectilesRemaining == 0:
		r.Lost = true
	}
	return r
}

// Restored returns the round with counters and score back at their initial
// values and the pending reset consumed. Stage is kept.
func (r RoundState) Restored() RoundState {
	r.TargetsRemaining = r.InitialTargets
	r.ProjectilesRemaining = r.InitialProjectiles
	r.Score = 0
	r.Won, r.Lost = false, false
	r.ResetPending = false
	return r
}
