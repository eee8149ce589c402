package game

// ScoredWord is one submitted word and the points the client credited it
// optimistically. Authoritative scoring lives behind the emitter port.
type ScoredWord struct {
	Word   string
	Points int
	Combo  int // combo level at submission time
}

// roundDuration is the fixed round length in seconds.
const roundDuration = 90.0

// comboWindow is how long the streak survives without a new submission.
const comboWindow = 5.0
