package models

// RoundResult is the archived outcome of one round, written when the next
// round starts or the server stops.
type RoundResult struct {
	ID       int64          `json:"id"`
	Epoch    uint64         `json:"epoch"`
	EndedAt  int64          `json:"ended_at"`
	Scores   map[string]int `json:"scores"`
	Revealed int            `json:"revealed"`
	// Winner is empty when the round ended without a single best score.
	Winner string `json:"winner"`
}

// Snapshot is a compressed checkpoint of the published game state. There is
// at most one per epoch; later checkpoints replace earlier ones.
type Snapshot struct {
	Epoch     uint64 `json:"epoch"`
	Timestamp int64  `json:"timestamp"`
	Data      []byte `json:"-"`
}

// Winner returns the single highest scorer, or "" on a tie or when nobody scored.
func Winner(scores map[string]int) string {
	best, winner, tie := 0, "", false
	for name, score := range scores {
		switch {
		case score > best:
			best, winner, tie = score, name, false
		case score == best && score > 0:
			tie = true
		}
	}
	if tie {
		return ""
	}
	return winner
}
