package types

import (
	"github.com/mflstudio/concours/pkg/questions"
)

// Phase is a stage of the show.
type Phase string

const (
	PhaseLobby    Phase = "LOBBY"
	PhaseMemorize Phase = "MEMORIZE"
	PhaseGame     Phase = "GAME"
	PhaseEnd      Phase = "END"
)

// AnswerFeedback is shown to everyone for a short time after an answer.
type AnswerFeedback string

const (
	FeedbackNone      AnswerFeedback = ""
	FeedbackCorrect   AnswerFeedback = "correct"
	FeedbackIncorrect AnswerFeedback = "incorrect"
)

// Tile is one cell of the reveal grid.
type Tile struct {
	ID       int
	Owner    string
	Revealed bool
	X        int
	Y        int
}

// ActiveQuestion is the single in-flight question of the session.
type ActiveQuestion struct {
	Question        questions.Question
	Tier            int
	TileOwner       string
	TileID          int
	AnsweringPlayer string
}

// Session is the authoritative game state. Only the game loop touches it.
type Session struct {
	Phase         Phase
	MemorizeTimer int
	// Connections maps connection IDs to bound players
	Connections    map[string]*PlayerState
	Grid           []Tile
	Scores         map[string]int
	CurrentTurn    string
	ActiveQuestion *ActiveQuestion
	AnswerFeedback AnswerFeedback
	LastPoints     int
	// Epoch is incremented by every startGame so delayed work from an
	// earlier round can tell it is stale.
	Epoch uint64
}

// NewSession returns a lobby session with zeroed scores for every roster name.
func NewSession(roster []string, grid []Tile) *Session {
	s := &Session{
		Phase:       PhaseLobby,
		Connections: make(map[string]*PlayerState),
		Grid:        grid,
		Scores:      make(map[string]int, len(roster)),
	}
	s.ResetScores(roster)
	return s
}

// ResetScores sets every roster name's score to zero.
func (s *Session) ResetScores(roster []string) {
	s.Scores = make(map[string]int, len(roster))
	for _, name := range roster {
		s.Scores[name] = 0
	}
}

// Tile returns the tile with id, or nil.
func (s *Session) Tile(id int) *Tile {
	if id < 0 || id >= len(s.Grid) {
		return nil
	}
	tile := &s.Grid[id]
	if tile.ID != id {
		for i := range s.Grid {
			if s.Grid[i].ID == id {
				return &s.Grid[i]
			}
		}
		return nil
	}
	return tile
}

// IsConnected reports whether at least one connection is bound to name.
func (s *Session) IsConnected(name string) bool {
	for _, player := range s.Connections {
		if player.Name == name {
			return true
		}
	}
	return false
}

// BoundConnection returns the connection ID bound to name, if any.
func (s *Session) BoundConnection(name string) (string, bool) {
	for connID, player := range s.Connections {
		if player.Name == name {
			return connID, true
		}
	}
	return "", false
}

// RevealedCount returns the number of revealed tiles.
func (s *Session) RevealedCount() int {
	n := 0
	for _, tile := range s.Grid {
		if tile.Revealed {
			n++
		}
	}
	return n
}
