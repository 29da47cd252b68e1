package game

import (
	"testing"

	"github.com/mflstudio/concours/pkg/game/types"
	"github.com/mflstudio/concours/pkg/kinematic"
	"github.com/mflstudio/concours/pkg/messages"
	"github.com/mflstudio/concours/pkg/questions"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestServerGameUpdateFromState(t *testing.T) {
	roster := []string{"quentin", "yann"}
	session := types.NewSession(roster, []types.Tile{
		{ID: 0, Owner: "yann", X: 0, Y: 0},
		{ID: 1, Owner: "neutral", Revealed: true, X: 1, Y: 0},
	})
	session.Phase = types.PhaseGame
	session.CurrentTurn = "quentin"
	session.Epoch = 3
	session.Scores["quentin"] = 4
	session.Connections["c1"] = types.NewPlayerState("c1", "quentin", "#3b82f6", kinematic.Vector{X: -8, Y: 2, Z: 11})
	session.ActiveQuestion = &types.ActiveQuestion{
		Question:        questions.Question{Prompt: "Capitale du Pérou ?", Choices: []string{"Lima", "Quito"}, Correct: 0, Theme: "geographie", Tier: 3},
		Tier:            3,
		TileOwner:       "quentin",
		TileID:          0,
		AnsweringPlayer: "quentin",
	}

	update := ServerGameUpdateFromState(session, roster, 42)

	assert.Equal(t, "GAME", update.Phase)
	assert.Equal(t, "quentin", update.CurrentTurn)
	assert.Equal(t, uint64(3), update.Epoch)
	assert.Equal(t, int64(42), update.Timestamp)
	assert.Equal(t, map[string]int{"quentin": 4, "yann": 0}, update.Scores)
	assert.Equal(t, []messages.TileUpdate{
		{ID: 0, Owner: "yann", X: 0, Y: 0},
		{ID: 1, Owner: "neutral", Revealed: true, X: 1, Y: 0},
	}, update.Grid)
	assert.Equal(t, messages.PlayerUpdate{
		ID:       "c1",
		Name:     "quentin",
		Color:    "#3b82f6",
		X:        -8,
		Y:        2,
		Z:        11,
		StartPos: kinematic.Vector{X: -8, Y: 2, Z: 11},
	}, update.Players["c1"])
	require.NotNil(t, update.ActiveQuestion)
	assert.Equal(t, &messages.ActiveQuestionUpdate{
		Question:        "Capitale du Pérou ?",
		Options:         []string{"Lima", "Quito"},
		Theme:           "geographie",
		Tier:            3,
		TileOwner:       "quentin",
		TileID:          0,
		AnsweringPlayer: "quentin",
	}, update.ActiveQuestion)

	// the snapshot is detached from the session
	update.Scores["quentin"] = 100
	update.Grid[0].Revealed = true
	update.ActiveQuestion.Options[0] = "Bogota"
	roster[0] = "changed"
	assert.Equal(t, 4, session.Scores["quentin"])
	assert.False(t, session.Grid[0].Revealed)
	assert.Equal(t, "Lima", session.ActiveQuestion.Question.Choices[0])
	assert.Equal(t, "quentin", update.Roster[0])
}

func TestPlayerMovedFromState(t *testing.T) {
	player := types.NewPlayerState("c1", "yann", "#ef4444", kinematic.Vector{})
	player.ApplyMove(kinematic.NewPose(kinematic.Vector{X: 1, Y: 2, Z: 3}, 1.57))

	assert.Equal(t, &messages.PlayerMoved{
		ID:  "c1",
		Pos: messages.MovePos{X: 1, Y: 2, Z: 3, Rot: 1.57},
	}, PlayerMovedFromState(player))
}
