package game

import (
	"github.com/mflstudio/concours/pkg/game/types"
	"github.com/mflstudio/concours/pkg/messages"
)

// ServerGameUpdateFromState builds the broadcast snapshot of a session. The
// result shares no memory with the session and never carries the correct
// answer of the active question.
func ServerGameUpdateFromState(session *types.Session, roster []string, timestamp int64) *messages.GameStateUpdate {
	players := make(map[string]messages.PlayerUpdate, len(session.Connections))
	for connID, player := range session.Connections {
		players[connID] = PlayerUpdateFromState(player)
	}

	grid := make([]messages.TileUpdate, 0, len(session.Grid))
	for _, tile := range session.Grid {
		grid = append(grid, messages.TileUpdate{
			ID:       tile.ID,
			Owner:    tile.Owner,
			Revealed: tile.Revealed,
			X:        tile.X,
			Y:        tile.Y,
		})
	}

	scores := make(map[string]int, len(session.Scores))
	for name, score := range session.Scores {
		scores[name] = score
	}

	var activeQuestion *messages.ActiveQuestionUpdate
	if q := session.ActiveQuestion; q != nil {
		activeQuestion = &messages.ActiveQuestionUpdate{
			Question:        q.Question.Prompt,
			Options:         append([]string(nil), q.Question.Choices...),
			Theme:           q.Question.Theme,
			Tier:            q.Tier,
			TileOwner:       q.TileOwner,
			TileID:          q.TileID,
			AnsweringPlayer: q.AnsweringPlayer,
		}
	}

	return &messages.GameStateUpdate{
		Phase:          string(session.Phase),
		MemorizeTimer:  session.MemorizeTimer,
		Players:        players,
		Grid:           grid,
		Scores:         scores,
		CurrentTurn:    session.CurrentTurn,
		ActiveQuestion: activeQuestion,
		AnswerFeedback: string(session.AnswerFeedback),
		LastPoints:     session.LastPoints,
		Roster:         append([]string(nil), roster...),
		Epoch:          session.Epoch,
		Timestamp:      timestamp,
	}
}

func PlayerUpdateFromState(player *types.PlayerState) messages.PlayerUpdate {
	return messages.PlayerUpdate{
		ID:       player.ConnectionID,
		Name:     player.Name,
		Color:    player.Color,
		X:        player.Pose.Position.X,
		Y:        player.Pose.Position.Y,
		Z:        player.Pose.Position.Z,
		Rot:      player.Pose.Rot,
		StartPos: player.Spawn,
	}
}

func PlayerMovedFromState(player *types.PlayerState) *messages.PlayerMoved {
	return &messages.PlayerMoved{
		ID: player.ConnectionID,
		Pos: messages.MovePos{
			X:   player.Pose.Position.X,
			Y:   player.Pose.Position.Y,
			Z:   player.Pose.Position.Z,
			Rot: player.Pose.Rot,
		},
	}
}
