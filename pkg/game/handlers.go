package game

import (
	"github.com/mflstudio/concours/pkg/config"
	"github.com/mflstudio/concours/pkg/game/constants"
	"github.com/mflstudio/concours/pkg/game/types"
	"github.com/mflstudio/concours/pkg/grid"
	"github.com/mflstudio/concours/pkg/log"
	"github.com/mflstudio/concours/pkg/messages"
	"github.com/mflstudio/concours/pkg/questions"
	"github.com/mflstudio/concours/pkg/workers"
)

// Rule violations below are not errors: the command is dropped and the
// session is left untouched.

func (gm *GameManager) handleJoin(clientID string, name string) {
	entry, ok := gm.roster.Lookup(name)
	if !ok {
		log.Debug("Client %s tried to join as unknown player %q", clientID, name)
		return
	}
	if _, closed := gm.departed[clientID]; closed {
		log.Debug("Client %s joined as %s after disconnecting", clientID, name)
		return
	}
	// the latest join for a name wins, e.g. a reloaded page whose old
	// socket has not been reported closed yet
	if bound, ok := gm.session.BoundConnection(name); ok && bound != clientID {
		delete(gm.session.Connections, bound)
		log.Info("Client %s takes %s over from %s", clientID, name, bound)
	}

	gm.session.Connections[clientID] = types.NewPlayerState(clientID, entry.Name, entry.Color, entry.Spawn)
	log.Info("%s joined on %s", name, clientID)
	gm.broadcastGameState()
}

func (gm *GameManager) handleMove(clientID string, move messages.MoveCommand) {
	player, ok := gm.session.Connections[clientID]
	if !ok {
		log.Trace("Client %s moved before joining", clientID)
		return
	}

	player.ApplyMove(move.Pose)
	gm.send(workers.ServerMessage{
		Type:            messages.MessageTypeServerPlayerMoved,
		Message:         PlayerMovedFromState(player),
		ExcludeClientID: clientID,
	})
}

func (gm *GameManager) handleStartGame(clientID string) {
	gm.archiveRound()

	names := gm.roster.Names()
	s := gm.session
	s.Epoch++
	s.Grid = grid.Generate(names, gm.gridOptions, gm.rng)
	s.ResetScores(names)
	s.ActiveQuestion = nil
	s.AnswerFeedback = types.FeedbackNone
	s.CurrentTurn = ""
	s.LastPoints = 0
	s.Phase = types.PhaseMemorize
	s.MemorizeTimer = gm.memorizeSeconds

	gm.scheduler.cancel(gm.memorizeTask)
	log.Info("Client %s started round %d", clientID, s.Epoch)

	if gm.memorizeSeconds <= 0 {
		gm.beginGame()
		gm.broadcastGameState()
		return
	}

	gm.memorizeTask = gm.scheduler.every(gm.clock.Now(), constants.MemorizeTick, s.Epoch, "memorize", gm.memorizeTick)
	gm.broadcastGameState()
}

func (gm *GameManager) memorizeTick() {
	s := gm.session
	if s.Phase != types.PhaseMemorize {
		gm.scheduler.cancel(gm.memorizeTask)
		return
	}

	s.MemorizeTimer--
	if s.MemorizeTimer > 0 {
		gm.broadcastGameState()
		return
	}

	s.MemorizeTimer = 0
	gm.scheduler.cancel(gm.memorizeTask)
	gm.broadcastGameState()

	gm.beginGame()
	gm.broadcastGameState()
}

// beginGame moves to GAME and hands the first turn to the first connected
// player in roster order, or to the first roster name when nobody is bound.
func (gm *GameManager) beginGame() {
	s := gm.session
	s.Phase = types.PhaseGame
	s.CurrentTurn = gm.roster[0].Name
	for _, name := range gm.roster.Names() {
		if s.IsConnected(name) {
			s.CurrentTurn = name
			break
		}
	}
	log.Info("Round %d started, %s plays first", s.Epoch, s.CurrentTurn)
}

func (gm *GameManager) handleRevealTile(clientID string, tileID int) {
	s := gm.session
	if s.Phase != types.PhaseGame {
		log.Debug("Client %s revealed tile %d outside of the game phase", clientID, tileID)
		return
	}
	player, ok := s.Connections[clientID]
	if !ok || player.Name != s.CurrentTurn {
		log.Debug("Client %s revealed tile %d out of turn", clientID, tileID)
		return
	}
	if s.ActiveQuestion != nil || s.AnswerFeedback != types.FeedbackNone {
		log.Debug("Client %s revealed tile %d while a question is in flight", clientID, tileID)
		return
	}
	tile := s.Tile(tileID)
	if tile == nil || tile.Revealed {
		log.Debug("Client %s revealed missing or revealed tile %d", clientID, tileID)
		return
	}

	question, tier, ok := gm.selectQuestion(tile.Owner)
	if !ok {
		log.Warn("No question available for tile %d", tileID)
		return
	}

	tile.Revealed = true
	s.ActiveQuestion = &types.ActiveQuestion{
		Question:        question,
		Tier:            tier,
		TileOwner:       tile.Owner,
		TileID:          tile.ID,
		AnsweringPlayer: s.CurrentTurn,
	}
	log.Debug("%s revealed tile %d owned by %s", player.Name, tile.ID, tile.Owner)
	gm.broadcastGameState()
}

// selectQuestion draws the question for a tile. A player's tile asks one of
// that player's themes at its tier. Neutral tiles, unknown owners and themes
// without questions fall back to a medium tier draw.
func (gm *GameManager) selectQuestion(owner string) (questions.Question, int, bool) {
	entry, isPlayer := gm.roster.Lookup(owner)
	if owner == config.NeutralOwner || !isPlayer {
		q, ok := gm.questions.DrawNeutral(gm.rng)
		return q, questions.MediumTier, ok
	}

	if len(entry.Themes) > 0 {
		theme := entry.Themes[gm.rng.IntN(len(entry.Themes))]
		if q, ok := gm.questions.DrawTheme(theme.Theme, gm.rng); ok {
			return q, theme.Tier, true
		}
		log.Debug("No question for theme %s, drawing from the whole pool", theme.Theme)
	}

	q, ok := gm.questions.DrawAny(gm.rng)
	return q, questions.MediumTier, ok
}

func (gm *GameManager) handleAnswerQuestion(clientID string, answerIndex int) {
	s := gm.session
	q := s.ActiveQuestion
	if q == nil {
		log.Debug("Client %s answered with no active question", clientID)
		return
	}
	player, ok := s.Connections[clientID]
	if !ok || player.Name != q.AnsweringPlayer {
		log.Debug("Client %s answered for %s", clientID, q.AnsweringPlayer)
		return
	}

	points := 0
	if answerIndex == q.Question.Correct {
		points = Points(q.Tier, q.TileOwner, player.Name)
		s.AnswerFeedback = types.FeedbackCorrect
	} else {
		s.AnswerFeedback = types.FeedbackIncorrect
	}
	s.Scores[player.Name] += points
	s.LastPoints = points
	s.ActiveQuestion = nil
	log.Debug("%s answered %s for %d points", player.Name, s.AnswerFeedback, points)

	gm.scheduler.after(gm.clock.Now(), gm.feedbackDelay, s.Epoch, "rotate turn", gm.endFeedback)
	gm.broadcastGameState()
}

// Points is the reward for a correct answer at tier on a tile owned by owner.
func Points(tier int, owner string, answerer string) int {
	points := constants.PointsFor(tier)
	if owner != config.NeutralOwner && owner != answerer {
		points += constants.OpponentBonus
	}
	return points
}

// endFeedback clears the answer feedback and passes the turn on.
func (gm *GameManager) endFeedback() {
	s := gm.session
	if s.Phase != types.PhaseGame {
		return
	}

	s.AnswerFeedback = types.FeedbackNone
	s.CurrentTurn = gm.nextTurn()
	gm.broadcastGameState()
}

// nextTurn returns the next connected player after the current one in roster
// order, wrapping around. The turn stays put when nobody else is connected.
func (gm *GameManager) nextTurn() string {
	s := gm.session
	n := len(gm.roster)
	start := 0
	if i := gm.roster.IndexOf(s.CurrentTurn); i >= 0 {
		start = i + 1
	}

	for i := 0; i < n; i++ {
		name := gm.roster[(start+i)%n].Name
		if s.IsConnected(name) {
			return name
		}
	}
	return s.CurrentTurn
}

func (gm *GameManager) handleDisconnect(clientID string) {
	if player, ok := gm.session.Connections[clientID]; ok {
		delete(gm.session.Connections, clientID)
		log.Info("%s left from %s", player.Name, clientID)
	}
	gm.broadcastGameState()
}
