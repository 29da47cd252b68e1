package state

import (
	"context"
	"fmt"
	"sync"

	"github.com/mflstudio/concours/pkg/messages"
)

type InMemoryStateManager struct {
	lock      sync.RWMutex
	gameState *messages.GameStateUpdate
}

func NewInMemoryStateManager() *InMemoryStateManager {
	return &InMemoryStateManager{
		gameState: &messages.GameStateUpdate{
			Players: make(map[string]messages.PlayerUpdate),
			Scores:  make(map[string]int),
		},
	}
}

func (m *InMemoryStateManager) Get(ctx context.Context) (*messages.GameStateUpdate, error) {
	m.lock.RLock()
	defer m.lock.RUnlock()
	return copyGameState(m.gameState), nil
}

func (m *InMemoryStateManager) Set(ctx context.Context, gameState *messages.GameStateUpdate) error {
	if gameState == nil {
		return fmt.Errorf("game state is nil")
	}

	m.lock.Lock()
	defer m.lock.Unlock()
	m.gameState = copyGameState(gameState)
	return nil
}

func copyGameState(s *messages.GameStateUpdate) *messages.GameStateUpdate {
	c := *s

	c.Players = make(map[string]messages.PlayerUpdate, len(s.Players))
	for k, v := range s.Players {
		c.Players[k] = v
	}
	c.Scores = make(map[string]int, len(s.Scores))
	for k, v := range s.Scores {
		c.Scores[k] = v
	}
	if s.Grid != nil {
		c.Grid = append([]messages.TileUpdate(nil), s.Grid...)
	}
	if s.Roster != nil {
		c.Roster = append([]string(nil), s.Roster...)
	}
	if s.ActiveQuestion != nil {
		q := *s.ActiveQuestion
		q.Options = append([]string(nil), s.ActiveQuestion.Options...)
		c.ActiveQuestion = &q
	}

	return &c
}
