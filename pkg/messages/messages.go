package messages

import (
	"encoding/json"

	"github.com/mflstudio/concours/pkg/kinematic"
)

const (
	// MessageBufferSize represents the maximum size of an inbound message
	MessageBufferSize = 4096
)

type MessageType string

// Message types
const (
	MessageTypeClientJoin           MessageType = "join"
	MessageTypeClientMove           MessageType = "move"
	MessageTypeClientStartGame      MessageType = "startGame"
	MessageTypeClientRevealTile     MessageType = "revealTile"
	MessageTypeClientAnswerQuestion MessageType = "answerQuestion"
	MessageTypeClientPing           MessageType = "ping"

	MessageTypeServerGameState   MessageType = "gameState"
	MessageTypeServerPlayerMoved MessageType = "playerMoved"
	MessageTypeServerAck         MessageType = "ack"
)

// Message represents a generic message for serialization/deserialization
type Message struct {
	// ClientID is filled in by the network layer from the connection the
	// message arrived on. It is never read from the wire.
	ClientID string          `json:"-"`
	Type     MessageType     `json:"type"`
	Ack      string          `json:"ack,omitempty"`
	Payload  json.RawMessage `json:"payload,omitempty"`
}

// GameStateUpdate is the full snapshot broadcast after every mutation.
type GameStateUpdate struct {
	Phase          string                  `json:"phase"`
	MemorizeTimer  int                     `json:"memorizeTimer"`
	Players        map[string]PlayerUpdate `json:"players"`
	Grid           []TileUpdate            `json:"grid"`
	Scores         map[string]int          `json:"scores"`
	CurrentTurn    string                  `json:"currentTurn"`
	ActiveQuestion *ActiveQuestionUpdate   `json:"activeQuestion"`
	AnswerFeedback string                  `json:"answerFeedback"`
	LastPoints     int                     `json:"lastPoints"`
	Roster         []string                `json:"roster"`
	Epoch          uint64                  `json:"epoch"`
	Timestamp      int64                   `json:"timestamp"`
}

type PlayerUpdate struct {
	ID       string           `json:"id"`
	Name     string           `json:"name"`
	Color    string           `json:"color"`
	X        float64          `json:"x"`
	Y        float64          `json:"y"`
	Z        float64          `json:"z"`
	Rot      float64          `json:"rot"`
	StartPos kinematic.Vector `json:"startPos"`
}

type TileUpdate struct {
	ID       int    `json:"id"`
	Owner    string `json:"type"`
	Revealed bool   `json:"revealed"`
	X        int    `json:"x"`
	Y        int    `json:"y"`
}

// ActiveQuestionUpdate never carries the correct index.
type ActiveQuestionUpdate struct {
	Question        string   `json:"question"`
	Options         []string `json:"options"`
	Theme           string   `json:"theme,omitempty"`
	Tier            int      `json:"tier"`
	TileOwner       string   `json:"tileOwner"`
	TileID          int      `json:"tileId"`
	AnsweringPlayer string   `json:"answeringPlayer"`
}

// PlayerMoved relays one player's reported pose to the other clients.
type PlayerMoved struct {
	ID  string  `json:"id"`
	Pos MovePos `json:"pos"`
}

type MovePos struct {
	X   float64 `json:"x"`
	Y   float64 `json:"y"`
	Z   float64 `json:"z"`
	Rot float64 `json:"rot"`
}
