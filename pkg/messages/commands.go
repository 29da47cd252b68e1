package messages

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/mflstudio/concours/pkg/kinematic"
)

var (
	ErrUnknownMessageType = errors.New("unknown message type")
	ErrMalformedPayload   = errors.New("malformed payload")
)

// Command is a validated inbound game command.
type Command interface {
	commandType() MessageType
}

type JoinCommand struct {
	Name string
}

type MoveCommand struct {
	Pose kinematic.Pose
}

type StartGameCommand struct{}

type RevealTileCommand struct {
	TileID int
}

type AnswerQuestionCommand struct {
	AnswerIndex int
}

func (JoinCommand) commandType() MessageType           { return MessageTypeClientJoin }
func (MoveCommand) commandType() MessageType           { return MessageTypeClientMove }
func (StartGameCommand) commandType() MessageType      { return MessageTypeClientStartGame }
func (RevealTileCommand) commandType() MessageType     { return MessageTypeClientRevealTile }
func (AnswerQuestionCommand) commandType() MessageType { return MessageTypeClientAnswerQuestion }

// ClientCommand is a decoded command tagged with the connection it arrived on.
type ClientCommand struct {
	ClientID string
	Command  Command
}

// TypeOf returns the message type a command was decoded from.
func TypeOf(c Command) MessageType {
	return c.commandType()
}

type movePayload struct {
	X   *float64 `json:"x"`
	Y   *float64 `json:"y"`
	Z   *float64 `json:"z"`
	Rot *float64 `json:"rot"`
}

type answerPayload struct {
	AnswerIndex *int `json:"answerIndex"`
}

// DecodeCommand validates the payload shape of a session command.
func DecodeCommand(m *Message) (Command, error) {
	switch m.Type {
	case MessageTypeClientJoin:
		var name string
		if err := strictUnmarshal(m.Payload, &name); err != nil {
			return nil, malformed(m.Type, err)
		}
		return JoinCommand{Name: name}, nil

	case MessageTypeClientMove:
		p := movePayload{}
		if err := strictUnmarshal(m.Payload, &p); err != nil {
			return nil, malformed(m.Type, err)
		}
		if p.X == nil || p.Y == nil || p.Z == nil {
			return nil, malformed(m.Type, errors.New("x, y and z are required"))
		}
		rot := 0.0
		if p.Rot != nil {
			rot = *p.Rot
		}
		return MoveCommand{
			Pose: kinematic.NewPose(kinematic.Vector{X: *p.X, Y: *p.Y, Z: *p.Z}, rot),
		}, nil

	case MessageTypeClientStartGame:
		return StartGameCommand{}, nil

	case MessageTypeClientRevealTile:
		var tileID int
		if err := strictUnmarshal(m.Payload, &tileID); err != nil {
			return nil, malformed(m.Type, err)
		}
		return RevealTileCommand{TileID: tileID}, nil

	case MessageTypeClientAnswerQuestion:
		p := answerPayload{}
		if err := strictUnmarshal(m.Payload, &p); err != nil {
			return nil, malformed(m.Type, err)
		}
		if p.AnswerIndex == nil {
			return nil, malformed(m.Type, errors.New("answerIndex is required"))
		}
		return AnswerQuestionCommand{AnswerIndex: *p.AnswerIndex}, nil

	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownMessageType, m.Type)
	}
}

// EncodeCommand builds the message a client sends for c. It is the inverse
// of DecodeCommand.
func EncodeCommand(c Command) (*Message, error) {
	switch c := c.(type) {
	case JoinCommand:
		return NewMessage(MessageTypeClientJoin, c.Name)
	case MoveCommand:
		return NewMessage(MessageTypeClientMove, MovePos{
			X:   c.Pose.Position.X,
			Y:   c.Pose.Position.Y,
			Z:   c.Pose.Position.Z,
			Rot: c.Pose.Rot,
		})
	case StartGameCommand:
		return NewMessage(MessageTypeClientStartGame, nil)
	case RevealTileCommand:
		return NewMessage(MessageTypeClientRevealTile, c.TileID)
	case AnswerQuestionCommand:
		return NewMessage(MessageTypeClientAnswerQuestion, answerPayload{AnswerIndex: &c.AnswerIndex})
	default:
		return nil, fmt.Errorf("%w: %T", ErrUnknownMessageType, c)
	}
}

func strictUnmarshal(data json.RawMessage, v interface{}) error {
	if len(bytes.TrimSpace(data)) == 0 {
		return errors.New("payload is missing")
	}
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	return dec.Decode(v)
}

func malformed(t MessageType, err error) error {
	return fmt.Errorf("%w: %s: %v", ErrMalformedPayload, t, err)
}
