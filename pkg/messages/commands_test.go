package messages

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/mflstudio/concours/pkg/kinematic"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeCommand(t *testing.T) {
	tests := []struct {
		name    string
		msg     Message
		want    Command
		wantErr error
	}{
		{
			name: "join",
			msg:  Message{Type: MessageTypeClientJoin, Payload: json.RawMessage(`"quentin"`)},
			want: JoinCommand{Name: "quentin"},
		},
		{
			name:    "join with object payload",
			msg:     Message{Type: MessageTypeClientJoin, Payload: json.RawMessage(`{"name":"quentin"}`)},
			wantErr: ErrMalformedPayload,
		},
		{
			name:    "join without payload",
			msg:     Message{Type: MessageTypeClientJoin},
			wantErr: ErrMalformedPayload,
		},
		{
			name: "move",
			msg:  Message{Type: MessageTypeClientMove, Payload: json.RawMessage(`{"x":1.5,"y":2,"z":-3,"rot":0.25}`)},
			want: MoveCommand{Pose: kinematic.NewPose(kinematic.Vector{X: 1.5, Y: 2, Z: -3}, 0.25)},
		},
		{
			name: "move without rot",
			msg:  Message{Type: MessageTypeClientMove, Payload: json.RawMessage(`{"x":0,"y":0,"z":0}`)},
			want: MoveCommand{Pose: kinematic.NewPose(kinematic.Vector{}, 0)},
		},
		{
			name:    "move missing z",
			msg:     Message{Type: MessageTypeClientMove, Payload: json.RawMessage(`{"x":0,"y":0}`)},
			wantErr: ErrMalformedPayload,
		},
		{
			name:    "move with unknown field",
			msg:     Message{Type: MessageTypeClientMove, Payload: json.RawMessage(`{"x":0,"y":0,"z":0,"speed":9}`)},
			wantErr: ErrMalformedPayload,
		},
		{
			name: "start game ignores payload",
			msg:  Message{Type: MessageTypeClientStartGame},
			want: StartGameCommand{},
		},
		{
			name: "reveal tile",
			msg:  Message{Type: MessageTypeClientRevealTile, Payload: json.RawMessage(`42`)},
			want: RevealTileCommand{TileID: 42},
		},
		{
			name:    "reveal tile with fractional id",
			msg:     Message{Type: MessageTypeClientRevealTile, Payload: json.RawMessage(`4.2`)},
			wantErr: ErrMalformedPayload,
		},
		{
			name:    "reveal tile with string id",
			msg:     Message{Type: MessageTypeClientRevealTile, Payload: json.RawMessage(`"4"`)},
			wantErr: ErrMalformedPayload,
		},
		{
			name: "answer question",
			msg:  Message{Type: MessageTypeClientAnswerQuestion, Payload: json.RawMessage(`{"answerIndex":2}`)},
			want: AnswerQuestionCommand{AnswerIndex: 2},
		},
		{
			name:    "answer question missing index",
			msg:     Message{Type: MessageTypeClientAnswerQuestion, Payload: json.RawMessage(`{}`)},
			wantErr: ErrMalformedPayload,
		},
		{
			name:    "unknown type",
			msg:     Message{Type: "teleport", Payload: json.RawMessage(`{}`)},
			wantErr: ErrUnknownMessageType,
		},
		{
			name:    "ping is not a session command",
			msg:     Message{Type: MessageTypeClientPing},
			wantErr: ErrUnknownMessageType,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := DecodeCommand(&tt.msg)
			if tt.wantErr != nil {
				assert.True(t, errors.Is(err, tt.wantErr), "got error %v", err)
				assert.Nil(t, got)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.msg.Type, TypeOf(got))
		})
	}
}

func TestEncodeCommand(t *testing.T) {
	tests := []struct {
		command     Command
		wantPayload string
	}{
		{command: JoinCommand{Name: "yann"}, wantPayload: `"yann"`},
		{command: MoveCommand{Pose: kinematic.NewPose(kinematic.Vector{X: 1, Y: 2, Z: 3}, 0.5)}, wantPayload: `{"x":1,"y":2,"z":3,"rot":0.5}`},
		{command: StartGameCommand{}, wantPayload: ``},
		{command: RevealTileCommand{TileID: 12}, wantPayload: `12`},
		{command: AnswerQuestionCommand{AnswerIndex: 0}, wantPayload: `{"answerIndex":0}`},
	}
	for _, tt := range tests {
		t.Run(string(TypeOf(tt.command)), func(t *testing.T) {
			msg, err := EncodeCommand(tt.command)
			require.NoError(t, err)
			assert.Equal(t, TypeOf(tt.command), msg.Type)
			assert.Equal(t, tt.wantPayload, string(msg.Payload))

			decoded, err := DecodeCommand(msg)
			require.NoError(t, err)
			assert.Equal(t, tt.command, decoded)
		})
	}
}
