package types

import "github.com/mflstudio/concours/pkg/kinematic"

// PlayerState is a connection bound to a roster name.
type PlayerState struct {
	ConnectionID string
	Name         string
	Color        string
	Pose         kinematic.Pose
	Spawn        kinematic.Vector
}

// NewPlayerState places a freshly joined player at its spawn.
func NewPlayerState(connID, name, color string, spawn kinematic.Vector) *PlayerState {
	return &PlayerState{
		ConnectionID: connID,
		Name:         name,
		Color:        color,
		Pose:         kinematic.NewPose(spawn, 0),
		Spawn:        spawn,
	}
}

// ApplyMove stores a client reported pose verbatim.
func (p *PlayerState) ApplyMove(pose kinematic.Pose) {
	p.Pose = pose
}

// Copy returns a copy of the player state
func (p *PlayerState) Copy() *PlayerState {
	c := *p
	return &c
}
