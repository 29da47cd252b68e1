package kinematic

// This package holds the spatial types the server relays. Avatar movement is
// simulated on the clients; the server stores what they report verbatim.

// Vector is a position in the studio scene.
type Vector struct {
	X float64 `json:"x" mapstructure:"x"`
	Y float64 `json:"y" mapstructure:"y"`
	Z float64 `json:"z" mapstructure:"z"`
}

// Pose is a reported position plus the facing angle around the vertical axis.
type Pose struct {
	Position Vector
	Rot      float64
}

// NewPose returns a pose at v facing rot.
func NewPose(v Vector, rot float64) Pose {
	return Pose{Position: v, Rot: rot}
}
