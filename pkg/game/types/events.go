package types

// ConnectPlayerEvent is queued when a transport connection opens.
type ConnectPlayerEvent struct {
	ConnectionID string
}

// DisconnectPlayerEvent is queued when a transport connection closes.
type DisconnectPlayerEvent struct {
	ConnectionID string
}
