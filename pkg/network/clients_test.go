package network

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClientManager_ConnectDisconnect(t *testing.T) {
	cm := NewClientManager()

	a := cm.ConnectClient(nil, "10.0.0.1:1")
	b := cm.ConnectClient(nil, "10.0.0.2:1")
	assert.NotEqual(t, a, b)
	assert.Equal(t, 2, cm.Count())

	client, err := cm.GetClient(a)
	require.NoError(t, err)
	assert.Equal(t, "10.0.0.1:1", client.RemoteAddr)

	cm.DisconnectClient(a)
	cm.DisconnectClient(a)
	assert.False(t, cm.Exists(a))
	assert.Len(t, cm.GetClients(), 1)

	events := []ClientEvent{<-cm.GetClientEventChan(), <-cm.GetClientEventChan(), <-cm.GetClientEventChan()}
	assert.Equal(t, []ClientEvent{
		{ClientID: a, Type: ClientEventTypeConnect},
		{ClientID: b, Type: ClientEventTypeConnect},
		{ClientID: a, Type: ClientEventTypeDisconnect},
	}, events)
	assert.Empty(t, cm.GetClientEventChan(), "second disconnect emits nothing")
}
