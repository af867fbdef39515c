package orderControllers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/adamswinfred36-debug/Backend-MLST/models"
)

// wsPair spins up a server that upgrades one connection and hands back both
// ends of it.
func wsPair(t *testing.T) (server, client *websocket.Conn) {
	t.Helper()

	conns := make(chan *websocket.Conn, 1)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			return
		}
		conns <- conn
	}))
	t.Cleanup(srv.Close)

	url := "ws" + strings.TrimPrefix(srv.URL, "http")
	client, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	t.Cleanup(func() { client.Close() })

	server = <-conns
	t.Cleanup(func() { server.Close() })
	return server, client
}

func hasClient(conn *websocket.Conn) bool {
	wsMu.Lock()
	defer wsMu.Unlock()
	return wsClients[conn]
}

func TestBroadcastReachesConnectedClients(t *testing.T) {
	server, client := wsPair(t)

	wsMu.Lock()
	wsClients[server] = true
	wsMu.Unlock()
	defer func() {
		wsMu.Lock()
		delete(wsClients, server)
		wsMu.Unlock()
	}()

	broadcastNewOrder(&models.Order{Total: 150, Currency: models.DefaultCurrency})

	_, msg, err := client.ReadMessage()
	require.NoError(t, err)
	assert.Contains(t, string(msg), `"total":150`)
	assert.True(t, hasClient(server))
}

func TestBroadcastDropsDeadClients(t *testing.T) {
	server, _ := wsPair(t)

	wsMu.Lock()
	wsClients[server] = true
	wsMu.Unlock()

	// Kill the transport underneath the registered connection; the next
	// broadcast must evict it instead of leaving it in the set.
	require.NoError(t, server.Close())

	broadcastNewOrder(&models.Order{Total: 10})

	assert.False(t, hasClient(server))
}
