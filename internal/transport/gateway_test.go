package transport_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/skunkedgame/skunkd/internal/cooldown"
	"github.com/skunkedgame/skunkd/internal/crafting"
	"github.com/skunkedgame/skunkd/internal/domain"
	"github.com/skunkedgame/skunkd/internal/event"
	"github.com/skunkedgame/skunkd/internal/honey"
	"github.com/skunkedgame/skunkd/internal/inventory"
	"github.com/skunkedgame/skunkd/internal/item"
	"github.com/skunkedgame/skunkd/internal/transport"
	"github.com/skunkedgame/skunkd/internal/world"
)

type gatewayEnv struct {
	svc    inventory.Service
	server *httptest.Server
}

func newGatewayEnv(t *testing.T) *gatewayEnv {
	t.Helper()

	items := item.NewCatalog([]item.Definition{
		{Name: "Oak Wood", Kind: domain.KindResource, Resource: domain.ResourceWood},
	})
	recipes := crafting.NewCatalog([]domain.Recipe{
		{
			Name:           "Rope",
			Ingredients:    []domain.Ingredient{{ItemName: "Oak Wood", Quantity: 1}},
			ResultKind:     domain.KindResource,
			ResultName:     "Oak Wood",
			ResultQuantity: 1,
		},
	})
	spawner := world.NewSpawner()
	bus := event.NewMemoryBus()

	svc := inventory.NewService(
		inventory.Config{MaxSlots: 10, MaxStackSize: 99, PickupRange: 4},
		items, recipes, spawner,
		cooldown.NewService(cooldown.Config{DevMode: true}), bus,
	)
	honeySvc := honey.NewService(honey.Config{
		InteractRange: 3, PerUseCap: 3, MaxStock: 10,
		ItemName: "Honey", ResourceType: domain.ResourceHoney,
	}, svc, spawner, bus)

	gw := transport.NewGateway(svc, honeySvc)
	server := httptest.NewServer(http.HandlerFunc(gw.HandleWS))
	t.Cleanup(server.Close)

	return &gatewayEnv{svc: svc, server: server}
}

func (e *gatewayEnv) dial(t *testing.T, playerID string) *websocket.Conn {
	t.Helper()
	url := "ws" + strings.TrimPrefix(e.server.URL, "http") + "?player_id=" + playerID
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })
	return conn
}

func readInventory(t *testing.T, conn *websocket.Conn) transport.InventoryMessage {
	t.Helper()
	require.NoError(t, conn.SetReadDeadline(time.Now().Add(2*time.Second)))
	_, payload, err := conn.ReadMessage()
	require.NoError(t, err)

	var msg transport.InventoryMessage
	require.NoError(t, json.Unmarshal(payload, &msg))
	require.Equal(t, transport.MsgInventory, msg.Type)
	return msg
}

func TestHandleWS_RequiresPlayerID(t *testing.T) {
	env := newGatewayEnv(t)

	url := "ws" + strings.TrimPrefix(env.server.URL, "http")
	_, resp, err := websocket.DefaultDialer.Dial(url, nil)
	require.Error(t, err)
	require.NotNil(t, resp)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

// TestHandleWS_InitialSnapshotThenUpdates verifies the client receives the
// authoritative snapshot on connect and a fresh one after every accepted
// mutation.
func TestHandleWS_InitialSnapshotThenUpdates(t *testing.T) {
	env := newGatewayEnv(t)
	conn := env.dial(t, "p1")

	initial := readInventory(t, conn)
	require.Len(t, initial.Slots, 10)
	for _, s := range initial.Slots {
		assert.True(t, s.IsEmpty())
	}

	// A server-side grant pushes an updated snapshot to the owner.
	res := env.svc.RequestAddResource(context.Background(), "p1", "Oak Wood", domain.ResourceWood, 12)
	require.True(t, res.Accepted)

	updated := readInventory(t, conn)
	assert.Equal(t, 12, updated.Slots[0].Quantity)
	assert.Equal(t, "Oak Wood", updated.Slots[0].Name)
}

// TestHandleWS_DispatchesClientFrames verifies a request frame sent over
// the socket flows through the pipeline and comes back as a snapshot.
func TestHandleWS_DispatchesClientFrames(t *testing.T) {
	env := newGatewayEnv(t)
	conn := env.dial(t, "p1")
	readInventory(t, conn)

	require.True(t, env.svc.RequestAddResource(context.Background(), "p1", "Oak Wood", domain.ResourceWood, 10).Accepted)
	readInventory(t, conn)

	frame := transport.ClientMessage{Type: transport.MsgUse, Slot: 0, Amount: 4}
	require.NoError(t, conn.WriteJSON(frame))

	updated := readInventory(t, conn)
	assert.Equal(t, 6, updated.Slots[0].Quantity)
}

// TestHandleWS_MalformedFrameIgnored verifies garbage frames are discarded
// without closing the connection.
func TestHandleWS_MalformedFrameIgnored(t *testing.T) {
	env := newGatewayEnv(t)
	conn := env.dial(t, "p1")
	readInventory(t, conn)

	require.NoError(t, conn.WriteMessage(websocket.TextMessage, []byte("{broken")))

	// The connection is still alive: a valid frame still round-trips.
	require.True(t, env.svc.RequestAddResource(context.Background(), "p1", "Oak Wood", domain.ResourceWood, 3).Accepted)
	updated := readInventory(t, conn)
	assert.Equal(t, 3, updated.Slots[0].Quantity)
}

// TestHandleWS_ReconnectKeepsSession verifies a replacement connection for
// the same player takes over the live session: the displaced handler's
// teardown must not remove the inventory the new connection is using.
func TestHandleWS_ReconnectKeepsSession(t *testing.T) {
	env := newGatewayEnv(t)

	first := env.dial(t, "p1")
	readInventory(t, first)
	require.True(t, env.svc.RequestAddResource(context.Background(), "p1", "Oak Wood", domain.ResourceWood, 5).Accepted)
	readInventory(t, first)

	// Reconnect. The gateway closes the first connection, which runs the
	// displaced handler's teardown.
	second := env.dial(t, "p1")
	initial := readInventory(t, second)
	assert.Equal(t, 5, initial.Slots[0].Quantity, "session survives the handover")

	// Give the displaced handler time to finish its teardown, then check
	// the session still exists and still accepts requests.
	time.Sleep(200 * time.Millisecond)
	slots, err := env.svc.Snapshot(context.Background(), "p1")
	require.NoError(t, err)
	assert.Equal(t, 5, slots[0].Quantity)

	require.True(t, env.svc.RequestAddResource(context.Background(), "p1", "Oak Wood", domain.ResourceWood, 2).Accepted)
	updated := readInventory(t, second)
	assert.Equal(t, 7, updated.Slots[0].Quantity)
}

func TestHandleWS_DisconnectTearsDownSession(t *testing.T) {
	env := newGatewayEnv(t)
	conn := env.dial(t, "p1")
	readInventory(t, conn)

	conn.Close()

	require.Eventually(t, func() bool {
		_, err := env.svc.Snapshot(context.Background(), "p1")
		return err != nil
	}, 2*time.Second, 10*time.Millisecond, "session removed after disconnect")
}
