package transport

import (
	"encoding/json"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"

	"github.com/skunkedgame/skunkd/internal/domain"
	"github.com/skunkedgame/skunkd/internal/honey"
	"github.com/skunkedgame/skunkd/internal/inventory"
	"github.com/skunkedgame/skunkd/internal/logger"
)

const writeWait = 10 * time.Second

// subscriber is one connected player client. Writes are serialized by the
// per-connection mutex; the read loop runs on the handler goroutine.
type subscriber struct {
	conn *websocket.Conn
	mu   sync.Mutex
}

func (s *subscriber) write(data []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.conn.SetWriteDeadline(time.Now().Add(writeWait))
	return s.conn.WriteMessage(websocket.TextMessage, data)
}

// Gateway is the websocket boundary between player clients and the
// request pipeline. One connection per player; connecting creates the
// player's session and inventory, disconnecting tears them down. The
// gateway implements inventory.Replicator so every accepted mutation pushes
// a fresh snapshot to the owning client.
type Gateway struct {
	inv      inventory.Service
	hives    honey.Service
	upgrader websocket.Upgrader

	mu   sync.RWMutex
	subs map[string]*subscriber
}

// NewGateway creates the gateway and attaches it as the pipeline's
// replicator.
func NewGateway(inv inventory.Service, hives honey.Service) *Gateway {
	g := &Gateway{
		inv:   inv,
		hives: hives,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin:     func(r *http.Request) bool { return true },
		},
		subs: make(map[string]*subscriber),
	}
	inv.SetReplicator(g)
	return g
}

// Replicate pushes the snapshot to the owning client, if connected.
func (g *Gateway) Replicate(playerID string, slots []domain.Slot) {
	g.mu.RLock()
	sub, ok := g.subs[playerID]
	g.mu.RUnlock()
	if !ok {
		return
	}

	msg := InventoryMessage{
		Type:       MsgInventory,
		ServerTime: time.Now().UnixMilli(),
		Slots:      slots,
	}
	data, err := json.Marshal(msg)
	if err != nil {
		return
	}
	_ = sub.write(data)
}

// HandleWS upgrades the connection and runs the player's read loop until
// disconnect.
func (g *Gateway) HandleWS(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromContext(ctx)

	playerID := r.URL.Query().Get("player_id")
	if playerID == "" {
		http.Error(w, "missing player_id", http.StatusBadRequest)
		return
	}

	conn, err := g.upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Warn("Websocket upgrade failed", "playerID", playerID, "error", err)
		return
	}

	if err := g.inv.CreateSession(ctx, playerID); err != nil {
		message := websocket.FormatCloseMessage(websocket.ClosePolicyViolation, "invalid player")
		_ = conn.WriteMessage(websocket.CloseMessage, message)
		conn.Close()
		return
	}

	sub := &subscriber{conn: conn}
	g.mu.Lock()
	if old, exists := g.subs[playerID]; exists {
		old.conn.Close()
	}
	g.subs[playerID] = sub
	g.mu.Unlock()

	log.Info("Player connected", "playerID", playerID)

	// Initial snapshot so the client starts from authoritative state.
	if slots, err := g.inv.Snapshot(ctx, playerID); err == nil {
		g.Replicate(playerID, slots)
	}

	defer func() {
		// Tear down the session only while this connection is still the
		// player's current one. On reconnect the replacement handler owns
		// the session and the displaced handler must leave it alone.
		g.mu.Lock()
		current, ok := g.subs[playerID]
		stillCurrent := ok && current == sub
		if stillCurrent {
			delete(g.subs, playerID)
		}
		g.mu.Unlock()
		conn.Close()
		if stillCurrent {
			g.inv.RemoveSession(ctx, playerID)
			log.Info("Player disconnected", "playerID", playerID)
		}
	}()

	for {
		_, payload, err := conn.ReadMessage()
		if err != nil {
			return
		}

		var msg ClientMessage
		if err := json.Unmarshal(payload, &msg); err != nil {
			log.Debug("Discarding malformed frame", "playerID", playerID, "error", err)
			continue
		}

		g.dispatch(r, playerID, msg)
	}
}

// dispatch routes one client frame into the request pipeline. Every
// request runs under a fresh request ID for tracing. Rejections are
// silent: no frame goes back, the snapshot simply does not change.
func (g *Gateway) dispatch(r *http.Request, playerID string, msg ClientMessage) {
	ctx := logger.WithRequestID(r.Context(), logger.GenerateRequestID())
	log := logger.FromContext(ctx)

	switch msg.Type {
	case MsgPickup:
		g.inv.RequestPickup(ctx, playerID, msg.PickupID)
	case MsgMove:
		g.inv.RequestMoveStack(ctx, playerID, msg.From, msg.To, msg.Amount, msg.Seq)
	case MsgUse:
		g.inv.RequestUseSlot(ctx, playerID, msg.Slot, msg.Amount, msg.Seq)
	case MsgDrop:
		g.inv.RequestDrop(ctx, playerID, msg.ItemName, msg.Quantity)
	case MsgCraft:
		g.inv.RequestCraftByName(ctx, playerID, msg.Recipe)
	case MsgHarvest:
		g.hives.RequestHarvest(ctx, playerID, msg.HiveID, msg.Amount)
	case MsgPosition:
		_ = g.inv.SetPlayerPosition(ctx, playerID, domain.Position{X: msg.X, Y: msg.Y, Z: msg.Z})
	default:
		log.Debug("Unknown frame type", "playerID", playerID, "type", msg.Type)
	}
}
