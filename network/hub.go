package network

import (
	"context"
	"errors"
	"net"
	"net/http"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"github.com/lixenwraith/drone-sim/navigation"
)

// Path is the websocket endpoint served by Handler
const Path = "/ws"

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 4096,
	// Read-only feed, any origin may watch
	CheckOrigin: func(r *http.Request) bool { return true },
}

// client is one connected feed viewer
type client struct {
	id   string
	conn *websocket.Conn
	send chan []byte
}

// Hub broadcasts tick frames to websocket viewers
// Observe is called on the tick goroutine and never blocks; Run encodes and fans out
type Hub struct {
	config *Config
	logger *zap.Logger

	limiter *rate.Limiter
	notify  chan struct{}
	latest  atomic.Pointer[navigation.TickResult]

	mu      sync.RWMutex
	clients map[*client]struct{}
	frame   []byte // Last encoded frame, sent to viewers on connect
	closed  bool

	dropped atomic.Uint64
}

// NewHub creates a hub; nil cfg uses DefaultConfig
func NewHub(cfg *Config, logger *zap.Logger) *Hub {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	if cfg.SendBuffer <= 0 {
		cfg.SendBuffer = 1
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	limit := rate.Inf
	if cfg.MaxRate > 0 {
		limit = rate.Limit(cfg.MaxRate)
	}

	return &Hub{
		config:  cfg,
		logger:  logger.Named("feed"),
		limiter: rate.NewLimiter(limit, 1),
		notify:  make(chan struct{}, 1),
		clients: make(map[*client]struct{}),
	}
}

// Observe records the tick as the next frame to broadcast
// Frames arriving faster than MaxRate are coalesced, the newest wins
func (h *Hub) Observe(res navigation.TickResult) {
	h.latest.Store(&res)
	select {
	case h.notify <- struct{}{}:
	default:
	}
}

// Clients returns the number of connected viewers
func (h *Hub) Clients() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients)
}

// Dropped returns the number of frames skipped for full client queues
func (h *Hub) Dropped() uint64 {
	return h.dropped.Load()
}

// Run broadcasts frames until ctx is done, then disconnects every viewer
func (h *Hub) Run(ctx context.Context) error {
	defer h.shutdown()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-h.notify:
		}

		if err := h.limiter.Wait(ctx); err != nil {
			return nil
		}

		res := h.latest.Load()
		if res == nil {
			continue
		}
		data, err := NewFrame(*res).Encode()
		if err != nil {
			h.logger.Error("failed to encode frame", zap.Error(err), zap.Uint64("tick", res.Tick))
			continue
		}
		h.broadcast(data)
	}
}

func (h *Hub) broadcast(data []byte) {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.frame = data
	for c := range h.clients {
		select {
		case c.send <- data:
		default:
			h.dropped.Add(1)
		}
	}
}

func (h *Hub) shutdown() {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.closed = true
	for c := range h.clients {
		close(c.send)
		delete(h.clients, c)
	}
	h.logger.Info("feed stopped", zap.Uint64("dropped_frames", h.Dropped()))
}

func (h *Hub) register(c *client) bool {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.closed {
		return false
	}
	h.clients[c] = struct{}{}
	if h.frame != nil {
		c.send <- h.frame
	}
	h.logger.Info("viewer connected", zap.String("client_id", c.id), zap.Int("clients", len(h.clients)))
	return true
}

func (h *Hub) unregister(c *client) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if _, ok := h.clients[c]; ok {
		delete(h.clients, c)
		close(c.send)
		h.logger.Info("viewer disconnected", zap.String("client_id", c.id), zap.Int("clients", len(h.clients)))
	}
}

// Handler returns the HTTP handler serving the feed at Path
func (h *Hub) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc(Path, h.serveWS)
	return mux
}

func (h *Hub) serveWS(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.logger.Warn("websocket upgrade failed", zap.Error(err))
		return
	}

	c := &client{
		id:   uuid.New().String(),
		conn: conn,
		send: make(chan []byte, h.config.SendBuffer),
	}
	if !h.register(c) {
		_ = conn.WriteControl(websocket.CloseMessage,
			websocket.FormatCloseMessage(websocket.CloseGoingAway, "shutting down"),
			time.Now().Add(h.config.WriteTimeout))
		conn.Close()
		return
	}

	go h.writePump(c)
	h.readPump(c)
}

// readPump discards viewer messages; it exists to notice closes and answer pings
func (h *Hub) readPump(c *client) {
	defer func() {
		h.unregister(c)
		c.conn.Close()
	}()

	c.conn.SetReadLimit(512)
	_ = c.conn.SetReadDeadline(time.Now().Add(h.config.PongTimeout))
	c.conn.SetPongHandler(func(string) error {
		return c.conn.SetReadDeadline(time.Now().Add(h.config.PongTimeout))
	})

	for {
		if _, _, err := c.conn.ReadMessage(); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				h.logger.Debug("viewer read error", zap.String("client_id", c.id), zap.Error(err))
			}
			return
		}
	}
}

func (h *Hub) writePump(c *client) {
	ping := time.NewTicker(h.config.PongTimeout * 9 / 10)
	defer func() {
		ping.Stop()
		c.conn.Close()
	}()

	for {
		select {
		case data, ok := <-c.send:
			_ = c.conn.SetWriteDeadline(time.Now().Add(h.config.WriteTimeout))
			if !ok {
				_ = c.conn.WriteMessage(websocket.CloseMessage,
					websocket.FormatCloseMessage(websocket.CloseGoingAway, ""))
				return
			}
			if err := c.conn.WriteMessage(websocket.TextMessage, data); err != nil {
				return
			}
		case <-ping.C:
			_ = c.conn.SetWriteDeadline(time.Now().Add(h.config.WriteTimeout))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}

// ListenAndServe serves the feed on cfg.Listen until ctx is done
// Run must be started separately to broadcast frames
func (h *Hub) ListenAndServe(ctx context.Context) error {
	ln, err := net.Listen("tcp", h.config.Listen)
	if err != nil {
		return err
	}
	return h.Serve(ctx, ln)
}

// Serve accepts feed connections on ln until ctx is done
func (h *Hub) Serve(ctx context.Context, ln net.Listener) error {
	srv := &http.Server{
		Handler:           h.Handler(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	stop := context.AfterFunc(ctx, func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), h.config.WriteTimeout)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
	})
	defer stop()

	h.logger.Info("feed listening", zap.String("addr", ln.Addr().String()))
	if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
