// Package server streams the frames of a World over websockets and feeds
// client commands back into it. The World is only touched by the simulation
// goroutine; handlers talk to it through a channel.
package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net"
	"net/http"
	"sync"
	"sync/atomic"
	"time"

	"github.com/akmonengine/minkowski"
	"github.com/akmonengine/minkowski/config"
	"github.com/akmonengine/minkowski/internal/log"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"golang.org/x/sync/errgroup"
)

const (
	sendBufferSize    = 16
	commandBufferSize = 64
	shutdownTimeout   = 5 * time.Second
)

type request struct {
	clientID string
	cmd      minkowski.Command
}

type client struct {
	id     string
	conn   *websocket.Conn
	send   chan []byte
	logger log.Log
}

type Server struct {
	world    *minkowski.World
	config   config.Server
	logger   log.Log
	upgrader websocket.Upgrader

	commands chan request
	running  atomic.Bool

	mu          sync.Mutex
	clients     map[string]*client
	lastPayload []byte
	lastDigest  uint64
	sentFrame   bool
}

// New wires the server to world. The world must not be stepped by anyone
// else once Serve is running.
func New(world *minkowski.World, cfg config.Server, logger log.Log) (*Server, error) {
	if cfg.FrameRate <= 0 {
		return nil, fmt.Errorf("frame rate %d: %w", cfg.FrameRate, ErrInvalidConfig)
	}

	s := &Server{
		world:  world,
		config: cfg,
		logger: logger,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin:     func(*http.Request) bool { return true },
		},
		commands: make(chan request, commandBufferSize),
		clients:  make(map[string]*client),
	}

	for _, t := range []minkowski.EventType{
		minkowski.COLLISION_ENTER,
		minkowski.COLLISION_EXIT,
		minkowski.PAIR_CHANGED,
		minkowski.RESET,
	} {
		world.Events.Subscribe(t, s.onEvent)
	}

	return s, nil
}

// Handler serves the websocket endpoint at /ws.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/ws", s.handleWebSocket)
	return mux
}

// Run listens on the configured address and serves until ctx is done.
func (s *Server) Run(ctx context.Context) error {
	ln, err := net.Listen("tcp", s.config.Addr)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrListenerFailed, err)
	}
	return s.Serve(ctx, ln)
}

// Serve runs the simulation loop and the HTTP server on ln until ctx is
// done, then shuts both down.
func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	if !s.running.CompareAndSwap(false, true) {
		ln.Close()
		return ErrServerAlreadyRunning
	}
	defer s.running.Store(false)

	httpServer := &http.Server{
		Handler:           s.Handler(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		return s.simulate(ctx)
	})

	g.Go(func() error {
		s.logger.Info("server listening", log.String("addr", ln.Addr().String()))
		if err := httpServer.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	g.Go(func() error {
		<-ctx.Done()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		err := httpServer.Shutdown(shutdownCtx)
		s.closeClients()
		s.logger.Info("server stopped")
		return err
	})

	return g.Wait()
}

// simulate owns the world: it steps on every tick with the wall-clock dt
// and applies commands in between.
func (s *Server) simulate(ctx context.Context) error {
	ticker := time.NewTicker(time.Second / time.Duration(s.config.FrameRate))
	defer ticker.Stop()

	last := time.Now()
	s.broadcastFrame()

	for {
		select {
		case <-ctx.Done():
			return nil
		case req := <-s.commands:
			if err := s.world.Apply(req.cmd); err != nil {
				s.logger.Warn("command rejected", log.String("client", req.clientID), log.Error(err))
				s.sendTo(req.clientID, Message{Type: TypeError, Error: err.Error()})
			}
		case now := <-ticker.C:
			dt := now.Sub(last).Seconds()
			last = now

			s.world.Step(dt)
			s.broadcastFrame()
		}
	}
}

func (s *Server) broadcastFrame() {
	frame := s.world.Frame()
	digest := frame.Digest()

	s.mu.Lock()
	skip := s.config.SkipUnchanged && s.sentFrame && digest == s.lastDigest
	s.mu.Unlock()
	if skip {
		return
	}

	payload, err := json.Marshal(Message{Type: TypeFrame, Frame: &frame})
	if err != nil {
		s.logger.Error("encode frame", log.Error(err))
		return
	}

	s.mu.Lock()
	s.lastPayload = payload
	s.lastDigest = digest
	s.sentFrame = true
	s.mu.Unlock()

	s.broadcast(payload)
}

func (s *Server) onEvent(event minkowski.Event) {
	payload, err := json.Marshal(Message{Type: TypeEvent, Event: event.Type().String()})
	if err != nil {
		s.logger.Error("encode event", log.Error(err))
		return
	}
	s.broadcast(payload)
}

func (s *Server) broadcast(payload []byte) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, c := range s.clients {
		s.enqueue(c, payload)
	}
}

func (s *Server) sendTo(clientID string, msg Message) {
	payload, err := json.Marshal(msg)
	if err != nil {
		s.logger.Error("encode message", log.Error(err))
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if c, ok := s.clients[clientID]; ok {
		s.enqueue(c, payload)
	}
}

// enqueue drops the payload for a client that is not keeping up. Must be
// called with s.mu held.
func (s *Server) enqueue(c *client, payload []byte) {
	select {
	case c.send <- payload:
	default:
		c.logger.Debug("client lagging, message dropped")
	}
}

func (s *Server) handleWebSocket(w http.ResponseWriter, r *http.Request) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.logger.Warn("websocket upgrade failed", log.Error(err))
		return
	}

	id := uuid.NewString()
	c := &client{
		id:     id,
		conn:   conn,
		send:   make(chan []byte, sendBufferSize),
		logger: s.logger.With(log.String("client", id)),
	}
	s.register(c)
	c.logger.Info("client connected", log.String("remote", conn.RemoteAddr().String()))

	go s.writePump(c)
	s.readPump(c)
}

// register queues the greeting and the latest frame so that a new client
// can draw the scene even while it is at rest.
func (s *Server) register(c *client) {
	hello, _ := json.Marshal(Message{Type: TypeHello, Client: c.id})

	s.mu.Lock()
	defer s.mu.Unlock()

	s.clients[c.id] = c
	c.send <- hello
	if s.lastPayload != nil {
		c.send <- s.lastPayload
	}
}

func (s *Server) unregister(c *client) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.clients[c.id]; !ok {
		return
	}
	delete(s.clients, c.id)
	close(c.send)
}

func (s *Server) closeClients() {
	s.mu.Lock()
	clients := make([]*client, 0, len(s.clients))
	for _, c := range s.clients {
		clients = append(clients, c)
	}
	s.mu.Unlock()

	for _, c := range clients {
		s.unregister(c)
	}
}

func (s *Server) readPump(c *client) {
	defer func() {
		s.unregister(c)
		c.logger.Info("client disconnected")
	}()

	for {
		_, data, err := c.conn.ReadMessage()
		if err != nil {
			return
		}

		cmd, err := decodeCommand(data)
		if err != nil {
			c.logger.Warn("invalid command", log.Error(err))
			s.sendTo(c.id, Message{Type: TypeError, Error: err.Error()})
			continue
		}

		select {
		case s.commands <- request{clientID: c.id, cmd: cmd}:
		default:
			s.sendTo(c.id, Message{Type: TypeError, Error: "command queue full"})
		}
	}
}

func (s *Server) writePump(c *client) {
	defer c.conn.Close()

	for payload := range c.send {
		if err := c.conn.WriteMessage(websocket.TextMessage, payload); err != nil {
			c.logger.Debug("write failed", log.Error(err))
			return
		}
	}

	_ = c.conn.WriteMessage(websocket.CloseMessage, websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""))
}
