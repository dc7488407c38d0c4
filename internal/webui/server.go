// Package webui serves the equalizer's editor in a browser. Each repaint
// signal of the synchronizer becomes one JSON frame on every connected
// WebSocket, and parameter edits come back over a small JSON API.
package webui

import (
	"context"
	"embed"
	"encoding/json"
	"errors"
	"io/fs"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"github.com/sirupsen/logrus"

	"github.com/cwbudde/algo-eq/editor"
	"github.com/cwbudde/algo-eq/params"
)

//go:embed static
var staticFiles embed.FS

const (
	writeWait  = 10 * time.Second
	pongWait   = 60 * time.Second
	pingPeriod = 54 * time.Second
	sendBuffer = 8
)

// FrameSource is the display side the server consumes.
// *editor.Synchronizer implements it.
type FrameSource interface {
	Frame(style editor.Style) editor.Frame
	Repaint() <-chan struct{}
	SetSize(width, height float64)
}

// Server pushes frames to browsers and applies their parameter edits.
type Server struct {
	frames   FrameSource
	store    *params.Store
	controls []editor.Control
	style    editor.Style
	log      *logrus.Entry

	upgrader websocket.Upgrader

	mu      sync.Mutex
	clients map[*client]struct{}
}

type client struct {
	conn *websocket.Conn
	send chan []byte
}

// NewServer returns a server for frames and the parameters in store.
func NewServer(frames FrameSource, store *params.Store, style editor.Style, log *logrus.Entry) *Server {
	if log == nil {
		log = logrus.WithField("component", "webui")
	}

	return &Server{
		frames:   frames,
		store:    store,
		controls: editor.Controls(store),
		style:    style,
		log:      log,
		upgrader: websocket.Upgrader{
			CheckOrigin: func(r *http.Request) bool { return true },
		},
		clients: make(map[*client]struct{}),
	}
}

// Handler returns the HTTP routes of the server.
func (s *Server) Handler() http.Handler {
	static, _ := fs.Sub(staticFiles, "static")

	mux := http.NewServeMux()
	mux.Handle("/", http.FileServer(http.FS(static)))
	mux.HandleFunc("/ws", s.handleWebSocket)
	mux.HandleFunc("/api/params", s.handleParams)
	mux.HandleFunc("/api/style", s.handleStyle)

	return mux
}

// Run broadcasts a frame on every repaint signal until ctx is done.
func (s *Server) Run(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			s.closeAll()
			return
		case <-s.frames.Repaint():
			data, err := json.Marshal(s.frames.Frame(s.style))
			if err != nil {
				s.log.WithError(err).Warn("encode frame")
				continue
			}
			s.broadcast(data)
		}
	}
}

// ListenAndServe serves on addr and broadcasts frames until ctx is done.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	go s.Run(ctx)
	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
	}()

	s.log.WithFields(logrus.Fields{
		"function": "Server.ListenAndServe",
		"addr":     addr,
	}).Info("web editor listening")

	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	return nil
}

// Clients returns the number of connected WebSockets.
func (s *Server) Clients() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.clients)
}

func (s *Server) broadcast(data []byte) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for c := range s.clients {
		select {
		case c.send <- data:
		default:
			s.log.WithField("remote", c.conn.RemoteAddr().String()).Warn("dropping slow client")
			close(c.send)
			delete(s.clients, c)
		}
	}
}

func (s *Server) closeAll() {
	s.mu.Lock()
	defer s.mu.Unlock()

	for c := range s.clients {
		close(c.send)
		delete(s.clients, c)
	}
}

func (s *Server) remove(c *client) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.clients[c]; ok {
		close(c.send)
		delete(s.clients, c)
	}
}

func (s *Server) handleWebSocket(w http.ResponseWriter, r *http.Request) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.log.WithError(err).Warn("websocket upgrade")
		return
	}

	c := &client{conn: conn, send: make(chan []byte, sendBuffer)}

	if data, err := json.Marshal(s.frames.Frame(s.style)); err == nil {
		c.send <- data
	}

	s.mu.Lock()
	s.clients[c] = struct{}{}
	s.mu.Unlock()

	s.log.WithField("remote", conn.RemoteAddr().String()).Debug("client connected")

	go s.writePump(c)
	go s.readPump(c)
}

// Message is sent by the page over the WebSocket.
type Message struct {
	Type   string  `json:"type"`
	Width  float64 `json:"width,omitempty"`
	Height float64 `json:"height,omitempty"`
	ID     string  `json:"id,omitempty"`
	Value  float64 `json:"value,omitempty"`
}

func (s *Server) readPump(c *client) {
	defer func() {
		s.remove(c)
		c.conn.Close()
	}()

	c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error {
		c.conn.SetReadDeadline(time.Now().Add(pongWait))
		return nil
	})

	for {
		var msg Message
		if err := c.conn.ReadJSON(&msg); err != nil {
			return
		}

		switch msg.Type {
		case "resize":
			s.frames.SetSize(msg.Width, msg.Height)
		case "set":
			if err := s.store.Set(msg.ID, msg.Value); err != nil {
				s.log.WithError(err).WithField("id", msg.ID).Warn("set parameter")
			}
		default:
			s.log.WithField("type", msg.Type).Debug("ignoring message")
		}
	}
}

func (s *Server) writePump(c *client) {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		c.conn.Close()
	}()

	for {
		select {
		case data, ok := <-c.send:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				c.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := c.conn.WriteMessage(websocket.TextMessage, data); err != nil {
				return
			}
		case <-ticker.C:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}
