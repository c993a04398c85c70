package httplink

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"strings"
	"sync"

	"github.com/bnema/foodorder-cli/internal/ports"
)

const (
	DefaultScheme = "foodorder"
	openPath      = "/open"
	healthPath    = "/healthz"
)

var ErrNoSubscribers = errors.New("no deep link subscribers")

// Server is a loopback HTTP listener standing in for the OS deep-link handler.
// A request to /<host>/<path>?<query> is delivered as <scheme>://<host>/<path>?<query>;
// /open?url=<link> delivers <link> verbatim.
type Server struct {
	scheme    string
	launchURL string
	listener  net.Listener
	server    *http.Server
	serveErr  chan error
	closeOnce sync.Once

	mu       sync.RWMutex
	nextID   int
	handlers map[int]func(string)
}

var _ ports.LinkSource = (*Server)(nil)

type Option func(*Server)

func WithScheme(scheme string) Option {
	return func(s *Server) {
		if scheme = strings.TrimSuffix(scheme, "://"); scheme != "" {
			s.scheme = scheme
		}
	}
}

// WithLaunchURL sets the URL reported as the one the process was launched with.
func WithLaunchURL(rawURL string) Option {
	return func(s *Server) {
		s.launchURL = rawURL
	}
}

func Start(listenAddr string, opts ...Option) (*Server, error) {
	if listenAddr == "" {
		listenAddr = "127.0.0.1:0"
	}

	listener, err := net.Listen("tcp", listenAddr)
	if err != nil {
		return nil, fmt.Errorf("listen for deep links: %w", err)
	}

	s := &Server{
		scheme:   DefaultScheme,
		listener: listener,
		serveErr: make(chan error, 1),
		handlers: map[int]func(string){},
	}
	for _, opt := range opts {
		opt(s)
	}

	mux := http.NewServeMux()
	mux.HandleFunc(healthPath, func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	mux.HandleFunc(openPath, s.handleOpen)
	mux.HandleFunc("/", s.handleLink)
	s.server = &http.Server{Handler: mux}

	go func() {
		if err := s.server.Serve(listener); err != nil && !errors.Is(err, http.ErrServerClosed) {
			s.serveErr <- err
		}
		close(s.serveErr)
	}()

	return s, nil
}

// BaseURL is the http address deep links can be sent to.
func (s *Server) BaseURL() string {
	if tcpAddr, ok := s.listener.Addr().(*net.TCPAddr); ok {
		return fmt.Sprintf("http://127.0.0.1:%d", tcpAddr.Port)
	}
	return "http://" + s.listener.Addr().String()
}

// Errors reports a serve failure; it is closed once the server stops.
func (s *Server) Errors() <-chan error {
	return s.serveErr
}

func (s *Server) InitialURL(ctx context.Context) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	return s.launchURL, nil
}

func (s *Server) SubscribeURLs(handler func(string)) (ports.Subscription, error) {
	if handler == nil {
		return nil, errors.New("deep link handler is nil")
	}

	s.mu.Lock()
	id := s.nextID
	s.nextID++
	s.handlers[id] = handler
	s.mu.Unlock()

	return ports.SubscriptionFunc(func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		delete(s.handlers, id)
	}), nil
}

// Deliver hands rawURL to every subscriber.
func (s *Server) Deliver(rawURL string) error {
	s.mu.RLock()
	handlers := make([]func(string), 0, len(s.handlers))
	for _, handler := range s.handlers {
		handlers = append(handlers, handler)
	}
	s.mu.RUnlock()

	if len(handlers) == 0 {
		return ErrNoSubscribers
	}
	for _, handler := range handlers {
		handler(rawURL)
	}
	return nil
}

func (s *Server) Close() error {
	var err error
	s.closeOnce.Do(func() {
		err = s.server.Close()
	})
	return err
}

func (s *Server) handleOpen(w http.ResponseWriter, r *http.Request) {
	link := r.URL.Query().Get("url")
	if link == "" {
		http.Error(w, "missing url parameter", http.StatusBadRequest)
		return
	}
	s.respond(w, link)
}

func (s *Server) handleLink(w http.ResponseWriter, r *http.Request) {
	target := strings.TrimPrefix(r.URL.EscapedPath(), "/")
	if target == "" {
		http.NotFound(w, r)
		return
	}

	link := s.scheme + "://" + target
	if r.URL.RawQuery != "" {
		link += "?" + r.URL.RawQuery
	}
	s.respond(w, link)
}

func (s *Server) respond(w http.ResponseWriter, link string) {
	if err := s.Deliver(link); err != nil {
		http.Error(w, "no deep link handler is running", http.StatusServiceUnavailable)
		return
	}

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusAccepted)
	_, _ = w.Write([]byte("Link received. You can return to the terminal."))
}
