package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/gorilla/mux"
	"github.com/rs/cors"
	"go.uber.org/zap"

	"github.com/uhyunpark/tradebook/pkg/app/core"
)

// BookReader is the query side of the registry.
type BookReader interface {
	Count() int
	OrdersFor(side core.Side) []core.Order
	Find(id uint64) (core.Order, bool)
	TotalNotional(side core.Side) float64
}

type snapshotter interface {
	Snapshot() core.Snapshot
}

// snapshotOf reads both sides together when the reader supports it.
func snapshotOf(b BookReader) core.Snapshot {
	if s, ok := b.(snapshotter); ok {
		return s.Snapshot()
	}
	return core.Snapshot{
		Buys:         b.OrdersFor(core.Buy),
		Sells:        b.OrdersFor(core.Sell),
		BuyNotional:  b.TotalNotional(core.Buy),
		SellNotional: b.TotalNotional(core.Sell),
	}
}

// Options configures the HTTP layer
type Options struct {
	AllowedOrigins  []string
	ShutdownTimeout time.Duration
}

// Server exposes the registry read-only over REST and streams submissions over WebSocket
type Server struct {
	book    BookReader
	router  *mux.Router
	hub     *Hub
	opts    Options
	logger  *zap.SugaredLogger
	handler http.Handler
	hubOnce sync.Once
}

// NewServer creates a new API server
func NewServer(book BookReader, opts Options, logger *zap.SugaredLogger) *Server {
	if logger == nil {
		logger = zap.NewNop().Sugar()
	}
	if opts.ShutdownTimeout <= 0 {
		opts.ShutdownTimeout = 5 * time.Second
	}

	s := &Server{
		book:   book,
		router: mux.NewRouter(),
		hub:    NewHub(logger),
		opts:   opts,
		logger: logger,
	}

	s.setupRoutes()

	c := cors.New(cors.Options{
		AllowedOrigins: opts.AllowedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodOptions},
		AllowedHeaders: []string{"Content-Type"},
		ExposedHeaders: []string{requestIDHeader},
	})
	s.handler = c.Handler(s.router)

	return s
}

func (s *Server) setupRoutes() {
	s.router.Use(s.requestLogger)

	// Full paths on the root router: a method mismatch inside a PathPrefix
	// subrouter is reported as 404 instead of 405.
	s.router.HandleFunc("/api/v1/orders", s.handleGetOrders).Methods(http.MethodGet)
	s.router.HandleFunc("/api/v1/orders/{id}", s.handleGetOrder).Methods(http.MethodGet)
	s.router.HandleFunc("/api/v1/summary", s.handleGetSummary).Methods(http.MethodGet)
	s.router.HandleFunc("/api/v1/book", s.handleGetBook).Methods(http.MethodGet)

	s.router.HandleFunc("/ws", s.handleWebSocket)
	s.router.HandleFunc("/health", s.handleHealth).Methods(http.MethodGet)
}

// Handler returns the routed handler wrapped in CORS. The WebSocket hub is
// started on first use and lives until the process exits; use Start to tie it
// to a context instead.
func (s *Server) Handler() http.Handler {
	s.startHub(context.Background())
	return s.handler
}

// startHub runs the hub once; later calls are no-ops.
func (s *Server) startHub(ctx context.Context) {
	s.hubOnce.Do(func() { go s.hub.Run(ctx) })
}

// Start serves on addr until ctx is cancelled, then shuts down gracefully.
func (s *Server) Start(ctx context.Context, addr string) error {
	hubCtx, stopHub := context.WithCancel(ctx)
	defer stopHub()
	s.startHub(hubCtx)

	srv := &http.Server{
		Addr:              addr,
		Handler:           s.handler,
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Infow("api_server_starting", "addr", addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), s.opts.ShutdownTimeout)
		defer cancel()
		s.logger.Infow("api_server_stopping")
		return srv.Shutdown(shutdownCtx)
	}
}

// ==============================
// REST Handlers
// ==============================

// handleGetOrders lists one side, or both (buy side first) when side is omitted.
func (s *Server) handleGetOrders(w http.ResponseWriter, r *http.Request) {
	raw := r.URL.Query().Get("side")
	if raw == "" {
		snap := snapshotOf(s.book)
		all := append(toOrderInfos(snap.Buys), toOrderInfos(snap.Sells)...)
		respondJSON(w, all)
		return
	}

	side, err := core.ParseSide(raw)
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid side", err.Error())
		return
	}

	respondJSON(w, toOrderInfos(s.book.OrdersFor(side)))
}

func (s *Server) handleGetOrder(w http.ResponseWriter, r *http.Request) {
	idStr := mux.Vars(r)["id"]
	id, err := strconv.ParseUint(idStr, 10, 64)
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid order id", idStr)
		return
	}

	o, ok := s.book.Find(id)
	if !ok {
		respondError(w, http.StatusNotFound, "order not found", idStr)
		return
	}

	respondJSON(w, toOrderInfo(o))
}

func (s *Server) handleGetSummary(w http.ResponseWriter, r *http.Request) {
	snap := snapshotOf(s.book)
	respondJSON(w, BookSummary{
		Total:        snap.Count(),
		BuyCount:     len(snap.Buys),
		SellCount:    len(snap.Sells),
		BuyNotional:  Number(snap.BuyNotional),
		SellNotional: Number(snap.SellNotional),
	})
}

func (s *Server) handleGetBook(w http.ResponseWriter, r *http.Request) {
	var buf bytes.Buffer
	if err := RenderBook(&buf, s.book); err != nil {
		respondError(w, http.StatusInternalServerError, "render failed", err.Error())
		return
	}
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.Write(buf.Bytes())
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, map[string]string{"status": "ok"})
}

// ==============================
// Broadcast Methods
// ==============================

// BroadcastOrder pushes a newly submitted order to subscribers of its side.
func (s *Server) BroadcastOrder(o core.Order) {
	channel := OrdersChannel(o.Side)
	s.hub.BroadcastToChannel(channel, OrderUpdate{
		Type:    "order",
		Channel: channel,
		Order:   toOrderInfo(o),
	})
}

// ==============================
// Helper Functions
// ==============================

func respondJSON(w http.ResponseWriter, data interface{}) {
	body, err := json.Marshal(data)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "encoding failed", err.Error())
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.Write(body)
}

func respondError(w http.ResponseWriter, status int, error string, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(ErrorResponse{
		Error:   error,
		Message: message,
	})
}
