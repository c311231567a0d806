//go:generate mockery --name=GameEngine --output=./mocks
package server

import (
	"context"
	"errors"
	"fmt"
	"io"
	"math/rand"
	"net"
	"net/http"
	"os"
	"time"

	"github.com/Rext-dev/Uno-Game/internal/auth"
	"github.com/Rext-dev/Uno-Game/internal/config"
	"github.com/Rext-dev/Uno-Game/internal/db"
	"github.com/Rext-dev/Uno-Game/internal/engine"
	"github.com/Rext-dev/Uno-Game/internal/logger"
	"github.com/Rext-dev/Uno-Game/internal/state"
	"github.com/Rext-dev/Uno-Game/internal/uno"

	"github.com/gorilla/mux"
	"github.com/gorilla/websocket"
	"golang.org/x/sync/errgroup"
)

const HTTP_API_V1_PREFIX = "/api/v1"
const MAX_REQUEST_BODY = 1 << 16
const SHUTDOWN_TIMEOUT = 10 * time.Second

// GameEngine is the set of game operations the API exposes.
type GameEngine interface {
	CreateGame(ctx context.Context, title string, maxPlayers int, rules string, creatorID int64) (int64, error)
	JoinGame(ctx context.Context, gameID, playerID int64) (*engine.GameStatusView, error)
	LeaveGame(ctx context.Context, gameID, playerID int64) (*engine.GameStatusView, error)
	StartGame(ctx context.Context, gameID, requesterID int64) (*engine.GameStatusView, error)
	FinishGameAs(ctx context.Context, gameID, requesterID int64) (*engine.GameStatusView, error)
	PlayCard(ctx context.Context, gameID, playerID, cardID int64, declared uno.Color) (*engine.GameStatusView, error)
	DrawCard(ctx context.Context, gameID, playerID int64) (*engine.GameStatusView, error)
	GetGameStatus(ctx context.Context, gameID int64) (*engine.GameStatusView, error)
	GetGamePlayers(ctx context.Context, gameID int64) ([]engine.PlayerView, error)
	GetCurrentPlayer(ctx context.Context, gameID int64) (*engine.CurrentPlayerView, error)
	GetTopDiscardCard(ctx context.Context, gameID int64) (*uno.Face, error)
	GetGameScores(ctx context.Context, gameID int64) ([]engine.ScoreView, error)
	GetHand(ctx context.Context, gameID, playerID int64) ([]engine.CardView, error)
}

// TokenResolver maps a bearer token to the player it was issued for.
type TokenResolver interface {
	Resolve(token string) (int64, error)
}

type GameServer struct {
	Engine      GameEngine
	Logger      logger.Logger
	Tokens      TokenResolver
	Router      *mux.Router
	ConnStore   state.ConnectionStore
	port        string
	wssUpgrader websocket.Upgrader
	db          db.Store
}

func (s *GameServer) UpgradeToWebsocket(writer http.ResponseWriter, request *http.Request) *websocket.Conn {
	conn, err := s.wssUpgrader.Upgrade(writer, request, nil)
	if err != nil {
		s.Logger.Error("Failed to upgrade to WS connection", err)
		return nil
	}
	return conn
}

func (s *GameServer) ReadRequestBody(writer http.ResponseWriter, request *http.Request) ([]byte, error) {
	bytesRead, err := io.ReadAll(http.MaxBytesReader(writer, request.Body, MAX_REQUEST_BODY))
	if err != nil {
		s.Logger.Error("Failed to read request body", err)
		return nil, err
	}
	return bytesRead, nil
}

// Run serves until ctx is cancelled or the listener fails, then shuts the
// server down.
func (s *GameServer) Run(ctx context.Context) error {
	listener, err := net.Listen("tcp", fmt.Sprintf(":%s", s.port))
	if err != nil {
		s.Logger.Error(fmt.Sprintf("Failed to listen on port %s", s.port), err)
		return err
	}
	return s.Serve(ctx, listener)
}

func (s *GameServer) Serve(ctx context.Context, listener net.Listener) error {
	httpServer := &http.Server{
		Handler:           s.Router,
		ReadHeaderTimeout: 5 * time.Second,
		BaseContext:       func(net.Listener) context.Context { return ctx },
	}
	grp, gctx := errgroup.WithContext(ctx)
	grp.Go(func() error {
		s.Logger.Info(fmt.Sprintf("Starting server on %s", listener.Addr()))
		if err := httpServer.Serve(listener); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	grp.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), SHUTDOWN_TIMEOUT)
		defer cancel()
		return s.Shutdown(shutdownCtx, httpServer)
	})
	return grp.Wait()
}

func (s *GameServer) Shutdown(ctx context.Context, httpServer *http.Server) error {
	s.Logger.Info("Shutting down server....")
	err := httpServer.Shutdown(ctx)
	closed := s.ConnStore.CloseAll()
	s.Logger.Info(fmt.Sprintf("Closed %d websocket sessions", closed))
	if s.db != nil {
		s.db.CloseConnection()
	}
	s.Logger.Info("Goodbye !")
	return err
}

func (s *GameServer) registerRoutes() {
	s.Router.Use(s.requestID)
	s.Router.HandleFunc("/health", s.Health).Methods("GET")

	games := s.Router.PathPrefix("/games").Subrouter()
	games.Use(s.authenticate)
	games.HandleFunc("", s.CreateGame).Methods("POST")
	games.HandleFunc("/{gameId:[0-9]+}", s.GetGameStatus).Methods("GET")
	games.HandleFunc("/{gameId:[0-9]+}/players", s.GetGamePlayers).Methods("GET")
	games.HandleFunc("/{gameId:[0-9]+}/current-player", s.GetCurrentPlayer).Methods("GET")
	games.HandleFunc("/{gameId:[0-9]+}/top-card", s.GetTopDiscardCard).Methods("GET")
	games.HandleFunc("/{gameId:[0-9]+}/scores", s.GetGameScores).Methods("GET")
	games.HandleFunc("/{gameId:[0-9]+}/hand", s.GetHand).Methods("GET")
	games.HandleFunc("/{gameId:[0-9]+}/join", s.JoinGame).Methods("POST")
	games.HandleFunc("/{gameId:[0-9]+}/leave", s.LeaveGame).Methods("POST")
	games.HandleFunc("/{gameId:[0-9]+}/start", s.StartGame).Methods("POST")
	games.HandleFunc("/{gameId:[0-9]+}/finish", s.FinishGame).Methods("POST")
	games.HandleFunc("/{gameId:[0-9]+}/play", s.PlayCard).Methods("POST")
	games.HandleFunc("/{gameId:[0-9]+}/draw", s.DrawCard).Methods("POST")

	connect := s.Router.PathPrefix("/connect").Subrouter()
	connect.Use(s.authenticate)
	connect.HandleFunc("/games/{gameId:[0-9]+}", s.HandlePlayerInput).Methods("GET")
}

func newGameServer(eng GameEngine, tokens TokenResolver, connStore state.ConnectionStore, port string, log logger.Logger) *GameServer {
	gs := &GameServer{
		Engine:    eng,
		Logger:    log,
		Tokens:    tokens,
		Router:    mux.NewRouter().PathPrefix(HTTP_API_V1_PREFIX).Subrouter(),
		ConnStore: connStore,
		port:      port,
		wssUpgrader: websocket.Upgrader{
			CheckOrigin: func(r *http.Request) bool { return true },
		},
	}
	gs.registerRoutes()
	return gs
}

// NewGameServer wires the store, engine and token verifier described by cfg.
func NewGameServer(cfg *config.Config) (*GameServer, error) {
	level, err := logger.ParseLevel(cfg.LogLevel)
	if err != nil {
		return nil, err
	}
	log := logger.NewWithLevel("api_server", level, os.Stdout)
	store, err := db.SetupDB(cfg.DB, logger.NewWithLevel("database", level, os.Stdout))
	if err != nil {
		return nil, err
	}
	rules := engine.Rules{MinPlayers: cfg.MinPlayers, MaxPlayers: cfg.MaxPlayers, HandSize: cfg.HandSize}
	eng := engine.New(store, rules, rand.New(rand.NewSource(time.Now().UnixNano())), logger.NewWithLevel("engine", level, os.Stdout))
	tokens := auth.NewTokens(cfg.TokenSecret, cfg.TokenTTL)
	gs := newGameServer(eng, tokens, state.NewConnectionStore(), cfg.Port, log)
	gs.db = store
	return gs, nil
}
