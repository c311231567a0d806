package server

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/Rext-dev/Uno-Game/internal/engine"
	"github.com/Rext-dev/Uno-Game/internal/parser"
	"github.com/Rext-dev/Uno-Game/internal/uno"

	"github.com/gorilla/mux"
)

func gameIDFrom(request *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(mux.Vars(request)["gameId"], 10, 64)
	return id, err == nil && id > 0
}

// routeGame returns the game id of the route and the authenticated player.
// A bad id has already been answered when ok is false.
func (s *GameServer) routeGame(writer http.ResponseWriter, request *http.Request) (gameID, playerID int64, ok bool) {
	gameID, ok = gameIDFrom(request)
	if !ok {
		s.sendError(writer, "bad game id", http.StatusBadRequest)
		return 0, 0, false
	}
	return gameID, playerFrom(request.Context()), true
}

// reply writes data, or the engine error that prevented it.
func (s *GameServer) reply(writer http.ResponseWriter, request *http.Request, data any, err error) {
	if err != nil {
		if uno.KindOf(err) == uno.KindInternal {
			s.Logger.With("request_id", requestIDFrom(request.Context())).Error(fmt.Sprintf("%s %s failed", request.Method, request.URL.Path), err)
		}
		s.sendEngineError(writer, err)
		return
	}
	s.sendData(writer, data, http.StatusOK)
}

func (s *GameServer) Health(writer http.ResponseWriter, request *http.Request) {
	s.sendData(writer, map[string]string{"status": "ok"}, http.StatusOK)
}

func (s *GameServer) CreateGame(writer http.ResponseWriter, request *http.Request) {
	playerID := playerFrom(request.Context())
	s.Logger.Info(fmt.Sprintf("Player %d is creating a new game", playerID))
	data, err := s.ReadRequestBody(writer, request)
	if err != nil {
		s.sendError(writer, "cannot read request body", http.StatusBadRequest)
		return
	}
	gameRequest, err := parser.ParseCreateGameRequest(data)
	if err != nil {
		s.Logger.Debug(fmt.Sprintf("Bad create game request: %s", err))
		s.sendError(writer, err.Error(), http.StatusBadRequest)
		return
	}
	gameID, err := s.Engine.CreateGame(request.Context(), gameRequest.Title, gameRequest.MaxPlayers, gameRequest.Rules, playerID)
	if err != nil {
		s.reply(writer, request, nil, err)
		return
	}
	s.sendData(writer, parser.CreateGameResponse{GameID: gameID}, http.StatusCreated)
}

func (s *GameServer) GetGameStatus(writer http.ResponseWriter, request *http.Request) {
	gameID, _, ok := s.routeGame(writer, request)
	if !ok {
		return
	}
	view, err := s.Engine.GetGameStatus(request.Context(), gameID)
	s.reply(writer, request, view, err)
}

func (s *GameServer) GetGamePlayers(writer http.ResponseWriter, request *http.Request) {
	gameID, _, ok := s.routeGame(writer, request)
	if !ok {
		return
	}
	players, err := s.Engine.GetGamePlayers(request.Context(), gameID)
	s.reply(writer, request, players, err)
}

func (s *GameServer) GetCurrentPlayer(writer http.ResponseWriter, request *http.Request) {
	gameID, _, ok := s.routeGame(writer, request)
	if !ok {
		return
	}
	current, err := s.Engine.GetCurrentPlayer(request.Context(), gameID)
	s.reply(writer, request, current, err)
}

func (s *GameServer) GetTopDiscardCard(writer http.ResponseWriter, request *http.Request) {
	gameID, _, ok := s.routeGame(writer, request)
	if !ok {
		return
	}
	top, err := s.Engine.GetTopDiscardCard(request.Context(), gameID)
	s.reply(writer, request, map[string]*uno.Face{"topDiscardCard": top}, err)
}

func (s *GameServer) GetGameScores(writer http.ResponseWriter, request *http.Request) {
	gameID, _, ok := s.routeGame(writer, request)
	if !ok {
		return
	}
	scores, err := s.Engine.GetGameScores(request.Context(), gameID)
	s.reply(writer, request, scores, err)
}

func (s *GameServer) GetHand(writer http.ResponseWriter, request *http.Request) {
	gameID, playerID, ok := s.routeGame(writer, request)
	if !ok {
		return
	}
	hand, err := s.Engine.GetHand(request.Context(), gameID, playerID)
	s.reply(writer, request, hand, err)
}

func (s *GameServer) JoinGame(writer http.ResponseWriter, request *http.Request) {
	gameID, playerID, ok := s.routeGame(writer, request)
	if !ok {
		return
	}
	s.Logger.Info(fmt.Sprintf("Player %d is joining game %d", playerID, gameID))
	view, err := s.Engine.JoinGame(request.Context(), gameID, playerID)
	s.reply(writer, request, view, err)
}

func (s *GameServer) LeaveGame(writer http.ResponseWriter, request *http.Request) {
	gameID, playerID, ok := s.routeGame(writer, request)
	if !ok {
		return
	}
	s.Logger.Info(fmt.Sprintf("Player %d is leaving game %d", playerID, gameID))
	view, err := s.Engine.LeaveGame(request.Context(), gameID, playerID)
	s.reply(writer, request, view, err)
}

func (s *GameServer) StartGame(writer http.ResponseWriter, request *http.Request) {
	gameID, playerID, ok := s.routeGame(writer, request)
	if !ok {
		return
	}
	view, err := s.Engine.StartGame(request.Context(), gameID, playerID)
	s.reply(writer, request, view, err)
}

func (s *GameServer) FinishGame(writer http.ResponseWriter, request *http.Request) {
	gameID, playerID, ok := s.routeGame(writer, request)
	if !ok {
		return
	}
	view, err := s.Engine.FinishGameAs(request.Context(), gameID, playerID)
	s.reply(writer, request, view, err)
}

func (s *GameServer) PlayCard(writer http.ResponseWriter, request *http.Request) {
	gameID, playerID, ok := s.routeGame(writer, request)
	if !ok {
		return
	}
	data, err := s.ReadRequestBody(writer, request)
	if err != nil {
		s.sendError(writer, "cannot read request body", http.StatusBadRequest)
		return
	}
	playRequest, err := parser.ParsePlayCardRequest(data)
	if err != nil {
		s.sendError(writer, err.Error(), http.StatusBadRequest)
		return
	}
	view, err := s.Engine.PlayCard(request.Context(), gameID, playerID, playRequest.CardID, playRequest.DeclaredColor)
	s.reply(writer, request, view, err)
}

func (s *GameServer) DrawCard(writer http.ResponseWriter, request *http.Request) {
	gameID, playerID, ok := s.routeGame(writer, request)
	if !ok {
		return
	}
	view, err := s.Engine.DrawCard(request.Context(), gameID, playerID)
	s.reply(writer, request, view, err)
}

// isMember reports whether playerID has a roster entry in the game view.
func isMember(players []engine.PlayerView, playerID int64) bool {
	for _, p := range players {
		if p.ID == playerID {
			return true
		}
	}
	return false
}
