package server

import (
	"context"
	"fmt"
	"net/http"

	"github.com/Rext-dev/Uno-Game/internal/parser"

	"github.com/gorilla/websocket"
)

// HandlePlayerInput upgrades a roster member to a websocket and answers
// each command with one reply. Nothing is sent unprompted.
func (s *GameServer) HandlePlayerInput(writer http.ResponseWriter, request *http.Request) {
	gameID, playerID, ok := s.routeGame(writer, request)
	if !ok {
		return
	}
	players, err := s.Engine.GetGamePlayers(request.Context(), gameID)
	if err != nil {
		s.reply(writer, request, nil, err)
		return
	}
	if !isMember(players, playerID) {
		s.sendError(writer, fmt.Sprintf("player %d is not in game %d", playerID, gameID), http.StatusForbidden)
		return
	}
	wssConn := s.UpgradeToWebsocket(writer, request)
	if wssConn == nil {
		return
	}
	session := s.ConnStore.AddConnection(gameID, playerID, wssConn)
	defer s.ConnStore.RemoveConnection(gameID, playerID, session)
	s.Logger.Info(fmt.Sprintf("Player %d connected to game %d", playerID, gameID))

	for {
		_, data, err := wssConn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				s.Logger.Error(fmt.Sprintf("Player %d dropped from game %d", playerID, gameID), err)
			} else {
				s.Logger.Info(fmt.Sprintf("Player %d disconnected from game %d", playerID, gameID))
			}
			return
		}
		response := s.runCommand(request.Context(), gameID, playerID, data)
		if err := session.WriteJSON(response); err != nil {
			s.Logger.Error("Failed to write websocket reply", err)
			return
		}
	}
}

func (s *GameServer) runCommand(ctx context.Context, gameID, playerID int64, data []byte) parser.Response {
	cmd, err := parser.ParseCommand(data)
	if err != nil {
		return parser.Response{Success: false, Message: err.Error()}
	}
	var result any
	switch cmd.Kind {
	case parser.CommandStatus:
		result, err = s.Engine.GetGameStatus(ctx, gameID)
	case parser.CommandPlay:
		result, err = s.Engine.PlayCard(ctx, gameID, playerID, cmd.CardID, cmd.DeclaredColor)
	case parser.CommandDraw:
		result, err = s.Engine.DrawCard(ctx, gameID, playerID)
	case parser.CommandHand:
		result, err = s.Engine.GetHand(ctx, gameID, playerID)
	case parser.CommandLeave:
		result, err = s.Engine.LeaveGame(ctx, gameID, playerID)
	}
	if err != nil {
		if statusFor(err) == http.StatusInternalServerError {
			s.Logger.Error(fmt.Sprintf("Command %s failed in game %d", cmd.Kind, gameID), err)
		}
		return parser.Response{Success: false, Message: messageFor(err)}
	}
	return parser.Response{Success: true, Data: result}
}
