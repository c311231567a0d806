package server

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/Rext-dev/Uno-Game/internal/parser"
	"github.com/Rext-dev/Uno-Game/internal/uno"
)

// statusFor maps an engine error to the HTTP status reported for it.
func statusFor(err error) int {
	switch uno.KindOf(err) {
	case uno.KindNotFound:
		return http.StatusNotFound
	case uno.KindInvalidState, uno.KindConflict, uno.KindCapacity:
		return http.StatusConflict
	case uno.KindForbidden:
		return http.StatusForbidden
	case uno.KindIllegalMove, uno.KindInsufficientPlayers, uno.KindOutOfCards:
		return http.StatusUnprocessableEntity
	}
	return http.StatusInternalServerError
}

// messageFor hides infrastructure failures from clients.
func messageFor(err error) string {
	var domainErr *uno.Error
	if errors.As(err, &domainErr) {
		return domainErr.Error()
	}
	return "internal error"
}

func (s *GameServer) sendResponse(writer http.ResponseWriter, response parser.Response, status int) {
	respBody, err := json.Marshal(response)
	if err != nil {
		s.Logger.Error("Failed to encode response", err)
		writer.WriteHeader(http.StatusInternalServerError)
		return
	}
	writer.Header().Set("Content-Type", "application/json")
	writer.WriteHeader(status)
	if _, err := writer.Write(respBody); err != nil {
		s.Logger.Error("Failed to write response body", err)
	}
}

func (s *GameServer) sendData(writer http.ResponseWriter, data any, status int) {
	s.sendResponse(writer, parser.Response{Success: true, Data: data}, status)
}

func (s *GameServer) sendError(writer http.ResponseWriter, message string, status int) {
	s.sendResponse(writer, parser.Response{Success: false, Message: message}, status)
}

func (s *GameServer) sendEngineError(writer http.ResponseWriter, err error) {
	s.sendError(writer, messageFor(err), statusFor(err))
}
