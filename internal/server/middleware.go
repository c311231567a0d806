package server

import (
	"context"
	"fmt"
	"net/http"

	"github.com/Rext-dev/Uno-Game/internal/auth"

	"github.com/google/uuid"
)

type contextKey int

const (
	playerKey contextKey = iota
	requestIDKey
)

const REQUEST_ID_HEADER = "X-Request-ID"

// requestID tags every request with an id, reusing the caller's when one is
// sent, and logs the request under it.
func (s *GameServer) requestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		id := request.Header.Get(REQUEST_ID_HEADER)
		if _, err := uuid.Parse(id); err != nil {
			id = uuid.NewString()
		}
		writer.Header().Set(REQUEST_ID_HEADER, id)
		s.Logger.With("request_id", id).Debug(fmt.Sprintf("%s %s", request.Method, request.URL.Path))
		ctx := context.WithValue(request.Context(), requestIDKey, id)
		next.ServeHTTP(writer, request.WithContext(ctx))
	})
}

// authenticate resolves the bearer token into the calling player. Websocket
// clients that cannot set headers may pass the token as ?token= instead.
func (s *GameServer) authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		token, ok := auth.BearerToken(request.Header.Get("Authorization"))
		if !ok {
			token = request.URL.Query().Get("token")
		}
		if token == "" {
			s.sendError(writer, "missing bearer token", http.StatusUnauthorized)
			return
		}
		playerID, err := s.Tokens.Resolve(token)
		if err != nil {
			s.Logger.Debug(fmt.Sprintf("Rejected token: %s", err))
			s.sendError(writer, "invalid token", http.StatusUnauthorized)
			return
		}
		ctx := context.WithValue(request.Context(), playerKey, playerID)
		next.ServeHTTP(writer, request.WithContext(ctx))
	})
}

func playerFrom(ctx context.Context) int64 {
	id, _ := ctx.Value(playerKey).(int64)
	return id
}

func requestIDFrom(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey).(string)
	return id
}
