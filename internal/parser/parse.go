package parser

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/Rext-dev/Uno-Game/internal/uno"
)

type CreateGameRequest struct {
	Title      string `json:"title"`
	MaxPlayers int    `json:"max_players"`
	Rules      string `json:"rules"`
}

type PlayCardRequest struct {
	CardID        int64     `json:"card_id"`
	DeclaredColor uno.Color `json:"declared_color"`
}

// CommandKind names what a websocket client asks for.
type CommandKind string

const (
	CommandStatus CommandKind = "status"
	CommandPlay   CommandKind = "play"
	CommandDraw   CommandKind = "draw"
	CommandHand   CommandKind = "hand"
	CommandLeave  CommandKind = "leave"
)

// Command is one inbound websocket message.
type Command struct {
	Kind          CommandKind `json:"kind"`
	CardID        int64       `json:"card_id,omitempty"`
	DeclaredColor uno.Color   `json:"declared_color,omitempty"`
}

// Response is the envelope of every HTTP and websocket reply.
type Response struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
	Data    any    `json:"data,omitempty"`
}

type CreateGameResponse struct {
	GameID int64 `json:"game_id"`
}

var ErrEmptyBody = errors.New("empty request body")

func decode(data []byte, target any) error {
	if len(bytes.TrimSpace(data)) == 0 {
		return ErrEmptyBody
	}
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	return dec.Decode(target)
}

func ParseCreateGameRequest(data []byte) (*CreateGameRequest, error) {
	gameRequest := &CreateGameRequest{}
	if err := decode(data, gameRequest); err != nil {
		return nil, err
	}
	gameRequest.Title = strings.TrimSpace(gameRequest.Title)
	if gameRequest.Title == "" {
		return nil, errors.New("title is required")
	}
	if gameRequest.MaxPlayers < 0 {
		return nil, fmt.Errorf("max_players must not be negative, got %d", gameRequest.MaxPlayers)
	}
	return gameRequest, nil
}

func ParsePlayCardRequest(data []byte) (*PlayCardRequest, error) {
	playRequest := &PlayCardRequest{}
	if err := decode(data, playRequest); err != nil {
		return nil, err
	}
	if playRequest.CardID <= 0 {
		return nil, errors.New("card_id is required")
	}
	if playRequest.DeclaredColor != "" && !playRequest.DeclaredColor.Valid() {
		return nil, fmt.Errorf("unknown color %q", playRequest.DeclaredColor)
	}
	return playRequest, nil
}

func ParseCommand(data []byte) (*Command, error) {
	cmd := &Command{}
	if err := decode(data, cmd); err != nil {
		return nil, err
	}
	switch cmd.Kind {
	case CommandStatus, CommandDraw, CommandHand, CommandLeave:
	case CommandPlay:
		if cmd.CardID <= 0 {
			return nil, errors.New("play needs a card_id")
		}
	default:
		return nil, fmt.Errorf("unknown command %q", cmd.Kind)
	}
	return cmd, nil
}
