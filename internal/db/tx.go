package db

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/Rext-dev/Uno-Game/internal/uno"

	"github.com/jmoiron/sqlx"
)

// Tx is a unit of work over the game tables.
type Tx interface {
	InsertGame(g *Game) error
	GetGame(gameID int64) (*Game, error)
	UpdateGameStatus(gameID int64, status uno.GameStatus) error

	InsertPlayer(p *GamePlayer) error
	GetPlayer(gameID, playerID int64) (*GamePlayer, error)
	// ListPlayers returns the roster ordered by position.
	ListPlayers(gameID int64) ([]GamePlayer, error)
	CountPlayers(gameID int64) (int, error)
	UpdatePlayer(p *GamePlayer) error
	DeletePlayer(gameID, playerID int64) error
	// SetPlayersStatus moves every roster row whose status is in from to to.
	SetPlayersStatus(gameID int64, to uno.PlayerStatus, from ...uno.PlayerStatus) error

	InsertState(s *GameState) error
	GetState(gameID int64) (*GameState, error)
	UpdateState(s *GameState) error

	// InsertCards stores cards in slice order and fills in their IDs.
	InsertCards(cards []Card) error
	UpdateCards(cards ...Card) error
	GetCard(gameID, cardID int64) (*Card, error)
	// ListCards returns one pile: the draw pile top first, the discard pile
	// top last, hands by id.
	ListCards(gameID int64, status uno.CardStatus) ([]Card, error)
	ListHand(gameID, playerID int64) ([]Card, error)
	CountCards(gameID int64) (map[uno.CardStatus]int, error)

	InsertScore(s *Score) error
	ListScores(gameID int64) ([]Score, error)
}

type sqliteTx struct {
	txn *sqlx.Tx
}

func notFound(err error, what string) error {
	if errors.Is(err, sql.ErrNoRows) {
		return fmt.Errorf("%s: %w", what, ErrNotFound)
	}
	return fmt.Errorf("fetch %s: %w", what, err)
}

func (t *sqliteTx) InsertGame(g *Game) error {
	sql := `INSERT INTO games(title, status, max_players, rules, creator_id, created_at)
VALUES(:title, :status, :max_players, :rules, :creator_id, :created_at);`
	res, err := t.txn.NamedExec(sql, g)
	if err != nil {
		return fmt.Errorf("insert game: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return fmt.Errorf("insert game: %w", err)
	}
	g.ID = id
	return nil
}

func (t *sqliteTx) GetGame(gameID int64) (*Game, error) {
	game := &Game{}
	if err := t.txn.Get(game, `SELECT * FROM games WHERE id = ?;`, gameID); err != nil {
		return nil, notFound(err, fmt.Sprintf("game %d", gameID))
	}
	return game, nil
}

func (t *sqliteTx) UpdateGameStatus(gameID int64, status uno.GameStatus) error {
	_, err := t.txn.Exec(`UPDATE games SET status = ? WHERE id = ?;`, status, gameID)
	if err != nil {
		return fmt.Errorf("update game status: %w", err)
	}
	return nil
}

func (t *sqliteTx) InsertPlayer(p *GamePlayer) error {
	sql := `INSERT INTO game_players(game_id, player_id, status, position, score, joined_at, left_at)
VALUES(:game_id, :player_id, :status, :position, :score, :joined_at, :left_at);`
	if _, err := t.txn.NamedExec(sql, p); err != nil {
		return fmt.Errorf("insert player: %w", err)
	}
	return nil
}

func (t *sqliteTx) GetPlayer(gameID, playerID int64) (*GamePlayer, error) {
	player := &GamePlayer{}
	sql := `SELECT * FROM game_players WHERE game_id = ? AND player_id = ?;`
	if err := t.txn.Get(player, sql, gameID, playerID); err != nil {
		return nil, notFound(err, fmt.Sprintf("player %d in game %d", playerID, gameID))
	}
	return player, nil
}

func (t *sqliteTx) ListPlayers(gameID int64) ([]GamePlayer, error) {
	players := []GamePlayer{}
	sql := `SELECT * FROM game_players WHERE game_id = ? ORDER BY position ASC;`
	if err := t.txn.Select(&players, sql, gameID); err != nil {
		return nil, fmt.Errorf("list players: %w", err)
	}
	return players, nil
}

func (t *sqliteTx) CountPlayers(gameID int64) (int, error) {
	var n int
	if err := t.txn.Get(&n, `SELECT COUNT(*) FROM game_players WHERE game_id = ?;`, gameID); err != nil {
		return 0, fmt.Errorf("count players: %w", err)
	}
	return n, nil
}

func (t *sqliteTx) UpdatePlayer(p *GamePlayer) error {
	sql := `UPDATE game_players SET status = :status, position = :position, score = :score, left_at = :left_at
WHERE game_id = :game_id AND player_id = :player_id;`
	if _, err := t.txn.NamedExec(sql, p); err != nil {
		return fmt.Errorf("update player: %w", err)
	}
	return nil
}

func (t *sqliteTx) DeletePlayer(gameID, playerID int64) error {
	sql := `DELETE FROM game_players WHERE game_id = ? AND player_id = ?;`
	if _, err := t.txn.Exec(sql, gameID, playerID); err != nil {
		return fmt.Errorf("delete player: %w", err)
	}
	return nil
}

func (t *sqliteTx) SetPlayersStatus(gameID int64, to uno.PlayerStatus, from ...uno.PlayerStatus) error {
	if len(from) == 0 {
		return nil
	}
	query, args, err := sqlx.In(`UPDATE game_players SET status = ? WHERE game_id = ? AND status IN (?);`, to, gameID, from)
	if err != nil {
		return fmt.Errorf("set players status: %w", err)
	}
	if _, err := t.txn.Exec(t.txn.Rebind(query), args...); err != nil {
		return fmt.Errorf("set players status: %w", err)
	}
	return nil
}

func (t *sqliteTx) InsertState(s *GameState) error {
	sql := `INSERT INTO game_states(game_id, current_position, direction, top_color, top_value, current_color, draw_stack, last_action, updated_at)
VALUES(:game_id, :current_position, :direction, :top_color, :top_value, :current_color, :draw_stack, :last_action, :updated_at);`
	if _, err := t.txn.NamedExec(sql, s); err != nil {
		return fmt.Errorf("insert game state: %w", err)
	}
	return nil
}

func (t *sqliteTx) GetState(gameID int64) (*GameState, error) {
	state := &GameState{}
	if err := t.txn.Get(state, `SELECT * FROM game_states WHERE game_id = ?;`, gameID); err != nil {
		return nil, notFound(err, fmt.Sprintf("state of game %d", gameID))
	}
	return state, nil
}

func (t *sqliteTx) UpdateState(s *GameState) error {
	sql := `UPDATE game_states SET current_position = :current_position, direction = :direction,
top_color = :top_color, top_value = :top_value, current_color = :current_color,
draw_stack = :draw_stack, last_action = :last_action, updated_at = :updated_at
WHERE game_id = :game_id;`
	if _, err := t.txn.NamedExec(sql, s); err != nil {
		return fmt.Errorf("update game state: %w", err)
	}
	return nil
}

func (t *sqliteTx) InsertCards(cards []Card) error {
	stmt, err := t.txn.PrepareNamed(`INSERT INTO cards(game_id, color, value, owner_id, status, draw_order, discard_seq)
VALUES(:game_id, :color, :value, :owner_id, :status, :draw_order, :discard_seq);`)
	if err != nil {
		return fmt.Errorf("insert cards: %w", err)
	}
	defer stmt.Close()
	for i := range cards {
		res, err := stmt.Exec(cards[i])
		if err != nil {
			return fmt.Errorf("insert card: %w", err)
		}
		id, err := res.LastInsertId()
		if err != nil {
			return fmt.Errorf("insert card: %w", err)
		}
		cards[i].ID = id
	}
	return nil
}

func (t *sqliteTx) UpdateCards(cards ...Card) error {
	if len(cards) == 0 {
		return nil
	}
	stmt, err := t.txn.PrepareNamed(`UPDATE cards SET owner_id = :owner_id, status = :status,
draw_order = :draw_order, discard_seq = :discard_seq WHERE id = :id AND game_id = :game_id;`)
	if err != nil {
		return fmt.Errorf("update cards: %w", err)
	}
	defer stmt.Close()
	for _, card := range cards {
		if _, err := stmt.Exec(card); err != nil {
			return fmt.Errorf("update card %d: %w", card.ID, err)
		}
	}
	return nil
}

func (t *sqliteTx) GetCard(gameID, cardID int64) (*Card, error) {
	card := &Card{}
	if err := t.txn.Get(card, `SELECT * FROM cards WHERE game_id = ? AND id = ?;`, gameID, cardID); err != nil {
		return nil, notFound(err, fmt.Sprintf("card %d", cardID))
	}
	return card, nil
}

func (t *sqliteTx) ListCards(gameID int64, status uno.CardStatus) ([]Card, error) {
	order := "id"
	switch status {
	case uno.InDeck:
		order = "draw_order, id"
	case uno.InDiscard:
		order = "discard_seq, id"
	}
	cards := []Card{}
	sql := fmt.Sprintf(`SELECT * FROM cards WHERE game_id = ? AND status = ? ORDER BY %s;`, order)
	if err := t.txn.Select(&cards, sql, gameID, status); err != nil {
		return nil, fmt.Errorf("list %s cards: %w", status, err)
	}
	return cards, nil
}

func (t *sqliteTx) ListHand(gameID, playerID int64) ([]Card, error) {
	cards := []Card{}
	sql := `SELECT * FROM cards WHERE game_id = ? AND status = ? AND owner_id = ? ORDER BY id;`
	if err := t.txn.Select(&cards, sql, gameID, uno.InHand, playerID); err != nil {
		return nil, fmt.Errorf("list hand: %w", err)
	}
	return cards, nil
}

func (t *sqliteTx) CountCards(gameID int64) (map[uno.CardStatus]int, error) {
	rows := []struct {
		Status uno.CardStatus `db:"status"`
		N      int            `db:"n"`
	}{}
	sql := `SELECT status, COUNT(*) AS n FROM cards WHERE game_id = ? GROUP BY status;`
	if err := t.txn.Select(&rows, sql, gameID); err != nil {
		return nil, fmt.Errorf("count cards: %w", err)
	}
	counts := make(map[uno.CardStatus]int, len(rows))
	for _, r := range rows {
		counts[r.Status] = r.N
	}
	return counts, nil
}

func (t *sqliteTx) InsertScore(s *Score) error {
	sql := `INSERT INTO scores(game_id, player_id, score, recorded_at) VALUES(:game_id, :player_id, :score, :recorded_at);`
	res, err := t.txn.NamedExec(sql, s)
	if err != nil {
		return fmt.Errorf("insert score: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return fmt.Errorf("insert score: %w", err)
	}
	s.ID = id
	return nil
}

func (t *sqliteTx) ListScores(gameID int64) ([]Score, error) {
	scores := []Score{}
	sql := `SELECT * FROM scores WHERE game_id = ? ORDER BY score DESC, id;`
	if err := t.txn.Select(&scores, sql, gameID); err != nil {
		return nil, fmt.Errorf("list scores: %w", err)
	}
	return scores, nil
}
