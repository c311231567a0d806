package db

import (
	"context"
	"errors"
	"fmt"

	"github.com/Rext-dev/Uno-Game/internal/logger"

	"github.com/jmoiron/sqlx"
	_ "github.com/mattn/go-sqlite3"
)

// ErrNotFound is returned by lookups that match no row.
var ErrNotFound = errors.New("record not found")

var schema = `CREATE TABLE IF NOT EXISTS games (
  id INTEGER PRIMARY KEY AUTOINCREMENT,
  title varchar(100) NOT NULL,
  status varchar(10) NOT NULL,
  max_players int NOT NULL,
  rules varchar(50) NOT NULL,
  creator_id int NOT NULL,
  created_at TIMESTAMP NOT NULL,

  CONSTRAINT valid_status CHECK (status IN ('inactive', 'active', 'finished')),
  CONSTRAINT min_players CHECK (max_players >= 2)
);

CREATE TABLE IF NOT EXISTS game_players (
  game_id int NOT NULL REFERENCES games(id) ON DELETE CASCADE,
  player_id int NOT NULL,
  status varchar(10) NOT NULL,
  position int NOT NULL,
  score int DEFAULT 0 NOT NULL,
  joined_at TIMESTAMP NOT NULL,
  left_at TIMESTAMP,
  PRIMARY KEY (game_id, player_id),

  CONSTRAINT unq_position UNIQUE (game_id, position),
  CONSTRAINT valid_status CHECK (status IN ('waiting', 'playing', 'left', 'finished'))
);

CREATE TABLE IF NOT EXISTS game_states (
  game_id int PRIMARY KEY REFERENCES games(id) ON DELETE CASCADE,
  current_position int DEFAULT 0 NOT NULL,
  direction varchar(16) NOT NULL,
  top_color varchar(10) DEFAULT '' NOT NULL,
  top_value varchar(20) DEFAULT '' NOT NULL,
  current_color varchar(10) DEFAULT '' NOT NULL,
  draw_stack int DEFAULT 0 NOT NULL,
  last_action text DEFAULT '' NOT NULL,
  updated_at TIMESTAMP NOT NULL,

  CONSTRAINT valid_direction CHECK (direction IN ('clockwise', 'counterclockwise'))
);

CREATE TABLE IF NOT EXISTS cards (
  id INTEGER PRIMARY KEY AUTOINCREMENT,
  game_id int NOT NULL REFERENCES games(id) ON DELETE CASCADE,
  color varchar(10) NOT NULL,
  value varchar(20) NOT NULL,
  owner_id int,
  status varchar(10) DEFAULT 'deck' NOT NULL,
  draw_order int DEFAULT 0 NOT NULL,
  discard_seq int DEFAULT 0 NOT NULL,

  CONSTRAINT valid_color CHECK (color IN ('red', 'blue', 'green', 'yellow', 'black')),
  CONSTRAINT valid_status CHECK (status IN ('deck', 'hand', 'discard')),
  CONSTRAINT owner_in_hand CHECK ((status = 'hand') = (owner_id IS NOT NULL))
);

CREATE INDEX IF NOT EXISTS idx_cards_pile ON cards(game_id, status);

CREATE TABLE IF NOT EXISTS scores (
  id INTEGER PRIMARY KEY AUTOINCREMENT,
  game_id int NOT NULL REFERENCES games(id) ON DELETE CASCADE,
  player_id int NOT NULL,
  score int NOT NULL,
  recorded_at TIMESTAMP NOT NULL,

  CONSTRAINT non_negative_score CHECK (score >= 0)
);`

// Store is the transactional entity store used by the engine. Every read
// and write happens through a Tx handed to WithTx.
type Store interface {
	WithTx(ctx context.Context, fn func(tx Tx) error) error
	CloseConnection()
}

func SetupDB(dbName string, log logger.Logger) (*SqliteStore, error) {
	store := &SqliteStore{Logger: log}
	if err := store.SetupConnection(dbName); err != nil {
		return nil, err
	}
	return store, nil
}

type SqliteStore struct {
	Conn   *sqlx.DB
	Logger logger.Logger
}

// SetupConnection opens <dbname>.db. Transactions start with BEGIN
// IMMEDIATE so concurrent writers queue on the database lock instead of
// failing on upgrade.
func (s *SqliteStore) SetupConnection(dbname string) error {
	sqlite_dbfile := dbname + ".db"
	dsn := fmt.Sprintf("file:%s?_txlock=immediate&_busy_timeout=10000&_foreign_keys=on", sqlite_dbfile)
	db, err := sqlx.Connect("sqlite3", dsn)
	if err != nil {
		s.Logger.Error("Database setup failed", err)
		return err
	}
	if _, err := db.Exec(schema); err != nil {
		s.Logger.Error("Database schema setup failed", err)
		db.Close()
		return err
	}
	s.Conn = db
	s.Logger.Info(fmt.Sprintf("Database %s setup successfully", sqlite_dbfile))
	return nil
}

func (s *SqliteStore) CloseConnection() {
	s.Logger.Info("Closing database connection")
	if err := s.Conn.Close(); err != nil {
		s.Logger.Error("Failed to tear down database connection", err)
		return
	}
	s.Logger.Info("Database connection closed successfully")
}

// WithTx runs fn inside one transaction. It commits when fn returns nil and
// rolls back otherwise; fn's error is returned unchanged.
func (s *SqliteStore) WithTx(ctx context.Context, fn func(tx Tx) error) error {
	txn, err := s.Conn.BeginTxx(ctx, nil)
	if err != nil {
		s.Logger.Error("Failed to begin txn", err)
		return fmt.Errorf("begin txn: %w", err)
	}
	defer func() {
		if p := recover(); p != nil {
			txn.Rollback()
			panic(p)
		}
	}()
	if err := fn(&sqliteTx{txn: txn}); err != nil {
		if errRoll := txn.Rollback(); errRoll != nil {
			s.Logger.Error("Failed to rollback txn", errRoll)
		}
		return err
	}
	if errCommit := txn.Commit(); errCommit != nil {
		s.Logger.Error("Failed to commit txn", errCommit)
		return fmt.Errorf("commit txn: %w", errCommit)
	}
	return nil
}
