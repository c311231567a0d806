package engine

import (
	"fmt"
	"time"

	"github.com/Rext-dev/Uno-Game/internal/db"
	"github.com/Rext-dev/Uno-Game/internal/logger"
	"github.com/Rext-dev/Uno-Game/internal/uno"
)

// ScoreRecorder persists the result of a finished game.
type ScoreRecorder interface {
	InsertScore(s *db.Score) error
}

type ScoreAggregator struct {
	clock  func() time.Time
	logger logger.Logger
}

func NewScoreAggregator(clock func() time.Time, log logger.Logger) *ScoreAggregator {
	return &ScoreAggregator{clock: clock, logger: log}
}

// PlayerScore is one player's result for a round.
type PlayerScore struct {
	PlayerID int64
	Points   int
}

// ComputeFinishScores credits the player who emptied their hand with the
// points left in every other hand; everybody else scores 0. Without such a
// player nobody scores and nothing is recorded.
func (a *ScoreAggregator) ComputeFinishScores(tx db.Tx, gameID int64) ([]PlayerScore, error) {
	players, err := tx.ListPlayers(gameID)
	if err != nil {
		return nil, err
	}
	var winner *db.GamePlayer
	total := 0
	for i := range players {
		hand, err := tx.ListHand(gameID, players[i].PlayerID)
		if err != nil {
			return nil, err
		}
		if len(hand) == 0 && players[i].Status != uno.PlayerLeft {
			winner = &players[i]
			continue
		}
		faces := make([]uno.Face, len(hand))
		for j, c := range hand {
			faces[j] = c.Face()
		}
		total += uno.HandPoints(faces)
	}

	scores := make([]PlayerScore, 0, len(players))
	for i := range players {
		p := &players[i]
		p.Score = 0
		if winner != nil && p.PlayerID == winner.PlayerID {
			p.Score = total
		}
		if err := tx.UpdatePlayer(p); err != nil {
			return nil, err
		}
		scores = append(scores, PlayerScore{PlayerID: p.PlayerID, Points: p.Score})
	}
	if winner == nil {
		a.logger.Info(fmt.Sprintf("Game %d ended without a winner", gameID))
		return scores, nil
	}
	if err := a.record(tx, gameID, winner.PlayerID, total); err != nil {
		return nil, err
	}
	a.logger.Info(fmt.Sprintf("Player %d won game %d with %d points", winner.PlayerID, gameID, total))
	return scores, nil
}

func (a *ScoreAggregator) record(rec ScoreRecorder, gameID, playerID int64, points int) error {
	return rec.InsertScore(&db.Score{GameID: gameID, PlayerID: playerID, Score: points, RecordedAt: a.clock()})
}
