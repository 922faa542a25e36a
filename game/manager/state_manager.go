package manager

import (
	"sort"
	"time"

	"github.com/google/uuid"
)

// maxRounds caps how many finished rounds are kept in memory.
const maxRounds = 50

// RoundRecord summarises one finished round.
type RoundRecord struct {
	ID        uuid.UUID
	StartTime time.Time
	EndTime   time.Time
	Score     int
	Length    int
	Ticks     int
	Cause     CollisionType
}

// StateManager keeps score for the current round and the session's history.
// Nothing is written to disk.
type StateManager struct {
	roundID    uuid.UUID
	roundStart time.Time
	score      int
	highScore  int
	rounds     []RoundRecord
	played     int
	now        func() time.Time
}

func NewStateManager() *StateManager {
	sm := &StateManager{
		rounds: make([]RoundRecord, 0),
		now:    time.Now,
	}
	sm.StartRound()
	return sm
}

// StartRound begins a fresh round with a new identity and zero score.
func (sm *StateManager) StartRound() uuid.UUID {
	sm.roundID = uuid.New()
	sm.roundStart = sm.now()
	sm.score = 0
	return sm.roundID
}

// EndRound records the current round and returns its summary.
func (sm *StateManager) EndRound(length, ticks int, cause CollisionType) RoundRecord {
	rec := RoundRecord{
		ID:        sm.roundID,
		StartTime: sm.roundStart,
		EndTime:   sm.now(),
		Score:     sm.score,
		Length:    length,
		Ticks:     ticks,
		Cause:     cause,
	}
	if len(sm.rounds) >= maxRounds {
		sm.rounds = sm.rounds[1:]
	}
	sm.rounds = append(sm.rounds, rec)
	sm.played++
	return rec
}

// AddScore credits points to the current round.
func (sm *StateManager) AddScore(points int) {
	sm.score += points
	if sm.score > sm.highScore {
		sm.highScore = sm.score
	}
}

func (sm *StateManager) RoundID() uuid.UUID {
	return sm.roundID
}

func (sm *StateManager) GetScore() int {
	return sm.score
}

func (sm *StateManager) GetHighScore() int {
	return sm.highScore
}

// GetGamesPlayed counts every finished round, including ones trimmed from history.
func (sm *StateManager) GetGamesPlayed() int {
	return sm.played
}

func (sm *StateManager) GetRounds() []RoundRecord {
	out := make([]RoundRecord, len(sm.rounds))
	copy(out, sm.rounds)
	return out
}

// GetAverageScore averages the rounds still held in history.
func (sm *StateManager) GetAverageScore() float64 {
	if len(sm.rounds) == 0 {
		return 0
	}
	total := 0
	for _, r := range sm.rounds {
		total += r.Score
	}
	return float64(total) / float64(len(sm.rounds))
}

// GetMedianScore returns the median score of the rounds in history.
func (sm *StateManager) GetMedianScore() float64 {
	if len(sm.rounds) == 0 {
		return 0
	}
	scores := make([]int, len(sm.rounds))
	for i, r := range sm.rounds {
		scores[i] = r.Score
	}
	sort.Ints(scores)
	n := len(scores)
	if n%2 == 0 {
		return float64(scores[n/2-1]+scores[n/2]) / 2
	}
	return float64(scores[n/2])
}

// GetAverageDuration returns the mean wall-clock length of the rounds in history.
func (sm *StateManager) GetAverageDuration() time.Duration {
	if len(sm.rounds) == 0 {
		return 0
	}
	var total time.Duration
	for _, r := range sm.rounds {
		total += r.EndTime.Sub(r.StartTime)
	}
	return total / time.Duration(len(sm.rounds))
}
