package manager

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sync"
	"time"

	"snake-modes/game/types"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// MaxHistory is the number of finished runs kept in the score file.
const MaxHistory = 200

// Logger is the logging surface used by the managers.
type Logger interface {
	Info(string)
	Warning(string)
	Error(string)
}

// RunRecord describes one finished run.
type RunRecord struct {
	ID        uuid.UUID `json:"id"`
	Mode      string    `json:"mode"`
	StartTime time.Time `json:"startTime"`
	EndTime   time.Time `json:"endTime"`
	Score     int       `json:"score"`
	Length    int       `json:"length"`
}

type GameStats struct {
	HighScore    int         `json:"highScore"`
	ScoreHistory []RunRecord `json:"scoreHistory"`
}

// ScoreBook follows engine snapshots and keeps the high score and the history of finished runs.
type ScoreBook struct {
	mu           sync.RWMutex
	filename     string
	highScore    int
	scoreHistory []RunRecord
	current      *RunRecord
	lastStatus   types.Status
	logger       Logger
	now          func() time.Time
}

// NewScoreBook loads saved stats from filename when present. An empty filename keeps the book in memory.
func NewScoreBook(filename string, logger Logger) *ScoreBook {
	sb := &ScoreBook{
		filename:     filename,
		scoreHistory: make([]RunRecord, 0),
		logger:       logger,
		now:          time.Now,
	}
	if filename == "" {
		return sb
	}

	if err := sb.LoadStats(filename); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			sb.logger.Info("no saved scores at " + filename)
		} else {
			sb.logger.Warning(err.Error())
		}
	}
	return sb
}

func (sb *ScoreBook) LoadStats(filename string) error {
	data, err := os.ReadFile(filename)
	if err != nil {
		return errors.Wrap(err, "reading score file")
	}

	var stats GameStats
	if err := json.Unmarshal(data, &stats); err != nil {
		return errors.Wrapf(err, "decoding score file %s", filename)
	}

	sb.mu.Lock()
	defer sb.mu.Unlock()
	sb.highScore = stats.HighScore
	sb.scoreHistory = stats.ScoreHistory
	if sb.scoreHistory == nil {
		sb.scoreHistory = make([]RunRecord, 0)
	}
	return nil
}

func (sb *ScoreBook) SaveStats(filename string) error {
	sb.mu.RLock()
	stats := GameStats{
		HighScore:    sb.highScore,
		ScoreHistory: sb.scoreHistory,
	}
	data, err := json.MarshalIndent(stats, "", "  ")
	sb.mu.RUnlock()
	if err != nil {
		return errors.Wrap(err, "encoding scores")
	}

	if dir := filepath.Dir(filename); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return errors.Wrapf(err, "creating %s", dir)
		}
	}
	return errors.Wrap(os.WriteFile(filename, data, 0644), "writing score file")
}

// Observe feeds the book one engine snapshot. A run opens when status turns RUNNING
// and is recorded when it reaches GAME_OVER. Runs reset before ending are dropped.
func (sb *ScoreBook) Observe(status types.Status, mode types.WallMode, score, length int) {
	sb.mu.Lock()
	prev := sb.lastStatus
	sb.lastStatus = status

	var finished *RunRecord
	switch {
	case status == types.Running && prev != types.Running:
		sb.current = &RunRecord{
			ID:        uuid.New(),
			Mode:      mode.String(),
			StartTime: sb.now(),
		}
	case status == types.GameOver && sb.current != nil:
		finished = sb.current
		finished.EndTime = sb.now()
		finished.Score = score
		finished.Length = length
		sb.current = nil
		sb.addToHistory(*finished)
	case status == types.Idle:
		sb.current = nil
	}
	sb.mu.Unlock()

	if finished == nil || sb.filename == "" {
		return
	}
	if err := sb.SaveStats(sb.filename); err != nil {
		sb.logger.Error(err.Error())
		return
	}
	sb.logger.Info("recorded run " + finished.ID.String())
}

func (sb *ScoreBook) addToHistory(r RunRecord) {
	if r.Score > sb.highScore {
		sb.highScore = r.Score
	}
	sb.scoreHistory = append(sb.scoreHistory, r)
	if len(sb.scoreHistory) > MaxHistory {
		sb.scoreHistory = sb.scoreHistory[len(sb.scoreHistory)-MaxHistory:]
	}
}

func (sb *ScoreBook) GetHighScore() int {
	sb.mu.RLock()
	defer sb.mu.RUnlock()
	return sb.highScore
}

func (sb *ScoreBook) GetScoreHistory() []RunRecord {
	sb.mu.RLock()
	defer sb.mu.RUnlock()
	history := make([]RunRecord, len(sb.scoreHistory))
	copy(history, sb.scoreHistory)
	return history
}
