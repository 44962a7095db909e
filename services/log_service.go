package services

import (
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/Shnickelbob/Fall-2025-MacroPal/models"
	"github.com/Shnickelbob/Fall-2025-MacroPal/utils"
)

// LogService owns the daily food log: entry creation, per-day listing,
// owner-scoped deletion and the read-side summary that combines entries with
// the user's goals.
type LogService struct {
	db    *gorm.DB
	days  *DayKeys
	goals *GoalService
	hub   *RealtimeHub // optional, nil disables realtime pushes
}

func NewLogService(db *gorm.DB, days *DayKeys, goals *GoalService, hub *RealtimeHub) *LogService {
	return &LogService{db: db, days: days, goals: goals, hub: hub}
}

// LogEntryInput is the wire shape of a logging action. All numeric fields use
// the tolerant Numeric type: legacy clients send empty strings for fields the
// user left blank, and those coerce to a safe default instead of rejecting
// the request.
type LogEntryInput struct {
	FoodID   utils.Numeric `json:"foodId"`
	Name     string        `json:"name"`
	Cal      utils.Numeric `json:"cal"`
	Protein  utils.Numeric `json:"protein"`
	Carbs    utils.Numeric `json:"carbs"`
	Fat      utils.Numeric `json:"fat"`
	Qty      utils.Numeric `json:"qty"`
	Servings utils.Numeric `json:"servings"`
}

// Macros is one value per tracked macro-nutrient, used for both totals and
// remaining allowances.
type Macros struct {
	Cal     float64 `json:"cal"`
	Protein float64 `json:"protein"`
	Carbs   float64 `json:"carbs"`
	Fat     float64 `json:"fat"`
}

// DailySummary is derived state: recomputed from raw entries on every read,
// never persisted or cached.
type DailySummary struct {
	DateKey   string            `json:"dateKey"`
	Entries   []models.LogEntry `json:"entries"`
	Totals    Macros            `json:"totals"`
	Goals     models.Goals      `json:"goals"`
	Remaining Macros            `json:"remaining"`
}

// newEntry normalizes a logging payload into a typed entry. Missing or
// malformed macros become 0; qty and servings fall back to 1, including when
// sent as 0 or an empty string.
func newEntry(userID uint, dayKey string, in LogEntryInput) *models.LogEntry {
	qty := in.Qty.Or(1)
	if qty == 0 {
		qty = 1
	}
	servings := in.Servings.Or(1)
	if servings == 0 {
		servings = 1
	}

	entry := &models.LogEntry{
		UserID:   userID,
		DateKey:  dayKey,
		Name:     in.Name,
		Cal:      in.Cal.Or(0),
		Protein:  in.Protein.Or(0),
		Carbs:    in.Carbs.Or(0),
		Fat:      in.Fat.Or(0),
		Qty:      qty,
		Servings: servings,
	}
	if id := in.FoodID.Or(0); id > 0 {
		fid := uint(id)
		entry.FoodID = &fid
	}
	return entry
}

// Create stores a new entry against today's day key and returns it with its
// generated id. Duplicate logs of the same food on the same day are allowed:
// each row is a separate eating event.
func (s *LogService) Create(userID uint, in LogEntryInput) (*models.LogEntry, error) {
	entry := newEntry(userID, s.days.Now(), in)
	if err := s.db.Create(entry).Error; err != nil {
		return nil, err
	}
	s.hub.BroadcastLogUpdate(userID, entry.DateKey)
	return entry, nil
}

// ListForDay returns the user's entries for a day key, newest first.
func (s *LogService) ListForDay(userID uint, dayKey string) ([]models.LogEntry, error) {
	entries := make([]models.LogEntry, 0)
	err := s.db.
		Where("user_id = ? AND date_key = ?", userID, dayKey).
		Order("created_at desc").
		Find(&entries).Error
	return entries, err
}

// DeleteOne removes an entry only when it belongs to the user. Unknown,
// malformed and foreign ids are silent no-ops so entry existence never leaks
// across users.
func (s *LogService) DeleteOne(userID uint, id string) error {
	entryID, err := uuid.Parse(id)
	if err != nil {
		return nil
	}
	err = s.db.
		Where("id = ? AND user_id = ?", entryID, userID).
		Delete(&models.LogEntry{}).Error
	if err != nil {
		return err
	}
	s.hub.BroadcastLogUpdate(userID, s.days.Now())
	return nil
}

// DeleteMany runs independent single deletes, one per id. There is no batch
// transaction: partial success is expected, and the ids that failed are
// returned for the caller to report.
func (s *LogService) DeleteMany(userID uint, ids []string) (deleted int, failed []string) {
	failed = make([]string, 0)
	for _, id := range ids {
		if err := s.DeleteOne(userID, id); err != nil {
			failed = append(failed, id)
			continue
		}
		deleted++
	}
	return deleted, failed
}

// Summarize builds today's summary fresh from raw entries and the goal
// snapshot. The two reads are not transactional; a concurrent create or
// delete may show up only partially, which is fine for an advisory,
// display-only result that the next read recomputes anyway.
func (s *LogService) Summarize(userID uint) (*DailySummary, error) {
	key := s.days.Now()

	entries, err := s.ListForDay(userID, key)
	if err != nil {
		return nil, err
	}

	goals, err := s.goals.Get(userID)
	if err != nil && !errors.Is(err, ErrUserNotFound) {
		return nil, err
	}

	totals := sumTotals(entries)
	return &DailySummary{
		DateKey:   key,
		Entries:   entries,
		Totals:    totals,
		Goals:     goals,
		Remaining: remainingFor(goals, totals),
	}, nil
}

// sumTotals accumulates macro × qty over the day's entries. Servings is kept
// per entry for display but does not scale totals; recipe logging folds it
// into qty at write time so one factor governs aggregation.
func sumTotals(entries []models.LogEntry) Macros {
	var t Macros
	for _, e := range entries {
		qty := e.Qty
		if qty == 0 {
			qty = 1
		}
		t.Cal += e.Cal * qty
		t.Protein += e.Protein * qty
		t.Carbs += e.Carbs * qty
		t.Fat += e.Fat * qty
	}
	return t
}

// remainingFor clamps goal − total at zero per macro. Exceeding a goal is
// observable only by comparing totals to goals directly.
func remainingFor(goals models.Goals, t Macros) Macros {
	clamp := func(goal, total float64) float64 {
		if r := goal - total; r > 0 {
			return r
		}
		return 0
	}
	return Macros{
		Cal:     clamp(goals.Cal, t.Cal),
		Protein: clamp(goals.Protein, t.Protein),
		Carbs:   clamp(goals.Carbs, t.Carbs),
		Fat:     clamp(goals.Fat, t.Fat),
	}
}
