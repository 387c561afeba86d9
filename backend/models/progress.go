package models

import "time"

// HistoryEntry is one immutable log line: a specific day of a routine was
// marked done on a specific calendar date. The log is append-only and never
// deduplicated; marking the same day twice appends twice.
type HistoryEntry struct {
	Date         string `json:"date"` // YYYY-MM-DD
	DayIndex     int    `json:"dayIndex"`
	ExerciseName string `json:"exerciseName"`
}

// AssignedRoutine records that a routine is active for a user. At most one
// row per (user, routine); re-assigning keeps the existing row.
type AssignedRoutine struct {
	ID         uint      `gorm:"primaryKey" json:"-"`
	UserID     uint      `gorm:"not null;uniqueIndex:uidx_assigned_user_routine" json:"userId"`
	RoutineID  string    `gorm:"not null;uniqueIndex:uidx_assigned_user_routine" json:"routineId"`
	AssignedAt time.Time `json:"assignedAt"`
}

// RoutineProgress is the per-(user, routine) completion state: which days are
// done, when the routine was first fully completed, and the history log.
type RoutineProgress struct {
	ID          uint           `gorm:"primaryKey" json:"-"`
	CreatedAt   time.Time      `json:"-"`
	UpdatedAt   time.Time      `json:"-"`
	UserID      uint           `gorm:"not null;uniqueIndex:uidx_progress_user_routine" json:"userId"`
	RoutineID   string         `gorm:"not null;uniqueIndex:uidx_progress_user_routine" json:"routineId"`
	DaysDone    []bool         `gorm:"serializer:json" json:"daysDone"`
	CompletedAt *time.Time     `json:"completedAt"`
	History     []HistoryEntry `gorm:"serializer:json" json:"history"`
}

// NewRoutineProgress returns the zero-progress record for a freshly assigned
// routine: every day pending, empty history, not completed.
func NewRoutineProgress(userID uint, routineID string, totalDays int) RoutineProgress {
	if totalDays < 0 {
		totalDays = 0
	}
	return RoutineProgress{
		UserID:    userID,
		RoutineID: routineID,
		DaysDone:  make([]bool, totalDays),
		History:   []HistoryEntry{},
	}
}

// EnsureLength pads DaysDone with false up to totalDays. The slice only ever
// grows; a routine edit that removes days does not shrink recorded progress.
func (p *RoutineProgress) EnsureLength(totalDays int) {
	if n := totalDays - len(p.DaysDone); n > 0 {
		p.DaysDone = append(p.DaysDone, make([]bool, n)...)
	}
}

// MarkDay marks dayIndex as done and appends a history entry dated now. When
// the mark completes every day for the first time, CompletedAt is stamped.
// Marking an already-done day is not an error: the day stays true and another
// history entry is appended. Days are never unmarked and CompletedAt, once
// set, is never cleared or moved.
func (p *RoutineProgress) MarkDay(dayIndex, totalDays int, exerciseName string, now time.Time) {
	p.EnsureLength(totalDays)
	p.EnsureLength(dayIndex + 1)
	p.DaysDone[dayIndex] = true
	p.History = append(p.History, HistoryEntry{
		Date:         now.Format("2006-01-02"),
		DayIndex:     dayIndex,
		ExerciseName: exerciseName,
	})
	if p.CompletedAt == nil && p.AllDone() {
		t := now
		p.CompletedAt = &t
	}
}

// AllDone reports whether every scheduled day is marked done. An empty
// schedule does not count as done.
func (p *RoutineProgress) AllDone() bool {
	if len(p.DaysDone) == 0 {
		return false
	}
	for _, done := range p.DaysDone {
		if !done {
			return false
		}
	}
	return true
}

// NextPendingDay returns the index of the first pending day, considering
// DaysDone padded out to totalDays. When everything is done it returns the
// last index so the caller can reopen the routine in review mode.
func (p *RoutineProgress) NextPendingDay(totalDays int) int {
	n := len(p.DaysDone)
	if totalDays > n {
		n = totalDays
	}
	for i := 0; i < n; i++ {
		if i >= len(p.DaysDone) || !p.DaysDone[i] {
			return i
		}
	}
	if n == 0 {
		return 0
	}
	return n - 1
}
