package models

import (
	"math"
	"time"
)

// Monday-first short day labels (L..D), as rendered on the weekly chart.
var dayLabels = [7]string{"L", "M", "X", "J", "V", "S", "D"}

// WeeklyActivity is the trailing-7-day bar chart: one bucket per calendar
// day, oldest first, today last.
type WeeklyActivity struct {
	Dates  []string `json:"dates"`
	Counts []int    `json:"counts"`
	Labels []string `json:"labels"`
}

// PatientStats is the patient dashboard roll-up.
type PatientStats struct {
	CompletedCount  int            `json:"completedCount"`
	TotalCount      int            `json:"totalCount"`
	ExercisesCount  int            `json:"exercisesCount"`
	ActiveDaysCount int            `json:"activeDaysCount"`
	Weekly          WeeklyActivity `json:"weekly"`
}

// TherapistSummary aggregates progress across every patient working on the
// therapist's own routines.
type TherapistSummary struct {
	TotalCreated      int `json:"totalCreated"`
	ActivePatients    int `json:"activePatients"`
	CompletedRoutines int `json:"completedRoutines"`
	SuccessRate       int `json:"successRate"` // percent, rounded
}

// BuildPatientStats derives the dashboard numbers from the user's assigned
// routine ids and their full set of progress records. completedCount only
// counts assigned routines; exercises and active days count every record,
// including progress kept on routines that were never formally assigned.
func BuildPatientStats(assignedIDs []string, records []RoutineProgress, today time.Time) PatientStats {
	byRoutine := make(map[string]*RoutineProgress, len(records))
	for i := range records {
		byRoutine[records[i].RoutineID] = &records[i]
	}

	completed := 0
	for _, id := range assignedIDs {
		if rec, ok := byRoutine[id]; ok && rec.AllDone() {
			completed++
		}
	}

	exercises := 0
	activeDays := make(map[string]struct{})
	for i := range records {
		exercises += len(records[i].History)
		for _, h := range records[i].History {
			activeDays[h.Date] = struct{}{}
		}
	}

	return PatientStats{
		CompletedCount:  completed,
		TotalCount:      len(assignedIDs),
		ExercisesCount:  exercises,
		ActiveDaysCount: len(activeDays),
		Weekly:          BuildWeeklyActivity(records, today),
	}
}

// BuildWeeklyActivity buckets history entries into the trailing 7 calendar
// days ending today. Labels follow the ISO week, Monday first, so Sunday maps
// to index 6 regardless of where it falls in the window.
func BuildWeeklyActivity(records []RoutineProgress, today time.Time) WeeklyActivity {
	w := WeeklyActivity{
		Dates:  make([]string, 7),
		Counts: make([]int, 7),
		Labels: make([]string, 7),
	}
	index := make(map[string]int, 7)
	for i := 0; i < 7; i++ {
		d := today.AddDate(0, 0, i-6)
		ds := d.Format("2006-01-02")
		w.Dates[i] = ds
		w.Labels[i] = dayLabels[(int(d.Weekday())+6)%7]
		index[ds] = i
	}
	for i := range records {
		for _, h := range records[i].History {
			if at, ok := index[h.Date]; ok {
				w.Counts[at]++
			}
		}
	}
	return w
}

// BuildTherapistSummary rolls up the progress records that reference the
// therapist's routines. successRate is completed/total as a rounded percent,
// 0 when no patient has any record yet.
func BuildTherapistSummary(owned []Routine, records []RoutineProgress) TherapistSummary {
	patients := make(map[uint]struct{})
	completed := 0
	for i := range records {
		patients[records[i].UserID] = struct{}{}
		if records[i].AllDone() {
			completed++
		}
	}

	rate := 0
	if len(records) > 0 {
		rate = int(math.Round(float64(completed) / float64(len(records)) * 100))
	}

	return TherapistSummary{
		TotalCreated:      len(owned),
		ActivePatients:    len(patients),
		CompletedRoutines: completed,
		SuccessRate:       rate,
	}
}
