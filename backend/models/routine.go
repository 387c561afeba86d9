package models

import "time"

// DayPlan is one day of a routine: a single exercise with its dosage and
// step-by-step instructions.
type DayPlan struct {
	Name         string   `json:"name"`
	Reps         string   `json:"reps"`
	Duration     int      `json:"duration"` // minutes
	Instructions []string `json:"instructions"`
}

// Routine is an ordered sequence of day-exercises a patient works through.
// Base-catalog routines live in memory and have a nil OwnerID; custom
// routines are authored by a therapist and persisted.
type Routine struct {
	ID          string    `gorm:"primaryKey" json:"id"`
	CreatedAt   time.Time `json:"-"`
	UpdatedAt   time.Time `json:"-"`
	Name        string    `gorm:"not null" json:"name"`
	Category    string    `json:"category"`
	Difficulty  string    `json:"difficulty"` // Principiante, Intermedio, Avanzado
	Duration    int       `json:"duration"`   // minutes, whole routine
	Description string    `json:"description"`
	Days        []DayPlan `gorm:"serializer:json" json:"days"`
	OwnerID     *uint     `json:"ownerId"`
}

// DayCount is the number of scheduled days. It fixes the length of every
// progress record created against this routine.
func (r *Routine) DayCount() int {
	return len(r.Days)
}
