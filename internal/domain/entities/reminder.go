package entities

import (
	"time"
)

// ReminderType is the kind of farm activity a reminder covers.
type ReminderType string

const (
	ReminderWatering      ReminderType = "watering"
	ReminderFertilizing   ReminderType = "fertilizing"
	ReminderPestControl   ReminderType = "pest_control"
	ReminderHarvesting    ReminderType = "harvesting"
	ReminderTreatment     ReminderType = "treatment"
	ReminderHealthCheckup ReminderType = "health_checkup"
)

// ReminderRepeat is the recurrence of a reminder.
type ReminderRepeat string

const (
	RepeatNone    ReminderRepeat = "none"
	RepeatDaily   ReminderRepeat = "daily"
	RepeatWeekly  ReminderRepeat = "weekly"
	RepeatMonthly ReminderRepeat = "monthly"
)

// CropReminder is a scheduled farm task, optionally tied to a crop and
// to the diagnosis that produced it.
type CropReminder struct {
	ID          string         `json:"id" db:"id"`
	CropID      string         `json:"crop_id,omitempty" db:"crop_id"`
	DiagnosisID string         `json:"diagnosis_id,omitempty" db:"diagnosis_id"`
	Type        ReminderType   `json:"type" db:"type"`
	Title       string         `json:"title" db:"title"`
	TitleHindi  string         `json:"title_hindi" db:"title_hindi"`
	Notes       string         `json:"notes,omitempty" db:"notes"`
	DueAt       time.Time      `json:"due_at" db:"due_at"`
	Repeat      ReminderRepeat `json:"repeat" db:"repeat"`
	Completed   bool           `json:"completed" db:"completed"`
	CreatedAt   time.Time      `json:"created_at" db:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at" db:"updated_at"`
}
