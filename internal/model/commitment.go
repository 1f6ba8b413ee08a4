package model

import "time"

// CommitmentType classifies a commitment. Only these five types exist.
type CommitmentType string

const (
	TypeClass     CommitmentType = "class"
	TypeHackathon CommitmentType = "hackathon"
	TypeGym       CommitmentType = "gym"
	TypeSocial    CommitmentType = "social"
	TypeExam      CommitmentType = "exam"
)

// Valid reports whether t is one of the five known commitment types.
func (t CommitmentType) Valid() bool {
	switch t {
	case TypeClass, TypeHackathon, TypeGym, TypeSocial, TypeExam:
		return true
	}
	return false
}

// Priority is the urgency bucket assigned to an upcoming commitment.
type Priority string

const (
	PriorityUrgent Priority = "urgent"
	PriorityHigh   Priority = "high"
	PriorityMedium Priority = "medium"
	PriorityLow    Priority = "low"
)

// Commitment is a scheduled calendar commitment owned by a user.
// Invariant: StartTime < EndTime.
type Commitment struct {
	ID              string
	UserID          string
	Title           string
	Type            CommitmentType
	StartTime       time.Time
	EndTime         time.Time
	Location        string
	ReminderMinutes int
	GCalEventID     string // Google Calendar mirror, empty if not mirrored
	CreatedAt       time.Time
	UpdatedAt       time.Time
}
