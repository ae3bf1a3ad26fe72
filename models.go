package main

import (
	"time"
)

// User represents a registered parish team member.
// Passwords are stored as-is for the demo deployment and must never be
// returned in responses (omitempty + explicit clearing before JSON).
type User struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	Email     string    `json:"email" gorm:"uniqueIndex;not null"`
	Password  string    `json:"password,omitempty"`
	FullName  string    `json:"fullName" gorm:"not null"`
	Phone     string    `json:"phone"`
	Parish    string    `json:"parish"`
	Role      string    `json:"role" gorm:"type:varchar(32)"` // priest | coordinator | team-leader
	Bio       string    `json:"bio"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// PublicProfile is the session payload: the user minus the password.
// Login returns it and GET /api/me reproduces it after a client restart.
func (u User) PublicProfile() User {
	u.Password = ""
	return u
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type SignupRequest struct {
	FullName        string `json:"fullName" binding:"required"`
	Email           string `json:"email" binding:"required"`
	Phone           string `json:"phone"`
	Parish          string `json:"parish"`
	Role            string `json:"role"`
	Bio             string `json:"bio"`
	Password        string `json:"password" binding:"required"`
	ConfirmPassword string `json:"confirmPassword" binding:"required"`
}

// Event is a scheduled program entry (session, baptism, ...).
// Date and times are stored exactly as submitted; the calendar matches
// cells against Date by plain string equality, and ISO dates keep
// "ORDER BY date" chronological.
type Event struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	OrganizerID uint      `json:"organizer_id" gorm:"index;not null"`
	Title       string    `json:"title" gorm:"not null"`
	Date        string    `json:"date" gorm:"type:varchar(32);index;not null"`
	StartTime   string    `json:"startTime" gorm:"type:varchar(16)"`
	EndTime     string    `json:"endTime" gorm:"type:varchar(16)"`
	Location    string    `json:"location"`
	Description string    `json:"description"`
	EventType   string    `json:"eventType" gorm:"type:varchar(32)"` // session | baptism
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// ChatMessage belongs to the thread identified by ThreadKey: the two
// participant ids sorted and joined, so both sides of a pair always read
// and write the same thread. SenderName is a snapshot of the display name
// at send time and is not updated if the user later renames.
type ChatMessage struct {
	ID         uint      `json:"id" gorm:"primaryKey"`
	ThreadKey  string    `json:"-" gorm:"type:varchar(64);index;not null"`
	SenderID   uint      `json:"sender_id" gorm:"index;not null"`
	SenderName string    `json:"sender_name"`
	Text       string    `json:"text" gorm:"type:text;not null"`
	CreatedAt  time.Time `json:"timestamp"`
}
