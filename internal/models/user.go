package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// User represents a registered account and its progression state.
// PasswordHash is persisted but never serialized to JSON.
type User struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Email        string             `bson:"email" json:"email"`
	Name         string             `bson:"name" json:"name"`
	PasswordHash string             `bson:"password" json:"-"`
	XP           int                `bson:"xp" json:"xp"`
	Level        int                `bson:"level" json:"level"`
	Streak       int                `bson:"streak" json:"streak"`
	LastAction   string             `bson:"lastAction" json:"lastAction"`
	JoinDate     string             `bson:"joinDate" json:"joinDate"`
	Achievements []string           `bson:"achievements" json:"achievements"`
	TotalPoints  int                `bson:"totalPoints" json:"totalPoints"`
	CreatedAt    time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt    time.Time          `bson:"updatedAt" json:"updatedAt"`
}

// ProgressUpdate is a partial update to a user's progression fields.
// Nil fields are left untouched; supplied fields replace the stored value.
// Level is intentionally absent: it is always recomputed from the merged XP.
type ProgressUpdate struct {
	XP           *int      `json:"xp,omitempty"`
	Streak       *int      `json:"streak,omitempty"`
	LastAction   *string   `json:"lastAction,omitempty"`
	Achievements *[]string `json:"achievements,omitempty"`
	TotalPoints  *int      `json:"totalPoints,omitempty"`
}
