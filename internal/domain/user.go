package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// User owns an ordered, append-only log of exercises.
// The username is looked up before insert; the mongo backend also carries a
// unique index on it.
type User struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	Username  string             `bson:"username" json:"username" validate:"required"`
	Log       []Exercise         `bson:"log" json:"log"`
	CreatedAt time.Time          `bson:"createdAt" json:"-"`
}

// LogCopy returns a copy of the user's log so callers can reslice it
// without touching the stored record.
func (u *User) LogCopy() []Exercise {
	out := make([]Exercise, len(u.Log))
	copy(out, u.Log)
	return out
}
