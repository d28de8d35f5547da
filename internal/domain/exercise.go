// internal/domain/exercise.go
package domain

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Exercise is a single logged activity. It is stored once as a standalone
// document and once embedded in the owning user's log.
type Exercise struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"-"`
	Description string             `bson:"description" json:"description" validate:"required"`
	Duration    int                `bson:"duration" json:"duration" validate:"required,gt=0"` // minutes
	// Date is always the canonical display form, e.g. "Mon Jan 01 2024".
	Date string `bson:"date" json:"date" validate:"required"`
}
