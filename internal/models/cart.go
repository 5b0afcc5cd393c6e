package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Cart is a student's staging set of course references pending enrollment.
// There is exactly one cart per student, created lazily on first access.
type Cart struct {
	ID        primitive.ObjectID   `json:"id" bson:"_id,omitempty"`
	StudentID primitive.ObjectID   `json:"studentId" bson:"studentId"`
	Courses   []primitive.ObjectID `json:"courses" bson:"courses"`
	CreatedAt time.Time            `json:"createdAt" bson:"createdAt"`
	UpdatedAt time.Time            `json:"updatedAt" bson:"updatedAt"`
}

// Contains reports whether courseID is already staged in the cart.
func (c *Cart) Contains(courseID primitive.ObjectID) bool {
	for _, id := range c.Courses {
		if id == courseID {
			return true
		}
	}
	return false
}
