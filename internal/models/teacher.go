package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Teacher struct {
	ID             primitive.ObjectID   `json:"id" bson:"_id,omitempty"`
	Name           string               `json:"name" bson:"name"`
	Email          string               `json:"email" bson:"email"`
	TeacherID      string               `json:"teacherId" bson:"teacherId"`
	Password       string               `json:"-" bson:"password"`
	Department     string               `json:"department" bson:"department"`
	CreatedCourses []primitive.ObjectID `json:"createdCourses" bson:"createdCourses"`
	CreatedAt      time.Time            `json:"createdAt" bson:"createdAt"`
	UpdatedAt      time.Time            `json:"updatedAt" bson:"updatedAt"`
}
