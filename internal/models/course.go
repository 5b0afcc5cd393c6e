package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	MinCredits     = 1
	MaxCredits     = 6
	DefaultCredits = 3
)

type Course struct {
	ID          primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	Name        string             `json:"cname" bson:"cname"`
	Code        string             `json:"code" bson:"code"`
	Description string             `json:"description" bson:"description"`
	SubjectArea string             `json:"subject_area" bson:"subject_area"`
	Credits     int                `json:"credits" bson:"credits"`
	CreatedBy   primitive.ObjectID `json:"createdBy" bson:"createdBy"`
	IsAvailable bool               `json:"isAvailable" bson:"isAvailable"`
	CreatedAt   time.Time          `json:"createdAt" bson:"createdAt"`
	UpdatedAt   time.Time          `json:"updatedAt" bson:"updatedAt"`
}
