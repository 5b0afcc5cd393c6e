package store

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/tlovegrove3/SDEV-255-Final-Project-Group5/internal/models"
)

type Students struct {
	col *mongo.Collection
}

// FindByID returns (nil, nil) when no student has the given id.
func (s *Students) FindByID(ctx context.Context, id primitive.ObjectID) (*models.Student, error) {
	var student models.Student
	err := s.col.FindOne(ctx, bson.M{"_id": id}).Decode(&student)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &student, nil
}

// FindByStudentID looks up by the external student identifier.
func (s *Students) FindByStudentID(ctx context.Context, studentID string) (*models.Student, error) {
	var student models.Student
	err := s.col.FindOne(ctx, bson.M{"studentId": studentID}).Decode(&student)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &student, nil
}

func (s *Students) Insert(ctx context.Context, student *models.Student) error {
	if student.ID.IsZero() {
		student.ID = primitive.NewObjectID()
	}
	_, err := s.col.InsertOne(ctx, student)
	return err
}

// SetEnrollments replaces the student's enrolled-course set.
func (s *Students) SetEnrollments(ctx context.Context, id primitive.ObjectID, courses []primitive.ObjectID) error {
	_, err := s.col.UpdateOne(ctx, bson.M{"_id": id}, bson.M{
		"$set": bson.M{
			"enrolledCourses": courses,
			"updatedAt":       time.Now(),
		},
	})
	return err
}

// ListWithCourses returns all students with enrolledCourses joined to full
// course documents, passwords stripped.
func (s *Students) ListWithCourses(ctx context.Context) ([]bson.M, error) {
	pipeline := mongo.Pipeline{
		{
			{
				Key: "$lookup",
				Value: bson.D{
					{Key: "from", Value: "courses"},
					{Key: "localField", Value: "enrolledCourses"},
					{Key: "foreignField", Value: "_id"},
					{Key: "as", Value: "enrolledCourses"},
				},
			},
		},
		{
			{
				Key: "$project",
				Value: bson.D{
					{Key: "password", Value: 0},
				},
			},
		},
	}

	cursor, err := s.col.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var students []bson.M
	if err = cursor.All(ctx, &students); err != nil {
		return nil, err
	}
	return students, nil
}
