package store

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/tlovegrove3/SDEV-255-Final-Project-Group5/internal/models"
)

type Teachers struct {
	col *mongo.Collection
}

// FindByID returns (nil, nil) when no teacher has the given id.
func (t *Teachers) FindByID(ctx context.Context, id primitive.ObjectID) (*models.Teacher, error) {
	var teacher models.Teacher
	err := t.col.FindOne(ctx, bson.M{"_id": id}).Decode(&teacher)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &teacher, nil
}

// FindByTeacherID looks up by the external teacher identifier.
func (t *Teachers) FindByTeacherID(ctx context.Context, teacherID string) (*models.Teacher, error) {
	var teacher models.Teacher
	err := t.col.FindOne(ctx, bson.M{"teacherId": teacherID}).Decode(&teacher)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &teacher, nil
}

func (t *Teachers) Insert(ctx context.Context, teacher *models.Teacher) error {
	if teacher.ID.IsZero() {
		teacher.ID = primitive.NewObjectID()
	}
	_, err := t.col.InsertOne(ctx, teacher)
	return err
}

func (t *Teachers) AddCreatedCourse(ctx context.Context, teacherID, courseID primitive.ObjectID) error {
	_, err := t.col.UpdateOne(ctx, bson.M{"_id": teacherID}, bson.M{
		"$addToSet": bson.M{"createdCourses": courseID},
		"$set":      bson.M{"updatedAt": time.Now()},
	})
	return err
}

func (t *Teachers) RemoveCreatedCourse(ctx context.Context, teacherID, courseID primitive.ObjectID) error {
	_, err := t.col.UpdateOne(ctx, bson.M{"_id": teacherID}, bson.M{
		"$pull": bson.M{"createdCourses": courseID},
		"$set":  bson.M{"updatedAt": time.Now()},
	})
	return err
}

// ListWithCourses returns all teachers with createdCourses joined to full
// course documents, passwords stripped.
func (t *Teachers) ListWithCourses(ctx context.Context) ([]bson.M, error) {
	pipeline := mongo.Pipeline{
		{
			{
				Key: "$lookup",
				Value: bson.D{
					{Key: "from", Value: "courses"},
					{Key: "localField", Value: "createdCourses"},
					{Key: "foreignField", Value: "_id"},
					{Key: "as", Value: "createdCourses"},
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

	cursor, err := t.col.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var teachers []bson.M
	if err = cursor.All(ctx, &teachers); err != nil {
		return nil, err
	}
	return teachers, nil
}
