package store

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/tlovegrove3/SDEV-255-Final-Project-Group5/internal/models"
)

type Courses struct {
	col *mongo.Collection
}

// FindByID returns (nil, nil) when no course has the given id.
func (c *Courses) FindByID(ctx context.Context, id primitive.ObjectID) (*models.Course, error) {
	var course models.Course
	err := c.col.FindOne(ctx, bson.M{"_id": id}).Decode(&course)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &course, nil
}

func (c *Courses) FindByCode(ctx context.Context, code string) (*models.Course, error) {
	var course models.Course
	err := c.col.FindOne(ctx, bson.M{"code": code}).Decode(&course)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &course, nil
}

// FindByIDs resolves a reference list in one query. Ids with no matching
// document are simply absent from the result map.
func (c *Courses) FindByIDs(ctx context.Context, ids []primitive.ObjectID) (map[primitive.ObjectID]models.Course, error) {
	result := make(map[primitive.ObjectID]models.Course, len(ids))
	if len(ids) == 0 {
		return result, nil
	}

	cursor, err := c.col.Find(ctx, bson.M{"_id": bson.M{"$in": ids}})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var courses []models.Course
	if err = cursor.All(ctx, &courses); err != nil {
		return nil, err
	}
	for _, course := range courses {
		result[course.ID] = course
	}
	return result, nil
}

// List returns all courses, newest first.
func (c *Courses) List(ctx context.Context) ([]models.Course, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cursor, err := c.col.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var courses []models.Course
	if err = cursor.All(ctx, &courses); err != nil {
		return nil, err
	}
	return courses, nil
}

func (c *Courses) Insert(ctx context.Context, course *models.Course) error {
	if course.ID.IsZero() {
		course.ID = primitive.NewObjectID()
	}
	_, err := c.col.InsertOne(ctx, course)
	return err
}

func (c *Courses) Update(ctx context.Context, course *models.Course) error {
	_, err := c.col.ReplaceOne(ctx, bson.M{"_id": course.ID}, course)
	return err
}

func (c *Courses) Delete(ctx context.Context, id primitive.ObjectID) error {
	_, err := c.col.DeleteOne(ctx, bson.M{"_id": id})
	return err
}
