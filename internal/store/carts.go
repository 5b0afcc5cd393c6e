package store

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/tlovegrove3/SDEV-255-Final-Project-Group5/internal/models"
)

type Carts struct {
	col *mongo.Collection
}

// FindByStudent returns (nil, nil) when the student has no cart yet.
func (c *Carts) FindByStudent(ctx context.Context, studentID primitive.ObjectID) (*models.Cart, error) {
	var cart models.Cart
	err := c.col.FindOne(ctx, bson.M{"studentId": studentID}).Decode(&cart)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &cart, nil
}

func (c *Carts) Insert(ctx context.Context, cart *models.Cart) error {
	if cart.ID.IsZero() {
		cart.ID = primitive.NewObjectID()
	}
	_, err := c.col.InsertOne(ctx, cart)
	return err
}

// SetCourses replaces the cart's staged course set. The unique index on
// studentId guarantees at most one cart per student regardless of races on
// first access.
func (c *Carts) SetCourses(ctx context.Context, cartID primitive.ObjectID, courses []primitive.ObjectID) error {
	_, err := c.col.UpdateOne(ctx, bson.M{"_id": cartID}, bson.M{
		"$set": bson.M{
			"courses":   courses,
			"updatedAt": time.Now(),
		},
	})
	return err
}
