// Package store holds the MongoDB persistence layer. The Store handle is
// built once in the process entry point and passed explicitly to everything
// that needs it; nothing in here is package-level state.
package store

import "go.mongodb.org/mongo-driver/mongo"

type Store struct {
	Students *Students
	Teachers *Teachers
	Courses  *Courses
	Carts    *Carts
}

func New(db *mongo.Database) *Store {
	return &Store{
		Students: &Students{col: db.Collection("students")},
		Teachers: &Teachers{col: db.Collection("teachers")},
		Courses:  &Courses{col: db.Collection("courses")},
		Carts:    &Carts{col: db.Collection("carts")},
	}
}
