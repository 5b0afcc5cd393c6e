package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestAccountCapabilities(t *testing.T) {
	student := StudentAccount(&Student{ID: primitive.NewObjectID()})
	teacher := TeacherAccount(&Teacher{ID: primitive.NewObjectID()})

	assert.True(t, student.Can(CapEnrollSelf))
	assert.False(t, student.Can(CapManageCourses))

	assert.True(t, teacher.Can(CapManageCourses))
	assert.False(t, teacher.Can(CapEnrollSelf))
}

func TestAccountUserID(t *testing.T) {
	id := primitive.NewObjectID()
	assert.Equal(t, id, StudentAccount(&Student{ID: id}).UserID())
	assert.Equal(t, id, TeacherAccount(&Teacher{ID: id}).UserID())
	assert.Equal(t, primitive.NilObjectID, Account{}.UserID())
}

func TestRoleValid(t *testing.T) {
	assert.True(t, RoleStudent.Valid())
	assert.True(t, RoleTeacher.Valid())
	assert.False(t, Role("admin").Valid())
}

func TestCartContains(t *testing.T) {
	a, b := primitive.NewObjectID(), primitive.NewObjectID()
	cart := Cart{Courses: []primitive.ObjectID{a}}

	assert.True(t, cart.Contains(a))
	assert.False(t, cart.Contains(b))
}

func TestStudentIsEnrolled(t *testing.T) {
	a, b := primitive.NewObjectID(), primitive.NewObjectID()
	student := Student{EnrolledCourses: []primitive.ObjectID{a}}

	assert.True(t, student.IsEnrolled(a))
	assert.False(t, student.IsEnrolled(b))
}
