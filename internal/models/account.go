package models

import "go.mongodb.org/mongo-driver/bson/primitive"

type Role string

const (
	RoleStudent Role = "student"
	RoleTeacher Role = "teacher"
)

func (r Role) Valid() bool {
	return r == RoleStudent || r == RoleTeacher
}

// Capability names an operation class an account may perform. Authorization
// checks capabilities rather than branching on the role string.
type Capability string

const (
	CapEnrollSelf    Capability = "enroll-self"
	CapManageCourses Capability = "manage-courses"
)

var roleCapabilities = map[Role][]Capability{
	RoleStudent: {CapEnrollSelf},
	RoleTeacher: {CapManageCourses},
}

// Account is a tagged union over the two principal types. Exactly one of
// Student or Teacher is set, matching Role.
type Account struct {
	Role    Role
	Student *Student
	Teacher *Teacher
}

func StudentAccount(s *Student) Account {
	return Account{Role: RoleStudent, Student: s}
}

func TeacherAccount(t *Teacher) Account {
	return Account{Role: RoleTeacher, Teacher: t}
}

// UserID returns the identifier of whichever principal the account wraps.
func (a Account) UserID() primitive.ObjectID {
	switch a.Role {
	case RoleStudent:
		return a.Student.ID
	case RoleTeacher:
		return a.Teacher.ID
	}
	return primitive.NilObjectID
}

func (a Account) Can(c Capability) bool {
	for _, have := range roleCapabilities[a.Role] {
		if have == c {
			return true
		}
	}
	return false
}
