// Package enrollment implements the shopping-cart workflow: staging courses
// in a per-student cart, promoting them to enrollments at checkout, and the
// direct enroll/drop operations that bypass the cart.
package enrollment

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/tlovegrove3/SDEV-255-Final-Project-Group5/internal/apperr"
	"github.com/tlovegrove3/SDEV-255-Final-Project-Group5/internal/models"
)

// Store lookups return (nil, nil) when the document is absent so callers can
// distinguish "not there" from a store failure.

type StudentStore interface {
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.Student, error)
	SetEnrollments(ctx context.Context, id primitive.ObjectID, courses []primitive.ObjectID) error
}

type CourseStore interface {
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.Course, error)
	FindByIDs(ctx context.Context, ids []primitive.ObjectID) (map[primitive.ObjectID]models.Course, error)
}

type CartStore interface {
	FindByStudent(ctx context.Context, studentID primitive.ObjectID) (*models.Cart, error)
	Insert(ctx context.Context, cart *models.Cart) error
	SetCourses(ctx context.Context, cartID primitive.ObjectID, courses []primitive.ObjectID) error
}

type Service struct {
	students StudentStore
	courses  CourseStore
	carts    CartStore
}

func NewService(students StudentStore, courses CourseStore, carts CartStore) *Service {
	return &Service{students: students, courses: courses, carts: carts}
}

// ResolvedCart is a cart with its course references joined to full records.
type ResolvedCart struct {
	ID        primitive.ObjectID `json:"id"`
	StudentID primitive.ObjectID `json:"studentId"`
	Courses   []models.Course    `json:"courses"`
	CreatedAt time.Time          `json:"createdAt"`
	UpdatedAt time.Time          `json:"updatedAt"`
}

// ResolvedStudent is a student with the enrolled set joined to full records.
type ResolvedStudent struct {
	ID              primitive.ObjectID `json:"id"`
	Name            string             `json:"name"`
	Email           string             `json:"email"`
	StudentID       string             `json:"studentId"`
	EnrolledCourses []models.Course    `json:"enrolledCourses"`
	CreatedAt       time.Time          `json:"createdAt"`
	UpdatedAt       time.Time          `json:"updatedAt"`
}

// CheckoutResult reports a checkout outcome. Errors lists per-course skip
// reasons and may be non-empty even on success.
type CheckoutResult struct {
	Student       *ResolvedStudent `json:"student"`
	EnrolledCount int              `json:"enrolledCount"`
	Errors        []string         `json:"errors"`
}

// Cart returns the student's cart with courses joined, creating an empty
// cart on first access. Repeat calls return the same cart.
func (s *Service) Cart(ctx context.Context, studentID primitive.ObjectID) (*ResolvedCart, error) {
	cart, err := s.getOrCreateCart(ctx, studentID)
	if err != nil {
		return nil, err
	}
	return s.resolveCart(ctx, cart)
}

// AddToCart stages a course in the student's cart after checking that the
// course exists, is available, and is not already enrolled or staged.
func (s *Service) AddToCart(ctx context.Context, studentID, courseID primitive.ObjectID) (*ResolvedCart, error) {
	course, err := s.courses.FindByID(ctx, courseID)
	if err != nil {
		return nil, err
	}
	if course == nil {
		return nil, apperr.New(apperr.NotFound, "Course not found")
	}
	if !course.IsAvailable {
		return nil, apperr.New(apperr.Conflict, "Course is not available for enrollment")
	}

	student, err := s.students.FindByID(ctx, studentID)
	if err != nil {
		return nil, err
	}
	if student == nil {
		return nil, apperr.New(apperr.NotFound, "Student not found")
	}
	if student.IsEnrolled(courseID) {
		return nil, apperr.New(apperr.Conflict, "Already enrolled in this course")
	}

	cart, err := s.getOrCreateCart(ctx, studentID)
	if err != nil {
		return nil, err
	}
	if cart.Contains(courseID) {
		return nil, apperr.New(apperr.Conflict, "Course is already in your cart")
	}

	courses := append(cart.Courses, courseID)
	if err := s.carts.SetCourses(ctx, cart.ID, courses); err != nil {
		return nil, err
	}
	cart.Courses = courses

	return s.resolveCart(ctx, cart)
}

// RemoveFromCart removes a staged course. Removing an absent entry is an
// error, not a no-op.
func (s *Service) RemoveFromCart(ctx context.Context, studentID, courseID primitive.ObjectID) (*ResolvedCart, error) {
	cart, err := s.carts.FindByStudent(ctx, studentID)
	if err != nil {
		return nil, err
	}
	if cart == nil {
		return nil, apperr.New(apperr.NotFound, "Shopping cart not found")
	}
	if !cart.Contains(courseID) {
		return nil, apperr.New(apperr.Conflict, "Course is not in your cart")
	}

	remaining := make([]primitive.ObjectID, 0, len(cart.Courses)-1)
	for _, id := range cart.Courses {
		if id != courseID {
			remaining = append(remaining, id)
		}
	}
	if err := s.carts.SetCourses(ctx, cart.ID, remaining); err != nil {
		return nil, err
	}
	cart.Courses = remaining

	return s.resolveCart(ctx, cart)
}

// ClearCart unconditionally empties an existing cart.
func (s *Service) ClearCart(ctx context.Context, studentID primitive.ObjectID) (*models.Cart, error) {
	cart, err := s.carts.FindByStudent(ctx, studentID)
	if err != nil {
		return nil, err
	}
	if cart == nil {
		return nil, apperr.New(apperr.NotFound, "Shopping cart not found")
	}

	if err := s.carts.SetCourses(ctx, cart.ID, []primitive.ObjectID{}); err != nil {
		return nil, err
	}
	cart.Courses = []primitive.ObjectID{}
	return cart, nil
}

// Checkout promotes the cart's valid entries into the student's enrolled set
// and clears the cart. Each entry is validated independently: unavailable or
// already-enrolled courses are skipped and reported, not fatal. Only when no
// entry survives does the whole operation fail.
//
// The student update and the cart clear are two separate writes with no
// transaction around them; a failure between the two leaves already-enrolled
// courses in the cart.
func (s *Service) Checkout(ctx context.Context, studentID primitive.ObjectID) (*CheckoutResult, error) {
	cart, err := s.carts.FindByStudent(ctx, studentID)
	if err != nil {
		return nil, err
	}
	if cart == nil || len(cart.Courses) == 0 {
		return nil, apperr.New(apperr.Conflict, "Cart is empty")
	}

	student, err := s.students.FindByID(ctx, studentID)
	if err != nil {
		return nil, err
	}
	if student == nil {
		return nil, apperr.New(apperr.NotFound, "Student not found")
	}

	resolved, err := s.courses.FindByIDs(ctx, cart.Courses)
	if err != nil {
		return nil, err
	}

	var valid []primitive.ObjectID
	var skipped []string
	for _, id := range cart.Courses {
		course, ok := resolved[id]
		if !ok {
			// Dangling reference: the course was deleted after being
			// staged. Dropped silently, like any unresolvable join.
			continue
		}
		if !course.IsAvailable {
			skipped = append(skipped, course.Name+" is no longer available")
			continue
		}
		if student.IsEnrolled(id) {
			skipped = append(skipped, "Already enrolled in "+course.Name)
			continue
		}
		valid = append(valid, id)
	}

	if len(valid) == 0 {
		return nil, apperr.WithDetails(apperr.Conflict, "No valid courses to enroll in", skipped)
	}

	enrolled := append(student.EnrolledCourses, valid...)
	if err := s.students.SetEnrollments(ctx, studentID, enrolled); err != nil {
		return nil, err
	}
	student.EnrolledCourses = enrolled

	if err := s.carts.SetCourses(ctx, cart.ID, []primitive.ObjectID{}); err != nil {
		return nil, err
	}

	resolvedStudent, err := s.resolveStudent(ctx, student)
	if err != nil {
		return nil, err
	}

	return &CheckoutResult{
		Student:       resolvedStudent,
		EnrolledCount: len(valid),
		Errors:        skipped,
	}, nil
}

// Enroll appends a course directly to the enrolled set, bypassing the cart.
// Unlike AddToCart it does not check availability.
func (s *Service) Enroll(ctx context.Context, studentID, courseID primitive.ObjectID) (*ResolvedStudent, error) {
	course, err := s.courses.FindByID(ctx, courseID)
	if err != nil {
		return nil, err
	}
	if course == nil {
		return nil, apperr.New(apperr.NotFound, "Course not found")
	}

	student, err := s.students.FindByID(ctx, studentID)
	if err != nil {
		return nil, err
	}
	if student == nil {
		return nil, apperr.New(apperr.NotFound, "Student not found")
	}
	if student.IsEnrolled(courseID) {
		return nil, apperr.New(apperr.Conflict, "Already enrolled in this course")
	}

	enrolled := append(student.EnrolledCourses, courseID)
	if err := s.students.SetEnrollments(ctx, studentID, enrolled); err != nil {
		return nil, err
	}
	student.EnrolledCourses = enrolled

	return s.resolveStudent(ctx, student)
}

// Drop removes a course from the enrolled set; dropping a course the student
// is not enrolled in is an error.
func (s *Service) Drop(ctx context.Context, studentID, courseID primitive.ObjectID) (*ResolvedStudent, error) {
	student, err := s.students.FindByID(ctx, studentID)
	if err != nil {
		return nil, err
	}
	if student == nil {
		return nil, apperr.New(apperr.NotFound, "Student not found")
	}
	if !student.IsEnrolled(courseID) {
		return nil, apperr.New(apperr.Conflict, "Not enrolled in this course")
	}

	remaining := make([]primitive.ObjectID, 0, len(student.EnrolledCourses)-1)
	for _, id := range student.EnrolledCourses {
		if id != courseID {
			remaining = append(remaining, id)
		}
	}
	if err := s.students.SetEnrollments(ctx, studentID, remaining); err != nil {
		return nil, err
	}
	student.EnrolledCourses = remaining

	return s.resolveStudent(ctx, student)
}

func (s *Service) getOrCreateCart(ctx context.Context, studentID primitive.ObjectID) (*models.Cart, error) {
	cart, err := s.carts.FindByStudent(ctx, studentID)
	if err != nil {
		return nil, err
	}
	if cart != nil {
		return cart, nil
	}

	now := time.Now()
	cart = &models.Cart{
		StudentID: studentID,
		Courses:   []primitive.ObjectID{},
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.carts.Insert(ctx, cart); err != nil {
		return nil, err
	}
	return cart, nil
}

func (s *Service) resolveCart(ctx context.Context, cart *models.Cart) (*ResolvedCart, error) {
	courses, err := s.joinCourses(ctx, cart.Courses)
	if err != nil {
		return nil, err
	}
	return &ResolvedCart{
		ID:        cart.ID,
		StudentID: cart.StudentID,
		Courses:   courses,
		CreatedAt: cart.CreatedAt,
		UpdatedAt: cart.UpdatedAt,
	}, nil
}

func (s *Service) resolveStudent(ctx context.Context, student *models.Student) (*ResolvedStudent, error) {
	courses, err := s.joinCourses(ctx, student.EnrolledCourses)
	if err != nil {
		return nil, err
	}
	return &ResolvedStudent{
		ID:              student.ID,
		Name:            student.Name,
		Email:           student.Email,
		StudentID:       student.StudentID,
		EnrolledCourses: courses,
		CreatedAt:       student.CreatedAt,
		UpdatedAt:       student.UpdatedAt,
	}, nil
}

// joinCourses resolves ids to course records, preserving order and dropping
// dangling references.
func (s *Service) joinCourses(ctx context.Context, ids []primitive.ObjectID) ([]models.Course, error) {
	courses := make([]models.Course, 0, len(ids))
	if len(ids) == 0 {
		return courses, nil
	}
	resolved, err := s.courses.FindByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}
	for _, id := range ids {
		if course, ok := resolved[id]; ok {
			courses = append(courses, course)
		}
	}
	return courses, nil
}
