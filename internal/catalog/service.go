// Package catalog implements course CRUD with the creator-only ownership
// gate and the availability toggle.
package catalog

import (
	"context"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/tlovegrove3/SDEV-255-Final-Project-Group5/internal/apperr"
	"github.com/tlovegrove3/SDEV-255-Final-Project-Group5/internal/models"
)

type CourseStore interface {
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.Course, error)
	FindByCode(ctx context.Context, code string) (*models.Course, error)
	List(ctx context.Context) ([]models.Course, error)
	Insert(ctx context.Context, course *models.Course) error
	Update(ctx context.Context, course *models.Course) error
	Delete(ctx context.Context, id primitive.ObjectID) error
}

type TeacherStore interface {
	AddCreatedCourse(ctx context.Context, teacherID, courseID primitive.ObjectID) error
	RemoveCreatedCourse(ctx context.Context, teacherID, courseID primitive.ObjectID) error
}

type Service struct {
	courses  CourseStore
	teachers TeacherStore
}

func NewService(courses CourseStore, teachers TeacherStore) *Service {
	return &Service{courses: courses, teachers: teachers}
}

// CourseInput carries the caller-editable course fields.
type CourseInput struct {
	Name        string `json:"cname"`
	Code        string `json:"code"`
	Description string `json:"description"`
	SubjectArea string `json:"subject_area"`
	Credits     int    `json:"credits"`
}

func (in *CourseInput) normalize() {
	in.Name = strings.TrimSpace(in.Name)
	in.Code = strings.ToUpper(strings.TrimSpace(in.Code))
	in.Description = strings.TrimSpace(in.Description)
	in.SubjectArea = strings.TrimSpace(in.SubjectArea)
	if in.Credits == 0 {
		in.Credits = models.DefaultCredits
	}
}

func (in *CourseInput) validate() error {
	if in.Name == "" || in.Code == "" || in.Description == "" || in.SubjectArea == "" {
		return apperr.New(apperr.Validation,
			"All fields are required: cname, code, description, subject_area, credits")
	}
	if in.Credits < models.MinCredits || in.Credits > models.MaxCredits {
		return apperr.Newf(apperr.Validation, "Credits must be between %d and %d",
			models.MinCredits, models.MaxCredits)
	}
	return nil
}

func (s *Service) List(ctx context.Context) ([]models.Course, error) {
	return s.courses.List(ctx)
}

func (s *Service) Get(ctx context.Context, id primitive.ObjectID) (*models.Course, error) {
	course, err := s.courses.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if course == nil {
		return nil, apperr.New(apperr.NotFound, "Course not found")
	}
	return course, nil
}

// Create inserts a new course owned by teacherID and records it in the
// teacher's created set.
func (s *Service) Create(ctx context.Context, teacherID primitive.ObjectID, in CourseInput) (*models.Course, error) {
	in.normalize()
	if err := in.validate(); err != nil {
		return nil, err
	}

	existing, err := s.courses.FindByCode(ctx, in.Code)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, apperr.New(apperr.Conflict, "Course code already exists")
	}

	now := time.Now()
	course := &models.Course{
		Name:        in.Name,
		Code:        in.Code,
		Description: in.Description,
		SubjectArea: in.SubjectArea,
		Credits:     in.Credits,
		CreatedBy:   teacherID,
		IsAvailable: true,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := s.courses.Insert(ctx, course); err != nil {
		return nil, err
	}
	if err := s.teachers.AddCreatedCourse(ctx, teacherID, course.ID); err != nil {
		return nil, err
	}
	return course, nil
}

// Update replaces the editable fields of a course the caller owns.
func (s *Service) Update(ctx context.Context, teacherID, courseID primitive.ObjectID, in CourseInput) (*models.Course, error) {
	in.normalize()
	if err := in.validate(); err != nil {
		return nil, err
	}

	course, err := s.ownedCourse(ctx, teacherID, courseID)
	if err != nil {
		return nil, err
	}

	if in.Code != course.Code {
		existing, err := s.courses.FindByCode(ctx, in.Code)
		if err != nil {
			return nil, err
		}
		if existing != nil {
			return nil, apperr.New(apperr.Conflict, "Course code already exists")
		}
	}

	course.Name = in.Name
	course.Code = in.Code
	course.Description = in.Description
	course.SubjectArea = in.SubjectArea
	course.Credits = in.Credits
	course.UpdatedAt = time.Now()

	if err := s.courses.Update(ctx, course); err != nil {
		return nil, err
	}
	return course, nil
}

// Delete removes a course the caller owns and pulls it from the teacher's
// created set.
func (s *Service) Delete(ctx context.Context, teacherID, courseID primitive.ObjectID) (*models.Course, error) {
	course, err := s.ownedCourse(ctx, teacherID, courseID)
	if err != nil {
		return nil, err
	}
	if err := s.courses.Delete(ctx, courseID); err != nil {
		return nil, err
	}
	if err := s.teachers.RemoveCreatedCourse(ctx, teacherID, courseID); err != nil {
		return nil, err
	}
	return course, nil
}

// ToggleAvailability flips the enrollment gate on a course the caller owns.
func (s *Service) ToggleAvailability(ctx context.Context, teacherID, courseID primitive.ObjectID) (*models.Course, error) {
	course, err := s.ownedCourse(ctx, teacherID, courseID)
	if err != nil {
		return nil, err
	}

	course.IsAvailable = !course.IsAvailable
	course.UpdatedAt = time.Now()
	if err := s.courses.Update(ctx, course); err != nil {
		return nil, err
	}
	return course, nil
}

// ownedCourse loads the course and enforces the ownership gate: only the
// creating teacher may mutate it. The check runs on every request; identity
// is compared by id value, never reused from an earlier decision.
func (s *Service) ownedCourse(ctx context.Context, teacherID, courseID primitive.ObjectID) (*models.Course, error) {
	course, err := s.courses.FindByID(ctx, courseID)
	if err != nil {
		return nil, err
	}
	if course == nil {
		return nil, apperr.New(apperr.NotFound, "Course not found")
	}
	if course.CreatedBy != teacherID {
		return nil, apperr.New(apperr.Forbidden, "Only the course creator can modify this course")
	}
	return course, nil
}
