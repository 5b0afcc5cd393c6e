package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/tlovegrove3/SDEV-255-Final-Project-Group5/internal/apperr"
	"github.com/tlovegrove3/SDEV-255-Final-Project-Group5/internal/catalog"
	"github.com/tlovegrove3/SDEV-255-Final-Project-Group5/internal/middleware"
	"github.com/tlovegrove3/SDEV-255-Final-Project-Group5/internal/models"
	"github.com/tlovegrove3/SDEV-255-Final-Project-Group5/internal/utils"
)

type CourseHandler struct {
	catalog *catalog.Service
}

func NewCourseHandler(svc *catalog.Service) *CourseHandler {
	return &CourseHandler{catalog: svc}
}

// courseID pulls and parses the {id} path variable.
func courseID(r *http.Request, key string) (primitive.ObjectID, error) {
	id, err := primitive.ObjectIDFromHex(mux.Vars(r)[key])
	if err != nil {
		return primitive.NilObjectID, apperr.New(apperr.Validation, "Invalid course ID")
	}
	return id, nil
}

// caller returns the authenticated account; routes behind Require always
// have one.
func caller(r *http.Request) (models.Account, error) {
	account, ok := middleware.AccountFromContext(r.Context())
	if !ok {
		return models.Account{}, apperr.New(apperr.Unauthorized, "Authentication required")
	}
	return account, nil
}

// GetCourses lists every course, newest first.
func (h *CourseHandler) GetCourses(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	courses, err := h.catalog.List(ctx)
	if err != nil {
		utils.WriteError(w, err)
		return
	}
	utils.WriteCount(w, len(courses), courses)
}

// GetCourseByID returns a single course.
func (h *CourseHandler) GetCourseByID(w http.ResponseWriter, r *http.Request) {
	id, err := courseID(r, "id")
	if err != nil {
		utils.WriteError(w, err)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	course, err := h.catalog.Get(ctx, id)
	if err != nil {
		utils.WriteError(w, err)
		return
	}
	utils.WriteSuccess(w, http.StatusOK, course)
}

// CreateCourse adds a course owned by the calling teacher.
func (h *CourseHandler) CreateCourse(w http.ResponseWriter, r *http.Request) {
	account, err := caller(r)
	if err != nil {
		utils.WriteError(w, err)
		return
	}

	var in catalog.CourseInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		utils.WriteError(w, apperr.New(apperr.Validation, "Invalid request payload"))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	course, err := h.catalog.Create(ctx, account.UserID(), in)
	if err != nil {
		utils.WriteError(w, err)
		return
	}
	utils.WriteMessage(w, http.StatusCreated, "Course created successfully", course)
}

// UpdateCourse replaces the editable fields of a course the caller owns.
func (h *CourseHandler) UpdateCourse(w http.ResponseWriter, r *http.Request) {
	account, err := caller(r)
	if err != nil {
		utils.WriteError(w, err)
		return
	}
	id, err := courseID(r, "id")
	if err != nil {
		utils.WriteError(w, err)
		return
	}

	var in catalog.CourseInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		utils.WriteError(w, apperr.New(apperr.Validation, "Invalid request payload"))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	course, err := h.catalog.Update(ctx, account.UserID(), id, in)
	if err != nil {
		utils.WriteError(w, err)
		return
	}
	utils.WriteMessage(w, http.StatusOK, "Course updated successfully", course)
}

// DeleteCourse removes a course the caller owns.
func (h *CourseHandler) DeleteCourse(w http.ResponseWriter, r *http.Request) {
	account, err := caller(r)
	if err != nil {
		utils.WriteError(w, err)
		return
	}
	id, err := courseID(r, "id")
	if err != nil {
		utils.WriteError(w, err)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	course, err := h.catalog.Delete(ctx, account.UserID(), id)
	if err != nil {
		utils.WriteError(w, err)
		return
	}
	utils.WriteMessage(w, http.StatusOK, "Course deleted successfully", course)
}

// ToggleAvailability flips the enrollment gate on a course the caller owns.
func (h *CourseHandler) ToggleAvailability(w http.ResponseWriter, r *http.Request) {
	account, err := caller(r)
	if err != nil {
		utils.WriteError(w, err)
		return
	}
	id, err := courseID(r, "id")
	if err != nil {
		utils.WriteError(w, err)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	course, err := h.catalog.ToggleAvailability(ctx, account.UserID(), id)
	if err != nil {
		utils.WriteError(w, err)
		return
	}

	message := "Course is now unavailable for enrollment"
	if course.IsAvailable {
		message = "Course is now available for enrollment"
	}
	utils.WriteMessage(w, http.StatusOK, message, course)
}
