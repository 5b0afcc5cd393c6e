package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/tlovegrove3/SDEV-255-Final-Project-Group5/internal/apperr"
	"github.com/tlovegrove3/SDEV-255-Final-Project-Group5/internal/enrollment"
	"github.com/tlovegrove3/SDEV-255-Final-Project-Group5/internal/store"
	"github.com/tlovegrove3/SDEV-255-Final-Project-Group5/internal/utils"
)

type StudentHandler struct {
	students   *store.Students
	enrollment *enrollment.Service
}

func NewStudentHandler(students *store.Students, svc *enrollment.Service) *StudentHandler {
	return &StudentHandler{students: students, enrollment: svc}
}

type enrollRequest struct {
	CourseID string `json:"courseId"`
}

// GetStudents lists all students with their enrolled courses joined.
func (h *StudentHandler) GetStudents(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	students, err := h.students.ListWithCourses(ctx)
	if err != nil {
		utils.WriteError(w, err)
		return
	}
	utils.WriteCount(w, len(students), students)
}

// Enroll adds a course directly to the calling student's enrolled set,
// bypassing the cart.
func (h *StudentHandler) Enroll(w http.ResponseWriter, r *http.Request) {
	account, err := caller(r)
	if err != nil {
		utils.WriteError(w, err)
		return
	}

	var req enrollRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.WriteError(w, apperr.New(apperr.Validation, "Invalid request payload"))
		return
	}
	if req.CourseID == "" {
		utils.WriteError(w, apperr.New(apperr.Validation, "Course ID is required"))
		return
	}
	id, err := primitive.ObjectIDFromHex(req.CourseID)
	if err != nil {
		utils.WriteError(w, apperr.New(apperr.Validation, "Invalid course ID"))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	student, err := h.enrollment.Enroll(ctx, account.UserID(), id)
	if err != nil {
		utils.WriteError(w, err)
		return
	}
	utils.WriteMessage(w, http.StatusOK, "Enrolled in course successfully", student)
}

// Drop removes a course from the calling student's enrolled set.
func (h *StudentHandler) Drop(w http.ResponseWriter, r *http.Request) {
	account, err := caller(r)
	if err != nil {
		utils.WriteError(w, err)
		return
	}
	id, err := courseID(r, "courseId")
	if err != nil {
		utils.WriteError(w, err)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	student, err := h.enrollment.Drop(ctx, account.UserID(), id)
	if err != nil {
		utils.WriteError(w, err)
		return
	}
	utils.WriteMessage(w, http.StatusOK, "Course dropped successfully", student)
}
