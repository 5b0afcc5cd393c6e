package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/tlovegrove3/SDEV-255-Final-Project-Group5/internal/store"
	"github.com/tlovegrove3/SDEV-255-Final-Project-Group5/internal/utils"
)

type TeacherHandler struct {
	teachers *store.Teachers
}

func NewTeacherHandler(teachers *store.Teachers) *TeacherHandler {
	return &TeacherHandler{teachers: teachers}
}

// GetTeachers lists all teachers with their created courses joined.
func (h *TeacherHandler) GetTeachers(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	teachers, err := h.teachers.ListWithCourses(ctx)
	if err != nil {
		utils.WriteError(w, err)
		return
	}
	utils.WriteCount(w, len(teachers), teachers)
}
