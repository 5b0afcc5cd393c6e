package handlers

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"golang.org/x/crypto/bcrypt"

	"github.com/tlovegrove3/SDEV-255-Final-Project-Group5/internal/apperr"
	"github.com/tlovegrove3/SDEV-255-Final-Project-Group5/internal/auth"
	"github.com/tlovegrove3/SDEV-255-Final-Project-Group5/internal/config"
	"github.com/tlovegrove3/SDEV-255-Final-Project-Group5/internal/models"
	"github.com/tlovegrove3/SDEV-255-Final-Project-Group5/internal/store"
	"github.com/tlovegrove3/SDEV-255-Final-Project-Group5/internal/utils"
)

type AuthHandler struct {
	students *store.Students
	teachers *store.Teachers
	cfg      config.Config
	mailer   *utils.Mailer
}

func NewAuthHandler(s *store.Store, cfg config.Config, mailer *utils.Mailer) *AuthHandler {
	return &AuthHandler{students: s.Students, teachers: s.Teachers, cfg: cfg, mailer: mailer}
}

type registerRequest struct {
	Role       string `json:"role"`
	Name       string `json:"name"`
	Email      string `json:"email"`
	Password   string `json:"password"`
	StudentID  string `json:"studentId"`
	TeacherID  string `json:"teacherId"`
	Department string `json:"department"`
}

type loginRequest struct {
	UserID   string `json:"userId"`
	Password string `json:"password"`
}

// Register creates a student or teacher account and returns it with a
// signed token.
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req registerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.WriteError(w, apperr.New(apperr.Validation, "Invalid request payload"))
		return
	}

	role := models.Role(req.Role)
	if !role.Valid() {
		utils.WriteError(w, apperr.New(apperr.Validation,
			"Role must be either 'student' or 'teacher'"))
		return
	}
	if req.Name == "" || req.Email == "" || req.Password == "" {
		utils.WriteError(w, apperr.New(apperr.Validation,
			"Name, email, and password are required"))
		return
	}
	if len(req.Password) < 6 {
		utils.WriteError(w, apperr.New(apperr.Validation,
			"Password must be at least 6 characters long"))
		return
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		utils.WriteError(w, err)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	now := time.Now()
	var user interface{}
	var userID primitive.ObjectID
	var message string

	switch role {
	case models.RoleStudent:
		if req.StudentID == "" {
			utils.WriteError(w, apperr.New(apperr.Validation,
				"Student ID is required for student registration"))
			return
		}
		student := &models.Student{
			Name:            strings.TrimSpace(req.Name),
			Email:           strings.ToLower(strings.TrimSpace(req.Email)),
			StudentID:       strings.TrimSpace(req.StudentID),
			Password:        string(hashed),
			EnrolledCourses: []primitive.ObjectID{},
			CreatedAt:       now,
			UpdatedAt:       now,
		}
		if err := h.students.Insert(ctx, student); err != nil {
			if mongo.IsDuplicateKeyError(err) {
				utils.WriteError(w, apperr.New(apperr.Conflict, "Student ID or email already exists"))
				return
			}
			utils.WriteError(w, err)
			return
		}
		user, userID = student, student.ID
		message = "Student registered successfully"

	case models.RoleTeacher:
		if req.TeacherID == "" || req.Department == "" {
			utils.WriteError(w, apperr.New(apperr.Validation,
				"Teacher ID and department are required for teacher registration"))
			return
		}
		teacher := &models.Teacher{
			Name:           strings.TrimSpace(req.Name),
			Email:          strings.ToLower(strings.TrimSpace(req.Email)),
			TeacherID:      strings.TrimSpace(req.TeacherID),
			Password:       string(hashed),
			Department:     strings.TrimSpace(req.Department),
			CreatedCourses: []primitive.ObjectID{},
			CreatedAt:      now,
			UpdatedAt:      now,
		}
		if err := h.teachers.Insert(ctx, teacher); err != nil {
			if mongo.IsDuplicateKeyError(err) {
				utils.WriteError(w, apperr.New(apperr.Conflict, "Teacher ID or email already exists"))
				return
			}
			utils.WriteError(w, err)
			return
		}
		user, userID = teacher, teacher.ID
		message = "Teacher registered successfully"
	}

	token, err := auth.GenerateJWT([]byte(h.cfg.JWTSecret), userID.Hex(), string(role), h.cfg.JWTExpiry)
	if err != nil {
		utils.WriteError(w, err)
		return
	}

	if h.mailer.Enabled() {
		email, name := req.Email, req.Name
		go func() {
			if err := h.mailer.SendWelcome(email, name, string(role)); err != nil {
				log.Printf("welcome email for %s: %v", email, err)
			}
		}()
	}

	utils.WriteMessage(w, http.StatusCreated, message, map[string]interface{}{
		"user":  user,
		"token": token,
		"role":  role,
	})
}

// Login authenticates with an external id, probing the student identifier
// first and the teacher identifier second.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.WriteError(w, apperr.New(apperr.Validation, "Invalid request payload"))
		return
	}
	if req.UserID == "" || req.Password == "" {
		utils.WriteError(w, apperr.New(apperr.Validation, "User ID and password are required"))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	var user interface{}
	var userID primitive.ObjectID
	var hashed string
	var role models.Role

	student, err := h.students.FindByStudentID(ctx, req.UserID)
	if err != nil {
		utils.WriteError(w, err)
		return
	}
	if student != nil {
		user, userID, hashed, role = student, student.ID, student.Password, models.RoleStudent
	} else {
		teacher, err := h.teachers.FindByTeacherID(ctx, req.UserID)
		if err != nil {
			utils.WriteError(w, err)
			return
		}
		if teacher == nil {
			utils.WriteError(w, apperr.New(apperr.Unauthorized, "Invalid credentials"))
			return
		}
		user, userID, hashed, role = teacher, teacher.ID, teacher.Password, models.RoleTeacher
	}

	if err := bcrypt.CompareHashAndPassword([]byte(hashed), []byte(req.Password)); err != nil {
		utils.WriteError(w, apperr.New(apperr.Unauthorized, "Invalid credentials"))
		return
	}

	token, err := auth.GenerateJWT([]byte(h.cfg.JWTSecret), userID.Hex(), string(role), h.cfg.JWTExpiry)
	if err != nil {
		utils.WriteError(w, err)
		return
	}

	utils.WriteMessage(w, http.StatusOK, "Login successful", map[string]interface{}{
		"user":  user,
		"token": token,
		"role":  role,
	})
}
