package middleware

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/tlovegrove3/SDEV-255-Final-Project-Group5/internal/auth"
	"github.com/tlovegrove3/SDEV-255-Final-Project-Group5/internal/models"
)

var secret = []byte("test-secret")

type fakeStudentSource struct {
	students map[primitive.ObjectID]*models.Student
}

func (f *fakeStudentSource) FindByID(_ context.Context, id primitive.ObjectID) (*models.Student, error) {
	return f.students[id], nil
}

type fakeTeacherSource struct {
	teachers map[primitive.ObjectID]*models.Teacher
}

func (f *fakeTeacherSource) FindByID(_ context.Context, id primitive.ObjectID) (*models.Teacher, error) {
	return f.teachers[id], nil
}

func newTestAuthenticator(t *testing.T) (*Authenticator, primitive.ObjectID, primitive.ObjectID) {
	t.Helper()
	studentID := primitive.NewObjectID()
	teacherID := primitive.NewObjectID()
	students := &fakeStudentSource{students: map[primitive.ObjectID]*models.Student{
		studentID: {ID: studentID, Name: "Student"},
	}}
	teachers := &fakeTeacherSource{teachers: map[primitive.ObjectID]*models.Teacher{
		teacherID: {ID: teacherID, Name: "Teacher"},
	}}
	return NewAuthenticator(secret, students, teachers), studentID, teacherID
}

func bearerRequest(t *testing.T, userID primitive.ObjectID, role string) *http.Request {
	t.Helper()
	token, err := auth.GenerateJWT(secret, userID.Hex(), role, time.Hour)
	require.NoError(t, err)
	req := httptest.NewRequest("GET", "/api/cart", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	return req
}

func errorBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var body map[string]interface{}
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
	return body
}

func TestAuthenticateMissingHeader(t *testing.T) {
	a, _, _ := newTestAuthenticator(t)
	handler := a.Authenticate(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("handler should not be reached")
	}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest("GET", "/api/cart", nil))

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, false, errorBody(t, rec)["success"])
}

func TestAuthenticateBadToken(t *testing.T) {
	a, _, _ := newTestAuthenticator(t)
	handler := a.Authenticate(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("handler should not be reached")
	}))

	req := httptest.NewRequest("GET", "/api/cart", nil)
	req.Header.Set("Authorization", "Bearer garbage")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthenticateUnknownUser(t *testing.T) {
	a, _, _ := newTestAuthenticator(t)
	handler := a.Authenticate(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("handler should not be reached")
	}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, bearerRequest(t, primitive.NewObjectID(), "student"))

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "Token valid but user not found", errorBody(t, rec)["error"])
}

func TestAuthenticateAttachesAccount(t *testing.T) {
	a, studentID, _ := newTestAuthenticator(t)

	var got models.Account
	handler := a.Authenticate(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		account, ok := AccountFromContext(r.Context())
		require.True(t, ok)
		got = account
	}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, bearerRequest(t, studentID, "student"))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, models.RoleStudent, got.Role)
	assert.Equal(t, studentID, got.UserID())
}

func TestRequireCapability(t *testing.T) {
	a, studentID, teacherID := newTestAuthenticator(t)
	handler := a.Require(models.CapManageCourses, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	// A student lacks manage-courses even with a valid token.
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, bearerRequest(t, studentID, "student"))
	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.Equal(t, "Teacher access required", errorBody(t, rec)["error"])

	rec = httptest.NewRecorder()
	handler.ServeHTTP(rec, bearerRequest(t, teacherID, "teacher"))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestAuthenticateRejectsUnknownRole(t *testing.T) {
	a, studentID, _ := newTestAuthenticator(t)
	handler := a.Authenticate(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("handler should not be reached")
	}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, bearerRequest(t, studentID, "admin"))

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "Invalid token role", errorBody(t, rec)["error"])
}
