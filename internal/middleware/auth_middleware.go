package middleware

import (
	"context"
	"net/http"
	"strings"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/tlovegrove3/SDEV-255-Final-Project-Group5/internal/apperr"
	"github.com/tlovegrove3/SDEV-255-Final-Project-Group5/internal/auth"
	"github.com/tlovegrove3/SDEV-255-Final-Project-Group5/internal/models"
	"github.com/tlovegrove3/SDEV-255-Final-Project-Group5/internal/utils"
)

type StudentSource interface {
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.Student, error)
}

type TeacherSource interface {
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.Teacher, error)
}

// Authenticator verifies bearer tokens and loads the matching account from
// the store so handlers get a full principal, not just an id.
type Authenticator struct {
	secret   []byte
	students StudentSource
	teachers TeacherSource
}

func NewAuthenticator(secret []byte, students StudentSource, teachers TeacherSource) *Authenticator {
	return &Authenticator{secret: secret, students: students, teachers: teachers}
}

type contextKey struct{}

var accountKey contextKey

// AccountFromContext returns the authenticated account attached by
// Authenticate.
func AccountFromContext(ctx context.Context) (models.Account, bool) {
	account, ok := ctx.Value(accountKey).(models.Account)
	return account, ok
}

// Authenticate parses the Authorization header, validates the token, loads
// the account for the claimed role, and attaches it to the request context.
func (a *Authenticator) Authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		header := r.Header.Get("Authorization")
		if header == "" || !strings.HasPrefix(header, "Bearer ") {
			utils.WriteError(w, apperr.New(apperr.Unauthorized,
				"Access denied. No token provided or invalid format."))
			return
		}

		claims, err := auth.ValidateJWT(a.secret, strings.TrimPrefix(header, "Bearer "))
		if err != nil {
			utils.WriteError(w, apperr.New(apperr.Unauthorized, "Invalid token"))
			return
		}

		userID, err := primitive.ObjectIDFromHex(claims.UserID)
		if err != nil {
			utils.WriteError(w, apperr.New(apperr.Unauthorized, "Invalid token"))
			return
		}

		var account models.Account
		switch models.Role(claims.Role) {
		case models.RoleStudent:
			student, err := a.students.FindByID(r.Context(), userID)
			if err != nil {
				utils.WriteError(w, err)
				return
			}
			if student == nil {
				utils.WriteError(w, apperr.New(apperr.Unauthorized, "Token valid but user not found"))
				return
			}
			account = models.StudentAccount(student)
		case models.RoleTeacher:
			teacher, err := a.teachers.FindByID(r.Context(), userID)
			if err != nil {
				utils.WriteError(w, err)
				return
			}
			if teacher == nil {
				utils.WriteError(w, apperr.New(apperr.Unauthorized, "Token valid but user not found"))
				return
			}
			account = models.TeacherAccount(teacher)
		default:
			utils.WriteError(w, apperr.New(apperr.Unauthorized, "Invalid token role"))
			return
		}

		ctx := context.WithValue(r.Context(), accountKey, account)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// Require authenticates and then gates on a capability of the account's
// role.
func (a *Authenticator) Require(cap models.Capability, next http.HandlerFunc) http.Handler {
	return a.Authenticate(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		account, ok := AccountFromContext(r.Context())
		if !ok {
			utils.WriteError(w, apperr.New(apperr.Unauthorized, "Authentication required"))
			return
		}
		if !account.Can(cap) {
			utils.WriteError(w, apperr.New(apperr.Forbidden, capabilityDenied(cap)))
			return
		}
		next.ServeHTTP(w, r)
	}))
}

func capabilityDenied(cap models.Capability) string {
	switch cap {
	case models.CapEnrollSelf:
		return "Student access required"
	case models.CapManageCourses:
		return "Teacher access required"
	}
	return "Access denied"
}
