package routes

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/tlovegrove3/SDEV-255-Final-Project-Group5/internal/catalog"
	"github.com/tlovegrove3/SDEV-255-Final-Project-Group5/internal/config"
	"github.com/tlovegrove3/SDEV-255-Final-Project-Group5/internal/enrollment"
	"github.com/tlovegrove3/SDEV-255-Final-Project-Group5/internal/handlers"
	"github.com/tlovegrove3/SDEV-255-Final-Project-Group5/internal/middleware"
	"github.com/tlovegrove3/SDEV-255-Final-Project-Group5/internal/models"
	"github.com/tlovegrove3/SDEV-255-Final-Project-Group5/internal/store"
	"github.com/tlovegrove3/SDEV-255-Final-Project-Group5/internal/utils"
)

// SetupRouter wires the services, middleware, and handlers onto a mux
// router. The store handle is injected here; nothing downstream reaches for
// globals.
func SetupRouter(s *store.Store, cfg config.Config, mailer *utils.Mailer) *mux.Router {
	catalogSvc := catalog.NewService(s.Courses, s.Teachers)
	enrollmentSvc := enrollment.NewService(s.Students, s.Courses, s.Carts)
	authn := middleware.NewAuthenticator([]byte(cfg.JWTSecret), s.Students, s.Teachers)

	authHandler := handlers.NewAuthHandler(s, cfg, mailer)
	courseHandler := handlers.NewCourseHandler(catalogSvc)
	studentHandler := handlers.NewStudentHandler(s.Students, enrollmentSvc)
	teacherHandler := handlers.NewTeacherHandler(s.Teachers)
	cartHandler := handlers.NewCartHandler(enrollmentSvc)

	router := mux.NewRouter()
	router.Use(middleware.Logging)

	// Health check endpoint
	router.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("Server is healthy"))
	}).Methods("GET")

	api := router.PathPrefix("/api").Subrouter()

	api.HandleFunc("/auth/register", authHandler.Register).Methods("POST")
	api.HandleFunc("/auth/login", authHandler.Login).Methods("POST")

	api.HandleFunc("/courses", courseHandler.GetCourses).Methods("GET")
	api.HandleFunc("/courses/{id}", courseHandler.GetCourseByID).Methods("GET")
	api.Handle("/courses",
		authn.Require(models.CapManageCourses, courseHandler.CreateCourse)).Methods("POST")
	api.Handle("/courses/{id}",
		authn.Require(models.CapManageCourses, courseHandler.UpdateCourse)).Methods("PUT")
	api.Handle("/courses/{id}",
		authn.Require(models.CapManageCourses, courseHandler.DeleteCourse)).Methods("DELETE")
	api.Handle("/courses/{id}/availability",
		authn.Require(models.CapManageCourses, courseHandler.ToggleAvailability)).Methods("PATCH")

	api.HandleFunc("/students", studentHandler.GetStudents).Methods("GET")
	api.Handle("/students/enroll",
		authn.Require(models.CapEnrollSelf, studentHandler.Enroll)).Methods("POST")
	api.Handle("/students/enroll/{courseId}",
		authn.Require(models.CapEnrollSelf, studentHandler.Drop)).Methods("DELETE")

	api.HandleFunc("/teachers", teacherHandler.GetTeachers).Methods("GET")

	api.Handle("/cart",
		authn.Require(models.CapEnrollSelf, cartHandler.GetCart)).Methods("GET")
	api.Handle("/cart/add",
		authn.Require(models.CapEnrollSelf, cartHandler.AddToCart)).Methods("POST")
	api.Handle("/cart/checkout",
		authn.Require(models.CapEnrollSelf, cartHandler.Checkout)).Methods("POST")
	// "clear" must register before the {courseId} catch-all.
	api.Handle("/cart/clear",
		authn.Require(models.CapEnrollSelf, cartHandler.ClearCart)).Methods("DELETE")
	api.Handle("/cart/{courseId}",
		authn.Require(models.CapEnrollSelf, cartHandler.RemoveFromCart)).Methods("DELETE")

	return router
}
