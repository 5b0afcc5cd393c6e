package handlers

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/tlovegrove3/SDEV-255-Final-Project-Group5/internal/apperr"
	"github.com/tlovegrove3/SDEV-255-Final-Project-Group5/internal/enrollment"
	"github.com/tlovegrove3/SDEV-255-Final-Project-Group5/internal/utils"
)

type CartHandler struct {
	enrollment *enrollment.Service
}

func NewCartHandler(svc *enrollment.Service) *CartHandler {
	return &CartHandler{enrollment: svc}
}

type cartAddRequest struct {
	CourseID string `json:"courseId"`
}

// GetCart returns the calling student's cart, creating it on first access.
func (h *CartHandler) GetCart(w http.ResponseWriter, r *http.Request) {
	account, err := caller(r)
	if err != nil {
		utils.WriteError(w, err)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	cart, err := h.enrollment.Cart(ctx, account.UserID())
	if err != nil {
		utils.WriteError(w, err)
		return
	}
	utils.WriteCount(w, len(cart.Courses), cart)
}

// AddToCart stages a course in the calling student's cart.
func (h *CartHandler) AddToCart(w http.ResponseWriter, r *http.Request) {
	account, err := caller(r)
	if err != nil {
		utils.WriteError(w, err)
		return
	}

	var req cartAddRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.WriteError(w, apperr.New(apperr.Validation, "Invalid request payload"))
		return
	}
	if req.CourseID == "" {
		utils.WriteError(w, apperr.New(apperr.Validation, "Course ID is required"))
		return
	}
	courseID, err := primitive.ObjectIDFromHex(req.CourseID)
	if err != nil {
		utils.WriteError(w, apperr.New(apperr.Validation, "Invalid course ID"))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	cart, err := h.enrollment.AddToCart(ctx, account.UserID(), courseID)
	if err != nil {
		utils.WriteError(w, err)
		return
	}
	utils.WriteMessage(w, http.StatusOK, "Course added to cart successfully", cart)
}

// RemoveFromCart drops one staged course from the cart.
func (h *CartHandler) RemoveFromCart(w http.ResponseWriter, r *http.Request) {
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

	cart, err := h.enrollment.RemoveFromCart(ctx, account.UserID(), id)
	if err != nil {
		utils.WriteError(w, err)
		return
	}
	utils.WriteMessage(w, http.StatusOK, "Course removed from cart successfully", cart)
}

// Checkout promotes the cart's valid entries to enrollments. Partial
// success is normal: skipped courses come back in the errors list.
func (h *CartHandler) Checkout(w http.ResponseWriter, r *http.Request) {
	account, err := caller(r)
	if err != nil {
		utils.WriteError(w, err)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	result, err := h.enrollment.Checkout(ctx, account.UserID())
	if err != nil {
		utils.WriteError(w, err)
		return
	}

	message := fmt.Sprintf("Successfully enrolled in %d course(s)", result.EnrolledCount)
	utils.WriteMessage(w, http.StatusOK, message, result)
}

// ClearCart empties the calling student's cart.
func (h *CartHandler) ClearCart(w http.ResponseWriter, r *http.Request) {
	account, err := caller(r)
	if err != nil {
		utils.WriteError(w, err)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	cart, err := h.enrollment.ClearCart(ctx, account.UserID())
	if err != nil {
		utils.WriteError(w, err)
		return
	}
	utils.WriteMessage(w, http.StatusOK, "Shopping cart cleared successfully", cart)
}
