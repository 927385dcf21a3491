package handlers

import (
	"net/http"
	"strconv"

	"github.com/magi8101/form-builder/internal/editor"
	"github.com/magi8101/form-builder/internal/schema"
	"github.com/magi8101/form-builder/internal/services"

	"github.com/gin-gonic/gin"
)

type FormHandler struct {
	formService *services.FormService
}

func NewFormHandler(formService *services.FormService) *FormHandler {
	return &FormHandler{formService: formService}
}

type SaveFormRequest struct {
	Title       string            `json:"title" example:"Customer Feedback"`
	Description string            `json:"description" example:"Tell us what you think"`
	Questions   []schema.Question `json:"questions"`
	Published   bool              `json:"published"`
}

// ListForms godoc
// @Summary      List all forms
// @Description  Get all forms owned by the authenticated user
// @Tags         forms
// @Produce      json
// @Security     BearerAuth
// @Success      200 {array} Form
// @Failure      401 {object} ErrorResponse
// @Router       /api/v1/forms [get]
func (h *FormHandler) ListForms(c *gin.Context) {
	userID := c.GetUint("user_id")

	forms, err := h.formService.GetFormsByUser(userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, forms)
}

// CreateForm godoc
// @Summary      Create a form
// @Description  Save the editor state as a new form, optionally publishing it
// @Tags         forms
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body SaveFormRequest true "Form data"
// @Success      201 {object} Form
// @Failure      400 {object} ErrorResponse
// @Failure      401 {object} ErrorResponse
// @Router       /api/v1/forms [post]
func (h *FormHandler) CreateForm(c *gin.Context) {
	userID := c.GetUint("user_id")

	var req SaveFormRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	payload := editor.Serialize(req.Title, req.Description, req.Questions, userID, req.Published)
	form, err := h.formService.CreateForm(payload)
	if err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: err.Error()})
		return
	}

	c.JSON(http.StatusCreated, form)
}

// GetForm godoc
// @Summary      Get a form
// @Description  Get a form with its full question schema
// @Tags         forms
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "Form ID"
// @Success      200 {object} Form
// @Failure      404 {object} ErrorResponse
// @Router       /api/v1/forms/{id} [get]
func (h *FormHandler) GetForm(c *gin.Context) {
	userID := c.GetUint("user_id")
	formID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid form id"})
		return
	}

	form, err := h.formService.GetFormByID(uint(formID), userID)
	if err != nil {
		c.JSON(http.StatusNotFound, ErrorResponse{Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, form)
}

// UpdateForm godoc
// @Summary      Update a form
// @Description  Replace the form's title, description, questions and publish state
// @Tags         forms
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "Form ID"
// @Param        request body SaveFormRequest true "Form data"
// @Success      200 {object} Form
// @Failure      400 {object} ErrorResponse
// @Failure      404 {object} ErrorResponse
// @Router       /api/v1/forms/{id} [put]
func (h *FormHandler) UpdateForm(c *gin.Context) {
	userID := c.GetUint("user_id")
	formID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid form id"})
		return
	}

	var req SaveFormRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	payload := editor.Serialize(req.Title, req.Description, req.Questions, userID, req.Published)
	form, err := h.formService.UpdateForm(uint(formID), userID, payload)
	if err != nil {
		c.JSON(http.StatusNotFound, ErrorResponse{Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, form)
}

// DeleteForm godoc
// @Summary      Delete a form
// @Description  Delete a form and all its responses
// @Tags         forms
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "Form ID"
// @Success      200 {object} MessageResponse
// @Failure      404 {object} ErrorResponse
// @Router       /api/v1/forms/{id} [delete]
func (h *FormHandler) DeleteForm(c *gin.Context) {
	userID := c.GetUint("user_id")
	formID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid form id"})
		return
	}

	if err := h.formService.DeleteForm(uint(formID), userID); err != nil {
		c.JSON(http.StatusNotFound, ErrorResponse{Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, MessageResponse{Message: "form deleted"})
}
