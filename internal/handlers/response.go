package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/magi8101/form-builder/internal/render"
	"github.com/magi8101/form-builder/internal/schema"
	"github.com/magi8101/form-builder/internal/services"

	"github.com/gin-gonic/gin"
)

type ResponseHandler struct {
	formService     *services.FormService
	responseService *services.ResponseService
}

func NewResponseHandler(formService *services.FormService, responseService *services.ResponseService) *ResponseHandler {
	return &ResponseHandler{formService: formService, responseService: responseService}
}

type PublicFormResponse struct {
	ID          uint             `json:"id"`
	Title       string           `json:"title"`
	Description string           `json:"description"`
	Controls    []render.Control `json:"controls"`
}

type SubmitResponseRequest struct {
	Answers schema.AnswerList `json:"answers"`
}

// GetPublicForm godoc
// @Summary      Get a published form
// @Description  Fetch a published form with its rendered control plan for the public submission page
// @Tags         public
// @Produce      json
// @Param        id path int true "Form ID"
// @Success      200 {object} PublicFormResponse
// @Failure      404 {object} ErrorResponse
// @Router       /api/v1/public/forms/{id} [get]
func (h *ResponseHandler) GetPublicForm(c *gin.Context) {
	formID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid form id"})
		return
	}

	form, err := h.formService.GetPublishedForm(uint(formID))
	if err != nil {
		c.JSON(http.StatusNotFound, ErrorResponse{Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, PublicFormResponse{
		ID:          form.ID,
		Title:       form.Title,
		Description: form.Description,
		Controls:    render.Plan(form.Questions),
	})
}

// SubmitResponse godoc
// @Summary      Submit a response
// @Description  Validate and store one answer vector against a published form
// @Tags         public
// @Accept       json
// @Produce      json
// @Param        id path int true "Form ID"
// @Param        request body SubmitResponseRequest true "Answers, positionally aligned to the form's questions"
// @Success      201 {object} Response
// @Failure      400 {object} ErrorResponse
// @Failure      404 {object} ErrorResponse
// @Failure      422 {object} ErrorResponse
// @Router       /api/v1/public/forms/{id}/responses [post]
func (h *ResponseHandler) SubmitResponse(c *gin.Context) {
	formID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid form id"})
		return
	}

	var req SubmitResponseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	response, err := h.responseService.SubmitResponse(uint(formID), req.Answers)
	if err != nil {
		if errors.Is(err, render.ErrMissingRequired) {
			c.JSON(http.StatusUnprocessableEntity, ErrorResponse{Error: err.Error()})
			return
		}
		c.JSON(http.StatusNotFound, ErrorResponse{Error: err.Error()})
		return
	}

	c.JSON(http.StatusCreated, response)
}

// ListResponses godoc
// @Summary      List responses
// @Description  Get a form's responses, newest first
// @Tags         responses
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "Form ID"
// @Success      200 {array} Response
// @Failure      404 {object} ErrorResponse
// @Router       /api/v1/forms/{id}/responses [get]
func (h *ResponseHandler) ListResponses(c *gin.Context) {
	userID := c.GetUint("user_id")
	formID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid form id"})
		return
	}

	_, responses, err := h.responseService.GetResponses(uint(formID), userID)
	if err != nil {
		c.JSON(http.StatusNotFound, ErrorResponse{Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, responses)
}
