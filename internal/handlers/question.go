package handlers

import (
	"net/http"
	"strconv"

	"github.com/magi8101/form-builder/internal/services"

	"github.com/gin-gonic/gin"
)

// QuestionHandler exposes the form editor's discrete question operations over
// HTTP. Each endpoint applies one operation to the stored question list and
// returns the updated form. Operations referencing an unknown question id or
// option index succeed with the form unchanged.
type QuestionHandler struct {
	formService *services.FormService
}

func NewQuestionHandler(formService *services.FormService) *QuestionHandler {
	return &QuestionHandler{formService: formService}
}

func (h *QuestionHandler) formAndUser(c *gin.Context) (uint, uint, bool) {
	userID := c.GetUint("user_id")
	formID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid form id"})
		return 0, 0, false
	}
	return uint(formID), userID, true
}

type UpdateQuestionFieldRequest struct {
	Field string      `json:"field" binding:"required" example:"title"`
	Value interface{} `json:"value"`
}

type ReorderRequest struct {
	Source      int `json:"source" example:"0"`
	Destination int `json:"destination" example:"1"`
}

// AddQuestion godoc
// @Summary      Add a question
// @Description  Append a new question with default fields to the form
// @Tags         questions
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "Form ID"
// @Success      201 {object} Form
// @Failure      404 {object} ErrorResponse
// @Router       /api/v1/forms/{id}/questions [post]
func (h *QuestionHandler) AddQuestion(c *gin.Context) {
	formID, userID, ok := h.formAndUser(c)
	if !ok {
		return
	}

	form, err := h.formService.AddQuestion(formID, userID)
	if err != nil {
		c.JSON(http.StatusNotFound, ErrorResponse{Error: err.Error()})
		return
	}

	c.JSON(http.StatusCreated, form)
}

// UpdateQuestionField godoc
// @Summary      Update one question field
// @Description  Replace a single field (title, type, required, options, placeholder) on a question
// @Tags         questions
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "Form ID"
// @Param        qid path string true "Question ID"
// @Param        request body UpdateQuestionFieldRequest true "Field update"
// @Success      200 {object} Form
// @Failure      400 {object} ErrorResponse
// @Failure      404 {object} ErrorResponse
// @Router       /api/v1/forms/{id}/questions/{qid} [put]
func (h *QuestionHandler) UpdateQuestionField(c *gin.Context) {
	formID, userID, ok := h.formAndUser(c)
	if !ok {
		return
	}

	var req UpdateQuestionFieldRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	form, err := h.formService.UpdateQuestionField(formID, userID, c.Param("qid"), req.Field, req.Value)
	if err != nil {
		c.JSON(http.StatusNotFound, ErrorResponse{Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, form)
}

// RemoveQuestion godoc
// @Summary      Remove a question
// @Tags         questions
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "Form ID"
// @Param        qid path string true "Question ID"
// @Success      200 {object} Form
// @Failure      404 {object} ErrorResponse
// @Router       /api/v1/forms/{id}/questions/{qid} [delete]
func (h *QuestionHandler) RemoveQuestion(c *gin.Context) {
	formID, userID, ok := h.formAndUser(c)
	if !ok {
		return
	}

	form, err := h.formService.RemoveQuestion(formID, userID, c.Param("qid"))
	if err != nil {
		c.JSON(http.StatusNotFound, ErrorResponse{Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, form)
}

// AddOption godoc
// @Summary      Add an option
// @Description  Append a default "Option N" label to a question's option list
// @Tags         questions
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "Form ID"
// @Param        qid path string true "Question ID"
// @Success      200 {object} Form
// @Failure      404 {object} ErrorResponse
// @Router       /api/v1/forms/{id}/questions/{qid}/options [post]
func (h *QuestionHandler) AddOption(c *gin.Context) {
	formID, userID, ok := h.formAndUser(c)
	if !ok {
		return
	}

	form, err := h.formService.AddOption(formID, userID, c.Param("qid"))
	if err != nil {
		c.JSON(http.StatusNotFound, ErrorResponse{Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, form)
}

type UpdateOptionRequest struct {
	Value string `json:"value" example:"Red"`
}

// UpdateOption godoc
// @Summary      Update an option label
// @Tags         questions
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "Form ID"
// @Param        qid path string true "Question ID"
// @Param        index path int true "Option index"
// @Param        request body UpdateOptionRequest true "Option label"
// @Success      200 {object} Form
// @Failure      400 {object} ErrorResponse
// @Failure      404 {object} ErrorResponse
// @Router       /api/v1/forms/{id}/questions/{qid}/options/{index} [put]
func (h *QuestionHandler) UpdateOption(c *gin.Context) {
	formID, userID, ok := h.formAndUser(c)
	if !ok {
		return
	}

	index, err := strconv.Atoi(c.Param("index"))
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid option index"})
		return
	}

	var req UpdateOptionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	form, err := h.formService.UpdateOption(formID, userID, c.Param("qid"), index, req.Value)
	if err != nil {
		c.JSON(http.StatusNotFound, ErrorResponse{Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, form)
}

// RemoveOption godoc
// @Summary      Remove an option
// @Tags         questions
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "Form ID"
// @Param        qid path string true "Question ID"
// @Param        index path int true "Option index"
// @Success      200 {object} Form
// @Failure      400 {object} ErrorResponse
// @Failure      404 {object} ErrorResponse
// @Router       /api/v1/forms/{id}/questions/{qid}/options/{index} [delete]
func (h *QuestionHandler) RemoveOption(c *gin.Context) {
	formID, userID, ok := h.formAndUser(c)
	if !ok {
		return
	}

	index, err := strconv.Atoi(c.Param("index"))
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid option index"})
		return
	}

	form, err := h.formService.RemoveOption(formID, userID, c.Param("qid"), index)
	if err != nil {
		c.JSON(http.StatusNotFound, ErrorResponse{Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, form)
}

// ReorderQuestions godoc
// @Summary      Reorder questions
// @Description  Move the question at source to destination, keeping every other question's relative order
// @Tags         questions
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "Form ID"
// @Param        request body ReorderRequest true "Drag result"
// @Success      200 {object} Form
// @Failure      400 {object} ErrorResponse
// @Failure      404 {object} ErrorResponse
// @Router       /api/v1/forms/{id}/reorder [put]
func (h *QuestionHandler) ReorderQuestions(c *gin.Context) {
	formID, userID, ok := h.formAndUser(c)
	if !ok {
		return
	}

	var req ReorderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	form, err := h.formService.ReorderQuestions(formID, userID, req.Source, req.Destination)
	if err != nil {
		c.JSON(http.StatusNotFound, ErrorResponse{Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, form)
}
