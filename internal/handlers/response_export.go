package handlers

import (
	"encoding/csv"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"

	"github.com/magi8101/form-builder/internal/models"
	"github.com/magi8101/form-builder/internal/schema"

	"github.com/gin-gonic/gin"
)

// ExportResponses godoc
// @Summary      Export responses as CSV
// @Description  Download all responses with one column per question, header "Submission Date, <question titles...>"
// @Tags         responses
// @Produce      text/csv
// @Security     BearerAuth
// @Param        id path int true "Form ID"
// @Success      200 {string} string "CSV file"
// @Failure      404 {object} ErrorResponse
// @Router       /api/v1/forms/{id}/responses/export [get]
func (h *ResponseHandler) ExportResponses(c *gin.Context) {
	userID := c.GetUint("user_id")
	formID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid form id"})
		return
	}

	form, responses, err := h.responseService.GetResponses(uint(formID), userID)
	if err != nil {
		c.JSON(http.StatusNotFound, ErrorResponse{Error: err.Error()})
		return
	}

	filename := strings.ReplaceAll(form.Title, " ", "_")
	c.Header("Content-Type", "text/csv; charset=utf-8")
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=\"%s_responses.csv\"", filename))

	if err := writeResponsesCSV(c.Writer, form.Questions, responses); err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: err.Error()})
	}
}

// writeResponsesCSV renders the export: header row "Submission Date" plus one
// column per question title, then one row per response with the formatted
// submission date and the answer at each position. Set answers are joined
// with ", "; missing answers are empty cells. Quoting and escaping is
// encoding/csv's job.
func writeResponsesCSV(out io.Writer, questions []schema.Question, responses []models.Response) error {
	w := csv.NewWriter(out)

	header := make([]string, 0, len(questions)+1)
	header = append(header, "Submission Date")
	for _, q := range questions {
		header = append(header, q.Title)
	}
	if err := w.Write(header); err != nil {
		return err
	}

	for _, r := range responses {
		row := make([]string, 0, len(questions)+1)
		row = append(row, r.CreatedAt.Format("2006-01-02"))
		for i := range questions {
			row = append(row, answerCell(r.Answers, i))
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}

	w.Flush()
	return w.Error()
}

func answerCell(answers schema.AnswerList, index int) string {
	if index < 0 || index >= len(answers) {
		return ""
	}
	a := answers[index]
	if a.Selections != nil {
		return strings.Join(a.Selections, ", ")
	}
	return a.Text
}
