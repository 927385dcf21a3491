package handlers

import (
	"bytes"
	"testing"
	"time"

	"github.com/magi8101/form-builder/internal/models"
	"github.com/magi8101/form-builder/internal/schema"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteResponsesCSV(t *testing.T) {
	questions := []schema.Question{
		{ID: "q-1", Type: schema.TypeShortText, Title: "Name"},
		{ID: "q-2", Type: schema.TypeCheckbox, Title: "Colors"},
		{ID: "q-3", Type: schema.TypeLongText, Title: "Comments, if any"},
	}
	created := time.Date(2025, 3, 14, 10, 30, 0, 0, time.UTC)
	responses := []models.Response{
		{
			CreatedAt: created,
			Answers: schema.AnswerList{
				schema.TextAnswer("Alice"),
				schema.SetAnswer("Red", "Blue"),
				schema.TextAnswer(`Said "hi", left`),
			},
		},
		{
			// short vector: missing answers render as empty cells
			CreatedAt: created,
			Answers:   schema.AnswerList{schema.TextAnswer("Bob")},
		},
	}

	var buf bytes.Buffer
	require.NoError(t, writeResponsesCSV(&buf, questions, responses))

	want := "Submission Date,Name,Colors,\"Comments, if any\"\n" +
		"2025-03-14,Alice,\"Red, Blue\",\"Said \"\"hi\"\", left\"\n" +
		"2025-03-14,Bob,,\n"
	assert.Equal(t, want, buf.String())
}

func TestWriteResponsesCSVNoResponses(t *testing.T) {
	questions := []schema.Question{{ID: "q-1", Type: schema.TypeShortText, Title: "Name"}}

	var buf bytes.Buffer
	require.NoError(t, writeResponsesCSV(&buf, questions, nil))
	assert.Equal(t, "Submission Date,Name\n", buf.String())
}
