package services

import (
	"errors"

	"github.com/magi8101/form-builder/internal/models"
	"github.com/magi8101/form-builder/internal/render"
	"github.com/magi8101/form-builder/internal/schema"
	"github.com/magi8101/form-builder/internal/ws"

	"gorm.io/gorm"
)

type ResponseService struct {
	db  *gorm.DB
	hub *ws.Hub
}

func NewResponseService(db *gorm.DB, hub *ws.Hub) *ResponseService {
	return &ResponseService{db: db, hub: hub}
}

// SubmitResponse validates and stores one respondent's answer vector against
// a published form. The vector is normalized to the form's current question
// count first, so positions always align even if the client sent a short or
// long vector. render.ErrMissingRequired comes back unwrapped so the handler
// can surface it as a user-correctable failure.
func (s *ResponseService) SubmitResponse(formID uint, answers schema.AnswerList) (*models.Response, error) {
	var form models.Form
	if err := s.db.Where("id = ? AND published = ?", formID, true).First(&form).Error; err != nil {
		return nil, errors.New("form not found")
	}

	answers = render.Normalize(answers, len(form.Questions))
	if err := render.Validate(form.Questions, answers); err != nil {
		return nil, err
	}

	payload := render.Submission(form.ID, answers)
	response := models.Response{
		FormID:  payload.FormID,
		Answers: payload.Answers,
	}
	if err := s.db.Create(&response).Error; err != nil {
		return nil, err
	}

	s.hub.Broadcast(form.ID, ws.Message{Type: "response.created", Data: response})
	return &response, nil
}

// GetResponses lists a form's responses for its owner, newest first.
func (s *ResponseService) GetResponses(formID, userID uint) (*models.Form, []models.Response, error) {
	var form models.Form
	if err := s.db.Where("id = ? AND user_id = ?", formID, userID).First(&form).Error; err != nil {
		return nil, nil, errors.New("form not found")
	}

	var responses []models.Response
	err := s.db.Where("form_id = ?", formID).
		Order("created_at DESC").
		Find(&responses).Error
	if err != nil {
		return nil, nil, err
	}
	return &form, responses, nil
}
