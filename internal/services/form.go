package services

import (
	"errors"

	"github.com/magi8101/form-builder/internal/editor"
	"github.com/magi8101/form-builder/internal/models"
	"github.com/magi8101/form-builder/internal/schema"

	"gorm.io/gorm"
)

type FormService struct {
	db *gorm.DB
}

func NewFormService(db *gorm.DB) *FormService {
	return &FormService{db: db}
}

func (s *FormService) GetFormsByUser(userID uint) ([]models.Form, error) {
	var forms []models.Form
	err := s.db.Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&forms).Error
	if err != nil {
		return nil, err
	}
	return forms, nil
}

// CreateForm persists an editor payload as a new form. There is no validation
// gate on publish: an empty title or zero questions may be published.
func (s *FormService) CreateForm(payload editor.FormPayload) (*models.Form, error) {
	questions := payload.Questions
	if questions == nil {
		questions = []schema.Question{}
	}
	form := models.Form{
		UserID:      payload.UserID,
		Title:       payload.Title,
		Description: payload.Description,
		Questions:   questions,
		Published:   payload.Published,
	}
	if err := s.db.Create(&form).Error; err != nil {
		return nil, err
	}
	return &form, nil
}

func (s *FormService) GetFormByID(formID, userID uint) (*models.Form, error) {
	var form models.Form
	err := s.db.Where("id = ? AND user_id = ?", formID, userID).First(&form).Error
	if err != nil {
		return nil, errors.New("form not found")
	}
	return &form, nil
}

// GetPublishedForm fetches a form for the public submission page. Unpublished
// forms are invisible to respondents.
func (s *FormService) GetPublishedForm(formID uint) (*models.Form, error) {
	var form models.Form
	err := s.db.Where("id = ? AND published = ?", formID, true).First(&form).Error
	if err != nil {
		return nil, errors.New("form not found")
	}
	return &form, nil
}

// UpdateForm replaces the form's editable state wholesale with the given
// editor payload, mirroring the editor's save semantics.
func (s *FormService) UpdateForm(formID, userID uint, payload editor.FormPayload) (*models.Form, error) {
	form, err := s.GetFormByID(formID, userID)
	if err != nil {
		return nil, err
	}

	form.Title = payload.Title
	form.Description = payload.Description
	form.Questions = payload.Questions
	form.Published = payload.Published
	if err := s.db.Save(form).Error; err != nil {
		return nil, err
	}
	return form, nil
}

func (s *FormService) DeleteForm(formID, userID uint) error {
	result := s.db.Where("id = ? AND user_id = ?", formID, userID).Delete(&models.Form{})
	if result.RowsAffected == 0 {
		return errors.New("form not found")
	}
	return result.Error
}

// Question editing below applies one editor operation to the stored question
// list and saves the result. Editor operations are total: unknown question
// ids and out-of-range option indices leave the list unchanged, so the form
// simply round-trips.

func (s *FormService) AddQuestion(formID, userID uint) (*models.Form, error) {
	form, err := s.GetFormByID(formID, userID)
	if err != nil {
		return nil, err
	}
	form.Questions = editor.AddQuestion(form.Questions)
	if err := s.db.Save(form).Error; err != nil {
		return nil, err
	}
	return form, nil
}

func (s *FormService) UpdateQuestionField(formID, userID uint, questionID, field string, value interface{}) (*models.Form, error) {
	form, err := s.GetFormByID(formID, userID)
	if err != nil {
		return nil, err
	}
	form.Questions = editor.UpdateQuestionField(form.Questions, questionID, field, value)
	if err := s.db.Save(form).Error; err != nil {
		return nil, err
	}
	return form, nil
}

func (s *FormService) RemoveQuestion(formID, userID uint, questionID string) (*models.Form, error) {
	form, err := s.GetFormByID(formID, userID)
	if err != nil {
		return nil, err
	}
	form.Questions = editor.RemoveQuestion(form.Questions, questionID)
	if err := s.db.Save(form).Error; err != nil {
		return nil, err
	}
	return form, nil
}

func (s *FormService) AddOption(formID, userID uint, questionID string) (*models.Form, error) {
	form, err := s.GetFormByID(formID, userID)
	if err != nil {
		return nil, err
	}
	form.Questions = editor.AddOption(form.Questions, questionID)
	if err := s.db.Save(form).Error; err != nil {
		return nil, err
	}
	return form, nil
}

func (s *FormService) UpdateOption(formID, userID uint, questionID string, index int, value string) (*models.Form, error) {
	form, err := s.GetFormByID(formID, userID)
	if err != nil {
		return nil, err
	}
	form.Questions = editor.UpdateOption(form.Questions, questionID, index, value)
	if err := s.db.Save(form).Error; err != nil {
		return nil, err
	}
	return form, nil
}

func (s *FormService) RemoveOption(formID, userID uint, questionID string, index int) (*models.Form, error) {
	form, err := s.GetFormByID(formID, userID)
	if err != nil {
		return nil, err
	}
	form.Questions = editor.RemoveOption(form.Questions, questionID, index)
	if err := s.db.Save(form).Error; err != nil {
		return nil, err
	}
	return form, nil
}

func (s *FormService) ReorderQuestions(formID, userID uint, source, destination int) (*models.Form, error) {
	form, err := s.GetFormByID(formID, userID)
	if err != nil {
		return nil, err
	}
	form.Questions = editor.Reorder(form.Questions, source, destination)
	if err := s.db.Save(form).Error; err != nil {
		return nil, err
	}
	return form, nil
}
