package handlers

import "github.com/magi8101/form-builder/internal/models"

type ErrorResponse struct {
	Error string `json:"error" example:"something went wrong"`
}

type MessageResponse struct {
	Message string `json:"message" example:"operation successful"`
}

// Type aliases so swag can resolve models in annotations.
type Form = models.Form
type Response = models.Response
