package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"skicheck/internal/service"
)

// MessageBody is the JSON shape of a localized service message.
type MessageBody struct {
	Property string `json:"property,omitempty"`
	Text     string `json:"text"`
}

// Envelope is the JSON shape every entity endpoint responds with. The body
// mirrors the service response one to one; the HTTP status only restates it.
type Envelope struct {
	OperationSuccessful bool         `json:"operation_successful"`
	BusinessObjects     interface{}  `json:"business_objects,omitempty"`
	InfoMessage         *MessageBody `json:"info_message,omitempty"`
	ErrorMessage        *MessageBody `json:"error_message,omitempty"`
	FailureNote         string       `json:"failure_note,omitempty"`
}

func messageBody(m *service.Message) *MessageBody {
	if m == nil {
		return nil
	}
	return &MessageBody{Property: m.Property, Text: m.Text}
}

func newEnvelope[T any](resp *service.Response[T]) Envelope {
	env := Envelope{
		OperationSuccessful: resp.OperationSuccessful(),
		InfoMessage:         messageBody(resp.InfoMessage()),
		ErrorMessage:        messageBody(resp.ErrorMessage()),
	}
	if resp.HasBusinessObjects() {
		env.BusinessObjects = resp.BusinessObjects()
	}
	if resp.HasFailureNote() {
		env.FailureNote = resp.FailureNote().String()
	}
	return env
}

func failureStatus[T any](resp *service.Response[T]) int {
	switch resp.FailureNote() {
	case service.FailureNoteIllegalParameter:
		return http.StatusBadRequest
	case service.FailureNoteConstraintViolation:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// respond writes an entity service response. Lookups that succeed without
// finding anything answer 404 while still carrying the successful envelope;
// commands use respondCommand instead, where an empty result is plain 200.
func respond[T any](c echo.Context, resp *service.Response[T]) error {
	if !resp.OperationSuccessful() {
		return c.JSON(failureStatus(resp), newEnvelope(resp))
	}
	if !resp.HasBusinessObjects() {
		return c.JSON(http.StatusNotFound, newEnvelope(resp))
	}
	return c.JSON(http.StatusOK, newEnvelope(resp))
}

func respondCommand[T any](c echo.Context, resp *service.Response[T]) error {
	if !resp.OperationSuccessful() {
		return c.JSON(failureStatus(resp), newEnvelope(resp))
	}
	return c.JSON(http.StatusOK, newEnvelope(resp))
}
