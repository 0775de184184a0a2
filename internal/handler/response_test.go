package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"skicheck/internal/model"
	"skicheck/internal/service"
)

func recordResponse(t *testing.T, write func(echo.Context) error) (*httptest.ResponseRecorder, Envelope) {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	require.NoError(t, write(c))

	var env Envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
	return rec, env
}

func TestRespondSuccessWithObjects(t *testing.T) {
	resp := service.NewResponse[model.User]()
	resp.SetOperationSuccessful(true)
	resp.AddBusinessObject(model.User{ID: 1, Username: "anna"})

	rec, env := recordResponse(t, func(c echo.Context) error { return respond(c, resp) })

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, env.OperationSuccessful)
	assert.NotNil(t, env.BusinessObjects)
	assert.Empty(t, env.FailureNote)
}

func TestRespondSuccessfulLookupWithoutResultIs404(t *testing.T) {
	resp := service.NewResponse[model.User]()
	resp.SetOperationSuccessful(true)
	resp.SetInfoMessage(service.NewMessage("No member found."))

	rec, env := recordResponse(t, func(c echo.Context) error { return respond(c, resp) })

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.True(t, env.OperationSuccessful)
	assert.Nil(t, env.BusinessObjects)
	require.NotNil(t, env.InfoMessage)
	assert.Equal(t, "No member found.", env.InfoMessage.Text)
}

func TestRespondCommandSuccessWithoutResultIs200(t *testing.T) {
	resp := service.NewResponse[model.UserDetail]()
	resp.SetOperationSuccessful(true)
	resp.SetInfoMessage(service.NewMessage("Payment status has been reset for all members."))

	rec, env := recordResponse(t, func(c echo.Context) error { return respondCommand(c, resp) })

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, env.OperationSuccessful)
}

func TestRespondFailureStatusByNote(t *testing.T) {
	tests := []struct {
		note service.FailureNote
		want int
		name string
	}{
		{service.FailureNoteIllegalParameter, http.StatusBadRequest, "ILLEGAL_PARAMETER_VALUES"},
		{service.FailureNoteConstraintViolation, http.StatusConflict, "DATABASE_CONSTRAINT_VIOLATION"},
		{service.FailureNoteConnectionFailed, http.StatusInternalServerError, "DATABASE_CONNECTION_FAILED"},
	}

	for _, tt := range tests {
		resp := service.NewResponse[model.User]()
		resp.SetFailureNote(tt.note)
		resp.SetErrorMessage(service.NewMessage("Something went wrong. Please try again later."))

		rec, env := recordResponse(t, func(c echo.Context) error { return respond(c, resp) })

		assert.Equal(t, tt.want, rec.Code)
		assert.False(t, env.OperationSuccessful)
		assert.Equal(t, tt.name, env.FailureNote)
		require.NotNil(t, env.ErrorMessage)
	}
}

func TestPathID(t *testing.T) {
	e := echo.New()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), httptest.NewRecorder())

	c.SetParamNames("id")
	c.SetParamValues("42")
	assert.Equal(t, uint(42), pathID(c))

	c.SetParamValues("abc")
	assert.Equal(t, uint(0), pathID(c))

	c.SetParamValues("-1")
	assert.Equal(t, uint(0), pathID(c))
}
