package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"skicheck/internal/i18n"
)

// LanguageHandler handles the UI language endpoints.
type LanguageHandler struct {
	bundle *i18n.Bundle
}

// NewLanguageHandler creates a new language handler.
func NewLanguageHandler(bundle *i18n.Bundle) *LanguageHandler {
	return &LanguageHandler{bundle: bundle}
}

// Languages godoc
// @Summary List the supported UI languages
// @Description Language names are localized to the language of the request.
// @Tags languages
// @Produce json
// @Param locale query string false "Language override (de, fr, it, en)"
// @Success 200 {array} i18n.UILanguage
// @Router /languages [get]
func (h *LanguageHandler) Languages(c echo.Context) error {
	lang := i18n.FromContext(c.Request().Context())
	return c.JSON(http.StatusOK, h.bundle.UILanguages(lang))
}
