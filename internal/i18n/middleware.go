package i18n

import (
	"github.com/labstack/echo-contrib/session"
	"github.com/labstack/echo/v4"
	"golang.org/x/text/language"

	"skicheck/pkg/logger"
)

const (
	// SessionName is the cookie session holding per-visitor state.
	SessionName = "skicheck_session"
	// languageSessionKey is the session attribute carrying the two-letter
	// language code across requests.
	languageSessionKey = "language"
	// localeParam is the query/form parameter that overrides every other
	// language source when it names a supported code exactly.
	localeParam = "locale"
)

// Middleware resolves the request language and installs it into the request
// context for the rest of the pipeline. Precedence: explicit locale
// parameter, then session value, then the negotiated Accept-Language locale.
// The resolved language is written back to the session, when one is
// available, so it sticks for the visitor. The write-back happens before the
// handler runs; afterwards the response is committed and the session cookie
// could no longer be set.
func Middleware() echo.MiddlewareFunc {
	log := logger.Named("i18n")
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			lang := resolve(c)
			log.Debug().Str("language", string(lang)).Msg("language resolved")

			ctx := WithLanguage(c.Request().Context(), lang)
			c.SetRequest(c.Request().WithContext(ctx))

			if sess, serr := session.Get(SessionName, c); serr == nil {
				sess.Values[languageSessionKey] = string(lang)
				if serr = sess.Save(c.Request(), c.Response()); serr != nil {
					log.Warn().Err(serr).Msg("saving language to session failed")
				}
			}

			return next(c)
		}
	}
}

func resolve(c echo.Context) Language {
	lang := Language("")

	if sess, err := session.Get(SessionName, c); err == nil {
		if stored, ok := sess.Values[languageSessionKey].(string); ok && stored != "" {
			lang = FromPrefix(stored)
		}
	}
	if lang == "" {
		lang = fromAcceptLanguage(c.Request().Header.Get("Accept-Language"))
	}

	param := c.QueryParam(localeParam)
	if param == "" {
		param = c.FormValue(localeParam)
	}
	if param != "" {
		if exact, ok := Parse(param); ok {
			lang = exact
		}
	}
	return lang
}

// fromAcceptLanguage decodes the browser locale. No negotiable locale at all
// means DefaultLanguage; a locale outside the supported set decodes to
// English via the prefix rule.
func fromAcceptLanguage(header string) Language {
	if header == "" {
		return DefaultLanguage
	}
	tags, _, err := language.ParseAcceptLanguage(header)
	if err != nil || len(tags) == 0 {
		return DefaultLanguage
	}
	base, _ := tags[0].Base()
	return FromPrefix(base.String())
}
