package i18n

import "context"

type contextKey struct{}

// WithLanguage returns a context carrying the resolved request language.
func WithLanguage(ctx context.Context, lang Language) context.Context {
	return context.WithValue(ctx, contextKey{}, lang)
}

// FromContext returns the language carried by ctx, or DefaultLanguage when
// none was installed. Every localized lookup takes the language from here so
// no process-wide locale state exists.
func FromContext(ctx context.Context) Language {
	if lang, ok := ctx.Value(contextKey{}).(Language); ok {
		return lang
	}
	return DefaultLanguage
}
