package log

import (
	"context"
	"io"
	"log/slog"
	"regexp"
	"strings"
)

// MaskValue is the string used to replace secret-looking values.
const MaskValue = "***REDACTED***"

// MaxAttrLength is the longest attribute value the handler will emit.
// Longer values are cut and suffixed with a marker; a full prompt can run
// to kilobytes and would make the log stream unreadable.
const MaxAttrLength = 256

// truncationMarker is appended to values cut at MaxAttrLength.
const truncationMarker = "...(truncated)"

// secretPatterns contains regex patterns that indicate secret values.
// Values matching these patterns are masked regardless of key name,
// because prompts are free text and secrets show up in them verbatim.
var secretPatterns = []*regexp.Regexp{
	// JWT tokens
	regexp.MustCompile(`eyJ[A-Za-z0-9_-]+\.eyJ[A-Za-z0-9_-]+\.[A-Za-z0-9_-]+`),

	// Bearer tokens
	regexp.MustCompile(`(?i)bearer\s+\S+`),

	// AWS access keys
	regexp.MustCompile(`AKIA[0-9A-Z]{16}`),

	// Private key markers
	regexp.MustCompile(`(?i)-----BEGIN.*(PRIVATE|SECRET).*KEY-----`),
}

// secretKeywords are attribute-key substrings that indicate the value is
// a secret no matter what it looks like.
var secretKeywords = []string{
	"password", "passwd", "secret", "token", "credential", "api_key", "apikey",
}

// PromptHandler wraps an slog.Handler to keep prompt payloads log-safe.
// It truncates oversized string attributes and masks secret-looking
// values before passing the record to the underlying handler.
//
// Design decision: We use a handler wrapper rather than a custom logger
// because:
//  1. It integrates seamlessly with standard slog APIs
//  2. It works with any underlying handler (text, JSON, etc.)
type PromptHandler struct {
	// handler is the underlying slog handler that receives cleaned records.
	handler slog.Handler
}

// NewPromptHandler creates a new PromptHandler wrapping the given handler.
// If handler is nil, the returned PromptHandler uses slog.Default().Handler().
func NewPromptHandler(handler slog.Handler) *PromptHandler {
	if handler == nil {
		handler = slog.Default().Handler()
	}
	return &PromptHandler{handler: handler}
}

// Enabled reports whether the handler handles records at the given level.
// It delegates to the underlying handler.
func (h *PromptHandler) Enabled(ctx context.Context, level slog.Level) bool {
	return h.handler.Enabled(ctx, level)
}

// Handle cleans the record's attributes and passes it to the underlying handler.
func (h *PromptHandler) Handle(ctx context.Context, r slog.Record) error {
	cleaned := slog.NewRecord(r.Time, r.Level, r.Message, r.PC)

	r.Attrs(func(a slog.Attr) bool {
		cleaned.AddAttrs(h.cleanAttr(a))
		return true
	})

	return h.handler.Handle(ctx, cleaned)
}

// WithAttrs returns a new handler with the given attributes added.
// Attributes are cleaned before being added.
func (h *PromptHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	cleanedAttrs := make([]slog.Attr, len(attrs))
	for i, a := range attrs {
		cleanedAttrs[i] = h.cleanAttr(a)
	}
	return &PromptHandler{handler: h.handler.WithAttrs(cleanedAttrs)}
}

// WithGroup returns a new handler with the given group name.
func (h *PromptHandler) WithGroup(name string) slog.Handler {
	return &PromptHandler{handler: h.handler.WithGroup(name)}
}

// cleanAttr cleans a single attribute, recursively handling groups.
func (h *PromptHandler) cleanAttr(a slog.Attr) slog.Attr {
	if a.Value.Kind() == slog.KindGroup {
		attrs := a.Value.Group()
		cleanedAttrs := make([]slog.Attr, len(attrs))
		for i, groupAttr := range attrs {
			cleanedAttrs[i] = h.cleanAttr(groupAttr)
		}
		return slog.Attr{Key: a.Key, Value: slog.GroupValue(cleanedAttrs...)}
	}

	if a.Value.Kind() != slog.KindString {
		return a
	}

	keyLower := strings.ToLower(a.Key)
	for _, keyword := range secretKeywords {
		if strings.Contains(keyLower, keyword) {
			return slog.String(a.Key, MaskValue)
		}
	}

	strVal := a.Value.String()
	for _, pattern := range secretPatterns {
		if pattern.MatchString(strVal) {
			return slog.String(a.Key, MaskValue)
		}
	}

	if len(strVal) > MaxAttrLength {
		runes := []rune(strVal)
		if len(runes) > MaxAttrLength {
			return slog.String(a.Key, string(runes[:MaxAttrLength])+truncationMarker)
		}
	}

	return a
}

// NewLogger creates a new slog.Logger writing text records to w through a
// PromptHandler. Verbose sets the level to Debug, otherwise Warn.
func NewLogger(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}

	opts := &slog.HandlerOptions{
		Level: level,
	}

	return slog.New(NewPromptHandler(slog.NewTextHandler(w, opts)))
}
