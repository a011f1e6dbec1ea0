package logger

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"runtime"
	"strings"
)

const tagKey = "tag" // The slog attribute key used for filtering tags

// filteringHandler wraps a base slog.Handler to add custom filtering.
type filteringHandler struct {
	baseHandler slog.Handler
	cfg         *Config // Reference to processed config
}

// newFilteringHandler creates a handler with filtering capabilities.
func newFilteringHandler(base slog.Handler, cfg *Config) *filteringHandler {
	return &filteringHandler{
		baseHandler: base,
		cfg:         cfg,
	}
}

// Enabled checks if the level is enabled by the base handler.
func (h *filteringHandler) Enabled(ctx context.Context, level slog.Level) bool {
	return h.baseHandler.Enabled(ctx, level)
}

// recordSource returns the package directory and file name the record was logged from.
func recordSource(r slog.Record) (pkg, file string, ok bool) {
	if r.PC == 0 {
		return "", "", false
	}
	frames := runtime.CallersFrames([]uintptr{r.PC})
	frame, _ := frames.Next()
	if frame.File == "" {
		return "", "", false
	}
	return filepath.Base(filepath.Dir(frame.File)), filepath.Base(frame.File), true
}

// recordTag returns the lowercased value of the "tag" attribute, if any.
func recordTag(r slog.Record) (tag string, ok bool) {
	r.Attrs(func(a slog.Attr) bool {
		if a.Key == tagKey {
			tag = strings.ToLower(a.Value.String())
			ok = true
			return false
		}
		return true
	})
	return tag, ok
}

// allowed applies the disabled-then-enabled precedence for one key against a pair of sets.
func allowed(key string, disabled, enabled map[string]struct{}) bool {
	key = strings.ToLower(key)
	if _, found := disabled[key]; found {
		return false
	}
	if enabled != nil {
		if _, found := enabled[key]; !found {
			return false
		}
	}
	return true
}

// passes reports whether a record with the given origin and tag survives the filters.
func (c *Config) passes(pkg, file string, sourceFound bool, tag string, tagFound bool) bool {
	if sourceFound {
		if pkg != "" && !allowed(pkg, c.disabledPackagesSet, c.enabledPackagesSet) {
			return false
		}
		if file != "" && !allowed(file, c.disabledFilesSet, c.enabledFilesSet) {
			return false
		}
	}
	if tagFound {
		return allowed(tag, c.disabledTagsSet, c.enabledTagsSet)
	}
	// Filtering for specific tags drops untagged messages
	return c.enabledTagsSet == nil
}

// Handle applies filtering logic before passing the record to the base handler.
func (h *filteringHandler) Handle(ctx context.Context, r slog.Record) error {
	if h.cfg == nil {
		return h.baseHandler.Handle(ctx, r)
	}

	pkg, file, sourceFound := recordSource(r)
	tag, tagFound := recordTag(r)

	if !h.cfg.passes(pkg, file, sourceFound, tag, tagFound) {
		if debugFilter {
			fmt.Fprintf(os.Stderr, "[FILTER] FILTERED OUT: pkg=%s file=%s tag=%s msg=%s\n", pkg, file, tag, r.Message)
		}
		return nil
	}
	return h.baseHandler.Handle(ctx, r)
}

// WithAttrs returns a new handler with attributes added.
func (h *filteringHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return newFilteringHandler(h.baseHandler.WithAttrs(attrs), h.cfg)
}

// WithGroup returns a new handler with a group added.
func (h *filteringHandler) WithGroup(name string) slog.Handler {
	return newFilteringHandler(h.baseHandler.WithGroup(name), h.cfg)
}
