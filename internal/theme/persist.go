package theme

import (
	"context"
	"encoding/json"
	"errors"

	"resume-studio/internal/shared/storage/kv"
	"resume-studio/internal/shared/telemetry"
)

// StorageKey is the key-value slot the theme is persisted under,
// independent of the document's slot.
const StorageKey = "theme-storage"

// Load rehydrates the theme from the backend, falling back to defaults on
// absence or a blob that does not decode to known values.
func Load(ctx context.Context, backend kv.Store) Theme {
	raw, err := backend.Get(ctx, StorageKey)
	if err != nil {
		if !errors.Is(err, kv.ErrNotFound) {
			telemetry.Warn("theme.rehydrate.fallback", map[string]any{
				"reason": "backend get failed",
				"error":  err.Error(),
			})
		}
		return DefaultTheme()
	}

	var t Theme
	if err := json.Unmarshal(raw, &t); err != nil {
		telemetry.Warn("theme.rehydrate.fallback", map[string]any{
			"reason": "blob rejected",
			"error":  err.Error(),
		})
		return DefaultTheme()
	}
	// Field-wise fallback: a bad value in one field does not discard the other.
	if t.AccentColor == "" {
		t.AccentColor = DefaultAccentColor
	}
	if !isKnownFontTheme(t.FontTheme) {
		t.FontTheme = DefaultFontTheme
	}
	return t
}

// Attach subscribes a persistence writer to the store. Writes happen
// synchronously in commit order; failures are logged and swallowed.
func Attach(store *Store, backend kv.Store) {
	store.Subscribe(func(t Theme) {
		data, err := json.Marshal(t)
		if err != nil {
			telemetry.Error("theme.persist.failed", map[string]any{"error": err.Error()})
			return
		}
		if err := backend.Set(context.Background(), StorageKey, data); err != nil {
			telemetry.Error("theme.persist.failed", map[string]any{"error": err.Error()})
		}
	})
}
