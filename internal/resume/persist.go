package resume

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"resume-studio/internal/shared/metrics"
	"resume-studio/internal/shared/storage/kv"
	"resume-studio/internal/shared/telemetry"
)

// StorageKey is the key-value slot the document is persisted under.
const StorageKey = "resume-storage"

// Load rehydrates the document from the backend. Absence, a blob that
// fails schema validation, or a decode error all fall back to the default
// seed; rehydration never fails outward.
func Load(ctx context.Context, backend kv.Store) Document {
	raw, err := backend.Get(ctx, StorageKey)
	if err != nil {
		if !errors.Is(err, kv.ErrNotFound) {
			telemetry.Warn("resume.rehydrate.fallback", map[string]any{
				"reason": "backend get failed",
				"error":  err.Error(),
			})
		}
		return DefaultDocument()
	}

	doc, err := decodeDocument(raw)
	if err != nil {
		telemetry.Warn("resume.rehydrate.fallback", map[string]any{
			"reason": "blob rejected",
			"error":  err.Error(),
		})
		return DefaultDocument()
	}
	return doc
}

// Attach subscribes a persistence writer to the store. Writes happen
// synchronously in commit order, so a stale snapshot can never overwrite a
// newer one. Failures are logged and swallowed; the in-memory state stays
// authoritative.
func Attach(store *Store, backend kv.Store) {
	store.Subscribe(func(doc Document) {
		data, err := json.Marshal(doc)
		if err != nil {
			telemetry.Error("resume.persist.failed", map[string]any{"error": err.Error()})
			return
		}
		start := time.Now()
		if err := backend.Set(context.Background(), StorageKey, data); err != nil {
			metrics.IncPersistFailed()
			telemetry.Error("resume.persist.failed", map[string]any{"error": err.Error()})
			return
		}
		metrics.ObservePersistDurationMs(float64(time.Since(start).Microseconds()) / 1000.0)
	})
}

// decodeDocument validates the raw blob against the document schema,
// unmarshals it, and repairs fields the blob left out or corrupted.
func decodeDocument(raw []byte) (Document, error) {
	if err := validateDocumentBlob(raw); err != nil {
		return Document{}, fmt.Errorf("schema: %w", err)
	}
	var doc Document
	if err := json.Unmarshal(raw, &doc); err != nil {
		return Document{}, fmt.Errorf("unmarshal: %w", err)
	}
	fillDefaults(&doc)
	return doc, nil
}

// fillDefaults repairs structural fields field-by-field so a partially
// valid blob still loads. Content fields are taken as stored; an empty
// summary is a legitimate value, not a gap.
func fillDefaults(doc *Document) {
	seed := DefaultDocument()
	if !isSectionPermutation(doc.SectionOrder) {
		doc.SectionOrder = seed.SectionOrder
	}
	if doc.Layout.SkillsMode != SkillsModeList && doc.Layout.SkillsMode != SkillsModeGrid {
		doc.Layout.SkillsMode = seed.Layout.SkillsMode
	}
	if doc.Layout.SectionGap <= 0 {
		doc.Layout.SectionGap = seed.Layout.SectionGap
	}
	if doc.Experience == nil {
		doc.Experience = []Experience{}
	}
	if doc.Education == nil {
		doc.Education = []Education{}
	}
	if doc.Skills == nil {
		doc.Skills = []Skill{}
	}
	if doc.Interests == nil {
		doc.Interests = []string{}
	}
	// A selection that no longer points at anything is dropped rather
	// than carried as a dangling reference.
	if doc.ActiveItemID != nil && !doc.hasItem(*doc.ActiveItemID) {
		doc.ActiveItemID = nil
	}
}

// isSectionPermutation reports whether order contains every known section
// exactly once and nothing else.
func isSectionPermutation(order []string) bool {
	known := []string{SectionSummary, SectionExperience, SectionEducation, SectionPortfolio}
	if len(order) != len(known) {
		return false
	}
	seen := make(map[string]bool, len(known))
	for _, id := range order {
		if seen[id] {
			return false
		}
		seen[id] = true
	}
	for _, id := range known {
		if !seen[id] {
			return false
		}
	}
	return true
}
