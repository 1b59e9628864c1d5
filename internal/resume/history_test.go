package resume

import (
	"fmt"
	"reflect"
	"testing"
)

func TestUndoRedoRoundTrip(t *testing.T) {
	store := newTestStore()
	s0 := store.Snapshot()

	store.UpdateSummary("a new summary")
	s1 := store.Snapshot()

	if !store.Undo() {
		t.Fatalf("expected undo to apply")
	}
	if got := store.Snapshot(); !reflect.DeepEqual(got, s0) {
		t.Fatalf("undo did not restore prior state")
	}

	if !store.Redo() {
		t.Fatalf("expected redo to apply")
	}
	if got := store.Snapshot(); !reflect.DeepEqual(got, s1) {
		t.Fatalf("redo did not restore undone state")
	}
}

func TestUndoOnEmptyHistoryIsNoop(t *testing.T) {
	store := newTestStore()
	before := store.Snapshot()

	if store.Undo() {
		t.Fatalf("expected undo to report no-op on empty history")
	}
	if store.Redo() {
		t.Fatalf("expected redo to report no-op on empty future")
	}
	if !reflect.DeepEqual(store.Snapshot(), before) {
		t.Fatalf("no-op undo/redo changed state")
	}
}

func TestNewMutationClearsRedoStack(t *testing.T) {
	store := newTestStore()
	store.UpdateSummary("first")
	store.UpdateSummary("second")
	store.Undo()

	store.UpdateSummary("divergent")

	if store.Redo() {
		t.Fatalf("expected redo stack cleared by new mutation")
	}
	if got := store.Snapshot().Summary; got != "divergent" {
		t.Fatalf("expected summary %q, got %q", "divergent", got)
	}
}

func TestHistoryBoundEvictsOldest(t *testing.T) {
	store := newTestStore()

	for i := 0; i < 150; i++ {
		store.UpdateSummary(fmt.Sprintf("edit %d", i))
	}

	applied := 0
	for store.Undo() {
		applied++
	}
	if applied != DefaultHistoryLimit {
		t.Fatalf("expected %d undos, got %d", DefaultHistoryLimit, applied)
	}
	// 150 edits with a 100-deep stack: the oldest recoverable state is the
	// one before edit 50, i.e. "edit 49". The seed summary is gone.
	if got := store.Snapshot().Summary; got != "edit 49" {
		t.Fatalf("expected oldest recoverable state %q, got %q", "edit 49", got)
	}
}

func TestCustomHistoryLimit(t *testing.T) {
	store := NewStore(DefaultDocument(), 5)
	for i := 0; i < 20; i++ {
		store.UpdateSummary(fmt.Sprintf("edit %d", i))
	}

	applied := 0
	for store.Undo() {
		applied++
	}
	if applied != 5 {
		t.Fatalf("expected 5 undos with limit 5, got %d", applied)
	}
}

func TestResetClearsHistory(t *testing.T) {
	store := newTestStore()
	store.UpdateSummary("before reset")
	store.AddExperience()

	store.Reset()

	if store.Undo() {
		t.Fatalf("expected undo to be a no-op after reset")
	}
	if !reflect.DeepEqual(store.Snapshot(), DefaultDocument()) {
		t.Fatalf("reset did not restore the default seed")
	}
}

func TestSetActiveItemDoesNotEnterHistory(t *testing.T) {
	store := newTestStore()
	store.UpdateSummary("content edit")
	id := store.Snapshot().Experience[0].ID
	store.SetActiveItem(&id)
	store.SetActiveItem(nil)

	if !store.Undo() {
		t.Fatalf("expected one history entry from the content edit")
	}
	if got := store.Snapshot().Summary; got != DefaultDocument().Summary {
		t.Fatalf("undo skipped the content edit: %q", got)
	}
	if store.Undo() {
		t.Fatalf("selection changes must not create history entries")
	}
}

func TestUndoRedoAcrossStructuralMutations(t *testing.T) {
	store := newTestStore()
	states := []Document{store.Snapshot()}

	store.AddExperience()
	states = append(states, store.Snapshot())
	store.DuplicateItem(SectionExperience, states[1].Experience[0].ID)
	states = append(states, store.Snapshot())
	store.RemoveExperience(states[2].Experience[1].ID)
	states = append(states, store.Snapshot())

	for i := len(states) - 2; i >= 0; i-- {
		if !store.Undo() {
			t.Fatalf("undo %d failed", i)
		}
		if !reflect.DeepEqual(store.Snapshot(), states[i]) {
			t.Fatalf("undo to state %d mismatched", i)
		}
	}
	for i := 1; i < len(states); i++ {
		if !store.Redo() {
			t.Fatalf("redo %d failed", i)
		}
		if !reflect.DeepEqual(store.Snapshot(), states[i]) {
			t.Fatalf("redo to state %d mismatched", i)
		}
	}
}

func TestHistorySnapshotsAreImmutable(t *testing.T) {
	store := newTestStore()
	seedRole := store.Snapshot().Experience[0].ID

	store.UpdateExperience(seedRole, "role", "CHANGED ONCE")
	store.UpdateExperience(seedRole, "role", "CHANGED TWICE")

	store.Undo()
	if got := store.Snapshot().Experience[0].Role; got != "CHANGED ONCE" {
		t.Fatalf("expected first edit restored, got %q", got)
	}
	store.Undo()
	if got := store.Snapshot().Experience[0].Role; got != "WEBDESIGNER" {
		t.Fatalf("expected seed state restored, got %q", got)
	}
}
