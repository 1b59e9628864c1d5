package resume

import (
	"strings"
	"sync"

	"github.com/google/uuid"
)

// Store is the sole writer of the résumé document. Every content mutation
// runs through apply, which snapshots the pre-mutation state into history,
// swaps in the transformed document atomically, and notifies subscribers.
// Operations given an unknown id or field are silent no-ops: ids can go
// stale between a client event firing and the state changing underneath it.
type Store struct {
	mu      sync.RWMutex
	current Document
	history *history
	subs    []func(Document)
}

// NewStore builds a store around the given initial document. historyLimit
// bounds the undo stack; values <= 0 fall back to DefaultHistoryLimit.
func NewStore(initial Document, historyLimit int) *Store {
	return &Store{
		current: initial.Clone(),
		history: newHistory(historyLimit),
	}
}

// Snapshot returns a deep copy of the current document. Readers never
// observe a partially applied mutation.
func (s *Store) Snapshot() Document {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.current.Clone()
}

// Subscribe registers fn to run after every committed change, in commit
// order. Subscribers run synchronously and must not call back into the
// store.
func (s *Store) Subscribe(fn func(Document)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.subs = append(s.subs, fn)
}

// apply runs one content mutation. transform receives a private clone and
// may mutate it freely; the untouched pre-state goes onto the undo stack.
func (s *Store) apply(transform func(doc *Document)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	prev := s.current
	next := s.current.Clone()
	transform(&next)
	s.history.record(prev)
	s.current = next
	s.notifyLocked()
}

func (s *Store) notifyLocked() {
	if len(s.subs) == 0 {
		return
	}
	snap := s.current.Clone()
	for _, fn := range s.subs {
		fn(snap)
	}
}

// UpdatePersonalInfo replaces one header field. An empty value for
// "photoUrl" clears the photo.
func (s *Store) UpdatePersonalInfo(field, value string) {
	s.apply(func(doc *Document) {
		switch field {
		case "fullName":
			doc.PersonalInfo.FullName = value
		case "title":
			doc.PersonalInfo.Title = value
		case "phone":
			doc.PersonalInfo.Phone = value
		case "email":
			doc.PersonalInfo.Email = value
		case "website":
			doc.PersonalInfo.Website = value
		case "address":
			doc.PersonalInfo.Address = value
		case "photoUrl":
			if value == "" {
				doc.PersonalInfo.PhotoURL = nil
			} else {
				doc.PersonalInfo.PhotoURL = &value
			}
		}
	})
}

// UpdateSummary replaces the summary text.
func (s *Store) UpdateSummary(value string) {
	s.apply(func(doc *Document) {
		doc.Summary = value
	})
}

// UpdatePortfolio replaces one portfolio field.
func (s *Store) UpdatePortfolio(field, value string) {
	s.apply(func(doc *Document) {
		switch field {
		case "title":
			doc.Portfolio.Title = value
		case "description":
			doc.Portfolio.Description = value
		}
	})
}

// AddExperience prepends a placeholder entry; the list reads
// most-recent-first, so new roles go on top.
func (s *Store) AddExperience() {
	s.apply(func(doc *Document) {
		entry := Experience{
			ID:          uuid.NewString(),
			Role:        "NEW ROLE",
			Company:     "Company Name",
			Period:      "YEAR - YEAR",
			Description: "Job description goes here...",
		}
		doc.Experience = append([]Experience{entry}, doc.Experience...)
	})
}

// RemoveExperience deletes the entry with the given id and clears the
// active item if it pointed at the removed entry.
func (s *Store) RemoveExperience(id string) {
	s.apply(func(doc *Document) {
		out := doc.Experience[:0]
		for _, exp := range doc.Experience {
			if exp.ID != id {
				out = append(out, exp)
			}
		}
		doc.Experience = out
		clearActiveIfMatches(doc, id)
	})
}

// UpdateExperience replaces one field of the entry with the given id.
func (s *Store) UpdateExperience(id, field, value string) {
	s.apply(func(doc *Document) {
		for i := range doc.Experience {
			if doc.Experience[i].ID != id {
				continue
			}
			switch field {
			case "role":
				doc.Experience[i].Role = value
			case "company":
				doc.Experience[i].Company = value
			case "period":
				doc.Experience[i].Period = value
			case "description":
				doc.Experience[i].Description = value
			}
			return
		}
	})
}

// AddEducation appends a placeholder entry.
func (s *Store) AddEducation() {
	s.apply(func(doc *Document) {
		doc.Education = append(doc.Education, Education{
			ID:          uuid.NewString(),
			Degree:      "DEGREE NAME",
			Institution: "Institution Name",
			Year:        "YEAR - YEAR",
		})
	})
}

// RemoveEducation deletes the entry with the given id and clears the
// active item if it pointed at the removed entry.
func (s *Store) RemoveEducation(id string) {
	s.apply(func(doc *Document) {
		out := doc.Education[:0]
		for _, edu := range doc.Education {
			if edu.ID != id {
				out = append(out, edu)
			}
		}
		doc.Education = out
		clearActiveIfMatches(doc, id)
	})
}

// UpdateEducation replaces one field of the entry with the given id.
func (s *Store) UpdateEducation(id, field, value string) {
	s.apply(func(doc *Document) {
		for i := range doc.Education {
			if doc.Education[i].ID != id {
				continue
			}
			switch field {
			case "degree":
				doc.Education[i].Degree = value
			case "institution":
				doc.Education[i].Institution = value
			case "year":
				doc.Education[i].Year = value
			}
			return
		}
	})
}

// AddSkill appends a placeholder skill at half proficiency.
func (s *Store) AddSkill() {
	s.apply(func(doc *Document) {
		doc.Skills = append(doc.Skills, Skill{
			ID:    uuid.NewString(),
			Name:  "New Skill",
			Level: 50,
		})
	})
}

// RemoveSkill deletes the skill with the given id and clears the active
// item if it pointed at the removed skill.
func (s *Store) RemoveSkill(id string) {
	s.apply(func(doc *Document) {
		out := doc.Skills[:0]
		for _, skill := range doc.Skills {
			if skill.ID != id {
				out = append(out, skill)
			}
		}
		doc.Skills = out
		clearActiveIfMatches(doc, id)
	})
}

// UpdateSkillName renames the skill with the given id.
func (s *Store) UpdateSkillName(id, name string) {
	s.apply(func(doc *Document) {
		for i := range doc.Skills {
			if doc.Skills[i].ID == id {
				doc.Skills[i].Name = name
				return
			}
		}
	})
}

// UpdateSkillLevel sets the proficiency of the skill with the given id.
// The value is stored as given; the HTTP layer enforces the 0-100 range.
func (s *Store) UpdateSkillLevel(id string, level int) {
	s.apply(func(doc *Document) {
		for i := range doc.Skills {
			if doc.Skills[i].ID == id {
				doc.Skills[i].Level = level
				return
			}
		}
	})
}

// UpdateInterests replaces the interests list from one comma-delimited
// blob. Segments are trimmed; empty segments survive the split.
func (s *Store) UpdateInterests(raw string) {
	s.apply(func(doc *Document) {
		parts := strings.Split(raw, ",")
		interests := make([]string, len(parts))
		for i, p := range parts {
			interests[i] = strings.TrimSpace(p)
		}
		doc.Interests = interests
	})
}

// ReorderExperience moves the entry at from to position to. Out-of-range
// indices are clamped; the entry set is never changed.
func (s *Store) ReorderExperience(from, to int) {
	s.apply(func(doc *Document) {
		doc.Experience = moveElement(doc.Experience, from, to)
	})
}

// ReorderEducation moves the entry at from to position to.
func (s *Store) ReorderEducation(from, to int) {
	s.apply(func(doc *Document) {
		doc.Education = moveElement(doc.Education, from, to)
	})
}

// ReorderSkills moves the skill at from to position to.
func (s *Store) ReorderSkills(from, to int) {
	s.apply(func(doc *Document) {
		doc.Skills = moveElement(doc.Skills, from, to)
	})
}

// ReorderSections replaces the section order wholesale. The store trusts
// the caller to supply a permutation of the known sections; the HTTP layer
// rejects anything else before it gets here.
func (s *Store) ReorderSections(newOrder []string) {
	order := append([]string(nil), newOrder...)
	s.apply(func(doc *Document) {
		doc.SectionOrder = order
	})
}

// SetActiveItem changes which item is focused for contextual actions.
// Selection is ephemeral UI state, not content, so it bypasses history;
// the change is still persisted and announced to subscribers.
func (s *Store) SetActiveItem(id *string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	next := s.current.Clone()
	next.ActiveItemID = cloneStringPtr(id)
	s.current = next
	s.notifyLocked()
}

// DuplicateItem copies the experience or education entry with the given id
// and inserts the copy, under a fresh id, immediately after the original.
func (s *Store) DuplicateItem(kind, id string) {
	s.apply(func(doc *Document) {
		switch kind {
		case SectionExperience:
			for i, exp := range doc.Experience {
				if exp.ID == id {
					dup := exp
					dup.ID = uuid.NewString()
					doc.Experience = insertAt(doc.Experience, i+1, dup)
					return
				}
			}
		case SectionEducation:
			for i, edu := range doc.Education {
				if edu.ID == id {
					dup := edu
					dup.ID = uuid.NewString()
					doc.Education = insertAt(doc.Education, i+1, dup)
					return
				}
			}
		}
	})
}

// UpdateLayoutGap sets the vertical gap between sections, in pixels.
func (s *Store) UpdateLayoutGap(px int) {
	s.apply(func(doc *Document) {
		doc.Layout.SectionGap = px
	})
}

// UpdateLayoutSkillsMode switches the skills section between list and grid.
// Unknown modes are ignored.
func (s *Store) UpdateLayoutSkillsMode(mode string) {
	if mode != SkillsModeList && mode != SkillsModeGrid {
		return
	}
	s.apply(func(doc *Document) {
		doc.Layout.SkillsMode = mode
	})
}

// Reset restores the default seed and drops all history. Nothing edited
// before the reset is recoverable through undo.
func (s *Store) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.history.clear()
	s.current = DefaultDocument()
	s.notifyLocked()
}

// Undo restores the most recent past state. Returns false when the undo
// stack is empty.
func (s *Store) Undo() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	restored, ok := s.history.undo(s.current)
	if !ok {
		return false
	}
	s.current = restored
	s.notifyLocked()
	return true
}

// Redo reapplies the most recently undone state. Returns false when the
// redo stack is empty.
func (s *Store) Redo() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	restored, ok := s.history.redo(s.current)
	if !ok {
		return false
	}
	s.current = restored
	s.notifyLocked()
	return true
}

func clearActiveIfMatches(doc *Document, id string) {
	if doc.ActiveItemID != nil && *doc.ActiveItemID == id {
		doc.ActiveItemID = nil
	}
}

// moveElement removes the element at from and reinserts it at to, clamping
// both indices into bounds.
func moveElement[T any](items []T, from, to int) []T {
	if len(items) < 2 {
		return items
	}
	from = clampIndex(from, len(items)-1)
	to = clampIndex(to, len(items)-1)
	if from == to {
		return items
	}
	moved := items[from]
	items = append(items[:from], items[from+1:]...)
	return insertAt(items, to, moved)
}

func insertAt[T any](items []T, at int, value T) []T {
	if at < 0 {
		at = 0
	}
	if at > len(items) {
		at = len(items)
	}
	items = append(items, value)
	copy(items[at+1:], items[at:])
	items[at] = value
	return items
}

func clampIndex(i, max int) int {
	if i < 0 {
		return 0
	}
	if i > max {
		return max
	}
	return i
}
