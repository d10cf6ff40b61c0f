// Package editor models the curriculum editing surface: one tab per
// hierarchy level, an ordered sibling list per tab, keystroke-buffered
// label edits committed on blur, and guarded deletion. The store it
// commits through is the CRUD layer; the package itself holds only UI
// state.
package editor

import (
	"errors"
	"fmt"
)

// Level identifies a curriculum tab.
type Level string

const (
	LevelNiveau   Level = "niveau"
	LevelMatiere  Level = "matiere"
	LevelChapitre Level = "chapitre"
)

var (
	// ErrLastSibling: the final sibling of a level cannot be deleted.
	ErrLastSibling = errors.New("le dernier élément ne peut pas être supprimé")
	// ErrConfirmationRequired: destructive actions need an explicit
	// confirmation before the store is touched.
	ErrConfirmationRequired = errors.New("la suppression doit être confirmée")
)

// Store is the persistence boundary the editor commits through.
type Store interface {
	UpdateLabel(level Level, id uint, label string) error
	Delete(level Level, id uint) error
}

// Sibling is one entry of a tab's ordered list.
type Sibling struct {
	ID    uint
	Label string
}

type tab struct {
	siblings []Sibling
	selected uint
	buffers  map[uint]string
	editing  map[uint]bool
	// lastSaved tracks the label last confirmed by the store, so a blur
	// that lands on the same value issues no call.
	lastSaved map[uint]string
}

func newTab() *tab {
	return &tab{
		buffers:   make(map[uint]string),
		editing:   make(map[uint]bool),
		lastSaved: make(map[uint]string),
	}
}

func (t *tab) find(id uint) int {
	for i := range t.siblings {
		if t.siblings[i].ID == id {
			return i
		}
	}
	return -1
}

// Editor holds the per-level tab state.
type Editor struct {
	store Store
	tabs  map[Level]*tab
}

func New(store Store) *Editor {
	return &Editor{
		store: store,
		tabs:  make(map[Level]*tab),
	}
}

func (e *Editor) tab(level Level) *tab {
	t, ok := e.tabs[level]
	if !ok {
		t = newTab()
		e.tabs[level] = t
	}
	return t
}

// Load replaces a tab's sibling list, selects the first entry and seeds
// the last-saved table with the loaded labels.
func (e *Editor) Load(level Level, siblings []Sibling) {
	t := newTab()
	t.siblings = append(t.siblings, siblings...)
	if len(t.siblings) > 0 {
		t.selected = t.siblings[0].ID
	}
	for _, s := range t.siblings {
		t.lastSaved[s.ID] = s.Label
	}
	e.tabs[level] = t
}

// Select moves the tab's selection.
func (e *Editor) Select(level Level, id uint) error {
	t := e.tab(level)
	if t.find(id) < 0 {
		return fmt.Errorf("élément %d inconnu", id)
	}
	t.selected = id
	return nil
}

// Selected returns the tab's current selection, 0 when the tab is empty.
func (e *Editor) Selected(level Level) uint {
	return e.tab(level).selected
}

// Siblings returns the tab's ordered entries.
func (e *Editor) Siblings(level Level) []Sibling {
	t := e.tab(level)
	out := make([]Sibling, len(t.siblings))
	copy(out, t.siblings)
	return out
}

// Input buffers a keystroke. Nothing reaches the store until blur.
func (e *Editor) Input(level Level, id uint, text string) {
	t := e.tab(level)
	t.editing[id] = true
	t.buffers[id] = text
}

// Editing reports whether a label has uncommitted input.
func (e *Editor) Editing(level Level, id uint) bool {
	return e.tab(level).editing[id]
}

// Blur commits the buffered label. A buffer equal to the last confirmed
// save is dropped without a store call.
func (e *Editor) Blur(level Level, id uint) error {
	t := e.tab(level)
	defer func() {
		delete(t.editing, id)
		delete(t.buffers, id)
	}()

	label, ok := t.buffers[id]
	if !ok {
		return nil
	}
	if saved, ok := t.lastSaved[id]; ok && saved == label {
		return nil
	}

	if err := e.store.UpdateLabel(level, id, label); err != nil {
		return err
	}
	t.lastSaved[id] = label
	if i := t.find(id); i >= 0 {
		t.siblings[i].Label = label
	}
	return nil
}

// Delete removes a sibling through the store. The last sibling of a tab
// is never deleted, and the call refuses to act before confirmation, so
// no network call is issued for either refusal. After a successful
// delete the first remaining sibling is selected.
func (e *Editor) Delete(level Level, id uint, confirmed bool) error {
	t := e.tab(level)
	i := t.find(id)
	if i < 0 {
		return fmt.Errorf("élément %d inconnu", id)
	}
	if len(t.siblings) == 1 {
		return ErrLastSibling
	}
	if !confirmed {
		return ErrConfirmationRequired
	}

	if err := e.store.Delete(level, id); err != nil {
		return err
	}

	t.siblings = append(t.siblings[:i], t.siblings[i+1:]...)
	delete(t.buffers, id)
	delete(t.editing, id)
	delete(t.lastSaved, id)
	if t.selected == id {
		t.selected = t.siblings[0].ID
	}
	return nil
}
