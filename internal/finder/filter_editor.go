package finder

import (
	"sync"

	"github.com/ytget/recipe-finder/internal/model"
)

// FilterEditor keeps a draft FilterState apart from the applied one. Draft
// edits are invisible until Apply; Clear and the Remove* methods act on the
// applied state at once. Remove* takes the item out of the draft as well and
// leaves the rest of the draft alone.
type FilterEditor struct {
	mu      sync.Mutex
	draft   model.FilterState
	applied model.FilterState
	onApply func(model.FilterState)
}

// NewFilterEditor creates an editor starting from initial. onApply receives
// every newly applied state.
func NewFilterEditor(initial model.FilterState, onApply func(model.FilterState)) *FilterEditor {
	return &FilterEditor{
		draft:   initial.Clone(),
		applied: initial.Clone(),
		onApply: onApply,
	}
}

// Draft returns the state being edited
func (e *FilterEditor) Draft() model.FilterState {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.draft.Clone()
}

// Applied returns the state in effect
func (e *FilterEditor) Applied() model.FilterState {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.applied.Clone()
}

// ActiveCount returns the number of applied constraints
func (e *FilterEditor) ActiveCount() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.applied.ActiveCount()
}

// Dirty reports whether the draft differs from the applied state
func (e *FilterEditor) Dirty() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return !e.draft.Equal(e.applied)
}

// SetDiet sets the draft diet
func (e *FilterEditor) SetDiet(d model.Diet) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.draft.Diet = d
}

// ToggleIntolerance adds or removes i from the draft
func (e *FilterEditor) ToggleIntolerance(i model.Intolerance) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.draft = e.draft.WithIntoleranceToggled(i)
}

// SetMaxReadyTime sets the draft time ceiling; model.NoTimeLimit clears it
func (e *FilterEditor) SetMaxReadyTime(minutes int) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.draft.MaxReadyTime = minutes
}

// ResetDraft discards unapplied edits
func (e *FilterEditor) ResetDraft() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.draft = e.applied.Clone()
}

// Apply makes the draft the applied state
func (e *FilterEditor) Apply() {
	e.mu.Lock()
	e.applied = e.draft.Clone()
	e.mu.Unlock()
	e.emit()
}

// Clear empties both draft and applied state
func (e *FilterEditor) Clear() {
	e.set(model.EmptyFilters())
}

// RemoveDiet drops the diet from the applied state and the draft
func (e *FilterEditor) RemoveDiet() {
	e.remove(model.FilterState.WithoutDiet)
}

// RemoveIntolerance drops one intolerance from the applied state and the draft
func (e *FilterEditor) RemoveIntolerance(i model.Intolerance) {
	e.remove(func(f model.FilterState) model.FilterState { return f.WithoutIntolerance(i) })
}

// RemoveMaxReadyTime drops the time ceiling from the applied state and the draft
func (e *FilterEditor) RemoveMaxReadyTime() {
	e.remove(model.FilterState.WithoutMaxReadyTime)
}

func (e *FilterEditor) set(f model.FilterState) {
	e.mu.Lock()
	e.applied = f.Clone()
	e.draft = f.Clone()
	e.mu.Unlock()
	e.emit()
}

// remove applies without to both states, so other unapplied edits survive
func (e *FilterEditor) remove(without func(model.FilterState) model.FilterState) {
	e.mu.Lock()
	e.applied = without(e.applied)
	e.draft = without(e.draft)
	e.mu.Unlock()
	e.emit()
}

func (e *FilterEditor) emit() {
	if e.onApply != nil {
		e.onApply(e.Applied())
	}
}
