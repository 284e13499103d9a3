package finder

import (
	"testing"

	"github.com/ytget/recipe-finder/internal/model"
)

type applyRecorder struct {
	calls []model.FilterState
}

func (r *applyRecorder) record(f model.FilterState) {
	r.calls = append(r.calls, f)
}

func (r *applyRecorder) last() model.FilterState {
	return r.calls[len(r.calls)-1]
}

func TestFilterEditor_DraftIsolation(t *testing.T) {
	rec := &applyRecorder{}
	e := NewFilterEditor(model.EmptyFilters(), rec.record)

	e.SetDiet(model.DietVegan)
	e.ToggleIntolerance(model.IntoleranceDairy)
	e.SetMaxReadyTime(15)

	if len(rec.calls) != 0 {
		t.Fatalf("draft edits should not notify, got %d calls", len(rec.calls))
	}
	if !e.Applied().IsEmpty() {
		t.Errorf("applied state changed before Apply: %+v", e.Applied())
	}
	if !e.Dirty() {
		t.Error("editor should report unapplied edits")
	}

	e.Apply()

	if len(rec.calls) != 1 {
		t.Fatalf("expected 1 apply notification, got %d", len(rec.calls))
	}
	want := model.FilterState{
		Diet:         model.DietVegan,
		Intolerances: []model.Intolerance{model.IntoleranceDairy},
		MaxReadyTime: 15,
	}
	if !rec.last().Equal(want) {
		t.Errorf("expected %+v, got %+v", want, rec.last())
	}
	if e.ActiveCount() != 3 {
		t.Errorf("expected 3 active filters, got %d", e.ActiveCount())
	}
	if e.Dirty() {
		t.Error("editor should be clean after Apply")
	}
}

func TestFilterEditor_ClearAppliesInstantly(t *testing.T) {
	rec := &applyRecorder{}
	initial := model.FilterState{Diet: model.DietPaleo, MaxReadyTime: 60}
	e := NewFilterEditor(initial, rec.record)

	e.ToggleIntolerance(model.IntoleranceEgg)
	e.Clear()

	if len(rec.calls) != 1 {
		t.Fatalf("Clear should notify once, got %d", len(rec.calls))
	}
	if !rec.last().IsEmpty() || !e.Applied().IsEmpty() || !e.Draft().IsEmpty() {
		t.Error("Clear should empty both draft and applied state")
	}
}

func TestFilterEditor_RemoveBadgesIndependently(t *testing.T) {
	rec := &applyRecorder{}
	initial := model.FilterState{
		Diet:         model.DietVegan,
		Intolerances: []model.Intolerance{model.IntoleranceGluten, model.IntoleranceSoy},
		MaxReadyTime: 30,
	}
	e := NewFilterEditor(initial, rec.record)

	e.RemoveIntolerance(model.IntoleranceGluten)
	got := rec.last()
	if got.Diet != model.DietVegan || got.MaxReadyTime != 30 {
		t.Errorf("removing an intolerance touched other filters: %+v", got)
	}
	if got.HasIntolerance(model.IntoleranceGluten) || !got.HasIntolerance(model.IntoleranceSoy) {
		t.Errorf("unexpected intolerances: %v", got.Intolerances)
	}

	e.RemoveDiet()
	if rec.last().Diet != model.DietNone || rec.last().MaxReadyTime != 30 {
		t.Errorf("RemoveDiet result: %+v", rec.last())
	}

	e.RemoveMaxReadyTime()
	if rec.last().MaxReadyTime != model.NoTimeLimit || len(rec.last().Intolerances) != 1 {
		t.Errorf("RemoveMaxReadyTime result: %+v", rec.last())
	}

	if len(rec.calls) != 3 {
		t.Errorf("each removal should notify once, got %d", len(rec.calls))
	}
	if !e.Draft().Equal(e.Applied()) {
		t.Error("draft should follow instant removals")
	}
}

func TestFilterEditor_ResetDraft(t *testing.T) {
	e := NewFilterEditor(model.FilterState{Diet: model.DietKetogenic}, nil)

	e.SetDiet(model.DietVegan)
	e.ResetDraft()

	if e.Draft().Diet != model.DietKetogenic {
		t.Errorf("expected draft reset to applied diet, got %q", e.Draft().Diet)
	}
}

func TestFilterEditor_InitialNotShared(t *testing.T) {
	initial := model.FilterState{Intolerances: []model.Intolerance{model.IntoleranceWheat}}
	e := NewFilterEditor(initial, nil)

	initial.Intolerances[0] = model.IntoleranceEgg

	if !e.Applied().HasIntolerance(model.IntoleranceWheat) {
		t.Error("editor should not share the caller's slice")
	}
}

func TestFilterEditor_RemoveKeepsPendingDraft(t *testing.T) {
	rec := &applyRecorder{}
	initial := model.FilterState{
		Diet:         model.DietVegan,
		Intolerances: []model.Intolerance{model.IntoleranceSoy},
	}
	e := NewFilterEditor(initial, rec.record)

	// unapplied edits in the open panel
	e.SetMaxReadyTime(60)
	e.ToggleIntolerance(model.IntoleranceEgg)

	e.RemoveDiet()

	applied := e.Applied()
	if applied.Diet != model.DietNone || applied.MaxReadyTime != model.NoTimeLimit || applied.HasIntolerance(model.IntoleranceEgg) {
		t.Errorf("pending edits leaked into the applied state: %+v", applied)
	}

	draft := e.Draft()
	if draft.Diet != model.DietNone {
		t.Errorf("removed diet should leave the draft too, got %q", draft.Diet)
	}
	if draft.MaxReadyTime != 60 || !draft.HasIntolerance(model.IntoleranceEgg) || !draft.HasIntolerance(model.IntoleranceSoy) {
		t.Errorf("pending edits lost: %+v", draft)
	}

	e.RemoveIntolerance(model.IntoleranceSoy)
	draft = e.Draft()
	if draft.HasIntolerance(model.IntoleranceSoy) || !draft.HasIntolerance(model.IntoleranceEgg) {
		t.Errorf("unexpected draft intolerances: %v", draft.Intolerances)
	}
	if !e.Dirty() {
		t.Error("draft should still hold unapplied edits")
	}
	if len(rec.calls) != 2 {
		t.Errorf("expected 2 notifications, got %d", len(rec.calls))
	}
}
