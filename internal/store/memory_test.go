package store

import (
	"context"
	"errors"
	"testing"

	"github.com/jvaldivia/almanac/internal/event"
)

func draft(title, date, start, end string) event.Draft {
	return event.Draft{Date: date, Title: title, StartTime: start, EndTime: end}
}

func TestCreate(t *testing.T) {
	m := NewMemory()
	ctx := context.Background()

	ev, err := m.Create(ctx, draft("Standup", "2024-06-03", "09:00", "09:30"))
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if ev.ID == "" {
		t.Error("expected a generated ID")
	}
	if ev.CreatedAt.IsZero() {
		t.Error("expected CreatedAt to be set")
	}
	if m.Len() != 1 {
		t.Errorf("Len() = %d, want 1", m.Len())
	}
}

func TestCreate_UniqueIDs(t *testing.T) {
	m := NewMemory()
	ctx := context.Background()

	seen := make(map[string]bool)
	for i := 0; i < 50; i++ {
		ev, err := m.Create(ctx, draft("Repeat", "2024-06-03", "09:00", "09:30"))
		if err != nil {
			t.Fatalf("Create failed: %v", err)
		}
		if seen[ev.ID] {
			t.Fatalf("duplicate ID %q", ev.ID)
		}
		seen[ev.ID] = true
	}
}

func TestCreate_InvalidDraftLeavesStoreUntouched(t *testing.T) {
	m := NewMemory()
	ctx := context.Background()

	_, err := m.Create(ctx, draft("", "2024-06-03", "10:00", "09:00"))
	if err == nil {
		t.Fatal("expected validation error")
	}
	var verrs event.ValidationErrors
	if !errors.As(err, &verrs) {
		t.Fatalf("expected ValidationErrors, got %T", err)
	}
	if len(verrs) != 2 {
		t.Errorf("expected 2 field errors, got %d: %v", len(verrs), verrs)
	}
	if m.Len() != 0 {
		t.Errorf("Len() = %d after rejected create, want 0", m.Len())
	}
}

func TestCreate_RequiresDate(t *testing.T) {
	m := NewMemory()

	_, err := m.Create(context.Background(), draft("No day", "", "09:00", "10:00"))
	var verrs event.ValidationErrors
	if !errors.As(err, &verrs) {
		t.Fatalf("expected ValidationErrors, got %v", err)
	}
	if _, ok := verrs.ByField("date"); !ok {
		t.Errorf("expected a date error, got %v", verrs)
	}
}

func TestQuery_InsertionOrder(t *testing.T) {
	m := NewMemory()
	ctx := context.Background()

	// Created out of chronological order on purpose
	for _, d := range []event.Draft{
		draft("Afternoon", "2024-06-03", "14:00", "15:00"),
		draft("Morning", "2024-06-03", "09:00", "10:00"),
		draft("Noon", "2024-06-03", "12:00", "12:30"),
		draft("Other day", "2024-06-04", "09:00", "10:00"),
	} {
		if _, err := m.Create(ctx, d); err != nil {
			t.Fatalf("Create failed: %v", err)
		}
	}

	events, err := m.Query(ctx, "2024-06-03")
	if err != nil {
		t.Fatalf("Query failed: %v", err)
	}
	want := []string{"Afternoon", "Morning", "Noon"}
	if len(events) != len(want) {
		t.Fatalf("got %d events, want %d", len(events), len(want))
	}
	for i, title := range want {
		if events[i].Title != title {
			t.Errorf("position %d: got %q, want %q", i, events[i].Title, title)
		}
	}
}

func TestQuery_EmptyDay(t *testing.T) {
	m := NewMemory()

	events, err := m.Query(context.Background(), "2024-06-03")
	if err != nil {
		t.Fatalf("Query failed: %v", err)
	}
	if len(events) != 0 {
		t.Errorf("got %d events on empty day, want 0", len(events))
	}
}

func TestQuery_BadDate(t *testing.T) {
	m := NewMemory()

	_, err := m.Query(context.Background(), "June 3rd")
	if err == nil {
		t.Fatal("expected error for malformed date")
	}
}

func TestUpdate_PreservesPositionAndIdentity(t *testing.T) {
	m := NewMemory()
	ctx := context.Background()

	first, _ := m.Create(ctx, draft("First", "2024-06-03", "09:00", "10:00"))
	m.Create(ctx, draft("Second", "2024-06-03", "10:00", "11:00"))

	updated, err := m.Update(ctx, first.ID, draft("First, renamed", "", "09:30", "10:30"))
	if err != nil {
		t.Fatalf("Update failed: %v", err)
	}
	if updated.ID != first.ID {
		t.Errorf("ID changed: got %q, want %q", updated.ID, first.ID)
	}
	if !updated.CreatedAt.Equal(first.CreatedAt) {
		t.Error("CreatedAt changed on update")
	}
	if updated.Date != "2024-06-03" {
		t.Errorf("Date: got %q, want carried-over %q", updated.Date, "2024-06-03")
	}

	events, _ := m.Query(ctx, "2024-06-03")
	if events[0].Title != "First, renamed" {
		t.Errorf("position 0: got %q, want the updated event in its old slot", events[0].Title)
	}
}

func TestUpdate_NotFound(t *testing.T) {
	m := NewMemory()

	_, err := m.Update(context.Background(), "missing", draft("X", "2024-06-03", "09:00", "10:00"))
	if !errors.Is(err, event.ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestUpdate_InvalidDraftKeepsOriginal(t *testing.T) {
	m := NewMemory()
	ctx := context.Background()

	ev, _ := m.Create(ctx, draft("Original", "2024-06-03", "09:00", "10:00"))

	_, err := m.Update(ctx, ev.ID, draft("", "2024-06-03", "10:00", "09:00"))
	if err == nil {
		t.Fatal("expected validation error")
	}

	events, _ := m.Query(ctx, "2024-06-03")
	if len(events) != 1 || events[0].Title != "Original" {
		t.Errorf("original event not preserved after failed update: %v", events)
	}
}

func TestDelete(t *testing.T) {
	m := NewMemory()
	ctx := context.Background()

	ev, _ := m.Create(ctx, draft("Doomed", "2024-06-03", "09:00", "10:00"))
	keeper, _ := m.Create(ctx, draft("Keeper", "2024-06-03", "10:00", "11:00"))

	if err := m.Delete(ctx, ev.ID); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}
	if m.Len() != 1 {
		t.Errorf("Len() = %d, want 1", m.Len())
	}
	events, _ := m.Query(ctx, "2024-06-03")
	if len(events) != 1 || events[0].ID != keeper.ID {
		t.Errorf("wrong event survived: %v", events)
	}
}

func TestDelete_NotFoundLeavesCountUnchanged(t *testing.T) {
	m := NewMemory()
	ctx := context.Background()

	m.Create(ctx, draft("Only", "2024-06-03", "09:00", "10:00"))

	err := m.Delete(ctx, "missing")
	if !errors.Is(err, event.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	if m.Len() != 1 {
		t.Errorf("Len() = %d after failed delete, want 1", m.Len())
	}
}

func TestQueryRange(t *testing.T) {
	m := NewMemory()
	ctx := context.Background()

	for _, d := range []event.Draft{
		draft("Late in month", "2024-06-20", "09:00", "10:00"),
		draft("Early A", "2024-06-03", "09:00", "10:00"),
		draft("Early B", "2024-06-03", "10:00", "11:00"),
		draft("Mid", "2024-06-10", "09:00", "10:00"),
		draft("Next month", "2024-07-01", "09:00", "10:00"),
	} {
		if _, err := m.Create(ctx, d); err != nil {
			t.Fatalf("Create failed: %v", err)
		}
	}

	events, err := m.QueryRange(ctx, "2024-06-01", "2024-06-30")
	if err != nil {
		t.Fatalf("QueryRange failed: %v", err)
	}

	want := []string{"Early A", "Early B", "Mid", "Late in month"}
	if len(events) != len(want) {
		t.Fatalf("got %d events, want %d", len(events), len(want))
	}
	for i, title := range want {
		if events[i].Title != title {
			t.Errorf("position %d: got %q, want %q", i, events[i].Title, title)
		}
	}
}
