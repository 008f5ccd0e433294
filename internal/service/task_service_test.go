package service

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"todolist/internal/models"
)

// mockTaskRepo backs TaskService tests with an owner-scoped in-memory map.
type mockTaskRepo struct {
	byID map[string]models.Task

	createCalls []models.Task
	updateCalls []models.Task
	deleteCalls []struct{ id, owner string }

	failWith error
}

func newMockTaskRepo(seed ...models.Task) *mockTaskRepo {
	m := &mockTaskRepo{byID: make(map[string]models.Task)}
	for _, t := range seed {
		m.byID[t.ID] = t
	}
	return m
}

func (m *mockTaskRepo) Create(_ context.Context, t models.Task) error {
	if m.failWith != nil {
		return m.failWith
	}
	m.createCalls = append(m.createCalls, t)
	m.byID[t.ID] = t
	return nil
}

func (m *mockTaskRepo) ListByOwner(_ context.Context, ownerID string) ([]models.Task, error) {
	if m.failWith != nil {
		return nil, m.failWith
	}
	out := make([]models.Task, 0)
	for _, t := range m.byID {
		if t.UserID == ownerID {
			out = append(out, t)
		}
	}
	return out, nil
}

func (m *mockTaskRepo) GetForOwner(_ context.Context, id, ownerID string) (*models.Task, error) {
	if m.failWith != nil {
		return nil, m.failWith
	}
	t, ok := m.byID[id]
	if !ok || t.UserID != ownerID {
		return nil, nil
	}
	return &t, nil
}

func (m *mockTaskRepo) Update(_ context.Context, t models.Task) error {
	m.updateCalls = append(m.updateCalls, t)
	m.byID[t.ID] = t
	return nil
}

func (m *mockTaskRepo) Delete(_ context.Context, id, ownerID string) error {
	m.deleteCalls = append(m.deleteCalls, struct{ id, owner string }{id, ownerID})
	delete(m.byID, id)
	return nil
}

func TestTaskService_Create_Success(t *testing.T) {
	repo := newMockTaskRepo()
	svc := NewTaskService(repo)

	task, err := svc.Create(context.Background(), "u-1", "  Buy milk  ")
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if task.Text != "Buy milk" {
		t.Errorf("expected trimmed text, got %q", task.Text)
	}
	if task.Completed {
		t.Errorf("new task must start incomplete")
	}
	if task.UserID != "u-1" {
		t.Errorf("expected owner u-1, got %q", task.UserID)
	}
	if task.ID == "" {
		t.Errorf("expected generated id")
	}
	if len(repo.createCalls) != 1 {
		t.Fatalf("expected 1 Create call, got %d", len(repo.createCalls))
	}
}

func TestTaskService_Create_InvalidText(t *testing.T) {
	tests := []struct {
		name string
		text string
	}{
		{"empty", ""},
		{"whitespace only", "   "},
		{"tabs and newlines", "\t\n "},
		{"too long", strings.Repeat("x", 256)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := newMockTaskRepo()
			svc := NewTaskService(repo)

			_, err := svc.Create(context.Background(), "u-1", tt.text)

			var ve *ValidationError
			if !errors.As(err, &ve) {
				t.Fatalf("expected ValidationError, got: %v", err)
			}
			if len(repo.createCalls) != 0 {
				t.Fatalf("nothing may be persisted for invalid text")
			}
		})
	}
}

func TestTaskService_Update_CompletedOnly(t *testing.T) {
	seed := models.Task{ID: "t-1", Text: "Buy milk", UserID: "u-1", CreatedAt: time.Now().UTC()}
	repo := newMockTaskRepo(seed)
	svc := NewTaskService(repo)

	completed := true
	task, err := svc.Update(context.Background(), "u-1", "t-1", TaskUpdate{Completed: &completed})
	if err != nil {
		t.Fatalf("Update failed: %v", err)
	}
	if !task.Completed {
		t.Errorf("expected completed=true")
	}
	if task.Text != "Buy milk" {
		t.Errorf("text must stay unchanged, got %q", task.Text)
	}
}

func TestTaskService_Update_TextTrimmed(t *testing.T) {
	seed := models.Task{ID: "t-1", Text: "old", UserID: "u-1"}
	repo := newMockTaskRepo(seed)
	svc := NewTaskService(repo)

	text := "  new text  "
	task, err := svc.Update(context.Background(), "u-1", "t-1", TaskUpdate{Text: &text})
	if err != nil {
		t.Fatalf("Update failed: %v", err)
	}
	if task.Text != "new text" {
		t.Errorf("expected trimmed text, got %q", task.Text)
	}
}

func TestTaskService_Update_BlankTextRejectedBeforeMutation(t *testing.T) {
	seed := models.Task{ID: "t-1", Text: "keep me", UserID: "u-1"}
	repo := newMockTaskRepo(seed)
	svc := NewTaskService(repo)

	blank := "   "
	completed := true
	_, err := svc.Update(context.Background(), "u-1", "t-1", TaskUpdate{Text: &blank, Completed: &completed})

	var ve *ValidationError
	if !errors.As(err, &ve) {
		t.Fatalf("expected ValidationError, got: %v", err)
	}
	if len(repo.updateCalls) != 0 {
		t.Fatalf("no write may happen for invalid input")
	}
	if repo.byID["t-1"].Text != "keep me" || repo.byID["t-1"].Completed {
		t.Fatalf("stored task was mutated: %+v", repo.byID["t-1"])
	}
}

func TestTaskService_Update_ForeignTaskIsNotFound(t *testing.T) {
	seed := models.Task{ID: "t-1", Text: "bob's task", UserID: "u-bob"}
	repo := newMockTaskRepo(seed)
	svc := NewTaskService(repo)

	text := "hijacked"
	_, err := svc.Update(context.Background(), "u-alice", "t-1", TaskUpdate{Text: &text})
	if !errors.Is(err, ErrTaskNotFound) {
		t.Fatalf("expected ErrTaskNotFound, got: %v", err)
	}
	if repo.byID["t-1"].Text != "bob's task" {
		t.Fatalf("foreign task was mutated: %+v", repo.byID["t-1"])
	}
}

func TestTaskService_Update_UnknownID(t *testing.T) {
	svc := NewTaskService(newMockTaskRepo())

	completed := true
	_, err := svc.Update(context.Background(), "u-1", "missing", TaskUpdate{Completed: &completed})
	if !errors.Is(err, ErrTaskNotFound) {
		t.Fatalf("expected ErrTaskNotFound, got: %v", err)
	}
}

func TestTaskService_Delete(t *testing.T) {
	seedA := models.Task{ID: "t-a", UserID: "u-alice", Text: "a"}
	seedB := models.Task{ID: "t-b", UserID: "u-bob", Text: "b"}
	repo := newMockTaskRepo(seedA, seedB)
	svc := NewTaskService(repo)

	// Foreign task: not found, nothing deleted.
	if err := svc.Delete(context.Background(), "u-alice", "t-b"); !errors.Is(err, ErrTaskNotFound) {
		t.Fatalf("expected ErrTaskNotFound, got: %v", err)
	}
	if len(repo.deleteCalls) != 0 {
		t.Fatalf("foreign task must not be deleted")
	}

	// Own task: removed.
	if err := svc.Delete(context.Background(), "u-alice", "t-a"); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}
	if len(repo.deleteCalls) != 1 {
		t.Fatalf("expected 1 delete call, got %d", len(repo.deleteCalls))
	}
	if call := repo.deleteCalls[0]; call.id != "t-a" || call.owner != "u-alice" {
		t.Fatalf("unexpected delete call: %+v", call)
	}
}

func TestTaskService_List_PropagatesRepoError(t *testing.T) {
	repo := newMockTaskRepo()
	repo.failWith = errors.New("db down")
	svc := NewTaskService(repo)

	if _, err := svc.List(context.Background(), "u-1"); err == nil {
		t.Fatalf("expected repo error, got nil")
	}
}
