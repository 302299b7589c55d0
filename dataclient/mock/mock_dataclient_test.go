/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package mock

import (
	"context"
	"testing"

	"github.com/suparena/itemstore/errors"
	"github.com/suparena/itemstore/models"
)

type entity struct {
	ID   string
	Name string
}

func TestMockGet(t *testing.T) {
	m := New[entity]()
	m.Seed("", "e1", entity{ID: "e1", Name: "first"})

	t.Run("SeededItem", func(t *testing.T) {
		env, err := m.Get(context.Background(), "e1", "")
		if err != nil {
			t.Fatalf("Get failed: %v", err)
		}
		if env.Payload.Name != "first" {
			t.Fatalf("unexpected payload: %+v", env.Payload)
		}
		if env.RequestID == "" {
			t.Fatal("expected envelope metadata")
		}
	})

	t.Run("MissingItem", func(t *testing.T) {
		_, err := m.Get(context.Background(), "ghost", "")
		if !errors.IsNotFound(err) {
			t.Fatalf("expected not-found family, got %v", err)
		}
	})

	t.Run("ScopesAreDisjoint", func(t *testing.T) {
		if _, err := m.Get(context.Background(), "e1", "tenant-a"); !errors.IsNotFound(err) {
			t.Fatalf("expected not found in foreign scope, got %v", err)
		}
	})
}

func TestMockListRecordsQuery(t *testing.T) {
	m := New[entity]()
	m.Seed("s", "b", entity{ID: "b"})
	m.Seed("s", "a", entity{ID: "a"})

	q := models.ListQuery{Scope: "s", Filter: models.Filter{"Name": "x"}}
	env, err := m.List(context.Background(), q)
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	// Deterministic id order.
	if len(env.Payload.Items) != 2 || env.Payload.Items[0].ID != "a" {
		t.Fatalf("unexpected page: %+v", env.Payload)
	}
	if m.LastListQuery == nil || m.LastListQuery.Filter["Name"] != "x" {
		t.Fatalf("query not recorded: %+v", m.LastListQuery)
	}
}

func TestMockUpdateAndDelete(t *testing.T) {
	m := New[entity]()
	m.Seed("", "e1", entity{ID: "e1", Name: "old"})

	if _, err := m.Update(context.Background(), "e1", entity{ID: "e1", Name: "new"}, ""); err != nil {
		t.Fatalf("Update failed: %v", err)
	}
	if got := m.Items("")["e1"].Name; got != "new" {
		t.Fatalf("expected update applied, got %q", got)
	}

	if _, err := m.Update(context.Background(), "ghost", entity{}, ""); !errors.IsNotFound(err) {
		t.Fatalf("expected not found updating missing item, got %v", err)
	}

	if _, err := m.Delete(context.Background(), "e1", ""); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}
	if len(m.Items("")) != 0 {
		t.Fatal("expected item removed")
	}
	if _, err := m.Delete(context.Background(), "e1", ""); !errors.IsNotFound(err) {
		t.Fatalf("expected not found deleting twice, got %v", err)
	}
}

func TestMockErrorInjection(t *testing.T) {
	boom := errors.NewRequestError("any", nil)
	m := New[entity]().
		WithCreateError(boom).
		WithCountError(boom)

	if _, err := m.Create(context.Background(), entity{ID: "x"}, ""); err != boom {
		t.Fatalf("expected injected error, got %v", err)
	}
	if _, err := m.Count(context.Background(), models.CountQuery{}); err != boom {
		t.Fatalf("expected injected error, got %v", err)
	}
}

func TestMockCount(t *testing.T) {
	m := New[entity]()
	m.Seed("s", "a", entity{ID: "a"})
	m.Seed("s", "b", entity{ID: "b"})
	m.Seed("other", "c", entity{ID: "c"})

	env, err := m.Count(context.Background(), models.CountQuery{Scope: "s"})
	if err != nil {
		t.Fatalf("Count failed: %v", err)
	}
	if env.Payload != 2 {
		t.Fatalf("expected 2, got %d", env.Payload)
	}
}
