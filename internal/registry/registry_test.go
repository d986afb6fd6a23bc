package registry

import (
	"context"
	"testing"
)

type stubBackend struct {
	id  string
	ran bool
}

func (b *stubBackend) ID() string    { return b.id }
func (b *stubBackend) Title() string { return "Stub " + b.id }
func (b *stubBackend) Run(ctx context.Context, opts Options) error {
	b.ran = true
	return ctx.Err()
}

func TestRegisterAndCreate(t *testing.T) {
	Register("stub-a", func() Backend { return &stubBackend{id: "stub-a"} })
	Register("stub-b", func() Backend { return &stubBackend{id: "stub-b"} })

	if !Exists("stub-a") || !Exists("stub-b") {
		t.Fatal("registered backends should exist")
	}
	if Exists("stub-missing") {
		t.Error("Exists() = true for an unregistered backend")
	}

	b, err := Create("stub-a")
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	if b.ID() != "stub-a" {
		t.Errorf("ID() = %q, expected stub-a", b.ID())
	}
	if err := b.Run(context.Background(), Options{}); err != nil {
		t.Errorf("Run() error = %v", err)
	}

	// Each Create returns a fresh instance.
	b2, _ := Create("stub-a")
	if b2.(*stubBackend).ran {
		t.Error("Create() returned a shared instance")
	}

	if _, err := Create("stub-missing"); err == nil {
		t.Error("Create() should fail for an unknown ID")
	}
}

func TestListSorted(t *testing.T) {
	Register("stub-z", func() Backend { return &stubBackend{id: "stub-z"} })
	Register("stub-m", func() Backend { return &stubBackend{id: "stub-m"} })

	list := List()
	for i := 1; i < len(list); i++ {
		if list[i-1].ID >= list[i].ID {
			t.Errorf("List() not sorted: %v", list)
		}
	}

	found := false
	for _, info := range list {
		if info.ID == "stub-m" {
			found = true
			if info.Title != "Stub stub-m" {
				t.Errorf("Title = %q, expected Stub stub-m", info.Title)
			}
		}
	}
	if !found {
		t.Error("List() missing stub-m")
	}
}

func TestRegisterDuplicatePanics(t *testing.T) {
	Register("stub-dup", func() Backend { return &stubBackend{id: "stub-dup"} })

	defer func() {
		if recover() == nil {
			t.Error("expected panic on duplicate registration")
		}
	}()
	Register("stub-dup", func() Backend { return &stubBackend{id: "stub-dup"} })
}
