package render

import (
	"slices"
	"strings"
	"testing"

	"github.com/gogpu/stillness"
)

// mockBackend records the calls it receives.
type mockBackend struct {
	calls  []string
	title  string
	width  int
	height int
	m      stillness.Matrix
	shapes []*stillness.Shape

	failOn int // DrawShape call that fails, 1-based; 0 never fails
}

func (b *mockBackend) SetTitle(title string) {
	b.calls = append(b.calls, "SetTitle")
	b.title = title
}

func (b *mockBackend) Begin(width, height int) error {
	b.calls = append(b.calls, "Begin")
	b.width, b.height = width, height
	return nil
}

func (b *mockBackend) SetTransform(m stillness.Matrix) {
	b.calls = append(b.calls, "SetTransform")
	b.m = m
}

func (b *mockBackend) DrawShape(s *stillness.Shape) error {
	b.calls = append(b.calls, "DrawShape")
	b.shapes = append(b.shapes, s)
	if len(b.shapes) == b.failOn {
		return errDraw
	}
	return nil
}

func (b *mockBackend) End() error {
	b.calls = append(b.calls, "End")
	return nil
}

func TestRegisterAndNewBackend(t *testing.T) {
	const name = "mock-register"
	Register(name, func() Backend { return &mockBackend{} })
	t.Cleanup(func() { Unregister(name) })

	if !IsRegistered(name) {
		t.Fatalf("IsRegistered(%q) = false after Register", name)
	}
	if !slices.Contains(Backends(), name) {
		t.Errorf("Backends() = %v, want it to contain %q", Backends(), name)
	}

	a, err := NewBackend(name)
	if err != nil {
		t.Fatalf("NewBackend(%q) error = %v", name, err)
	}
	b := MustBackend(name)
	if a == b {
		t.Error("NewBackend returned the same instance twice")
	}
	if _, ok := a.(*mockBackend); !ok {
		t.Errorf("NewBackend(%q) returned %T, want *mockBackend", name, a)
	}
}

func TestNewBackendUnknown(t *testing.T) {
	_, err := NewBackend("no-such-backend")
	if err == nil {
		t.Fatal("NewBackend(unknown) error = nil")
	}
	if !strings.Contains(err.Error(), "forgotten import") {
		t.Errorf("NewBackend(unknown) error = %q, want an import hint", err)
	}
}

func TestMustBackendPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("MustBackend(unknown) did not panic")
		}
	}()
	MustBackend("no-such-backend")
}

func TestRegisterPanics(t *testing.T) {
	const name = "mock-dup"
	Register(name, func() Backend { return &mockBackend{} })
	t.Cleanup(func() { Unregister(name) })

	tests := []struct {
		name    string
		backend string
		factory BackendFactory
	}{
		{"duplicate", name, func() Backend { return &mockBackend{} }},
		{"nil factory", "mock-nil", nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			defer func() {
				if recover() == nil {
					t.Errorf("Register(%q) did not panic", tt.backend)
				}
			}()
			Register(tt.backend, tt.factory)
		})
	}
}

func TestUnregister(t *testing.T) {
	const name = "mock-unregister"
	Register(name, func() Backend { return &mockBackend{} })
	Unregister(name)
	if IsRegistered(name) {
		t.Errorf("IsRegistered(%q) = true after Unregister", name)
	}
	Unregister(name) // unknown names are ignored
}

func TestBackendsSorted(t *testing.T) {
	for _, name := range []string{"mock-b", "mock-a", "mock-c"} {
		Register(name, func() Backend { return &mockBackend{} })
		t.Cleanup(func() { Unregister(name) })
	}
	names := Backends()
	if !slices.IsSorted(names) {
		t.Errorf("Backends() = %v, want sorted", names)
	}
}
