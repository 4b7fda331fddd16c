package registry

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/vovakirdan/pixel-snake/internal/device"
)

type stubBackend struct {
	panel *device.Panel
	queue *device.Queue
}

func (b *stubBackend) Display() device.Display { return b.panel }
func (b *stubBackend) Input() device.Input     { return b.queue }

func (b *stubBackend) Run(ctx context.Context, game func(context.Context) error) error {
	return game(ctx)
}

func stubFactory(opts Options) (Backend, error) {
	return &stubBackend{
		panel: device.NewPanel(opts.Width, opts.Height),
		queue: device.NewQueue(0),
	}, nil
}

var errNoTerminal = errors.New("no terminal")

func init() {
	Register("zz-stub", "Stub", stubFactory)
	Register("aa-broken", "Broken", func(Options) (Backend, error) {
		return nil, errNoTerminal
	})
}

func TestCreate(t *testing.T) {
	b, err := Create("zz-stub", Options{Width: 16, Height: 8})
	if err != nil {
		t.Fatalf("Create() failed: %v", err)
	}
	if w, h := b.Display().Size(); w != 16 || h != 8 {
		t.Errorf("panel size = %dx%d, expected 16x8", w, h)
	}

	ran := false
	err = b.Run(context.Background(), func(context.Context) error {
		ran = true
		return nil
	})
	if err != nil || !ran {
		t.Errorf("Run() = %v, ran = %v", err, ran)
	}
}

func TestCreateUnknown(t *testing.T) {
	_, err := Create("nope", Options{})
	if err == nil || !strings.Contains(err.Error(), "unknown backend") {
		t.Errorf("expected unknown backend error, got %v", err)
	}
}

func TestCreateWrapsFactoryError(t *testing.T) {
	_, err := Create("aa-broken", Options{})
	if !errors.Is(err, errNoTerminal) {
		t.Errorf("expected wrapped factory error, got %v", err)
	}
}

func TestListSorted(t *testing.T) {
	list := List()
	if len(list) < 2 {
		t.Fatalf("expected at least 2 backends, got %d", len(list))
	}
	for i := 1; i < len(list); i++ {
		if list[i-1].Name > list[i].Name {
			t.Errorf("list not sorted: %q before %q", list[i-1].Name, list[i].Name)
		}
	}
	if !Exists("zz-stub") || Exists("nope") {
		t.Error("Exists() disagrees with registrations")
	}
}

func TestRegisterDuplicatePanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("duplicate registration should panic")
		}
	}()
	Register("zz-stub", "Again", stubFactory)
}
