package player

import (
	"errors"
	"testing"
)

func TestMustRegister_PanicsOnDuplicate(t *testing.T) {
	r := NewRegistry()
	f := func(opts ...Option) (Player, error) { return NewRandom(opts...), nil }
	r.mustRegister(KindRandom, f)

	defer func() {
		rec := recover()
		err, ok := rec.(error)
		if !ok || !errors.Is(err, ErrKindExists) {
			t.Errorf("got panic %v, want ErrKindExists", rec)
		}
	}()
	r.mustRegister(KindRandom, f)
}

func TestMustRegister_PanicsOnEmptyKind(t *testing.T) {
	defer func() {
		if rec := recover(); rec != ErrEmptyKind {
			t.Errorf("got panic %v, want ErrEmptyKind", rec)
		}
	}()
	NewRegistry().mustRegister("", func(opts ...Option) (Player, error) { return nil, nil })
}
