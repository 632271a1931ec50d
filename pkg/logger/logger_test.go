package logger

import "testing"

func TestNew_Environments(t *testing.T) {
	for _, env := range []string{"", "development", "production"} {
		l := New(Opts{Env: env})
		if l == nil || l.log == nil {
			t.Fatalf("expected logger for env %q", env)
		}
		l.Info("hello", "env", env)
	}
}

func TestWithComponent(t *testing.T) {
	l := NewNop()
	c := l.WithComponent("TwitterClient")
	if c == nil {
		t.Fatal("expected component logger")
	}
	if c == Logger(l) {
		t.Error("expected WithComponent to return a new logger")
	}
	c.Printf("fx event %d", 1)
}
