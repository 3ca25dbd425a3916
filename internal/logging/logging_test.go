package logging

import (
	"bytes"
	"strings"
	"testing"
)

func TestConsoleLoggerWritesComponentAndMessage(t *testing.T) {
	var buf bytes.Buffer
	l := NewConsoleLogger(&buf)

	l.Infof("render", "painted %d rows", 512)
	l.Errorf("export", "write failed: %s", "denied")

	out := buf.String()
	for _, want := range []string{"INF", "ERR", "component=render", "component=export", "painted 512 rows", "write failed: denied"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestOrNoop(t *testing.T) {
	if _, ok := OrNoop(nil).(NoopLogger); !ok {
		t.Error("OrNoop(nil) should return NoopLogger")
	}
	l := NewConsoleLogger(&bytes.Buffer{})
	if _, ok := OrNoop(l).(ConsoleLogger); !ok {
		t.Error("OrNoop should return the given logger unchanged")
	}
}
