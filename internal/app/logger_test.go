package app

import (
	"bytes"
	"testing"
	"time"
)

func TestFileLoggerFormat(t *testing.T) {
	var buf bytes.Buffer
	l := NewFileLogger(&buf)
	l.now = func() time.Time { return time.Date(2024, 5, 1, 12, 30, 0, 0, time.UTC) }

	l.Infof("render", "wrote %s", "a.png")
	l.Errorf("app", "failed: %d", 3)

	want := "2024-05-01T12:30:00Z [INFO] render: wrote a.png\n" +
		"2024-05-01T12:30:00Z [ERROR] app: failed: 3\n"
	if got := buf.String(); got != want {
		t.Errorf("log output:\n%s\nwant:\n%s", got, want)
	}
}

func TestFileLoggerNilWriter(t *testing.T) {
	var l FileLogger
	l.Infof("app", "ignored")
}
