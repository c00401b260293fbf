// Public domain.

package logging_test

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/soniakeys/varphot/internal/logging"
)

func TestJSON(t *testing.T) {
	var b bytes.Buffer
	// a buffer is not a terminal, auto selects json.
	log, err := logging.New(logging.Options{Level: "info", Format: "auto", Output: &b})
	if err != nil {
		t.Fatal(err)
	}
	log.Debug("hidden")
	log.Info("removing entry", "index", 3, "reason", "period")
	var m map[string]any
	if err := json.Unmarshal(b.Bytes(), &m); err != nil {
		t.Fatalf("%v: %q", err, b.String())
	}
	if m["msg"] != "removing entry" || m["reason"] != "period" || m["index"] != 3. {
		t.Fatalf("got %v", m)
	}
}

func TestConsole(t *testing.T) {
	var b bytes.Buffer
	log, err := logging.New(logging.Options{Level: "debug", Format: "console", Output: &b})
	if err != nil {
		t.Fatal(err)
	}
	log.Debug("window", "size", 20)
	s := b.String()
	if !strings.Contains(s, "msg=window") || !strings.Contains(s, "size=20") {
		t.Fatalf("got %q", s)
	}
	if strings.Contains(s, "time=") {
		t.Fatalf("console output has time: %q", s)
	}
}

func TestInvalid(t *testing.T) {
	if _, err := logging.New(logging.Options{Level: "loud"}); err == nil {
		t.Error("bad level accepted")
	}
	if _, err := logging.New(logging.Options{Format: "xml"}); err == nil {
		t.Error("bad format accepted")
	}
}
