package config

import (
	"strings"
	"testing"
)

func TestGetJSONRedactsSecrets(t *testing.T) {
	manager := NewManager(&Config{
		SoundCloud: SoundCloud{ClientSecret: "hunter2"},
		Telegram:   Telegram{Token: "bot-token"},
	})

	out := manager.GetJSON()
	if strings.Contains(out, "hunter2") || strings.Contains(out, "bot-token") {
		t.Errorf("secrets must be redacted: %s", out)
	}
	if !strings.Contains(out, "<redacted>") {
		t.Errorf("expected redaction marker in output: %s", out)
	}
}

func TestGetJSONDuringConcurrentUpdates(t *testing.T) {
	manager := NewManager(&Config{})

	done := make(chan struct{})
	go func() {
		defer close(done)
		for i := 0; i < 500; i++ {
			manager.Update(&Config{})
		}
	}()

	for i := 0; i < 500; i++ {
		if manager.GetJSON() == "" {
			t.Fatal("unexpected empty config json")
		}
	}
	<-done
}
