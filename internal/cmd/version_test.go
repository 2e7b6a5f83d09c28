package cmd

import (
	"bytes"
	"encoding/json"
	"testing"
)

func TestVersionCmd_Text(t *testing.T) {
	var out bytes.Buffer
	provider := &AppProvider{Out: &out}

	cmd := newVersionCmd(provider)
	if err := cmd.Execute(); err != nil {
		t.Fatalf("version command failed: %v", err)
	}

	expected := "pt-web-ui version " + Version + "\n"
	if output := out.String(); output != expected {
		t.Errorf("expected %q, got %q", expected, output)
	}
}

func TestVersionCmd_JSON(t *testing.T) {
	var out bytes.Buffer
	provider := &AppProvider{Out: &out, JSONOutput: true}

	cmd := newVersionCmd(provider)
	if err := cmd.Execute(); err != nil {
		t.Fatalf("version command failed: %v", err)
	}

	var result map[string]string
	if err := json.Unmarshal(out.Bytes(), &result); err != nil {
		t.Fatalf("failed to parse JSON output: %v", err)
	}
	if result["version"] != Version {
		t.Errorf("expected version %q, got %q", Version, result["version"])
	}
}
