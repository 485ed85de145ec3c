package main

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"
)

func TestSearchCommand(t *testing.T) {
	root := newRootCommand()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetArgs([]string{"search", "insomnia", "-k", "1", "-f", filepath.Join("..", "..", "data", "knowledge_base.json")})

	if err := root.Execute(); err != nil {
		t.Fatalf("search failed: %v", err)
	}

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	if len(lines) != 1 || !strings.HasPrefix(lines[0], "1. ") {
		t.Errorf("unexpected output %q", out.String())
	}
}

func TestSearchCommand_NoMatches(t *testing.T) {
	root := newRootCommand()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetArgs([]string{"search", "zzzqqq", "-f", filepath.Join("..", "..", "data", "knowledge_base.json")})

	if err := root.Execute(); err != nil {
		t.Fatalf("search failed: %v", err)
	}
	if strings.TrimSpace(out.String()) != "no matches" {
		t.Errorf("unexpected output %q", out.String())
	}
}

func TestImportCommand_RequiresFile(t *testing.T) {
	root := newRootCommand()
	root.SetOut(&bytes.Buffer{})
	root.SetErr(&bytes.Buffer{})
	root.SetArgs([]string{"import"})

	if err := root.Execute(); err == nil {
		t.Error("expected argument error")
	}
}
