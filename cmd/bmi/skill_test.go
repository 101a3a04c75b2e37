// ABOUTME: Tests for the install-skill command.
// ABOUTME: Validates skill installation, confirmation prompt, and file content.

package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestSkillPath(t *testing.T) {
	got := skillPath("/home/test")
	want := filepath.Join("/home/test", ".claude", "skills", "bmi", "SKILL.md")
	if got != want {
		t.Errorf("skillPath() = %q, want %q", got, want)
	}
}

// TestInstallSkillWithYes verifies the file is written without prompting.
func TestInstallSkillWithYes(t *testing.T) {
	home := t.TempDir()
	var out bytes.Buffer

	if err := installSkill(&out, strings.NewReader(""), home, true); err != nil {
		t.Fatalf("installSkill failed: %v", err)
	}

	written, err := os.ReadFile(skillPath(home))
	if err != nil {
		t.Fatalf("Skill file not created: %v", err)
	}

	embedded, err := skillFS.ReadFile("skill/SKILL.md")
	if err != nil {
		t.Fatalf("Failed to read embedded skill: %v", err)
	}
	if !bytes.Equal(written, embedded) {
		t.Error("Installed skill does not match embedded content")
	}

	if strings.Contains(out.String(), "[y/N]") {
		t.Error("--yes should skip the confirmation prompt")
	}
	if !strings.Contains(out.String(), "Installed bmi skill successfully") {
		t.Errorf("Missing success message:\n%s", out.String())
	}
}

func TestInstallSkillConfirmation(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		installed bool
	}{
		{"yes", "y\n", true},
		{"full yes", "YES\n", true},
		{"no", "n\n", false},
		{"empty", "\n", false},
		{"eof", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			home := t.TempDir()
			var out bytes.Buffer

			if err := installSkill(&out, strings.NewReader(tt.input), home, false); err != nil {
				t.Fatalf("installSkill failed: %v", err)
			}

			_, err := os.Stat(skillPath(home))
			if tt.installed && err != nil {
				t.Errorf("Expected skill file to be installed: %v", err)
			}
			if !tt.installed {
				if err == nil {
					t.Error("Skill file should not be installed")
				}
				if !strings.Contains(out.String(), "Installation canceled.") {
					t.Errorf("Missing cancel message:\n%s", out.String())
				}
			}
		})
	}
}

func TestInstallSkillOverwriteNotice(t *testing.T) {
	home := t.TempDir()
	path := skillPath(home)
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte("old"), 0644); err != nil {
		t.Fatal(err)
	}

	var out bytes.Buffer
	if err := installSkill(&out, strings.NewReader(""), home, true); err != nil {
		t.Fatalf("installSkill failed: %v", err)
	}
	if !strings.Contains(out.String(), "already exists") {
		t.Error("Expected overwrite notice")
	}

	written, _ := os.ReadFile(path)
	if string(written) == "old" {
		t.Error("Existing skill file was not overwritten")
	}
}

// TestEmbeddedSkillContent checks the frontmatter and command references.
func TestEmbeddedSkillContent(t *testing.T) {
	content, err := skillFS.ReadFile("skill/SKILL.md")
	if err != nil {
		t.Fatalf("Failed to read embedded skill: %v", err)
	}

	s := string(content)
	if !strings.HasPrefix(s, "---\n") {
		t.Error("SKILL.md should start with YAML frontmatter")
	}
	for _, marker := range []string{"name: bmi", "description:", "bmi calc", "bmi guide"} {
		if !strings.Contains(s, marker) {
			t.Errorf("SKILL.md missing %q", marker)
		}
	}
}
