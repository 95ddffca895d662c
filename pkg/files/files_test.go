package files

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/draftpad/draftpad-cli/pkg/models"
)

func setupProject(t *testing.T) {
	t.Helper()

	tempDir := t.TempDir()
	oldWd, _ := os.Getwd()
	t.Cleanup(func() { os.Chdir(oldWd) })
	os.Chdir(tempDir)

	if err := InitProjectStructure(); err != nil {
		t.Fatalf("InitProjectStructure failed: %v", err)
	}
}

func TestInitProjectStructure(t *testing.T) {
	setupProject(t)

	expectedDirs := []string{
		DraftpadDir,
		filepath.Join(DraftpadDir, DraftsDir),
		filepath.Join(DraftpadDir, ArchiveDir),
	}

	for _, dir := range expectedDirs {
		if _, err := os.Stat(dir); os.IsNotExist(err) {
			t.Errorf("Expected directory %s does not exist", dir)
		}
	}
}

func TestReadWriteDraft(t *testing.T) {
	setupProject(t)

	content := "# Morning pages\n\nA first thought."

	if err := WriteDraft("morning-pages", content); err != nil {
		t.Fatalf("WriteDraft failed: %v", err)
	}

	draft, err := ReadDraft("morning-pages")
	if err != nil {
		t.Fatalf("ReadDraft failed: %v", err)
	}

	if draft.Content != content {
		t.Errorf("Expected content %q, got %q", content, draft.Content)
	}
	if draft.Name != "morning-pages" {
		t.Errorf("Expected name %q, got %q", "morning-pages", draft.Name)
	}
	if draft.Archived {
		t.Error("Active draft should not be marked archived")
	}
}

func TestReadDraft_NotFound(t *testing.T) {
	setupProject(t)

	if _, err := ReadDraft("nope"); err == nil {
		t.Error("Expected error reading missing draft")
	}
}

func TestListDrafts(t *testing.T) {
	setupProject(t)

	if err := WriteDraft("zebra", "z"); err != nil {
		t.Fatalf("WriteDraft failed: %v", err)
	}
	if err := WriteDraft("alpha", "a"); err != nil {
		t.Fatalf("WriteDraft failed: %v", err)
	}

	names, err := ListDrafts()
	if err != nil {
		t.Fatalf("ListDrafts failed: %v", err)
	}

	if len(names) != 2 {
		t.Fatalf("Expected 2 drafts, got %d", len(names))
	}
	if names[0] != "alpha" || names[1] != "zebra" {
		t.Errorf("Expected sorted names [alpha zebra], got %v", names)
	}
}

func TestListDrafts_EmptyProject(t *testing.T) {
	setupProject(t)

	names, err := ListDrafts()
	if err != nil {
		t.Fatalf("ListDrafts failed: %v", err)
	}
	if len(names) != 0 {
		t.Errorf("Expected no drafts, got %v", names)
	}
}

func TestDeleteDraft(t *testing.T) {
	setupProject(t)

	if err := WriteDraft("doomed", "bye"); err != nil {
		t.Fatalf("WriteDraft failed: %v", err)
	}
	if err := DeleteDraft("doomed"); err != nil {
		t.Fatalf("DeleteDraft failed: %v", err)
	}
	if _, err := ReadDraft("doomed"); err == nil {
		t.Error("Expected error reading deleted draft")
	}
}

func TestRenameDraft(t *testing.T) {
	setupProject(t)

	if err := WriteDraft("old-name", "content"); err != nil {
		t.Fatalf("WriteDraft failed: %v", err)
	}
	if err := RenameDraft("old-name", "new-name"); err != nil {
		t.Fatalf("RenameDraft failed: %v", err)
	}

	draft, err := ReadDraft("new-name")
	if err != nil {
		t.Fatalf("ReadDraft after rename failed: %v", err)
	}
	if draft.Content != "content" {
		t.Errorf("Expected content preserved, got %q", draft.Content)
	}
}

func TestRenameDraft_Collision(t *testing.T) {
	setupProject(t)

	WriteDraft("a", "1")
	WriteDraft("b", "2")

	if err := RenameDraft("a", "b"); err == nil {
		t.Error("Expected error renaming onto an existing draft")
	}
}

func TestReadWriteSettings(t *testing.T) {
	setupProject(t)

	settings := models.DefaultSettings()
	settings.UI.ShowCoach = false
	settings.Editor.Command = "nvim"

	if err := WriteSettings(settings); err != nil {
		t.Fatalf("WriteSettings failed: %v", err)
	}

	loaded, err := ReadSettings()
	if err != nil {
		t.Fatalf("ReadSettings failed: %v", err)
	}

	if loaded.UI.ShowCoach {
		t.Error("Expected ShowCoach false")
	}
	if loaded.Editor.Command != "nvim" {
		t.Errorf("Expected editor command nvim, got %q", loaded.Editor.Command)
	}
}

func TestReadSettings_Missing(t *testing.T) {
	setupProject(t)

	if _, err := ReadSettings(); err == nil {
		t.Error("Expected error reading missing settings")
	}
}
