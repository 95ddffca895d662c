package files

import "testing"

func TestArchiveAndRestoreDraft(t *testing.T) {
	setupProject(t)

	if err := WriteDraft("essay", "a draft"); err != nil {
		t.Fatalf("WriteDraft failed: %v", err)
	}

	if err := ArchiveDraft("essay"); err != nil {
		t.Fatalf("ArchiveDraft failed: %v", err)
	}

	// Gone from active drafts
	if _, err := ReadDraft("essay"); err == nil {
		t.Error("Expected error reading archived draft from active drafts")
	}

	archived, err := ListArchivedDrafts()
	if err != nil {
		t.Fatalf("ListArchivedDrafts failed: %v", err)
	}
	if len(archived) != 1 || archived[0] != "essay" {
		t.Errorf("Expected archived [essay], got %v", archived)
	}

	draft, err := ReadArchivedDraft("essay")
	if err != nil {
		t.Fatalf("ReadArchivedDraft failed: %v", err)
	}
	if draft.Content != "a draft" {
		t.Errorf("Expected content preserved, got %q", draft.Content)
	}
	if !draft.Archived {
		t.Error("Expected Archived flag set")
	}

	if err := RestoreDraft("essay"); err != nil {
		t.Fatalf("RestoreDraft failed: %v", err)
	}

	restored, err := ReadDraft("essay")
	if err != nil {
		t.Fatalf("ReadDraft after restore failed: %v", err)
	}
	if restored.Content != "a draft" {
		t.Errorf("Expected content preserved, got %q", restored.Content)
	}
}

func TestArchiveDraft_Collision(t *testing.T) {
	setupProject(t)

	WriteDraft("essay", "new")
	WriteDraft("essay2", "other")
	if err := ArchiveDraft("essay"); err != nil {
		t.Fatalf("ArchiveDraft failed: %v", err)
	}

	// Same name again should refuse to clobber the archived copy
	WriteDraft("essay", "second version")
	if err := ArchiveDraft("essay"); err == nil {
		t.Error("Expected error archiving onto an existing archived draft")
	}
}

func TestRestoreDraft_Collision(t *testing.T) {
	setupProject(t)

	WriteDraft("essay", "v1")
	if err := ArchiveDraft("essay"); err != nil {
		t.Fatalf("ArchiveDraft failed: %v", err)
	}
	WriteDraft("essay", "v2")

	if err := RestoreDraft("essay"); err == nil {
		t.Error("Expected error restoring onto an existing active draft")
	}
}
