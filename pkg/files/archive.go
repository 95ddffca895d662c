package files

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/draftpad/draftpad-cli/pkg/models"
)

func archivedDraftPath(name string) string {
	return filepath.Join(DraftpadDir, ArchiveDir, name+DraftExt)
}

// ArchiveDraft moves an active draft into the archive directory.
func ArchiveDraft(name string) error {
	srcPath := DraftPath(name)
	dstPath := archivedDraftPath(name)

	if _, err := os.Stat(dstPath); err == nil {
		return fmt.Errorf("an archived draft named %s already exists", name)
	}

	if err := os.MkdirAll(filepath.Dir(dstPath), 0755); err != nil {
		return fmt.Errorf("failed to create archive directory: %w", err)
	}

	if err := os.Rename(srcPath, dstPath); err != nil {
		return fmt.Errorf("failed to archive draft %s: %w", name, err)
	}

	return nil
}

// RestoreDraft moves an archived draft back into the active drafts.
func RestoreDraft(name string) error {
	srcPath := archivedDraftPath(name)
	dstPath := DraftPath(name)

	if _, err := os.Stat(dstPath); err == nil {
		return fmt.Errorf("an active draft named %s already exists", name)
	}

	if err := os.MkdirAll(filepath.Dir(dstPath), 0755); err != nil {
		return fmt.Errorf("failed to create drafts directory: %w", err)
	}

	if err := os.Rename(srcPath, dstPath); err != nil {
		return fmt.Errorf("failed to restore draft %s: %w", name, err)
	}

	return nil
}

// ListArchivedDrafts returns the names of all archived drafts, sorted.
func ListArchivedDrafts() ([]string, error) {
	return listDraftNames(filepath.Join(DraftpadDir, ArchiveDir))
}

// ReadArchivedDraft reads a draft from the archive.
func ReadArchivedDraft(name string) (*models.Draft, error) {
	absPath := archivedDraftPath(name)

	content, err := os.ReadFile(absPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read archived draft %s: %w", name, err)
	}

	info, err := os.Stat(absPath)
	if err != nil {
		return nil, fmt.Errorf("failed to stat archived draft %s: %w", name, err)
	}

	return &models.Draft{
		Name:     name,
		Path:     absPath,
		Content:  string(content),
		Modified: info.ModTime(),
		Archived: true,
	}, nil
}
