package files

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/draftpad/draftpad-cli/pkg/models"
)

const (
	DraftpadDir  = ".draftpad"
	DraftsDir    = "drafts"
	ArchiveDir   = "archive"
	SettingsFile = "config.yaml"
	DraftExt     = ".md"
)

func InitProjectStructure() error {
	dirs := []string{
		DraftpadDir,
		filepath.Join(DraftpadDir, DraftsDir),
		filepath.Join(DraftpadDir, ArchiveDir),
	}

	for _, dir := range dirs {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create directory %s: %w", dir, err)
		}
	}

	return nil
}

// DraftPath returns the on-disk path of a named draft.
func DraftPath(name string) string {
	return filepath.Join(DraftpadDir, DraftsDir, name+DraftExt)
}

func ReadDraft(name string) (*models.Draft, error) {
	absPath := DraftPath(name)

	content, err := os.ReadFile(absPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read draft %s: %w", name, err)
	}

	info, err := os.Stat(absPath)
	if err != nil {
		return nil, fmt.Errorf("failed to stat draft %s: %w", name, err)
	}

	return &models.Draft{
		Name:     name,
		Path:     absPath,
		Content:  string(content),
		Modified: info.ModTime(),
	}, nil
}

func WriteDraft(name string, content string) error {
	absPath := DraftPath(name)

	dir := filepath.Dir(absPath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create drafts directory: %w", err)
	}

	if err := os.WriteFile(absPath, []byte(content), 0644); err != nil {
		return fmt.Errorf("failed to write draft %s: %w", name, err)
	}

	return nil
}

func DeleteDraft(name string) error {
	if err := os.Remove(DraftPath(name)); err != nil {
		return fmt.Errorf("failed to delete draft %s: %w", name, err)
	}
	return nil
}

// RenameDraft moves a draft to a new name, refusing to clobber an
// existing draft.
func RenameDraft(oldName, newName string) error {
	newPath := DraftPath(newName)
	if _, err := os.Stat(newPath); err == nil {
		return fmt.Errorf("draft %s already exists", newName)
	}

	if err := os.Rename(DraftPath(oldName), newPath); err != nil {
		return fmt.Errorf("failed to rename draft %s: %w", oldName, err)
	}
	return nil
}

// ListDrafts returns the names of all active drafts, sorted.
func ListDrafts() ([]string, error) {
	return listDraftNames(filepath.Join(DraftpadDir, DraftsDir))
}

func listDraftNames(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return []string{}, nil
		}
		return nil, fmt.Errorf("failed to list drafts: %w", err)
	}

	names := []string{}
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), DraftExt) {
			continue
		}
		names = append(names, strings.TrimSuffix(entry.Name(), DraftExt))
	}

	sort.Strings(names)
	return names, nil
}

func ReadSettings() (*models.Settings, error) {
	absPath := filepath.Join(DraftpadDir, SettingsFile)

	content, err := os.ReadFile(absPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read settings: %w", err)
	}

	settings := models.DefaultSettings()
	if err := yaml.Unmarshal(content, settings); err != nil {
		return nil, fmt.Errorf("failed to parse settings YAML: %w", err)
	}

	return settings, nil
}

func WriteSettings(settings *models.Settings) error {
	content, err := yaml.Marshal(settings)
	if err != nil {
		return fmt.Errorf("failed to marshal settings to YAML: %w", err)
	}

	absPath := filepath.Join(DraftpadDir, SettingsFile)
	if err := os.WriteFile(absPath, content, 0644); err != nil {
		return fmt.Errorf("failed to write settings: %w", err)
	}

	return nil
}
