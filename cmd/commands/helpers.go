package commands

import (
	"github.com/draftpad/draftpad-cli/pkg/files"
	"github.com/draftpad/draftpad-cli/pkg/models"
)

func readDraftMaybeArchived(name string, archived bool) (*models.Draft, error) {
	if archived {
		return files.ReadArchivedDraft(name)
	}
	return files.ReadDraft(name)
}
