package managers

import (
	"context"
	"fmt"
	"sync"

	"github.com/mateenqamar1122/Hyperlans-sub002/internal/domain"
)

// FolderPicker serves the "move to folder" dialog. Expanding a collapsed
// node fetches that node's subfolders exactly once; results are memoized for
// the picker's lifetime.
type FolderPicker struct {
	fileService domain.FileService
	userID      string

	mu   sync.Mutex
	memo map[string][]domain.FileEntry
}

func NewFolderPicker(fileService domain.FileService, userID string) *FolderPicker {
	return &FolderPicker{
		fileService: fileService,
		userID:      userID,
		memo:        make(map[string][]domain.FileEntry),
	}
}

// Expand returns the subfolders of the given node (nil = root).
func (p *FolderPicker) Expand(ctx context.Context, folderID *string) ([]domain.FileEntry, error) {
	key := "root"
	if folderID != nil {
		key = *folderID
	}

	p.mu.Lock()
	cached, ok := p.memo[key]
	p.mu.Unlock()
	if ok {
		return cached, nil
	}

	entries, err := p.fileService.ListChildren(ctx, domain.ListChildrenParams{
		UserID:         p.userID,
		ParentFolderID: folderID,
		View:           domain.ListViewActive,
		Sort:           domain.SortOption{Field: domain.SortByName},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to expand folder: %w", err)
	}

	folders := make([]domain.FileEntry, 0, len(entries))
	for _, entry := range entries {
		if entry.IsFolder {
			folders = append(folders, entry)
		}
	}

	p.mu.Lock()
	p.memo[key] = folders
	p.mu.Unlock()

	return folders, nil
}
