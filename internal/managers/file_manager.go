package managers

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/mateenqamar1122/Hyperlans-sub002/internal/domain"

	"github.com/rs/xid"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"
)

// maxAncestorHops bounds the parent-pointer walk. A chain this deep only
// occurs when a malformed parent pointer forms a cycle, so the walk aborts
// with a data-integrity error instead of hanging.
const maxAncestorHops = 1000

// bulkConcurrency caps the fan-out of a bulk action.
const bulkConcurrency = 8

type fileManager struct {
	fileRepository     domain.FileRepository
	categoryRepository domain.CategoryRepository
	storageGateway     domain.StorageGateway
}

type FileManagerDependencies struct {
	FileRepository     domain.FileRepository
	CategoryRepository domain.CategoryRepository
	StorageGateway     domain.StorageGateway
}

func NewFileManager(deps FileManagerDependencies) domain.FileService {
	return &fileManager{
		fileRepository:     deps.FileRepository,
		categoryRepository: deps.CategoryRepository,
		storageGateway:     deps.StorageGateway,
	}
}

func (m *fileManager) ListChildren(ctx context.Context, params domain.ListChildrenParams) ([]domain.FileEntry, error) {
	archived := params.View == domain.ListViewArchived

	entries, err := m.fileRepository.List(ctx, domain.FileEntryFilter{
		UserID:         params.UserID,
		ParentFolderID: params.ParentFolderID,
		HasParent:      true,
		IsArchived:     &archived,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list children: %w", err)
	}

	sortEntries(entries, params.Sort)

	return entries, nil
}

// sortEntries orders entries per the active sort option, breaking ties by
// name ascending for determinism.
func sortEntries(entries []domain.FileEntry, option domain.SortOption) {
	less := func(a, b domain.FileEntry) int {
		switch option.Field {
		case domain.SortByDate:
			if a.CreatedAt.Before(b.CreatedAt) {
				return -1
			}
			if a.CreatedAt.After(b.CreatedAt) {
				return 1
			}
		case domain.SortBySize:
			if a.SizeInBytes < b.SizeInBytes {
				return -1
			}
			if a.SizeInBytes > b.SizeInBytes {
				return 1
			}
		case domain.SortByType:
			if c := strings.Compare(a.ContentType, b.ContentType); c != 0 {
				return c
			}
		default:
			if c := strings.Compare(strings.ToLower(a.Name), strings.ToLower(b.Name)); c != 0 {
				return c
			}
		}
		return 0
	}

	sort.SliceStable(entries, func(i, j int) bool {
		c := less(entries[i], entries[j])
		if option.Descending {
			c = -c
		}
		if c != 0 {
			return c < 0
		}
		return strings.Compare(strings.ToLower(entries[i].Name), strings.ToLower(entries[j].Name)) < 0
	})
}

func (m *fileManager) AncestorChain(ctx context.Context, userID, folderID string) ([]domain.Breadcrumb, error) {
	chain := make([]domain.Breadcrumb, 0, 8)

	currentID := folderID
	for hops := 0; ; hops++ {
		if hops >= maxAncestorHops {
			return nil, domain.ErrTreeCorrupted
		}

		entry, err := m.fileRepository.Get(ctx, userID, currentID)
		if err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				// Broken chain: return the resolvable part so the
				// breadcrumb can degrade instead of disappearing.
				reverse(chain)
				return chain, fmt.Errorf("ancestor %s: %w", currentID, domain.ErrNotFound)
			}
			return nil, fmt.Errorf("failed to resolve ancestor %s: %w", currentID, err)
		}

		chain = append(chain, domain.Breadcrumb{ID: entry.ID, Name: entry.Name})

		if entry.ParentFolderID == nil {
			break
		}
		currentID = *entry.ParentFolderID
	}

	reverse(chain)
	return chain, nil
}

func reverse(chain []domain.Breadcrumb) {
	for i, j := 0, len(chain)-1; i < j; i, j = i+1, j-1 {
		chain[i], chain[j] = chain[j], chain[i]
	}
}

func (m *fileManager) GetEntry(ctx context.Context, userID, entryID string) (domain.FileEntry, error) {
	entry, err := m.fileRepository.Get(ctx, userID, entryID)
	if err != nil {
		return domain.FileEntry{}, fmt.Errorf("failed to get entry: %w", err)
	}
	return entry, nil
}

func (m *fileManager) UploadFile(ctx context.Context, params domain.UploadFileParams) (domain.FileEntry, error) {
	name := strings.TrimSpace(params.Name)
	if name == "" {
		return domain.FileEntry{}, domain.NewValidationError("name", "must not be empty")
	}

	if err := m.checkParentFolder(ctx, params.UserID, params.ParentFolderID); err != nil {
		return domain.FileEntry{}, err
	}

	contentType := params.ContentType
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	id := xid.New().String()
	storagePath := fmt.Sprintf("users/%s/%s", params.UserID, id)

	path, err := m.storageGateway.Upload(ctx, storagePath, contentType, params.Reader)
	if err != nil {
		return domain.FileEntry{}, fmt.Errorf("failed to upload file: %w", err)
	}

	now := time.Now().UTC()
	entry := domain.FileEntry{
		ID:             id,
		UserID:         params.UserID,
		Name:           name,
		ContentType:    contentType,
		SizeInBytes:    params.SizeInBytes,
		StoragePath:    path,
		PublicURL:      m.storageGateway.PublicURL(path),
		ParentFolderID: params.ParentFolderID,
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	if err := m.fileRepository.Insert(ctx, entry); err != nil {
		// The object is already in the bucket; remove it so a failed insert
		// does not leak storage.
		if removeErr := m.storageGateway.Remove(ctx, path); removeErr != nil {
			log.Warn().Err(removeErr).Str("path", path).Msg("Failed to remove orphaned object")
		}
		return domain.FileEntry{}, fmt.Errorf("failed to insert file entry: %w", err)
	}

	return entry, nil
}

func (m *fileManager) CreateFolder(ctx context.Context, params domain.CreateFolderParams) (domain.FileEntry, error) {
	name := strings.TrimSpace(params.Name)
	if name == "" {
		return domain.FileEntry{}, domain.NewValidationError("name", "must not be empty")
	}

	if err := m.checkParentFolder(ctx, params.UserID, params.ParentFolderID); err != nil {
		return domain.FileEntry{}, err
	}

	now := time.Now().UTC()
	entry := domain.FileEntry{
		ID:             xid.New().String(),
		UserID:         params.UserID,
		Name:           name,
		ParentFolderID: params.ParentFolderID,
		IsFolder:       true,
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	if err := m.fileRepository.Insert(ctx, entry); err != nil {
		return domain.FileEntry{}, fmt.Errorf("failed to insert folder: %w", err)
	}

	return entry, nil
}

func (m *fileManager) checkParentFolder(ctx context.Context, userID string, parentID *string) error {
	if parentID == nil {
		return nil
	}

	parent, err := m.fileRepository.Get(ctx, userID, *parentID)
	if err != nil {
		return fmt.Errorf("failed to resolve parent folder: %w", err)
	}
	if !parent.IsFolder {
		return fmt.Errorf("%w: parent %s is not a folder", domain.ErrInvalidOperation, *parentID)
	}

	return nil
}

func (m *fileManager) Rename(ctx context.Context, userID, entryID, newName string) (domain.FileEntry, error) {
	name := strings.TrimSpace(newName)
	if name == "" {
		return domain.FileEntry{}, domain.NewValidationError("name", "must not be empty")
	}

	entry, err := m.fileRepository.Update(ctx, userID, entryID, domain.FileEntryPatch{Name: &name})
	if err != nil {
		return domain.FileEntry{}, fmt.Errorf("failed to rename entry: %w", err)
	}

	return entry, nil
}

func (m *fileManager) Move(ctx context.Context, params domain.MoveEntryParams) (domain.FileEntry, error) {
	if params.DestinationID != nil {
		destID := *params.DestinationID

		if destID == params.EntryID {
			return domain.FileEntry{}, fmt.Errorf("%w: cannot move an entry into itself", domain.ErrInvalidOperation)
		}

		dest, err := m.fileRepository.Get(ctx, params.UserID, destID)
		if err != nil {
			return domain.FileEntry{}, fmt.Errorf("failed to resolve destination: %w", err)
		}
		if !dest.IsFolder {
			return domain.FileEntry{}, fmt.Errorf("%w: destination %s is not a folder", domain.ErrInvalidOperation, destID)
		}

		// The record store enforces no tree constraint at all, so the
		// descendant check happens here, before any write.
		chain, err := m.AncestorChain(ctx, params.UserID, destID)
		if err != nil {
			return domain.FileEntry{}, err
		}
		for _, crumb := range chain {
			if crumb.ID == params.EntryID {
				return domain.FileEntry{}, fmt.Errorf("%w: cannot move a folder into its own descendant", domain.ErrInvalidOperation)
			}
		}
	}

	dest := params.DestinationID
	entry, err := m.fileRepository.Update(ctx, params.UserID, params.EntryID, domain.FileEntryPatch{ParentFolderID: &dest})
	if err != nil {
		return domain.FileEntry{}, fmt.Errorf("failed to move entry: %w", err)
	}

	return entry, nil
}

func (m *fileManager) ToggleStar(ctx context.Context, userID, entryID string, starred bool) (domain.FileEntry, error) {
	entry, err := m.fileRepository.Update(ctx, userID, entryID, domain.FileEntryPatch{IsStarred: &starred})
	if err != nil {
		return domain.FileEntry{}, fmt.Errorf("failed to toggle star: %w", err)
	}
	return entry, nil
}

func (m *fileManager) ToggleArchive(ctx context.Context, userID, entryID string, archived bool) (domain.FileEntry, error) {
	entry, err := m.fileRepository.Update(ctx, userID, entryID, domain.FileEntryPatch{IsArchived: &archived})
	if err != nil {
		return domain.FileEntry{}, fmt.Errorf("failed to toggle archive: %w", err)
	}
	return entry, nil
}

// Delete removes an entry permanently. Deleting a folder cascade-deletes all
// of its descendants; stored objects are removed from the storage gateway
// best-effort, rows are removed children-first.
func (m *fileManager) Delete(ctx context.Context, userID, entryID string) error {
	return m.deleteEntry(ctx, userID, entryID, make(map[string]struct{}))
}

func (m *fileManager) deleteEntry(ctx context.Context, userID, entryID string, visited map[string]struct{}) error {
	// A parent-pointer cycle would otherwise recurse forever.
	if _, seen := visited[entryID]; seen {
		return fmt.Errorf("cycle at entry %s: %w", entryID, domain.ErrTreeCorrupted)
	}
	visited[entryID] = struct{}{}

	entry, err := m.fileRepository.Get(ctx, userID, entryID)
	if err != nil {
		return fmt.Errorf("failed to get entry: %w", err)
	}

	if entry.IsFolder {
		children, err := m.listAllChildren(ctx, userID, entry.ID)
		if err != nil {
			return err
		}
		for _, child := range children {
			if err := m.deleteEntry(ctx, userID, child.ID, visited); err != nil {
				return err
			}
		}
	}

	if !entry.IsFolder && entry.StoragePath != "" {
		if err := m.storageGateway.Remove(ctx, entry.StoragePath); err != nil {
			log.Warn().Err(err).Str("path", entry.StoragePath).Msg("Failed to remove stored object")
		}
	}

	if err := m.fileRepository.Delete(ctx, userID, entry.ID); err != nil {
		return fmt.Errorf("failed to delete entry: %w", err)
	}

	return nil
}

// listAllChildren returns direct children regardless of archival state.
func (m *fileManager) listAllChildren(ctx context.Context, userID, folderID string) ([]domain.FileEntry, error) {
	parentID := folderID
	children, err := m.fileRepository.List(ctx, domain.FileEntryFilter{
		UserID:         userID,
		ParentFolderID: &parentID,
		HasParent:      true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list folder contents: %w", err)
	}
	return children, nil
}

func (m *fileManager) ApplyBulk(ctx context.Context, params domain.ApplyBulkParams) (domain.BulkOutcome, error) {
	outcome := domain.BulkOutcome{Errors: make(map[string]string)}

	var mu sync.Mutex
	group, groupCtx := errgroup.WithContext(ctx)
	group.SetLimit(bulkConcurrency)

	for _, entryID := range params.EntryIDs {
		group.Go(func() error {
			err := m.applySingle(groupCtx, params.UserID, params.Action, entryID)

			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				outcome.Failed++
				outcome.Errors[entryID] = err.Error()
			} else {
				outcome.Succeeded++
			}

			// Per-item failures are part of the outcome, not a reason to
			// stop the rest of the fan-out.
			return nil
		})
	}

	if err := group.Wait(); err != nil {
		return outcome, fmt.Errorf("failed to apply bulk action: %w", err)
	}

	if len(outcome.Errors) == 0 {
		outcome.Errors = nil
	}

	return outcome, nil
}

func (m *fileManager) applySingle(ctx context.Context, userID string, action domain.BulkAction, entryID string) error {
	switch action {
	case domain.BulkActionStar:
		_, err := m.ToggleStar(ctx, userID, entryID, true)
		return err
	case domain.BulkActionUnstar:
		_, err := m.ToggleStar(ctx, userID, entryID, false)
		return err
	case domain.BulkActionArchive:
		_, err := m.ToggleArchive(ctx, userID, entryID, true)
		return err
	case domain.BulkActionUnarchive:
		_, err := m.ToggleArchive(ctx, userID, entryID, false)
		return err
	case domain.BulkActionDelete:
		return m.Delete(ctx, userID, entryID)
	default:
		return fmt.Errorf("%w: unknown bulk action %q", domain.ErrInvalidOperation, action)
	}
}

func (m *fileManager) SetCategory(ctx context.Context, userID, entryID string, categoryID *string) (domain.FileEntry, error) {
	if categoryID != nil {
		if _, err := m.categoryRepository.Get(ctx, userID, *categoryID); err != nil {
			return domain.FileEntry{}, fmt.Errorf("failed to resolve category: %w", err)
		}
	}

	entry, err := m.fileRepository.Update(ctx, userID, entryID, domain.FileEntryPatch{CategoryID: &categoryID})
	if err != nil {
		return domain.FileEntry{}, fmt.Errorf("failed to set category: %w", err)
	}

	return entry, nil
}
