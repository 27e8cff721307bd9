package domain

import (
	"context"
	"io"
	"time"
)

// FileEntry represents a file or a folder in a user's tree, discriminated by
// IsFolder. SizeInBytes is meaningful only for files. ParentFolderID nil means
// the entry sits at the root of the owner's forest.
type FileEntry struct {
	ID             string     `bson:"id" json:"id"`
	UserID         string     `bson:"user_id" json:"user_id"`
	Name           string     `bson:"name" json:"name"`
	ContentType    string     `bson:"content_type" json:"content_type"`
	SizeInBytes    int64      `bson:"size_in_bytes" json:"size_in_bytes"`
	StoragePath    string     `bson:"storage_path" json:"storage_path"`
	PublicURL      string     `bson:"public_url" json:"public_url"`
	ThumbnailURL   string     `bson:"thumbnail_url,omitempty" json:"thumbnail_url,omitempty"`
	ParentFolderID *string    `bson:"parent_folder_id,omitempty" json:"parent_folder_id,omitempty"`
	CategoryID     *string    `bson:"category_id,omitempty" json:"category_id,omitempty"`
	IsFolder       bool       `bson:"is_folder" json:"is_folder"`
	IsStarred      bool       `bson:"is_starred" json:"is_starred"`
	IsArchived     bool       `bson:"is_archived" json:"is_archived"`
	SharedWith     []string   `bson:"shared_with,omitempty" json:"shared_with,omitempty"`
	CreatedAt      time.Time  `bson:"created_at" json:"created_at"`
	UpdatedAt      time.Time  `bson:"updated_at" json:"updated_at"`
	LastAccessedAt *time.Time `bson:"last_accessed_at,omitempty" json:"last_accessed_at,omitempty"`
}

// FileCategory is a user-defined tag, independent of the folder tree.
// Deleting one clears the association on files; it never deletes files.
type FileCategory struct {
	ID          string    `bson:"id" json:"id"`
	UserID      string    `bson:"user_id" json:"user_id"`
	Name        string    `bson:"name" json:"name"`
	Description string    `bson:"description,omitempty" json:"description,omitempty"`
	Color       string    `bson:"color,omitempty" json:"color,omitempty"`
	CreatedAt   time.Time `bson:"created_at" json:"created_at"`
}

// Breadcrumb is one element of an ancestor chain, ordered root to current.
type Breadcrumb struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type ListView string

const (
	ListViewActive   ListView = "active"
	ListViewArchived ListView = "archived"
)

type SortField string

const (
	SortByName SortField = "name"
	SortByDate SortField = "date"
	SortBySize SortField = "size"
	SortByType SortField = "type"
)

type SortOption struct {
	Field      SortField
	Descending bool
}

type BulkAction string

const (
	BulkActionStar      BulkAction = "star"
	BulkActionUnstar    BulkAction = "unstar"
	BulkActionArchive   BulkAction = "archive"
	BulkActionUnarchive BulkAction = "unarchive"
	BulkActionDelete    BulkAction = "delete"
)

// BulkOutcome aggregates per-item results of a bulk action. There is no
// transactional guarantee across entries; partial success is reported as-is.
type BulkOutcome struct {
	Succeeded int               `json:"succeeded"`
	Failed    int               `json:"failed"`
	Errors    map[string]string `json:"errors,omitempty"`
}

type ListChildrenParams struct {
	UserID         string
	ParentFolderID *string
	View           ListView
	Sort           SortOption
}

type UploadFileParams struct {
	UserID         string
	Name           string
	ContentType    string
	SizeInBytes    int64
	ParentFolderID *string
	Reader         io.Reader
}

type CreateFolderParams struct {
	UserID         string
	Name           string
	ParentFolderID *string
}

type MoveEntryParams struct {
	UserID        string
	EntryID       string
	DestinationID *string // nil moves to root
}

type ApplyBulkParams struct {
	UserID   string
	Action   BulkAction
	EntryIDs []string
}

type FileService interface {
	ListChildren(ctx context.Context, params ListChildrenParams) ([]FileEntry, error)
	AncestorChain(ctx context.Context, userID, folderID string) ([]Breadcrumb, error)
	GetEntry(ctx context.Context, userID, entryID string) (FileEntry, error)
	UploadFile(ctx context.Context, params UploadFileParams) (FileEntry, error)
	CreateFolder(ctx context.Context, params CreateFolderParams) (FileEntry, error)
	Rename(ctx context.Context, userID, entryID, newName string) (FileEntry, error)
	Move(ctx context.Context, params MoveEntryParams) (FileEntry, error)
	ToggleStar(ctx context.Context, userID, entryID string, starred bool) (FileEntry, error)
	ToggleArchive(ctx context.Context, userID, entryID string, archived bool) (FileEntry, error)
	Delete(ctx context.Context, userID, entryID string) error
	ApplyBulk(ctx context.Context, params ApplyBulkParams) (BulkOutcome, error)
	SetCategory(ctx context.Context, userID, entryID string, categoryID *string) (FileEntry, error)
}

type CategoryService interface {
	ListCategories(ctx context.Context, userID string) ([]FileCategory, error)
	CreateCategory(ctx context.Context, category FileCategory) (FileCategory, error)
	UpdateCategory(ctx context.Context, category FileCategory) (FileCategory, error)
	DeleteCategory(ctx context.Context, userID, categoryID string) error
}

// FileEntryFilter narrows repository listings. Nil pointer fields are not
// applied; HasParent distinguishes "parent is nil" from "any parent".
type FileEntryFilter struct {
	UserID         string
	ParentFolderID *string
	HasParent      bool
	IsArchived     *bool
	IsFolder       *bool
	CategoryID     *string
}

type FileEntryPatch struct {
	Name           *string
	ParentFolderID **string
	CategoryID     **string
	IsStarred      *bool
	IsArchived     *bool
	LastAccessedAt *time.Time
}

type FileRepository interface {
	Insert(ctx context.Context, entry FileEntry) error
	Get(ctx context.Context, userID, entryID string) (FileEntry, error)
	List(ctx context.Context, filter FileEntryFilter) ([]FileEntry, error)
	Update(ctx context.Context, userID, entryID string, patch FileEntryPatch) (FileEntry, error)
	Delete(ctx context.Context, userID, entryID string) error
	ClearCategory(ctx context.Context, userID, categoryID string) error
}

type CategoryRepository interface {
	Insert(ctx context.Context, category FileCategory) error
	Get(ctx context.Context, userID, categoryID string) (FileCategory, error)
	List(ctx context.Context, userID string) ([]FileCategory, error)
	Update(ctx context.Context, category FileCategory) error
	Delete(ctx context.Context, userID, categoryID string) error
}
