package managers

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/mateenqamar1122/Hyperlans-sub002/internal/domain"

	"github.com/rs/xid"
)

type categoryManager struct {
	categoryRepository domain.CategoryRepository
	fileRepository     domain.FileRepository
}

type CategoryManagerDependencies struct {
	CategoryRepository domain.CategoryRepository
	FileRepository     domain.FileRepository
}

func NewCategoryManager(deps CategoryManagerDependencies) domain.CategoryService {
	return &categoryManager{
		categoryRepository: deps.CategoryRepository,
		fileRepository:     deps.FileRepository,
	}
}

func (m *categoryManager) ListCategories(ctx context.Context, userID string) ([]domain.FileCategory, error) {
	categories, err := m.categoryRepository.List(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}
	return categories, nil
}

func (m *categoryManager) CreateCategory(ctx context.Context, category domain.FileCategory) (domain.FileCategory, error) {
	category.Name = strings.TrimSpace(category.Name)
	if category.Name == "" {
		return domain.FileCategory{}, domain.NewValidationError("name", "must not be empty")
	}

	category.ID = xid.New().String()
	category.CreatedAt = time.Now().UTC()

	if err := m.categoryRepository.Insert(ctx, category); err != nil {
		return domain.FileCategory{}, fmt.Errorf("failed to insert category: %w", err)
	}

	return category, nil
}

func (m *categoryManager) UpdateCategory(ctx context.Context, category domain.FileCategory) (domain.FileCategory, error) {
	category.Name = strings.TrimSpace(category.Name)
	if category.Name == "" {
		return domain.FileCategory{}, domain.NewValidationError("name", "must not be empty")
	}

	if _, err := m.categoryRepository.Get(ctx, category.UserID, category.ID); err != nil {
		return domain.FileCategory{}, fmt.Errorf("failed to get category: %w", err)
	}

	if err := m.categoryRepository.Update(ctx, category); err != nil {
		return domain.FileCategory{}, fmt.Errorf("failed to update category: %w", err)
	}

	return category, nil
}

// DeleteCategory removes the category and clears the association on files
// that referenced it. Files themselves are never deleted.
func (m *categoryManager) DeleteCategory(ctx context.Context, userID, categoryID string) error {
	if err := m.categoryRepository.Delete(ctx, userID, categoryID); err != nil {
		return fmt.Errorf("failed to delete category: %w", err)
	}

	if err := m.fileRepository.ClearCategory(ctx, userID, categoryID); err != nil {
		return fmt.Errorf("failed to clear category from files: %w", err)
	}

	return nil
}
