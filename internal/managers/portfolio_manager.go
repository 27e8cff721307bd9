package managers

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/mateenqamar1122/Hyperlans-sub002/internal/domain"
	"github.com/mateenqamar1122/Hyperlans-sub002/internal/export"

	"github.com/gosimple/slug"
	"github.com/rs/xid"
)

type portfolioManager struct {
	portfolioRepository domain.PortfolioRepository
	pdfRenderer         domain.PDFRenderer
}

type PortfolioManagerDependencies struct {
	PortfolioRepository domain.PortfolioRepository
	PDFRenderer         domain.PDFRenderer
}

func NewPortfolioManager(deps PortfolioManagerDependencies) domain.PortfolioService {
	return &portfolioManager{
		portfolioRepository: deps.PortfolioRepository,
		pdfRenderer:         deps.PDFRenderer,
	}
}

func (m *portfolioManager) ListPortfolios(ctx context.Context, userID string) ([]domain.Portfolio, error) {
	portfolios, err := m.portfolioRepository.List(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list portfolios: %w", err)
	}
	return portfolios, nil
}

func (m *portfolioManager) GetPortfolio(ctx context.Context, userID, portfolioID string) (domain.Portfolio, error) {
	portfolio, err := m.portfolioRepository.Get(ctx, userID, portfolioID)
	if err != nil {
		return domain.Portfolio{}, fmt.Errorf("failed to get portfolio: %w", err)
	}
	return portfolio, nil
}

func (m *portfolioManager) GetPublished(ctx context.Context, slugValue string) (domain.Portfolio, error) {
	portfolio, err := m.portfolioRepository.GetBySlug(ctx, slugValue)
	if err != nil {
		return domain.Portfolio{}, fmt.Errorf("failed to get portfolio by slug: %w", err)
	}
	if !portfolio.Published {
		return domain.Portfolio{}, domain.ErrNotFound
	}
	return portfolio, nil
}

func (m *portfolioManager) CreatePortfolio(ctx context.Context, portfolio domain.Portfolio) (domain.Portfolio, error) {
	portfolio.Title = strings.TrimSpace(portfolio.Title)
	if portfolio.Title == "" {
		return domain.Portfolio{}, domain.NewValidationError("title", "must not be empty")
	}

	generated, err := m.uniqueSlug(ctx, portfolio.Title)
	if err != nil {
		return domain.Portfolio{}, err
	}

	portfolio.ID = xid.New().String()
	portfolio.Slug = generated
	portfolio.Published = false
	now := time.Now().UTC()
	portfolio.CreatedAt = now
	portfolio.UpdatedAt = now

	if err := m.portfolioRepository.Insert(ctx, portfolio); err != nil {
		return domain.Portfolio{}, fmt.Errorf("failed to insert portfolio: %w", err)
	}

	return portfolio, nil
}

// uniqueSlug slugifies the title and suffixes a counter until the slug is
// free. Uniqueness is global: the public URL carries only the slug.
func (m *portfolioManager) uniqueSlug(ctx context.Context, title string) (string, error) {
	base := slug.Make(title)
	candidate := base

	for i := 2; ; i++ {
		exists, err := m.portfolioRepository.SlugExists(ctx, candidate)
		if err != nil {
			return "", fmt.Errorf("failed to check slug: %w", err)
		}
		if !exists {
			return candidate, nil
		}
		candidate = fmt.Sprintf("%s-%d", base, i)
	}
}

func (m *portfolioManager) UpdatePortfolio(ctx context.Context, portfolio domain.Portfolio) (domain.Portfolio, error) {
	portfolio.Title = strings.TrimSpace(portfolio.Title)
	if portfolio.Title == "" {
		return domain.Portfolio{}, domain.NewValidationError("title", "must not be empty")
	}

	existing, err := m.portfolioRepository.Get(ctx, portfolio.UserID, portfolio.ID)
	if err != nil {
		return domain.Portfolio{}, fmt.Errorf("failed to get portfolio: %w", err)
	}

	// The slug is stable after creation; published links keep working.
	portfolio.Slug = existing.Slug
	portfolio.Published = existing.Published
	portfolio.CreatedAt = existing.CreatedAt
	portfolio.UpdatedAt = time.Now().UTC()

	if err := m.portfolioRepository.Update(ctx, portfolio); err != nil {
		return domain.Portfolio{}, fmt.Errorf("failed to update portfolio: %w", err)
	}

	return portfolio, nil
}

func (m *portfolioManager) SetPublished(ctx context.Context, userID, portfolioID string, published bool) (domain.Portfolio, error) {
	portfolio, err := m.portfolioRepository.Get(ctx, userID, portfolioID)
	if err != nil {
		return domain.Portfolio{}, fmt.Errorf("failed to get portfolio: %w", err)
	}

	portfolio.Published = published
	portfolio.UpdatedAt = time.Now().UTC()

	if err := m.portfolioRepository.Update(ctx, portfolio); err != nil {
		return domain.Portfolio{}, fmt.Errorf("failed to update portfolio: %w", err)
	}

	return portfolio, nil
}

func (m *portfolioManager) DeletePortfolio(ctx context.Context, userID, portfolioID string) error {
	if err := m.portfolioRepository.Delete(ctx, userID, portfolioID); err != nil {
		return fmt.Errorf("failed to delete portfolio: %w", err)
	}
	return nil
}

func (m *portfolioManager) ExportPDF(ctx context.Context, userID, portfolioID string) ([]byte, error) {
	portfolio, err := m.portfolioRepository.Get(ctx, userID, portfolioID)
	if err != nil {
		return nil, fmt.Errorf("failed to get portfolio: %w", err)
	}

	html, err := export.PortfolioHTML(portfolio)
	if err != nil {
		return nil, fmt.Errorf("failed to render portfolio: %w", err)
	}

	pdf, err := m.pdfRenderer.RenderPDF(ctx, html)
	if err != nil {
		return nil, fmt.Errorf("failed to render pdf: %w", err)
	}

	return pdf, nil
}
