package controllers

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mateenqamar1122/Hyperlans-sub002/internal/domain"
)

type stubFileService struct {
	domain.FileService
	chain []domain.Breadcrumb
	err   error
}

func (s *stubFileService) AncestorChain(_ context.Context, _, _ string) ([]domain.Breadcrumb, error) {
	return s.chain, s.err
}

func newBreadcrumbApp(service domain.FileService) *fiber.App {
	controller := NewFileController(FileControllerDependencies{FileService: service})

	app := fiber.New()
	app.Get("/files/:entryID/breadcrumbs", controller.AncestorChain)

	return app
}

func TestAncestorChainResponse(t *testing.T) {
	t.Run("full chain", func(t *testing.T) {
		app := newBreadcrumbApp(&stubFileService{
			chain: []domain.Breadcrumb{{ID: "root", Name: "root"}, {ID: "leaf", Name: "leaf"}},
		})

		res, err := app.Test(httptest.NewRequest("GET", "/files/leaf/breadcrumbs", nil))
		require.NoError(t, err)
		defer res.Body.Close()
		require.Equal(t, fiber.StatusOK, res.StatusCode)

		var body struct {
			Breadcrumbs []domain.Breadcrumb `json:"breadcrumbs"`
			Incomplete  bool                `json:"incomplete"`
		}
		require.NoError(t, json.NewDecoder(res.Body).Decode(&body))
		assert.Len(t, body.Breadcrumbs, 2)
		assert.False(t, body.Incomplete)
	})

	t.Run("broken ancestor degrades to the resolvable suffix", func(t *testing.T) {
		app := newBreadcrumbApp(&stubFileService{
			chain: []domain.Breadcrumb{{ID: "leaf", Name: "leaf"}},
			err:   fmt.Errorf("ancestor gone: %w", domain.ErrNotFound),
		})

		res, err := app.Test(httptest.NewRequest("GET", "/files/leaf/breadcrumbs", nil))
		require.NoError(t, err)
		defer res.Body.Close()
		require.Equal(t, fiber.StatusOK, res.StatusCode)

		var body struct {
			Breadcrumbs []domain.Breadcrumb `json:"breadcrumbs"`
			Incomplete  bool                `json:"incomplete"`
		}
		require.NoError(t, json.NewDecoder(res.Body).Decode(&body))
		require.Len(t, body.Breadcrumbs, 1)
		assert.Equal(t, "leaf", body.Breadcrumbs[0].Name)
		assert.True(t, body.Incomplete)
	})

	t.Run("nothing resolvable is a 404", func(t *testing.T) {
		app := newBreadcrumbApp(&stubFileService{err: domain.ErrNotFound})

		res, err := app.Test(httptest.NewRequest("GET", "/files/leaf/breadcrumbs", nil))
		require.NoError(t, err)
		defer res.Body.Close()
		assert.Equal(t, fiber.StatusNotFound, res.StatusCode)
	})
}
