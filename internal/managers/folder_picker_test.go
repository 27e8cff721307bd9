package managers

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFolderPicker(t *testing.T) {
	service, _, _ := newFileManagerForTest()

	docs := mustCreateFolder(t, service, "Docs", nil)
	mustCreateFolder(t, service, "Archive", nil)
	mustCreateFolder(t, service, "Contracts", &docs.ID)
	mustUploadFile(t, service, "notes.txt", nil, "scratch")

	picker := NewFolderPicker(service, testUserID)

	t.Run("root shows folders only", func(t *testing.T) {
		roots, err := picker.Expand(context.Background(), nil)
		require.NoError(t, err)

		names := make([]string, 0, len(roots))
		for _, entry := range roots {
			names = append(names, entry.Name)
		}
		assert.Equal(t, []string{"Archive", "Docs"}, names)
	})

	t.Run("expanding a node lists its subfolders", func(t *testing.T) {
		children, err := picker.Expand(context.Background(), &docs.ID)
		require.NoError(t, err)
		require.Len(t, children, 1)
		assert.Equal(t, "Contracts", children[0].Name)
	})

	t.Run("expansions are memoized", func(t *testing.T) {
		before, err := picker.Expand(context.Background(), nil)
		require.NoError(t, err)

		// A folder created after the first expansion is not visible to
		// this picker instance.
		mustCreateFolder(t, service, "Later", nil)

		after, err := picker.Expand(context.Background(), nil)
		require.NoError(t, err)
		assert.Equal(t, before, after)
	})
}
