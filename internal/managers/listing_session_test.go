package managers

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/mateenqamar1122/Hyperlans-sub002/internal/domain"
)

func TestListingSession(t *testing.T) {
	folderA := "folder-a"
	folderB := "folder-b"

	t.Run("stale delivery is discarded", func(t *testing.T) {
		session := NewListingSession()

		slowTicket := session.Begin(domain.ListingScope{ParentFolderID: &folderA, View: domain.ListViewActive})
		fastTicket := session.Begin(domain.ListingScope{ParentFolderID: &folderB, View: domain.ListViewActive})

		assert.True(t, session.Deliver(fastTicket, []domain.FileEntry{{ID: "b-1"}}))
		assert.False(t, session.Deliver(slowTicket, []domain.FileEntry{{ID: "a-1"}}))

		scope, entries := session.Current()
		assert.Equal(t, folderB, *scope.ParentFolderID)
		assert.Len(t, entries, 1)
		assert.Equal(t, "b-1", entries[0].ID)
	})

	t.Run("delivery for the current ticket applies", func(t *testing.T) {
		session := NewListingSession()

		ticket := session.Begin(domain.ListingScope{View: domain.ListViewActive})
		assert.True(t, session.Deliver(ticket, []domain.FileEntry{{ID: "root-1"}}))

		_, entries := session.Current()
		assert.Len(t, entries, 1)
	})

	t.Run("revisiting the same scope still invalidates older tickets", func(t *testing.T) {
		session := NewListingSession()

		scope := domain.ListingScope{ParentFolderID: &folderA, View: domain.ListViewActive}
		first := session.Begin(scope)
		second := session.Begin(scope)

		assert.False(t, session.Deliver(first, nil))
		assert.True(t, session.Deliver(second, []domain.FileEntry{{ID: "a-2"}}))
	})
}

func TestSelectionScope(t *testing.T) {
	folderA := "folder-a"
	folderB := "folder-b"

	selection := domain.NewSelection(domain.ListingScope{ParentFolderID: &folderA, View: domain.ListViewActive})

	selection.Toggle("x")
	selection.Toggle("y")
	assert.Equal(t, 2, selection.Count())

	// Same scope keeps the selection.
	selection.SetScope(domain.ListingScope{ParentFolderID: &folderA, View: domain.ListViewActive})
	assert.Equal(t, 2, selection.Count())

	// Navigating elsewhere clears it.
	selection.SetScope(domain.ListingScope{ParentFolderID: &folderB, View: domain.ListViewActive})
	assert.Zero(t, selection.Count())
	assert.False(t, selection.Contains("x"))
}
