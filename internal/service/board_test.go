package service_test

import (
	"context"
	"testing"
	"time"

	"outing-board-backend/internal/models"
	"outing-board-backend/internal/repository"
	"outing-board-backend/internal/service"
	"outing-board-backend/internal/testutils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestBoard(t *testing.T, seed bool) *service.Board {
	t.Helper()
	board, err := service.NewBoard(context.Background(), service.BoardOptions{
		Store:                repository.NewMemoryKeyValueRepository(),
		Clock:                testutils.NewFakeClock(time.Date(2025, 3, 1, 9, 0, 0, 0, time.Local)),
		Credentials:          testCredentials,
		EditorTokenTTL:       time.Hour,
		SuggestionTimeout:    time.Second,
		AnnouncementDuration: 20,
		SeedRoster:           seed,
	})
	require.NoError(t, err)
	t.Cleanup(board.Close)
	return board
}

func TestNewBoard(t *testing.T) {
	board := newTestBoard(t, true)

	assert.Len(t, board.Roster.List(), 3)
	assert.Empty(t, board.ChangeLog.Entries())
	assert.Equal(t, models.DefaultTheme(), board.Theme.Get())
	assert.Equal(t, 20, board.Announcement.Get().Duration)
	assert.False(t, board.Suggestions.GeneratorConfigured())
	assert.False(t, board.Session.ViewerGranted())
}

func TestNewBoardWithoutSeed(t *testing.T) {
	board := newTestBoard(t, false)
	assert.Empty(t, board.Roster.List())
}

func TestNewBoardRequiresStore(t *testing.T) {
	_, err := service.NewBoard(context.Background(), service.BoardOptions{Credentials: testCredentials})
	assert.Error(t, err)
}

func TestBoardSaveLocksEditor(t *testing.T) {
	board := newTestBoard(t, true)
	ctx := context.Background()

	resp, err := board.Session.UnlockEditor(ctx, &service.LoginRequest{Username: "ItaembeMini", Password: "Ita2025"})
	require.NoError(t, err)

	entry := board.Save()
	assert.Equal(t, models.ActionSettings, entry.Action)
	assert.Equal(t, "Guardado manual completado", entry.Description)
	assert.Equal(t, "09:00", entry.Timestamp)

	_, err = board.Session.ValidateEditorToken(resp.Token)
	assert.Error(t, err)
	assert.False(t, board.Session.State().EditorUnlocked)

	entries := board.ChangeLog.Entries()
	require.Len(t, entries, 2)
	assert.Equal(t, "Guardado manual completado", entries[0].Description)
	assert.Equal(t, "Administrador inició sesión", entries[1].Description)
}
