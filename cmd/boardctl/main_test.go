package main

import (
	"bytes"
	"context"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"outing-board-backend/internal/api/routes"
	"outing-board-backend/internal/auth"
	"outing-board-backend/internal/config"
	apperrors "outing-board-backend/internal/errors"
	"outing-board-backend/internal/models"
	"outing-board-backend/internal/repository"
	"outing-board-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"
)

type BoardctlTestSuite struct {
	suite.Suite
	server *httptest.Server
	board  *service.Board
}

func (s *BoardctlTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)

	cfg := &config.Config{
		KVBackend:      config.KVBackendMemory,
		BoardUser:      "congre",
		BoardPassword:  "congre",
		EditorUser:     "editor",
		EditorPassword: "secret",
	}
	store := repository.NewMemoryKeyValueRepository()

	board, err := service.NewBoard(context.Background(), service.BoardOptions{
		Store:                store,
		Credentials:          auth.CredentialsFromConfig(cfg),
		EditorTokenTTL:       time.Hour,
		SuggestionTimeout:    time.Second,
		AnnouncementDuration: models.DefaultAnnouncementDuration,
		SeedRoster:           true,
	})
	s.Require().NoError(err)

	s.board = board
	s.server = httptest.NewServer(routes.SetupRoutes(board, store, cfg))
}

func (s *BoardctlTestSuite) TearDownTest() {
	s.server.Close()
	s.board.Close()
}

// run executes boardctl with stdin and returns its output
func (s *BoardctlTestSuite) run(stdin string, args ...string) (string, error) {
	var out bytes.Buffer
	cmd := newRootCmd(strings.NewReader(stdin), &out)
	cmd.SetArgs(append([]string{"--server", s.server.URL}, args...))
	err := cmd.Execute()
	return out.String(), err
}

func (s *BoardctlTestSuite) unlock() string {
	_, err := s.run("", "login", "-u", "congre", "-p", "congre")
	s.Require().NoError(err)

	out, err := s.run("", "unlock", "-u", "editor", "-p", "secret")
	s.Require().NoError(err)
	return strings.TrimSpace(out)
}

func (s *BoardctlTestSuite) TestListRequiresLogin() {
	_, err := s.run("", "list")
	s.Require().Error(err)
	s.True(apperrors.IsAuthentication(err))
}

func (s *BoardctlTestSuite) TestLoginAndList() {
	_, err := s.run("", "login", "-u", " CONGRE ", "-p", "congre")
	s.Require().NoError(err)

	out, err := s.run("", "list")
	s.Require().NoError(err)
	s.Contains(out, "MEETING PLACE")
	s.Contains(out, "Sábado")
}

func (s *BoardctlTestSuite) TestWrongPassword() {
	_, err := s.run("", "login", "-u", "congre", "-p", "nope")
	s.Require().Error(err)
	s.Contains(err.Error(), "Credenciales incorrectas")
}

func (s *BoardctlTestSuite) TestEditLogsChange() {
	token := s.unlock()

	out, err := s.run("", "--token", token, "add")
	s.Require().NoError(err)
	id := strings.TrimSpace(out)
	s.NotEmpty(id)

	out, err = s.run("", "--token", token, "edit", id, "meetingPlace", "Plaza")
	s.Require().NoError(err)
	s.Contains(out, "Change logged")

	out, err = s.run("", "--token", token, "edit", id, "meetingPlace", "Plaza")
	s.Require().NoError(err)
	s.Contains(out, "No change")

	out, err = s.run("", "log")
	s.Require().NoError(err)
	s.Contains(out, `Se editó "Lugar de encuentro"`)
}

func (s *BoardctlTestSuite) TestEditMissingOuting() {
	token := s.unlock()
	_, err := s.run("", "--token", token, "edit", "missing", "day", "Martes")
	s.Require().Error(err)
	s.True(apperrors.IsNotFound(err))
}

func (s *BoardctlTestSuite) TestEditUnknownField() {
	token := s.unlock()
	_, err := s.run("", "--token", token, "edit", "any", "color", "red")
	s.Error(err)
}

func (s *BoardctlTestSuite) TestDeletePromptDeclined() {
	token := s.unlock()
	before := len(s.board.Roster.List())
	id := s.board.Roster.List()[0].ID

	out, err := s.run("n\n", "--token", token, "delete", id)
	s.Require().NoError(err)
	s.Contains(out, "¿Estás seguro de eliminar esta salida?")
	s.Contains(out, "Cancelled")
	s.Len(s.board.Roster.List(), before)
}

func (s *BoardctlTestSuite) TestDeletePromptAccepted() {
	token := s.unlock()
	before := len(s.board.Roster.List())
	id := s.board.Roster.List()[0].ID

	out, err := s.run("y\n", "--token", token, "delete", id)
	s.Require().NoError(err)
	s.Contains(out, "Deleted")
	s.Len(s.board.Roster.List(), before-1)
}

func (s *BoardctlTestSuite) TestDeleteWithoutTokenIsRejected() {
	_, err := s.run("", "login", "-u", "congre", "-p", "congre")
	s.Require().NoError(err)

	_, err = s.run("", "delete", "--yes", s.board.Roster.List()[0].ID)
	s.Error(err)
}

func (s *BoardctlTestSuite) TestSuggestFallsBackWithoutGenerator() {
	_, err := s.run("", "login", "-u", "congre", "-p", "congre")
	s.Require().NoError(err)

	out, err := s.run("", "suggest", "safety")
	s.Require().NoError(err)
	s.Contains(out, "- ")
}

func (s *BoardctlTestSuite) TestAnnounce() {
	token := s.unlock()

	out, err := s.run("", "--token", token, "announce", "Hoy salimos tarde", "-d", "20")
	s.Require().NoError(err)
	s.Contains(out, "20s")
	s.True(s.board.Announcement.Get().IsActive)

	_, err = s.run("", "--token", token, "announce", "--hide")
	s.Require().NoError(err)
	s.False(s.board.Announcement.Get().IsActive)
}

func (s *BoardctlTestSuite) TestAnnounceRejectsShortDuration() {
	token := s.unlock()
	_, err := s.run("", "--token", token, "announce", "hola", "-d", "2")
	s.Error(err)
}

func (s *BoardctlTestSuite) TestSaveLocksEditor() {
	token := s.unlock()

	_, err := s.run("", "--token", token, "save")
	s.Require().NoError(err)

	_, err = s.run("", "--token", token, "add")
	s.Require().Error(err)
	s.True(apperrors.IsAuthorization(err))
}

func (s *BoardctlTestSuite) TestLockRequiresToken() {
	token := s.unlock()

	_, err := s.run("", "lock")
	s.Require().Error(err)
	s.True(apperrors.IsAuthentication(err))

	out, err := s.run("", "--token", token, "lock")
	s.Require().NoError(err)
	s.Contains(out, "Editor locked")

	_, err = s.run("", "--token", token, "add")
	s.True(apperrors.IsAuthorization(err))
}

func TestBoardctlTestSuite(t *testing.T) {
	suite.Run(t, new(BoardctlTestSuite))
}
