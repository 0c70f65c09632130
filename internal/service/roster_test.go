package service_test

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	apperrors "outing-board-backend/internal/errors"
	"outing-board-backend/internal/mocks"
	"outing-board-backend/internal/models"
	"outing-board-backend/internal/service"
	"outing-board-backend/internal/testutils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

// RosterServiceTestSuite defines the test suite for RosterService
type RosterServiceTestSuite struct {
	suite.Suite
	ctrl      *gomock.Controller
	clock     *testutils.FakeClock
	changeLog *service.ChangeLogService
	roster    *service.RosterService
	factory   *testutils.OutingFactory
	seeded    models.OutingRecord
}

// SetupTest sets up the test suite
func (suite *RosterServiceTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.clock = testutils.NewFakeClock(time.Date(2025, 3, 1, 9, 5, 0, 0, time.Local))
	suite.changeLog = service.NewChangeLogService(suite.clock)
	suite.factory = testutils.NewOutingFactory()
	suite.seeded = suite.factory.WithSchedule("Sábado", "9:30am")
	suite.roster = service.NewRosterService(suite.changeLog, []models.OutingRecord{suite.seeded})
}

// TearDownTest cleans up after each test
func (suite *RosterServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *RosterServiceTestSuite) TestNewRosterAssignsMissingIDs() {
	roster := service.NewRosterService(suite.changeLog, models.SeedOutings())

	outings := roster.List()
	suite.Require().Len(outings, 3)
	seen := map[string]bool{}
	for _, o := range outings {
		suite.NotEmpty(o.ID)
		suite.False(seen[o.ID])
		seen[o.ID] = true
	}
	suite.Equal("Sábado", outings[0].Day)
	suite.Equal("Domingo", outings[2].Day)
	suite.Empty(suite.changeLog.Entries())
}

func (suite *RosterServiceTestSuite) TestCreate() {
	created := suite.roster.Create()

	suite.NotEmpty(created.ID)
	suite.Equal("Lunes", created.Day)
	suite.Equal("00:00", created.Time)
	suite.Equal("", created.Group)
	suite.Equal("Nueva Salida", created.MeetingPlace)
	suite.Equal("Dirección...", created.Address)
	suite.Equal("Territorios...", created.Territories)
	suite.Equal("Conductor...", created.Conductor)
	suite.Equal("", created.MapsLink)

	outings := suite.roster.List()
	suite.Require().Len(outings, 2)
	suite.Equal(created.ID, outings[1].ID)

	entries := suite.changeLog.Entries()
	suite.Require().Len(entries, 1)
	suite.Equal(models.ActionCreate, entries[0].Action)
	suite.Equal("Se agregó una nueva tarjeta de salida", entries[0].Description)
	suite.Equal("09:05", entries[0].Timestamp)
}

func (suite *RosterServiceTestSuite) TestCreateIDsAreUnique() {
	ids := map[string]bool{suite.seeded.ID: true}
	for i := 0; i < 50; i++ {
		o := suite.roster.Create()
		suite.False(ids[o.ID], "duplicate id %s", o.ID)
		ids[o.ID] = true
	}
}

func (suite *RosterServiceTestSuite) TestUpdateDoesNotLog() {
	err := suite.roster.Update(suite.seeded.ID, models.FieldMeetingPlace, "Plaza")
	suite.NoError(err)

	got, err := suite.roster.Get(suite.seeded.ID)
	suite.Require().NoError(err)
	suite.Equal("Plaza", got.MeetingPlace)
	suite.Empty(suite.changeLog.Entries())
}

func (suite *RosterServiceTestSuite) TestUpdateUnknownIDIsNoop() {
	err := suite.roster.Update("missing", models.FieldDay, "Martes")
	suite.NoError(err)
	suite.Equal([]models.OutingRecord{suite.seeded}, suite.roster.List())
}

func (suite *RosterServiceTestSuite) TestUpdateUnknownField() {
	err := suite.roster.Update(suite.seeded.ID, models.OutingField("color"), "red")
	suite.ErrorIs(err, apperrors.ErrUnknownField)
	suite.True(apperrors.IsValidation(err))
}

func (suite *RosterServiceTestSuite) TestCommitIfChanged() {
	testCases := []struct {
		name          string
		field         models.OutingField
		newValue      string
		previousValue string
		expectLogged  bool
		expectDesc    string
	}{
		{
			name:          "Changed meeting place",
			field:         models.FieldMeetingPlace,
			newValue:      "Plaza",
			previousValue: "Salón del Reino",
			expectLogged:  true,
			expectDesc:    "Se editó \"Lugar de encuentro\" en la salida de Sábado 9:30am",
		},
		{
			name:          "Changed maps link",
			field:         models.FieldMapsLink,
			newValue:      "https://maps.google.com/?q=1",
			previousValue: "https://maps.google.com",
			expectLogged:  true,
			expectDesc:    "Se editó \"Enlace de Mapa\" en la salida de Sábado 9:30am",
		},
		{
			name:          "Unchanged value",
			field:         models.FieldConductor,
			newValue:      "Conductor: Test",
			previousValue: "Conductor: Test",
			expectLogged:  false,
		},
	}

	for _, tc := range testCases {
		suite.Run(tc.name, func() {
			before := len(suite.changeLog.Entries())

			logged, err := suite.roster.CommitIfChanged(suite.seeded.ID, tc.field, tc.newValue, tc.previousValue)
			suite.Require().NoError(err)
			suite.Equal(tc.expectLogged, logged)

			entries := suite.changeLog.Entries()
			if !tc.expectLogged {
				suite.Len(entries, before)
				return
			}
			suite.Require().Len(entries, before+1)
			suite.Equal(models.ActionUpdate, entries[0].Action)
			suite.Equal(tc.expectDesc, entries[0].Description)
		})
	}
}

func (suite *RosterServiceTestSuite) TestCommitUsesCurrentSchedule() {
	suite.Require().NoError(suite.roster.Update(suite.seeded.ID, models.FieldDay, "Martes"))

	logged, err := suite.roster.CommitIfChanged(suite.seeded.ID, models.FieldDay, "Martes", "Sábado")
	suite.Require().NoError(err)
	suite.True(logged)
	suite.Equal("Se editó \"Día\" en la salida de Martes 9:30am", suite.changeLog.Entries()[0].Description)
}

func (suite *RosterServiceTestSuite) TestCommitUnknownIDIsNoop() {
	logged, err := suite.roster.CommitIfChanged("missing", models.FieldDay, "a", "b")
	suite.NoError(err)
	suite.False(logged)
	suite.Empty(suite.changeLog.Entries())
}

func (suite *RosterServiceTestSuite) TestCommitUnknownField() {
	_, err := suite.roster.CommitIfChanged(suite.seeded.ID, models.OutingField("color"), "a", "b")
	suite.ErrorIs(err, apperrors.ErrUnknownField)
}

func (suite *RosterServiceTestSuite) TestDeleteDeclined() {
	confirmer := mocks.NewMockConfirmer(suite.ctrl)
	confirmer.EXPECT().Confirm(gomock.Any(), service.DeletePrompt).Return(false, nil)

	deleted, err := suite.roster.Delete(context.Background(), suite.seeded.ID, confirmer)
	suite.NoError(err)
	suite.False(deleted)
	suite.Len(suite.roster.List(), 1)
	suite.Empty(suite.changeLog.Entries())
}

func (suite *RosterServiceTestSuite) TestDeleteConfirmed() {
	confirmer := mocks.NewMockConfirmer(suite.ctrl)
	confirmer.EXPECT().Confirm(gomock.Any(), service.DeletePrompt).Return(true, nil)

	deleted, err := suite.roster.Delete(context.Background(), suite.seeded.ID, confirmer)
	suite.NoError(err)
	suite.True(deleted)
	suite.Empty(suite.roster.List())

	entries := suite.changeLog.Entries()
	suite.Require().Len(entries, 1)
	suite.Equal(models.ActionDelete, entries[0].Action)
	suite.Equal("Se eliminó la salida de: Salón del Reino", entries[0].Description)
}

func (suite *RosterServiceTestSuite) TestDeleteUnknownIDDoesNotPrompt() {
	confirmer := mocks.NewMockConfirmer(suite.ctrl)

	deleted, err := suite.roster.Delete(context.Background(), "missing", confirmer)
	suite.NoError(err)
	suite.False(deleted)
}

func (suite *RosterServiceTestSuite) TestDeleteConfirmerError() {
	confirmer := mocks.NewMockConfirmer(suite.ctrl)
	confirmer.EXPECT().Confirm(gomock.Any(), gomock.Any()).Return(false, errors.New("stdin closed"))

	deleted, err := suite.roster.Delete(context.Background(), suite.seeded.ID, confirmer)
	suite.Error(err)
	suite.False(deleted)
	suite.Len(suite.roster.List(), 1)
}

func (suite *RosterServiceTestSuite) TestDeleteRemovedWhileConfirming() {
	confirmer := service.ConfirmFunc(func(ctx context.Context, prompt string) (bool, error) {
		// another caller removes the same record while this one waits
		_, err := suite.roster.Delete(ctx, suite.seeded.ID, service.Preconfirmed(true))
		suite.Require().NoError(err)
		return true, nil
	})

	deleted, err := suite.roster.Delete(context.Background(), suite.seeded.ID, confirmer)
	suite.NoError(err)
	suite.False(deleted)
	suite.Len(suite.changeLog.Entries(), 1)
}

func (suite *RosterServiceTestSuite) TestCreateDeleteSequence() {
	const created = 10
	ids := make([]string, 0, created)
	for i := 0; i < created; i++ {
		o := suite.roster.Create()
		suite.Require().NoError(suite.roster.Update(o.ID, models.FieldMeetingPlace, fmt.Sprintf("Lugar %d", i)))
		ids = append(ids, o.ID)
	}

	accept := mocks.NewMockConfirmer(suite.ctrl)
	accept.EXPECT().Confirm(gomock.Any(), service.DeletePrompt).Return(true, nil).Times(4)
	decline := mocks.NewMockConfirmer(suite.ctrl)
	decline.EXPECT().Confirm(gomock.Any(), service.DeletePrompt).Return(false, nil).Times(3)

	steps := []struct {
		id        string
		confirmer service.Confirmer
		deleted   bool
	}{
		{ids[1], decline, false},
		{ids[0], accept, true},
		{ids[3], decline, false},
		{ids[2], accept, true},
		{ids[5], decline, false},
		{ids[4], accept, true},
		{ids[6], accept, true},
	}
	for _, step := range steps {
		deleted, err := suite.roster.Delete(context.Background(), step.id, step.confirmer)
		suite.Require().NoError(err)
		suite.Equal(step.deleted, deleted)
	}

	outings := suite.roster.List()
	suite.Len(outings, 1+created-4)
	seen := map[string]bool{}
	for _, o := range outings {
		suite.False(seen[o.ID], "duplicate id %s", o.ID)
		seen[o.ID] = true
	}
	for _, gone := range []string{ids[0], ids[2], ids[4], ids[6]} {
		suite.False(seen[gone])
	}

	entries := suite.changeLog.Entries()
	suite.Require().Len(entries, created+4)
	suite.Equal("Se eliminó la salida de: Lugar 6", entries[0].Description)
	suite.Equal("Se eliminó la salida de: Lugar 4", entries[1].Description)
	suite.Equal("Se eliminó la salida de: Lugar 2", entries[2].Description)
	suite.Equal("Se eliminó la salida de: Lugar 0", entries[3].Description)
	for _, e := range entries[4:] {
		suite.Equal(models.ActionCreate, e.Action)
	}
}

func (suite *RosterServiceTestSuite) TestChangeLogRecordedUnderRosterLock() {
	changeLog := mocks.NewMockChangeLogServiceInterface(suite.ctrl)
	roster := service.NewRosterService(changeLog, []models.OutingRecord{suite.seeded})

	// a concurrent reader must wait until the entry is recorded
	var listed chan int
	assertBlocked := func(models.ChangeAction, string) models.ChangeLogEntry {
		listed = make(chan int, 1)
		go func() { listed <- len(roster.List()) }()
		select {
		case <-listed:
			suite.Fail("roster readable before the change was logged")
		case <-time.After(20 * time.Millisecond):
		}
		return models.ChangeLogEntry{}
	}
	changeLog.EXPECT().Record(models.ActionCreate, gomock.Any()).DoAndReturn(assertBlocked)
	changeLog.EXPECT().Record(models.ActionDelete, gomock.Any()).DoAndReturn(assertBlocked)

	roster.Create()
	suite.Equal(2, <-listed)

	deleted, err := roster.Delete(context.Background(), suite.seeded.ID, service.Preconfirmed(true))
	suite.Require().NoError(err)
	suite.True(deleted)
	suite.Equal(1, <-listed)
}

func (suite *RosterServiceTestSuite) TestListIsSnapshot() {
	outings := suite.roster.List()
	outings[0].Day = "Mutated"

	got, err := suite.roster.Get(suite.seeded.ID)
	suite.Require().NoError(err)
	suite.Equal("Sábado", got.Day)
}

func (suite *RosterServiceTestSuite) TestGetNotFound() {
	_, err := suite.roster.Get("missing")
	suite.True(apperrors.IsNotFound(err))
}

// TestRosterServiceTestSuite runs the test suite
func TestRosterServiceTestSuite(t *testing.T) {
	suite.Run(t, new(RosterServiceTestSuite))
}

func TestPreconfirmed(t *testing.T) {
	ok, err := service.Preconfirmed(true).Confirm(context.Background(), "")
	require.NoError(t, err)
	assert.True(t, ok)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = service.Preconfirmed(true).Confirm(ctx, "")
	assert.ErrorIs(t, err, context.Canceled)
}
