//go:build integration
// +build integration

package repository

import (
	"context"
	"testing"

	"outing-board-backend/internal/models"
	"outing-board-backend/internal/testutils"

	"github.com/stretchr/testify/suite"
)

// GormKeyValueRepositoryTestSuite tests the GormKeyValueRepository against Postgres
type GormKeyValueRepositoryTestSuite struct {
	suite.Suite
	postgres *testutils.PostgresFixture
	repo     *GormKeyValueRepository
}

// SetupSuite runs before all tests in the suite
func (suite *GormKeyValueRepositoryTestSuite) SetupSuite() {
	suite.postgres = testutils.SetupPostgres(suite.T())
	suite.repo = NewGormKeyValueRepository(suite.postgres.DB)
}

// SetupTest runs before each test
func (suite *GormKeyValueRepositoryTestSuite) SetupTest() {
	suite.postgres.Reset()
}

// TestContract runs the shared backend contract
func (suite *GormKeyValueRepositoryTestSuite) TestContract() {
	runKeyValueContract(suite.T(), suite.repo)
}

// TestSetUpdatesTimestamp checks that overwriting refreshes updated_at
func (suite *GormKeyValueRepositoryTestSuite) TestSetUpdatesTimestamp() {
	ctx := context.Background()
	suite.Require().NoError(suite.repo.Set(ctx, "k", "1"))

	var first models.AppSetting
	suite.Require().NoError(suite.postgres.DB.First(&first, "key = ?", "k").Error)

	suite.Require().NoError(suite.repo.Set(ctx, "k", "2"))

	var second models.AppSetting
	suite.Require().NoError(suite.postgres.DB.First(&second, "key = ?", "k").Error)
	suite.Equal("2", second.Value)
	suite.False(second.UpdatedAt.Before(first.UpdatedAt))
}

// TestGormKeyValueRepositoryTestSuite runs the test suite
func TestGormKeyValueRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(GormKeyValueRepositoryTestSuite))
}
