package queries_test

import (
	"context"
	"testing"
	"time"

	"dispatch/internal/adapters/out/postgres/jobrepo"
	"dispatch/internal/core/application/usecases/queries"
	"dispatch/internal/core/domain/model/job"
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/errs"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// GetJobQueryHandlerTestSuite exercises the by-id query against a real
// PostgreSQL schema.
type GetJobQueryHandlerTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
	handler   queries.GetJobQueryHandler
	jobRepo   *jobrepo.GormJobRepository
}

func (suite *GetJobQueryHandlerTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	suite.Require().NoError(err)
	suite.container = container

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(postgresdriver.Open(dsn), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	suite.Require().NoError(db.AutoMigrate(&jobrepo.JobDTO{}))

	suite.handler = queries.NewGetJobQueryHandler(db)
	suite.jobRepo = jobrepo.NewGormJobRepository(db, noopTracker{})
}

func (suite *GetJobQueryHandlerTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE jobs").Error)
}

func (suite *GetJobQueryHandlerTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *GetJobQueryHandlerTestSuite) TestHandle_ReturnsJob() {
	ctx := context.Background()

	stop, err := job.NewStop("Checkpoint 1")
	suite.Require().NoError(err)
	seeded, err := job.NewJob(kernel.NewUUID(), "Warehouse A", "Store B", []job.Stop{stop})
	suite.Require().NoError(err)
	suite.Require().NoError(seeded.Assign("v1", "d1"))
	suite.Require().NoError(suite.jobRepo.Add(ctx, seeded))

	query, err := queries.NewGetJobQuery(seeded.ID())
	suite.Require().NoError(err)

	jobResp, err := suite.handler.Handle(ctx, query)
	suite.Require().NoError(err)
	suite.Equal(seeded.ID().String(), jobResp.ID.String())
	suite.Equal("Warehouse A", jobResp.Pickup)
	suite.Equal("IN_PROGRESS", jobResp.Status)
	suite.Require().Len(jobResp.Stops, 1)
	suite.Equal("Checkpoint 1", jobResp.Stops[0].Name)
}

func (suite *GetJobQueryHandlerTestSuite) TestHandle_UnknownJob_NotFound() {
	query, err := queries.NewGetJobQuery(kernel.NewUUID())
	suite.Require().NoError(err)

	_, err = suite.handler.Handle(context.Background(), query)
	suite.Require().Error(err)
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func TestGetJobQueryHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(GetJobQueryHandlerTestSuite))
}
