package cmd

import (
	"log/slog"
	"time"

	"dispatch/internal/adapters/out/driverapi"
	"dispatch/internal/adapters/out/fleetapi"
	"dispatch/internal/adapters/out/postgres"
	"dispatch/internal/adapters/out/postgres/syncrepo"
	"dispatch/internal/core/application/usecases/commands"
	"dispatch/internal/core/application/usecases/queries"
	"dispatch/internal/core/ports"
	"dispatch/internal/jobs"
	"dispatch/internal/pkg/joblock"

	"gorm.io/gorm"
)

const defaultRegistryTimeout = 5 * time.Second

type CompositionRoot struct {
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
	vehicles   ports.VehicleRegistry
	drivers    ports.DriverRegistry
	locks      *joblock.KeyedMutex
	logger     *slog.Logger
}

func NewCompositionRoot(configs Config, gormDB *gorm.DB, logger *slog.Logger) CompositionRoot {
	timeout := defaultRegistryTimeout
	if configs.RegistryTimeout != "" {
		if parsed, err := time.ParseDuration(configs.RegistryTimeout); err == nil {
			timeout = parsed
		}
	}

	return CompositionRoot{
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
		vehicles:   fleetapi.NewClient(configs.FleetServiceURL, timeout),
		drivers:    driverapi.NewClient(configs.DriverServiceURL, timeout),
		locks:      joblock.NewKeyedMutex(),
		logger:     logger,
	}
}

func (c *CompositionRoot) CreateCreateJobCommandHandler() commands.CreateJobCommandHandler {
	var f commands.UoWFactory = FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateJobCommandHandler(f, c.vehicles, c.drivers, c.logger)
}

func (c *CompositionRoot) CreateMarkArrivalCommandHandler() commands.MarkArrivalCommandHandler {
	var f commands.UoWFactory = FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
	return commands.NewMarkArrivalCommandHandler(f, c.vehicles, c.drivers, c.locks, c.logger)
}

func (c *CompositionRoot) CreateMarkStopCommandHandler() commands.MarkStopCommandHandler {
	var f commands.JobUoWFactory = FuncJobUoWFactory(func() commands.JobUoW {
		return c.uowFactory.Create()
	})
	return commands.NewMarkStopCommandHandler(f, c.locks, c.logger)
}

func (c *CompositionRoot) CreateRaiseEmergencyCommandHandler() commands.RaiseEmergencyCommandHandler {
	var f commands.UoWFactory = FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
	return commands.NewRaiseEmergencyCommandHandler(f, c.vehicles, c.locks, c.logger)
}

func (c *CompositionRoot) CreateUpdateJobCommandHandler() commands.UpdateJobCommandHandler {
	var f commands.JobUoWFactory = FuncJobUoWFactory(func() commands.JobUoW {
		return c.uowFactory.Create()
	})
	return commands.NewUpdateJobCommandHandler(f, c.locks)
}

func (c *CompositionRoot) CreateDeleteJobCommandHandler() commands.DeleteJobCommandHandler {
	var f commands.JobUoWFactory = FuncJobUoWFactory(func() commands.JobUoW {
		return c.uowFactory.Create()
	})
	return commands.NewDeleteJobCommandHandler(f, c.locks)
}

func (c *CompositionRoot) CreateGetAllJobsQueryHandler() queries.GetAllJobsQueryHandler {
	return queries.NewGetAllJobsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetJobQueryHandler() queries.GetJobQueryHandler {
	return queries.NewGetJobQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	return jobs.NewJobManager(
		syncrepo.NewGormSyncTaskRepository(c.gormDB),
		c.vehicles,
		c.drivers,
		c.logger,
	)
}

type FuncUoWFactory func() commands.UoW

func (f FuncUoWFactory) Create() commands.UoW {
	return f()
}

type FuncJobUoWFactory func() commands.JobUoW

func (f FuncJobUoWFactory) Create() commands.JobUoW {
	return f()
}
