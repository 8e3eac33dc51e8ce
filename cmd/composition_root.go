package cmd

import (
	"log/slog"

	httpin "marketplace/internal/adapters/in/http"
	"marketplace/internal/adapters/out/postgres"
	"marketplace/internal/adapters/out/redisbus"
	"marketplace/internal/adapters/out/rediscart"
	"marketplace/internal/core/application/usecases/commands"
	"marketplace/internal/core/application/usecases/queries"
	"marketplace/internal/core/ports"
	"marketplace/internal/jobs"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// CompositionRoot wires adapters to use cases. It owns the shared
// infrastructure handles (database, redis, logger) and builds a fresh handler
// per request path.
type CompositionRoot struct {
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
	notifier   ports.NotificationPublisher
	cartStore  ports.CartStore
	logger     *slog.Logger
}

// NewCompositionRoot assembles the application's dependency graph.
func NewCompositionRoot(_ Config, gormDB *gorm.DB, redisClient *redis.Client, logger *slog.Logger) CompositionRoot {
	return CompositionRoot{
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
		notifier:   redisbus.NewPublisher(redisClient, logger),
		cartStore:  rediscart.NewStore(redisClient),
		logger:     logger,
	}
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	var f commands.OrderProductUoWFactory = FuncOrderProductUoWFactory(func() commands.OrderProductUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateOrderCommandHandler(f, c.notifier)
}

func (c *CompositionRoot) CreateCancelOrderCommandHandler() commands.CancelOrderCommandHandler {
	var f commands.OrderProductUoWFactory = FuncOrderProductUoWFactory(func() commands.OrderProductUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCancelOrderCommandHandler(f, c.notifier)
}

func (c *CompositionRoot) CreateUpdateOrderStatusCommandHandler() commands.UpdateOrderStatusCommandHandler {
	var f commands.UoWFactory = FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
	return commands.NewUpdateOrderStatusCommandHandler(f, c.notifier)
}

func (c *CompositionRoot) CreateAssignAgentCommandHandler() commands.AssignAgentCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewAssignAgentCommandHandler(f, c.notifier)
}

func (c *CompositionRoot) CreateUpdateDeliveryStatusCommandHandler() commands.UpdateDeliveryStatusCommandHandler {
	var f commands.OrderUserUoWFactory = FuncOrderUserUoWFactory(func() commands.OrderUserUoW {
		return c.uowFactory.Create()
	})
	return commands.NewUpdateDeliveryStatusCommandHandler(f, c.notifier)
}

func (c *CompositionRoot) CreateCompleteDeliveryCommandHandler() commands.CompleteDeliveryCommandHandler {
	var f commands.OrderUserUoWFactory = FuncOrderUserUoWFactory(func() commands.OrderUserUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCompleteDeliveryCommandHandler(f, c.notifier)
}

func (c *CompositionRoot) CreateReportIssueCommandHandler() commands.ReportIssueCommandHandler {
	var f commands.OrderUserUoWFactory = FuncOrderUserUoWFactory(func() commands.OrderUserUoW {
		return c.uowFactory.Create()
	})
	return commands.NewReportIssueCommandHandler(f, c.notifier)
}

func (c *CompositionRoot) CreateTrackOrderQueryHandler() queries.TrackOrderQueryHandler {
	return queries.NewTrackOrderQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetAgentEarningsQueryHandler() queries.GetAgentEarningsQueryHandler {
	return queries.NewGetAgentEarningsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetOverdueDeliveriesQueryHandler() queries.GetOverdueDeliveriesQueryHandler {
	return queries.NewGetOverdueDeliveriesQueryHandler(c.gormDB)
}

// CreateHTTPServer builds the inbound HTTP adapter with every handler wired.
func (c *CompositionRoot) CreateHTTPServer() *httpin.Server {
	return httpin.NewServer(
		c.CreateCreateOrderCommandHandler(),
		c.CreateCancelOrderCommandHandler(),
		c.CreateUpdateOrderStatusCommandHandler(),
		c.CreateAssignAgentCommandHandler(),
		c.CreateUpdateDeliveryStatusCommandHandler(),
		c.CreateCompleteDeliveryCommandHandler(),
		c.CreateReportIssueCommandHandler(),
		c.CreateTrackOrderQueryHandler(),
		c.CreateGetAgentEarningsQueryHandler(),
		c.CreateGetOverdueDeliveriesQueryHandler(),
		c.cartStore,
	)
}

// CreateJobManager builds the background job manager.
func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	return jobs.NewJobManager(&c.uowFactory, c.notifier, c.logger)
}

// FuncOrderUoWFactory adapts a closure to the commands.OrderUoWFactory interface.
type FuncOrderUoWFactory func() commands.OrderUoW

// Create builds a unit of work by invoking the wrapped closure.
func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

// FuncOrderProductUoWFactory adapts a closure to the commands.OrderProductUoWFactory interface.
type FuncOrderProductUoWFactory func() commands.OrderProductUoW

// Create builds a unit of work by invoking the wrapped closure.
func (f FuncOrderProductUoWFactory) Create() commands.OrderProductUoW {
	return f()
}

// FuncOrderUserUoWFactory adapts a closure to the commands.OrderUserUoWFactory interface.
type FuncOrderUserUoWFactory func() commands.OrderUserUoW

// Create builds a unit of work by invoking the wrapped closure.
func (f FuncOrderUserUoWFactory) Create() commands.OrderUserUoW {
	return f()
}

// FuncUoWFactory adapts a closure to the commands.UoWFactory interface.
type FuncUoWFactory func() commands.UoW

// Create builds a unit of work by invoking the wrapped closure.
func (f FuncUoWFactory) Create() commands.UoW {
	return f()
}
