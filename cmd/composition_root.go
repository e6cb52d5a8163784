package cmd

import (
	"log/slog"

	"gorm.io/gorm"

	httpadapter "fluxi/internal/adapters/in/http"
	"fluxi/internal/adapters/out/postgres"
	"fluxi/internal/core/application/usecases/commands"
	"fluxi/internal/core/application/usecases/queries"
	"fluxi/internal/jobs"
)

type CompositionRoot struct {
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
	logger     *slog.Logger
}

func NewCompositionRoot(_ Config, gormDB *gorm.DB, logger *slog.Logger) CompositionRoot {
	return CompositionRoot{
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
		logger:     logger,
	}
}

func (c *CompositionRoot) courierUoWFactory() commands.CourierUoWFactory {
	return FuncCourierUoWFactory(func() commands.CourierUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) orderUoWFactory() commands.OrderUoWFactory {
	return FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) fullUoWFactory() commands.UoWFactory {
	return FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	return commands.NewCreateOrderCommandHandler(c.fullUoWFactory(), c.logger)
}

func (c *CompositionRoot) CreateAutoAssignOrderCommandHandler() commands.AutoAssignOrderCommandHandler {
	return commands.NewAutoAssignOrderCommandHandler(c.fullUoWFactory())
}

func (c *CompositionRoot) CreateAssignOrderCommandHandler() commands.AssignOrderCommandHandler {
	return commands.NewAssignOrderCommandHandler(c.fullUoWFactory())
}

func (c *CompositionRoot) CreateReassignOrderCommandHandler() commands.ReassignOrderCommandHandler {
	return commands.NewReassignOrderCommandHandler(c.fullUoWFactory())
}

func (c *CompositionRoot) CreateStartTransitCommandHandler() commands.StartTransitCommandHandler {
	return commands.NewStartTransitCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateCompleteOrderCommandHandler() commands.CompleteOrderCommandHandler {
	return commands.NewCompleteOrderCommandHandler(c.fullUoWFactory())
}

func (c *CompositionRoot) CreateCancelOrderCommandHandler() commands.CancelOrderCommandHandler {
	return commands.NewCancelOrderCommandHandler(c.fullUoWFactory())
}

func (c *CompositionRoot) CreateCreateCourierCommandHandler() commands.CreateCourierCommandHandler {
	return commands.NewCreateCourierCommandHandler(c.courierUoWFactory())
}

func (c *CompositionRoot) CreateSetCourierShiftCommandHandler() commands.SetCourierShiftCommandHandler {
	return commands.NewSetCourierShiftCommandHandler(c.fullUoWFactory())
}

func (c *CompositionRoot) CreateReportCourierLocationCommandHandler() commands.ReportCourierLocationCommandHandler {
	return commands.NewReportCourierLocationCommandHandler(c.courierUoWFactory())
}

func (c *CompositionRoot) CreateRemoveCourierCommandHandler() commands.RemoveCourierCommandHandler {
	return commands.NewRemoveCourierCommandHandler(c.fullUoWFactory())
}

func (c *CompositionRoot) CreateGetActiveOrdersQueryHandler() queries.GetActiveOrdersQueryHandler {
	return queries.NewGetActiveOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetOrdersByCourierQueryHandler() queries.GetOrdersByCourierQueryHandler {
	return queries.NewGetOrdersByCourierQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetOrdersByDateRangeQueryHandler() queries.GetOrdersByDateRangeQueryHandler {
	return queries.NewGetOrdersByDateRangeQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetAllCouriersQueryHandler() queries.GetAllCouriersQueryHandler {
	return queries.NewGetAllCouriersQueryHandler(c.gormDB)
}

// CreateHTTPServer wires every command and query handler into the REST API.
func (c *CompositionRoot) CreateHTTPServer() *httpadapter.Server {
	return httpadapter.NewServer(httpadapter.Handlers{
		CreateOrder:           c.CreateCreateOrderCommandHandler(),
		AutoAssignOrder:       c.CreateAutoAssignOrderCommandHandler(),
		AssignOrder:           c.CreateAssignOrderCommandHandler(),
		ReassignOrder:         c.CreateReassignOrderCommandHandler(),
		StartTransit:          c.CreateStartTransitCommandHandler(),
		CompleteOrder:         c.CreateCompleteOrderCommandHandler(),
		CancelOrder:           c.CreateCancelOrderCommandHandler(),
		CreateCourier:         c.CreateCreateCourierCommandHandler(),
		SetCourierShift:       c.CreateSetCourierShiftCommandHandler(),
		ReportCourierLocation: c.CreateReportCourierLocationCommandHandler(),
		RemoveCourier:         c.CreateRemoveCourierCommandHandler(),

		GetActiveOrders:      c.CreateGetActiveOrdersQueryHandler(),
		GetOrdersByCourier:   c.CreateGetOrdersByCourierQueryHandler(),
		GetOrdersByDateRange: c.CreateGetOrdersByDateRangeQueryHandler(),
		GetAllCouriers:       c.CreateGetAllCouriersQueryHandler(),
	})
}

// CreateJobManager wires the background assignment retry job.
func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	return jobs.NewJobManager(c.CreateAutoAssignOrderCommandHandler(), c.logger)
}

type FuncCourierUoWFactory func() commands.CourierUoW

func (f FuncCourierUoWFactory) Create() commands.CourierUoW {
	return f()
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncUoWFactory func() commands.UoW

func (f FuncUoWFactory) Create() commands.UoW {
	return f()
}
