package cmd

import (
	"fulfillment/internal/adapters/out/llm"
	"fulfillment/internal/adapters/out/postgres"
	"fulfillment/internal/core/application/usecases/commands"
	"fulfillment/internal/core/application/usecases/queries"
	"fulfillment/internal/core/domain/services"
	"fulfillment/internal/core/ports"

	"github.com/labstack/gommon/log"
	"gorm.io/gorm"
)

type CompositionRoot struct {
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
	aggregator services.OrderAggregator
	planner    ports.RoutePlanner
	depot      string
}

func NewCompositionRoot(configs Config, gormDB *gorm.DB) CompositionRoot {
	planner, err := llm.NewChatRoutePlanner(
		configs.RouteLLMBaseURL,
		configs.RouteLLMAPIKey,
		configs.RouteLLMModel,
	)
	if err != nil {
		log.Fatalf("cannot create route planner: %v", err)
	}

	return CompositionRoot{
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
		aggregator: services.NewOrderAggregator(),
		planner:    planner,
		depot:      configs.RouteDepot,
	}
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateOrderCommandHandler(f)
}

func (c *CompositionRoot) CreateAdvanceOrderCommandHandler() commands.AdvanceOrderCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewAdvanceOrderCommandHandler(f)
}

func (c *CompositionRoot) CreateResetOrdersCommandHandler() commands.ResetOrdersCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewResetOrdersCommandHandler(f)
}

func (c *CompositionRoot) CreateRegisterStaffCommandHandler() commands.RegisterStaffCommandHandler {
	var f commands.StaffUoWFactory = FuncStaffUoWFactory(func() commands.StaffUoW {
		return c.uowFactory.Create()
	})
	return commands.NewRegisterStaffCommandHandler(f)
}

func (c *CompositionRoot) CreateGetOrdersQueryHandler() queries.GetOrdersQueryHandler {
	return queries.NewGetOrdersQueryHandler(c.gormDB, c.aggregator)
}

func (c *CompositionRoot) CreateGetActionableOrdersQueryHandler() queries.GetActionableOrdersQueryHandler {
	return queries.NewGetActionableOrdersQueryHandler(c.gormDB, c.aggregator)
}

func (c *CompositionRoot) CreateTrackOrderQueryHandler() queries.TrackOrderQueryHandler {
	return queries.NewTrackOrderQueryHandler(c.gormDB, c.aggregator)
}

func (c *CompositionRoot) CreateAuthenticateStaffQueryHandler() queries.AuthenticateStaffQueryHandler {
	return queries.NewAuthenticateStaffQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreatePlanDeliveryRouteQueryHandler() queries.PlanDeliveryRouteQueryHandler {
	return queries.NewPlanDeliveryRouteQueryHandler(c.gormDB, c.planner, c.depot)
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncStaffUoWFactory func() commands.StaffUoW

func (f FuncStaffUoWFactory) Create() commands.StaffUoW {
	return f()
}
