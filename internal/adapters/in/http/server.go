// Package http exposes the fulfillment use cases over a JSON API.
// Handlers translate transport concerns (parsing, status codes) and delegate
// every decision to the command and query handlers.
package http

import (
	"errors"
	"net/http"

	"fulfillment/internal/core/application/usecases/commands"
	"fulfillment/internal/core/application/usecases/queries"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	createOrderHandler   commands.CreateOrderCommandHandler
	advanceOrderHandler  commands.AdvanceOrderCommandHandler
	resetOrdersHandler   commands.ResetOrdersCommandHandler
	registerStaffHandler commands.RegisterStaffCommandHandler

	getOrdersHandler           queries.GetOrdersQueryHandler
	getActionableOrdersHandler queries.GetActionableOrdersQueryHandler
	trackOrderHandler          queries.TrackOrderQueryHandler
	authenticateStaffHandler   queries.AuthenticateStaffQueryHandler
	planRouteHandler           queries.PlanDeliveryRouteQueryHandler
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	createOrderHandler commands.CreateOrderCommandHandler,
	advanceOrderHandler commands.AdvanceOrderCommandHandler,
	resetOrdersHandler commands.ResetOrdersCommandHandler,
	registerStaffHandler commands.RegisterStaffCommandHandler,
	getOrdersHandler queries.GetOrdersQueryHandler,
	getActionableOrdersHandler queries.GetActionableOrdersQueryHandler,
	trackOrderHandler queries.TrackOrderQueryHandler,
	authenticateStaffHandler queries.AuthenticateStaffQueryHandler,
	planRouteHandler queries.PlanDeliveryRouteQueryHandler,
) *Server {
	return &Server{
		createOrderHandler:         createOrderHandler,
		advanceOrderHandler:        advanceOrderHandler,
		resetOrdersHandler:         resetOrdersHandler,
		registerStaffHandler:       registerStaffHandler,
		getOrdersHandler:           getOrdersHandler,
		getActionableOrdersHandler: getActionableOrdersHandler,
		trackOrderHandler:          trackOrderHandler,
		authenticateStaffHandler:   authenticateStaffHandler,
		planRouteHandler:           planRouteHandler,
	}
}

// RegisterRoutes binds every endpoint onto the echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", s.Health)

	api := e.Group("/api/v1")
	api.POST("/orders", s.CreateOrder)
	api.GET("/orders", s.GetOrders)
	api.GET("/orders/:id/track", s.TrackOrder)
	api.GET("/roles/:role/orders", s.GetActionableOrders)
	api.POST("/roles/:role/orders/:id/advance", s.AdvanceOrder)
	api.POST("/admin/reset", s.ResetOrders)
	api.POST("/staff", s.RegisterStaff)
	api.POST("/staff/login", s.Login)
	api.GET("/route-plan", s.PlanRoute)
}

// Health handles GET /health.
func (s *Server) Health(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

// CreateOrder handles POST /api/v1/orders - registers a new order.
// The optional status field lets seeds and imports start mid-lifecycle.
func (s *Server) CreateOrder(ctx echo.Context) error {
	var req CreateOrderRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	initialStatus := order.Created
	if req.Status != "" {
		parsed, err := order.StatusFromString(req.Status)
		if err != nil {
			return respondError(ctx, err)
		}
		initialStatus = parsed
	}

	// A request without an item list must stay nil so the command rejects
	// it; an explicit empty array stays an empty, accepted list.
	var items []order.Item
	if req.Items != nil {
		items = make([]order.Item, 0, len(req.Items))
		for _, payload := range req.Items {
			item, err := order.NewItem(payload.ProductName, payload.Quantity, payload.Price)
			if err != nil {
				return respondError(ctx, err)
			}
			items = append(items, item)
		}
	}

	cmd, err := commands.NewCreateOrderCommand(
		req.BuyerName,
		req.BuyerEmail,
		req.DeliveryAddress,
		items,
		initialStatus,
	)
	if err != nil {
		return respondError(ctx, err)
	}

	created, err := s.createOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return respondError(ctx, err)
	}

	view, err := s.trackedView(ctx, created.ID())
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, view)
}

// GetOrders handles GET /api/v1/orders - the admin dashboard listing.
// An optional status query parameter narrows the listing to one stage.
func (s *Server) GetOrders(ctx echo.Context) error {
	query := queries.NewGetOrdersQuery()
	if raw := ctx.QueryParam("status"); raw != "" {
		status, err := order.StatusFromString(raw)
		if err != nil {
			return respondError(ctx, err)
		}
		query, err = queries.NewGetOrdersQueryWithStatus(status)
		if err != nil {
			return respondError(ctx, err)
		}
	}

	views, err := s.getOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toOrderPayloads(views))
}

// TrackOrder handles GET /api/v1/orders/:id/track - the buyer-facing view.
func (s *Server) TrackOrder(ctx echo.Context) error {
	id, err := kernel.OrderIDFromString(ctx.Param("id"))
	if err != nil {
		return respondError(ctx, err)
	}

	view, err := s.trackedView(ctx, id)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, view)
}

// GetActionableOrders handles GET /api/v1/roles/:role/orders - a role's work queue.
func (s *Server) GetActionableOrders(ctx echo.Context) error {
	role, err := order.RoleFromString(ctx.Param("role"))
	if err != nil {
		return respondError(ctx, err)
	}

	query, err := queries.NewGetActionableOrdersQuery(role)
	if err != nil {
		return respondError(ctx, err)
	}

	views, err := s.getActionableOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toOrderPayloads(views))
}

// AdvanceOrder handles POST /api/v1/roles/:role/orders/:id/advance.
// The target stage follows from the acting role; a role that enters no stage
// is rejected as unauthorized before the order is even looked up.
func (s *Server) AdvanceOrder(ctx echo.Context) error {
	role, err := order.RoleFromString(ctx.Param("role"))
	if err != nil {
		return respondError(ctx, err)
	}

	id, err := kernel.OrderIDFromString(ctx.Param("id"))
	if err != nil {
		return respondError(ctx, err)
	}

	target, ok := order.TargetStatusFor(role)
	if !ok {
		return ctx.JSON(http.StatusForbidden, ErrorResponse{
			Code:    http.StatusForbidden,
			Message: "Role " + role.String() + " cannot advance orders",
		})
	}

	cmd, err := commands.NewAdvanceOrderCommand(id, role, target)
	if err != nil {
		return respondError(ctx, err)
	}

	if err = s.advanceOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	view, err := s.trackedView(ctx, id)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, view)
}

// ResetOrders handles POST /api/v1/admin/reset - wipes the order store.
func (s *Server) ResetOrders(ctx echo.Context) error {
	cmd := commands.NewResetOrdersCommand()

	if err := s.resetOrdersHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// RegisterStaff handles POST /api/v1/staff - staff signup.
func (s *Server) RegisterStaff(ctx echo.Context) error {
	var req RegisterStaffRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	role, err := order.RoleFromString(req.Role)
	if err != nil {
		return respondError(ctx, err)
	}

	cmd, err := commands.NewRegisterStaffCommand(req.Name, req.Email, role, req.Password)
	if err != nil {
		return respondError(ctx, err)
	}

	account, err := s.registerStaffHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, StaffPayload{
		ID:    account.ID().String(),
		Name:  account.Name(),
		Email: account.Email(),
		Role:  account.Role().String(),
	})
}

// Login handles POST /api/v1/staff/login - staff credential check.
func (s *Server) Login(ctx echo.Context) error {
	var req LoginRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	query, err := queries.NewAuthenticateStaffQuery(req.Email, req.Password)
	if err != nil {
		return respondError(ctx, err)
	}

	account, err := s.authenticateStaffHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, StaffPayload{
		ID:    account.ID,
		Name:  account.Name,
		Email: account.Email,
		Role:  account.Role,
	})
}

// PlanRoute handles GET /api/v1/route-plan - a suggested courier run over
// every order waiting for delivery.
func (s *Server) PlanRoute(ctx echo.Context) error {
	query := queries.NewPlanDeliveryRouteQuery()

	plan, err := s.planRouteHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, RoutePlanPayload{
		Depot: plan.Depot,
		Stops: plan.Stops,
		Route: plan.Route,
	})
}

func (s *Server) trackedView(ctx echo.Context, id kernel.OrderID) (OrderPayload, error) {
	query, err := queries.NewTrackOrderQuery(id)
	if err != nil {
		return OrderPayload{}, err
	}

	view, err := s.trackOrderHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return OrderPayload{}, err
	}

	return toOrderPayload(view), nil
}

func badRequest(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusBadRequest, ErrorResponse{
		Code:    http.StatusBadRequest,
		Message: message,
	})
}

// respondError maps domain and application errors onto HTTP status codes.
// The mapping mirrors the precondition order of the transition engine:
// unknown orders are 404, impossible transitions 409, wrong roles 403.
func respondError(ctx echo.Context, err error) error {
	code := http.StatusInternalServerError

	switch {
	case errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		code = http.StatusBadRequest
	case errors.Is(err, errs.ErrObjectNotFound):
		code = http.StatusNotFound
	case errors.Is(err, order.ErrRoleNotAuthorized):
		code = http.StatusForbidden
	case errors.Is(err, order.ErrIllegalTransition),
		errors.Is(err, errs.ErrConcurrentUpdate),
		errors.Is(err, commands.ErrEmailAlreadyRegistered):
		code = http.StatusConflict
	case errors.Is(err, queries.ErrInvalidCredentials):
		code = http.StatusUnauthorized
	}

	return ctx.JSON(code, ErrorResponse{
		Code:    code,
		Message: err.Error(),
	})
}
