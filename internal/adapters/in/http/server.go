// Package http exposes the delivery operation over a REST API. Handlers
// translate JSON requests into commands and queries and map domain errors
// onto HTTP status codes.
package http

import (
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"fluxi/internal/core/application/usecases/commands"
	"fluxi/internal/core/application/usecases/queries"
	"fluxi/internal/core/domain/model/courier"
	"fluxi/internal/core/domain/model/kernel"
	"fluxi/internal/core/domain/model/order"
	"fluxi/internal/pkg/errs"
)

// Handlers bundles the command and query handlers the server dispatches to.
type Handlers struct {
	CreateOrder           commands.CreateOrderCommandHandler
	AutoAssignOrder       commands.AutoAssignOrderCommandHandler
	AssignOrder           commands.AssignOrderCommandHandler
	ReassignOrder         commands.ReassignOrderCommandHandler
	StartTransit          commands.StartTransitCommandHandler
	CompleteOrder         commands.CompleteOrderCommandHandler
	CancelOrder           commands.CancelOrderCommandHandler
	CreateCourier         commands.CreateCourierCommandHandler
	SetCourierShift       commands.SetCourierShiftCommandHandler
	ReportCourierLocation commands.ReportCourierLocationCommandHandler
	RemoveCourier         commands.RemoveCourierCommandHandler

	GetActiveOrders      queries.GetActiveOrdersQueryHandler
	GetOrdersByCourier   queries.GetOrdersByCourierQueryHandler
	GetOrdersByDateRange queries.GetOrdersByDateRangeQueryHandler
	GetAllCouriers       queries.GetAllCouriersQueryHandler
}

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	handlers Handlers
}

// NewServer creates the HTTP server with the required command and query
// handlers.
func NewServer(handlers Handlers) *Server {
	return &Server{handlers: handlers}
}

// RegisterRoutes mounts the API under /api/v1 plus the health probe.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", s.Health)

	api := e.Group("/api/v1")

	api.POST("/orders", s.CreateOrder)
	api.GET("/orders/active", s.GetActiveOrders)
	api.GET("/orders", s.GetOrders)
	api.POST("/orders/:id/assign", s.AssignOrder)
	api.POST("/orders/:id/reassign", s.ReassignOrder)
	api.POST("/orders/:id/start", s.StartTransit)
	api.POST("/orders/:id/complete", s.CompleteOrder)
	api.POST("/orders/:id/cancel", s.CancelOrder)

	api.POST("/couriers", s.CreateCourier)
	api.GET("/couriers", s.GetCouriers)
	api.POST("/couriers/:id/shift", s.SetCourierShift)
	api.POST("/couriers/:id/location", s.ReportCourierLocation)
	api.DELETE("/couriers/:id", s.RemoveCourier)
}

// Health handles GET /health.
func (s *Server) Health(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

// CreateOrder handles POST /api/v1/orders. The order starts pending; when an
// offerable courier exists it is assigned before the response returns, but a
// miss never fails the request.
func (s *Server) CreateOrder(ctx echo.Context) error {
	var req CreateOrderRequest
	if err := ctx.Bind(&req); err != nil {
		return s.badRequest(ctx, "invalid request body")
	}

	params, err := s.orderParams(req)
	if err != nil {
		return s.writeError(ctx, err)
	}

	orderID := kernel.NewUUID()
	cmd, err := commands.NewCreateOrderCommand(orderID, params)
	if err != nil {
		return s.writeError(ctx, err)
	}

	if err := s.handlers.CreateOrder.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.writeError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, CreatedResponse{ID: orderID.String()})
}

func (s *Server) orderParams(req CreateOrderRequest) (order.NewOrderParams, error) {
	phone, err := kernel.NewPhone(req.ClientPhone)
	if err != nil {
		return order.NewOrderParams{}, err
	}

	value, err := kernel.NewMoney(req.Value)
	if err != nil {
		return order.NewOrderParams{}, err
	}

	deliveryFee, err := kernel.NewMoney(req.DeliveryFee)
	if err != nil {
		return order.NewOrderParams{}, err
	}

	payment, err := order.PaymentMethodFromString(req.PaymentMethod)
	if err != nil {
		return order.NewOrderParams{}, err
	}

	params := order.NewOrderParams{
		ClientName:     req.ClientName,
		ClientPhone:    phone,
		Address:        req.Address,
		Neighborhood:   req.Neighborhood,
		Value:          value,
		DeliveryFee:    deliveryFee,
		Payment:        payment,
		TerminalNumber: req.TerminalNumber,
		Notes:          req.Notes,
	}

	if req.ExternalSource != "" || req.ExternalID != nil {
		if req.ExternalSource == "" || req.ExternalID == nil {
			return order.NewOrderParams{}, errs.NewValueIsRequiredError("externalRef")
		}
		ref, refErr := order.NewExternalRef(req.ExternalSource, *req.ExternalID)
		if refErr != nil {
			return order.NewOrderParams{}, refErr
		}
		params.ExternalRef = &ref
	}

	return params, nil
}

// GetActiveOrders handles GET /api/v1/orders/active.
func (s *Server) GetActiveOrders(ctx echo.Context) error {
	query := queries.NewGetActiveOrdersQuery()

	orders, err := s.handlers.GetActiveOrders.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toOrderResponses(orders))
}

// GetOrders handles GET /api/v1/orders. Filters by courier_id with an
// optional status, or by a [from, to) creation window.
func (s *Server) GetOrders(ctx echo.Context) error {
	if courierParam := ctx.QueryParam("courier_id"); courierParam != "" {
		return s.getOrdersByCourier(ctx, courierParam)
	}

	if ctx.QueryParam("from") != "" || ctx.QueryParam("to") != "" {
		return s.getOrdersByDateRange(ctx)
	}

	return s.badRequest(ctx, "either courier_id or a from/to window is required")
}

func (s *Server) getOrdersByCourier(ctx echo.Context, courierParam string) error {
	courierID, err := kernel.UUIDFromString(courierParam)
	if err != nil {
		return s.badRequest(ctx, "invalid courier_id")
	}

	var status *order.Status
	if statusParam := ctx.QueryParam("status"); statusParam != "" {
		parsed, statusErr := order.StatusFromString(statusParam)
		if statusErr != nil {
			return s.badRequest(ctx, "invalid status")
		}
		status = &parsed
	}

	query, err := queries.NewGetOrdersByCourierQuery(courierID, status)
	if err != nil {
		return s.writeError(ctx, err)
	}

	orders, err := s.handlers.GetOrdersByCourier.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toOrderResponses(orders))
}

func (s *Server) getOrdersByDateRange(ctx echo.Context) error {
	from, err := parseTimeParam(ctx.QueryParam("from"))
	if err != nil {
		return s.badRequest(ctx, "invalid from")
	}

	to, err := parseTimeParam(ctx.QueryParam("to"))
	if err != nil {
		return s.badRequest(ctx, "invalid to")
	}

	query, err := queries.NewGetOrdersByDateRangeQuery(from, to)
	if err != nil {
		return s.writeError(ctx, err)
	}

	orders, err := s.handlers.GetOrdersByDateRange.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toOrderResponses(orders))
}

// AssignOrder handles POST /api/v1/orders/:id/assign. With a courier_id in
// the body the assignment is manual; without one the engine picks the
// courier.
func (s *Server) AssignOrder(ctx echo.Context) error {
	orderID, err := parseIDParam(ctx)
	if err != nil {
		return s.badRequest(ctx, "invalid order id")
	}

	var req AssignOrderRequest
	if err := ctx.Bind(&req); err != nil {
		return s.badRequest(ctx, "invalid request body")
	}

	if req.CourierID == "" {
		cmd, cmdErr := commands.NewAutoAssignOrderCommandForOrder(orderID)
		if cmdErr != nil {
			return s.writeError(ctx, cmdErr)
		}
		if handleErr := s.handlers.AutoAssignOrder.Handle(ctx.Request().Context(), cmd); handleErr != nil {
			return s.writeError(ctx, handleErr)
		}
		return ctx.NoContent(http.StatusNoContent)
	}

	courierID, err := kernel.UUIDFromString(req.CourierID)
	if err != nil {
		return s.badRequest(ctx, "invalid courier_id")
	}

	cmd, err := commands.NewAssignOrderCommand(orderID, courierID)
	if err != nil {
		return s.writeError(ctx, err)
	}

	if err := s.handlers.AssignOrder.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// ReassignOrder handles POST /api/v1/orders/:id/reassign.
func (s *Server) ReassignOrder(ctx echo.Context) error {
	orderID, err := parseIDParam(ctx)
	if err != nil {
		return s.badRequest(ctx, "invalid order id")
	}

	var req ReassignOrderRequest
	if err := ctx.Bind(&req); err != nil {
		return s.badRequest(ctx, "invalid request body")
	}

	courierID, err := kernel.UUIDFromString(req.CourierID)
	if err != nil {
		return s.badRequest(ctx, "invalid courier_id")
	}

	cmd, err := commands.NewReassignOrderCommand(orderID, courierID)
	if err != nil {
		return s.writeError(ctx, err)
	}

	if err := s.handlers.ReassignOrder.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// StartTransit handles POST /api/v1/orders/:id/start.
func (s *Server) StartTransit(ctx echo.Context) error {
	orderID, err := parseIDParam(ctx)
	if err != nil {
		return s.badRequest(ctx, "invalid order id")
	}

	cmd, err := commands.NewStartTransitCommand(orderID)
	if err != nil {
		return s.writeError(ctx, err)
	}

	if err := s.handlers.StartTransit.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// CompleteOrder handles POST /api/v1/orders/:id/complete.
func (s *Server) CompleteOrder(ctx echo.Context) error {
	orderID, err := parseIDParam(ctx)
	if err != nil {
		return s.badRequest(ctx, "invalid order id")
	}

	var req CompleteOrderRequest
	if err := ctx.Bind(&req); err != nil {
		return s.badRequest(ctx, "invalid request body")
	}

	var voucher *order.VoucherStatus
	if req.Voucher != "" {
		parsed, voucherErr := order.VoucherStatusFromString(req.Voucher)
		if voucherErr != nil {
			return s.badRequest(ctx, "invalid voucher")
		}
		voucher = &parsed
	}

	cmd, err := commands.NewCompleteOrderCommand(orderID, voucher)
	if err != nil {
		return s.writeError(ctx, err)
	}

	if err := s.handlers.CompleteOrder.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// CancelOrder handles POST /api/v1/orders/:id/cancel.
func (s *Server) CancelOrder(ctx echo.Context) error {
	orderID, err := parseIDParam(ctx)
	if err != nil {
		return s.badRequest(ctx, "invalid order id")
	}

	cmd, err := commands.NewCancelOrderCommand(orderID)
	if err != nil {
		return s.writeError(ctx, err)
	}

	if err := s.handlers.CancelOrder.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// CreateCourier handles POST /api/v1/couriers.
func (s *Server) CreateCourier(ctx echo.Context) error {
	var req CreateCourierRequest
	if err := ctx.Bind(&req); err != nil {
		return s.badRequest(ctx, "invalid request body")
	}

	phone, err := kernel.NewPhone(req.Phone)
	if err != nil {
		return s.writeError(ctx, err)
	}

	startingFloat, err := kernel.NewMoney(req.StartingFloat)
	if err != nil {
		return s.writeError(ctx, err)
	}

	courierID := kernel.NewUUID()
	cmd, err := commands.NewCreateCourierCommand(courierID, req.Name, phone, startingFloat, req.ActiveToday)
	if err != nil {
		return s.writeError(ctx, err)
	}

	if err := s.handlers.CreateCourier.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.writeError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, CreatedResponse{ID: courierID.String()})
}

// GetCouriers handles GET /api/v1/couriers.
func (s *Server) GetCouriers(ctx echo.Context) error {
	query := queries.NewGetAllCouriersQuery()

	couriers, err := s.handlers.GetAllCouriers.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toCourierResponses(couriers))
}

// SetCourierShift handles POST /api/v1/couriers/:id/shift.
func (s *Server) SetCourierShift(ctx echo.Context) error {
	courierID, err := parseIDParam(ctx)
	if err != nil {
		return s.badRequest(ctx, "invalid courier id")
	}

	var req SetShiftRequest
	if err := ctx.Bind(&req); err != nil {
		return s.badRequest(ctx, "invalid request body")
	}

	cmd, err := commands.NewSetCourierShiftCommand(courierID, req.Active)
	if err != nil {
		return s.writeError(ctx, err)
	}

	if err := s.handlers.SetCourierShift.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// ReportCourierLocation handles POST /api/v1/couriers/:id/location.
func (s *Server) ReportCourierLocation(ctx echo.Context) error {
	courierID, err := parseIDParam(ctx)
	if err != nil {
		return s.badRequest(ctx, "invalid courier id")
	}

	var req ReportLocationRequest
	if err := ctx.Bind(&req); err != nil {
		return s.badRequest(ctx, "invalid request body")
	}

	point, err := kernel.NewGeoPoint(req.Latitude, req.Longitude)
	if err != nil {
		return s.writeError(ctx, err)
	}

	cmd, err := commands.NewReportCourierLocationCommand(courierID, point, req.Sharing)
	if err != nil {
		return s.writeError(ctx, err)
	}

	if err := s.handlers.ReportCourierLocation.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// RemoveCourier handles DELETE /api/v1/couriers/:id.
func (s *Server) RemoveCourier(ctx echo.Context) error {
	courierID, err := parseIDParam(ctx)
	if err != nil {
		return s.badRequest(ctx, "invalid courier id")
	}

	cmd, err := commands.NewRemoveCourierCommand(courierID)
	if err != nil {
		return s.writeError(ctx, err)
	}

	if err := s.handlers.RemoveCourier.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

func parseIDParam(ctx echo.Context) (kernel.UUID, error) {
	return kernel.UUIDFromString(ctx.Param("id"))
}

// parseTimeParam accepts RFC 3339 timestamps and bare dates.
func parseTimeParam(value string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, value); err == nil {
		return t, nil
	}
	return time.Parse("2006-01-02", value)
}

func (s *Server) badRequest(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusBadRequest, Error{
		Code:    http.StatusBadRequest,
		Message: message,
	})
}

// writeError maps domain errors onto HTTP status codes: validation failures
// are 400, missing objects 404, rejected transitions and lost claims 409,
// anything unexpected 500.
func (s *Server) writeError(ctx echo.Context, err error) error {
	code := http.StatusInternalServerError

	switch {
	case errors.Is(err, errs.ErrObjectNotFound),
		errors.Is(err, commands.ErrNoOrderFound):
		code = http.StatusNotFound
	case errors.Is(err, errs.ErrInvalidTransition),
		errors.Is(err, errs.ErrConflict),
		errors.Is(err, commands.ErrNoCourierAvailable),
		errors.Is(err, courier.ErrCourierRetired),
		errors.Is(err, courier.ErrCourierAlreadyCommitted):
		code = http.StatusConflict
	case errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		code = http.StatusBadRequest
	}

	return ctx.JSON(code, Error{
		Code:    code,
		Message: err.Error(),
	})
}
