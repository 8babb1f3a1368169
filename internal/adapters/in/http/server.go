package http

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	"frete/internal/core/application/usecases/commands"
	"frete/internal/core/application/usecases/queries"
	"frete/internal/core/domain/model/kernel"
	"frete/internal/core/domain/model/shipment"
	"frete/internal/pkg/errs"
)

// Server coordinates between the HTTP handlers and the application's
// command and query handlers.
type Server struct {
	registerUserHandler   commands.RegisterUserCommandHandler
	createShipmentHandler commands.CreateShipmentCommandHandler
	acceptShipmentHandler commands.AcceptShipmentCommandHandler
	rejectShipmentHandler commands.RejectShipmentCommandHandler
	removeShipmentHandler commands.RemoveShipmentCommandHandler
	createVehicleHandler  commands.CreateVehicleCommandHandler
	loginHandler          queries.LoginQueryHandler
	listShipmentsHandler  queries.ListShipmentsQueryHandler
	listAvailableHandler  queries.ListAvailableShipmentsQueryHandler
	getShipmentHandler    queries.GetShipmentQueryHandler
}

// NewServer creates an HTTP server wired to the given use case handlers.
func NewServer(
	registerUserHandler commands.RegisterUserCommandHandler,
	createShipmentHandler commands.CreateShipmentCommandHandler,
	acceptShipmentHandler commands.AcceptShipmentCommandHandler,
	rejectShipmentHandler commands.RejectShipmentCommandHandler,
	removeShipmentHandler commands.RemoveShipmentCommandHandler,
	createVehicleHandler commands.CreateVehicleCommandHandler,
	loginHandler queries.LoginQueryHandler,
	listShipmentsHandler queries.ListShipmentsQueryHandler,
	listAvailableHandler queries.ListAvailableShipmentsQueryHandler,
	getShipmentHandler queries.GetShipmentQueryHandler,
) *Server {
	return &Server{
		registerUserHandler:   registerUserHandler,
		createShipmentHandler: createShipmentHandler,
		acceptShipmentHandler: acceptShipmentHandler,
		rejectShipmentHandler: rejectShipmentHandler,
		removeShipmentHandler: removeShipmentHandler,
		createVehicleHandler:  createVehicleHandler,
		loginHandler:          loginHandler,
		listShipmentsHandler:  listShipmentsHandler,
		listAvailableHandler:  listAvailableHandler,
		getShipmentHandler:    getShipmentHandler,
	}
}

// RegisterRoutes attaches every endpoint to the echo instance. All shipment
// and vehicle routes sit behind the auth middleware.
func (s *Server) RegisterRoutes(e *echo.Echo, auth echo.MiddlewareFunc) {
	e.GET("/health", s.Health)
	e.POST("/auth/registo/", s.Register)
	e.POST("/auth/entrar/", s.Login)

	g := e.Group("", auth)
	g.POST("/cargas/", s.CreateShipment)
	g.GET("/cargas/", s.ListShipments)
	g.GET("/cargas/disponiveis/", s.ListAvailableShipments)
	g.GET("/cargas/:id/", s.GetShipment)
	g.POST("/cargas/:id/aceitar/", s.AcceptShipment)
	g.POST("/cargas/:id/recusar/", s.RejectShipment)
	g.DELETE("/cargas/:id/", s.RemoveShipment)
	g.POST("/veiculos/", s.CreateVehicle)
}

// Health handles GET /health.
func (s *Server) Health(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

// Register handles POST /auth/registo/.
func (s *Server) Register(c echo.Context) error {
	var req RegisterRequest
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "invalid request body")
	}

	var kind commands.ProfileKind
	switch req.Perfil {
	case "cliente":
		kind = commands.ProfileKindClient
	case "motorista":
		kind = commands.ProfileKindDriver
	default:
		return badRequest(c, "perfil must be cliente or motorista")
	}

	userID := kernel.NewUUID()
	cmd, err := commands.NewRegisterUserCommand(
		userID,
		req.Username, req.Email, req.Password,
		kind,
		req.Telefone, req.DocumentoID, req.Endereco, req.CartaConducao,
	)
	if err != nil {
		return badRequest(c, err.Error())
	}

	if err = s.registerUserHandler.Handle(c.Request().Context(), cmd); err != nil {
		return mapError(c, err)
	}

	return c.JSON(http.StatusCreated, RegisterResponse{ID: userID.String()})
}

// Login handles POST /auth/entrar/.
func (s *Server) Login(c echo.Context) error {
	var req LoginRequest
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "invalid request body")
	}

	query, err := queries.NewLoginQuery(req.Username, req.Password)
	if err != nil {
		return badRequest(c, err.Error())
	}

	resp, err := s.loginHandler.Handle(c.Request().Context(), query)
	if err != nil {
		return mapError(c, err)
	}

	return c.JSON(http.StatusOK, LoginResponse{Token: resp.Token})
}

// CreateShipment handles POST /cargas/.
func (s *Server) CreateShipment(c echo.Context) error {
	actor, ok := actorFromContext(c)
	if !ok {
		return forbidden(c, "no resolved actor")
	}

	var req CreateShipmentRequest
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "invalid request body")
	}

	serviceType := shipment.ServiceType(req.TipoServico).OrDefault()
	if err := serviceType.Validate(); err != nil {
		return badRequest(c, err.Error())
	}

	details := shipment.Details{
		Title:             req.Titulo,
		Description:       req.Descricao,
		WeightKg:          req.PesoKg,
		PhotoRef:          req.FotoRef,
		Origin:            req.Origem,
		Destination:       req.Destino,
		OriginCoords:      req.CoordenadasOrigem,
		DestinationCoords: req.CoordenadasDest,
		Category:          shipment.Category(req.Categoria).OrDefault(),
		ServiceType:       serviceType,
		ScheduledAt:       req.AgendadoPara,
		Escorted:          req.Escoltado,
	}

	cmd, err := commands.NewCreateShipmentCommand(kernel.NewUUID(), actor, details, req.Preco)
	if err != nil {
		return badRequest(c, err.Error())
	}

	created, err := s.createShipmentHandler.Handle(c.Request().Context(), cmd)
	if err != nil {
		return mapError(c, err)
	}

	return c.JSON(http.StatusCreated, shipmentResponseFromDomain(created))
}

// ListShipments handles GET /cargas/.
func (s *Server) ListShipments(c echo.Context) error {
	actor, ok := actorFromContext(c)
	if !ok {
		return forbidden(c, "no resolved actor")
	}

	query, err := queries.NewListShipmentsQuery(actor)
	if err != nil {
		return badRequest(c, err.Error())
	}

	shipments, err := s.listShipmentsHandler.Handle(c.Request().Context(), query)
	if err != nil {
		return mapError(c, err)
	}

	return c.JSON(http.StatusOK, shipmentResponsesFromQuery(shipments))
}

// ListAvailableShipments handles GET /cargas/disponiveis/.
func (s *Server) ListAvailableShipments(c echo.Context) error {
	actor, ok := actorFromContext(c)
	if !ok {
		return forbidden(c, "no resolved actor")
	}

	query, err := queries.NewListAvailableShipmentsQuery(actor)
	if err != nil {
		return badRequest(c, err.Error())
	}

	shipments, err := s.listAvailableHandler.Handle(c.Request().Context(), query)
	if err != nil {
		return mapError(c, err)
	}

	return c.JSON(http.StatusOK, shipmentResponsesFromQuery(shipments))
}

// GetShipment handles GET /cargas/:id/.
func (s *Server) GetShipment(c echo.Context) error {
	actor, ok := actorFromContext(c)
	if !ok {
		return forbidden(c, "no resolved actor")
	}

	shipmentID, err := kernel.UUIDFromString(c.Param("id"))
	if err != nil {
		return badRequest(c, "invalid shipment id")
	}

	query, err := queries.NewGetShipmentQuery(shipmentID, actor)
	if err != nil {
		return badRequest(c, err.Error())
	}

	resp, err := s.getShipmentHandler.Handle(c.Request().Context(), query)
	if err != nil {
		return mapError(c, err)
	}

	return c.JSON(http.StatusOK, shipmentResponseFromQuery(resp))
}

// AcceptShipment handles POST /cargas/:id/aceitar/.
func (s *Server) AcceptShipment(c echo.Context) error {
	actor, ok := actorFromContext(c)
	if !ok {
		return forbidden(c, "no resolved actor")
	}

	shipmentID, err := kernel.UUIDFromString(c.Param("id"))
	if err != nil {
		return badRequest(c, "invalid shipment id")
	}

	cmd, err := commands.NewAcceptShipmentCommand(shipmentID, actor)
	if err != nil {
		return badRequest(c, err.Error())
	}

	accepted, err := s.acceptShipmentHandler.Handle(c.Request().Context(), cmd)
	if err != nil {
		return mapError(c, err)
	}

	return c.JSON(http.StatusOK, shipmentResponseFromDomain(accepted))
}

// RejectShipment handles POST /cargas/:id/recusar/.
func (s *Server) RejectShipment(c echo.Context) error {
	actor, ok := actorFromContext(c)
	if !ok {
		return forbidden(c, "no resolved actor")
	}

	shipmentID, err := kernel.UUIDFromString(c.Param("id"))
	if err != nil {
		return badRequest(c, "invalid shipment id")
	}

	cmd, err := commands.NewRejectShipmentCommand(shipmentID, actor)
	if err != nil {
		return badRequest(c, err.Error())
	}

	if err = s.rejectShipmentHandler.Handle(c.Request().Context(), cmd); err != nil {
		return mapError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}

// RemoveShipment handles DELETE /cargas/:id/.
func (s *Server) RemoveShipment(c echo.Context) error {
	actor, ok := actorFromContext(c)
	if !ok {
		return forbidden(c, "no resolved actor")
	}

	shipmentID, err := kernel.UUIDFromString(c.Param("id"))
	if err != nil {
		return badRequest(c, "invalid shipment id")
	}

	cmd, err := commands.NewRemoveShipmentCommand(shipmentID, actor)
	if err != nil {
		return badRequest(c, err.Error())
	}

	if err = s.removeShipmentHandler.Handle(c.Request().Context(), cmd); err != nil {
		return mapError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}

// CreateVehicle handles POST /veiculos/.
func (s *Server) CreateVehicle(c echo.Context) error {
	actor, ok := actorFromContext(c)
	if !ok {
		return forbidden(c, "no resolved actor")
	}

	var req CreateVehicleRequest
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "invalid request body")
	}

	vehicleID := kernel.NewUUID()
	cmd, err := commands.NewCreateVehicleCommand(vehicleID, actor, req.Modelo, req.Matricula, req.CapacidadeKg)
	if err != nil {
		return badRequest(c, err.Error())
	}

	if err = s.createVehicleHandler.Handle(c.Request().Context(), cmd); err != nil {
		return mapError(c, err)
	}

	return c.JSON(http.StatusCreated, CreateVehicleResponse{ID: vehicleID.String()})
}

// mapError translates application and domain errors onto HTTP status codes:
// authorization failures become 403, missing objects 404, lifecycle and
// assignment conflicts 400, bad credentials 401, everything else 500.
func mapError(c echo.Context, err error) error {
	switch {
	case errors.Is(err, commands.ErrOnlyClientsMayCreateShipments),
		errors.Is(err, commands.ErrOnlyDriversMayAcceptShipments),
		errors.Is(err, commands.ErrOnlyDriversMayRejectShipments),
		errors.Is(err, commands.ErrOnlyAdminsMayManageVehicles),
		errors.Is(err, commands.ErrOnlyAdminsMayRemoveShipments),
		errors.Is(err, queries.ErrShipmentAccessDenied):
		return forbidden(c, err.Error())

	case errors.Is(err, errs.ErrObjectNotFound):
		return c.JSON(http.StatusNotFound, ErrorResponse{
			Code:    http.StatusNotFound,
			Message: err.Error(),
		})

	case errors.Is(err, shipment.ErrShipmentAlreadyAssigned),
		errors.Is(err, shipment.ErrInvalidStatus),
		errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		return badRequest(c, err.Error())

	case errors.Is(err, gorm.ErrDuplicatedKey):
		return c.JSON(http.StatusConflict, ErrorResponse{
			Code:    http.StatusConflict,
			Message: "a record with the same unique value already exists",
		})

	case errors.Is(err, queries.ErrInvalidCredentials):
		return c.JSON(http.StatusUnauthorized, ErrorResponse{
			Code:    http.StatusUnauthorized,
			Message: err.Error(),
		})

	default:
		return c.JSON(http.StatusInternalServerError, ErrorResponse{
			Code:    http.StatusInternalServerError,
			Message: "internal error",
		})
	}
}

func badRequest(c echo.Context, message string) error {
	return c.JSON(http.StatusBadRequest, ErrorResponse{
		Code:    http.StatusBadRequest,
		Message: message,
	})
}

func forbidden(c echo.Context, message string) error {
	return c.JSON(http.StatusForbidden, ErrorResponse{
		Code:    http.StatusForbidden,
		Message: message,
	})
}
