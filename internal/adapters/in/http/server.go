// Package http exposes the compliance workflow over a JSON REST API.
//
// Routes are grouped under /api/v1. Registration and login are public;
// everything else requires a Bearer token issued at login. The handlers
// translate HTTP requests into commands and queries and map application
// errors onto status codes (see errors.go).
package http

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"ihm/internal/core/application/usecases/commands"
	"ihm/internal/core/application/usecases/queries"
	"ihm/internal/core/domain/model/account"
	"ihm/internal/core/domain/model/declaration"
	"ihm/internal/core/domain/model/kernel"
	"ihm/internal/core/domain/model/procurement"
	"ihm/internal/pkg/errs"
)

// TokenIssuer mints access tokens after a successful login. Implemented
// by the auth package's TokenService.
type TokenIssuer interface {
	Issue(userID kernel.UUID, role account.Role) (string, error)
}

// PasswordChecker verifies a plaintext password against a stored hash.
type PasswordChecker interface {
	Check(password, hash string) bool
}

// Server wires HTTP endpoints to command and query handlers.
type Server struct {
	tokens    TokenIssuer
	passwords PasswordChecker

	registerUserHandler        commands.RegisterUserCommandHandler
	createShipHandler          commands.CreateShipCommandHandler
	updateShipHandler          commands.UpdateShipCommandHandler
	createPurchaseOrderHandler commands.CreatePurchaseOrderCommandHandler
	requestDeclarationHandler  commands.RequestDeclarationCommandHandler
	approveRequestHandler      commands.ApproveRequestCommandHandler
	rejectRequestHandler       commands.RejectRequestCommandHandler
	submitDeclarationHandler   commands.SubmitDeclarationCommandHandler
	approveDeclarationHandler  commands.ApproveDeclarationCommandHandler
	rejectDeclarationHandler   commands.RejectDeclarationCommandHandler

	getCredentialsHandler         queries.GetCredentialsQueryHandler
	getAccountHandler             queries.GetAccountQueryHandler
	getCompanyProfileHandler      queries.GetCompanyProfileQueryHandler
	getCustomersHandler           queries.GetCustomersQueryHandler
	getSuppliersHandler           queries.GetSuppliersQueryHandler
	getShipsHandler               queries.GetShipsQueryHandler
	getShipHandler                queries.GetShipQueryHandler
	getPurchaseOrdersHandler      queries.GetPurchaseOrdersQueryHandler
	getPurchaseOrderHandler       queries.GetPurchaseOrderQueryHandler
	getDeclarationRequestsHandler queries.GetDeclarationRequestsQueryHandler
	getDeclarationsHandler        queries.GetDeclarationsQueryHandler
	getDeclarationDetailHandler   queries.GetDeclarationDetailQueryHandler
	getHazardousMaterialsHandler  queries.GetHazardousMaterialsQueryHandler
}

// ServerParams carries the dependencies of NewServer. All fields are
// required.
type ServerParams struct {
	Tokens    TokenIssuer
	Passwords PasswordChecker

	RegisterUserHandler        commands.RegisterUserCommandHandler
	CreateShipHandler          commands.CreateShipCommandHandler
	UpdateShipHandler          commands.UpdateShipCommandHandler
	CreatePurchaseOrderHandler commands.CreatePurchaseOrderCommandHandler
	RequestDeclarationHandler  commands.RequestDeclarationCommandHandler
	ApproveRequestHandler      commands.ApproveRequestCommandHandler
	RejectRequestHandler       commands.RejectRequestCommandHandler
	SubmitDeclarationHandler   commands.SubmitDeclarationCommandHandler
	ApproveDeclarationHandler  commands.ApproveDeclarationCommandHandler
	RejectDeclarationHandler   commands.RejectDeclarationCommandHandler

	GetCredentialsHandler         queries.GetCredentialsQueryHandler
	GetAccountHandler             queries.GetAccountQueryHandler
	GetCompanyProfileHandler      queries.GetCompanyProfileQueryHandler
	GetCustomersHandler           queries.GetCustomersQueryHandler
	GetSuppliersHandler           queries.GetSuppliersQueryHandler
	GetShipsHandler               queries.GetShipsQueryHandler
	GetShipHandler                queries.GetShipQueryHandler
	GetPurchaseOrdersHandler      queries.GetPurchaseOrdersQueryHandler
	GetPurchaseOrderHandler       queries.GetPurchaseOrderQueryHandler
	GetDeclarationRequestsHandler queries.GetDeclarationRequestsQueryHandler
	GetDeclarationsHandler        queries.GetDeclarationsQueryHandler
	GetDeclarationDetailHandler   queries.GetDeclarationDetailQueryHandler
	GetHazardousMaterialsHandler  queries.GetHazardousMaterialsQueryHandler
}

// NewServer creates the HTTP server facade.
func NewServer(params ServerParams) *Server {
	return &Server{
		tokens:    params.Tokens,
		passwords: params.Passwords,

		registerUserHandler:        params.RegisterUserHandler,
		createShipHandler:          params.CreateShipHandler,
		updateShipHandler:          params.UpdateShipHandler,
		createPurchaseOrderHandler: params.CreatePurchaseOrderHandler,
		requestDeclarationHandler:  params.RequestDeclarationHandler,
		approveRequestHandler:      params.ApproveRequestHandler,
		rejectRequestHandler:       params.RejectRequestHandler,
		submitDeclarationHandler:   params.SubmitDeclarationHandler,
		approveDeclarationHandler:  params.ApproveDeclarationHandler,
		rejectDeclarationHandler:   params.RejectDeclarationHandler,

		getCredentialsHandler:         params.GetCredentialsHandler,
		getAccountHandler:             params.GetAccountHandler,
		getCompanyProfileHandler:      params.GetCompanyProfileHandler,
		getCustomersHandler:           params.GetCustomersHandler,
		getSuppliersHandler:           params.GetSuppliersHandler,
		getShipsHandler:               params.GetShipsHandler,
		getShipHandler:                params.GetShipHandler,
		getPurchaseOrdersHandler:      params.GetPurchaseOrdersHandler,
		getPurchaseOrderHandler:       params.GetPurchaseOrderHandler,
		getDeclarationRequestsHandler: params.GetDeclarationRequestsHandler,
		getDeclarationsHandler:        params.GetDeclarationsHandler,
		getDeclarationDetailHandler:   params.GetDeclarationDetailHandler,
		getHazardousMaterialsHandler:  params.GetHazardousMaterialsHandler,
	}
}

// RegisterRoutes mounts all API routes on the echo instance. Routes
// under the authenticated group require a valid Bearer token.
func (s *Server) RegisterRoutes(e *echo.Echo, authMiddleware echo.MiddlewareFunc) {
	api := e.Group("/api/v1")

	api.POST("/auth/register", s.Register)
	api.POST("/auth/login", s.Login)

	authed := api.Group("", authMiddleware)

	authed.GET("/account", s.GetAccount)
	authed.GET("/account/company", s.GetCompanyProfile)

	authed.GET("/customers", s.GetCustomers)
	authed.GET("/suppliers", s.GetSuppliers)

	authed.POST("/ships", s.CreateShip)
	authed.PUT("/ships/:shipID", s.UpdateShip)
	authed.GET("/ships", s.GetShips)
	authed.GET("/ships/my", s.GetMyShips)
	authed.GET("/ships/:shipID", s.GetShip)

	authed.POST("/purchase-orders", s.CreatePurchaseOrder)
	authed.GET("/purchase-orders", s.GetPurchaseOrders)
	authed.GET("/purchase-orders/:orderID", s.GetPurchaseOrder)
	authed.POST("/purchase-orders/:orderID/declaration-requests", s.RequestDeclaration)

	authed.GET("/declaration-requests", s.GetDeclarationRequests)
	authed.GET("/declaration-requests/pending", s.GetPendingRequests)
	authed.POST("/declaration-requests/:requestID/approve", s.ApproveRequest)
	authed.POST("/declaration-requests/:requestID/reject", s.RejectRequest)

	authed.POST("/declarations", s.SubmitDeclaration)
	authed.GET("/declarations", s.GetDeclarations)
	authed.GET("/declarations/my-ships", s.GetMyShipDeclarations)
	authed.GET("/declarations/:declarationID", s.GetDeclarationDetail)
	authed.POST("/declarations/:declarationID/approve", s.ApproveDeclaration)
	authed.POST("/declarations/:declarationID/reject", s.RejectDeclaration)

	authed.GET("/hazardous-materials", s.GetHazardousMaterials)
}

// Register handles POST /api/v1/auth/register - creates a user account
// with its role profile.
func (s *Server) Register(ctx echo.Context) error {
	var req registerRequest
	if err := ctx.Bind(&req); err != nil {
		return writeBadRequest(ctx, "invalid request body")
	}
	if err := ctx.Validate(&req); err != nil {
		return writeBadRequest(ctx, err.Error())
	}

	role, err := account.ParseRole(req.Role)
	if err != nil {
		return writeError(ctx, err)
	}

	userID := kernel.NewUUID()
	cmd, err := commands.NewRegisterUserCommand(
		userID,
		req.Username, req.Email, req.Password, req.PasswordConfirm,
		role,
		req.CompanyName, req.BusinessNumber, req.Address, req.ContactPhone,
	)
	if err != nil {
		return writeError(ctx, err)
	}

	if err := s.registerUserHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, idResponse{ID: userID.String()})
}

// Login handles POST /api/v1/auth/login - verifies credentials and
// issues an access token. Unknown usernames and wrong passwords get the
// same response so the endpoint does not leak which usernames exist.
func (s *Server) Login(ctx echo.Context) error {
	var req loginRequest
	if err := ctx.Bind(&req); err != nil {
		return writeBadRequest(ctx, "invalid request body")
	}
	if err := ctx.Validate(&req); err != nil {
		return writeBadRequest(ctx, err.Error())
	}

	query, err := queries.NewGetCredentialsQuery(req.Username)
	if err != nil {
		return writeError(ctx, err)
	}

	creds, err := s.getCredentialsHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeUnauthorized(ctx, "invalid username or password")
	}
	if !creds.IsActive || !s.passwords.Check(req.Password, creds.PasswordHash) {
		return writeUnauthorized(ctx, "invalid username or password")
	}

	role, err := account.ParseRole(creds.Role)
	if err != nil {
		return writeError(ctx, err)
	}

	token, err := s.tokens.Issue(creds.UserID, role)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, tokenResponse{
		Token:  token,
		UserID: creds.UserID.String(),
		Role:   creds.Role,
	})
}

// GetAccount handles GET /api/v1/account - returns the caller's account.
func (s *Server) GetAccount(ctx echo.Context) error {
	actor, ok := actorFromContext(ctx)
	if !ok {
		return writeUnauthorized(ctx, "authentication required")
	}

	query, err := queries.NewGetAccountQuery(actor.UserID)
	if err != nil {
		return writeError(ctx, err)
	}

	acc, err := s.getAccountHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, accountResponse{
		ID:           acc.ID.String(),
		Username:     acc.Username,
		Email:        acc.Email,
		Role:         acc.Role,
		CompanyName:  acc.CompanyName,
		ContactPhone: acc.ContactPhone,
		IsActive:     acc.IsActive,
		CreatedAt:    acc.CreatedAt,
	})
}

// GetCompanyProfile handles GET /api/v1/account/company - returns the
// caller's customer or supplier profile.
func (s *Server) GetCompanyProfile(ctx echo.Context) error {
	actor, ok := actorFromContext(ctx)
	if !ok {
		return writeUnauthorized(ctx, "authentication required")
	}

	query, err := queries.NewGetCompanyProfileQuery(actor)
	if err != nil {
		return writeError(ctx, err)
	}

	profile, err := s.getCompanyProfileHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, companyProfileResponse{
		ID:             profile.ID.String(),
		ProfileRole:    profile.ProfileRole.String(),
		CompanyName:    profile.CompanyName,
		BusinessNumber: profile.BusinessNumber,
		Address:        profile.Address,
		ContactPerson:  profile.ContactPerson,
		ContactPhone:   profile.ContactPhone,
		ContactEmail:   profile.ContactEmail,
		CreatedAt:      profile.CreatedAt,
	})
}

// GetCustomers handles GET /api/v1/customers - the customer directory.
// Customers see only their own profile.
func (s *Server) GetCustomers(ctx echo.Context) error {
	actor, ok := actorFromContext(ctx)
	if !ok {
		return writeUnauthorized(ctx, "authentication required")
	}

	query, err := queries.NewGetCustomersQuery(actor)
	if err != nil {
		return writeError(ctx, err)
	}

	customers, err := s.getCustomersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	response := make([]companyResponse, len(customers))
	for i, customer := range customers {
		response[i] = customerCompanyResponseFrom(customer)
	}
	return ctx.JSON(http.StatusOK, response)
}

// GetSuppliers handles GET /api/v1/suppliers - the supplier directory.
// Suppliers see only their own profile; customers browse it to pick a
// supplier for a declaration request.
func (s *Server) GetSuppliers(ctx echo.Context) error {
	actor, ok := actorFromContext(ctx)
	if !ok {
		return writeUnauthorized(ctx, "authentication required")
	}

	query, err := queries.NewGetSuppliersQuery(actor)
	if err != nil {
		return writeError(ctx, err)
	}

	suppliers, err := s.getSuppliersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	response := make([]companyResponse, len(suppliers))
	for i, supplier := range suppliers {
		response[i] = supplierCompanyResponseFrom(supplier)
	}
	return ctx.JSON(http.StatusOK, response)
}

// CreateShip handles POST /api/v1/ships - registers a vessel.
func (s *Server) CreateShip(ctx echo.Context) error {
	actor, ok := actorFromContext(ctx)
	if !ok {
		return writeUnauthorized(ctx, "authentication required")
	}

	var req createShipRequest
	if err := ctx.Bind(&req); err != nil {
		return writeBadRequest(ctx, "invalid request body")
	}
	if err := ctx.Validate(&req); err != nil {
		return writeBadRequest(ctx, err.Error())
	}

	customerID, err := optionalUUID(req.CustomerID, "customerId")
	if err != nil {
		return writeError(ctx, err)
	}

	shipID := kernel.NewUUID()
	cmd, err := commands.NewCreateShipCommand(
		actor, shipID, customerID,
		req.Name, req.IMONumber, req.ShipType,
		req.GrossTonnage, req.YearBuilt,
	)
	if err != nil {
		return writeError(ctx, err)
	}

	if err := s.createShipHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, idResponse{ID: shipID.String()})
}

// UpdateShip handles PUT /api/v1/ships/:shipID - updates vessel
// particulars and the active flag.
func (s *Server) UpdateShip(ctx echo.Context) error {
	actor, ok := actorFromContext(ctx)
	if !ok {
		return writeUnauthorized(ctx, "authentication required")
	}

	shipID, err := pathUUID(ctx, "shipID")
	if err != nil {
		return writeError(ctx, err)
	}

	var req updateShipRequest
	if err := ctx.Bind(&req); err != nil {
		return writeBadRequest(ctx, "invalid request body")
	}
	if err := ctx.Validate(&req); err != nil {
		return writeBadRequest(ctx, err.Error())
	}

	cmd, err := commands.NewUpdateShipCommand(
		actor, shipID,
		req.Name, req.ShipType,
		req.GrossTonnage, req.YearBuilt,
		req.IsActive,
	)
	if err != nil {
		return writeError(ctx, err)
	}

	if err := s.updateShipHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// GetShips handles GET /api/v1/ships with optional customerId and
// isActive query filters. Customers see their own fleet, operators see
// everything.
func (s *Server) GetShips(ctx echo.Context) error {
	actor, ok := actorFromContext(ctx)
	if !ok {
		return writeUnauthorized(ctx, "authentication required")
	}

	customerID, err := optionalUUIDQuery(ctx, "customerId")
	if err != nil {
		return writeError(ctx, err)
	}

	var isActive *bool
	if raw := ctx.QueryParam("isActive"); raw != "" {
		parsed, err := strconv.ParseBool(raw)
		if err != nil {
			return writeError(ctx, errs.NewValueIsInvalidErrorWithCause("isActive", err))
		}
		isActive = &parsed
	}

	query, err := queries.NewGetShipsQuery(actor, customerID, isActive)
	if err != nil {
		return writeError(ctx, err)
	}

	ships, err := s.getShipsHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	response := make([]shipResponse, len(ships))
	for i, ship := range ships {
		response[i] = shipResponseFrom(ship)
	}
	return ctx.JSON(http.StatusOK, response)
}

// GetMyShips handles GET /api/v1/ships/my - a customer's own fleet.
// Other roles are rejected with a 403.
func (s *Server) GetMyShips(ctx echo.Context) error {
	actor, ok := actorFromContext(ctx)
	if !ok {
		return writeUnauthorized(ctx, "authentication required")
	}

	query, err := queries.NewGetMyShipsQuery(actor)
	if err != nil {
		return writeError(ctx, err)
	}

	ships, err := s.getShipsHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	response := make([]shipResponse, len(ships))
	for i, ship := range ships {
		response[i] = shipResponseFrom(ship)
	}
	return ctx.JSON(http.StatusOK, response)
}

// GetShip handles GET /api/v1/ships/:shipID - a single ship visible to
// the caller. Ships outside the caller's scope read as not found.
func (s *Server) GetShip(ctx echo.Context) error {
	actor, ok := actorFromContext(ctx)
	if !ok {
		return writeUnauthorized(ctx, "authentication required")
	}

	shipID, err := pathUUID(ctx, "shipID")
	if err != nil {
		return writeError(ctx, err)
	}

	query, err := queries.NewGetShipQuery(actor, shipID)
	if err != nil {
		return writeError(ctx, err)
	}

	ship, err := s.getShipHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, shipResponseFrom(ship))
}

// CreatePurchaseOrder handles POST /api/v1/purchase-orders.
func (s *Server) CreatePurchaseOrder(ctx echo.Context) error {
	actor, ok := actorFromContext(ctx)
	if !ok {
		return writeUnauthorized(ctx, "authentication required")
	}

	var req createPurchaseOrderRequest
	if err := ctx.Bind(&req); err != nil {
		return writeBadRequest(ctx, "invalid request body")
	}
	if err := ctx.Validate(&req); err != nil {
		return writeBadRequest(ctx, err.Error())
	}

	shipID, err := requiredUUID(req.ShipID, "shipId")
	if err != nil {
		return writeError(ctx, err)
	}

	orderID := kernel.NewUUID()
	cmd, err := commands.NewCreatePurchaseOrderCommand(
		actor, orderID, shipID,
		req.OrderNumber, req.Title, req.Description,
		req.ItemName, req.ItemDescription,
		req.Quantity, req.Unit,
		req.OrderDate, req.DeliveryDate,
	)
	if err != nil {
		return writeError(ctx, err)
	}

	if err := s.createPurchaseOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, idResponse{ID: orderID.String()})
}

// GetPurchaseOrders handles GET /api/v1/purchase-orders with optional
// status and shipId query filters.
func (s *Server) GetPurchaseOrders(ctx echo.Context) error {
	actor, ok := actorFromContext(ctx)
	if !ok {
		return writeUnauthorized(ctx, "authentication required")
	}

	var status *procurement.Status
	if raw := ctx.QueryParam("status"); raw != "" {
		parsed, err := procurement.ParseStatus(raw)
		if err != nil {
			return writeError(ctx, err)
		}
		status = &parsed
	}

	shipID, err := optionalUUIDQuery(ctx, "shipId")
	if err != nil {
		return writeError(ctx, err)
	}

	query, err := queries.NewGetPurchaseOrdersQuery(actor, status, shipID)
	if err != nil {
		return writeError(ctx, err)
	}

	orders, err := s.getPurchaseOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	response := make([]purchaseOrderResponse, len(orders))
	for i, order := range orders {
		response[i] = purchaseOrderResponseFrom(order)
	}
	return ctx.JSON(http.StatusOK, response)
}

// GetPurchaseOrder handles GET /api/v1/purchase-orders/:orderID - a
// single order visible to the caller. Orders outside the caller's
// scope read as not found.
func (s *Server) GetPurchaseOrder(ctx echo.Context) error {
	actor, ok := actorFromContext(ctx)
	if !ok {
		return writeUnauthorized(ctx, "authentication required")
	}

	orderID, err := pathUUID(ctx, "orderID")
	if err != nil {
		return writeError(ctx, err)
	}

	query, err := queries.NewGetPurchaseOrderQuery(actor, orderID)
	if err != nil {
		return writeError(ctx, err)
	}

	order, err := s.getPurchaseOrderHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, purchaseOrderDetailResponseFrom(order))
}

// RequestDeclaration handles POST
// /api/v1/purchase-orders/:orderID/declaration-requests - asks a
// supplier for a material declaration on an order.
func (s *Server) RequestDeclaration(ctx echo.Context) error {
	actor, ok := actorFromContext(ctx)
	if !ok {
		return writeUnauthorized(ctx, "authentication required")
	}

	orderID, err := pathUUID(ctx, "orderID")
	if err != nil {
		return writeError(ctx, err)
	}

	var req requestDeclarationRequest
	if err := ctx.Bind(&req); err != nil {
		return writeBadRequest(ctx, "invalid request body")
	}
	if err := ctx.Validate(&req); err != nil {
		return writeBadRequest(ctx, err.Error())
	}

	supplierID, err := requiredUUID(req.SupplierID, "supplierId")
	if err != nil {
		return writeError(ctx, err)
	}

	requestID := kernel.NewUUID()
	cmd, err := commands.NewRequestDeclarationCommand(actor, requestID, orderID, supplierID, req.DueDate)
	if err != nil {
		return writeError(ctx, err)
	}

	if err := s.requestDeclarationHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, idResponse{ID: requestID.String()})
}

// GetDeclarationRequests handles GET /api/v1/declaration-requests with
// an optional status filter. Suppliers fetch their work queue with
// ?status=pending.
func (s *Server) GetDeclarationRequests(ctx echo.Context) error {
	actor, ok := actorFromContext(ctx)
	if !ok {
		return writeUnauthorized(ctx, "authentication required")
	}

	var status *declaration.RequestStatus
	if raw := ctx.QueryParam("status"); raw != "" {
		parsed, err := declaration.ParseRequestStatus(raw)
		if err != nil {
			return writeError(ctx, err)
		}
		status = &parsed
	}

	query, err := queries.NewGetDeclarationRequestsQuery(actor, status)
	if err != nil {
		return writeError(ctx, err)
	}

	requests, err := s.getDeclarationRequestsHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	response := make([]declarationRequestResponse, len(requests))
	for i, request := range requests {
		response[i] = declarationRequestResponseFrom(request)
	}
	return ctx.JSON(http.StatusOK, response)
}

// GetPendingRequests handles GET /api/v1/declaration-requests/pending -
// the calling supplier's work queue. Other roles are rejected with a
// 403.
func (s *Server) GetPendingRequests(ctx echo.Context) error {
	actor, ok := actorFromContext(ctx)
	if !ok {
		return writeUnauthorized(ctx, "authentication required")
	}

	query, err := queries.NewGetPendingRequestsQuery(actor)
	if err != nil {
		return writeError(ctx, err)
	}

	requests, err := s.getDeclarationRequestsHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	response := make([]declarationRequestResponse, len(requests))
	for i, request := range requests {
		response[i] = declarationRequestResponseFrom(request)
	}
	return ctx.JSON(http.StatusOK, response)
}

// ApproveRequest handles POST
// /api/v1/declaration-requests/:requestID/approve.
func (s *Server) ApproveRequest(ctx echo.Context) error {
	actor, ok := actorFromContext(ctx)
	if !ok {
		return writeUnauthorized(ctx, "authentication required")
	}

	requestID, err := pathUUID(ctx, "requestID")
	if err != nil {
		return writeError(ctx, err)
	}

	cmd, err := commands.NewApproveRequestCommand(actor, requestID)
	if err != nil {
		return writeError(ctx, err)
	}

	if err := s.approveRequestHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// RejectRequest handles POST
// /api/v1/declaration-requests/:requestID/reject with a required reason.
func (s *Server) RejectRequest(ctx echo.Context) error {
	actor, ok := actorFromContext(ctx)
	if !ok {
		return writeUnauthorized(ctx, "authentication required")
	}

	requestID, err := pathUUID(ctx, "requestID")
	if err != nil {
		return writeError(ctx, err)
	}

	var req rejectionRequest
	if err := ctx.Bind(&req); err != nil {
		return writeBadRequest(ctx, "invalid request body")
	}
	if err := ctx.Validate(&req); err != nil {
		return writeBadRequest(ctx, err.Error())
	}

	cmd, err := commands.NewRejectRequestCommand(actor, requestID, req.Reason)
	if err != nil {
		return writeError(ctx, err)
	}

	if err := s.rejectRequestHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// SubmitDeclaration handles POST /api/v1/declarations - a supplier
// submits a declaration with its material rows against a purchase
// order.
func (s *Server) SubmitDeclaration(ctx echo.Context) error {
	actor, ok := actorFromContext(ctx)
	if !ok {
		return writeUnauthorized(ctx, "authentication required")
	}

	var req submitDeclarationRequest
	if err := ctx.Bind(&req); err != nil {
		return writeBadRequest(ctx, "invalid request body")
	}
	if err := ctx.Validate(&req); err != nil {
		return writeBadRequest(ctx, err.Error())
	}

	purchaseOrderID, err := requiredUUID(req.PurchaseOrderID, "purchaseOrderId")
	if err != nil {
		return writeError(ctx, err)
	}
	declarationType, err := declaration.ParseType(req.DeclarationType)
	if err != nil {
		return writeError(ctx, err)
	}
	complianceStatus, err := declaration.ParseComplianceStatus(req.ComplianceStatus)
	if err != nil {
		return writeError(ctx, err)
	}

	materials := make([]commands.MaterialInput, len(req.Materials))
	for i, m := range req.Materials {
		materials[i] = commands.MaterialInput{
			MaterialName:      m.MaterialName,
			CASNumber:         m.CASNumber,
			ContentPercentage: m.ContentPercentage,
			LocationInProduct: m.LocationInProduct,
			Remarks:           m.Remarks,
		}
	}

	declarationID := kernel.NewUUID()
	cmd, err := commands.NewSubmitDeclarationCommand(
		actor, declarationID, purchaseOrderID,
		req.DeclarationNumber, req.Title, declarationType,
		req.ItemName, req.Manufacturer, req.ModelNumber,
		complianceStatus, req.CertificationNumber,
		req.SupplierSignature, req.SupplierName, req.SignatureDate,
		materials,
	)
	if err != nil {
		return writeError(ctx, err)
	}

	if err := s.submitDeclarationHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, idResponse{ID: declarationID.String()})
}

// GetDeclarations handles GET /api/v1/declarations with optional
// status, type and shipId filters. Customers review their fleet's
// approved declarations with ?status=approved.
func (s *Server) GetDeclarations(ctx echo.Context) error {
	actor, ok := actorFromContext(ctx)
	if !ok {
		return writeUnauthorized(ctx, "authentication required")
	}

	var status *declaration.Status
	if raw := ctx.QueryParam("status"); raw != "" {
		parsed, err := declaration.ParseStatus(raw)
		if err != nil {
			return writeError(ctx, err)
		}
		status = &parsed
	}

	var declarationType *declaration.Type
	if raw := ctx.QueryParam("type"); raw != "" {
		parsed, err := declaration.ParseType(raw)
		if err != nil {
			return writeError(ctx, err)
		}
		declarationType = &parsed
	}

	shipID, err := optionalUUIDQuery(ctx, "shipId")
	if err != nil {
		return writeError(ctx, err)
	}

	query, err := queries.NewGetDeclarationsQuery(actor, status, declarationType, shipID)
	if err != nil {
		return writeError(ctx, err)
	}

	declarations, err := s.getDeclarationsHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	response := make([]declarationResponse, len(declarations))
	for i, decl := range declarations {
		response[i] = declarationResponseFrom(decl)
	}
	return ctx.JSON(http.StatusOK, response)
}

// GetMyShipDeclarations handles GET /api/v1/declarations/my-ships -
// approved declarations for the calling customer's fleet. Other roles
// are rejected with a 403.
func (s *Server) GetMyShipDeclarations(ctx echo.Context) error {
	actor, ok := actorFromContext(ctx)
	if !ok {
		return writeUnauthorized(ctx, "authentication required")
	}

	query, err := queries.NewGetMyShipDeclarationsQuery(actor)
	if err != nil {
		return writeError(ctx, err)
	}

	declarations, err := s.getDeclarationsHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	response := make([]declarationResponse, len(declarations))
	for i, decl := range declarations {
		response[i] = declarationResponseFrom(decl)
	}
	return ctx.JSON(http.StatusOK, response)
}

// GetDeclarationDetail handles GET /api/v1/declarations/:declarationID -
// the full declaration with its material rows.
func (s *Server) GetDeclarationDetail(ctx echo.Context) error {
	actor, ok := actorFromContext(ctx)
	if !ok {
		return writeUnauthorized(ctx, "authentication required")
	}

	declarationID, err := pathUUID(ctx, "declarationID")
	if err != nil {
		return writeError(ctx, err)
	}

	query, err := queries.NewGetDeclarationDetailQuery(actor, declarationID)
	if err != nil {
		return writeError(ctx, err)
	}

	detail, err := s.getDeclarationDetailHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, declarationDetailResponseFrom(detail))
}

// ApproveDeclaration handles POST
// /api/v1/declarations/:declarationID/approve.
func (s *Server) ApproveDeclaration(ctx echo.Context) error {
	actor, ok := actorFromContext(ctx)
	if !ok {
		return writeUnauthorized(ctx, "authentication required")
	}

	declarationID, err := pathUUID(ctx, "declarationID")
	if err != nil {
		return writeError(ctx, err)
	}

	cmd, err := commands.NewApproveDeclarationCommand(actor, declarationID)
	if err != nil {
		return writeError(ctx, err)
	}

	if err := s.approveDeclarationHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// RejectDeclaration handles POST
// /api/v1/declarations/:declarationID/reject with a required reason.
func (s *Server) RejectDeclaration(ctx echo.Context) error {
	actor, ok := actorFromContext(ctx)
	if !ok {
		return writeUnauthorized(ctx, "authentication required")
	}

	declarationID, err := pathUUID(ctx, "declarationID")
	if err != nil {
		return writeError(ctx, err)
	}

	var req rejectionRequest
	if err := ctx.Bind(&req); err != nil {
		return writeBadRequest(ctx, "invalid request body")
	}
	if err := ctx.Validate(&req); err != nil {
		return writeBadRequest(ctx, err.Error())
	}

	cmd, err := commands.NewRejectDeclarationCommand(actor, declarationID, req.Reason)
	if err != nil {
		return writeError(ctx, err)
	}

	if err := s.rejectDeclarationHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// GetHazardousMaterials handles GET /api/v1/hazardous-materials with
// optional declarationId and materialName filters. materialName matches
// as a case-insensitive substring.
func (s *Server) GetHazardousMaterials(ctx echo.Context) error {
	actor, ok := actorFromContext(ctx)
	if !ok {
		return writeUnauthorized(ctx, "authentication required")
	}

	declarationID, err := optionalUUIDQuery(ctx, "declarationId")
	if err != nil {
		return writeError(ctx, err)
	}

	query, err := queries.NewGetHazardousMaterialsQuery(actor, declarationID, ctx.QueryParam("materialName"))
	if err != nil {
		return writeError(ctx, err)
	}

	materials, err := s.getHazardousMaterialsHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	response := make([]hazardousMaterialResponse, len(materials))
	for i, material := range materials {
		response[i] = hazardousMaterialResponseFrom(material)
	}
	return ctx.JSON(http.StatusOK, response)
}

// pathUUID parses a UUID path parameter.
func pathUUID(ctx echo.Context, name string) (kernel.UUID, error) {
	return requiredUUID(ctx.Param(name), name)
}

// requiredUUID parses a UUID string, folding parse failures into a
// validation error so they surface as 400 rather than 500.
func requiredUUID(raw, name string) (kernel.UUID, error) {
	id, err := kernel.UUIDFromString(raw)
	if err != nil {
		return kernel.UUID{}, errs.NewValueIsInvalidErrorWithCause(name, err)
	}
	return id, nil
}

// optionalUUIDQuery parses a UUID query parameter, returning nil when it
// is absent.
func optionalUUIDQuery(ctx echo.Context, name string) (*kernel.UUID, error) {
	raw := ctx.QueryParam(name)
	if raw == "" {
		return nil, nil
	}
	id, err := requiredUUID(raw, name)
	if err != nil {
		return nil, err
	}
	return &id, nil
}

// optionalUUID parses an optional UUID string from a request body.
func optionalUUID(raw *string, name string) (*kernel.UUID, error) {
	if raw == nil || *raw == "" {
		return nil, nil
	}
	id, err := requiredUUID(*raw, name)
	if err != nil {
		return nil, err
	}
	return &id, nil
}
