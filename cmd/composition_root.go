package cmd

import (
	"log/slog"
	"time"

	httpin "ihm/internal/adapters/in/http"
	"ihm/internal/adapters/out/postgres"
	"ihm/internal/core/application/usecases/commands"
	"ihm/internal/core/application/usecases/queries"
	"ihm/internal/jobs"
	"ihm/internal/pkg/auth"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
	hasher     *auth.BcryptHasher
	tokens     *auth.TokenService
	logger     *slog.Logger
}

func NewCompositionRoot(configs Config, gormDB *gorm.DB, logger *slog.Logger) (CompositionRoot, error) {
	tokens, err := auth.NewTokenService(configs.JWTSecret, 24*time.Hour)
	if err != nil {
		return CompositionRoot{}, err
	}

	return CompositionRoot{
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
		hasher:     auth.NewBcryptHasher(),
		tokens:     tokens,
		logger:     logger,
	}, nil
}

func (c *CompositionRoot) CreateRegisterUserCommandHandler() commands.RegisterUserCommandHandler {
	var f commands.AccountUoWFactory = FuncAccountUoWFactory(func() commands.AccountUoW {
		return c.uowFactory.Create()
	})
	return commands.NewRegisterUserCommandHandler(f, c.hasher)
}

func (c *CompositionRoot) CreateCreateShipCommandHandler() commands.CreateShipCommandHandler {
	return commands.NewCreateShipCommandHandler(c.fleetUoWFactory())
}

func (c *CompositionRoot) CreateUpdateShipCommandHandler() commands.UpdateShipCommandHandler {
	return commands.NewUpdateShipCommandHandler(c.fleetUoWFactory())
}

func (c *CompositionRoot) CreateCreatePurchaseOrderCommandHandler() commands.CreatePurchaseOrderCommandHandler {
	var f commands.ProcurementUoWFactory = FuncProcurementUoWFactory(func() commands.ProcurementUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreatePurchaseOrderCommandHandler(f)
}

func (c *CompositionRoot) CreateRequestDeclarationCommandHandler() commands.RequestDeclarationCommandHandler {
	return commands.NewRequestDeclarationCommandHandler(c.declarationUoWFactory())
}

func (c *CompositionRoot) CreateApproveRequestCommandHandler() commands.ApproveRequestCommandHandler {
	return commands.NewApproveRequestCommandHandler(c.declarationUoWFactory())
}

func (c *CompositionRoot) CreateRejectRequestCommandHandler() commands.RejectRequestCommandHandler {
	return commands.NewRejectRequestCommandHandler(c.declarationUoWFactory())
}

func (c *CompositionRoot) CreateSubmitDeclarationCommandHandler() commands.SubmitDeclarationCommandHandler {
	return commands.NewSubmitDeclarationCommandHandler(c.declarationUoWFactory())
}

func (c *CompositionRoot) CreateApproveDeclarationCommandHandler() commands.ApproveDeclarationCommandHandler {
	return commands.NewApproveDeclarationCommandHandler(c.declarationUoWFactory())
}

func (c *CompositionRoot) CreateRejectDeclarationCommandHandler() commands.RejectDeclarationCommandHandler {
	return commands.NewRejectDeclarationCommandHandler(c.declarationUoWFactory())
}

func (c *CompositionRoot) CreateFlagOverdueRequestsCommandHandler() commands.FlagOverdueRequestsCommandHandler {
	return commands.NewFlagOverdueRequestsCommandHandler(c.declarationUoWFactory(), c.logger)
}

func (c *CompositionRoot) CreateGetCredentialsQueryHandler() queries.GetCredentialsQueryHandler {
	return queries.NewGetCredentialsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetAccountQueryHandler() queries.GetAccountQueryHandler {
	return queries.NewGetAccountQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetCompanyProfileQueryHandler() queries.GetCompanyProfileQueryHandler {
	return queries.NewGetCompanyProfileQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetCustomersQueryHandler() queries.GetCustomersQueryHandler {
	return queries.NewGetCustomersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetSuppliersQueryHandler() queries.GetSuppliersQueryHandler {
	return queries.NewGetSuppliersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetShipsQueryHandler() queries.GetShipsQueryHandler {
	return queries.NewGetShipsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetShipQueryHandler() queries.GetShipQueryHandler {
	return queries.NewGetShipQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetPurchaseOrdersQueryHandler() queries.GetPurchaseOrdersQueryHandler {
	return queries.NewGetPurchaseOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetPurchaseOrderQueryHandler() queries.GetPurchaseOrderQueryHandler {
	return queries.NewGetPurchaseOrderQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetDeclarationRequestsQueryHandler() queries.GetDeclarationRequestsQueryHandler {
	return queries.NewGetDeclarationRequestsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetDeclarationsQueryHandler() queries.GetDeclarationsQueryHandler {
	return queries.NewGetDeclarationsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetDeclarationDetailQueryHandler() queries.GetDeclarationDetailQueryHandler {
	return queries.NewGetDeclarationDetailQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetHazardousMaterialsQueryHandler() queries.GetHazardousMaterialsQueryHandler {
	return queries.NewGetHazardousMaterialsQueryHandler(c.gormDB)
}

// CreateHTTPServer assembles the HTTP facade with every handler wired.
func (c *CompositionRoot) CreateHTTPServer() *httpin.Server {
	return httpin.NewServer(httpin.ServerParams{
		Tokens:    c.tokens,
		Passwords: c.hasher,

		RegisterUserHandler:        c.CreateRegisterUserCommandHandler(),
		CreateShipHandler:          c.CreateCreateShipCommandHandler(),
		UpdateShipHandler:          c.CreateUpdateShipCommandHandler(),
		CreatePurchaseOrderHandler: c.CreateCreatePurchaseOrderCommandHandler(),
		RequestDeclarationHandler:  c.CreateRequestDeclarationCommandHandler(),
		ApproveRequestHandler:      c.CreateApproveRequestCommandHandler(),
		RejectRequestHandler:       c.CreateRejectRequestCommandHandler(),
		SubmitDeclarationHandler:   c.CreateSubmitDeclarationCommandHandler(),
		ApproveDeclarationHandler:  c.CreateApproveDeclarationCommandHandler(),
		RejectDeclarationHandler:   c.CreateRejectDeclarationCommandHandler(),

		GetCredentialsHandler:         c.CreateGetCredentialsQueryHandler(),
		GetAccountHandler:             c.CreateGetAccountQueryHandler(),
		GetCompanyProfileHandler:      c.CreateGetCompanyProfileQueryHandler(),
		GetCustomersHandler:           c.CreateGetCustomersQueryHandler(),
		GetSuppliersHandler:           c.CreateGetSuppliersQueryHandler(),
		GetShipsHandler:               c.CreateGetShipsQueryHandler(),
		GetShipHandler:                c.CreateGetShipQueryHandler(),
		GetPurchaseOrdersHandler:      c.CreateGetPurchaseOrdersQueryHandler(),
		GetPurchaseOrderHandler:       c.CreateGetPurchaseOrderQueryHandler(),
		GetDeclarationRequestsHandler: c.CreateGetDeclarationRequestsQueryHandler(),
		GetDeclarationsHandler:        c.CreateGetDeclarationsQueryHandler(),
		GetDeclarationDetailHandler:   c.CreateGetDeclarationDetailQueryHandler(),
		GetHazardousMaterialsHandler:  c.CreateGetHazardousMaterialsQueryHandler(),
	})
}

// CreateJobManager assembles the background job manager.
func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	return jobs.NewJobManager(c.CreateFlagOverdueRequestsCommandHandler(), c.logger)
}

// TokenService exposes the token parser for middleware construction.
func (c *CompositionRoot) TokenService() *auth.TokenService {
	return c.tokens
}

func (c *CompositionRoot) fleetUoWFactory() commands.FleetUoWFactory {
	return FuncFleetUoWFactory(func() commands.FleetUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) declarationUoWFactory() commands.DeclarationUoWFactory {
	return FuncDeclarationUoWFactory(func() commands.DeclarationUoW {
		return c.uowFactory.Create()
	})
}

type FuncAccountUoWFactory func() commands.AccountUoW

func (f FuncAccountUoWFactory) Create() commands.AccountUoW {
	return f()
}

type FuncFleetUoWFactory func() commands.FleetUoW

func (f FuncFleetUoWFactory) Create() commands.FleetUoW {
	return f()
}

type FuncProcurementUoWFactory func() commands.ProcurementUoW

func (f FuncProcurementUoWFactory) Create() commands.ProcurementUoW {
	return f()
}

type FuncDeclarationUoWFactory func() commands.DeclarationUoW

func (f FuncDeclarationUoWFactory) Create() commands.DeclarationUoW {
	return f()
}
