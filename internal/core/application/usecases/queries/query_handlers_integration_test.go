package queries_test

import (
	"context"
	"testing"
	"time"

	"ihm/internal/adapters/out/postgres/accountrepo"
	"ihm/internal/adapters/out/postgres/declarationrepo"
	"ihm/internal/adapters/out/postgres/fleetrepo"
	"ihm/internal/adapters/out/postgres/procurementrepo"
	"ihm/internal/core/application/usecases/queries"
	"ihm/internal/core/domain/model/account"
	"ihm/internal/core/domain/model/declaration"
	"ihm/internal/core/domain/model/kernel"
	"ihm/internal/core/domain/model/procurement"
	"ihm/internal/core/domain/services"
	"ihm/internal/pkg/errs"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// QueryHandlersIntegrationTestSuite exercises the directory, detail and
// self-scoped listing handlers against a seeded world: two customers with
// ships, two suppliers, one purchase order with a pending declaration
// request for the first supplier, and one approved declaration on the
// first customer's ship.
type QueryHandlersIntegrationTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB

	customersHandler     queries.GetCustomersQueryHandler
	suppliersHandler     queries.GetSuppliersQueryHandler
	shipsHandler         queries.GetShipsQueryHandler
	shipHandler          queries.GetShipQueryHandler
	purchaseOrderHandler queries.GetPurchaseOrderQueryHandler
	requestsHandler      queries.GetDeclarationRequestsQueryHandler
	declarationsHandler  queries.GetDeclarationsQueryHandler

	operator  services.Actor
	customer1 services.Actor
	customer2 services.Actor
	supplier1 services.Actor
	supplier2 services.Actor

	customer1ID kernel.UUID
	customer2ID kernel.UUID
	supplier1ID kernel.UUID
	supplier2ID kernel.UUID
	ship1ID     kernel.UUID
	ship2ID     kernel.UUID
	ship3ID     kernel.UUID
	order1ID    kernel.UUID
	request1ID  kernel.UUID
}

func (suite *QueryHandlersIntegrationTestSuite) SetupSuite() {
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

	db, err := gorm.Open(gorm_postgres.Open(dsn), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	err = db.AutoMigrate(
		&accountrepo.UserDTO{},
		&accountrepo.CustomerDTO{},
		&accountrepo.SupplierDTO{},
		&fleetrepo.ShipDTO{},
		&procurementrepo.PurchaseOrderDTO{},
		&declarationrepo.RequestDTO{},
		&declarationrepo.DeclarationDTO{},
		&declarationrepo.HazardousMaterialDTO{},
	)
	suite.Require().NoError(err)

	suite.customersHandler = queries.NewGetCustomersQueryHandler(db)
	suite.suppliersHandler = queries.NewGetSuppliersQueryHandler(db)
	suite.shipsHandler = queries.NewGetShipsQueryHandler(db)
	suite.shipHandler = queries.NewGetShipQueryHandler(db)
	suite.purchaseOrderHandler = queries.NewGetPurchaseOrderQueryHandler(db)
	suite.requestsHandler = queries.NewGetDeclarationRequestsQueryHandler(db)
	suite.declarationsHandler = queries.NewGetDeclarationsQueryHandler(db)

	suite.seedWorld()
}

func (suite *QueryHandlersIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		err := suite.container.Terminate(context.Background())
		suite.Require().NoError(err)
	}
}

// seedWorld inserts the fixture rows every test reads from. All tests in
// this suite are read-only, so seeding happens once.
func (suite *QueryHandlersIntegrationTestSuite) seedWorld() {
	now := time.Now().UTC()

	suite.operator = services.Actor{UserID: kernel.NewUUID(), Role: account.RoleOperator}
	suite.customer1 = services.Actor{UserID: kernel.NewUUID(), Role: account.RoleCustomer}
	suite.customer2 = services.Actor{UserID: kernel.NewUUID(), Role: account.RoleCustomer}
	suite.supplier1 = services.Actor{UserID: kernel.NewUUID(), Role: account.RoleSupplier}
	suite.supplier2 = services.Actor{UserID: kernel.NewUUID(), Role: account.RoleSupplier}

	users := []accountrepo.UserDTO{
		{ID: suite.operator.UserID.Bytes(), Username: "operator", Email: "operator@example.com", PasswordHash: "x", Role: "operator", IsActive: true, CreatedAt: now},
		{ID: suite.customer1.UserID.Bytes(), Username: "poseidon", Email: "poseidon@example.com", PasswordHash: "x", Role: "customer", IsActive: true, CreatedAt: now},
		{ID: suite.customer2.UserID.Bytes(), Username: "nereus", Email: "nereus@example.com", PasswordHash: "x", Role: "customer", IsActive: true, CreatedAt: now},
		{ID: suite.supplier1.UserID.Bytes(), Username: "marineparts", Email: "sales@marineparts.example.com", PasswordHash: "x", Role: "supplier", IsActive: true, CreatedAt: now},
		{ID: suite.supplier2.UserID.Bytes(), Username: "deckworks", Email: "sales@deckworks.example.com", PasswordHash: "x", Role: "supplier", IsActive: true, CreatedAt: now},
	}
	suite.Require().NoError(suite.db.Create(&users).Error)

	suite.customer1ID = kernel.NewUUID()
	suite.customer2ID = kernel.NewUUID()
	customer1UserID := suite.customer1.UserID.Bytes()
	customer2UserID := suite.customer2.UserID.Bytes()
	customers := []accountrepo.CustomerDTO{
		{ID: suite.customer1ID.Bytes(), UserID: &customer1UserID, CompanyName: "Poseidon Shipping", BusinessNumber: "110-81-11111", CreatedAt: now},
		{ID: suite.customer2ID.Bytes(), UserID: &customer2UserID, CompanyName: "Nereus Lines", BusinessNumber: "220-81-22222", CreatedAt: now},
	}
	suite.Require().NoError(suite.db.Create(&customers).Error)

	suite.supplier1ID = kernel.NewUUID()
	suite.supplier2ID = kernel.NewUUID()
	suppliers := []accountrepo.SupplierDTO{
		{ID: suite.supplier1ID.Bytes(), UserID: suite.supplier1.UserID.Bytes(), CompanyName: "Marine Parts Co.", BusinessNumber: "330-81-33333", CreatedAt: now},
		{ID: suite.supplier2ID.Bytes(), UserID: suite.supplier2.UserID.Bytes(), CompanyName: "Deckworks Supply", BusinessNumber: "440-81-44444", CreatedAt: now},
	}
	suite.Require().NoError(suite.db.Create(&suppliers).Error)

	suite.ship1ID = kernel.NewUUID()
	suite.ship2ID = kernel.NewUUID()
	suite.ship3ID = kernel.NewUUID()
	ships := []fleetrepo.ShipDTO{
		{ID: suite.ship1ID.Bytes(), CustomerID: suite.customer1ID.Bytes(), Name: "Aphrodite", IMONumber: "IMO9000001", ShipType: "bulk carrier", GrossTonnage: 52000, YearBuilt: 2015, IsActive: true, CreatedAt: now},
		{ID: suite.ship2ID.Bytes(), CustomerID: suite.customer1ID.Bytes(), Name: "Boreas", IMONumber: "IMO9000002", ShipType: "tanker", GrossTonnage: 48000, YearBuilt: 2009, IsActive: false, CreatedAt: now},
		{ID: suite.ship3ID.Bytes(), CustomerID: suite.customer2ID.Bytes(), Name: "Calypso", IMONumber: "IMO9000003", ShipType: "container ship", GrossTonnage: 91000, YearBuilt: 2019, IsActive: true, CreatedAt: now},
	}
	suite.Require().NoError(suite.db.Create(&ships).Error)

	suite.order1ID = kernel.NewUUID()
	order := procurementrepo.PurchaseOrderDTO{
		ID:              suite.order1ID.Bytes(),
		ShipID:          suite.ship1ID.Bytes(),
		OrderNumber:     "PO-2026-0001",
		Title:           "Engine room piping",
		Description:     "Replacement piping for the engine room refit",
		ItemName:        "Pipe flange gasket",
		ItemDescription: "DN100 spiral wound gasket",
		Quantity:        40,
		Unit:            "EA",
		OrderDate:       now.AddDate(0, 0, -10),
		Status:          procurement.StatusPending.String(),
		CreatedBy:       suite.customer1.UserID.Bytes(),
		CreatedAt:       now,
	}
	suite.Require().NoError(suite.db.Create(&order).Error)

	suite.request1ID = kernel.NewUUID()
	request := declarationrepo.RequestDTO{
		ID:              suite.request1ID.Bytes(),
		PurchaseOrderID: suite.order1ID.Bytes(),
		SupplierID:      suite.supplier1ID.Bytes(),
		RequestDate:     now.AddDate(0, 0, -7),
		Status:          declaration.RequestStatusPending.String(),
		CreatedBy:       suite.customer1.UserID.Bytes(),
		CreatedAt:       now,
	}
	suite.Require().NoError(suite.db.Create(&request).Error)

	submitted := now.AddDate(0, 0, -2)
	approved := now.AddDate(0, 0, -1)
	decl := declarationrepo.DeclarationDTO{
		ID:                kernel.NewUUID().Bytes(),
		RequestID:         suite.request1ID.Bytes(),
		SupplierID:        suite.supplier1ID.Bytes(),
		ShipID:            suite.ship1ID.Bytes(),
		DeclarationNumber: "MD-2026-0001",
		Title:             "Engine room piping materials",
		DeclarationType:   declaration.TypeMD.String(),
		ComplianceStatus:  declaration.Compliant.String(),
		SubmittedDate:     &submitted,
		ApprovedDate:      &approved,
		Status:            declaration.StatusApproved.String(),
		CreatedAt:         now,
	}
	suite.Require().NoError(suite.db.Create(&decl).Error)
}

func (suite *QueryHandlersIntegrationTestSuite) TestGetCustomers_CustomerSeesOnlyOwnProfile() {
	query, err := queries.NewGetCustomersQuery(suite.customer1)
	suite.Require().NoError(err)

	result, err := suite.customersHandler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.Require().Len(result, 1)
	suite.Equal(suite.customer1ID, result[0].ID)
	suite.Equal("Poseidon Shipping", result[0].CompanyName)
}

func (suite *QueryHandlersIntegrationTestSuite) TestGetCustomers_SupplierSeesAllCustomers() {
	query, err := queries.NewGetCustomersQuery(suite.supplier1)
	suite.Require().NoError(err)

	result, err := suite.customersHandler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.Require().Len(result, 2)
	suite.Equal("Nereus Lines", result[0].CompanyName)
	suite.Equal("Poseidon Shipping", result[1].CompanyName)
}

func (suite *QueryHandlersIntegrationTestSuite) TestGetSuppliers_SupplierSeesOnlyOwnProfile() {
	query, err := queries.NewGetSuppliersQuery(suite.supplier2)
	suite.Require().NoError(err)

	result, err := suite.suppliersHandler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.Require().Len(result, 1)
	suite.Equal(suite.supplier2ID, result[0].ID)
	suite.Equal("Deckworks Supply", result[0].CompanyName)
}

func (suite *QueryHandlersIntegrationTestSuite) TestGetSuppliers_CustomerSeesAllSuppliers() {
	query, err := queries.NewGetSuppliersQuery(suite.customer1)
	suite.Require().NoError(err)

	result, err := suite.suppliersHandler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.Require().Len(result, 2)
	suite.Equal("Deckworks Supply", result[0].CompanyName)
	suite.Equal("Marine Parts Co.", result[1].CompanyName)
}

func (suite *QueryHandlersIntegrationTestSuite) TestGetShips_CustomerIDFilter_LimitsToThatFleet() {
	query, err := queries.NewGetShipsQuery(suite.operator, &suite.customer2ID, nil)
	suite.Require().NoError(err)

	result, err := suite.shipsHandler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.Require().Len(result, 1)
	suite.Equal("Calypso", result[0].Name)
	suite.Equal(suite.customer2ID, result[0].CustomerID)
}

func (suite *QueryHandlersIntegrationTestSuite) TestGetShips_IsActiveFilter_SplitsFleet() {
	active := true
	query, err := queries.NewGetShipsQuery(suite.customer1, nil, &active)
	suite.Require().NoError(err)

	result, err := suite.shipsHandler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.Require().Len(result, 1)
	suite.Equal("Aphrodite", result[0].Name)

	inactive := false
	query, err = queries.NewGetShipsQuery(suite.customer1, nil, &inactive)
	suite.Require().NoError(err)

	result, err = suite.shipsHandler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.Require().Len(result, 1)
	suite.Equal("Boreas", result[0].Name)
}

func (suite *QueryHandlersIntegrationTestSuite) TestGetShip_OwnShip_ReturnsShip() {
	query, err := queries.NewGetShipQuery(suite.customer1, suite.ship1ID)
	suite.Require().NoError(err)

	result, err := suite.shipHandler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.Equal(suite.ship1ID, result.ID)
	suite.Equal("Aphrodite", result.Name)
	suite.Equal("Poseidon Shipping", result.CustomerCompany)
	suite.Equal("IMO9000001", result.IMONumber)
}

func (suite *QueryHandlersIntegrationTestSuite) TestGetShip_OtherCustomersShip_ReturnsNotFound() {
	query, err := queries.NewGetShipQuery(suite.customer2, suite.ship1ID)
	suite.Require().NoError(err)

	_, err = suite.shipHandler.Handle(context.Background(), query)

	suite.Require().Error(err)
	var notFoundErr *errs.ObjectNotFoundError
	suite.Require().ErrorAs(err, &notFoundErr)
}

func (suite *QueryHandlersIntegrationTestSuite) TestGetPurchaseOrder_Operator_ReturnsFullRow() {
	query, err := queries.NewGetPurchaseOrderQuery(suite.operator, suite.order1ID)
	suite.Require().NoError(err)

	result, err := suite.purchaseOrderHandler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.Equal(suite.order1ID, result.ID)
	suite.Equal("PO-2026-0001", result.OrderNumber)
	suite.Equal("Aphrodite", result.ShipName)
	suite.Equal("Replacement piping for the engine room refit", result.Description)
	suite.Equal("DN100 spiral wound gasket", result.ItemDescription)
	suite.Equal(40.0, result.Quantity)
}

func (suite *QueryHandlersIntegrationTestSuite) TestGetPurchaseOrder_SupplierWithRequest_ReturnsOrder() {
	query, err := queries.NewGetPurchaseOrderQuery(suite.supplier1, suite.order1ID)
	suite.Require().NoError(err)

	result, err := suite.purchaseOrderHandler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.Equal(suite.order1ID, result.ID)
}

func (suite *QueryHandlersIntegrationTestSuite) TestGetPurchaseOrder_SupplierWithoutRequest_ReturnsNotFound() {
	query, err := queries.NewGetPurchaseOrderQuery(suite.supplier2, suite.order1ID)
	suite.Require().NoError(err)

	_, err = suite.purchaseOrderHandler.Handle(context.Background(), query)

	suite.Require().Error(err)
	var notFoundErr *errs.ObjectNotFoundError
	suite.Require().ErrorAs(err, &notFoundErr)
}

func (suite *QueryHandlersIntegrationTestSuite) TestGetMyShips_Customer_ReturnsOwnFleet() {
	query, err := queries.NewGetMyShipsQuery(suite.customer1)
	suite.Require().NoError(err)

	result, err := suite.shipsHandler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.Require().Len(result, 2)
	suite.Equal("Aphrodite", result[0].Name)
	suite.Equal("Boreas", result[1].Name)
}

func (suite *QueryHandlersIntegrationTestSuite) TestGetMyShips_Supplier_ReturnsAuthorizationError() {
	query, err := queries.NewGetMyShipsQuery(suite.supplier1)
	suite.Require().NoError(err)

	result, err := suite.shipsHandler.Handle(context.Background(), query)

	suite.Require().Error(err)
	suite.Nil(result)
	var authErr *errs.AuthorizationError
	suite.Require().ErrorAs(err, &authErr)
}

func (suite *QueryHandlersIntegrationTestSuite) TestGetMyShips_Operator_ReturnsAuthorizationError() {
	query, err := queries.NewGetMyShipsQuery(suite.operator)
	suite.Require().NoError(err)

	_, err = suite.shipsHandler.Handle(context.Background(), query)

	suite.Require().Error(err)
	var authErr *errs.AuthorizationError
	suite.Require().ErrorAs(err, &authErr)
}

func (suite *QueryHandlersIntegrationTestSuite) TestGetPendingRequests_Supplier_ReturnsWorkQueue() {
	query, err := queries.NewGetPendingRequestsQuery(suite.supplier1)
	suite.Require().NoError(err)

	result, err := suite.requestsHandler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.Require().Len(result, 1)
	suite.Equal(suite.request1ID, result[0].ID)
	suite.Equal("PO-2026-0001", result[0].OrderNumber)
	suite.Equal("pending", result[0].Status)
}

func (suite *QueryHandlersIntegrationTestSuite) TestGetPendingRequests_OtherSupplier_ReturnsEmpty() {
	query, err := queries.NewGetPendingRequestsQuery(suite.supplier2)
	suite.Require().NoError(err)

	result, err := suite.requestsHandler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.Empty(result)
}

func (suite *QueryHandlersIntegrationTestSuite) TestGetPendingRequests_Customer_ReturnsAuthorizationError() {
	query, err := queries.NewGetPendingRequestsQuery(suite.customer1)
	suite.Require().NoError(err)

	result, err := suite.requestsHandler.Handle(context.Background(), query)

	suite.Require().Error(err)
	suite.Nil(result)
	var authErr *errs.AuthorizationError
	suite.Require().ErrorAs(err, &authErr)
}

func (suite *QueryHandlersIntegrationTestSuite) TestGetMyShipDeclarations_Customer_ReturnsApprovedDeclarations() {
	query, err := queries.NewGetMyShipDeclarationsQuery(suite.customer1)
	suite.Require().NoError(err)

	result, err := suite.declarationsHandler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.Require().Len(result, 1)
	suite.Equal("MD-2026-0001", result[0].DeclarationNumber)
	suite.Equal("approved", result[0].Status)
	suite.Equal("Aphrodite", result[0].ShipName)
}

func (suite *QueryHandlersIntegrationTestSuite) TestGetMyShipDeclarations_CustomerWithoutDeclarations_ReturnsEmpty() {
	query, err := queries.NewGetMyShipDeclarationsQuery(suite.customer2)
	suite.Require().NoError(err)

	result, err := suite.declarationsHandler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.Empty(result)
}

func (suite *QueryHandlersIntegrationTestSuite) TestGetMyShipDeclarations_Supplier_ReturnsAuthorizationError() {
	query, err := queries.NewGetMyShipDeclarationsQuery(suite.supplier1)
	suite.Require().NoError(err)

	result, err := suite.declarationsHandler.Handle(context.Background(), query)

	suite.Require().Error(err)
	suite.Nil(result)
	var authErr *errs.AuthorizationError
	suite.Require().ErrorAs(err, &authErr)
}

func TestQueryHandlersIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(QueryHandlersIntegrationTestSuite))
}
