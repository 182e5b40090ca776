package commands_test

import (
	"context"
	"time"

	"ihm/internal/core/application/usecases/commands"
	"ihm/internal/core/domain/model/account"
	"ihm/internal/core/domain/model/declaration"
	"ihm/internal/core/domain/model/fleet"
	"ihm/internal/core/domain/model/kernel"
	"ihm/internal/core/domain/model/procurement"
	"ihm/internal/core/ports"

	"github.com/stretchr/testify/mock"
)

// Mock implementations shared by the handler tests in this package.

type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Add(ctx context.Context, user *account.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) Update(ctx context.Context, user *account.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) Get(ctx context.Context, id kernel.UUID) (*account.User, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(*account.User), args.Error(1)
}

func (m *MockUserRepository) GetByUsername(ctx context.Context, username string) (*account.User, error) {
	args := m.Called(ctx, username)
	return args.Get(0).(*account.User), args.Error(1)
}

type MockCustomerRepository struct {
	mock.Mock
}

func (m *MockCustomerRepository) Add(ctx context.Context, customer *account.Customer) error {
	args := m.Called(ctx, customer)
	return args.Error(0)
}

func (m *MockCustomerRepository) Get(ctx context.Context, id kernel.UUID) (*account.Customer, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(*account.Customer), args.Error(1)
}

func (m *MockCustomerRepository) GetByUserID(ctx context.Context, userID kernel.UUID) (*account.Customer, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).(*account.Customer), args.Error(1)
}

type MockSupplierRepository struct {
	mock.Mock
}

func (m *MockSupplierRepository) Add(ctx context.Context, supplier *account.Supplier) error {
	args := m.Called(ctx, supplier)
	return args.Error(0)
}

func (m *MockSupplierRepository) Get(ctx context.Context, id kernel.UUID) (*account.Supplier, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(*account.Supplier), args.Error(1)
}

func (m *MockSupplierRepository) GetByUserID(ctx context.Context, userID kernel.UUID) (*account.Supplier, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).(*account.Supplier), args.Error(1)
}

type MockShipRepository struct {
	mock.Mock
}

func (m *MockShipRepository) Add(ctx context.Context, ship *fleet.Ship) error {
	args := m.Called(ctx, ship)
	return args.Error(0)
}

func (m *MockShipRepository) Update(ctx context.Context, ship *fleet.Ship) error {
	args := m.Called(ctx, ship)
	return args.Error(0)
}

func (m *MockShipRepository) Get(ctx context.Context, id kernel.UUID) (*fleet.Ship, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(*fleet.Ship), args.Error(1)
}

func (m *MockShipRepository) GetAllByCustomer(ctx context.Context, customerID kernel.UUID) ([]*fleet.Ship, error) {
	args := m.Called(ctx, customerID)
	return args.Get(0).([]*fleet.Ship), args.Error(1)
}

type MockPurchaseOrderRepository struct {
	mock.Mock
}

func (m *MockPurchaseOrderRepository) Add(ctx context.Context, po *procurement.PurchaseOrder) error {
	args := m.Called(ctx, po)
	return args.Error(0)
}

func (m *MockPurchaseOrderRepository) Update(ctx context.Context, po *procurement.PurchaseOrder) error {
	args := m.Called(ctx, po)
	return args.Error(0)
}

func (m *MockPurchaseOrderRepository) Get(ctx context.Context, id kernel.UUID) (*procurement.PurchaseOrder, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(*procurement.PurchaseOrder), args.Error(1)
}

type MockDeclarationRequestRepository struct {
	mock.Mock
}

func (m *MockDeclarationRequestRepository) Add(ctx context.Context, request *declaration.Request) error {
	args := m.Called(ctx, request)
	return args.Error(0)
}

func (m *MockDeclarationRequestRepository) Update(ctx context.Context, request *declaration.Request) error {
	args := m.Called(ctx, request)
	return args.Error(0)
}

func (m *MockDeclarationRequestRepository) Get(ctx context.Context, id kernel.UUID) (*declaration.Request, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(*declaration.Request), args.Error(1)
}

func (m *MockDeclarationRequestRepository) GetByPurchaseOrderID(
	ctx context.Context, purchaseOrderID kernel.UUID,
) (*declaration.Request, error) {
	args := m.Called(ctx, purchaseOrderID)
	return args.Get(0).(*declaration.Request), args.Error(1)
}

func (m *MockDeclarationRequestRepository) GetAllOverdue(
	ctx context.Context, now time.Time,
) ([]*declaration.Request, error) {
	args := m.Called(ctx, now)
	return args.Get(0).([]*declaration.Request), args.Error(1)
}

type MockDeclarationRepository struct {
	mock.Mock
}

func (m *MockDeclarationRepository) Add(ctx context.Context, decl *declaration.Declaration) error {
	args := m.Called(ctx, decl)
	return args.Error(0)
}

func (m *MockDeclarationRepository) Update(ctx context.Context, decl *declaration.Declaration) error {
	args := m.Called(ctx, decl)
	return args.Error(0)
}

func (m *MockDeclarationRepository) Get(ctx context.Context, id kernel.UUID) (*declaration.Declaration, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(*declaration.Declaration), args.Error(1)
}

func (m *MockDeclarationRepository) GetByRequestID(
	ctx context.Context, requestID kernel.UUID,
) (*declaration.Declaration, error) {
	args := m.Called(ctx, requestID)
	return args.Get(0).(*declaration.Declaration), args.Error(1)
}

type MockAccountUoW struct {
	mock.Mock
}

func (m *MockAccountUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockAccountUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockAccountUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockAccountUoW) UserRepository() ports.UserRepository {
	args := m.Called()
	return args.Get(0).(ports.UserRepository)
}

func (m *MockAccountUoW) CustomerRepository() ports.CustomerRepository {
	args := m.Called()
	return args.Get(0).(ports.CustomerRepository)
}

func (m *MockAccountUoW) SupplierRepository() ports.SupplierRepository {
	args := m.Called()
	return args.Get(0).(ports.SupplierRepository)
}

type MockAccountUoWFactory struct {
	mock.Mock
}

func (m *MockAccountUoWFactory) Create() commands.AccountUoW {
	args := m.Called()
	return args.Get(0).(commands.AccountUoW)
}

type MockFleetUoW struct {
	mock.Mock
}

func (m *MockFleetUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockFleetUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockFleetUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockFleetUoW) ShipRepository() ports.ShipRepository {
	args := m.Called()
	return args.Get(0).(ports.ShipRepository)
}

func (m *MockFleetUoW) CustomerRepository() ports.CustomerRepository {
	args := m.Called()
	return args.Get(0).(ports.CustomerRepository)
}

type MockFleetUoWFactory struct {
	mock.Mock
}

func (m *MockFleetUoWFactory) Create() commands.FleetUoW {
	args := m.Called()
	return args.Get(0).(commands.FleetUoW)
}

type MockProcurementUoW struct {
	mock.Mock
}

func (m *MockProcurementUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockProcurementUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockProcurementUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockProcurementUoW) PurchaseOrderRepository() ports.PurchaseOrderRepository {
	args := m.Called()
	return args.Get(0).(ports.PurchaseOrderRepository)
}

func (m *MockProcurementUoW) ShipRepository() ports.ShipRepository {
	args := m.Called()
	return args.Get(0).(ports.ShipRepository)
}

func (m *MockProcurementUoW) CustomerRepository() ports.CustomerRepository {
	args := m.Called()
	return args.Get(0).(ports.CustomerRepository)
}

type MockProcurementUoWFactory struct {
	mock.Mock
}

func (m *MockProcurementUoWFactory) Create() commands.ProcurementUoW {
	args := m.Called()
	return args.Get(0).(commands.ProcurementUoW)
}

type MockDeclarationUoW struct {
	mock.Mock
}

func (m *MockDeclarationUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockDeclarationUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockDeclarationUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockDeclarationUoW) PurchaseOrderRepository() ports.PurchaseOrderRepository {
	args := m.Called()
	return args.Get(0).(ports.PurchaseOrderRepository)
}

func (m *MockDeclarationUoW) ShipRepository() ports.ShipRepository {
	args := m.Called()
	return args.Get(0).(ports.ShipRepository)
}

func (m *MockDeclarationUoW) CustomerRepository() ports.CustomerRepository {
	args := m.Called()
	return args.Get(0).(ports.CustomerRepository)
}

func (m *MockDeclarationUoW) SupplierRepository() ports.SupplierRepository {
	args := m.Called()
	return args.Get(0).(ports.SupplierRepository)
}

func (m *MockDeclarationUoW) DeclarationRequestRepository() ports.DeclarationRequestRepository {
	args := m.Called()
	return args.Get(0).(ports.DeclarationRequestRepository)
}

func (m *MockDeclarationUoW) DeclarationRepository() ports.DeclarationRepository {
	args := m.Called()
	return args.Get(0).(ports.DeclarationRepository)
}

type MockDeclarationUoWFactory struct {
	mock.Mock
}

func (m *MockDeclarationUoWFactory) Create() commands.DeclarationUoW {
	args := m.Called()
	return args.Get(0).(commands.DeclarationUoW)
}
