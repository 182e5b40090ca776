package commands_test

import (
	"errors"
	"testing"

	"ihm/internal/core/application/usecases/commands"
	"ihm/internal/core/domain/model/account"
	"ihm/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockPasswordHasher struct {
	mock.Mock
}

func (m *MockPasswordHasher) Hash(password string) (string, error) {
	args := m.Called(password)
	return args.String(0), args.Error(1)
}

func newRegisterCustomerCommand(t *testing.T) commands.RegisterUserCommand {
	t.Helper()

	cmd, err := commands.NewRegisterUserCommand(
		kernel.NewUUID(),
		"jsmith", "jsmith@shipco.example", "s3cret!pass", "s3cret!pass",
		account.RoleCustomer,
		"Pacific Shipping", "110-81-12345", "Busan", "+82-51-555-0101",
	)
	require.NoError(t, err)
	return cmd
}

func TestNewRegisterUserCommandHandler(t *testing.T) {
	// Arrange
	mockFactory := new(MockAccountUoWFactory)
	mockHasher := new(MockPasswordHasher)

	// Act
	handler := commands.NewRegisterUserCommandHandler(mockFactory, mockHasher)

	// Assert
	assert.NotNil(t, handler)
}

func TestRegisterUserCommandHandler_Handle_CustomerSuccess(t *testing.T) {
	// Arrange
	ctx := t.Context()
	cmd := newRegisterCustomerCommand(t)

	var capturedUser *account.User
	var capturedCustomer *account.Customer
	mockUserRepo := new(MockUserRepository)
	mockCustomerRepo := new(MockCustomerRepository)
	mockUoW := new(MockAccountUoW)
	mockFactory := new(MockAccountUoWFactory)
	mockHasher := new(MockPasswordHasher)

	mockHasher.On("Hash", "s3cret!pass").Return("$2a$10$hashed", nil).Once()

	// Set up expectations in order
	mock.InOrder(
		mockUoW.On("Begin", ctx).Return(nil).Once(),
		mockUoW.On("UserRepository").Return(mockUserRepo).Once(),
		mockUserRepo.On("Add", ctx, mock.MatchedBy(func(u *account.User) bool {
			capturedUser = u
			return true
		})).Return(nil).Once(),
		mockUoW.On("CustomerRepository").Return(mockCustomerRepo).Once(),
		mockCustomerRepo.On("Add", ctx, mock.MatchedBy(func(c *account.Customer) bool {
			capturedCustomer = c
			return true
		})).Return(nil).Once(),
		mockUoW.On("Commit", ctx).Return(nil).Once(),
		mockUoW.On("Rollback", ctx).Return(nil).Once(),
	)
	mockFactory.On("Create").Return(mockUoW).Once()

	handler := commands.NewRegisterUserCommandHandler(mockFactory, mockHasher)

	// Act
	err := handler.Handle(ctx, cmd)

	// Assert
	require.NoError(t, err)

	require.NotNil(t, capturedUser)
	assert.Equal(t, cmd.UserID(), capturedUser.ID())
	assert.Equal(t, "jsmith", capturedUser.Username())
	assert.Equal(t, "$2a$10$hashed", capturedUser.PasswordHash())
	assert.Equal(t, account.RoleCustomer, capturedUser.Role())
	assert.True(t, capturedUser.IsActive())

	require.NotNil(t, capturedCustomer)
	require.NotNil(t, capturedCustomer.UserID())
	assert.Equal(t, cmd.UserID(), *capturedCustomer.UserID())
	assert.Equal(t, "Pacific Shipping", capturedCustomer.CompanyName())
	assert.Equal(t, "110-81-12345", capturedCustomer.BusinessNumber())

	mockFactory.AssertExpectations(t)
	mockUoW.AssertExpectations(t)
	mockUserRepo.AssertExpectations(t)
	mockCustomerRepo.AssertExpectations(t)
	mockHasher.AssertExpectations(t)
}

func TestRegisterUserCommandHandler_Handle_SupplierCreatesProfile(t *testing.T) {
	// Arrange
	ctx := t.Context()
	cmd, err := commands.NewRegisterUserCommand(
		kernel.NewUUID(),
		"supplier1", "s1@parts.example", "s3cret!pass", "s3cret!pass",
		account.RoleSupplier,
		"Marine Parts Ltd", "220-85-67890", "Ulsan", "+82-52-555-0102",
	)
	require.NoError(t, err)

	var capturedSupplier *account.Supplier
	mockUserRepo := new(MockUserRepository)
	mockSupplierRepo := new(MockSupplierRepository)
	mockUoW := new(MockAccountUoW)
	mockFactory := new(MockAccountUoWFactory)
	mockHasher := new(MockPasswordHasher)

	mockHasher.On("Hash", "s3cret!pass").Return("$2a$10$hashed", nil).Once()

	mock.InOrder(
		mockUoW.On("Begin", ctx).Return(nil).Once(),
		mockUoW.On("UserRepository").Return(mockUserRepo).Once(),
		mockUserRepo.On("Add", ctx, mock.AnythingOfType("*account.User")).Return(nil).Once(),
		mockUoW.On("SupplierRepository").Return(mockSupplierRepo).Once(),
		mockSupplierRepo.On("Add", ctx, mock.MatchedBy(func(s *account.Supplier) bool {
			capturedSupplier = s
			return true
		})).Return(nil).Once(),
		mockUoW.On("Commit", ctx).Return(nil).Once(),
		mockUoW.On("Rollback", ctx).Return(nil).Once(),
	)
	mockFactory.On("Create").Return(mockUoW).Once()

	handler := commands.NewRegisterUserCommandHandler(mockFactory, mockHasher)

	// Act
	err = handler.Handle(ctx, cmd)

	// Assert
	require.NoError(t, err)
	require.NotNil(t, capturedSupplier)
	assert.Equal(t, cmd.UserID(), capturedSupplier.UserID())
	assert.Equal(t, "Marine Parts Ltd", capturedSupplier.CompanyName())

	mockFactory.AssertExpectations(t)
	mockUoW.AssertExpectations(t)
	mockUserRepo.AssertExpectations(t)
	mockSupplierRepo.AssertExpectations(t)
}

func TestRegisterUserCommandHandler_Handle_OperatorHasNoProfile(t *testing.T) {
	// Arrange
	ctx := t.Context()
	cmd, err := commands.NewRegisterUserCommand(
		kernel.NewUUID(),
		"opr", "opr@platform.example", "s3cret!pass", "s3cret!pass",
		account.RoleOperator,
		"", "", "", "",
	)
	require.NoError(t, err)

	mockUserRepo := new(MockUserRepository)
	mockUoW := new(MockAccountUoW)
	mockFactory := new(MockAccountUoWFactory)
	mockHasher := new(MockPasswordHasher)

	mockHasher.On("Hash", "s3cret!pass").Return("$2a$10$hashed", nil).Once()

	mock.InOrder(
		mockUoW.On("Begin", ctx).Return(nil).Once(),
		mockUoW.On("UserRepository").Return(mockUserRepo).Once(),
		mockUserRepo.On("Add", ctx, mock.AnythingOfType("*account.User")).Return(nil).Once(),
		mockUoW.On("Commit", ctx).Return(nil).Once(),
		mockUoW.On("Rollback", ctx).Return(nil).Once(),
	)
	mockFactory.On("Create").Return(mockUoW).Once()

	handler := commands.NewRegisterUserCommandHandler(mockFactory, mockHasher)

	// Act
	err = handler.Handle(ctx, cmd)

	// Assert
	require.NoError(t, err)
	mockFactory.AssertExpectations(t)
	mockUoW.AssertExpectations(t)
	mockUserRepo.AssertExpectations(t)
}

func TestRegisterUserCommandHandler_Handle_InvalidCommand(t *testing.T) {
	// Arrange
	ctx := t.Context()
	var invalidCmd commands.RegisterUserCommand // zero value command

	mockFactory := new(MockAccountUoWFactory)
	mockHasher := new(MockPasswordHasher)
	handler := commands.NewRegisterUserCommandHandler(mockFactory, mockHasher)

	// Act
	err := handler.Handle(ctx, invalidCmd)

	// Assert
	require.Error(t, err)
	require.ErrorIs(t, err, commands.ErrRegisterUserCommandIsNotConstructed)
	mockFactory.AssertExpectations(t) // No calls should be made to factory
}

func TestRegisterUserCommandHandler_Handle_HasherError(t *testing.T) {
	// Arrange
	ctx := t.Context()
	cmd := newRegisterCustomerCommand(t)

	expectedError := errors.New("hashing failed")
	mockFactory := new(MockAccountUoWFactory)
	mockHasher := new(MockPasswordHasher)
	mockHasher.On("Hash", "s3cret!pass").Return("", expectedError).Once()

	handler := commands.NewRegisterUserCommandHandler(mockFactory, mockHasher)

	// Act
	err := handler.Handle(ctx, cmd)

	// Assert
	require.Error(t, err)
	assert.Equal(t, expectedError, err)
	mockFactory.AssertExpectations(t)
	mockHasher.AssertExpectations(t)
}

func TestRegisterUserCommandHandler_Handle_DuplicateUsernameConflict(t *testing.T) {
	// Arrange
	ctx := t.Context()
	cmd := newRegisterCustomerCommand(t)

	expectedError := errors.New("duplicated key not allowed")
	mockUserRepo := new(MockUserRepository)
	mockUoW := new(MockAccountUoW)
	mockFactory := new(MockAccountUoWFactory)
	mockHasher := new(MockPasswordHasher)

	mockHasher.On("Hash", "s3cret!pass").Return("$2a$10$hashed", nil).Once()

	mock.InOrder(
		mockUoW.On("Begin", ctx).Return(nil).Once(),
		mockUoW.On("UserRepository").Return(mockUserRepo).Once(),
		mockUserRepo.On("Add", ctx, mock.AnythingOfType("*account.User")).Return(expectedError).Once(),
		mockUoW.On("Rollback", ctx).Return(nil).Once(),
	)
	mockFactory.On("Create").Return(mockUoW).Once()

	handler := commands.NewRegisterUserCommandHandler(mockFactory, mockHasher)

	// Act
	err := handler.Handle(ctx, cmd)

	// Assert
	require.Error(t, err)
	assert.Equal(t, expectedError, err)
	mockFactory.AssertExpectations(t)
	mockUoW.AssertExpectations(t)
	mockUserRepo.AssertExpectations(t)
}

func TestNewRegisterUserCommand_Validation(t *testing.T) {
	t.Run("should reject mismatched password confirmation", func(t *testing.T) {
		_, err := commands.NewRegisterUserCommand(
			kernel.NewUUID(),
			"jsmith", "jsmith@shipco.example", "s3cret!pass", "different",
			account.RoleCustomer,
			"Pacific Shipping", "110-81-12345", "", "",
		)

		require.Error(t, err)
	})

	t.Run("should require company profile fields for customers", func(t *testing.T) {
		_, err := commands.NewRegisterUserCommand(
			kernel.NewUUID(),
			"jsmith", "jsmith@shipco.example", "s3cret!pass", "s3cret!pass",
			account.RoleCustomer,
			"", "", "", "",
		)

		require.Error(t, err)
	})

	t.Run("should require company profile fields for suppliers", func(t *testing.T) {
		_, err := commands.NewRegisterUserCommand(
			kernel.NewUUID(),
			"supplier1", "s1@parts.example", "s3cret!pass", "s3cret!pass",
			account.RoleSupplier,
			"Marine Parts Ltd", "", "", "",
		)

		require.Error(t, err)
	})

	t.Run("should reject invalid role", func(t *testing.T) {
		_, err := commands.NewRegisterUserCommand(
			kernel.NewUUID(),
			"jsmith", "jsmith@shipco.example", "s3cret!pass", "s3cret!pass",
			account.RoleUnknown,
			"", "", "", "",
		)

		require.Error(t, err)
	})
}
