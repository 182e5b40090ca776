package commands

import (
	"context"

	"ihm/internal/core/domain/model/account"
	"ihm/internal/core/domain/model/kernel"
)

// PasswordHasher hashes plaintext passwords before they are stored.
type PasswordHasher interface {
	Hash(password string) (string, error)
}

// RegisterUserCommandHandler handles the business logic for user registration.
// Hashes the password and persists the new account together with its
// customer or supplier profile in one transaction; username and email
// uniqueness is enforced by the repository and surfaces as a conflict.
type RegisterUserCommandHandler struct {
	uowFactory AccountUoWFactory
	hasher     PasswordHasher
}

// NewRegisterUserCommandHandler creates a handler for user registration.
func NewRegisterUserCommandHandler(
	uowFactory AccountUoWFactory, hasher PasswordHasher,
) RegisterUserCommandHandler {
	return RegisterUserCommandHandler{
		uowFactory: uowFactory,
		hasher:     hasher,
	}
}

// Handle processes the registration command.
func (h *RegisterUserCommandHandler) Handle(ctx context.Context, cmd RegisterUserCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	passwordHash, err := h.hasher.Hash(cmd.Password())
	if err != nil {
		return err
	}

	user, err := account.NewUser(cmd.UserID(), cmd.Username(), cmd.Email(), passwordHash, cmd.Role())
	if err != nil {
		return err
	}
	user.SetCompanyInfo(cmd.CompanyName(), cmd.ContactPhone())

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.UserRepository().Add(ctx, user); err != nil {
		return err
	}

	if err = h.addCompanyProfile(ctx, uow, cmd); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}

// addCompanyProfile creates the customer or supplier profile linked to
// the new account. Operators have no profile.
func (h *RegisterUserCommandHandler) addCompanyProfile(
	ctx context.Context, uow AccountUoW, cmd RegisterUserCommand,
) error {
	switch cmd.Role() {
	case account.RoleCustomer:
		userID := cmd.UserID()
		customer, err := account.NewCustomer(
			kernel.NewUUID(), &userID,
			cmd.CompanyName(), cmd.BusinessNumber(), cmd.Address(),
			cmd.Username(), cmd.ContactPhone(), cmd.Email(),
		)
		if err != nil {
			return err
		}
		return uow.CustomerRepository().Add(ctx, customer)
	case account.RoleSupplier:
		supplier, err := account.NewSupplier(
			kernel.NewUUID(), cmd.UserID(),
			cmd.CompanyName(), cmd.BusinessNumber(), cmd.Address(),
			cmd.Username(), cmd.ContactPhone(), cmd.Email(),
		)
		if err != nil {
			return err
		}
		return uow.SupplierRepository().Add(ctx, supplier)
	default:
		return nil
	}
}
