// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS architecture.
// All commands follow a consistent pattern: validation, transaction management,
// side effects inside the transaction, and a fire-and-forget notification after
// commit.
package commands

import (
	"context"
	"errors"

	"marketplace/internal/core/ports"
)

// ErrNotAuthorized is returned when the acting principal is not allowed to
// perform the requested operation on the order.
var ErrNotAuthorized = errors.New("actor is not authorized for this operation")

// Unit of Work interfaces provide transaction management for command handlers.
// These abstractions ensure data consistency across aggregate boundaries.
type (
	// TxManager handles database transaction lifecycle.
	// Ensures atomic operations across multiple repository calls.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// OrderRepoFactory provides access to the order repository within a transaction.
	OrderRepoFactory interface {
		OrderRepository() ports.OrderRepository
	}

	// ProductRepoFactory provides access to the product repository within a transaction.
	ProductRepoFactory interface {
		ProductRepository() ports.ProductRepository
	}

	// UserRepoFactory provides access to the user repository within a transaction.
	UserRepoFactory interface {
		UserRepository() ports.UserRepository
	}

	// OrderUoW manages transactions for order-only operations.
	OrderUoW interface {
		TxManager
		OrderRepoFactory
	}

	// OrderUoWFactory creates new order unit of work instances.
	OrderUoWFactory interface {
		Create() OrderUoW
	}

	// OrderProductUoW manages transactions spanning orders and product stock,
	// used when a transition moves inventory (creation, cancellation).
	OrderProductUoW interface {
		TxManager
		OrderRepoFactory
		ProductRepoFactory
	}

	// OrderProductUoWFactory creates new order/product unit of work instances.
	OrderProductUoWFactory interface {
		Create() OrderProductUoW
	}

	// OrderUserUoW manages transactions spanning orders and users, used when a
	// transition touches the earnings ledger or the admin directory.
	OrderUserUoW interface {
		TxManager
		OrderRepoFactory
		UserRepoFactory
	}

	// OrderUserUoWFactory creates new order/user unit of work instances.
	OrderUserUoWFactory interface {
		Create() OrderUserUoW
	}

	// UoW manages transactions across all three aggregate types. Used by the
	// seller/admin status update, whose side effects depend on the target
	// status (stock restoration on cancel, earnings accrual on delivery).
	UoW interface {
		TxManager
		OrderRepoFactory
		ProductRepoFactory
		UserRepoFactory
	}

	// UoWFactory creates new unit of work instances for cross-aggregate operations.
	UoWFactory interface {
		Create() UoW
	}
)
