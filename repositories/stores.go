package repositories

import (
	"context"

	"quickshop/models"
)

// UserStore is the persistence boundary for the identity service.
type UserStore interface {
	Create(ctx context.Context, user *models.User) error
	FindByEmail(ctx context.Context, email string) (*models.User, error)
	FindByID(ctx context.Context, id int) (*models.User, error)
	// ExistsByUsernameOrEmail is a single combined lookup used by Register.
	ExistsByUsernameOrEmail(ctx context.Context, username, email string) (bool, error)
}

// ProductStore is read-only from the cart's perspective; the admin endpoints
// use the mutating methods.
type ProductStore interface {
	FindByID(ctx context.Context, id int) (*models.Product, error)
	List(ctx context.Context, q models.ProductQuery) ([]models.Product, int, error)
	Create(ctx context.Context, product *models.Product) error
	Update(ctx context.Context, product *models.Product) error
	Deactivate(ctx context.Context, id int) error
}

// CartStore holds at most one line per (user, product) pair. AddLine merges
// quantities atomically so concurrent adds never lose an increment.
type CartStore interface {
	AddLine(ctx context.Context, userID, productID, quantity int) (*models.CartLine, error)
	UpdateLine(ctx context.Context, userID, lineID, quantity int) (*models.CartLine, error)
	RemoveLine(ctx context.Context, userID, productID int) error
	ListLines(ctx context.Context, userID int) ([]models.CartLine, error)
}
