package services

import (
	"context"
	"errors"

	"quickshop/models"
	"quickshop/repositories"
)

type CartService struct {
	cartStore    repositories.CartStore
	productStore repositories.ProductStore
}

func NewCartService(cartStore repositories.CartStore, productStore repositories.ProductStore) *CartService {
	return &CartService{cartStore: cartStore, productStore: productStore}
}

// AddItem merges quantity into the user's existing line for the product, or
// creates the line when none exists. The product must exist at add time.
func (s *CartService) AddItem(ctx context.Context, userID, productID, quantity int) (*models.CartLine, error) {
	if quantity <= 0 {
		return nil, models.ErrInvalidQuantity
	}
	if _, err := s.productStore.FindByID(ctx, productID); err != nil {
		return nil, err
	}
	return s.cartStore.AddLine(ctx, userID, productID, quantity)
}

// UpdateItem sets the line's quantity to the exact supplied value. A zero or
// negative quantity is rejected and leaves the line untouched; it does not
// delete the line.
func (s *CartService) UpdateItem(ctx context.Context, userID, lineID, quantity int) (*models.CartLine, error) {
	if quantity <= 0 {
		return nil, models.ErrInvalidQuantity
	}
	return s.cartStore.UpdateLine(ctx, userID, lineID, quantity)
}

func (s *CartService) RemoveItem(ctx context.Context, userID, productID int) error {
	return s.cartStore.RemoveLine(ctx, userID, productID)
}

// ViewCart resolves every line against the current product record, so a price
// change is visible on the next read. Lines whose product has since been
// removed are skipped and counted, never a failure.
func (s *CartService) ViewCart(ctx context.Context, userID int) (*models.CartView, error) {
	lines, err := s.cartStore.ListLines(ctx, userID)
	if err != nil {
		return nil, err
	}

	view := &models.CartView{Items: []models.CartViewItem{}}
	for _, line := range lines {
		product, err := s.productStore.FindByID(ctx, line.ProductID)
		if errors.Is(err, models.ErrProductNotFound) {
			view.Skipped++
			continue
		}
		if err != nil {
			return nil, err
		}

		lineTotal := product.Price * float64(line.Quantity)
		view.Items = append(view.Items, models.CartViewItem{
			LineID:      line.ID,
			ProductID:   product.ID,
			ProductName: product.Name,
			UnitPrice:   product.Price,
			Quantity:    line.Quantity,
			LineTotal:   lineTotal,
		})
		view.TotalPrice += lineTotal
	}
	return view, nil
}
