package service

import (
	"fmt"

	"aquamanager/internal/model"
	"aquamanager/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// adjustStock locks the product row and applies delta to its quantity.
// A result below zero is rejected and nothing is written.
func adjustStock(tx *gorm.DB, repo repository.ProductRepository, productID uuid.UUID, delta int) (*model.Product, error) {
	product, err := repo.FindForUpdate(tx, productID)
	if err != nil {
		return nil, storeError(err, "product")
	}
	if delta == 0 {
		return product, nil
	}

	next := product.Quantity + delta
	if next < 0 {
		return nil, fmt.Errorf("%w: only %d %s available", ErrInsufficientStock, product.Quantity, product.Unit)
	}
	if err := repo.UpdateQuantity(tx, product.ID, next); err != nil {
		return nil, err
	}
	product.Quantity = next
	return product, nil
}

// rebalance moves stock from a movement's old effect to its new one.
// On the same product only the net change is checked and applied.
func rebalance(tx *gorm.DB, repo repository.ProductRepository, oldProduct uuid.UUID, oldDelta int, newProduct uuid.UUID, newDelta int) error {
	if oldProduct == newProduct {
		_, err := adjustStock(tx, repo, newProduct, newDelta-oldDelta)
		return err
	}

	// Lock both rows in a fixed order.
	type step struct {
		id    uuid.UUID
		delta int
	}
	steps := []step{{oldProduct, -oldDelta}, {newProduct, newDelta}}
	if newProduct.String() < oldProduct.String() {
		steps[0], steps[1] = steps[1], steps[0]
	}
	for _, st := range steps {
		if _, err := adjustStock(tx, repo, st.id, st.delta); err != nil {
			return err
		}
	}
	return nil
}
