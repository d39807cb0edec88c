package service

import (
	"context"
	"fmt"

	"aquamanager/internal/model"
	"aquamanager/internal/repository"
	"aquamanager/pkg/search"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// InventoryService records stock movements. Every write keeps product quantities in step with the ledger.
type InventoryService interface {
	ListTransactions(ctx context.Context, filter model.TransactionFilter) ([]model.InventoryTransaction, error)
	GetTransaction(ctx context.Context, id uuid.UUID) (*model.InventoryTransaction, error)
	RecordTransaction(ctx context.Context, req *model.CreateTransactionRequest) (*model.InventoryTransaction, error)
	UpdateTransaction(ctx context.Context, id uuid.UUID, req *model.CreateTransactionRequest) (*model.InventoryTransaction, error)
	DeleteTransaction(ctx context.Context, id uuid.UUID) error
}

type inventoryService struct {
	productRepo     repository.ProductRepository
	transactionRepo repository.TransactionRepository
	db              *gorm.DB
	notifier        Notifier
	log             *zap.Logger
}

func NewInventoryService(pRepo repository.ProductRepository, tRepo repository.TransactionRepository, db *gorm.DB, notifier Notifier, log *zap.Logger) InventoryService {
	return &inventoryService{
		productRepo:     pRepo,
		transactionRepo: tRepo,
		db:              db,
		notifier:        notifier,
		log:             log.Named("inventory"),
	}
}

func transactionFields(t model.InventoryTransaction) []string {
	fields := make([]string, 0, 5)
	if t.Product != nil {
		fields = append(fields, t.Product.Description)
	}
	if t.ReferenceNumber != nil {
		fields = append(fields, *t.ReferenceNumber)
	}
	if t.Vendor != nil {
		fields = append(fields, t.Vendor.Name)
	}
	if t.Person != nil {
		fields = append(fields, t.Person.Name)
	}
	if t.Department != nil {
		fields = append(fields, t.Department.Name)
	}
	return fields
}

func (s *inventoryService) ListTransactions(ctx context.Context, filter model.TransactionFilter) ([]model.InventoryTransaction, error) {
	if filter.Type != "" && !filter.Type.Valid() {
		return nil, fmt.Errorf("%w: unknown transaction type %q", ErrValidation, filter.Type)
	}
	transactions, err := s.transactionRepo.FindAll(ctx, filter)
	if err != nil {
		return nil, err
	}
	return search.Filter(transactions, filter.Search, transactionFields), nil
}

func (s *inventoryService) GetTransaction(ctx context.Context, id uuid.UUID) (*model.InventoryTransaction, error) {
	t, err := s.transactionRepo.FindByID(ctx, id)
	if err != nil {
		return nil, storeError(err, "transaction")
	}
	return t, nil
}

// buildTransaction validates req and turns it into a row, filling total_amount from unit_price when absent.
func buildTransaction(req *model.CreateTransactionRequest) (*model.InventoryTransaction, error) {
	req.ReferenceNumber = blankToNil(req.ReferenceNumber)
	req.Notes = blankToNil(req.Notes)
	if err := validate(req); err != nil {
		return nil, err
	}
	if req.TransactionType != model.TxAdjustment && req.Quantity <= 0 {
		return nil, fmt.Errorf("%w: quantity must be positive for %s", ErrValidation, req.TransactionType)
	}
	if req.UnitPrice.Valid && req.UnitPrice.Decimal.IsNegative() {
		return nil, fmt.Errorf("%w: unit_price must not be negative", ErrValidation)
	}
	if req.TotalAmount.Valid && req.TotalAmount.Decimal.IsNegative() {
		return nil, fmt.Errorf("%w: total_amount must not be negative", ErrValidation)
	}

	date, err := model.ParseDate(req.TransactionDate)
	if err != nil {
		return nil, fmt.Errorf("%w: transaction_date: %v", ErrValidation, err)
	}

	total := req.TotalAmount
	if !total.Valid && req.UnitPrice.Valid {
		qty := req.Quantity
		if qty < 0 {
			qty = -qty
		}
		total = decimal.NewNullDecimal(req.UnitPrice.Decimal.Mul(decimal.NewFromInt(int64(qty))))
	}

	return &model.InventoryTransaction{
		ProductID:       req.ProductID,
		TransactionType: req.TransactionType,
		Quantity:        req.Quantity,
		UnitPrice:       req.UnitPrice,
		TotalAmount:     total,
		TransactionDate: date,
		VendorID:        req.VendorID,
		PersonID:        req.PersonID,
		DepartmentID:    req.DepartmentID,
		ReferenceNumber: req.ReferenceNumber,
		Notes:           req.Notes,
	}, nil
}

func (s *inventoryService) RecordTransaction(ctx context.Context, req *model.CreateTransactionRequest) (*model.InventoryTransaction, error) {
	t, err := buildTransaction(req)
	if err != nil {
		return nil, err
	}

	var stock int
	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		product, err := adjustStock(tx, s.productRepo, t.ProductID, t.StockDelta())
		if err != nil {
			return err
		}
		stock = product.Quantity
		return storeError(s.transactionRepo.Create(tx, t), "transaction")
	})
	if err != nil {
		return nil, err
	}

	s.log.Info("transaction recorded",
		zap.String("id", t.ID.String()),
		zap.String("type", string(t.TransactionType)),
		zap.Int("quantity", t.Quantity),
		zap.Int("stock", stock),
	)
	s.notifier.Publish(invalidate("transaction_created", t.ID.String(), withStockKeys(KeyInventoryTransactions)...))
	return s.GetTransaction(ctx, t.ID)
}

// UpdateTransaction replaces the transaction, undoing its old stock effect and applying the new one.
func (s *inventoryService) UpdateTransaction(ctx context.Context, id uuid.UUID, req *model.CreateTransactionRequest) (*model.InventoryTransaction, error) {
	t, err := buildTransaction(req)
	if err != nil {
		return nil, err
	}

	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		existing, err := s.transactionRepo.FindForUpdate(tx, id)
		if err != nil {
			return storeError(err, "transaction")
		}
		if err := rebalance(tx, s.productRepo, existing.ProductID, existing.StockDelta(), t.ProductID, t.StockDelta()); err != nil {
			return err
		}
		t.ID = existing.ID
		t.CreatedAt = existing.CreatedAt
		return storeError(s.transactionRepo.Update(tx, t), "transaction")
	})
	if err != nil {
		return nil, err
	}

	s.log.Info("transaction updated", zap.String("id", id.String()))
	s.notifier.Publish(invalidate("transaction_updated", id.String(), withStockKeys(KeyInventoryTransactions)...))
	return s.GetTransaction(ctx, id)
}

// DeleteTransaction removes the transaction and reverses its stock effect.
func (s *inventoryService) DeleteTransaction(ctx context.Context, id uuid.UUID) error {
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		existing, err := s.transactionRepo.FindForUpdate(tx, id)
		if err != nil {
			return storeError(err, "transaction")
		}
		if _, err := adjustStock(tx, s.productRepo, existing.ProductID, -existing.StockDelta()); err != nil {
			return err
		}
		return storeError(s.transactionRepo.Delete(tx, id), "transaction")
	})
	if err != nil {
		return err
	}

	s.log.Info("transaction deleted", zap.String("id", id.String()))
	s.notifier.Publish(invalidate("transaction_deleted", id.String(), withStockKeys(KeyInventoryTransactions)...))
	return nil
}
