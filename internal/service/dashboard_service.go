package service

import (
	"context"
	"fmt"
	"time"

	"aquamanager/internal/model"
	"aquamanager/internal/repository"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"
)

const (
	DefaultActivityLimit = 10
	MaxActivityLimit     = 100
	DefaultMovementDays  = 7
	MaxMovementDays      = 90
)

type DashboardStats struct {
	TotalProducts int64           `json:"total_products"`
	LowStockItems int64           `json:"low_stock_items"`
	TodayOrders   int             `json:"today_orders"`
	Revenue       decimal.Decimal `json:"revenue"`
}

type Activity struct {
	ID        uuid.UUID `json:"id"`
	Action    string    `json:"action"`
	Item      string    `json:"item"`
	Qty       string    `json:"qty"`
	Time      string    `json:"time"`
	Type      string    `json:"type"`
	CreatedAt time.Time `json:"created_at"`
}

type StockMovement struct {
	Date     string `json:"date"`
	Inbound  int    `json:"inbound"`
	Outbound int    `json:"outbound"`
}

type DashboardService interface {
	Stats(ctx context.Context) (*DashboardStats, error)
	RecentActivity(ctx context.Context, limit int) ([]Activity, error)
	StockMovement(ctx context.Context, days int) ([]StockMovement, error)
}

type dashboardService struct {
	productRepo repository.ProductRepository
	txRepo      repository.TransactionRepository
	now         func() time.Time
}

func NewDashboardService(pRepo repository.ProductRepository, txRepo repository.TransactionRepository) DashboardService {
	return &dashboardService{productRepo: pRepo, txRepo: txRepo, now: time.Now}
}

// Stats counts active products, low-stock products, and today's transactions with their total value.
func (s *dashboardService) Stats(ctx context.Context) (*DashboardStats, error) {
	var stats DashboardStats
	today := model.Today(s.now())

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		n, err := s.productRepo.CountActive(gctx)
		stats.TotalProducts = n
		return err
	})
	g.Go(func() error {
		n, err := s.productRepo.CountByStatus(gctx, model.LowStock)
		stats.LowStockItems = n
		return err
	})
	g.Go(func() error {
		transactions, err := s.txRepo.FindBetween(gctx, today, today)
		if err != nil {
			return err
		}
		revenue := decimal.Zero
		for _, t := range transactions {
			if t.TotalAmount.Valid {
				revenue = revenue.Add(t.TotalAmount.Decimal)
			}
		}
		stats.TodayOrders = len(transactions)
		stats.Revenue = revenue
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return &stats, nil
}

var activityActions = map[model.TransactionType]string{
	model.TxPurchase:   "Stock Added",
	model.TxIssue:      "Stock Issued",
	model.TxReturn:     "Stock Returned",
	model.TxAdjustment: "Stock Adjusted",
}

func (s *dashboardService) RecentActivity(ctx context.Context, limit int) ([]Activity, error) {
	if limit <= 0 {
		limit = DefaultActivityLimit
	}
	if limit > MaxActivityLimit {
		limit = MaxActivityLimit
	}
	transactions, err := s.txRepo.Recent(ctx, limit)
	if err != nil {
		return nil, err
	}

	now := s.now()
	activity := make([]Activity, 0, len(transactions))
	for _, t := range transactions {
		a := Activity{
			ID:        t.ID,
			Action:    activityActions[t.TransactionType],
			Time:      timeAgo(now, t.CreatedAt),
			CreatedAt: t.CreatedAt,
		}
		if t.Product != nil {
			a.Item = t.Product.Description
		}
		delta := t.StockDelta()
		if delta >= 0 {
			a.Qty = fmt.Sprintf("+%d", delta)
			a.Type = "add"
		} else {
			a.Qty = fmt.Sprintf("%d", delta)
			a.Type = "remove"
		}
		activity = append(activity, a)
	}
	return activity, nil
}

// StockMovement returns one bucket per day for the last days days, today included, oldest first.
func (s *dashboardService) StockMovement(ctx context.Context, days int) ([]StockMovement, error) {
	if days < 1 || days > MaxMovementDays {
		return nil, fmt.Errorf("%w: days must be between 1 and %d", ErrValidation, MaxMovementDays)
	}

	end := model.Today(s.now())
	start := end.AddDate(0, 0, -(days - 1))
	transactions, err := s.txRepo.FindBetween(ctx, start, end)
	if err != nil {
		return nil, err
	}

	buckets := make([]StockMovement, days)
	index := make(map[string]int, days)
	for i := range buckets {
		day := start.AddDate(0, 0, i).Format(model.DateLayout)
		buckets[i].Date = day
		index[day] = i
	}
	for _, t := range transactions {
		i, ok := index[t.TransactionDate.UTC().Format(model.DateLayout)]
		if !ok {
			continue
		}
		delta := t.StockDelta()
		if delta >= 0 {
			buckets[i].Inbound += delta
		} else {
			buckets[i].Outbound -= delta
		}
	}
	return buckets, nil
}

func timeAgo(now, then time.Time) string {
	d := now.Sub(then)
	switch {
	case d < time.Minute:
		return "just now"
	case d < time.Hour:
		return fmt.Sprintf("%d min ago", int(d.Minutes()))
	case d < 24*time.Hour:
		return fmt.Sprintf("%d hr ago", int(d.Hours()))
	}
	return fmt.Sprintf("%d days ago", int(d.Hours()/24))
}
