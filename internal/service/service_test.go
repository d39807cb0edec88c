package service

import (
	"sync"
	"testing"

	"aquamanager/internal/model"
	"aquamanager/internal/repository"
	"aquamanager/internal/testutil"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type recordingNotifier struct {
	mu     sync.Mutex
	events []Event
}

func (n *recordingNotifier) Publish(e Event) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.events = append(n.events, e)
}

func (n *recordingNotifier) last(t *testing.T) Event {
	t.Helper()
	n.mu.Lock()
	defer n.mu.Unlock()
	require.NotEmpty(t, n.events)
	return n.events[len(n.events)-1]
}

func (n *recordingNotifier) count() int {
	n.mu.Lock()
	defer n.mu.Unlock()
	return len(n.events)
}

type env struct {
	db       *gorm.DB
	fixture  *testutil.Fixture
	notifier *recordingNotifier
	products repository.ProductRepository
}

func newEnv(t *testing.T) *env {
	db := testutil.NewDB(t)
	return &env{
		db:       db,
		fixture:  testutil.Seed(t, db),
		notifier: &recordingNotifier{},
		products: repository.NewProductRepo(db),
	}
}

func (e *env) inventory() InventoryService {
	return NewInventoryService(e.products, repository.NewTransactionRepo(e.db), e.db, e.notifier, zap.NewNop())
}

func (e *env) usage() UsageService {
	return NewUsageService(e.products, repository.NewUsageRepo(e.db), e.db, e.notifier, zap.NewNop())
}

func (e *env) quantity(t *testing.T, p *model.Product) int {
	t.Helper()
	var reloaded model.Product
	require.NoError(t, e.db.First(&reloaded, "id = ?", p.ID).Error)
	return reloaded.Quantity
}
