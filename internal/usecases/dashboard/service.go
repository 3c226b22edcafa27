package dashboard

import (
	"context"
	"fmt"
	"time"

	"github.com/vfg2006/sales-dashboard/infrastructure/repository"
	"github.com/vfg2006/sales-dashboard/internal/cache"
	"github.com/vfg2006/sales-dashboard/internal/config"
	"github.com/vfg2006/sales-dashboard/internal/domain"
	"github.com/vfg2006/sales-dashboard/pkg/log"
	"github.com/vfg2006/sales-dashboard/pkg/utils"
	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/singleflight"
)

// DefaultReadTimeout limita a leitura das duas tabelas na origem
const DefaultReadTimeout = 10 * time.Second

const snapshotKey = "snapshot"

// StatusProvider entrega o snapshot atual do painel
type StatusProvider interface {
	GetStatus(ctx context.Context) StatusResult
	Refresh(ctx context.Context) error
}

// Service monta o snapshot do painel sob demanda e o mantém em cache pelo TTL
type Service struct {
	reader      repository.TransactionReader
	snapshots   *cache.SingleSlot[*domain.Snapshot]
	group       singleflight.Group
	location    *time.Location
	now         cache.Clock
	readTimeout time.Duration
	topProducts int
}

type Option func(*Service)

// WithClock substitui o relógio usado para classificar os registros
func WithClock(clock cache.Clock) Option {
	return func(s *Service) {
		s.now = clock
	}
}

// NewService cria o serviço do painel
func NewService(
	reader repository.TransactionReader,
	snapshots *cache.SingleSlot[*domain.Snapshot],
	cfg config.Dashboard,
	opts ...Option,
) *Service {
	s := &Service{
		reader:      reader,
		snapshots:   snapshots,
		location:    cfg.Location,
		now:         time.Now,
		readTimeout: cfg.ReadTimeout,
		topProducts: cfg.TopProducts,
	}

	if s.location == nil {
		s.location = DefaultLocation()
	}
	if s.readTimeout <= 0 {
		s.readTimeout = DefaultReadTimeout
	}
	if s.topProducts <= 0 {
		s.topProducts = DefaultTopProducts
	}
	if s.snapshots == nil {
		s.snapshots = cache.NewSingleSlot[*domain.Snapshot](cache.DefaultTTL)
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

// GetStatus retorna o snapshot em cache ou monta um novo. Falhas não são
// guardadas em cache: a próxima chamada tenta a origem de novo.
func (s *Service) GetStatus(ctx context.Context) StatusResult {
	if snapshot, ok := s.snapshots.Get(); ok {
		return success(snapshot)
	}

	snapshot, err := s.load(ctx, true)
	if err != nil {
		log.ForContext(ctx).WithError(err).Error("Erro ao montar o snapshot do painel")
		return failure(err)
	}

	return success(snapshot)
}

// Refresh recalcula o snapshot ignorando o cache. O snapshot anterior continua
// sendo servido até o novo ficar pronto.
func (s *Service) Refresh(ctx context.Context) error {
	_, err := s.load(ctx, false)
	return err
}

// CacheStatus descreve o cache de snapshots para o healthcheck
func (s *Service) CacheStatus() map[string]any {
	expiresAt := s.snapshots.ExpiresAt()

	status := map[string]any{
		"cache_ttl_seconds": int(s.snapshots.TTL().Seconds()),
		"cache_filled":      !expiresAt.IsZero(),
	}
	if !expiresAt.IsZero() {
		status["cache_expires_at"] = expiresAt.In(s.location).Format(time.RFC3339)
	}

	return status
}

// load colapsa recálculos concorrentes em uma única leitura da origem
func (s *Service) load(ctx context.Context, useCache bool) (*domain.Snapshot, error) {
	value, err, shared := s.group.Do(snapshotKey, func() (any, error) {
		if useCache {
			if snapshot, ok := s.snapshots.Get(); ok {
				return snapshot, nil
			}
		}

		snapshot, err := s.build(ctx)
		if err != nil {
			return nil, err
		}

		s.snapshots.Put(snapshot)
		return snapshot, nil
	})
	if err != nil {
		return nil, err
	}

	if shared {
		log.ForContext(ctx).Debug("Snapshot compartilhado entre requisições concorrentes")
	}

	return value.(*domain.Snapshot), nil
}

func (s *Service) build(ctx context.Context) (*domain.Snapshot, error) {
	start := time.Now()
	logger := log.ForContext(ctx)

	// A leitura não herda o cancelamento de quem disparou: o resultado é compartilhado
	readCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), s.readTimeout)
	defer cancel()

	var (
		saleRows    []domain.SaleRow
		expenseRows []domain.ExpenseRow
	)

	g, gctx := errgroup.WithContext(readCtx)
	g.Go(func() error {
		rows, err := s.reader.ListSales(gctx)
		if err != nil {
			return fmt.Errorf("erro ao ler vendas: %w", err)
		}
		saleRows = rows
		return nil
	})
	g.Go(func() error {
		rows, err := s.reader.ListExpenses(gctx)
		if err != nil {
			return fmt.Errorf("erro ao ler gastos: %w", err)
		}
		expenseRows = rows
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrSourceUnavailable, err)
	}

	normalizer := NewNormalizer(s.location)
	sales, droppedSales := normalizer.Sales(saleRows)
	expenses, droppedExpenses := normalizer.Expenses(expenseRows)

	switch {
	case len(saleRows) == 0 && len(expenseRows) == 0:
		logger.WithError(domain.ErrEmptySource).Warn("Nenhuma venda ou gasto encontrado na origem")
	case len(sales) == 0 && len(expenses) == 0:
		logger.WithField("snapshot_dropped", droppedSales+droppedExpenses).
			Warn("Todas as linhas da origem foram descartadas por timestamp inválido")
	}

	snapshot := Assemble(sales, expenses, s.now(), AssembleOptions{
		Location:       s.location,
		TopProducts:    s.topProducts,
		DroppedRecords: droppedSales + droppedExpenses,
	})

	id, err := utils.GenerateID()
	if err != nil {
		return nil, fmt.Errorf("erro ao gerar identificador do snapshot: %w", err)
	}
	snapshot.ID = id

	logger.WithFields(log.Fields{
		"snapshot_id":       snapshot.ID,
		"snapshot_sales":    len(sales),
		"snapshot_expenses": len(expenses),
		"snapshot_dropped":  snapshot.DroppedRecords,
		"duration_ms":       time.Since(start).Milliseconds(),
	}).Info("Snapshot do painel recalculado")

	return &snapshot, nil
}
