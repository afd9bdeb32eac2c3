package memory

import (
	"context"
	"sync"
)

type txKey struct{}

// TxManager сериализует транзакции над in-memory хранилищем
// Последовательность "проверить конфликты, затем создать" выполняется под одним мьютексом,
// а при ошибке состояние откатывается к снимку
type TxManager struct {
	mu   sync.Mutex
	repo *Repository
}

// NewTxManager создает менеджер транзакций для хранилища
func NewTxManager(repo *Repository) *TxManager {
	return &TxManager{repo: repo}
}

// Do выполняет fn атомарно
func (m *TxManager) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	return m.run(ctx, fn)
}

// DoSerializable выполняет fn атомарно и изолированно от других транзакций
func (m *TxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return m.run(ctx, fn)
}

// DoReadOnly выполняет fn изолированно от пишущих транзакций
func (m *TxManager) DoReadOnly(ctx context.Context, fn func(ctx context.Context) error) error {
	return m.run(ctx, fn)
}

func (m *TxManager) run(ctx context.Context, fn func(ctx context.Context) error) (err error) {
	if ctx.Value(txKey{}) != nil {
		return fn(ctx)
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	rooms, reservations := m.repo.snapshot()
	defer func() {
		if p := recover(); p != nil {
			m.repo.restore(rooms, reservations)
			panic(p)
		}
	}()

	if err := fn(context.WithValue(ctx, txKey{}, true)); err != nil {
		m.repo.restore(rooms, reservations)
		return err
	}
	return nil
}
