package tx

import (
	"context"
	"errors"
	"fmt"

	"github.com/avito-tech/go-transaction-manager/pgxv5"
	"github.com/avito-tech/go-transaction-manager/trm/manager"
	"github.com/avito-tech/go-transaction-manager/trm/settings"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// https://www.postgresql.org/docs/current/errcodes-appendix.html
const pgErrSerializationFailure = "40001"

// ErrSerialization — конфликт сериализации: конкурентная транзакция успела
// первой. Вызывающий решает сам, ретраить или отдать конфликт наверх.
var ErrSerialization = errors.New("serialization conflict")

// Manager инкапсулирует управление транзакциями поверх trm.
type Manager struct {
	internal *manager.Manager
}

func New(db pgxv5.Transactional) *Manager {
	return &Manager{
		internal: manager.Must(pgxv5.NewDefaultFactory(db)),
	}
}

// Do выполняет fn в транзакции с уровнем Read Committed.
// Достаточно для одиночных апдейтов заказа: последняя запись побеждает.
func (m *Manager) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	return m.execWithIsoLevel(ctx, pgx.ReadCommitted, fn)
}

// DoSerializable выполняет fn с уровнем Serializable.
// Используется на назначении водителя, чтобы два агента не назначили один заказ дважды.
func (m *Manager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	err := m.execWithIsoLevel(ctx, pgx.Serializable, fn)

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == pgErrSerializationFailure {
		return fmt.Errorf("%w: %w", ErrSerialization, err)
	}
	return err
}

func (m *Manager) execWithIsoLevel(
	ctx context.Context,
	level pgx.TxIsoLevel,
	fn func(ctx context.Context) error,
) error {
	txSettings := pgxv5.MustSettings(
		settings.Must(),
		pgxv5.WithTxOptions(pgx.TxOptions{IsoLevel: level}),
	)
	return m.internal.DoWithSettings(ctx, txSettings, fn)
}
