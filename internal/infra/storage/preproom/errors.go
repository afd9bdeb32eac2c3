package preproom

import (
	"errors"
	"fmt"

	"github.com/lib/pq"

	"github.com/m04kA/SMC-PrepRoomService/internal/domain"
)

// SQLSTATE коды PostgreSQL, которые обрабатываются отдельно
const (
	pqSerializationFailure = "40001"
	pqDeadlockDetected     = "40P01"
	pqUniqueViolation      = "23505"
)

var (
	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = fmt.Errorf("%w: preproom.repository: failed to build query", domain.ErrPersistence)

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = fmt.Errorf("%w: preproom.repository: failed to execute query", domain.ErrPersistence)

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = fmt.Errorf("%w: preproom.repository: failed to scan row", domain.ErrPersistence)

	// ErrDuplicate возвращается при нарушении уникальности
	ErrDuplicate = fmt.Errorf("%w: preproom.repository: duplicate key", domain.ErrPersistence)
)

// mapExecError переводит ошибку драйвера в доменную
// Конфликт сериализации и дедлок означают, что транзакцию можно повторить
func mapExecError(op string, err error) error {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		switch pqErr.Code {
		case pqSerializationFailure, pqDeadlockDetected:
			return fmt.Errorf("%w: %s: %v", domain.ErrConcurrentUpdate, op, err)
		case pqUniqueViolation:
			return fmt.Errorf("%w: %s: %v", ErrDuplicate, op, err)
		}
	}
	return fmt.Errorf("%w: %s: %v", ErrExecQuery, op, err)
}
