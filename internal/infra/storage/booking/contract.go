package booking

import (
	"github.com/courtside/booking-service/pkg/dbmetrics"
)

// Переиспользуем интерфейс из dbmetrics для работы с БД
// Поддерживает *sql.DB, *dbmetrics.DB и транзакции
type DBExecutor = dbmetrics.DBExecutor
