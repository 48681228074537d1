package reservation

import "github.com/m04kA/SMC-AvailabilityService/pkg/dbmetrics"

// DBExecutor переиспользуем интерфейс из dbmetrics для работы с БД.
// Поддерживает *sql.DB и *dbmetrics.DB
type DBExecutor = dbmetrics.DBExecutor
