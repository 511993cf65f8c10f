package booking

import "github.com/strix8755/LodgeEaseApp-sub000/pkg/dbmetrics"

// Переиспользуем интерфейс из dbmetrics для работы с БД
type DBExecutor = dbmetrics.DBExecutor
