package room

import "github.com/strix8755/LodgeEaseApp-sub000/pkg/dbmetrics"

type DBExecutor = dbmetrics.DBExecutor
