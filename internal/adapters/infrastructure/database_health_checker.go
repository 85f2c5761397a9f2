package infrastructure

import (
	"context"

	"gorm.io/gorm"
	"weatheragent.app/internal/ports"
)

const (
	StatusHealthy   = ports.HealthStatusHealthy
	StatusUnhealthy = ports.HealthStatusUnhealthy
)

// DatabaseHealthChecker reports whether the transcript database answers and
// its transcript table has been migrated
type DatabaseHealthChecker struct {
	db    *gorm.DB
	table string
}

func NewDatabaseHealthChecker(db *gorm.DB, table string) *DatabaseHealthChecker {
	return &DatabaseHealthChecker{db: db, table: table}
}

func (d *DatabaseHealthChecker) Check(ctx context.Context) ports.HealthStatus {
	status := ports.HealthStatus{
		Component: "database",
		Status:    StatusUnhealthy,
		Details:   make(map[string]interface{}),
	}

	if d.db == nil {
		status.Error = "database instance is nil"
		return status
	}
	status.Details["dialect"] = d.db.Dialector.Name()

	sqlDB, err := d.db.DB()
	if err != nil {
		status.Error = "failed to get underlying database connection"
		return status
	}
	if err := sqlDB.PingContext(ctx); err != nil {
		status.Error = err.Error()
		return status
	}

	stats := sqlDB.Stats()
	status.Details["open_connections"] = stats.OpenConnections
	status.Details["in_use"] = stats.InUse

	db := d.db.WithContext(ctx)
	if !db.Migrator().HasTable(d.table) {
		status.Error = "table " + d.table + " is missing"
		return status
	}

	var transcripts int64
	if err := db.Table(d.table).Count(&transcripts).Error; err != nil {
		status.Error = err.Error()
		return status
	}
	status.Details["transcripts"] = transcripts

	status.Status = StatusHealthy
	return status
}
