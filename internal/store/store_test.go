package store

import (
	"testing"

	"github.com/EasWay/bina-mobile/internal/models"
	"github.com/EasWay/bina-mobile/pkg/database"

	"github.com/glebarez/sqlite"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))
	return db
}

func createTestProduct(t *testing.T, db *gorm.DB, userID, name string, price int64, quantity int) *models.Product {
	t.Helper()

	product, err := NewProductStore(db).Create(userID, name, "general", "", decimal.NewFromInt(price), quantity)
	require.NoError(t, err)
	return product
}
