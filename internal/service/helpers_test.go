package service_test

import (
	"fmt"
	"strings"
	"testing"

	"marketplace-backend/internal/client"
	"marketplace-backend/internal/model"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// newTestDB opens a named in-memory sqlite database shared across the
// connection pool, so concurrent gorm connections see the same data.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, client.Migrate(db))

	return db
}

func dec(t *testing.T, s string) decimal.Decimal {
	t.Helper()
	d, err := decimal.NewFromString(s)
	require.NoError(t, err)
	return d
}

func seedUser(t *testing.T, db *gorm.DB, email string) *model.User {
	t.Helper()
	user := &model.User{Email: email, Password: "x", Name: "Test User"}
	require.NoError(t, db.Create(user).Error)
	return user
}

func seedSeller(t *testing.T, db *gorm.DB, username, email string) *model.Seller {
	t.Helper()
	seller := &model.Seller{Username: username, Password: "x", Name: username, Email: email}
	require.NoError(t, db.Create(seller).Error)
	return seller
}

func seedProduct(t *testing.T, db *gorm.DB, product *model.Product) *model.Product {
	t.Helper()
	require.NoError(t, db.Create(product).Error)
	return product
}
