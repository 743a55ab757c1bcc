package db

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap/zaptest"
)

func TestSchema_DeclaresTables(t *testing.T) {
	for _, table := range []string{
		"businesses", "profiles", "user_roles", "products", "low_stock_alerts",
		"employees", "attendance", "sales", "sale_items",
	} {
		assert.Contains(t, Schema, "CREATE TABLE IF NOT EXISTS "+table+" (")
	}
	assert.Contains(t, Schema, "UNIQUE (employee_id, date)")
	assert.Contains(t, Schema, "sale_id    UUID NOT NULL REFERENCES sales(id) ON DELETE CASCADE")
	assert.Contains(t, Schema, "CHECK (quantity >= 0)")
	assert.Contains(t, Schema, "AFTER INSERT ON sale_items")
}

func TestConnect_RejectsBadDSN(t *testing.T) {
	_, err := Connect(context.Background(), "postgres://%zz", 4, zaptest.NewLogger(t))
	assert.ErrorContains(t, err, "parse dsn")
}
