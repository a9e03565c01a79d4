package plants

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"plant-care-api/internal/store"
)

func openStore(t *testing.T) *store.Store {
	t.Helper()
	dsn := "file:plants_" + strings.NewReplacer("/", "_", " ", "_").Replace(t.Name()) + "?mode=memory&cache=shared"
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger:         gormlogger.Discard,
		TranslateError: true,
	})
	require.NoError(t, err)

	s, err := store.New(db)
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func floatPtr(v float64) *float64 { return &v }
func intPtr(v int) *int { return &v }
