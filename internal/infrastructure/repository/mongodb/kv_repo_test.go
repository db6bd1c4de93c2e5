package mongodb

import (
	"context"
	"os"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/mikiasgoitom/DailyWish/internal/infrastructure/database"
	"github.com/mikiasgoitom/DailyWish/internal/infrastructure/store/storetest"
)

// setupTestMongo connects to MONGODB_TEST_URI or skips the test.
func setupTestMongo(t *testing.T) *KeyValueRepository {
	t.Helper()
	uri := os.Getenv("MONGODB_TEST_URI")
	if uri == "" {
		t.Skip("MONGODB_TEST_URI not set")
	}
	client, err := database.NewMongoDBClient(uri)
	if err != nil {
		t.Skipf("MongoDB not available for testing: %v", err)
	}
	db := client.Client.Database("daily_wishes_test")
	t.Cleanup(func() {
		_ = db.Drop(context.Background())
		_ = client.Disconnect()
	})

	repo := NewKeyValueRepository(db)
	require.NoError(t, repo.EnsureIndexes(context.Background()))
	return repo
}

func TestKeyValueRepository_Contract(t *testing.T) {
	storetest.Run(t, setupTestMongo(t))
}
