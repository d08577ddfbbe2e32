package queue_test

import (
	"context"
	"log"
	"os"
	"testing"

	"go-gin-calendar/config"
	"go-gin-calendar/internal/database"

	"github.com/redis/go-redis/v9"
)

var testRdb *redis.Client

func TestMain(m *testing.M) {
	cfg := config.LoadTestConfig()
	rdb, err := database.InitRedis(&cfg.Redis)
	if err != nil {
		log.Printf("Test redis unavailable, stream tests will be skipped: %v", err)
	} else {
		testRdb = rdb
	}

	code := m.Run()
	if testRdb != nil {
		testRdb.Close()
	}
	os.Exit(code)
}

func getTestRdb(t *testing.T) *redis.Client {
	t.Helper()
	if testRdb == nil {
		t.Skip("test redis is not available")
	}
	if err := testRdb.FlushDB(context.Background()).Err(); err != nil {
		t.Fatalf("Failed to flush redis: %v", err)
	}
	return testRdb
}
