//go:build integration

package share

import (
	"context"
	"os"
	"testing"
	"time"
)

func TestMongoStore_Integration(t *testing.T) {
	uri := os.Getenv("ALGOVIZ_TEST_MONGO")
	if uri == "" {
		uri = "mongodb://localhost:27017"
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	s, err := NewMongoStore(ctx, MongoConfig{URI: uri, Database: "algoviz_test", Timeout: 2 * time.Second})
	if err != nil {
		t.Skipf("mongo unavailable: %v", err)
	}
	defer s.Close(context.Background())

	storeContract(t, s)
}
