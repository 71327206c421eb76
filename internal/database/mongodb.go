package database

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/foliocms/foliocms/pkg/logger"
)

const maxPingAttempts = 5

// Connect opens a connection and verifies it with a ping, retrying with
// exponential backoff to tolerate startup races against the database
// container. Caller should call client.Disconnect(ctx).
func Connect(ctx context.Context, uri string, timeout time.Duration) (*mongo.Client, error) {
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, fmt.Errorf("mongo connect: %w", err)
	}

	backoff := time.Second
	var pingErr error
	for attempt := 1; attempt <= maxPingAttempts; attempt++ {
		pctx, cancel := context.WithTimeout(ctx, timeout)
		pingErr = client.Ping(pctx, nil)
		cancel()
		if pingErr == nil {
			return client, nil
		}
		logger.Warnf("attempt %d/%d: failed to reach MongoDB: %v", attempt, maxPingAttempts, pingErr)
		if attempt < maxPingAttempts {
			time.Sleep(backoff)
			backoff *= 2
		}
	}
	_ = client.Disconnect(ctx)
	return nil, fmt.Errorf("mongo ping after %d attempts: %w", maxPingAttempts, pingErr)
}
