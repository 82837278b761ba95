package client

import (
	"context"
	"sync"
	"time"

	"evently/pkg/logger"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Client holds the process-wide connection handles. The Mongo connection is
// established lazily on first use: concurrent callers race to initialize it,
// sync.Once guarantees at-most-once actual connection establishment while all
// racing callers block on the same attempt. The resolved handle is reused for
// the lifetime of the process and closed on graceful shutdown.
type Client struct {
	log         *logger.Logger
	mongoURI    string
	connTimeout time.Duration

	once     sync.Once
	mongo    *mongo.Client
	mongoErr error

	ImageHost *ImageHostClient
}

func New(log *logger.Logger, mongoURI string, connTimeout time.Duration) *Client {
	return &Client{
		log:         log,
		mongoURI:    mongoURI,
		connTimeout: connTimeout,
	}
}

// Mongo returns the shared Mongo client, connecting on first call. The
// connection attempt uses its own timeout so a caller with a short request
// deadline cannot poison the shared handle for everyone else.
func (c *Client) Mongo(ctx context.Context) (*mongo.Client, error) {
	c.once.Do(func() {
		connCtx, cancel := context.WithTimeout(context.Background(), c.connTimeout)
		defer cancel()

		client, err := mongo.Connect(connCtx, options.Client().ApplyURI(c.mongoURI))
		if err != nil {
			c.mongoErr = err
			return
		}

		if err := client.Ping(connCtx, nil); err != nil {
			c.mongoErr = err
			return
		}

		c.log.Info("Connected to MongoDB")
		c.mongo = client
	})

	if c.mongoErr != nil {
		return nil, c.mongoErr
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return c.mongo, nil
}

func (c *Client) SetImageHost(baseURL string) {
	c.ImageHost = NewImageHostClient(baseURL)
}

func (c *Client) GracefulShutdown() {
	if c.mongo == nil {
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), c.connTimeout)
	defer cancel()

	if err := c.mongo.Disconnect(ctx); err != nil {
		c.log.Error("Failed to disconnect from MongoDB", "error", err)
		return
	}
	c.log.Info("Disconnected from MongoDB")
}
