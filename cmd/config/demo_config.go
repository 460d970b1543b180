package config

import (
	"context"

	"reloop-backend/internal/utils"
	"reloop-backend/pkg/demo"

	"github.com/redis/go-redis/v9"
)

// NewDemoStore builds the demo session store on top of the configured
// snapshot backend. Redis is used when multiple instances must see the same
// demo session; the file backend survives restarts on a single box; memory
// is the default for local development.
func NewDemoStore(ctx context.Context) *demo.Store {
	var snapshots demo.SnapshotStore

	switch utils.GetConfig("DEMO_SNAPSHOT_STORE") {
	case "redis":
		client := redis.NewClient(&redis.Options{
			Addr:     utils.GetConfig("REDIS_ADDR"),
			Password: utils.GetConfig("REDIS_PASSWORD"),
		})
		key := utils.GetConfig("DEMO_SNAPSHOT_KEY")
		if key == "" {
			key = "reloop:demo:snapshot"
		}
		snapshots = demo.NewRedisSnapshotStore(client, key)
	case "file":
		path := utils.GetConfig("DEMO_SNAPSHOT_FILE")
		if path == "" {
			path = "./demo_snapshot.json"
		}
		snapshots = demo.NewFileSnapshotStore(path)
	default:
		snapshots = demo.NewMemorySnapshotStore()
	}

	return demo.NewStore(ctx, snapshots)
}
