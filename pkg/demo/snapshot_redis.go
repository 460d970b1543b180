package demo

import (
	"context"
	"encoding/json"
	"errors"
	"log"

	"github.com/redis/go-redis/v9"
)

// RedisSnapshotStore persists the snapshot under a single Redis key and uses
// pub/sub as the change signal, so every instance sharing the key converges
// the way browser tabs do on storage events.
type RedisSnapshotStore struct {
	client  *redis.Client
	key     string
	channel string
}

func NewRedisSnapshotStore(client *redis.Client, key string) *RedisSnapshotStore {
	return &RedisSnapshotStore{
		client:  client,
		key:     key,
		channel: key + ":changed",
	}
}

func (s *RedisSnapshotStore) Load(ctx context.Context) (*Snapshot, error) {
	raw, err := s.client.Get(ctx, s.key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, err
	}
	var snap Snapshot
	if err := json.Unmarshal(raw, &snap); err != nil {
		return nil, err
	}
	return &snap, nil
}

func (s *RedisSnapshotStore) Save(ctx context.Context, snap *Snapshot) error {
	raw, err := json.Marshal(snap)
	if err != nil {
		return err
	}
	if err := s.client.Set(ctx, s.key, raw, 0).Err(); err != nil {
		return err
	}
	return s.client.Publish(ctx, s.channel, snap.Timestamp).Err()
}

func (s *RedisSnapshotStore) Watch(ctx context.Context) <-chan struct{} {
	ch := make(chan struct{}, 1)
	sub := s.client.Subscribe(ctx, s.channel)

	go func() {
		defer func() {
			if err := sub.Close(); err != nil {
				log.Printf("[demo] closing snapshot subscription: %v", err)
			}
		}()
		for {
			select {
			case <-ctx.Done():
				return
			case _, ok := <-sub.Channel():
				if !ok {
					return
				}
				select {
				case ch <- struct{}{}:
				default:
				}
			}
		}
	}()

	return ch
}
