package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/RanieeelB/PulseFit/internal/telemetry/tracing"

	"github.com/go-redis/redis/v8"
)

const snapshotKeyPrefix = "pulsefit-session||"

// snapshotKey builds the redis key for a (user, workout) pair. The two
// parts are joined with a separator that cannot appear in either of
// them, so keys of different sessions cannot collide.
func snapshotKey(userID string, workoutID int) string {
	return fmt.Sprintf("%s%s||%d", snapshotKeyPrefix, userID, workoutID)
}

type RedisSnapshotStore struct {
	redisClient *redis.Client
}

func NewRedisSnapshotStore(redisClient *redis.Client) *RedisSnapshotStore {
	return &RedisSnapshotStore{
		redisClient: redisClient,
	}
}

func (s *RedisSnapshotStore) Get(ctx context.Context, userID string, workoutID int) (_ *Snapshot, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "session.snapshots.get")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	cmd := s.redisClient.Get(ctx, snapshotKey(userID, workoutID))
	if err := cmd.Err(); err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, ErrSnapshotNotFound
		}
		return nil, err
	}

	var snapshot Snapshot
	if err := json.Unmarshal([]byte(cmd.Val()), &snapshot); err != nil {
		return nil, fmt.Errorf("unmarshal session snapshot: %w", err)
	}

	return &snapshot, nil
}

func (s *RedisSnapshotStore) Save(ctx context.Context, snapshot *Snapshot) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "session.snapshots.save")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	snapshotJson, err := json.Marshal(snapshot)
	if err != nil {
		return fmt.Errorf("marshal session snapshot: %w", err)
	}

	cmd := s.redisClient.Set(ctx, snapshotKey(snapshot.UserID, snapshot.WorkoutID), snapshotJson, 0)
	return cmd.Err()
}

func (s *RedisSnapshotStore) Delete(ctx context.Context, userID string, workoutID int) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "session.snapshots.delete")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	cmd := s.redisClient.Del(ctx, snapshotKey(userID, workoutID))
	return cmd.Err()
}
