package progress

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/formcoach/backend/internal/telemetry/tracing"

	"github.com/go-redis/redis/v8"
)

const milestoneStateKeyPrefix = "formcoach-milestone-states||"

// StateStore keeps the previous milestone state snapshot per exercise
// type in redis. The milestone engine itself is a pure fold, the store
// only exists so the unlock transition can be detected across
// recomputations.
type StateStore struct {
	redisClient *redis.Client
}

func NewStateStore(redisClient *redis.Client) *StateStore {
	return &StateStore{
		redisClient: redisClient,
	}
}

// Previous returns the last stored snapshot, or nil on the first ever
// invocation for this exercise type.
func (s *StateStore) Previous(ctx context.Context, exerciseType string) (_ []MilestoneState, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "progress.statestore.previous")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	cmd := s.redisClient.Get(ctx, milestoneStateKeyPrefix+exerciseType)
	if err := cmd.Err(); err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("get milestone states: %w", err)
	}

	var states []MilestoneState
	if err := json.Unmarshal([]byte(cmd.Val()), &states); err != nil {
		return nil, fmt.Errorf("unmarshal milestone states: %w", err)
	}
	return states, nil
}

func (s *StateStore) Save(ctx context.Context, exerciseType string, states []MilestoneState) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "progress.statestore.save")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	statesJson, err := json.Marshal(states)
	if err != nil {
		return fmt.Errorf("marshal milestone states: %w", err)
	}

	if err := s.redisClient.Set(ctx, milestoneStateKeyPrefix+exerciseType, statesJson, 0).Err(); err != nil {
		return fmt.Errorf("set milestone states: %w", err)
	}
	return nil
}
