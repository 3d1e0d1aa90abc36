package simulator

import (
	"Social_Network/pipeline"
	"context"
	"github.com/juju/clock"
	"golang.org/x/xerrors"
)

type actionExecutor struct {
	api   API
	clock clock.Clock
}

func newActionExecutor(api API, clk clock.Clock) *actionExecutor {
	return &actionExecutor{api: api, clock: clk}
}

// Process executes the action described by the payload, commits after
// mutations and then waits for the payload's delay. Failures are recorded on
// the payload rather than aborting the run.
func (e *actionExecutor) Process(ctx context.Context, p pipeline.Payload) (pipeline.Payload, error) {
	payload := p.(*actionPayload)

	switch payload.Action {
	case ActionFollow:
		payload.Changed, payload.Err = e.api.Follow(payload.Follower, payload.Followee)
		e.commit(payload)
	case ActionUnfollow:
		payload.Changed, payload.Err = e.api.Unfollow(payload.Follower, payload.Followee)
		e.commit(payload)
	case ActionCheck:
		payload.Changed, payload.Err = e.api.IsFollowing(payload.Follower, payload.Followee)
	default:
		return nil, xerrors.Errorf("unknown action %d", payload.Action)
	}

	if payload.Delay > 0 {
		select {
		case <-e.clock.After(payload.Delay):
		case <-ctx.Done():
		}
	}
	return payload, nil
}

func (e *actionExecutor) commit(payload *actionPayload) {
	if _, err := e.api.Commit(); err != nil && payload.Err == nil {
		payload.Err = xerrors.Errorf("commit: %w", err)
	}
}
