package simulator

import (
	"Social_Network/followgraph/graph"
	"Social_Network/pipeline"
	"sync"
	"time"
)

// Action is a single operation issued by the simulator.
type Action int

// The actions a simulated client can perform.
const (
	ActionFollow Action = iota
	ActionUnfollow
	ActionCheck

	numActions
)

func (a Action) String() string {
	switch a {
	case ActionFollow:
		return "follow"
	case ActionUnfollow:
		return "unfollow"
	case ActionCheck:
		return "check"
	default:
		return "unknown"
	}
}

var (
	_ pipeline.Payload = (*actionPayload)(nil)

	payloadPool = sync.Pool{
		New: func() interface{} { return new(actionPayload) },
	}
)

type actionPayload struct {
	Seq      int
	Action   Action
	Follower graph.UserID
	Followee graph.UserID
	Delay    time.Duration

	// Populated by the executor stage.
	Changed bool
	Err     error
}

// Clone implements pipeline.Payload.
func (p *actionPayload) Clone() pipeline.Payload {
	newP := payloadPool.Get().(*actionPayload)
	*newP = *p
	return newP
}

// MarkAsProcessed implements pipeline.Payload
func (p *actionPayload) MarkAsProcessed() {
	*p = actionPayload{}
	payloadPool.Put(p)
}
