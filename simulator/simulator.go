package simulator

import (
	"Social_Network/followgraph/graph"
	"Social_Network/pipeline"
	"context"
	"github.com/hashicorp/go-multierror"
	"github.com/juju/clock"
	"github.com/sirupsen/logrus"
	"golang.org/x/xerrors"
	"io/ioutil"
	"math/rand"
	"time"
)

// API defines the follow graph operations exercised by the simulator.
type API interface {
	Follow(follower, followee graph.UserID) (bool, error)
	Unfollow(follower, followee graph.UserID) (bool, error)
	IsFollowing(follower, followee graph.UserID) (bool, error)
	Commit() (graph.Version, error)
}

// Config encapsulates the settings for configuring a simulation run.
type Config struct {
	// The API to drive.
	API API

	// A clock instance for waiting between actions. If not specified, the
	// default wall-clock will be used instead.
	Clock clock.Clock

	// User IDs are drawn uniformly from [0, MaxUserID).
	MaxUserID uint64

	// The number of actions to generate.
	Actions int

	// Each worker waits for a random delay in [MinDelay, MaxDelay] after
	// every action.
	MinDelay time.Duration
	MaxDelay time.Duration

	// The number of concurrent workers issuing actions. Defaults to 1.
	Workers int

	// The seed for the random action generator. If zero, a time-based
	// seed is used.
	Seed int64

	// The logger to use. If not defined an output-discarding logger will
	// be used instead.
	Logger *logrus.Entry
}

func (cfg *Config) validate() error {
	var err error
	if cfg.API == nil {
		err = multierror.Append(err, xerrors.Errorf("API has not been provided"))
	}
	if cfg.Clock == nil {
		cfg.Clock = clock.WallClock
	}
	if cfg.MaxUserID == 0 {
		err = multierror.Append(err, xerrors.Errorf("invalid value for max user ID"))
	}
	if cfg.Actions < 0 {
		err = multierror.Append(err, xerrors.Errorf("invalid value for actions"))
	}
	if cfg.MinDelay < 0 || cfg.MaxDelay < cfg.MinDelay {
		err = multierror.Append(err, xerrors.Errorf("invalid delay range [%s, %s]", cfg.MinDelay, cfg.MaxDelay))
	}
	if cfg.Workers <= 0 {
		cfg.Workers = 1
	}
	if cfg.Seed == 0 {
		cfg.Seed = cfg.Clock.Now().UnixNano()
	}
	if cfg.Logger == nil {
		cfg.Logger = logrus.NewEntry(&logrus.Logger{Out: ioutil.Discard})
	}
	return err
}

// Stats summarizes the outcome of a simulation run.
type Stats struct {
	// Follow actions issued and how many of them created a new interval.
	Follows    int
	NewFollows int

	// Unfollow actions issued and how many of them ended a relationship.
	Unfollows  int
	Unfollowed int

	// Check actions issued and how many of them reported a relationship.
	Checks    int
	Following int

	// Actions dropped because the random pair was a self relation.
	Skipped int

	// Actions or commits that failed.
	Failures int
}

// Simulator issues random follow, unfollow and check actions against an
// API, committing after every mutation.
type Simulator struct {
	cfg Config
	p   *pipeline.Pipeline
}

// New returns a simulator configured with cfg.
func New(cfg Config) (*Simulator, error) {
	if err := cfg.validate(); err != nil {
		return nil, xerrors.Errorf("simulator: config validation failed: %w", err)
	}
	s := &Simulator{cfg: cfg}
	s.p = pipeline.New(
		pipeline.FixedWorkerPool(newActionExecutor(cfg.API, cfg.Clock), cfg.Workers),
	)
	return s, nil
}

// Run generates the configured number of actions and blocks until they have
// all been executed or ctx expires.
func (s *Simulator) Run(ctx context.Context) (Stats, error) {
	src := &actionSource{
		rng:       rand.New(rand.NewSource(s.cfg.Seed)),
		remaining: s.cfg.Actions,
		maxUserID: s.cfg.MaxUserID,
		minDelay:  s.cfg.MinDelay,
		maxDelay:  s.cfg.MaxDelay,
	}
	sink := &statsSink{logger: s.cfg.Logger}

	s.cfg.Logger.WithFields(logrus.Fields{
		"actions": s.cfg.Actions,
		"workers": s.cfg.Workers,
	}).Info("starting simulation")

	err := s.p.Process(ctx, src, sink)
	sink.stats.Skipped = src.skipped

	s.cfg.Logger.WithFields(logrus.Fields{
		"follows":   sink.stats.Follows,
		"unfollows": sink.stats.Unfollows,
		"checks":    sink.stats.Checks,
		"skipped":   sink.stats.Skipped,
		"failures":  sink.stats.Failures,
	}).Info("simulation finished")
	return sink.stats, err
}

// actionSource draws random actions. Self relations count towards the
// action budget but are never emitted.
type actionSource struct {
	rng       *rand.Rand
	remaining int
	maxUserID uint64
	minDelay  time.Duration
	maxDelay  time.Duration

	seq     int
	skipped int
	next    *actionPayload
}

func (s *actionSource) Next(ctx context.Context) bool {
	for s.remaining > 0 {
		if ctx.Err() != nil {
			return false
		}
		s.remaining--
		s.seq++

		action := Action(s.rng.Intn(int(numActions)))
		follower := graph.UserID(s.rng.Uint64() % s.maxUserID)
		followee := graph.UserID(s.rng.Uint64() % s.maxUserID)
		if follower == followee {
			s.skipped++
			continue
		}

		delay := s.minDelay
		if span := s.maxDelay - s.minDelay; span > 0 {
			delay += time.Duration(s.rng.Int63n(int64(span) + 1))
		}

		p := payloadPool.Get().(*actionPayload)
		p.Seq = s.seq
		p.Action = action
		p.Follower = follower
		p.Followee = followee
		p.Delay = delay
		s.next = p
		return true
	}
	return false
}

func (s *actionSource) Payload() pipeline.Payload { return s.next }

func (s *actionSource) Error() error { return nil }

type statsSink struct {
	logger *logrus.Entry
	stats  Stats
}

func (s *statsSink) Consume(_ context.Context, p pipeline.Payload) error {
	payload := p.(*actionPayload)
	logger := s.logger.WithFields(logrus.Fields{
		"seq":      payload.Seq,
		"action":   payload.Action.String(),
		"follower": payload.Follower,
		"followee": payload.Followee,
	})

	switch payload.Action {
	case ActionFollow:
		s.stats.Follows++
		if payload.Changed {
			s.stats.NewFollows++
		}
	case ActionUnfollow:
		s.stats.Unfollows++
		if payload.Changed {
			s.stats.Unfollowed++
		}
	case ActionCheck:
		s.stats.Checks++
		if payload.Changed {
			s.stats.Following++
		}
	}

	if payload.Err != nil {
		s.stats.Failures++
		logger.WithField("err", payload.Err.Error()).Warn("action failed")
		return nil
	}
	logger.WithField("result", payload.Changed).Debug("action completed")
	return nil
}
