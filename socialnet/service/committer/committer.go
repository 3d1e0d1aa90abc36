package committer

import (
	"Social_Network/followgraph/graph"
	"context"
	"github.com/hashicorp/go-multierror"
	"github.com/juju/clock"
	"github.com/sirupsen/logrus"
	"golang.org/x/xerrors"
	"io/ioutil"
	"time"
)

// GraphAPI defines the API methods used for sealing graph versions.
type GraphAPI interface {
	Commit() graph.Version
}

// Config encapsulates the settings for configuring the committer service.
type Config struct {
	// An API for committing versions of the follow graph.
	GraphAPI GraphAPI

	// A clock instance for generating time-related events. If not
	// specified, the default wall-clock will be used instead.
	Clock clock.Clock

	// The time between subsequent commits.
	Interval time.Duration

	// The logger to use. If not defined an output-discarding logger will
	// be used instead.
	Logger *logrus.Entry
}

func (cfg *Config) validate() error {
	var err error
	if cfg.GraphAPI == nil {
		err = multierror.Append(err, xerrors.Errorf("graph API has not been provided"))
	}
	if cfg.Clock == nil {
		cfg.Clock = clock.WallClock
	}
	if cfg.Interval <= 0 {
		err = multierror.Append(err, xerrors.Errorf("invalid value for commit interval"))
	}
	if cfg.Logger == nil {
		cfg.Logger = logrus.NewEntry(&logrus.Logger{Out: ioutil.Discard})
	}
	return err
}

// Service periodically seals the current version of the follow graph.
type Service struct {
	cfg Config
}

// NewService creates a new committer service instance with the specified config.
func NewService(cfg Config) (*Service, error) {
	if err := cfg.validate(); err != nil {
		return nil, xerrors.Errorf("committer service: config validation failed: %w", err)
	}
	return &Service{cfg: cfg}, nil
}

// Name implements service.Service
func (svc *Service) Name() string { return "committer" }

// Run implements service.Service
func (svc *Service) Run(ctx context.Context) error {
	svc.cfg.Logger.WithField("commit_interval", svc.cfg.Interval.String()).Info("starting service")
	defer svc.cfg.Logger.Info("stopped service")

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-svc.cfg.Clock.After(svc.cfg.Interval):
			v := svc.cfg.GraphAPI.Commit()
			svc.cfg.Logger.WithField("version", v).Debug("committed version")
		}
	}
}
