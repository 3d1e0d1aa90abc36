package rpc

import (
	"Social_Network/followgraph/graph"
	"Social_Network/metrics"
	"Social_Network/socialnetapis/followgraphapi"
	"Social_Network/socialnetapis/followgraphapi/proto/socialnetwork"
	"context"
	"github.com/google/uuid"
	"github.com/hashicorp/go-multierror"
	"github.com/sirupsen/logrus"
	"golang.org/x/xerrors"
	"google.golang.org/grpc"
	"google.golang.org/grpc/status"
	"io/ioutil"
	"net"
	"time"
)

// Config encapsulates the settings for configuring the gRPC service.
type Config struct {
	// The follow graph to expose. It must be safe for concurrent use.
	Graph graph.Graph

	// The address to listen for incoming gRPC requests. Ignored if
	// Listener is set.
	ListenAddr string

	// An optional pre-bound listener.
	Listener net.Listener

	// The logger to use. If not defined an output-discarding logger will
	// be used instead.
	Logger *logrus.Entry
}

func (cfg *Config) validate() error {
	var err error
	if cfg.Graph == nil {
		err = multierror.Append(err, xerrors.Errorf("follow graph has not been provided"))
	}
	if cfg.ListenAddr == "" && cfg.Listener == nil {
		err = multierror.Append(err, xerrors.Errorf("listen address has not been specified"))
	}
	if cfg.Logger == nil {
		cfg.Logger = logrus.NewEntry(&logrus.Logger{Out: ioutil.Discard})
	}
	return err
}

// Service exposes a follow graph over gRPC.
type Service struct {
	cfg Config
}

// NewService creates a new gRPC service instance with the specified config.
func NewService(cfg Config) (*Service, error) {
	if err := cfg.validate(); err != nil {
		return nil, xerrors.Errorf("rpc service: config validation failed: %w", err)
	}
	return &Service{cfg: cfg}, nil
}

// Name implements service.Service
func (svc *Service) Name() string { return "rpc" }

// Run implements service.Service
func (svc *Service) Run(ctx context.Context) error {
	l := svc.cfg.Listener
	if l == nil {
		var err error
		if l, err = net.Listen("tcp", svc.cfg.ListenAddr); err != nil {
			return err
		}
	}
	defer func() { _ = l.Close() }()

	srv := grpc.NewServer(grpc.UnaryInterceptor(svc.intercept))
	socialnetwork.RegisterSocialNetworkServiceServer(srv, followgraphapi.NewFollowGraphServer(svc.cfg.Graph, svc.cfg.Logger))

	svc.cfg.Logger.WithField("addr", l.Addr().String()).Info("listening for gRPC connections")
	defer svc.cfg.Logger.Info("stopped service")

	errCh := make(chan error, 1)
	go func() { errCh <- srv.Serve(l) }()

	select {
	case <-ctx.Done():
		srv.GracefulStop()
		return <-errCh
	case err := <-errCh:
		return err
	}
}

// intercept tags each request with a unique ID, logs it and records its
// status code.
func (svc *Service) intercept(ctx context.Context, req interface{}, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (interface{}, error) {
	reqID := uuid.New()
	ctx = followgraphapi.WithRequestID(ctx, reqID)
	start := time.Now()

	res, err := handler(ctx, req)

	code := status.Code(err)
	metrics.RPCRequestsTotal.WithLabelValues(info.FullMethod, code.String()).Inc()
	svc.cfg.Logger.WithFields(logrus.Fields{
		"request_id": reqID.String(),
		"method":     info.FullMethod,
		"code":       code.String(),
		"duration":   time.Since(start).String(),
	}).Debug("handled gRPC request")
	return res, err
}
