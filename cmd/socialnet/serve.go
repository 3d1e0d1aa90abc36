package main

import (
	"Social_Network/followgraph/gate"
	"Social_Network/followgraph/graph"
	"Social_Network/followgraph/store/memory"
	"Social_Network/metrics"
	"Social_Network/socialnet/config"
	"Social_Network/socialnet/service"
	"Social_Network/socialnet/service/committer"
	"Social_Network/socialnet/service/gateway"
	"Social_Network/socialnet/service/rpc"
	"context"
	"github.com/spf13/cobra"
	"io"
	"os"
	"os/signal"
	"syscall"
)

func newServeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the follow graph over gRPC and HTTP",
		Args:  cobra.NoArgs,
		RunE:  runServe,
	}
	cmd.Flags().String("grpc-addr", "", "address for the gRPC API")
	cmd.Flags().String("http-addr", "", "address for the HTTP gateway")
	cmd.Flags().Duration("commit-interval", 0, "commit automatically at this interval (0 disables)")
	cmd.Flags().String("gate", "", "concurrency gate: locked or serial")
	return cmd
}

func runServe(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	logger := cfg.Logger(os.Stderr)

	g, closer := buildGraph(cfg.Gate)
	defer func() { _ = closer.Close() }()

	rpcSvc, err := rpc.NewService(rpc.Config{
		Graph:      g,
		ListenAddr: cfg.GRPCAddr,
		Logger:     logger.WithField("service", "rpc"),
	})
	if err != nil {
		return err
	}
	gwSvc, err := gateway.NewService(gateway.Config{
		Graph:      g,
		ListenAddr: cfg.HTTPAddr,
		Logger:     logger.WithField("service", "gateway"),
	})
	if err != nil {
		return err
	}
	grp := service.Group{rpcSvc, gwSvc}

	if cfg.CommitInterval > 0 {
		commitSvc, err := committer.NewService(committer.Config{
			GraphAPI: g,
			Interval: cfg.CommitInterval,
			Logger:   logger.WithField("service", "committer"),
		})
		if err != nil {
			return err
		}
		grp = append(grp, commitSvc)
	}

	ctx, cancelFn := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancelFn()

	logger.WithField("gate", cfg.Gate).Info("starting social network server")
	return grp.Run(ctx)
}

// buildGraph wires an in-memory graph behind the requested concurrency gate
// and instruments it. The returned closer releases the gate.
func buildGraph(kind string) (graph.Graph, io.Closer) {
	store := memory.NewVersionedGraph()
	if kind == config.GateSerial {
		serial := gate.NewSerial(store)
		return metrics.Instrument(serial), serial
	}
	return metrics.Instrument(gate.NewLocked(store)), nopCloser{}
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }
