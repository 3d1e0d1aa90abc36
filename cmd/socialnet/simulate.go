package main

import (
	"Social_Network/simulator"
	"Social_Network/socialnetapis/followgraphapi"
	"Social_Network/socialnetapis/followgraphapi/proto/socialnetwork"
	"context"
	"fmt"
	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"golang.org/x/xerrors"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"
)

func newSimulateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "simulate",
		Short: "Drive a running server with random follow, unfollow and check actions",
		Args:  cobra.NoArgs,
		RunE:  runSimulate,
	}
	cmd.Flags().Uint64P("max-user-id", "m", 0, "user IDs are drawn from [0, max-user-id)")
	cmd.Flags().IntP("actions", "a", 1000, "number of actions to perform")
	cmd.Flags().Duration("min-delay", time.Millisecond, "minimum delay between actions")
	cmd.Flags().Duration("max-delay", 10*time.Millisecond, "maximum delay between actions")
	cmd.Flags().Int("workers", 1, "number of concurrent workers")
	cmd.Flags().String("server", "[::1]:50051", "server address")
	cmd.Flags().BoolP("verbose", "v", false, "log every action")
	_ = cmd.MarkFlagRequired("max-user-id")
	return cmd
}

func runSimulate(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	flags := cmd.Flags()
	if verbose, _ := flags.GetBool("verbose"); verbose {
		cfg.LogLevel = "debug"
	}
	clientID := uuid.New()
	logger := cfg.Logger(os.Stderr).WithField("client_id", clientID.String())

	maxUserID, _ := flags.GetUint64("max-user-id")
	actions, _ := flags.GetInt("actions")
	minDelay, _ := flags.GetDuration("min-delay")
	maxDelay, _ := flags.GetDuration("max-delay")
	workers, _ := flags.GetInt("workers")
	server, _ := flags.GetString("server")
	server = strings.TrimPrefix(server, "http://")

	ctx, cancelFn := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancelFn()

	conn, err := grpc.DialContext(ctx, server, grpc.WithTransportCredentials(insecure.NewCredentials()))
	if err != nil {
		return xerrors.Errorf("unable to dial %s: %w", server, err)
	}
	defer func() { _ = conn.Close() }()
	logger.WithField("server", server).Info("connected to social network server")

	sim, err := simulator.New(simulator.Config{
		API:       followgraphapi.NewFollowGraphClient(ctx, socialnetwork.NewSocialNetworkServiceClient(conn)),
		MaxUserID: maxUserID,
		Actions:   actions,
		MinDelay:  minDelay,
		MaxDelay:  maxDelay,
		Workers:   workers,
		Logger:    logger,
	})
	if err != nil {
		return err
	}

	stats, err := sim.Run(ctx)
	if err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Client finished after %d actions: %+v\n", actions, stats)
	return nil
}
