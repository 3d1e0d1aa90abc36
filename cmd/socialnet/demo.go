package main

import (
	"Social_Network/followgraph/gate"
	"Social_Network/followgraph/graph"
	"Social_Network/followgraph/store/memory"
	"fmt"
	"github.com/spf13/cobra"
	"io"
)

func newDemoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "demo",
		Short: "Run a scripted walkthrough of the versioned follow graph",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runDemo(cmd.OutOrStdout(), gate.NewLocked(memory.NewVersionedGraph()))
		},
	}
}

func runDemo(w io.Writer, g graph.Graph) error {
	fmt.Fprintln(w, "=== Social Network Graph Demo ===")

	v0 := g.Commit()
	fmt.Fprintf(w, "Initial version: %d\n", v0)

	steps := []struct {
		unfollow bool
		edge     graph.Edge
	}{
		{edge: graph.Edge{Follower: 1, Followee: 2}},
		{edge: graph.Edge{Follower: 1, Followee: 3}},
		{edge: graph.Edge{Follower: 2, Followee: 1}},
		{unfollow: true, edge: graph.Edge{Follower: 1, Followee: 3}},
	}
	last := v0
	for _, step := range steps {
		verb := "follows"
		var err error
		if step.unfollow {
			verb = "unfollows"
			_, err = g.Unfollow(step.edge.Follower, step.edge.Followee)
		} else {
			_, err = g.Follow(step.edge.Follower, step.edge.Followee)
		}
		if err != nil {
			return err
		}
		last = g.Commit()
		fmt.Fprintf(w, "User %d %s user %d -> Version %d\n", step.edge.Follower, verb, step.edge.Followee, last)
	}

	fmt.Fprintln(w, "\n=== Relationship History ===")
	for i, edge := range []graph.Edge{{Follower: 1, Followee: 2}, {Follower: 1, Followee: 3}, {Follower: 2, Followee: 1}} {
		if i > 0 {
			fmt.Fprintln(w)
		}
		fmt.Fprintf(w, "User %d following User %d:\n", edge.Follower, edge.Followee)
		for v := v0; v <= last; v++ {
			fmt.Fprintf(w, "  Version %d: %t\n", v, g.IsFollowingAt(edge.Follower, edge.Followee, v))
		}
	}

	fmt.Fprintln(w, "\n=== Current State ===")
	for _, user := range []graph.UserID{1, 2} {
		fmt.Fprintf(w, "User %d followers: %v\n", user, g.Followers(user))
		fmt.Fprintf(w, "User %d followees: %v\n", user, g.Followees(user))
	}
	return nil
}
