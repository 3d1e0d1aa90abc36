package service

import (
	"context"
	"go.uber.org/goleak"
	"golang.org/x/xerrors"
	gc "gopkg.in/check.v1"
	"strings"
	"testing"
	"time"
)

var _ = gc.Suite(new(GroupTestSuite))

// Register our test-suite with go test.
func Test(t *testing.T) { gc.TestingT(t) }

func TestMain(m *testing.M) { goleak.VerifyTestMain(m) }

type GroupTestSuite struct{}

func (s *GroupTestSuite) TestCancelStopsAllServices(c *gc.C) {
	ctx, cancelFn := context.WithCancel(context.TODO())
	started := make(chan struct{}, 2)
	grp := Group{blockingService("a", started), blockingService("b", started)}

	errCh := make(chan error, 1)
	go func() { errCh <- grp.Run(ctx) }()
	<-started
	<-started
	cancelFn()

	select {
	case err := <-errCh:
		c.Assert(err, gc.IsNil)
	case <-time.After(10 * time.Second):
		c.Fatal("timed out waiting for group to exit")
	}
}

func (s *GroupTestSuite) TestFailingServiceStopsGroup(c *gc.C) {
	started := make(chan struct{}, 1)
	grp := Group{
		blockingService("idle", started),
		serviceFunc{name: "broken", run: func(context.Context) error { return xerrors.New("boom") }},
	}

	err := grp.Run(context.TODO())
	c.Assert(err, gc.NotNil)
	c.Assert(strings.Contains(err.Error(), "broken: boom"), gc.Equals, true, gc.Commentf("got %v", err))
}

type serviceFunc struct {
	name string
	run  func(context.Context) error
}

func (s serviceFunc) Name() string                  { return s.name }
func (s serviceFunc) Run(ctx context.Context) error { return s.run(ctx) }

func blockingService(name string, started chan<- struct{}) Service {
	return serviceFunc{name: name, run: func(ctx context.Context) error {
		started <- struct{}{}
		<-ctx.Done()
		return nil
	}}
}
