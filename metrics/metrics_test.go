package metrics

import (
	"Social_Network/followgraph/gate"
	"Social_Network/followgraph/graph"
	"Social_Network/followgraph/store/memory"
	"github.com/prometheus/client_golang/prometheus/testutil"
	gc "gopkg.in/check.v1"
	"testing"
)

var _ = gc.Suite(new(InstrumentedGraphTestSuite))

// Register our test-suite with go test.
func Test(t *testing.T) { gc.TestingT(t) }

type InstrumentedGraphTestSuite struct {
	graph.SuiteBase
}

func (s *InstrumentedGraphTestSuite) SetUpTest(c *gc.C) {
	s.SetGraph(Instrument(gate.NewLocked(memory.NewVersionedGraph())))
}

func (s *InstrumentedGraphTestSuite) TestOutcomesAreCounted(c *gc.C) {
	g := Instrument(memory.NewVersionedGraph())
	applied := testutil.ToFloat64(OperationsTotal.WithLabelValues("follow", OutcomeApplied))
	noop := testutil.ToFloat64(OperationsTotal.WithLabelValues("follow", OutcomeNoop))
	failed := testutil.ToFloat64(OperationsTotal.WithLabelValues("follow", OutcomeError))

	_, _ = g.Follow(1, 2)
	_, _ = g.Follow(1, 2)
	_, _ = g.Follow(3, 3)

	c.Assert(testutil.ToFloat64(OperationsTotal.WithLabelValues("follow", OutcomeApplied)), gc.Equals, applied+1)
	c.Assert(testutil.ToFloat64(OperationsTotal.WithLabelValues("follow", OutcomeNoop)), gc.Equals, noop+1)
	c.Assert(testutil.ToFloat64(OperationsTotal.WithLabelValues("follow", OutcomeError)), gc.Equals, failed+1)
}

func (s *InstrumentedGraphTestSuite) TestCommitUpdatesVersionGauge(c *gc.C) {
	g := Instrument(memory.NewVersionedGraph())
	c.Assert(testutil.ToFloat64(CurrentVersion), gc.Equals, float64(0))

	g.Commit()
	g.Commit()
	c.Assert(testutil.ToFloat64(CurrentVersion), gc.Equals, float64(2))
}
