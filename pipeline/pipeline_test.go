package pipeline

import (
	"context"
	"go.uber.org/goleak"
	"golang.org/x/xerrors"
	gc "gopkg.in/check.v1"
	"sort"
	"sync"
	"testing"
)

var _ = gc.Suite(new(PipelineTestSuite))

// Register our test-suite with go test.
func Test(t *testing.T) { gc.TestingT(t) }

func TestMain(m *testing.M) { goleak.VerifyTestMain(m) }

type PipelineTestSuite struct{}

func (s *PipelineTestSuite) TestDataFlow(c *gc.C) {
	stages := make([]StageRunner, 10)
	for i := 0; i < len(stages); i++ {
		stages[i] = FIFO(ProcessorFunc(func(_ context.Context, p Payload) (Payload, error) {
			p.(*intPayload).val++
			return p, nil
		}))
	}

	src := &sourceStub{data: intPayloads(3)}
	sink := new(sinkStub)

	err := New(stages...).Process(context.TODO(), src, sink)
	c.Assert(err, gc.IsNil)
	c.Assert(sink.values(), gc.DeepEquals, []int{10, 11, 12})
	assertAllProcessed(c, src.data)
}

func (s *PipelineTestSuite) TestDroppedPayloadsAreMarkedProcessed(c *gc.C) {
	dropOdd := FIFO(ProcessorFunc(func(_ context.Context, p Payload) (Payload, error) {
		if p.(*intPayload).val%2 == 1 {
			return nil, nil
		}
		return p, nil
	}))

	src := &sourceStub{data: intPayloads(6)}
	sink := new(sinkStub)

	err := New(dropOdd).Process(context.TODO(), src, sink)
	c.Assert(err, gc.IsNil)
	c.Assert(sink.values(), gc.DeepEquals, []int{0, 2, 4})
	assertAllProcessed(c, src.data)
}

func (s *PipelineTestSuite) TestFixedWorkerPool(c *gc.C) {
	var (
		mu      sync.Mutex
		max     int
		cur     int
		release = make(chan struct{})
		once    sync.Once
	)
	proc := ProcessorFunc(func(_ context.Context, p Payload) (Payload, error) {
		mu.Lock()
		cur++
		if cur > max {
			max = cur
		}
		if cur == 4 {
			// Workers pick up more payloads once released, so 4 is reached again.
			once.Do(func() { close(release) })
		}
		mu.Unlock()

		<-release

		mu.Lock()
		cur--
		mu.Unlock()
		return p, nil
	})

	src := &sourceStub{data: intPayloads(20)}
	sink := new(sinkStub)

	err := New(FixedWorkerPool(proc, 4)).Process(context.TODO(), src, sink)
	c.Assert(err, gc.IsNil)
	c.Assert(max, gc.Equals, 4)

	got := sink.values()
	sort.Ints(got)
	c.Assert(got, gc.HasLen, 20)
	for i, v := range got {
		c.Assert(v, gc.Equals, i)
	}
}

func (s *PipelineTestSuite) TestProcessorErrorAbortsPipeline(c *gc.C) {
	expErr := xerrors.New("some error")
	stages := make([]StageRunner, 3)
	for i := 0; i < len(stages); i++ {
		var err error
		if i == 1 {
			err = expErr
		}
		stages[i] = FIFO(makeFailingProcessor(err))
	}

	src := &sourceStub{data: intPayloads(3)}
	err := New(stages...).Process(context.TODO(), src, new(sinkStub))
	c.Assert(err, gc.ErrorMatches, "(?s).*pipeline stage 1: some error.*")
}

func (s *PipelineTestSuite) TestSourceErrorIsReported(c *gc.C) {
	src := &sourceStub{data: intPayloads(3), err: xerrors.New("source failed")}
	err := New(FIFO(makeFailingProcessor(nil))).Process(context.TODO(), src, new(sinkStub))
	c.Assert(err, gc.ErrorMatches, "(?s).*pipeline source: source failed.*")
}

func (s *PipelineTestSuite) TestSinkErrorIsReported(c *gc.C) {
	src := &sourceStub{data: intPayloads(3)}
	sink := &sinkStub{err: xerrors.New("sink failed")}
	err := New(FIFO(makeFailingProcessor(nil))).Process(context.TODO(), src, sink)
	c.Assert(err, gc.ErrorMatches, "(?s).*pipeline sink: sink failed.*")
}

func (s *PipelineTestSuite) TestContextCancellation(c *gc.C) {
	ctx, cancelFn := context.WithCancel(context.TODO())
	proc := ProcessorFunc(func(ctx context.Context, p Payload) (Payload, error) {
		cancelFn()
		return p, nil
	})

	src := &sourceStub{data: intPayloads(100)}
	err := New(FIFO(proc)).Process(ctx, src, new(sinkStub))
	c.Assert(err, gc.IsNil)
}

func makeFailingProcessor(err error) Processor {
	return ProcessorFunc(func(_ context.Context, p Payload) (Payload, error) {
		return p, err
	})
}

type intPayload struct {
	val       int
	processed bool
}

func (p *intPayload) Clone() Payload   { return &intPayload{val: p.val} }
func (p *intPayload) MarkAsProcessed() { p.processed = true }

func intPayloads(n int) []Payload {
	out := make([]Payload, n)
	for i := 0; i < n; i++ {
		out[i] = &intPayload{val: i}
	}
	return out
}

func assertAllProcessed(c *gc.C, payloads []Payload) {
	for i, p := range payloads {
		c.Assert(p.(*intPayload).processed, gc.Equals, true, gc.Commentf("payload %d not processed", i))
	}
}

type sourceStub struct {
	index int
	data  []Payload
	err   error
}

func (s *sourceStub) Next(context.Context) bool {
	if s.err != nil || s.index == len(s.data) {
		return false
	}
	s.index++
	return true
}
func (s *sourceStub) Error() error     { return s.err }
func (s *sourceStub) Payload() Payload { return s.data[s.index-1] }

type sinkStub struct {
	mu   sync.Mutex
	data []Payload
	err  error
}

func (s *sinkStub) Consume(_ context.Context, p Payload) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data = append(s.data, p)
	return s.err
}

func (s *sinkStub) values() []int {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]int, len(s.data))
	for i, p := range s.data {
		out[i] = p.(*intPayload).val
	}
	return out
}
