package gateway

import (
	"Social_Network/followgraph/gate"
	"Social_Network/followgraph/graph"
	"Social_Network/followgraph/store/memory"
	"context"
	"encoding/json"
	"golang.org/x/xerrors"
	gc "gopkg.in/check.v1"
	"net"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"
)

var _ = gc.Suite(new(GatewayTestSuite))

// Register our test-suite with go test.
func Test(t *testing.T) { gc.TestingT(t) }

type GatewayTestSuite struct {
	backend *brokenGraph
	svc     *Service
}

func (s *GatewayTestSuite) SetUpTest(c *gc.C) {
	s.backend = &brokenGraph{Graph: memory.NewVersionedGraph()}
	svc, err := NewService(Config{
		Graph:      gate.NewLocked(s.backend),
		ListenAddr: ":0",
	})
	c.Assert(err, gc.IsNil)
	s.svc = svc
}

func (s *GatewayTestSuite) TestConfigValidation(c *gc.C) {
	_, err := NewService(Config{})
	c.Assert(err, gc.ErrorMatches, "(?s)gateway service: config validation failed: .*follow graph has not been provided.*listen address has not been specified.*")
}

func (s *GatewayTestSuite) TestFollowAndQuery(c *gc.C) {
	res := s.do(c, http.MethodPost, "/follows", `{"follower":1,"followee":2}`)
	c.Assert(res.Code, gc.Equals, http.StatusOK)
	c.Assert(res.Header().Get(requestIDHeader), gc.Not(gc.Equals), "")
	c.Assert(decode(c, res)["was_new"], gc.Equals, true)

	res = s.do(c, http.MethodPost, "/follows", `{"follower":1,"followee":2}`)
	c.Assert(decode(c, res)["was_new"], gc.Equals, false)

	res = s.do(c, http.MethodGet, "/follows/1/2", "")
	c.Assert(res.Code, gc.Equals, http.StatusOK)
	c.Assert(decode(c, res)["is_following"], gc.Equals, true)

	res = s.do(c, http.MethodGet, "/users/2/followers", "")
	body := decode(c, res)
	c.Assert(body["ids"], gc.DeepEquals, []interface{}{float64(1)})
	c.Assert(body["count"], gc.Equals, float64(1))

	res = s.do(c, http.MethodGet, "/users/1/followees", "")
	c.Assert(decode(c, res)["ids"], gc.DeepEquals, []interface{}{float64(2)})

	res = s.do(c, http.MethodGet, "/users/9/followees", "")
	c.Assert(decode(c, res)["ids"], gc.DeepEquals, []interface{}{})
}

func (s *GatewayTestSuite) TestVersionedQueries(c *gc.C) {
	s.do(c, http.MethodPost, "/follows", `{"follower":1,"followee":2}`)

	res := s.do(c, http.MethodPost, "/commit", "")
	c.Assert(decode(c, res)["version"], gc.Equals, float64(1))

	res = s.do(c, http.MethodDelete, "/follows/1/2", "")
	c.Assert(decode(c, res)["was_unfollowed"], gc.Equals, true)

	res = s.do(c, http.MethodDelete, "/follows/1/2", "")
	c.Assert(decode(c, res)["was_unfollowed"], gc.Equals, false)

	res = s.do(c, http.MethodGet, "/version", "")
	c.Assert(decode(c, res)["version"], gc.Equals, float64(1))

	res = s.do(c, http.MethodGet, "/follows/1/2?version=0", "")
	c.Assert(decode(c, res)["is_following"], gc.Equals, true)

	res = s.do(c, http.MethodGet, "/follows/1/2?version=7", "")
	c.Assert(decode(c, res)["is_following"], gc.Equals, false)

	res = s.do(c, http.MethodGet, "/follows/1/2/history", "")
	c.Assert(decode(c, res)["intervals"], gc.DeepEquals, []interface{}{
		map[string]interface{}{"start": float64(0), "end": float64(1)},
	})

	s.do(c, http.MethodPost, "/commit", "")
	s.do(c, http.MethodPost, "/follows", `{"follower":1,"followee":2}`)
	res = s.do(c, http.MethodGet, "/follows/1/2/history", "")
	c.Assert(decode(c, res)["intervals"], gc.DeepEquals, []interface{}{
		map[string]interface{}{"start": float64(0), "end": float64(1)},
		map[string]interface{}{"start": float64(2), "open": true},
	})
}

func (s *GatewayTestSuite) TestBadRequests(c *gc.C) {
	specs := []struct {
		method, path, body string
	}{
		{http.MethodPost, "/follows", `{"follower":1,"followee":1}`},
		{http.MethodPost, "/follows", `{"follower":1}`},
		{http.MethodPost, "/follows", `not json`},
		{http.MethodDelete, "/follows/3/3", ""},
		{http.MethodDelete, "/follows/abc/3", ""},
		{http.MethodGet, "/follows/1/-2", ""},
		{http.MethodGet, "/follows/1/2?version=x", ""},
		{http.MethodGet, "/users/x/followers", ""},
	}

	for specIndex, spec := range specs {
		c.Logf("[spec %d] %s %s", specIndex, spec.method, spec.path)
		res := s.do(c, spec.method, spec.path, spec.body)
		c.Assert(res.Code, gc.Equals, http.StatusBadRequest)
		c.Assert(decode(c, res)["error"], gc.Not(gc.Equals), "")
	}
}

func (s *GatewayTestSuite) TestSelfRelationMessage(c *gc.C) {
	res := s.do(c, http.MethodPost, "/follows", `{"follower":4,"followee":4}`)
	c.Assert(decode(c, res)["error"], gc.Equals, graph.ErrSelfRelation.Error())
}

func (s *GatewayTestSuite) TestInvalidStateIsInternalError(c *gc.C) {
	s.backend.failFollow = true
	res := s.do(c, http.MethodPost, "/follows", `{"follower":1,"followee":2}`)
	c.Assert(res.Code, gc.Equals, http.StatusInternalServerError)
	c.Assert(decode(c, res)["error"], gc.Equals, "internal error")
}

func (s *GatewayTestSuite) TestMetricsEndpoint(c *gc.C) {
	s.do(c, http.MethodGet, "/version", "")

	res := s.do(c, http.MethodGet, "/metrics", "")
	c.Assert(res.Code, gc.Equals, http.StatusOK)
	c.Assert(strings.Contains(res.Body.String(), `socialnet_http_requests_total{method="GET",route="/version",status="200"}`), gc.Equals, true)
}

func (s *GatewayTestSuite) TestRunAndShutdown(c *gc.C) {
	l, err := net.Listen("tcp", "127.0.0.1:0")
	c.Assert(err, gc.IsNil)
	svc, err := NewService(Config{Graph: gate.NewLocked(memory.NewVersionedGraph()), Listener: l})
	c.Assert(err, gc.IsNil)

	ctx, cancelFn := context.WithCancel(context.TODO())
	defer cancelFn()
	errCh := make(chan error, 1)
	go func() { errCh <- svc.Run(ctx) }()

	res, err := http.Get("http://" + l.Addr().String() + "/version")
	c.Assert(err, gc.IsNil)
	c.Assert(res.StatusCode, gc.Equals, http.StatusOK)
	_ = res.Body.Close()

	cancelFn()
	select {
	case err := <-errCh:
		c.Assert(err, gc.IsNil)
	case <-time.After(10 * time.Second):
		c.Fatal("timed out waiting for service to exit")
	}
}

func (s *GatewayTestSuite) do(c *gc.C, method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	res := httptest.NewRecorder()
	s.svc.ServeHTTP(res, req)
	return res
}

func decode(c *gc.C, res *httptest.ResponseRecorder) map[string]interface{} {
	var body map[string]interface{}
	c.Assert(json.Unmarshal(res.Body.Bytes(), &body), gc.IsNil, gc.Commentf("body: %s", res.Body.String()))
	return body
}

// brokenGraph can be told to fail Follow calls with an invariant violation.
type brokenGraph struct {
	graph.Graph
	failFollow bool
}

func (g *brokenGraph) Follow(follower, followee graph.UserID) (bool, error) {
	if g.failFollow {
		return false, xerrors.Errorf("follow: %w", graph.ErrInvalidIntervalState)
	}
	return g.Graph.Follow(follower, followee)
}
