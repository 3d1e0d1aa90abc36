package gateway

import (
	"Social_Network/followgraph/graph"
	"context"
	"encoding/json"
	"github.com/gorilla/mux"
	"github.com/hashicorp/go-multierror"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sirupsen/logrus"
	"golang.org/x/xerrors"
	"io/ioutil"
	"net"
	"net/http"
	"strconv"
	"time"
)

const (
	followsEndpoint   = "/follows"
	edgeEndpoint      = "/follows/{follower}/{followee}"
	historyEndpoint   = "/follows/{follower}/{followee}/history"
	followersEndpoint = "/users/{id}/followers"
	followeesEndpoint = "/users/{id}/followees"
	commitEndpoint    = "/commit"
	versionEndpoint   = "/version"
	metricsEndpoint   = "/metrics"

	defaultShutdownTimeout = 5 * time.Second
)

// Config encapsulates the settings for configuring the HTTP gateway service.
type Config struct {
	// The follow graph to expose. It must be safe for concurrent use.
	Graph graph.Graph

	// The address to listen for incoming requests. Ignored if Listener is
	// set.
	ListenAddr string

	// An optional pre-bound listener.
	Listener net.Listener

	// How long to wait for in-flight requests when shutting down. If not
	// specified, a default of 5 seconds is used.
	ShutdownTimeout time.Duration

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
	if cfg.ShutdownTimeout <= 0 {
		cfg.ShutdownTimeout = defaultShutdownTimeout
	}
	if cfg.Logger == nil {
		cfg.Logger = logrus.NewEntry(&logrus.Logger{Out: ioutil.Discard})
	}
	return err
}

// Service implements a JSON-over-HTTP gateway to the follow graph.
type Service struct {
	cfg    Config
	router *mux.Router
}

// NewService creates a new gateway service instance with the specified config.
func NewService(cfg Config) (*Service, error) {
	if err := cfg.validate(); err != nil {
		return nil, xerrors.Errorf("gateway service: config validation failed: %w", err)
	}

	svc := &Service{cfg: cfg, router: mux.NewRouter()}
	svc.router.Use(svc.instrument)
	svc.router.HandleFunc(followsEndpoint, svc.follow).Methods(http.MethodPost)
	svc.router.HandleFunc(edgeEndpoint, svc.unfollow).Methods(http.MethodDelete)
	svc.router.HandleFunc(edgeEndpoint, svc.isFollowing).Methods(http.MethodGet)
	svc.router.HandleFunc(historyEndpoint, svc.history).Methods(http.MethodGet)
	svc.router.HandleFunc(followersEndpoint, svc.followers).Methods(http.MethodGet)
	svc.router.HandleFunc(followeesEndpoint, svc.followees).Methods(http.MethodGet)
	svc.router.HandleFunc(commitEndpoint, svc.commit).Methods(http.MethodPost)
	svc.router.HandleFunc(versionEndpoint, svc.version).Methods(http.MethodGet)
	svc.router.Handle(metricsEndpoint, promhttp.Handler()).Methods(http.MethodGet)
	return svc, nil
}

// Name implements service.Service
func (svc *Service) Name() string { return "gateway" }

// ServeHTTP implements http.Handler.
func (svc *Service) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	svc.router.ServeHTTP(w, r)
}

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

	srv := &http.Server{Handler: svc.router}
	svc.cfg.Logger.WithField("addr", l.Addr().String()).Info("listening for HTTP requests")
	defer svc.cfg.Logger.Info("stopped service")

	errCh := make(chan error, 1)
	go func() { errCh <- srv.Serve(l) }()

	select {
	case <-ctx.Done():
		shutdownCtx, cancelFn := context.WithTimeout(context.Background(), svc.cfg.ShutdownTimeout)
		defer cancelFn()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return err
		}
		if err := <-errCh; err != http.ErrServerClosed {
			return err
		}
		return nil
	case err := <-errCh:
		return err
	}
}

type followRequest struct {
	Follower *uint64 `json:"follower"`
	Followee *uint64 `json:"followee"`
}

type intervalResponse struct {
	Start uint64  `json:"start"`
	End   *uint64 `json:"end,omitempty"`
	Open  bool    `json:"open,omitempty"`
}

func (svc *Service) follow(w http.ResponseWriter, r *http.Request) {
	var req followRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		svc.renderError(w, r, http.StatusBadRequest, xerrors.Errorf("malformed request body: %w", err))
		return
	}
	if req.Follower == nil || req.Followee == nil {
		svc.renderError(w, r, http.StatusBadRequest, xerrors.New("follower and followee must both be specified"))
		return
	}

	created, err := svc.cfg.Graph.Follow(graph.UserID(*req.Follower), graph.UserID(*req.Followee))
	if err != nil {
		svc.renderGraphError(w, r, err)
		return
	}
	svc.render(w, r, http.StatusOK, map[string]interface{}{"was_new": created})
}

func (svc *Service) unfollow(w http.ResponseWriter, r *http.Request) {
	follower, followee, ok := svc.edgeParams(w, r)
	if !ok {
		return
	}
	unfollowed, err := svc.cfg.Graph.Unfollow(follower, followee)
	if err != nil {
		svc.renderGraphError(w, r, err)
		return
	}
	svc.render(w, r, http.StatusOK, map[string]interface{}{"was_unfollowed": unfollowed})
}

func (svc *Service) isFollowing(w http.ResponseWriter, r *http.Request) {
	follower, followee, ok := svc.edgeParams(w, r)
	if !ok {
		return
	}

	var following bool
	if raw := r.URL.Query().Get("version"); raw != "" {
		v, err := strconv.ParseUint(raw, 10, 64)
		if err != nil {
			svc.renderError(w, r, http.StatusBadRequest, xerrors.Errorf("invalid version %q", raw))
			return
		}
		following = svc.cfg.Graph.IsFollowingAt(follower, followee, graph.Version(v))
	} else {
		following = svc.cfg.Graph.IsFollowing(follower, followee)
	}
	svc.render(w, r, http.StatusOK, map[string]interface{}{"is_following": following})
}

func (svc *Service) history(w http.ResponseWriter, r *http.Request) {
	follower, followee, ok := svc.edgeParams(w, r)
	if !ok {
		return
	}
	history := svc.cfg.Graph.History(follower, followee)
	intervals := make([]intervalResponse, len(history))
	for i, interval := range history {
		intervals[i] = intervalResponse{Start: uint64(interval.Start), Open: interval.IsOpen()}
		if end, closed := interval.End(); closed {
			v := uint64(end)
			intervals[i].End = &v
		}
	}
	svc.render(w, r, http.StatusOK, map[string]interface{}{"intervals": intervals})
}

func (svc *Service) followers(w http.ResponseWriter, r *http.Request) {
	svc.renderUsers(w, r, svc.cfg.Graph.Followers)
}

func (svc *Service) followees(w http.ResponseWriter, r *http.Request) {
	svc.renderUsers(w, r, svc.cfg.Graph.Followees)
}

func (svc *Service) renderUsers(w http.ResponseWriter, r *http.Request, listFn func(graph.UserID) []graph.UserID) {
	user, err := parseUserID(mux.Vars(r)["id"])
	if err != nil {
		svc.renderError(w, r, http.StatusBadRequest, err)
		return
	}
	ids := listFn(user)
	svc.render(w, r, http.StatusOK, map[string]interface{}{"ids": ids, "count": len(ids)})
}

func (svc *Service) commit(w http.ResponseWriter, r *http.Request) {
	v := svc.cfg.Graph.Commit()
	RequestLogger(r, svc.cfg.Logger).WithField("version", v).Info("committed version")
	svc.render(w, r, http.StatusOK, map[string]interface{}{"version": v})
}

func (svc *Service) version(w http.ResponseWriter, r *http.Request) {
	svc.render(w, r, http.StatusOK, map[string]interface{}{"version": svc.cfg.Graph.CurrentVersion()})
}

func (svc *Service) edgeParams(w http.ResponseWriter, r *http.Request) (graph.UserID, graph.UserID, bool) {
	vars := mux.Vars(r)
	follower, err := parseUserID(vars["follower"])
	if err != nil {
		svc.renderError(w, r, http.StatusBadRequest, err)
		return 0, 0, false
	}
	followee, err := parseUserID(vars["followee"])
	if err != nil {
		svc.renderError(w, r, http.StatusBadRequest, err)
		return 0, 0, false
	}
	return follower, followee, true
}

func parseUserID(raw string) (graph.UserID, error) {
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		return 0, xerrors.Errorf("invalid user ID %q", raw)
	}
	return graph.UserID(id), nil
}

func (svc *Service) renderGraphError(w http.ResponseWriter, r *http.Request, err error) {
	if xerrors.Is(err, graph.ErrSelfRelation) {
		svc.renderError(w, r, http.StatusBadRequest, graph.ErrSelfRelation)
		return
	}
	RequestLogger(r, svc.cfg.Logger).WithField("err", err.Error()).Error("follow graph invariant violation")
	svc.renderError(w, r, http.StatusInternalServerError, xerrors.New("internal error"))
}

func (svc *Service) renderError(w http.ResponseWriter, r *http.Request, status int, err error) {
	svc.render(w, r, status, map[string]interface{}{"error": err.Error()})
}

func (svc *Service) render(w http.ResponseWriter, r *http.Request, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		RequestLogger(r, svc.cfg.Logger).WithField("err", err.Error()).Error("unable to encode response")
	}
}
