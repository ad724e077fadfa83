package controller

import (
	"context"
	"crypto/subtle"
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/vrodriguezbernal95/stickywork.github.io-sub002/internal/metrics"
	ndomain "github.com/vrodriguezbernal95/stickywork.github.io-sub002/internal/notify/domain"
	"github.com/vrodriguezbernal95/stickywork.github.io-sub002/internal/platform/ratelimit"
	"github.com/vrodriguezbernal95/stickywork.github.io-sub002/internal/platform/validation"
)

// Runner runs a job unless one is already in progress.
type Runner interface {
	TryRun(ctx context.Context) (ndomain.Result, bool)
}

type Controller struct {
	jobs       map[string]Runner
	adminToken string
	deps       map[string]metrics.PingFunc
	rl         ratelimit.Store
}

func New(jobs map[string]Runner, adminToken string) *Controller {
	return &Controller{jobs: jobs, adminToken: adminToken}
}

// WithHealth sets the dependencies probed by /healthz.
func (h *Controller) WithHealth(deps map[string]metrics.PingFunc) *Controller {
	h.deps = deps
	return h
}

// WithRateLimit limits the trigger endpoint through s.
func (h *Controller) WithRateLimit(s ratelimit.Store) *Controller {
	h.rl = s
	return h
}

func (h *Controller) Register(e *echo.Echo) {
	e.GET("/healthz", h.health)
	if h.adminToken == "" {
		e.Logger.Warn("ADMIN_TOKEN is empty; manual job trigger disabled")
		return
	}
	mws := []echo.MiddlewareFunc{h.requireAdmin}
	if h.rl != nil {
		mws = append(mws, ratelimit.Middleware(ratelimit.Policy{
			Name:   "jobs:trigger",
			Window: time.Minute,
			Limit:  10,
		}, h.rl))
	}
	g := e.Group("/v1", mws...)
	g.POST("/jobs/:job/run", h.runJob)
}

func (h *Controller) requireAdmin(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		auth := c.Request().Header.Get("Authorization")
		if !strings.HasPrefix(auth, "Bearer ") {
			return c.JSON(http.StatusUnauthorized, map[string]string{"error": "missing bearer token"})
		}
		tok := strings.TrimPrefix(auth, "Bearer ")
		if subtle.ConstantTimeCompare([]byte(tok), []byte(h.adminToken)) != 1 {
			return c.JSON(http.StatusUnauthorized, map[string]string{"error": "invalid token"})
		}
		return next(c)
	}
}

type runJobReq struct {
	Job string `param:"job" json:"job" validate:"required,oneof=reminder feedback"`
}

// runJob runs a job synchronously and returns its aggregate result.
// Once selection succeeds the run completes even if the client disconnects.
func (h *Controller) runJob(c echo.Context) error {
	var req runJobReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid request"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, validation.ErrorResponse(err))
	}
	job, ok := h.jobs[req.Job]
	if !ok {
		return c.JSON(http.StatusNotFound, map[string]string{"error": "job not configured"})
	}
	res, ran := job.TryRun(c.Request().Context())
	if !ran {
		return c.JSON(http.StatusConflict, map[string]string{"error": "job already running"})
	}
	if !res.Success {
		return c.JSON(http.StatusInternalServerError, res)
	}
	return c.JSON(http.StatusOK, res)
}

type healthResp struct {
	Status       string            `json:"status"`
	Dependencies map[string]string `json:"dependencies"`
}

func (h *Controller) health(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 2*time.Second)
	defer cancel()
	deps := metrics.Probe(ctx, h.deps)
	resp := healthResp{Status: "ok", Dependencies: deps}
	for _, s := range deps {
		if s == "down" {
			resp.Status = "degraded"
			return c.JSON(http.StatusServiceUnavailable, resp)
		}
	}
	return c.JSON(http.StatusOK, resp)
}
