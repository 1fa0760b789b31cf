package api

import (
	"context"
	"net/http"

	resdto "github.com/B1gB4dB4ng/HotelApp/internal/handler/dto/response"
	"github.com/B1gB4dB4ng/HotelApp/internal/handler/httperr"
	"github.com/B1gB4dB4ng/HotelApp/internal/usecase/commands"
	"github.com/B1gB4dB4ng/HotelApp/internal/worker"

	"github.com/gin-gonic/gin"
)

type ReconcileRunner interface {
	RunOnce(ctx context.Context) (commands.ReconcileReport, error)
}

type JobScheduler interface {
	Jobs() []worker.JobStatus
	RunNow(ctx context.Context, name string) (worker.JobRun, error)
}

type AdminHandler struct {
	reconciler ReconcileRunner
	jobs       JobScheduler
}

func NewAdminHandler(reconciler ReconcileRunner, jobs JobScheduler) *AdminHandler {
	return &AdminHandler{reconciler: reconciler, jobs: jobs}
}

// @Summary Reconcile room status
// @Description Runs one reconciliation pass now and returns its report
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Success 200 {object} resdto.ReconcileResponse
// @Failure 403 {object} httperr.Response
// @Router /admin/reconcile [post]
func (h *AdminHandler) Reconcile(c *gin.Context) {
	report, err := h.reconciler.RunOnce(c.Request.Context())
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromReconcileReport(report))
}

// @Summary List scheduled jobs
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Success 200 {array} resdto.JobResponse
// @Failure 403 {object} httperr.Response
// @Router /admin/jobs [get]
func (h *AdminHandler) ListJobs(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"jobs": resdto.FromJobStatuses(h.jobs.Jobs())})
}

// @Summary Run job now
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param name path string true "Job name"
// @Success 200 {object} resdto.JobRunResponse
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /admin/jobs/{name}/run [post]
func (h *AdminHandler) RunJob(c *gin.Context) {
	run, err := h.jobs.RunNow(c.Request.Context(), c.Param("name"))
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromJobRun(run))
}
