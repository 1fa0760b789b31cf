package response

import (
	"time"

	"github.com/B1gB4dB4ng/HotelApp/internal/domain/booking"
	"github.com/B1gB4dB4ng/HotelApp/internal/usecase/commands"
	"github.com/B1gB4dB4ng/HotelApp/internal/worker"
)

type ReconcileResponse struct {
	Date          string `json:"date"`
	RoomsChecked  int    `json:"rooms_checked"`
	RoomsReleased int    `json:"rooms_released"`
	RoomsSkipped  int    `json:"rooms_skipped"`
	Failures      int    `json:"failures"`
}

func FromReconcileReport(r commands.ReconcileReport) *ReconcileResponse {
	var res ReconcileResponse
	copyFields(&res, &r)
	res.Date = r.Today.Format(booking.DateLayout)
	return &res
}

type JobResponse struct {
	Name      string     `json:"name"`
	Spec      string     `json:"spec"`
	Scheduled bool       `json:"scheduled"`
	NextRun   *time.Time `json:"next_run,omitempty"`
	LastRun   *time.Time `json:"last_run,omitempty"`
	LastError *string    `json:"last_error,omitempty"`
}

func FromJobStatuses(items []worker.JobStatus) []*JobResponse {
	res := make([]*JobResponse, len(items))
	for i := range items {
		var j JobResponse
		copyFields(&j, &items[i])
		res[i] = &j
	}
	return res
}

type JobRunResponse struct {
	Name       string    `json:"name"`
	StartedAt  time.Time `json:"started_at"`
	FinishedAt time.Time `json:"finished_at"`
	Result     any       `json:"result,omitempty"`
}

func FromJobRun(r worker.JobRun) *JobRunResponse {
	return &JobRunResponse{
		Name:       r.Name,
		StartedAt:  r.StartedAt,
		FinishedAt: r.FinishedAt,
		Result:     r.Result,
	}
}
