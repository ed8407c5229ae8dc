package progress

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/formcoach/backend/internal/progress/unlock"
	"github.com/formcoach/backend/internal/telemetry/metrics"
	"github.com/formcoach/backend/internal/telemetry/tracing"
	"github.com/formcoach/backend/pkg"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
)

//go:generate mockgen -source=$GOFILE -destination=handler_mocks_test.go -package=progress_test

type progressService interface {
	AddSample(ctx context.Context, sample Sample) (_ *Sample, countToday int, err error)
	GetSample(ctx context.Context, id int) (*Sample, error)
	DeleteSample(ctx context.Context, id int) error
	ListSamples(ctx context.Context, params ListParams) (_ []Sample, total int, err error)
	Compare(ctx context.Context, req ComparisonRequest) (*ComparisonResult, error)
	Milestones(ctx context.Context, exerciseType string) ([]MilestoneState, []unlock.Event, error)
	Insights(ctx context.Context, at time.Time) ([]Insight, error)
}

type AddSampleResponse struct {
	Sample
	CountToday int `json:"countToday"`
}

type DeleteSampleResponse struct {
	DeletedID int `json:"deletedId"`
}

type ListResponse struct {
	Samples []Sample `json:"samples"`
	Total   int      `json:"total"`
}

type MilestonesResponse struct {
	ExerciseType string           `json:"exerciseType"`
	Milestones   []MilestoneState `json:"milestones"`
	Unlocks      []unlock.Event   `json:"unlocks"`
}

type InsightsResponse struct {
	Insights []Insight `json:"insights"`
}

type Handler struct {
	service progressService
	metrics *metrics.Manager
}

func NewHandler(service progressService, metrics *metrics.Manager) *Handler {
	return &Handler{
		service: service,
		metrics: metrics,
	}
}

func (handler *Handler) HandleAdd(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.progress.new")
	defer span.End()

	if r.Header.Get("Content-Type") != "application/json" {
		http.Error(w, "invalid content type", http.StatusBadRequest)
		return
	}

	var sample Sample
	if err := json.NewDecoder(r.Body).Decode(&sample); err != nil {
		log.Tracef("new progress sample, unmarshal json params: %s", err)
		http.Error(w, "add progress sample failed", http.StatusBadRequest)
		return
	}

	addedSample, countToday, err := handler.service.AddSample(ctx, sample)
	if err != nil {
		if errors.Is(err, ErrInvalidSample) {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		log.Errorf("failed to add new progress sample [%s]: %s", sample.ExerciseType, err)
		http.Error(w, "error, failed to add new progress sample", http.StatusInternalServerError)
		return
	}

	handler.metrics.CounterSamplesAdded.Inc()

	addedSampleJson, err := json.Marshal(AddSampleResponse{
		Sample:     *addedSample,
		CountToday: countToday,
	})
	if err != nil {
		log.Errorf("failed to marshal new progress sample: %s", err)
		http.Error(w, "error, failed to add new progress sample", http.StatusInternalServerError)
		return
	}

	log.Debugf("new progress sample added: %s", addedSampleJson)
	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, addedSampleJson, http.StatusCreated)
}

func (handler *Handler) HandleGet(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.progress.get")
	defer span.End()

	id, err := sampleIDFrom(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	sample, err := handler.service.GetSample(ctx, id)
	if err != nil {
		if errors.Is(err, ErrSampleNotFound) {
			http.Error(w, "progress sample not found", http.StatusNotFound)
			return
		}
		log.Errorf("failed to get progress sample %d: %s", id, err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	sampleJson, err := json.Marshal(sample)
	if err != nil {
		log.Errorf("failed to marshal progress sample: %s", err)
		http.Error(w, "failed to marshal progress sample", http.StatusInternalServerError)
		return
	}
	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, sampleJson, http.StatusOK)
}

func (handler *Handler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.progress.delete")
	defer span.End()

	id, err := sampleIDFrom(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	if err := handler.service.DeleteSample(ctx, id); err != nil {
		if errors.Is(err, ErrSampleNotFound) {
			log.Debugf("progress sample %d not found", id)
			http.Error(w, "progress sample not found", http.StatusNotFound)
			return
		}
		log.Errorf("failed to delete progress sample %d: %s", id, err)
		http.Error(w, "progress sample not deleted", http.StatusInternalServerError)
		return
	}

	deleteRespJson, err := json.Marshal(DeleteSampleResponse{
		DeletedID: id,
	})
	if err != nil {
		log.Errorf("failed to marshal delete response: %s", err)
		http.Error(w, "failed to marshal delete response", http.StatusInternalServerError)
		return
	}

	pkg.WriteJSONResponseOK(w, string(deleteRespJson))
}

func (handler *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.progress.list")
	defer span.End()

	vars := mux.Vars(r)
	page, err := strconv.Atoi(vars["page"])
	if err != nil {
		log.Tracef("handle list progress samples, from <page> param: %s", err)
		http.Error(w, "parse form error, parameter <page>", http.StatusBadRequest)
		return
	}
	size, err := strconv.Atoi(vars["size"])
	if err != nil {
		log.Tracef("handle list progress samples, from <size> param: %s", err)
		http.Error(w, "parse form error, parameter <size>", http.StatusBadRequest)
		return
	}

	if page < 1 {
		http.Error(w, "invalid page (has to be non-zero value)", http.StatusBadRequest)
		return
	}
	if size < 1 {
		http.Error(w, "invalid size (has to be non-zero value)", http.StatusBadRequest)
		return
	}

	listParams := ListParams{
		SampleParams: SampleParams{
			ExerciseType: r.URL.Query().Get("type"),
		},
		Page: page,
		Size: size,
	}

	samples, total, err := handler.service.ListSamples(ctx, listParams)
	if err != nil {
		log.Errorf("list progress samples error: %s", err)
		http.Error(w, "failed to get progress samples", http.StatusInternalServerError)
		return
	}

	listRespJson, err := json.Marshal(ListResponse{
		Samples: samples,
		Total:   total,
	})
	if err != nil {
		log.Errorf("marshal progress samples error: %s", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, listRespJson, http.StatusOK)
}

func (handler *Handler) HandleCompareTimePeriods(w http.ResponseWriter, r *http.Request) {
	periods, err := periodsFrom(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	handler.handleCompare(w, r, ComparisonRequest{
		Mode:    CompareTimePeriods,
		Periods: periods,
	})
}

func (handler *Handler) HandleCompareExercises(w http.ResponseWriter, r *http.Request) {
	var exerciseTypes []string
	if typesParam := r.URL.Query().Get("types"); typesParam != "" {
		exerciseTypes = strings.Split(typesParam, ",")
	}
	handler.handleCompare(w, r, ComparisonRequest{
		Mode:          CompareExercises,
		ExerciseTypes: exerciseTypes,
	})
}

func (handler *Handler) HandleCompareBeforeAfter(w http.ResponseWriter, r *http.Request) {
	handler.handleCompare(w, r, ComparisonRequest{Mode: CompareBeforeAfter})
}

func (handler *Handler) HandleComparePeers(w http.ResponseWriter, r *http.Request) {
	handler.handleCompare(w, r, ComparisonRequest{Mode: ComparePeers})
}

func (handler *Handler) handleCompare(w http.ResponseWriter, r *http.Request, req ComparisonRequest) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.progress.compare")
	defer span.End()

	result, err := handler.service.Compare(ctx, req)
	if err != nil {
		log.Errorf("failed to compare progress [%s]: %s", req.Mode, err)
		http.Error(w, "failed to compare progress", http.StatusInternalServerError)
		return
	}

	handler.metrics.CounterComparisons.WithLabelValues(string(req.Mode)).Inc()

	resultJson, err := json.Marshal(result)
	if err != nil {
		log.Errorf("failed to marshal comparison result: %s", err)
		http.Error(w, "failed to marshal comparison result", http.StatusInternalServerError)
		return
	}

	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, resultJson, http.StatusOK)
}

func (handler *Handler) HandleMilestones(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.progress.milestones")
	defer span.End()

	vars := mux.Vars(r)
	exerciseType := vars["exerciseType"]
	if exerciseType == "" {
		http.Error(w, "error, exercise type empty", http.StatusBadRequest)
		return
	}

	milestones, unlocks, err := handler.service.Milestones(ctx, exerciseType)
	if err != nil {
		log.Errorf("failed to get milestones [%s]: %s", exerciseType, err)
		http.Error(w, "failed to get milestones", http.StatusInternalServerError)
		return
	}

	if len(unlocks) > 0 {
		handler.metrics.CounterMilestoneUnlocks.Add(float64(len(unlocks)))
	}

	milestonesRespJson, err := json.Marshal(MilestonesResponse{
		ExerciseType: exerciseType,
		Milestones:   milestones,
		Unlocks:      unlocks,
	})
	if err != nil {
		log.Errorf("failed to marshal milestones response: %s", err)
		http.Error(w, "failed to marshal milestones response", http.StatusInternalServerError)
		return
	}

	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, milestonesRespJson, http.StatusOK)
}

func (handler *Handler) HandleInsights(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.progress.insights")
	defer span.End()

	insights, err := handler.service.Insights(ctx, time.Now())
	if err != nil {
		log.Errorf("failed to get insights: %s", err)
		http.Error(w, "failed to get insights", http.StatusInternalServerError)
		return
	}

	insightsRespJson, err := json.Marshal(InsightsResponse{
		Insights: insights,
	})
	if err != nil {
		log.Errorf("failed to marshal insights response: %s", err)
		http.Error(w, "failed to marshal insights response", http.StatusInternalServerError)
		return
	}

	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, insightsRespJson, http.StatusOK)
}

func sampleIDFrom(r *http.Request) (int, error) {
	idStr := mux.Vars(r)["id"]
	if idStr == "" {
		return 0, errors.New("error, id empty")
	}
	id, err := strconv.Atoi(idStr)
	if err != nil {
		return 0, errors.New("error, id NaN")
	}
	return id, nil
}

// periodsFrom parses the optional days query param, a comma separated
// list of day counts, e.g. "7,30,90".
func periodsFrom(r *http.Request) ([]Period, error) {
	periodsParam := r.URL.Query().Get("days")
	if periodsParam == "" {
		return []Period{
			{Name: "7d", Days: 7},
			{Name: "30d", Days: 30},
			{Name: "90d", Days: 90},
		}, nil
	}

	var periods []Period
	for _, daysStr := range strings.Split(periodsParam, ",") {
		days, err := strconv.Atoi(strings.TrimSpace(daysStr))
		if err != nil || days < 1 {
			return nil, fmt.Errorf("invalid period: %s", daysStr)
		}
		periods = append(periods, Period{
			Name: fmt.Sprintf("%dd", days),
			Days: days,
		})
	}
	return periods, nil
}
