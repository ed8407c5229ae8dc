package progress

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"time"

	"github.com/formcoach/backend/internal/progress/unlock"
	"github.com/formcoach/backend/internal/telemetry/tracing"

	"github.com/coocood/freecache"
	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
)

//go:generate mockgen -source=$GOFILE -destination=service_mocks_test.go -package=progress_test

type samplesRepo interface {
	Add(ctx context.Context, sample Sample) (*Sample, error)
	Get(ctx context.Context, id int) (*Sample, error)
	Delete(ctx context.Context, id int) error
	List(ctx context.Context, params ListParams) (_ []Sample, total int, err error)
	ListAll(ctx context.Context, params SampleParams) ([]Sample, error)
	Count(ctx context.Context, params SampleParams) (int, error)
}

type milestoneStates interface {
	Previous(ctx context.Context, exerciseType string) ([]MilestoneState, error)
	Save(ctx context.Context, exerciseType string, states []MilestoneState) error
}

type unlockPublisher interface {
	Publish(ctx context.Context, events []unlock.Event) error
}

const (
	comparisonCacheSize       = 10 * 1024 * 1024
	comparisonCacheTTLSeconds = 60
)

// Service glues the persistence layer to the pure analytics and
// milestone engines. All non-determinism (clock, event ids, caching)
// lives here, the engines below stay referentially transparent.
type Service struct {
	repo      samplesRepo
	states    milestoneStates
	publisher unlockPublisher
	cache     *freecache.Cache
	now       func() time.Time
}

func NewService(repo samplesRepo, states milestoneStates, publisher unlockPublisher) *Service {
	return &Service{
		repo:      repo,
		states:    states,
		publisher: publisher,
		cache:     freecache.NewCache(comparisonCacheSize),
		now:       time.Now,
	}
}

func (s *Service) AddSample(ctx context.Context, sample Sample) (_ *Sample, countToday int, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.progress.addSample")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	if err := sample.Validate(); err != nil {
		return nil, 0, err
	}
	if sample.AnalyzedAt.IsZero() {
		sample.AnalyzedAt = s.now()
	}

	added, err := s.repo.Add(ctx, sample)
	if err != nil {
		return nil, 0, fmt.Errorf("add sample: %w", err)
	}

	s.cache.Clear()

	todayMidnight := s.now().Truncate(24 * time.Hour)
	tomorrowMidnight := todayMidnight.Add(24 * time.Hour)
	count, countErr := s.repo.Count(ctx, SampleParams{
		ExerciseType: added.ExerciseType,
		From:         &todayMidnight,
		To:           &tomorrowMidnight,
	})
	if countErr != nil {
		// the count is cosmetic for the client, no need to fail the add
		log.Errorf("failed to count today's samples [%s]: %s", added.ExerciseType, countErr)
	}

	return added, count, nil
}

func (s *Service) GetSample(ctx context.Context, id int) (*Sample, error) {
	return s.repo.Get(ctx, id)
}

func (s *Service) DeleteSample(ctx context.Context, id int) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.progress.deleteSample")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("id", id))

	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.cache.Clear()
	return nil
}

func (s *Service) ListSamples(ctx context.Context, params ListParams) ([]Sample, int, error) {
	return s.repo.List(ctx, params)
}

// Compare runs the requested comparison over the full sample history.
// Results are cached for a minute, any sample write drops the cache.
func (s *Service) Compare(ctx context.Context, req ComparisonRequest) (_ *ComparisonResult, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.progress.compare")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("mode", string(req.Mode)))

	if req.Now.IsZero() {
		req.Now = s.now()
	}

	key := comparisonCacheKey(req)
	if cached, cacheErr := s.cache.Get(key); cacheErr == nil {
		var result ComparisonResult
		if err := json.Unmarshal(cached, &result); err == nil {
			span.SetAttributes(attribute.Bool("cache.hit", true))
			return &result, nil
		}
	}

	samples, err := s.repo.ListAll(ctx, SampleParams{})
	if err != nil {
		return nil, fmt.Errorf("list samples: %w", err)
	}

	if req.Mode == CompareExercises && len(req.ExerciseTypes) == 0 {
		req.ExerciseTypes = exerciseTypesOf(samples)
	}

	result := Compare(samples, req)

	if resultJson, marshalErr := json.Marshal(result); marshalErr == nil {
		if cacheErr := s.cache.Set(key, resultJson, comparisonCacheTTLSeconds); cacheErr != nil {
			log.Warnf("failed to cache comparison result: %s", cacheErr)
		}
	}

	return result, nil
}

// Milestones recomputes the milestone states for an exercise type,
// persists the new snapshot and publishes an event per fresh unlock.
func (s *Service) Milestones(ctx context.Context, exerciseType string) (_ []MilestoneState, _ []unlock.Event, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.progress.milestones")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("exerciseType", exerciseType))

	samples, err := s.repo.ListAll(ctx, SampleParams{ExerciseType: exerciseType})
	if err != nil {
		return nil, nil, fmt.Errorf("list samples: %w", err)
	}

	prevStates, err := s.states.Previous(ctx, exerciseType)
	if err != nil {
		return nil, nil, fmt.Errorf("previous milestone states: %w", err)
	}

	states, unlocks := ComputeMilestones(MilestoneCatalog(exerciseType), prevStates, samples)

	if err := s.states.Save(ctx, exerciseType, states); err != nil {
		return nil, nil, fmt.Errorf("save milestone states: %w", err)
	}

	unlockedAt := s.now()
	events := make([]unlock.Event, 0, len(unlocks))
	for _, u := range unlocks {
		events = append(events, unlock.Event{
			ID:           uuid.New(),
			MilestoneID:  u.MilestoneID,
			ExerciseType: exerciseType,
			Title:        u.Title,
			Reward:       u.Reward,
			UnlockedAt:   unlockedAt,
		})
	}

	if len(events) > 0 {
		if pubErr := s.publisher.Publish(ctx, events); pubErr != nil {
			// the unlock is already persisted, only the notification is lost
			log.Errorf("failed to publish %d unlock events: %s", len(events), pubErr)
		}
	}

	return states, events, nil
}

// Insights aggregates the insights of all comparison modes into the
// single feed the app home screen shows.
func (s *Service) Insights(ctx context.Context, at time.Time) (_ []Insight, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.progress.insights")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	samples, err := s.repo.ListAll(ctx, SampleParams{})
	if err != nil {
		return nil, fmt.Errorf("list samples: %w", err)
	}

	requests := []ComparisonRequest{
		{
			Mode: CompareTimePeriods,
			Periods: []Period{
				{Name: "7d", Days: 7},
				{Name: "30d", Days: 30},
				{Name: "90d", Days: 90},
			},
			Now: at,
		},
		{Mode: CompareExercises, ExerciseTypes: exerciseTypesOf(samples), Now: at},
		{Mode: CompareBeforeAfter, Now: at},
		{Mode: ComparePeers, Now: at},
	}

	var insights []Insight
	for _, req := range requests {
		result := Compare(samples, req)
		insights = append(insights, result.Insights...)
	}
	return insights, nil
}

// comparisonCacheKey truncates the request time to a minute so repeated
// requests within the cache TTL share an entry.
func comparisonCacheKey(req ComparisonRequest) []byte {
	req.Now = req.Now.Truncate(time.Minute)
	key, err := json.Marshal(req)
	if err != nil {
		return []byte(req.Mode)
	}
	return key
}

func exerciseTypesOf(samples []Sample) []string {
	seen := make(map[string]struct{})
	var types []string
	for _, sample := range samples {
		if _, ok := seen[sample.ExerciseType]; ok {
			continue
		}
		seen[sample.ExerciseType] = struct{}{}
		types = append(types, sample.ExerciseType)
	}
	sort.Strings(types)
	return types
}
