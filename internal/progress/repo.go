package progress

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/formcoach/backend/internal/telemetry/tracing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.opentelemetry.io/otel/attribute"
)

type SampleParams struct {
	ExerciseType string
	From         *time.Time
	To           *time.Time
}

type ListParams struct {
	SampleParams
	Page int
	Size int
}

type Repo struct {
	db *pgxpool.Pool
}

func NewRepo(db *pgxpool.Pool) *Repo {
	return &Repo{
		db: db,
	}
}

func (r *Repo) Add(ctx context.Context, sample Sample) (_ *Sample, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.progress.add")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	metadataJson, err := json.Marshal(sample.Metadata)
	if err != nil {
		return nil, fmt.Errorf("marshal metadata: %w", err)
	}

	rows, err := r.db.Query(
		ctx,
		`INSERT INTO progress_sample
				(exercise_type, overall_score, confidence, metadata, analyzed_at)
				VALUES ($1, $2, $3, $4, $5)
			RETURNING id;`,
		sample.ExerciseType, sample.OverallScore, sample.Confidence, metadataJson, sample.AnalyzedAt,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	if err := rows.Err(); err != nil {
		return nil, err
	}

	if !rows.Next() {
		return nil, errors.New("unexpected error [no rows next]")
	}

	var id int
	if err := rows.Scan(&id); err != nil {
		return nil, fmt.Errorf("rows scan: %w", err)
	}

	span.SetAttributes(attribute.Int("sample.id", id))

	sample.ID = id
	return &sample, nil
}

func (r *Repo) Get(ctx context.Context, id int) (_ *Sample, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.progress.get")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("id", id))

	rows, err := r.db.Query(
		ctx,
		`SELECT id, exercise_type, overall_score, confidence, metadata, analyzed_at
			FROM progress_sample
			WHERE id = $1;`,
		id,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	if err := rows.Err(); err != nil {
		return nil, err
	}

	if !rows.Next() {
		return nil, ErrSampleNotFound
	}

	sample, err := scanSample(rows)
	if err != nil {
		return nil, err
	}
	return sample, nil
}

func (r *Repo) Delete(ctx context.Context, id int) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.progress.delete")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("id", id))

	tag, err := r.db.Exec(
		ctx,
		`DELETE FROM progress_sample WHERE id = $1`,
		id,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrSampleNotFound
	}
	return nil
}

// ListAll returns all samples matching the params, without pagination.
// The analytics engine always works on the full (filtered) history.
func (r *Repo) ListAll(ctx context.Context, params SampleParams) (_ []Sample, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.progress.listAll")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	query := `SELECT id, exercise_type, overall_score, confidence, metadata, analyzed_at FROM progress_sample`
	whereClause, args := sampleParamsWhereClause(params)
	query += whereClause + ` ORDER BY analyzed_at;`

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanSamples(rows)
}

func (r *Repo) List(ctx context.Context, params ListParams) (_ []Sample, total int, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.progress.list")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	total, err = r.Count(ctx, params.SampleParams)
	if err != nil {
		return nil, 0, fmt.Errorf("count samples: %w", err)
	}

	query := `SELECT id, exercise_type, overall_score, confidence, metadata, analyzed_at FROM progress_sample`
	whereClause, args := sampleParamsWhereClause(params.SampleParams)
	query += whereClause
	query += fmt.Sprintf(` ORDER BY analyzed_at DESC LIMIT %d OFFSET %d;`, params.Size, (params.Page-1)*params.Size)

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	samples, err := scanSamples(rows)
	if err != nil {
		return nil, 0, err
	}
	return samples, total, nil
}

func (r *Repo) Count(ctx context.Context, params SampleParams) (_ int, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.progress.count")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	query := `SELECT COUNT(*) FROM progress_sample`
	whereClause, args := sampleParamsWhereClause(params)
	query += whereClause + `;`

	var count int
	if err := r.db.QueryRow(ctx, query, args...).Scan(&count); err != nil {
		return 0, err
	}
	return count, nil
}

func sampleParamsWhereClause(params SampleParams) (string, []interface{}) {
	var conditions []string
	var args []interface{}

	addCondition := func(condition string, arg interface{}) {
		args = append(args, arg)
		conditions = append(conditions, fmt.Sprintf(condition, len(args)))
	}

	if params.ExerciseType != "" {
		addCondition(`exercise_type = $%d`, params.ExerciseType)
	}
	if params.From != nil {
		addCondition(`analyzed_at >= $%d`, *params.From)
	}
	if params.To != nil {
		addCondition(`analyzed_at < $%d`, *params.To)
	}

	if len(conditions) == 0 {
		return "", nil
	}

	whereClause := " WHERE " + conditions[0]
	for _, c := range conditions[1:] {
		whereClause += " AND " + c
	}
	return whereClause, args
}

func scanSamples(rows pgx.Rows) ([]Sample, error) {
	var samples []Sample
	for rows.Next() {
		sample, err := scanSample(rows)
		if err != nil {
			return nil, err
		}
		samples = append(samples, *sample)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return samples, nil
}

func scanSample(rows pgx.Rows) (*Sample, error) {
	var sample Sample
	var metadataJson []byte
	if err := rows.Scan(
		&sample.ID,
		&sample.ExerciseType,
		&sample.OverallScore,
		&sample.Confidence,
		&metadataJson,
		&sample.AnalyzedAt,
	); err != nil {
		return nil, fmt.Errorf("rows scan: %w", err)
	}
	if len(metadataJson) > 0 {
		if err := json.Unmarshal(metadataJson, &sample.Metadata); err != nil {
			return nil, fmt.Errorf("unmarshal metadata: %w", err)
		}
	}
	return &sample, nil
}
