package merge

import (
	"context"
	"io"
	"time"

	"github.com/rotisserie/eris"
	"go.uber.org/zap"

	"github.com/RyanSchlenz/CSV-Email-Merger/internal/model"
	"github.com/RyanSchlenz/CSV-Email-Merger/internal/tabular"
)

// Stage names, in execution order.
const (
	StageLoad      = "load"
	StageFilter    = "filter"
	StageNormalize = "normalize"
	StageJoin      = "join"
	StageReconcile = "reconcile"
	StageProject   = "project"
	StageDedupe    = "dedupe"
	StageWrite     = "write"
)

// Options configures a pipeline run.
type Options struct {
	PrimaryPath       string
	SecondaryPath     string
	OutputPath        string
	SecondarySkipRows int

	// DryRun runs every stage but skips the write.
	DryRun bool

	// Preview > 0 prints the first Preview rows of each intermediate table
	// to PreviewOut.
	Preview    int
	PreviewOut io.Writer
}

// Recorder persists run history. Store implementations satisfy it.
type Recorder interface {
	CreateRun(ctx context.Context, input model.RunInput) (*model.Run, error)
	CompleteRun(ctx context.Context, runID string, result *model.RunResult) error
	FailRun(ctx context.Context, runID string, runErr *model.RunError) error
}

// Result is the outcome of a successful run.
type Result struct {
	RunID        string
	Stats        model.MergeStats
	OutputSHA256 string
	Table        *model.Table
	Duration     time.Duration
}

// Pipeline runs load, filter, normalize, join, reconcile, project, dedupe and
// write in sequence. The first failing stage ends the run and nothing is
// written.
type Pipeline struct {
	opts     Options
	recorder Recorder
}

// New creates a Pipeline. recorder may be nil to skip run history.
func New(opts Options, recorder Recorder) *Pipeline {
	if opts.PreviewOut == nil {
		opts.PreviewOut = io.Discard
	}
	return &Pipeline{opts: opts, recorder: recorder}
}

// Run executes the pipeline once.
func (p *Pipeline) Run(ctx context.Context) (*Result, error) {
	log := zap.L().With(zap.String("output", p.opts.OutputPath))
	log.Info("pipeline: starting merge",
		zap.String("primary", p.opts.PrimaryPath),
		zap.String("secondary", p.opts.SecondaryPath),
	)

	start := time.Now()
	runID := p.beginRun(ctx)

	res, stage, err := p.execute()
	if err != nil {
		if _, typed := model.AsError(err); !typed {
			err = model.NewError(model.ErrProcessing, stage, err)
		}
		log.Error("pipeline: stage failed",
			zap.String("stage", stage),
			zap.String("kind", string(model.KindOf(err))),
			zap.Error(err),
		)
		p.failRun(ctx, runID, stage, err)
		return nil, eris.Wrapf(err, "merge: %s", stage)
	}

	res.RunID = runID
	res.Duration = time.Since(start)
	p.completeRun(ctx, runID, res)

	log.Info("pipeline: merge complete",
		zap.Int("output_rows", res.Stats.OutputRows),
		zap.Int("duplicates_dropped", res.Stats.DuplicatesDropped),
		zap.Bool("dry_run", p.opts.DryRun),
		zap.Int64("duration_ms", res.Duration.Milliseconds()),
	)
	return res, nil
}

// execute runs every stage and returns the name of the stage that failed.
func (p *Pipeline) execute() (*Result, string, error) {
	var stats model.MergeStats

	primary, err := p.load(p.opts.PrimaryPath, 0, PrimaryColumns)
	if err != nil {
		return nil, StageLoad, err
	}
	secondary, err := p.load(p.opts.SecondaryPath, p.opts.SecondarySkipRows, SecondaryColumns)
	if err != nil {
		return nil, StageLoad, err
	}
	stats.PrimaryRows = primary.Len()
	stats.SecondaryRows = secondary.Len()
	p.preview("Roster (file1)", primary)
	p.preview("Directory (file2)", secondary)

	filtered, err := FilterCallers(primary)
	if err != nil {
		return nil, StageFilter, err
	}
	stats.FilteredOut = primary.Len() - filtered.Len()
	p.stageDone(StageFilter, filtered.Len(), zap.Int("filtered_out", stats.FilteredOut))

	left, err := NormalizeColumn(filtered, DirectoryJoin.LeftKey)
	if err != nil {
		return nil, StageNormalize, err
	}
	right, err := NormalizeColumn(secondary, DirectoryJoin.RightKey)
	if err != nil {
		return nil, StageNormalize, err
	}
	p.stageDone(StageNormalize, left.Len())

	joined, err := InnerJoin(left, right, DirectoryJoin)
	if err != nil {
		return nil, StageJoin, err
	}
	stats.JoinedRows = joined.Len()
	p.stageDone(StageJoin, joined.Len())
	p.preview("Merged", joined)

	reconciled, err := Reconcile(joined)
	if err != nil {
		return nil, StageReconcile, err
	}
	p.stageDone(StageReconcile, reconciled.Len())
	p.preview("Merged after updating organization and external_id", reconciled)

	projected, err := Project(reconciled, OutputColumns)
	if err != nil {
		return nil, StageProject, err
	}
	p.stageDone(StageProject, projected.Len())

	final, err := DedupeLast(projected, ColID)
	if err != nil {
		return nil, StageDedupe, err
	}
	stats.DuplicatesDropped = projected.Len() - final.Len()
	stats.OutputRows = final.Len()
	p.stageDone(StageDedupe, final.Len(), zap.Int("duplicates_dropped", stats.DuplicatesDropped))

	res := &Result{Stats: stats, Table: final}
	if p.opts.DryRun {
		p.preview("Final (dry run, not saved)", final)
		return res, "", nil
	}

	sum, err := tabular.WriteFile(p.opts.OutputPath, final)
	if err != nil {
		return nil, StageWrite, err
	}
	res.OutputSHA256 = sum
	p.stageDone(StageWrite, final.Len(), zap.String("sha256", sum))
	p.preview("Final saved", final)

	return res, "", nil
}

// load reads a table and checks that it carries the required columns.
func (p *Pipeline) load(path string, skipRows int, required []string) (*model.Table, error) {
	t, err := tabular.ReadFile(path, tabular.ReadOptions{SkipRows: skipRows})
	if err != nil {
		return nil, err
	}
	if missing := t.MissingColumns(required); len(missing) > 0 {
		return nil, model.MissingError(model.ErrSchemaViolation, path, missing)
	}
	zap.L().Info("pipeline: loaded table",
		zap.String("path", path),
		zap.Int("rows", t.Len()),
		zap.Int("columns", len(t.Columns())),
	)
	return t, nil
}

func (p *Pipeline) stageDone(stage string, rows int, fields ...zap.Field) {
	zap.L().Info("pipeline: stage complete",
		append([]zap.Field{zap.String("stage", stage), zap.Int("rows", rows)}, fields...)...,
	)
}

func (p *Pipeline) preview(title string, t *model.Table) {
	if p.opts.Preview <= 0 {
		return
	}
	tabular.Preview(p.opts.PreviewOut, title, t, p.opts.Preview)
}

func (p *Pipeline) beginRun(ctx context.Context) string {
	if p.recorder == nil {
		return ""
	}
	run, err := p.recorder.CreateRun(ctx, model.RunInput{
		PrimaryPath:   p.opts.PrimaryPath,
		SecondaryPath: p.opts.SecondaryPath,
		OutputPath:    p.opts.OutputPath,
		DryRun:        p.opts.DryRun,
	})
	if err != nil {
		zap.L().Warn("pipeline: failed to record run start", zap.Error(err))
		return ""
	}
	return run.ID
}

func (p *Pipeline) completeRun(ctx context.Context, runID string, res *Result) {
	if p.recorder == nil || runID == "" {
		return
	}
	err := p.recorder.CompleteRun(ctx, runID, &model.RunResult{
		Stats:        res.Stats,
		OutputSHA256: res.OutputSHA256,
		DurationMs:   res.Duration.Milliseconds(),
	})
	if err != nil {
		zap.L().Warn("pipeline: failed to record run result", zap.String("run_id", runID), zap.Error(err))
	}
}

func (p *Pipeline) failRun(ctx context.Context, runID, stage string, cause error) {
	if p.recorder == nil || runID == "" {
		return
	}
	err := p.recorder.FailRun(ctx, runID, &model.RunError{
		Kind:    model.KindOf(cause),
		Stage:   stage,
		Message: cause.Error(),
	})
	if err != nil {
		zap.L().Warn("pipeline: failed to record run failure", zap.String("run_id", runID), zap.Error(err))
	}
}
