package executor

import (
	"time"

	"github.com/rs/zerolog"

	"github.com/arthur-debert/renum/pkg/errors"
	"github.com/arthur-debert/renum/pkg/filesystem"
	"github.com/arthur-debert/renum/pkg/logging"
	"github.com/arthur-debert/renum/pkg/pattern"
	"github.com/arthur-debert/renum/pkg/sequence"
	"github.com/arthur-debert/renum/pkg/types"
)

// Options contains configuration for the executor
type Options struct {
	DryRun bool
	Logger zerolog.Logger
	// Filesystem operations interface for testing
	FS types.FS
}

// Executor drives rename runs against a filesystem
type Executor struct {
	dryRun bool
	logger zerolog.Logger
	fs     types.FS
}

// New creates a new executor instance
func New(opts Options) *Executor {
	logger := opts.Logger
	if logger.GetLevel() == zerolog.Disabled {
		logger = logging.GetLogger("executor")
	}

	fs := opts.FS
	if fs == nil {
		fs = filesystem.NewOS()
	}

	return &Executor{
		dryRun: opts.DryRun,
		logger: logger,
		fs:     fs,
	}
}

// Execute runs one rename pass over files in the given traversal order
// and returns its report. Failed items are recorded on the report and do
// not abort the pass; the returned error covers run-level problems only,
// such as an order the selection cannot support.
func (e *Executor) Execute(files []string, pat *pattern.Pattern, order sequence.Order) (*types.RunReport, error) {
	done := logging.LogOperationStart(e.logger, "rename-run")
	defer done()

	if order == "" {
		order = sequence.OrderSequential
	}

	arranged, err := order.Arrange(sequence.NewSliceSource(files))
	if err != nil {
		return nil, err
	}

	e.logger.Debug().
		Int("files", len(files)).
		Str("pattern", pat.String()).
		Str("order", string(order)).
		Bool("dry_run", e.dryRun).
		Msg("Executing rename run")

	if e.dryRun {
		e.logger.Info().Msg("Doing a dry run of all moves")
	}

	renamer := &Renamer{fs: e.fs, dryRun: e.dryRun, logger: e.logger}
	if stopErr, stopped := sequence.Run[error](arranged, pat, renamer); stopped {
		return nil, errors.Wrap(stopErr, errors.ErrRunAborted, "rename run aborted")
	}

	if e.dryRun {
		e.logger.Info().Msg("Dry run complete; use the --go flag to actually rename files")
	}

	return &types.RunReport{
		Pattern:   pat.String(),
		Order:     string(order),
		DryRun:    e.dryRun,
		Items:     renamer.Items(),
		Timestamp: time.Now(),
	}, nil
}
