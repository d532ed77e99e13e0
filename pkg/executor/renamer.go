package executor

import (
	"github.com/rs/zerolog"

	"github.com/arthur-debert/renum/pkg/errors"
	"github.com/arthur-debert/renum/pkg/logging"
	"github.com/arthur-debert/renum/pkg/sequence"
	"github.com/arthur-debert/renum/pkg/types"
)

// Renamer is the filesystem-facing visitor behind Execute. In dry-run
// mode it records the move each task would make without touching the
// filesystem; in real mode it performs the rename. It never stops a run:
// a failed item is logged, recorded, and left behind.
type Renamer struct {
	fs     types.FS
	dryRun bool
	logger zerolog.Logger
	items  []types.ItemResult
}

// NewRenamer creates a standalone renaming visitor for use with
// sequence.Run.
func NewRenamer(fsys types.FS, dryRun bool) *Renamer {
	return &Renamer{
		fs:     fsys,
		dryRun: dryRun,
		logger: logging.GetLogger("executor"),
	}
}

// Visit handles one task and always continues.
func (r *Renamer) Visit(task sequence.Task) sequence.Control[error] {
	// Dry runs announce each move at info, real moves log at debug
	level := zerolog.DebugLevel
	if r.dryRun {
		level = zerolog.InfoLevel
	}
	r.logger.WithLevel(level).
		Int("index", task.Index).
		Str("from", task.Source).
		Str("to", task.Dest).
		Msg("Renaming file")

	if r.dryRun {
		r.record(task, types.StatusPlanned, nil)
		return sequence.Continue[error]()
	}

	if err := r.rename(task.Source, task.Dest); err != nil {
		r.logger.Error().
			Err(err).
			Int("index", task.Index).
			Msg("Rename failed")
		r.record(task, types.StatusFailed, err)
		return sequence.Continue[error]()
	}

	r.record(task, types.StatusRenamed, nil)
	return sequence.Continue[error]()
}

func (r *Renamer) rename(from, to string) error {
	if _, err := r.fs.Stat(from); err != nil {
		return errors.Wrapf(err, errors.ErrRename, "failed to rename file %q to %q", from, to)
	}

	if err := r.fs.Rename(from, to); err != nil {
		return errors.Wrapf(err, errors.ErrRename, "failed to rename file %q to %q", from, to)
	}

	return nil
}

func (r *Renamer) record(task sequence.Task, status types.ItemStatus, err error) {
	item := types.ItemResult{
		Index:  task.Index,
		Source: task.Source,
		Dest:   task.Dest,
		Status: status,
	}
	if err != nil {
		item.Error = err.Error()
	}
	r.items = append(r.items, item)
}

// Items returns the outcomes recorded so far, in visit order.
func (r *Renamer) Items() []types.ItemResult {
	return r.items
}
