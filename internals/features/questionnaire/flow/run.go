package flow

import (
	"errors"

	"relationnel_backend/internals/features/questionnaire/catalog/model"
)

var (
	ErrIncomplete   = errors.New("current module has unanswered required questions")
	ErrNoModules    = errors.New("run has no modules")
	ErrAlreadyEnded = errors.New("run already submitted")
)

// =======================
// Traversal state machine
// =======================
// Sequential walk over the ordered module list. Forward advances only when
// the current module passes the completion gate; forward on the last module
// ends the run instead of advancing. Back never clears answers. No jumps.

type Run struct {
	modules   []model.ModuleModel
	collector *Collector
	idx       int
	submitted bool
}

// NewRun starts a run at the first module. The module slice is expected in
// canonical catalog order (model.OrderedModules).
func NewRun(modules []model.ModuleModel) (*Run, error) {
	if len(modules) == 0 {
		return nil, ErrNoModules
	}
	return &Run{modules: modules, collector: NewCollector()}, nil
}

func (r *Run) Collector() *Collector       { return r.collector }
func (r *Run) Index() int                  { return r.idx }
func (r *Run) Current() model.ModuleModel  { return r.modules[r.idx] }
func (r *Run) Submitted() bool             { return r.submitted }
func (r *Run) CurrentComplete() bool       { return IsModuleComplete(r.Current(), r.collector) }

// Forward advances to the next module. On the last module it flips the run
// into the submitted state and reports done=true. When the current module
// is incomplete the state is left unchanged and ErrIncomplete is returned.
func (r *Run) Forward() (done bool, err error) {
	if r.submitted {
		return true, ErrAlreadyEnded
	}
	if !r.CurrentComplete() {
		return false, ErrIncomplete
	}
	if r.idx == len(r.modules)-1 {
		r.submitted = true
		return true, nil
	}
	r.idx++
	return false, nil
}

// Back steps to the previous module; a no-op at the first one. Collected
// answers are kept.
func (r *Run) Back() bool {
	if r.submitted || r.idx == 0 {
		return false
	}
	r.idx--
	return true
}
