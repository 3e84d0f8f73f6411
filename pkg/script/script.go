package script

import (
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/pmkol/slist/mlog"
	"github.com/pmkol/slist/pkg/list"
)

const (
	OpAppend   = "append"
	OpPrepend  = "prepend"
	OpPop      = "pop"
	OpInsertAt = "insert_at"
	OpRemoveAt = "remove_at"
	OpAt       = "at"
	OpFind     = "find"
	OpContains = "contains"
	OpSize     = "size"
	OpPrint    = "print"
)

var (
	ErrUnknownOp    = errors.New("unknown op")
	ErrMissingValue = errors.New("missing value")
)

// Op is one step of a script.
type Op struct {
	Op    string  `yaml:"op"`
	Index int     `yaml:"index"`
	Value *string `yaml:"value"`
}

// Result is the outcome of one Op. Found is false when the op produced
// no value: pop on an empty list, an index out of range or no match.
type Result struct {
	Op       string `yaml:"op"`
	Index    int    `yaml:"index,omitempty"`
	Value    string `yaml:"value,omitempty"`
	Found    bool   `yaml:"found"`
	Size     int    `yaml:"size"`
	Rendered string `yaml:"rendered,omitempty"`
}

// Runner applies ops to a list of strings.
type Runner struct {
	l      *list.List[string]
	logger *zap.Logger
}

func NewRunner(logger *zap.Logger) *Runner {
	if logger == nil {
		logger = mlog.Nop()
	}
	return &Runner{l: list.New[string](), logger: logger}
}

func (r *Runner) List() *list.List[string] {
	return r.l
}

// Run applies ops in order and stops at the first malformed op.
func (r *Runner) Run(ops []Op) ([]Result, error) {
	res := make([]Result, 0, len(ops))
	for i, op := range ops {
		rs, err := r.Apply(op)
		if err != nil {
			return res, fmt.Errorf("op #%d: %w", i, err)
		}
		res = append(res, rs)
	}
	return res, nil
}

func (r *Runner) Apply(op Op) (Result, error) {
	rs := Result{Op: op.Op}

	value := func() (string, error) {
		if op.Value == nil {
			return "", fmt.Errorf("%s: %w", op.Op, ErrMissingValue)
		}
		return *op.Value, nil
	}

	switch op.Op {
	case OpAppend, OpPrepend, OpInsertAt:
		v, err := value()
		if err != nil {
			return rs, err
		}
		before := r.l.Len()
		switch op.Op {
		case OpAppend:
			r.l.Append(v)
		case OpPrepend:
			r.l.Prepend(v)
		default:
			rs.Index = op.Index
			r.l.InsertAt(op.Index, v)
		}
		rs.Value = v
		rs.Found = r.l.Len() > before
	case OpPop:
		rs.Value, rs.Found = r.l.Pop()
	case OpRemoveAt:
		rs.Index = op.Index
		rs.Value, rs.Found = r.l.RemoveAt(op.Index)
	case OpAt:
		rs.Index = op.Index
		if n, ok := r.l.At(op.Index); ok {
			rs.Value, rs.Found = n.Value, true
		}
	case OpFind, OpContains:
		v, err := value()
		if err != nil {
			return rs, err
		}
		rs.Value = v
		if op.Op == OpFind {
			rs.Index, rs.Found = r.l.Find(v)
		} else {
			rs.Found = r.l.Contains(v)
		}
	case OpSize:
		rs.Found = true
	case OpPrint:
		rs.Found = true
		rs.Rendered = r.l.String()
	default:
		return rs, fmt.Errorf("%w %q", ErrUnknownOp, op.Op)
	}

	rs.Size = r.l.Len()
	r.logger.Debug("op applied",
		zap.String("op", rs.Op),
		zap.Int("index", rs.Index),
		zap.String("value", rs.Value),
		zap.Bool("found", rs.Found),
		zap.Int("size", rs.Size),
	)
	return rs, nil
}
