package script

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

func val(s string) *string { return &s }

func TestRunner_Run(t *testing.T) {
	r := NewRunner(zaptest.NewLogger(t))
	res, err := r.Run([]Op{
		{Op: OpAppend, Value: val("10")},
		{Op: OpAppend, Value: val("20")},
		{Op: OpAppend, Value: val("30")},
		{Op: OpPrepend, Value: val("5")},
		{Op: OpInsertAt, Index: 2, Value: val("15")},
		{Op: OpRemoveAt, Index: 3},
		{Op: OpFind, Value: val("15")},
		{Op: OpAt, Index: 2},
		{Op: OpContains, Value: val("20")},
		{Op: OpPop},
		{Op: OpPrint},
	})
	require.NoError(t, err)
	require.Len(t, res, 11)

	assert.Equal(t, Result{Op: OpRemoveAt, Index: 3, Value: "20", Found: true, Size: 4}, res[5])
	assert.Equal(t, Result{Op: OpFind, Index: 2, Value: "15", Found: true, Size: 4}, res[6])
	assert.Equal(t, Result{Op: OpAt, Index: 2, Value: "15", Found: true, Size: 4}, res[7])
	assert.False(t, res[8].Found)
	assert.Equal(t, Result{Op: OpPop, Value: "30", Found: true, Size: 3}, res[9])
	assert.Equal(t, "( 5 ) -> ( 10 ) -> ( 15 ) -> <end>", res[10].Rendered)
	assert.Equal(t, []string{"5", "10", "15"}, r.List().Values())
}

func TestRunner_Apply_absence(t *testing.T) {
	r := NewRunner(nil)

	tests := []Op{
		{Op: OpPop},
		{Op: OpRemoveAt, Index: 0},
		{Op: OpAt, Index: -1},
		{Op: OpInsertAt, Index: 1, Value: val("x")},
		{Op: OpFind, Value: val("x")},
		{Op: OpContains, Value: val("x")},
	}
	for _, op := range tests {
		t.Run(op.Op, func(t *testing.T) {
			rs, err := r.Apply(op)
			require.NoError(t, err)
			assert.False(t, rs.Found)
			assert.Equal(t, 0, rs.Size)
		})
	}
}

func TestRunner_Apply_errors(t *testing.T) {
	r := NewRunner(nil)

	_, err := r.Apply(Op{Op: "shuffle"})
	assert.ErrorIs(t, err, ErrUnknownOp)

	for _, name := range []string{OpAppend, OpPrepend, OpInsertAt, OpFind, OpContains} {
		_, err := r.Apply(Op{Op: name})
		assert.ErrorIs(t, err, ErrMissingValue, name)
	}
	assert.Equal(t, 0, r.List().Len())
}

func TestRunner_Run_stopsAtError(t *testing.T) {
	r := NewRunner(nil)
	res, err := r.Run([]Op{
		{Op: OpAppend, Value: val("a")},
		{Op: OpAppend},
		{Op: OpAppend, Value: val("b")},
	})
	require.ErrorIs(t, err, ErrMissingValue)
	assert.Contains(t, err.Error(), "op #1")
	assert.Len(t, res, 1)
	assert.Equal(t, []string{"a"}, r.List().Values())
}
