package resolved

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mapd-project/queryfront/types"
)

func TestDeepCopyColumnVarIsDistinctPointer(t *testing.T) {
	orig := &ColumnVar{T: types.SQLType{Kind: types.Int}, TableID: 1, ColumnID: 2}
	cp := DeepCopy(orig)
	got, ok := cp.(*ColumnVar)
	require.True(t, ok)
	assert.NotSame(t, orig, got)
	assert.Equal(t, *orig, *got)
}

func TestDeepCopyBinOperRecursesIntoChildren(t *testing.T) {
	arg := &ColumnVar{T: types.SQLType{Kind: types.Int}}
	orig := &BinOper{
		T:    types.SQLType{Kind: types.Boolean},
		Op:   types.Ge,
		Left: arg,
		Right: &Constant{T: types.SQLType{Kind: types.Int}},
	}
	cp := DeepCopy(orig).(*BinOper)
	assert.NotSame(t, orig, cp)
	assert.NotSame(t, orig.Left, cp.Left)
	leftCopy, ok := cp.Left.(*ColumnVar)
	require.True(t, ok)
	assert.Equal(t, *arg, *leftCopy)
}

func TestDeepCopyNilIsNil(t *testing.T) {
	assert.Nil(t, DeepCopy(nil))
}
