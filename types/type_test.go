package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSQLTypeString(t *testing.T) {
	tests := []struct {
		t    SQLType
		want string
	}{
		{SQLType{Kind: Boolean}, "BOOLEAN"},
		{SQLType{Kind: Varchar, Dimension: 10}, "VARCHAR(10)"},
		{SQLType{Kind: Numeric, Dimension: 10, Scale: 2}, "NUMERIC(10,2)"},
		{SQLType{Kind: Bigint}, "BIGINT"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.t.String())
	}
}

func TestSQLTypeEquals(t *testing.T) {
	a := SQLType{Kind: Varchar, Dimension: 10}
	b := SQLType{Kind: Varchar, Dimension: 10}
	c := SQLType{Kind: Varchar, Dimension: 20}
	assert.True(t, a.Equals(b))
	assert.False(t, a.Equals(c))
}

func TestIsNumericIsString(t *testing.T) {
	assert.True(t, SQLType{Kind: Int}.IsNumeric())
	assert.True(t, SQLType{Kind: Double}.IsNumeric())
	assert.False(t, SQLType{Kind: Varchar}.IsNumeric())

	assert.True(t, SQLType{Kind: Text}.IsString())
	assert.False(t, SQLType{Kind: Int}.IsString())
}

func TestCommonNumericTypeWidening(t *testing.T) {
	tests := []struct {
		name     string
		a, b     SQLType
		wantKind Kind
	}{
		{"smallint/int -> int", SQLType{Kind: Smallint}, SQLType{Kind: Int}, Int},
		{"int/bigint -> bigint", SQLType{Kind: Int}, SQLType{Kind: Bigint}, Bigint},
		{"bigint/float -> float", SQLType{Kind: Bigint}, SQLType{Kind: Float}, Float},
		{"float/double -> double", SQLType{Kind: Float}, SQLType{Kind: Double}, Double},
		{"null adopts other side", SQLType{Kind: Nullt}, SQLType{Kind: Int}, Int},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CommonNumericType(tt.a, tt.b)
			require.Equal(t, tt.wantKind, got.Kind)
		})
	}
}

func TestCommonNumericTypeDecimalCombinesDimensionScale(t *testing.T) {
	a := SQLType{Kind: Decimal, Dimension: 10, Scale: 2}
	b := SQLType{Kind: Decimal, Dimension: 6, Scale: 4}
	got := CommonNumericType(a, b)
	assert.Equal(t, Decimal, got.Kind)
	assert.Equal(t, 4, got.Scale)
	assert.Equal(t, 12, got.Dimension)
}

func TestCommonStringTypeWideningAndDimension(t *testing.T) {
	a := SQLType{Kind: Char, Dimension: 5}
	b := SQLType{Kind: Varchar, Dimension: 20}
	got := CommonStringType(a, b)
	assert.Equal(t, Varchar, got.Kind)
	assert.Equal(t, 20, got.Dimension)
}
