package menu

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTypedExtraction(t *testing.T) {
	name := NewField("Name", Text, Required, TextValue("Alice"))
	age := NewField("Age", Integer, Required, IntValue(42))
	bill := NewField("Bill", Float, Required, FloatValue(12.5))

	s, err := name.Text()
	require.NoError(t, err)
	assert.Equal(t, "Alice", s.String)
	assert.True(t, s.Valid)

	i, err := age.Int()
	require.NoError(t, err)
	assert.Equal(t, int64(42), i.Int64)

	f, err := bill.Float()
	require.NoError(t, err)
	assert.Equal(t, 12.5, f.Float64)
}

func TestExtractionMismatch(t *testing.T) {
	age := NewField("Age", Integer, Required, IntValue(42))

	_, err := age.Text()
	assert.ErrorIs(t, err, ErrTypeMismatch)
	assert.EqualError(t, err, `field "Age" is Integer, not Text`)

	_, err = age.Float()
	assert.ErrorIs(t, err, ErrTypeMismatch)

	unset := NewField("Note", Text, Optional, nil)
	_, err = unset.Int()
	assert.ErrorIs(t, err, ErrTypeMismatch)
}

func TestMustExtraction(t *testing.T) {
	age := NewField("Age", Integer, Optional, nil)

	assert.False(t, age.MustInt().Valid)
	assert.Panics(t, func() { age.MustText() })
	assert.Panics(t, func() { age.MustFloat() })
}

func TestSetParsesByKind(t *testing.T) {
	f := NewField("Age", Integer, Required, nil)

	require.NoError(t, f.Set(" 42\n"))
	assert.Equal(t, IntValue(42), f.Value)

	assert.ErrorIs(t, f.Set("forty-two\n"), ErrParse)
	assert.Equal(t, IntValue(42), f.Value, "failed parse keeps previous value")
}

func TestFloatRejectsHexadecimal(t *testing.T) {
	for _, input := range []string{"0x1p3", "0X1P-2", "+0x10", "-0x.8p1"} {
		_, err := Float.Parse(input)
		assert.ErrorIs(t, err, ErrParse, input)
	}

	v, err := Float.Parse(" 1e3\n")
	require.NoError(t, err)
	assert.Equal(t, FloatValue(1000), v)

	v, err = Float.Parse("0.5")
	require.NoError(t, err)
	assert.Equal(t, FloatValue(0.5), v)
}

func TestValueStrings(t *testing.T) {
	assert.Equal(t, "hi", TextValue("hi").String())
	assert.Equal(t, "-3", IntValue(-3).String())
	assert.Equal(t, "3.14", FloatValue(3.14).String())
	assert.Equal(t, "1", FloatValue(1).String())
}

func TestResultsGet(t *testing.T) {
	results := Results{
		NewField("Name", Text, Required, TextValue("Alice")),
		NewField("Age", Integer, Optional, IntValue(1)),
	}

	f, ok := results.Get("Age")
	require.True(t, ok)
	assert.Equal(t, int64(1), f.MustInt().Int64)

	_, ok = results.Get("Height")
	assert.False(t, ok)
}
