package fault

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	t.Parallel()
	f := New("boom")

	assert.Equal(t, "boom", f.Message())
	assert.Equal(t, "boom", f.Error())
	assert.Nil(t, f.Cause())
}

func TestNewf(t *testing.T) {
	t.Parallel()
	f := Newf("bad input: %d", 42)

	assert.Equal(t, "bad input: 42", f.Message())
}

func TestFrom_FaultPassesThrough(t *testing.T) {
	t.Parallel()
	f := New("boom")

	assert.Same(t, f, From(f))
}

func TestFrom_ErrorBecomesCause(t *testing.T) {
	t.Parallel()
	err := errors.New("io failed")
	f := From(err)

	require.NotNil(t, f)
	assert.Equal(t, err, f.Cause())
	assert.Equal(t, "io failed", f.Message())
	assert.Equal(t, "io failed", f.Error())
	assert.ErrorIs(t, f, err)
}

func TestFrom_String(t *testing.T) {
	t.Parallel()
	f := From("just text")

	assert.Equal(t, "just text", f.Message())
	assert.Nil(t, f.Cause())
}

func TestFrom_ArbitraryValue(t *testing.T) {
	t.Parallel()
	f := From(42)

	assert.Equal(t, "42", f.Message())
}

func TestFrom_Nil(t *testing.T) {
	t.Parallel()
	f := From(nil)

	require.NotNil(t, f)
	assert.Equal(t, "unknown failure", f.Message())

	var nilFault *Fault
	f = From(nilFault)
	require.NotNil(t, f)
	assert.Equal(t, "unknown failure", f.Message())
}

func TestCauses_LayersMessages(t *testing.T) {
	t.Parallel()
	root := New("Cannot divide by zero.")
	top := root.Causes("Division error.")

	assert.Equal(t, "Division error.", top.Message())
	assert.Equal(t, "Division error.: Cannot divide by zero.", top.Error())
	assert.Equal(t, root, top.Cause())
	assert.ErrorIs(t, top, root)

	// receiver untouched
	assert.Equal(t, "Cannot divide by zero.", root.Error())
	assert.Nil(t, root.Cause())
}

func TestCauses_ChainStaysInspectable(t *testing.T) {
	t.Parallel()
	err := errors.New("disk full")
	f := From(err).Causes("write failed").Causes("save aborted")

	assert.Equal(t, "save aborted", f.Message())
	assert.Equal(t, "save aborted: write failed: disk full", f.Error())
	assert.ErrorIs(t, f, err)
}
