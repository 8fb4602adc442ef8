package mem_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ibcore/ibasic/internal/mem"
)

func TestInts_StorLoad(t *testing.T) {
	var m mem.Ints
	require.NoError(t, m.Stor(10, 1, 2, 3))

	v, err := m.Load(10)
	require.NoError(t, err)
	assert.Equal(t, 1, v)

	v, err = m.Load(12)
	require.NoError(t, err)
	assert.Equal(t, 3, v)

	// unwritten addresses read back as zero
	v, err = m.Load(0)
	require.NoError(t, err)
	assert.Equal(t, 0, v)
}

func TestInts_LoadInto(t *testing.T) {
	var m mem.Ints
	require.NoError(t, m.Stor(5, 7, 8, 9))

	buf := make([]int, 5)
	require.NoError(t, m.LoadInto(3, buf))
	assert.Equal(t, []int{0, 0, 7, 8, 9}, buf)
}

func TestInts_Limit(t *testing.T) {
	var m mem.Ints
	m.Limit = 16

	require.NoError(t, m.Stor(10, 1))
	err := m.Stor(20, 1)
	assert.Error(t, err)
	var lim mem.LimitError
	assert.ErrorAs(t, err, &lim)
}

func TestInts_Size(t *testing.T) {
	var m mem.Ints
	assert.Equal(t, uint(0), m.Size())
	require.NoError(t, m.Stor(0, 1, 2, 3))
	assert.True(t, m.Size() >= 3)
}
