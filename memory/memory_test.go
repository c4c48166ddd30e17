// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package memory

import (
	"maps"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStore(t *testing.T) {
	assert := assert.New(t)

	st := &Store{}
	assert.Equal(0, st.Len())
	assert.Equal("0", st.Sum().String())

	_, ok := st.Read(8)
	assert.False(ok)

	st.Write(8, 11)
	st.Write(7, 101)
	st.Write(8, 0)

	value, ok := st.Read(8)
	assert.True(ok)
	assert.Equal(uint64(0), value)
	assert.Equal(2, st.Len())
	assert.Equal("101", st.Sum().String())

	st.Reset()
	assert.Equal(0, st.Len())
	assert.Equal("0", st.Sum().String())
}

func TestStoreIdempotent(t *testing.T) {
	assert := assert.New(t)

	once := &Store{}
	once.Write(1<<35, 5)

	twice := &Store{}
	twice.Write(1<<35, 5)
	twice.Write(1<<35, 5)

	assert.Equal(once.Cells, twice.Cells)
}

func TestStoreLastWriteWins(t *testing.T) {
	assert := assert.New(t)

	st := &Store{}
	st.Write(42, 100)
	st.Write(42, 1)

	value, _ := st.Read(42)
	assert.Equal(uint64(1), value)
}

func TestStoreSumCarry(t *testing.T) {
	assert := assert.New(t)

	st := &Store{}
	st.Write(0, math.MaxUint64)
	st.Write(1, math.MaxUint64)
	st.Write(2, 2)

	assert.Equal("36893488147419103232", st.Sum().String())
}

func TestStoreAll(t *testing.T) {
	assert := assert.New(t)

	st := &Store{}
	st.Write(59, 100)
	st.Write(16, 1)
	st.Write(26, 1)

	var addrs []uint64
	for addr := range st.All() {
		addrs = append(addrs, addr)
		if len(addrs) == 2 {
			break
		}
	}
	assert.Equal([]uint64{16, 26}, addrs)
	assert.Equal(st.Cells, maps.Collect(st.All()))
}
