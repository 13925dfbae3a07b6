package winproc

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/creativeyann17/commitmem/pkg/memquery"
)

func TestRegionFromInfo(t *testing.T) {
	tests := []struct {
		name    string
		state   uint32
		typ     uint32
		want    memquery.CommitState
		private bool
	}{
		{"committed private", memCommit, memPrivate, memquery.StateCommitted, true},
		{"committed image", memCommit, 0x1000000, memquery.StateCommitted, false},
		{"committed mapped", memCommit, 0x40000, memquery.StateCommitted, false},
		{"reserved", memReserve, memPrivate, memquery.StateReserved, true},
		{"free", memFree, 0, memquery.StateFree, false},
		{"unknown", 0x4, 0, memquery.StateUnknown, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := regionFromInfo(0x10000, 0x2000, tt.state, tt.typ)
			assert.Equal(t, tt.want, r.State)
			assert.Equal(t, tt.private, r.PrivateBacked)
			assert.Equal(t, uint64(0x10000), r.BaseAddress)
			assert.Equal(t, uint64(0x2000), r.Size)
		})
	}
}

func TestDecodeWorkingSetBlock(t *testing.T) {
	t.Run("valid shared with count", func(t *testing.T) {
		// Valid, ShareCount=3, Win32Protection=PAGE_READONLY, Shared
		block := uint64(1 | 3<<1 | 0x2<<4 | 1<<15)
		pc := decodeWorkingSetBlock(0x7ff000, block)
		assert.Equal(t, uint64(0x7ff000), pc.Address)
		assert.True(t, pc.Valid)
		assert.True(t, pc.Shared)
		assert.Equal(t, uint32(3), pc.ShareCount)
		assert.True(t, pc.CountsAsShared())
	})

	t.Run("valid shared zero count", func(t *testing.T) {
		pc := decodeWorkingSetBlock(0x1000, 1|1<<15)
		assert.True(t, pc.Shared)
		assert.Zero(t, pc.ShareCount)
		assert.False(t, pc.CountsAsShared(), "count-gated when valid")
	})

	t.Run("invalid shared", func(t *testing.T) {
		// Reserved bits of an invalid entry must not leak into ShareCount
		pc := decodeWorkingSetBlock(0x1000, 0x7<<1|1<<15)
		assert.False(t, pc.Valid)
		assert.True(t, pc.Shared)
		assert.Zero(t, pc.ShareCount)
		assert.True(t, pc.CountsAsShared(), "bit-only when invalid")
	})

	t.Run("private", func(t *testing.T) {
		pc := decodeWorkingSetBlock(0x1000, 1|0x4<<4)
		assert.True(t, pc.Valid)
		assert.False(t, pc.Shared)
		assert.False(t, pc.CountsAsShared())
	})
}

func TestNextBufferSize(t *testing.T) {
	assert.Equal(t, 2048, nextBufferSize(1024))
	assert.Equal(t, maxProcessIDs, nextBufferSize(maxProcessIDs-1))
	assert.Zero(t, nextBufferSize(maxProcessIDs))

	// Growth from the initial size always terminates
	steps := 0
	for n := initialProcessIDs; n != 0; n = nextBufferSize(n) {
		steps++
	}
	assert.Equal(t, 11, steps)
}
