package pool

import (
	"bytes"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewByteBuffer(t *testing.T) {
	capacity := 1024
	bb := NewByteBuffer(capacity)

	require.NotNil(t, bb)
	require.NotNil(t, bb.B)
	assert.Equal(t, 0, len(bb.B), "new buffer should have zero length")
	assert.Equal(t, capacity, cap(bb.B), "new buffer should have specified capacity")
}

func TestByteBuffer_Bytes(t *testing.T) {
	bb := NewByteBuffer(KeyBufferDefaultSize)
	bb.B = append(bb.B, []byte("hello")...)

	data := bb.Bytes()

	assert.Equal(t, []byte("hello"), data)
	assert.True(t, &bb.B[0] == &data[0], "Bytes() should return the same underlying slice")
}

func TestByteBuffer_Reset(t *testing.T) {
	bb := NewByteBuffer(KeyBufferDefaultSize)
	bb.B = append(bb.B, []byte("some data")...)
	originalCap := cap(bb.B)

	bb.Reset()

	assert.Equal(t, 0, len(bb.B), "Reset should clear the buffer length")
	assert.Equal(t, originalCap, cap(bb.B), "Reset should preserve capacity")
}

func TestByteBuffer_LenCap(t *testing.T) {
	bb := NewByteBuffer(KeyBufferDefaultSize)

	assert.Equal(t, 0, bb.Len())
	assert.Equal(t, KeyBufferDefaultSize, bb.Cap())

	bb.B = append(bb.B, []byte("test")...)
	assert.Equal(t, 4, bb.Len())
}

func TestByteBuffer_Grow(t *testing.T) {
	bb := NewByteBuffer(8)
	bb.B = append(bb.B, []byte("12345678")...)

	bb.Grow(100)
	assert.GreaterOrEqual(t, cap(bb.B)-len(bb.B), 100, "Grow should ensure requested headroom")
	assert.Equal(t, []byte("12345678"), bb.B, "Grow should preserve contents")

	// No-op when capacity is already sufficient.
	before := cap(bb.B)
	bb.Grow(1)
	assert.Equal(t, before, cap(bb.B))
}

func TestByteBuffer_Write(t *testing.T) {
	bb := NewByteBuffer(KeyBufferDefaultSize)

	n, err := bb.Write([]byte("account:"))
	require.NoError(t, err)
	assert.Equal(t, 8, n)

	n, err = bb.Write([]byte("000004d2"))
	require.NoError(t, err)
	assert.Equal(t, 8, n)

	assert.Equal(t, []byte("account:000004d2"), bb.Bytes())
}

func TestByteBuffer_WriteTo(t *testing.T) {
	bb := NewByteBuffer(KeyBufferDefaultSize)
	bb.B = append(bb.B, []byte("payload")...)

	var out bytes.Buffer
	n, err := bb.WriteTo(&out)
	require.NoError(t, err)
	assert.Equal(t, int64(7), n)
	assert.Equal(t, "payload", out.String())
}

func TestByteBufferPool_GetPut(t *testing.T) {
	p := NewByteBufferPool(64, 1024)

	bb := p.Get()
	require.NotNil(t, bb)
	assert.Equal(t, 0, bb.Len())

	bb.B = append(bb.B, []byte("reused")...)
	p.Put(bb)

	bb2 := p.Get()
	assert.Equal(t, 0, bb2.Len(), "pooled buffer should come back reset")
}

func TestByteBufferPool_PutNil(t *testing.T) {
	p := NewByteBufferPool(64, 1024)
	require.NotPanics(t, func() { p.Put(nil) })
}

func TestByteBufferPool_DiscardOversize(t *testing.T) {
	p := NewByteBufferPool(64, 128)

	bb := p.Get()
	bb.B = make([]byte, 0, 4096)
	require.NotPanics(t, func() { p.Put(bb) }, "oversize buffers are discarded, not retained")
}

func TestDefaultPools(t *testing.T) {
	kb := GetKeyBuffer()
	require.NotNil(t, kb)
	assert.GreaterOrEqual(t, kb.Cap(), KeyBufferDefaultSize)
	PutKeyBuffer(kb)

	blk := GetBlockBuffer()
	require.NotNil(t, blk)
	assert.GreaterOrEqual(t, blk.Cap(), BlockBufferDefaultSize)
	PutBlockBuffer(blk)
}

func TestByteBufferPool_Concurrent(t *testing.T) {
	p := NewByteBufferPool(64, 1024)

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				bb := p.Get()
				bb.B = append(bb.B, byte(j))
				p.Put(bb)
			}
		}()
	}
	wg.Wait()
}
