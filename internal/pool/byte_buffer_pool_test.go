package pool

import (
	"bytes"
	"errors"
	"io"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewByteBuffer(t *testing.T) {
	bb := NewByteBuffer(1024)

	require.NotNil(t, bb)
	assert.Equal(t, 0, bb.Len(), "new buffer should have zero length")
	assert.Equal(t, 1024, cap(bb.B), "new buffer should have specified capacity")
}

func TestByteBuffer_WriteAndReset(t *testing.T) {
	bb := NewByteBuffer(InputBufferDefaultSize)

	n, err := bb.Write([]byte("hello"))
	require.NoError(t, err)
	require.Equal(t, 5, n)
	_, _ = bb.Write([]byte(" world"))
	assert.Equal(t, []byte("hello world"), bb.Bytes())

	originalCap := cap(bb.B)
	bb.Reset()
	assert.Equal(t, 0, bb.Len(), "Reset should clear the buffer length")
	assert.Equal(t, originalCap, cap(bb.B), "Reset should preserve capacity")
}

func TestByteBuffer_Grow(t *testing.T) {
	t.Run("sufficient capacity is a no-op", func(t *testing.T) {
		bb := NewByteBuffer(100)
		bb.Grow(50)
		assert.Equal(t, 100, cap(bb.B))
	})

	t.Run("small buffer grows by default size", func(t *testing.T) {
		bb := NewByteBuffer(10)
		_, _ = bb.Write(make([]byte, 10))
		bb.Grow(1)
		assert.Equal(t, 10+InputBufferDefaultSize, cap(bb.B))
	})

	t.Run("large buffer grows by a quarter", func(t *testing.T) {
		size := 8 * InputBufferDefaultSize
		bb := NewByteBuffer(size)
		_, _ = bb.Write(make([]byte, size))
		bb.Grow(1)
		assert.Equal(t, size+size/4, cap(bb.B))
	})

	t.Run("grows at least by required bytes", func(t *testing.T) {
		bb := NewByteBuffer(0)
		bb.Grow(3 * InputBufferDefaultSize)
		assert.GreaterOrEqual(t, cap(bb.B), 3*InputBufferDefaultSize)
	})

	t.Run("preserves data", func(t *testing.T) {
		bb := NewByteBuffer(4)
		_, _ = bb.Write([]byte("data"))
		bb.Grow(1024)
		assert.Equal(t, []byte("data"), bb.Bytes())
	})
}

func TestByteBuffer_ReadFrom(t *testing.T) {
	t.Run("reads until EOF", func(t *testing.T) {
		input := strings.Repeat("base16384 ", 10000)
		bb := NewByteBuffer(16)

		n, err := bb.ReadFrom(strings.NewReader(input))
		require.NoError(t, err)
		require.Equal(t, int64(len(input)), n)
		require.Equal(t, input, string(bb.Bytes()))
	})

	t.Run("appends to existing content", func(t *testing.T) {
		bb := NewByteBuffer(16)
		_, _ = bb.Write([]byte("head:"))

		_, err := io.Copy(bb, strings.NewReader("tail"))
		require.NoError(t, err)
		require.Equal(t, "head:tail", string(bb.Bytes()))
	})

	t.Run("propagates reader errors", func(t *testing.T) {
		readErr := errors.New("read failed")
		bb := NewByteBuffer(16)

		_, err := bb.ReadFrom(io.MultiReader(strings.NewReader("abc"), &failingReader{err: readErr}))
		require.ErrorIs(t, err, readErr)
		require.Equal(t, "abc", string(bb.Bytes()))
	})
}

type failingReader struct{ err error }

func (r *failingReader) Read([]byte) (int, error) { return 0, r.err }

func TestByteBuffer_WriteTo(t *testing.T) {
	bb := NewByteBuffer(16)
	_, _ = bb.Write([]byte("payload"))

	var out bytes.Buffer
	n, err := bb.WriteTo(&out)
	require.NoError(t, err)
	require.Equal(t, int64(7), n)
	require.Equal(t, "payload", out.String())
}

func TestByteBufferPool_MaxThreshold(t *testing.T) {
	t.Run("discards oversized buffers", func(t *testing.T) {
		p := NewByteBufferPool(16, 64)
		bb := p.Get()
		bb.Grow(1024)
		p.Put(bb)

		// The pool may return any buffer, but never one above the threshold.
		got := p.Get()
		require.LessOrEqual(t, cap(got.B), 64)
	})

	t.Run("zero threshold keeps everything", func(t *testing.T) {
		p := NewByteBufferPool(16, 0)
		bb := p.Get()
		bb.Grow(1024)
		require.NotPanics(t, func() { p.Put(bb) })
	})

	t.Run("nil put is ignored", func(t *testing.T) {
		require.NotPanics(t, func() { PutInputBuffer(nil) })
	})
}

func TestInputBuffer_ResetOnPut(t *testing.T) {
	bb := GetInputBuffer()
	_, _ = bb.Write([]byte("stale"))
	PutInputBuffer(bb)

	again := GetInputBuffer()
	defer PutInputBuffer(again)
	require.Equal(t, 0, again.Len())
}

func TestInputBuffer_ConcurrentAccess(t *testing.T) {
	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func(id int) {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				bb := GetInputBuffer()
				_, _ = bb.Write([]byte{byte(id)})
				if bb.Len() != 1 || bb.Bytes()[0] != byte(id) {
					t.Errorf("goroutine %d saw foreign data", id)
				}
				PutInputBuffer(bb)
			}
		}(i)
	}
	wg.Wait()
}
