// Copyright 2025 Mark Stamp. All rights reserved.
// Use of this source code is governed by an MIT license that can be found in the LICENSE file.

package utils

import (
	"testing"
	"unsafe"

	"github.com/stretchr/testify/assert"
)

func TestSwapBytes(t *testing.T) {
	assert := assert.New(t)

	assert.Equal([]byte("badcfe"), SwapBytes([]byte("abcdef")))
	assert.Equal([]byte("ba"), SwapBytes([]byte("ab")))
	assert.Equal([]byte{}, SwapBytes([]byte{}))

	// Odd-length slices leave the last byte untouched
	assert.Equal([]byte("bac"), SwapBytes([]byte("abc")))
}

func TestAlignedBuffer(t *testing.T) {
	assert := assert.New(t)

	for _, size := range []int{16, 512, 4096} {
		buf := AlignedBuffer(size, 0x10)
		assert.Len(buf, size)
		assert.Zero(uintptr(unsafe.Pointer(&buf[0])) & 0xf)
	}
}

func TestFormatBytes(t *testing.T) {
	assert := assert.New(t)

	assert.Equal("0 B", FormatBytes(0))
	assert.Equal("999 B", FormatBytes(999))
	assert.Equal("1 KB", FormatBytes(1000))
	assert.Equal("500 GB", FormatBytes(500107862016))
}
