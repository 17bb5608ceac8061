// Copyright 2025 Mark Stamp. All rights reserved.
// Use of this source code is governed by an MIT license that can be found in the LICENSE file.

// Miscellaneous utility functions

package utils

import (
	"encoding/binary"
	"fmt"
	"unsafe"
)

var (
	NativeEndian binary.ByteOrder
)

// Determine native endianness of system
func init() {
	i := uint32(1)
	b := (*[4]byte)(unsafe.Pointer(&i))
	if b[0] == 1 {
		NativeEndian = binary.LittleEndian
	} else {
		NativeEndian = binary.BigEndian
	}
}

// SwapBytes swaps the order of every second byte in a byte slice (modifies slice in-place).
// ATA identification strings are stored as arrays of big-endian 16-bit words.
func SwapBytes(s []byte) []byte {
	for i := 0; i < len(s)-1; i += 2 {
		s[i], s[i+1] = s[i+1], s[i]
	}

	return s
}

// AlignedBuffer returns a zeroed byte slice of length size whose backing array
// starts on an address that is a multiple of align. align must be a power of
// two. The SCSI passthrough layer refuses transfer buffers that are not
// 16-byte aligned, and Go's allocator makes no alignment promise beyond the
// type's own.
func AlignedBuffer(size, align int) []byte {
	buf := make([]byte, size+align)
	off := int(uintptr(unsafe.Pointer(&buf[0])) & uintptr(align-1))
	if off != 0 {
		off = align - off
	}

	return buf[off : off+size : off+size]
}

// FormatBytes formats a uint64 byte quantity using human-readble units, e.g. kilobyte, megabyte.
func FormatBytes(v uint64) string {
	var i int

	suffixes := [...]string{"B", "KB", "MB", "GB", "TB", "PB", "EB"}
	d := uint64(1)

	for i = 0; i < len(suffixes)-1; i++ {
		if v >= d*1000 {
			d *= 1000
		} else {
			break
		}
	}

	if i == 0 {
		return fmt.Sprintf("%d %s", v, suffixes[i])
	} else {
		// Print 3 significant digits
		return fmt.Sprintf("%.3g %s", float64(v)/float64(d), suffixes[i])
	}
}
