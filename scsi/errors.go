// Copyright 2025 Mark Stamp. All rights reserved.
// Use of this source code is governed by an MIT license that can be found in the LICENSE file.

// Transport error taxonomy.

package scsi

import (
	"errors"
	"fmt"
)

// Validation errors, in the order the checks run. Each is returned before
// any I/O is attempted and is never retried.
var (
	ErrCDBLength   = errors.New("invalid CDB length")
	ErrBuffer      = errors.New("buffer must be aligned to 16 bytes and less than 64 KB in size")
	ErrDirection   = errors.New("invalid data direction")
	ErrExtendedCDB = errors.New("extended and variable length CDB commands are not supported")
	ErrCDBOpcode   = errors.New("opcodes above 0xc0 are not supported")
)

// Transport-level failures reported after submission.
var (
	ErrTimeout          = errors.New("SCSI command timed out")
	ErrInvalidParameter = errors.New("invalid SG_IO parameter")
)

// StatusError is a nonzero SCSI status byte returned by the device. From the
// bridge prober's point of view it is recoverable: the bridge simply did not
// understand the encoding, and the next one should be tried.
type StatusError struct {
	Status uint8
}

func (e *StatusError) Error() string {
	// See http://www.t10.org/lists/2status.htm for SCSI status codes
	return fmt.Sprintf("SCSI status: %#02x", e.Status)
}
