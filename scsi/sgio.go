// Copyright 2025 Mark Stamp. All rights reserved.
// Use of this source code is governed by an MIT license that can be found in the LICENSE file.

// SCSI generic IO functions.

package scsi

import (
	"fmt"
	"unsafe"

	"golang.org/x/sys/unix"
)

// DataDirection selects the transfer direction of a SCSI command, expressed
// as the SG_DXFER_* values from <scsi/sg.h>.
type DataDirection int32

const (
	DirectionNone DataDirection = -1 // SG_DXFER_NONE
	DirectionOut  DataDirection = -2 // SG_DXFER_TO_DEV
	DirectionIn   DataDirection = -3 // SG_DXFER_FROM_DEV
)

const (
	SG_IO = 0x2285

	// Host adapter status indicating a timed-out command
	DID_TIME_OUT = 0x03

	// Timeout in milliseconds
	DEFAULT_TIMEOUT = 20000

	senseBufLen = 32
)

// CommandTransport issues a raw SCSI CDB plus transfer buffer to a device and
// waits for completion. Device is the SG_IO-backed implementation; the bridge
// package accepts the interface so encoders can be exercised without
// hardware. The buffer must not be reused by the caller while a call is
// outstanding.
type CommandTransport interface {
	SendCDB(cdb []byte, dir DataDirection, buf []byte, timeout uint32) error
}

// SCSI generic ioctl header, defined as sg_io_hdr_t in <scsi/sg.h>
type sgIoHdr struct {
	interface_id    int32   // 'S' for SCSI generic (required)
	dxfer_direction int32   // data transfer direction
	cmd_len         uint8   // SCSI command length (<= 16 bytes)
	mx_sb_len       uint8   // max length to write to sbp
	iovec_count     uint16  // 0 implies no scatter gather
	dxfer_len       uint32  // byte count of data transfer
	dxferp          uintptr // points to data transfer memory or scatter gather list
	cmdp            uintptr // points to command to perform
	sbp             uintptr // points to sense_buffer memory
	timeout         uint32  // MAX_UINT -> no timeout (unit: millisec)
	flags           uint32  // 0 -> default, see SG_FLAG...
	pack_id         int32   // unused internally (normally)
	usr_ptr         uintptr // unused internally
	status          uint8   // SCSI status
	masked_status   uint8   // shifted, masked scsi status
	msg_status      uint8   // messaging level data (optional)
	sb_len_wr       uint8   // byte count actually written to sbp
	host_status     uint16  // errors from host adapter
	driver_status   uint16  // errors from software driver
	resid           int32   // dxfer_len - actual_transferred
	duration        uint32  // time taken by cmd (unit: millisec)
	info            uint32  // auxiliary information
}

// Device is an open SCSI device node. The file descriptor is owned by the
// caller of Open; Device performs no retries and keeps no state across
// calls, so one Device may serve sequential commands but a transfer buffer
// belongs to a single in-flight command.
type Device struct {
	Name string
	fd   int
}

// Open opens a device node for raw SCSI command issuance.
func Open(name string) (*Device, error) {
	fd, err := unix.Open(name, unix.O_RDWR, 0o600)
	if err != nil {
		return nil, fmt.Errorf("cannot open device %s: %w", name, err)
	}

	return &Device{Name: name, fd: fd}, nil
}

func (d *Device) Close() error {
	return unix.Close(d.fd)
}

// SendCDB validates the request and submits it through the SG_IO ioctl.
// Validation failures abort before any I/O. A timeout of 0 selects
// DEFAULT_TIMEOUT. The command runs to completion or timeout; there is no
// mid-flight abort.
func (d *Device) SendCDB(cdb []byte, dir DataDirection, buf []byte, timeout uint32) error {
	if len(cdb) == 0 || len(cdb) > 16 {
		return ErrCDBLength
	}

	if len(buf) > 0xffff || (len(buf) > 0 && uintptr(unsafe.Pointer(&buf[0]))%0x10 != 0) {
		return ErrBuffer
	}

	switch dir {
	case DirectionNone, DirectionIn, DirectionOut:
	default:
		return ErrDirection
	}

	// http://en.wikipedia.org/wiki/SCSI_command
	if cdb[0] == 0x7e || cdb[0] == 0x7f {
		return ErrExtendedCDB
	}

	// Opcodes above 0xc0 are unsupported, apart from the special
	// JMicron/SunPlus passthrough modes
	if cdb[0] >= 0xc0 && cdb[0] != USB_JMICRON_ATA_PASSTHROUGH &&
		cdb[0] != USB_SUNPLUS_ATA_PASSTHROUGH {
		return ErrCDBOpcode
	}

	if timeout == 0 {
		timeout = DEFAULT_TIMEOUT
	}

	senseBuf := make([]byte, senseBufLen)

	hdr := sgIoHdr{
		interface_id:    'S',
		dxfer_direction: int32(dir),
		timeout:         timeout,
		cmd_len:         uint8(len(cdb)),
		mx_sb_len:       uint8(len(senseBuf)),
		cmdp:            uintptr(unsafe.Pointer(&cdb[0])),
		sbp:             uintptr(unsafe.Pointer(&senseBuf[0])),
	}

	if len(buf) > 0 {
		hdr.dxfer_len = uint32(len(buf))
		hdr.dxferp = uintptr(unsafe.Pointer(&buf[0]))
	}

	if err := ioctl(uintptr(d.fd), SG_IO, uintptr(unsafe.Pointer(&hdr))); err != nil {
		switch err {
		case unix.EINVAL:
			return ErrInvalidParameter
		case unix.ETIMEDOUT:
			return ErrTimeout
		default:
			return fmt.Errorf("SG_IO ioctl: %w", err)
		}
	}

	if hdr.host_status == DID_TIME_OUT {
		return ErrTimeout
	}

	if hdr.status != 0 {
		return &StatusError{Status: hdr.status}
	}

	return nil
}
