// Copyright 2025 Mark Stamp. All rights reserved.
// Use of this source code is governed by an MIT license that can be found in the LICENSE file.

package scsi

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/markstamp/usbsmart/utils"
)

func TestSendCDBValidation(t *testing.T) {
	assert := assert.New(t)

	// Validation runs before any I/O, so a dead fd never gets touched by
	// the cases below.
	d := &Device{Name: "fake", fd: -1}
	buf := utils.AlignedBuffer(512, 0x10)
	cdb := CDB12{SCSI_ATA_PASSTHRU_12}

	// CDB length must be in (0, 16]
	assert.ErrorIs(d.SendCDB(nil, DirectionIn, buf, 0), ErrCDBLength)
	assert.ErrorIs(d.SendCDB([]byte{}, DirectionIn, buf, 0), ErrCDBLength)
	assert.ErrorIs(d.SendCDB(make([]byte, 17), DirectionIn, buf, 0), ErrCDBLength)

	// Misaligned buffer
	assert.ErrorIs(d.SendCDB(cdb[:], DirectionIn, buf[1:], 0), ErrBuffer)

	// Oversized buffer
	big := utils.AlignedBuffer(0x10000, 0x10)
	assert.ErrorIs(d.SendCDB(cdb[:], DirectionIn, big, 0), ErrBuffer)

	// Unrecognized direction
	assert.ErrorIs(d.SendCDB(cdb[:], DataDirection(0), buf, 0), ErrDirection)
	assert.ErrorIs(d.SendCDB(cdb[:], DataDirection(-4), buf, 0), ErrDirection)

	// 0x7e/0x7f are reserved for extended CDBs
	assert.ErrorIs(d.SendCDB([]byte{0x7e, 0, 0, 0, 0, 0}, DirectionNone, nil, 0), ErrExtendedCDB)
	assert.ErrorIs(d.SendCDB([]byte{0x7f, 0, 0, 0, 0, 0}, DirectionNone, nil, 0), ErrExtendedCDB)

	// Vendor range is rejected except for the two known passthrough opcodes
	assert.ErrorIs(d.SendCDB([]byte{0xc0, 0, 0, 0, 0, 0}, DirectionNone, nil, 0), ErrCDBOpcode)
	assert.ErrorIs(d.SendCDB([]byte{0xc1, 0, 0, 0, 0, 0}, DirectionNone, nil, 0), ErrCDBOpcode)
	assert.ErrorIs(d.SendCDB([]byte{0xff, 0, 0, 0, 0, 0}, DirectionNone, nil, 0), ErrCDBOpcode)
}

func TestSendCDBVendorOpcodes(t *testing.T) {
	assert := assert.New(t)

	// The JMicron and SunPlus passthrough opcodes clear validation; with a
	// dead fd the failure then comes from the ioctl, not the opcode check.
	d := &Device{Name: "fake", fd: -1}

	err := d.SendCDB([]byte{USB_JMICRON_ATA_PASSTHROUGH, 0, 0, 0, 0, 0}, DirectionNone, nil, 0)
	assert.Error(err)
	assert.NotErrorIs(err, ErrCDBOpcode)

	err = d.SendCDB([]byte{USB_SUNPLUS_ATA_PASSTHROUGH, 0, 0, 0, 0, 0}, DirectionNone, nil, 0)
	assert.Error(err)
	assert.NotErrorIs(err, ErrCDBOpcode)
}

func TestStatusError(t *testing.T) {
	err := &StatusError{Status: 0x28}
	assert.Equal(t, "SCSI status: 0x28", err.Error())
}
