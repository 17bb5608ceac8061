// Copyright 2025 Mark Stamp. All rights reserved.
// Use of this source code is governed by an MIT license that can be found in the LICENSE file.

package ata

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDirectionOf(t *testing.T) {
	assert := assert.New(t)

	assert.Equal(DirectionIn, DirectionOf(ATA_IDENTIFY_DEVICE, 0))
	assert.Equal(DirectionIn, DirectionOf(ATA_IDENTIFY_PACKET_DEVICE, 0x55))
	assert.Equal(DirectionIn, DirectionOf(ATA_READ_LOG_EXT, 0))

	// SMART reads data in except for the two writing subcommands
	assert.Equal(DirectionIn, DirectionOf(ATA_SMART, SMART_READ_DATA))
	assert.Equal(DirectionIn, DirectionOf(ATA_SMART, SMART_READ_LOG_SECTOR))
	assert.Equal(DirectionIn, DirectionOf(ATA_SMART, SMART_ENABLE_OPERATIONS))
	assert.Equal(DirectionOut, DirectionOf(ATA_SMART, SMART_RETURN_STATUS))
	assert.Equal(DirectionOut, DirectionOf(ATA_SMART, SMART_WRITE_LOG_SECTOR))

	assert.Equal(DirectionOut, DirectionOf(ATA_DATA_SET_MANAGEMENT, 0))
	assert.Equal(DirectionOut, DirectionOf(ATA_DATA_SET_MANAGEMENT, 0xd0))

	// Unmapped opcodes resolve to non-data
	assert.Equal(DirectionNone, DirectionOf(0x25, 0)) // READ DMA EXT
	assert.Equal(DirectionNone, DirectionOf(0x00, 0))
	assert.Equal(DirectionNone, DirectionOf(0xff, 0xff))
}

func TestCommandDirection(t *testing.T) {
	cmd := Command{Cmd: ATA_SMART, Features: SMART_RETURN_STATUS, LbaMid: SMART_LBA_MID, LbaHigh: SMART_LBA_HIGH}
	assert.Equal(t, DirectionOut, cmd.Direction())
}

func TestDirectionString(t *testing.T) {
	assert.Equal(t, "data-in", DirectionIn.String())
	assert.Equal(t, "data-out", DirectionOut.String())
	assert.Equal(t, "non-data", DirectionNone.String())
}
