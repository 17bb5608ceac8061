// Copyright 2025 Mark Stamp. All rights reserved.
// Use of this source code is governed by an MIT license that can be found in the LICENSE file.

// ATA command definitions.

package ata

const (
	// ATA commands
	ATA_DATA_SET_MANAGEMENT    = 0x06
	ATA_READ_LOG_EXT           = 0x2f
	ATA_SMART                  = 0xb0
	ATA_IDENTIFY_PACKET_DEVICE = 0xa1
	ATA_IDENTIFY_DEVICE        = 0xec

	// ATA feature register values for SMART
	SMART_READ_DATA          = 0xd0
	SMART_ATTR_AUTOSAVE      = 0xd2
	SMART_IMMEDIATE_OFFLINE  = 0xd4
	SMART_READ_LOG_SECTOR    = 0xd5
	SMART_WRITE_LOG_SECTOR   = 0xd6
	SMART_ENABLE_OPERATIONS  = 0xd8
	SMART_DISABLE_OPERATIONS = 0xd9
	SMART_RETURN_STATUS      = 0xda

	// LBA mid/high signature values for SMART commands
	SMART_LBA_MID  = 0x4f
	SMART_LBA_HIGH = 0xc2

	SECTOR_SIZE = 512
)
