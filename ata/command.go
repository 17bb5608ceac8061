// Copyright 2025 Mark Stamp. All rights reserved.
// Use of this source code is governed by an MIT license that can be found in the LICENSE file.

// ATA taskfile commands and data direction resolution.

package ata

// Direction indicates how an ATA command moves data relative to the host.
type Direction int

const (
	DirectionNone Direction = iota
	DirectionIn
	DirectionOut
)

func (d Direction) String() string {
	switch d {
	case DirectionIn:
		return "data-in"
	case DirectionOut:
		return "data-out"
	}
	return "non-data"
}

// Command is an ATA command in 28-bit taskfile form: the command opcode, the
// features register, the 24-bit LBA split across three registers, and the
// device/head register. Commands are cheap values, constructed fresh per
// request.
type Command struct {
	Cmd      uint8
	Features uint8
	LbaLow   uint8
	LbaMid   uint8
	LbaHigh  uint8
	Device   uint8 // must be 0 for IDENTIFY DEVICE
}

// DirectionOf resolves the data direction of an ATA command from its opcode
// and features register. Far from complete -- only the commands the bridge
// encoders may issue are mapped; anything else resolves to non-data.
func DirectionOf(cmd, features uint8) Direction {
	// Most SMART subcommands read from the device. RETURN STATUS and
	// WRITE LOG SECTOR are the two exceptions.
	smartOut := cmd == ATA_SMART &&
		(features == SMART_RETURN_STATUS || features == SMART_WRITE_LOG_SECTOR)

	switch cmd {
	case ATA_IDENTIFY_DEVICE, ATA_IDENTIFY_PACKET_DEVICE, ATA_READ_LOG_EXT:
		return DirectionIn
	case ATA_SMART:
		if !smartOut {
			return DirectionIn
		}
		return DirectionOut
	case ATA_DATA_SET_MANAGEMENT:
		return DirectionOut
	default:
		return DirectionNone
	}
}

// Direction resolves the data direction of the command.
func (c Command) Direction() Direction {
	return DirectionOf(c.Cmd, c.Features)
}
