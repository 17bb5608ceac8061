// Copyright 2025 Mark Stamp. All rights reserved.
// Use of this source code is governed by an MIT license that can be found in the LICENSE file.

// Package bridge encodes ATA commands into the vendor-specific CDB formats
// of USB-to-ATA/SATA bridge chipsets.
//
// USB enclosures speak SCSI at the USB layer even when the drive behind them
// is ATA/SATA. Every bridge vendor exposes the underlying drive through its
// own ATA passthrough CDB encoding; this package implements the five known
// ones and a fixed-order prober that discovers which encoding a device
// honors.
package bridge

import (
	"github.com/markstamp/usbsmart/ata"
	"github.com/markstamp/usbsmart/scsi"
)

// Buffer length to sector count conversion
const sectorShift = 9

// Kind identifies one of the supported bridge CDB encodings.
type Kind int

const (
	KindUnknown Kind = iota
	KindSAT
	KindJMicron
	KindProlific
	KindSunPlus
	KindCypress
)

func (k Kind) String() string {
	switch k {
	case KindSAT:
		return "SAT"
	case KindJMicron:
		return "JMicron"
	case KindProlific:
		return "Prolific"
	case KindSunPlus:
		return "SunPlus"
	case KindCypress:
		return "Cypress"
	}
	return "unknown"
}

// A Passthrough encodes an ATA command into one bridge's CDB format and
// issues it through a SCSI transport. Implementations are stateless values;
// CDB construction is deterministic, so the same command and buffer length
// always produce identical bytes.
type Passthrough interface {
	Kind() Kind

	// Send encodes cmd for a transfer of len(buf) bytes and submits it.
	Send(tr scsi.CommandTransport, cmd ata.Command, buf []byte, timeout uint32) error
}

// scsiDirection maps an ATA data direction onto the SG transfer direction.
func scsiDirection(d ata.Direction) scsi.DataDirection {
	switch d {
	case ata.DirectionIn:
		return scsi.DirectionIn
	case ata.DirectionOut:
		return scsi.DirectionOut
	}
	return scsi.DirectionNone
}
