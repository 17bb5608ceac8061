// Copyright 2025 Mark Stamp. All rights reserved.
// Use of this source code is governed by an MIT license that can be found in the LICENSE file.

// SCSI / ATA Translation (SAT) passthrough.
//
// See T10 document 04-262r8 (SAT) and T13/1699-D (ATA8-ACS).

package bridge

import (
	"errors"

	"github.com/markstamp/usbsmart/ata"
	"github.com/markstamp/usbsmart/scsi"
)

var errSectorMultiple = errors.New("buffer length must be a multiple of the 512-byte sector size")

// satBridge is the standards-based 12-byte ATA PASS-THROUGH encoding. Most
// bridges that support passthrough at all honor this one.
type satBridge struct{}

func (satBridge) Kind() Kind { return KindSAT }

// cdb builds the 12-byte SAT CDB for cmd with a transfer of bufLen bytes.
// SAT specifies transfer lengths in whole sectors, so bufLen must be a
// multiple of 512.
func (satBridge) cdb(cmd ata.Command, bufLen int) (scsi.CDB12, error) {
	var c scsi.CDB12

	if bufLen%ata.SECTOR_SIZE != 0 {
		return c, errSectorMultiple
	}

	extend := 0    // for 48-bit ATA commands (unused here)
	ckCond := 0    // set to 1 to read register(s) back
	protocol := 3  // non-data
	tDir := 1      // 0 -> to device, 1 -> from device
	byteBlock := 1 // 0 -> bytes, 1 -> 512-byte blocks
	tLength := 0   // 0 -> no data transferred

	if bufLen != 0 {
		switch cmd.Direction() {
		case ata.DirectionIn:
			protocol = 4 // PIO data-in
			tLength = 2  // transfer length is in the sector count field
		case ata.DirectionOut:
			protocol = 5 // PIO data-out
			tLength = 2
			tDir = 0 // to device
		}
	}

	c[0] = scsi.SCSI_ATA_PASSTHRU_12
	c[1] = uint8(protocol<<1 | extend)
	c[2] = uint8(ckCond<<5 | tDir<<3 | byteBlock<<2 | tLength)
	c[3] = cmd.Features
	c[4] = uint8(bufLen >> sectorShift) // sector count
	c[5] = cmd.LbaLow
	c[6] = cmd.LbaMid
	c[7] = cmd.LbaHigh
	c[8] = cmd.Device
	c[9] = cmd.Cmd

	return c, nil
}

func (b satBridge) Send(tr scsi.CommandTransport, cmd ata.Command, buf []byte, timeout uint32) error {
	c, err := b.cdb(cmd, len(buf))
	if err != nil {
		return err
	}

	return tr.SendCDB(c[:], scsiDirection(cmd.Direction()), buf, timeout)
}
