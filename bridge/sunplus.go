// Copyright 2025 Mark Stamp. All rights reserved.
// Use of this source code is governed by an MIT license that can be found in the LICENSE file.

// SunPlus passthrough. Untested against real silicon; the layout follows
// reverse-engineering notes for the SPIF215A family.

package bridge

import (
	"github.com/markstamp/usbsmart/ata"
	"github.com/markstamp/usbsmart/scsi"
)

type sunPlusBridge struct{}

func (sunPlusBridge) Kind() Kind { return KindSunPlus }

// cdb builds the 12-byte SunPlus CDB. Byte 2 carries a fixed 0x22 marker,
// byte 3 encodes the direction only when a transfer is present, and the
// sector count is duplicated in bytes 4 and 6.
func (sunPlusBridge) cdb(cmd ata.Command, bufLen int) scsi.CDB12 {
	var c scsi.CDB12

	c[0] = scsi.USB_SUNPLUS_ATA_PASSTHROUGH
	c[2] = 0x22
	if bufLen != 0 {
		switch cmd.Direction() {
		case ata.DirectionIn:
			c[3] = 0x10
		case ata.DirectionOut:
			c[3] = 0x11
		}
	}
	c[4] = uint8(bufLen >> sectorShift)
	c[5] = cmd.Features
	c[6] = uint8(bufLen >> sectorShift)
	c[7] = cmd.LbaLow
	c[8] = cmd.LbaMid
	c[9] = cmd.LbaHigh
	c[10] = cmd.Device | 0xa0
	c[11] = cmd.Cmd

	return c
}

func (b sunPlusBridge) Send(tr scsi.CommandTransport, cmd ata.Command, buf []byte, timeout uint32) error {
	c := b.cdb(cmd, len(buf))
	return tr.SendCDB(c[:], scsiDirection(cmd.Direction()), buf, timeout)
}
