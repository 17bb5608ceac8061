// Copyright 2025 Mark Stamp. All rights reserved.
// Use of this source code is governed by an MIT license that can be found in the LICENSE file.

// JMicron and Prolific passthrough. The two chipset families share a CDB
// shape; the Prolific PL3507 form is the JMicron CDB trimmed of its two
// trailer bytes. The Prolific variant is untested against real silicon and
// follows reverse-engineering notes.

package bridge

import (
	"github.com/markstamp/usbsmart/ata"
	"github.com/markstamp/usbsmart/scsi"
)

type jmicronBridge struct {
	prolific bool
}

func (b jmicronBridge) Kind() Kind {
	if b.prolific {
		return KindProlific
	}
	return KindJMicron
}

// cdb builds the 14-byte JMicron CDB, or its 12-byte Prolific form. The mode
// byte is 0x00 only for host-to-device transfers with a payload; everything
// else uses 0x10. The transfer length appears twice: as a 16-bit byte count
// and as a sector count.
func (b jmicronBridge) cdb(cmd ata.Command, bufLen int) []byte {
	c := make([]byte, 14)

	c[0] = scsi.USB_JMICRON_ATA_PASSTHROUGH
	if bufLen != 0 && cmd.Direction() == ata.DirectionOut {
		c[1] = 0x00
	} else {
		c[1] = 0x10
	}
	c[3] = uint8(bufLen >> 8)
	c[4] = uint8(bufLen)
	c[5] = cmd.Features
	c[6] = uint8(bufLen >> sectorShift) // sector count
	c[7] = cmd.LbaLow
	c[8] = cmd.LbaMid
	c[9] = cmd.LbaHigh
	c[10] = cmd.Device
	c[11] = cmd.Cmd
	// JM20337 chip revision trailer
	c[12] = 0x06
	c[13] = 0x7b

	if b.prolific {
		return c[:12]
	}
	return c
}

func (b jmicronBridge) Send(tr scsi.CommandTransport, cmd ata.Command, buf []byte, timeout uint32) error {
	return tr.SendCDB(b.cdb(cmd, len(buf)), scsiDirection(cmd.Direction()), buf, timeout)
}
