// Copyright 2025 Mark Stamp. All rights reserved.
// Use of this source code is governed by an MIT license that can be found in the LICENSE file.

// Cypress ATACB passthrough. Untested against real silicon; see the
// cypress_atacb driver in the Linux kernel for the layout.

package bridge

import (
	"github.com/markstamp/usbsmart/ata"
	"github.com/markstamp/usbsmart/scsi"
)

type cypressBridge struct{}

func (cypressBridge) Kind() Kind { return KindCypress }

// cdb builds the 16-byte Cypress ATACB CDB. The passthrough opcode is
// repeated in bytes 0 and 1, byte 3 masks which taskfile registers the
// bridge loads, and byte 2 bit 7 selects the IDENTIFY response translation.
func (cypressBridge) cdb(cmd ata.Command, bufLen int) scsi.CDB16 {
	var c scsi.CDB16

	c[0] = scsi.USB_CYPRESS_ATA_PASSTHROUGH
	c[1] = scsi.USB_CYPRESS_ATA_PASSTHROUGH
	if cmd.Cmd == ata.ATA_IDENTIFY_DEVICE || cmd.Cmd == ata.ATA_IDENTIFY_PACKET_DEVICE {
		c[2] = 1 << 7 // IdentifyPacketDevice
	}
	c[3] = 0xff - (1 << 0) - (1 << 6) // load features, sector count, LBA low/mid/high
	c[4] = 1                          // units in blocks rather than bytes

	c[6] = cmd.Features
	c[7] = uint8(bufLen >> sectorShift)
	c[8] = cmd.LbaLow
	c[9] = cmd.LbaMid
	c[10] = cmd.LbaHigh
	c[11] = cmd.Device
	c[12] = cmd.Cmd

	return c
}

func (b cypressBridge) Send(tr scsi.CommandTransport, cmd ata.Command, buf []byte, timeout uint32) error {
	c := b.cdb(cmd, len(buf))
	return tr.SendCDB(c[:], scsiDirection(cmd.Direction()), buf, timeout)
}
