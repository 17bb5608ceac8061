// Copyright 2025 Mark Stamp. All rights reserved.
// Use of this source code is governed by an MIT license that can be found in the LICENSE file.

// SCSI command definitions.

package scsi

const (
	// SCSI commands used by this package
	SCSI_INQUIRY         = 0x12
	SCSI_ATA_PASSTHRU_12 = 0xa1
	SCSI_ATA_PASSTHRU_16 = 0x85

	// Vendor-specific ATA passthrough opcodes used by USB bridge chipsets.
	// These sit in the vendor range above 0xc0 and are the only opcodes in
	// that range the transport accepts.
	USB_CYPRESS_ATA_PASSTHROUGH = 0x24
	USB_JMICRON_ATA_PASSTHROUGH = 0xdf
	USB_SUNPLUS_ATA_PASSTHROUGH = 0xf8

	// Minimum length of standard INQUIRY response
	INQ_REPLY_LEN = 36
)

// SCSI CDB types
type (
	CDB6  [6]byte
	CDB12 [12]byte
	CDB14 [14]byte
	CDB16 [16]byte
)
