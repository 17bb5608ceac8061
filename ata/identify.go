// Copyright 2025 Mark Stamp. All rights reserved.
// Use of this source code is governed by an MIT license that can be found in the LICENSE file.

// ATA IDENTIFY DEVICE response layout and accessors.

package ata

import (
	"strings"

	"github.com/markstamp/usbsmart/utils"
)

// IdentifyDeviceData is the 512-byte ATA IDENTIFY DEVICE response. Field
// positions follow the word offsets of T13/1699-D (ATA8-ACS); every field is
// naturally aligned so the struct carries no hidden padding. The word 82
// command-set-support field is the load-bearing one here -- bit 0 advertises
// the SMART feature set.
type IdentifyDeviceData struct {
	GeneralConfiguration   uint16    // word 0
	NumCylinders           uint16    // word 1
	SpecificConfiguration  uint16    // word 2
	NumHeads               uint16    // word 3
	Retired1               [2]uint16 // words 4-5
	NumSectorsPerTrack     uint16    // word 6
	VendorUnique1          [3]uint16 // words 7-9
	SerialNumber           [20]byte  // words 10-19
	Retired2               [2]uint16 // words 20-21
	Obsolete1              uint16    // word 22
	FirmwareRevision       [8]byte   // words 23-26
	ModelNumber            [40]byte  // words 27-46
	MaxBlockTransfer       uint8     // word 47
	VendorUnique2          uint8
	TrustedComputing       uint16     // word 48
	Capabilities           [2]uint16  // words 49-50
	ObsoleteWords51        [2]uint16  // words 51-52
	_                      [7]uint16  // words 53-59
	UserAddressableSectors uint32     // words 60-61
	_                      [18]uint16 // words 62-79
	MajorVersion           uint16     // word 80
	MinorVersion           uint16     // word 81
	CommandSetSupport      [3]uint16  // words 82-84
	CommandSetActive       [3]uint16  // words 85-87
	_                      [336]byte  // words 88-255
}

// SmartSupported reports whether the drive advertises the SMART feature set
// (word 82, bit 0).
func (id *IdentifyDeviceData) SmartSupported() bool {
	return id.CommandSetSupport[0]&0x0001 != 0
}

// SmartEnabled reports whether the SMART feature set is currently enabled
// (word 85, bit 0).
func (id *IdentifyDeviceData) SmartEnabled() bool {
	return id.CommandSetActive[0]&0x0001 != 0
}

// Serial returns the drive serial number as a printable string.
func (id *IdentifyDeviceData) Serial() string {
	return ataString(id.SerialNumber[:])
}

// Firmware returns the firmware revision as a printable string.
func (id *IdentifyDeviceData) Firmware() string {
	return ataString(id.FirmwareRevision[:])
}

// Model returns the model number as a printable string.
func (id *IdentifyDeviceData) Model() string {
	return ataString(id.ModelNumber[:])
}

// Capacity returns the 28-bit addressable capacity in bytes (words 60-61).
func (id *IdentifyDeviceData) Capacity() uint64 {
	return uint64(id.UserAddressableSectors) * SECTOR_SIZE
}

func ataString(b []byte) string {
	return strings.TrimSpace(string(utils.SwapBytes(append([]byte(nil), b...))))
}
