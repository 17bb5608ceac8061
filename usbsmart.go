// Copyright 2025 Mark Stamp. All rights reserved.
// Use of this source code is governed by an MIT license that can be found in the LICENSE file.

// Package usbsmart probes storage devices behind USB mass-storage bridges
// for ATA passthrough support and SMART capability.
package usbsmart

import (
	"path/filepath"
)

// ScanDevices returns the device nodes of attached SCSI disks.
func ScanDevices() []string {
	// Find all SCSI disk devices, skipping partitions
	files, err := filepath.Glob("/dev/sd*[^0-9]")
	if err != nil {
		return nil
	}

	return files
}
