// Copyright 2025 Mark Stamp. All rights reserved.
// Use of this source code is governed by an MIT license that can be found in the LICENSE file.

// ATA IDENTIFY DEVICE via bridge probing.

package usbsmart

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"unsafe"

	"github.com/sirupsen/logrus"

	"github.com/markstamp/usbsmart/ata"
	"github.com/markstamp/usbsmart/bridge"
	"github.com/markstamp/usbsmart/scsi"
	"github.com/markstamp/usbsmart/utils"
)

// ErrIdentifyLayout means the in-memory IDENTIFY DEVICE layout does not
// measure 512 bytes on this platform. Interpreting the response would read
// arbitrary offsets, so Identify refuses instead.
var ErrIdentifyLayout = errors.New("IDENTIFY DEVICE structure is not 512 bytes")

// SmartSupport is the tri-state outcome of a SMART capability probe.
type SmartSupport int

const (
	// SmartUnknown means no bridge encoding succeeded. It must never be
	// read as "not SMART capable".
	SmartUnknown SmartSupport = iota
	SmartUnsupported
	SmartSupported
)

func (s SmartSupport) String() string {
	switch s {
	case SmartSupported:
		return "supported"
	case SmartUnsupported:
		return "not supported"
	}
	return "unknown"
}

// IdentifyResult carries the outcome of an IDENTIFY DEVICE probe. Bridge
// records which encoding the device honored so callers can reuse it for
// later commands.
type IdentifyResult struct {
	Bridge bridge.Kind
	Smart  SmartSupport
	Data   ata.IdentifyDeviceData
}

// Identify issues ATA IDENTIFY DEVICE through the bridge probe sequence and
// reports whether the drive advertises SMART. timeout is in milliseconds;
// 0 selects the transport default. On probe exhaustion the result carries
// SmartUnknown and the error from the prober.
func Identify(tr scsi.CommandTransport, timeout uint32) (IdentifyResult, error) {
	res := IdentifyResult{Bridge: bridge.KindUnknown, Smart: SmartUnknown}

	if unsafe.Sizeof(ata.IdentifyDeviceData{}) != 512 {
		return res, ErrIdentifyLayout
	}

	cmd := ata.Command{Cmd: ata.ATA_IDENTIFY_DEVICE}
	buf := utils.AlignedBuffer(ata.SECTOR_SIZE, 0x10)

	kind, err := bridge.Probe(tr, cmd, buf, timeout)
	if err != nil {
		logrus.Debug("no ATA passthrough bridge recognized, SMART capability unknown")
		return res, err
	}
	res.Bridge = kind

	if err := binary.Read(bytes.NewReader(buf), utils.NativeEndian, &res.Data); err != nil {
		return res, fmt.Errorf("decoding IDENTIFY DEVICE data: %w", err)
	}

	if res.Data.SmartSupported() {
		res.Smart = SmartSupported
	} else {
		res.Smart = SmartUnsupported
	}

	logrus.WithFields(logrus.Fields{
		"bridge": res.Bridge.String(),
		"smart":  res.Smart.String(),
	}).Debug("ATA IDENTIFY DEVICE complete")

	return res, nil
}
