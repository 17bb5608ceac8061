// Copyright 2025 Mark Stamp. All rights reserved.
// Use of this source code is governed by an MIT license that can be found in the LICENSE file.

// Bridge discovery by sequential probing.

package bridge

import (
	"errors"

	"github.com/sirupsen/logrus"

	"github.com/markstamp/usbsmart/ata"
	"github.com/markstamp/usbsmart/scsi"
)

// ErrNoBridge is returned by Probe when no supported bridge encoding
// succeeded. It means the passthrough capability is unknown, not absent.
var ErrNoBridge = errors.New("no supported ATA passthrough bridge")

// bridges is the fixed probe order. SAT is the standards-based encoding most
// bridges honor and goes first to minimize wasted attempts; the vendor
// encodings follow in order of historical prevalence. The table is read-only
// and safe for concurrent use.
var bridges = []Passthrough{
	satBridge{},
	jmicronBridge{},
	jmicronBridge{prolific: true},
	sunPlusBridge{},
	cypressBridge{},
}

// Probe tries each bridge encoding in turn until one accepts cmd, and
// returns the encoding that worked so callers can reuse it. One attempt per
// encoding; a failure on one encoding never affects the next, and nonzero
// SCSI status and transport errors alike fall through to the next entry.
// After exhausting the table, Probe returns KindUnknown and ErrNoBridge.
func Probe(tr scsi.CommandTransport, cmd ata.Command, buf []byte, timeout uint32) (Kind, error) {
	for _, b := range bridges {
		if err := b.Send(tr, cmd, buf, timeout); err != nil {
			logrus.WithField("bridge", b.Kind().String()).Debugf("passthrough failed: %v", err)
			continue
		}

		logrus.WithField("bridge", b.Kind().String()).Debug("passthrough succeeded")
		return b.Kind(), nil
	}

	return KindUnknown, ErrNoBridge
}
