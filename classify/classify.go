// Copyright 2025 Mark Stamp. All rights reserved.
// Use of this source code is governed by an MIT license that can be found in the LICENSE file.

// Package classify guesses whether a USB storage device is a rotating hard
// disk or a flash device.
//
// There is no reliable way to tell the two apart: flash drives report
// themselves as non-removable, some carry SMART, SSDs muddy everything, and
// at least one vendor ships both flash controllers and ATA bridges under the
// same vendor ID. The score here is a likelihood hint for callers that want
// to warn before destructive operations, nothing more.
package classify

import (
	"os"
	"sort"
	"strings"

	"gopkg.in/yaml.v2"
)

// DriveType mirrors the fixed/removable flag callers obtain from the OS.
type DriveType int

const (
	DriveUnknown DriveType = iota
	DriveRemovable
	DriveFixed
)

// ModelScore scores device identification strings that start with a known
// hard disk manufacturer prefix. A trailing '#' in the prefix stands for
// "followed by an ASCII digit".
type ModelScore struct {
	Prefix string `yaml:"prefix"`
	Score  int    `yaml:"score"`
}

// VendorScore scores USB vendor IDs of known USB-to-IDE/SATA bridge or drive
// manufacturers.
type VendorScore struct {
	VID   uint16 `yaml:"vid"`
	Score int    `yaml:"score"`
}

// SignatureDb holds the scoring tables. The model table must stay sorted by
// prefix length; scoring stops at the first entry longer than the input.
type SignatureDb struct {
	Models  []ModelScore  `yaml:"models"`
	Vendors []VendorScore `yaml:"vendors"`
}

// Disk identification prefixes that suggest a hard disk. The info from
// http://knowledge.seagate.com/articles/en_US/FAQ/204763en is a start, but
// some models carry the manufacturer name instead of the model prefix.
var defaultModels = []ModelScore{
	{"HP ", 10},
	{"ST#", 10},
	{"MX#", 10},
	{"WDC", 10},
	{"IBM", 10},
	{"STM#", 10},
	{"HTS#", 10},
	{"MAXTOR", 10},
	{"HITACHI", 10},
	{"SEAGATE", 10},
	{"SAMSUNG", 10},
	{"FUJITSU", 10},
	{"TOSHIBA", 10},
	{"QUANTUM", 10},
}

// Known bridge and drive manufacturer vendor IDs, per
// http://www.linux-usb.org/usb.ids
var defaultVendors = []VendorScore{
	{0x04b4, 10}, // Cypress
	{0x067b, 10}, // Prolific
	{0x0bc2, 10}, // Seagate
	{0x152d, 10}, // JMicron
}

// Default returns a copy of the built-in signature database.
func Default() *SignatureDb {
	return &SignatureDb{
		Models:  append([]ModelScore(nil), defaultModels...),
		Vendors: append([]VendorScore(nil), defaultVendors...),
	}
}

// Open reads a YAML signature database and merges it over the built-in
// tables, re-sorting the model table to keep the length short-circuit valid.
func Open(path string) (*SignatureDb, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var extra SignatureDb
	if err := yaml.NewDecoder(f).Decode(&extra); err != nil {
		return nil, err
	}

	db := Default()
	db.Models = append(db.Models, extra.Models...)
	db.Vendors = append(db.Vendors, extra.Vendors...)

	sort.SliceStable(db.Models, func(i, j int) bool {
		return len(db.Models[i].Prefix) < len(db.Models[j].Prefix)
	})

	return db, nil
}

// matchPrefix reports whether model starts with the table prefix, honoring
// the trailing-digit wildcard. Matching is case-insensitive.
func matchPrefix(model, prefix string) bool {
	if len(model) < len(prefix) {
		return false
	}

	literal := prefix
	wildcard := strings.HasSuffix(prefix, "#")
	if wildcard {
		literal = prefix[:len(prefix)-1]
	}

	if !strings.EqualFold(model[:len(literal)], literal) {
		return false
	}
	if wildcard {
		next := model[len(literal)]
		return next >= '0' && next <= '9'
	}
	return true
}

// Score combines the drive-type flag, USB vendor ID and device
// identification string into an HDD likelihood score: +3 for a fixed drive,
// +10 for the first matching model prefix, +10 for a matching vendor ID.
// Larger means more likely a hard disk; the scale is not a probability and
// no upper bound or monotonicity with ground truth is promised.
func (db *SignatureDb) Score(driveType DriveType, vid uint16, model string) int {
	score := 0

	if driveType == DriveFixed {
		score += 3
	}

	for _, m := range db.Models {
		// Sorted by length; nothing further can match.
		if len(m.Prefix) > len(model) {
			break
		}
		if matchPrefix(model, m.Prefix) {
			score += m.Score
			break
		}
	}

	for _, v := range db.Vendors {
		if v.VID == vid {
			score += v.Score
			break
		}
	}

	return score
}

// Score scores against the built-in signature tables.
func Score(driveType DriveType, vid uint16, model string) int {
	return Default().Score(driveType, vid, model)
}
