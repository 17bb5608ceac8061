// Copyright 2025 Mark Stamp. All rights reserved.
// Use of this source code is governed by an MIT license that can be found in the LICENSE file.

package classify

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScore(t *testing.T) {
	assert := assert.New(t)

	// fixed (+3) + "ST" followed by a digit (+10) + Seagate VID (+10)
	assert.Equal(23, Score(DriveFixed, 0x0bc2, "ST1000DM003"))

	// no signal at all
	assert.Equal(0, Score(DriveRemovable, 0x0951, "Cruzer Blade"))

	// fixed (+3) + manufacturer name (+10), unknown VID
	assert.Equal(13, Score(DriveFixed, 0x0000, "SAMSUNG HD103SJ"))

	// VID-only match: a flash stick behind a JMicron bridge
	assert.Equal(10, Score(DriveRemovable, 0x152d, "Cruzer Blade"))

	// drive-type flag alone
	assert.Equal(3, Score(DriveFixed, 0x0000, ""))
	assert.Equal(0, Score(DriveRemovable, 0x0000, ""))
	assert.Equal(0, Score(DriveUnknown, 0x0000, ""))
}

func TestScoreModelMatching(t *testing.T) {
	assert := assert.New(t)

	// Matching is case-insensitive
	assert.Equal(10, Score(DriveUnknown, 0, "wdc wd10ears"))
	assert.Equal(10, Score(DriveUnknown, 0, "seagate expansion"))

	// The wildcard needs an actual digit after the literal
	assert.Equal(0, Score(DriveUnknown, 0, "STX"))
	assert.Equal(10, Score(DriveUnknown, 0, "STM3250310AS"))
	assert.Equal(10, Score(DriveUnknown, 0, "HTS541010A9E680"))

	// A string shorter than every prefix never matches
	assert.Equal(0, Score(DriveUnknown, 0, "ST"))
	assert.Equal(0, Score(DriveUnknown, 0, ""))

	// First matching entry only, no double counting
	assert.Equal(10, Score(DriveUnknown, 0, "ST1000 SEAGATE"))
}

func TestMatchPrefix(t *testing.T) {
	assert := assert.New(t)

	assert.True(matchPrefix("ST1000DM003", "ST#"))
	assert.False(matchPrefix("STX000", "ST#"))
	assert.False(matchPrefix("ST", "ST#"))
	assert.True(matchPrefix("HP 123", "HP "))
	assert.False(matchPrefix("H", "HP "))
	assert.True(matchPrefix("hitachi hts", "HITACHI"))
}

func TestOpenSignatureDb(t *testing.T) {
	assert := assert.New(t)
	require := require.New(t)

	path := filepath.Join(t.TempDir(), "signatures.yaml")
	require.NoError(os.WriteFile(path, []byte(`models:
  - prefix: "EXCELSTOR"
    score: 10
  - prefix: "HD#"
    score: 5
vendors:
  - vid: 0x1058
    score: 10
`), 0o644))

	db, err := Open(path)
	require.NoError(err)

	// Merged entries score
	assert.Equal(10, db.Score(DriveUnknown, 0, "ExcelStor Technology"))
	assert.Equal(5, db.Score(DriveUnknown, 0, "HD2510"))
	assert.Equal(10, db.Score(DriveUnknown, 0x1058, "My Book"))

	// Built-ins survive the merge, and the table stays sorted so the
	// length short-circuit still holds
	assert.Equal(23, db.Score(DriveFixed, 0x0bc2, "ST1000DM003"))
	for i := 1; i < len(db.Models); i++ {
		assert.LessOrEqual(len(db.Models[i-1].Prefix), len(db.Models[i].Prefix))
	}
}

func TestOpenSignatureDbMissing(t *testing.T) {
	_, err := Open(filepath.Join(t.TempDir(), "nonexistent.yaml"))
	assert.Error(t, err)
}
