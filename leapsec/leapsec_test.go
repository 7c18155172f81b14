/*
Copyright (c) Facebook, Inc. and its affiliates.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package leapsec

import (
	"bytes"
	"encoding/binary"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestParseV1(t *testing.T) {
	byteData := []byte{
		'T', 'Z', 'i', 'f', // magic
		0x00, 0x00, 0x00, 0x00, // version + pad
		0x00, 0x00, 0x00, 0x00, // pad
		0x00, 0x00, 0x00, 0x00, // pad
		0x00, 0x00, 0x00, 0x00, // pad
		0x00, 0x00, 0x00, 0x00, // UTC/local count
		0x00, 0x00, 0x00, 0x00, // standard/wall count
		0x00, 0x00, 0x00, 0x01, // leap count
		0x00, 0x00, 0x00, 0x00, // transition count
		0x00, 0x00, 0x00, 0x00, // local time type count
		0x00, 0x00, 0x00, 0x00, // character count
		0x04, 0xb2, 0x58, 0x00, // leap time
		0x00, 0x00, 0x00, 0x01, // leap total
	}

	ls, err := parse(bytes.NewReader(byteData))
	require.NoError(t, err)
	require.Len(t, ls, 1)
	require.Equal(t, uint64(78796800), ls[0].Tleap)
	require.Equal(t, int32(1), ls[0].Nleap)
	// Saturday, July 1, 1972 12:00:00 AM UTC
	require.Equal(t, time.Date(1972, 7, 1, 0, 0, 0, 0, time.UTC), ls[0].Time().UTC())
}

func TestParseV2(t *testing.T) {
	hdrV2 := []byte{
		'T', 'Z', 'i', 'f', // magic
		'2', 0x00, 0x00, 0x00, // version + pad
		0x00, 0x00, 0x00, 0x00, // pad
		0x00, 0x00, 0x00, 0x00, // pad
		0x00, 0x00, 0x00, 0x00, // pad
		0x00, 0x00, 0x00, 0x00, // UTC/local count
		0x00, 0x00, 0x00, 0x00, // standard/wall count
		0x00, 0x00, 0x00, 0x01, // leap count
		0x00, 0x00, 0x00, 0x00, // transition count
		0x00, 0x00, 0x00, 0x00, // local time type count
		0x00, 0x00, 0x00, 0x00, // character count
	}

	byteData := append([]byte{}, hdrV2...)
	// v1 compatibility block carries its own 8-octet leap record
	byteData = append(byteData, 0x04, 0xb2, 0x58, 0x00, 0x00, 0x00, 0x00, 0x01)
	// second block, same header, then a 12-octet leap record
	byteData = append(byteData, hdrV2...)
	byteData = append(byteData,
		0x00, 0x00, 0x00, 0x00, 0x04, 0xb2, 0x58, 0x00, // leap time, 8 octets
		0x00, 0x00, 0x00, 0x01, // leap total
	)

	ls, err := parse(bytes.NewReader(byteData))
	require.NoError(t, err)
	require.Len(t, ls, 1)
	require.Equal(t, uint64(78796800), ls[0].Tleap)
	require.Equal(t, int32(1), ls[0].Nleap)
}

func TestParseErrors(t *testing.T) {
	_, err := parse(bytes.NewReader([]byte("not a tzif file")))
	require.ErrorIs(t, err, ErrBadData)

	badVersion := []byte{'T', 'Z', 'i', 'f', 'X'}
	badVersion = append(badVersion, make([]byte, 15+24)...)
	_, err = parse(bytes.NewReader(badVersion))
	require.ErrorIs(t, err, ErrUnsupportedVersion)

	// valid v1 header, zero leap records
	empty := []byte{'T', 'Z', 'i', 'f'}
	empty = append(empty, make([]byte, 16+24)...)
	_, err = parse(bytes.NewReader(empty))
	require.ErrorIs(t, err, ErrNoLeapSeconds)
}

// writeV1Fixture dumps a v1 TZif file holding the given leap records.
func writeV1Fixture(t *testing.T, ls []LeapSecond) string {
	t.Helper()

	buf := new(bytes.Buffer)
	buf.WriteString("TZif")
	buf.Write(make([]byte, 16))
	require.NoError(t, binary.Write(buf, binary.BigEndian, header{LeapCnt: uint32(len(ls))}))
	for _, l := range ls {
		require.NoError(t, binary.Write(buf, binary.BigEndian, []uint32{uint32(l.Tleap), uint32(l.Nleap)}))
	}

	path := filepath.Join(t.TempDir(), "leap-utc")
	require.NoError(t, os.WriteFile(path, buf.Bytes(), 0644))
	return path
}

var fixtureRecords = []LeapSecond{
	{Tleap: 78796800, Nleap: 1},     // 1972-07-01, first ever leap second
	{Tleap: 1483228826, Nleap: 27},  // 2017-01-01, latest to date
}

func TestLatest(t *testing.T) {
	path := writeV1Fixture(t, fixtureRecords)

	latest, err := Latest(path)
	require.NoError(t, err)
	require.Equal(t, time.Date(2017, 1, 1, 0, 0, 0, 0, time.UTC), latest.Time().UTC())
	require.Equal(t, int32(27), latest.Nleap)
}

func TestTAIOffset(t *testing.T) {
	path := writeV1Fixture(t, fixtureRecords)

	testCases := []struct {
		at   time.Time
		want int32
	}{
		{time.Date(1970, 1, 1, 0, 0, 0, 0, time.UTC), 10},
		{time.Date(1973, 1, 1, 0, 0, 0, 0, time.UTC), 11},
		{time.Date(2018, 1, 1, 0, 0, 0, 0, time.UTC), 37},
	}
	for _, tc := range testCases {
		got, err := TAIOffset(path, tc.at)
		require.NoError(t, err)
		require.Equal(t, tc.want, got, "TAI-UTC at %v", tc.at)
	}
}

func TestParseMissingFile(t *testing.T) {
	_, err := Parse(filepath.Join(t.TempDir(), "does-not-exist"))
	require.Error(t, err)
}
