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

// Package leapsec reports leap second information recorded in the system
// timezone database. Leap seconds are occasional one-second corrections
// inserted into UTC to keep it aligned with the Earth's rotation; the
// "right/" zoneinfo files carry the full list.
//
// The package is read-only: it lists what the database knows and computes
// the resulting TAI-UTC offset, nothing more.
package leapsec

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"os"
	"time"
)

// DefaultFile is the zoneinfo file that carries leap second records on most
// distributions. The files under posix/ (and usually the bare zone files)
// contain none.
const DefaultFile = "/usr/share/zoneinfo/right/UTC"

// TAI was exactly 10 seconds ahead of UTC when the leap second scheme
// started in 1972. Every record in the database adds to that base.
const taiBaseOffset = 10

var (
	// ErrBadData means the file is not valid TZif
	ErrBadData = errors.New("malformed time zone information")
	// ErrUnsupportedVersion means a TZif version this parser does not know
	ErrUnsupportedVersion = errors.New("unsupported TZif version")
	// ErrNoLeapSeconds means a valid TZif file without leap second records
	ErrNoLeapSeconds = errors.New("no leap seconds information found")
)

// LeapSecond is one leap second record.
type LeapSecond struct {
	// Tleap is the Unix time at which the leap second occurs, expressed on
	// the leap-second-inclusive timescale of the file
	Tleap uint64
	// Nleap is the total number of leap seconds applied by this record
	Nleap int32
}

// Time returns when the leap second event occurs in Unix time.
func (l LeapSecond) Time() time.Time {
	return time.Unix(int64(l.Tleap)-int64(l.Nleap)+1, 0)
}

// tzif header per RFC 8536, all counts big-endian
type header struct {
	IsUtcCnt uint32
	IsStdCnt uint32
	LeapCnt  uint32
	TimeCnt  uint32
	TypeCnt  uint32
	CharCnt  uint32
}

// Parse returns the leap second records from srcfile. Pass "" to use
// DefaultFile.
func Parse(srcfile string) ([]LeapSecond, error) {
	if srcfile == "" {
		srcfile = DefaultFile
	}
	f, err := os.Open(srcfile)
	if err != nil {
		return nil, fmt.Errorf("opening leap second source: %w", err)
	}
	defer f.Close()

	return parse(f)
}

// Latest returns the most recent leap second that already happened. Pass ""
// to use DefaultFile.
func Latest(srcfile string) (*LeapSecond, error) {
	leapSeconds, err := Parse(srcfile)
	if err != nil {
		return nil, err
	}

	res := LeapSecond{}
	now := time.Now()
	for _, leapSecond := range leapSeconds {
		if leapSecond.Time().After(res.Time()) && leapSecond.Time().Before(now) {
			res = leapSecond
		}
	}
	return &res, nil
}

// TAIOffset returns the cumulative TAI-UTC offset in seconds as of t.
// Pass "" to use DefaultFile.
func TAIOffset(srcfile string, t time.Time) (int32, error) {
	leapSeconds, err := Parse(srcfile)
	if err != nil {
		return 0, err
	}

	offset := int32(taiBaseOffset)
	applied := int32(0)
	for _, leapSecond := range leapSeconds {
		if !leapSecond.Time().After(t) && leapSecond.Nleap > applied {
			applied = leapSecond.Nleap
		}
	}
	return offset + applied, nil
}

func readHeader(r io.Reader) (byte, *header, error) {
	magic := make([]byte, 4)
	if _, _ = r.Read(magic); string(magic) != "TZif" {
		return 0, nil, ErrBadData
	}

	// 1-byte version followed by 15 bytes of padding
	p := make([]byte, 16)
	if n, _ := r.Read(p); n != 16 {
		return 0, nil, ErrBadData
	}
	version := p[0]
	if version != 0 && version != '2' && version != '3' {
		return 0, nil, ErrUnsupportedVersion
	}

	hdr := &header{}
	if err := binary.Read(r, binary.BigEndian, hdr); err != nil {
		return 0, nil, err
	}
	return version, hdr, nil
}

// bodySize returns the number of octets between the header and the leap
// second array. Transition times are 4 octets in v1 data blocks and 8 in
// v2+, local time type records are 6 octets either way.
func bodySize(hdr *header, wide bool) int {
	timeSize := 5
	if wide {
		timeSize = 9
	}
	return int(hdr.TimeCnt)*timeSize + int(hdr.TypeCnt)*6 + int(hdr.CharCnt)
}

func parse(r io.Reader) ([]LeapSecond, error) {
	var ret []LeapSecond
	for block := 0; block < 2; block++ {
		version, hdr, err := readHeader(r)
		if err != nil {
			return nil, err
		}
		if byte(block) > version {
			return nil, ErrBadData
		}

		wide := block > 0
		skip := bodySize(hdr, wide)

		// a v2+ file starts with a complete v1 block kept for old readers,
		// skip it whole including its leap second array
		if block == 0 && version > 0 {
			skip += int(hdr.LeapCnt)*8 + int(hdr.IsUtcCnt) + int(hdr.IsStdCnt)
		}
		if n, _ := io.CopyN(io.Discard, r, int64(skip)); n != int64(skip) {
			return nil, ErrBadData
		}
		if block == 0 && version > 0 {
			continue
		}

		for i := 0; i < int(hdr.LeapCnt); i++ {
			var l LeapSecond
			if wide {
				err = binary.Read(r, binary.BigEndian, &l)
			} else {
				narrow := []uint32{0, 0}
				err = binary.Read(r, binary.BigEndian, &narrow)
				l.Tleap = uint64(narrow[0])
				l.Nleap = int32(narrow[1])
			}
			if err != nil {
				return nil, err
			}
			ret = append(ret, l)
		}

		// trailing UTC/local and standard/wall indicator arrays
		_, _ = io.CopyN(io.Discard, r, int64(hdr.IsUtcCnt)+int64(hdr.IsStdCnt))
		break
	}

	if len(ret) == 0 {
		return nil, ErrNoLeapSeconds
	}
	return ret, nil
}
