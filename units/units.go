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

// Package units names the common time units and converts durations between
// them. All units are exact multiples of a nanosecond, the resolution of
// time.Duration.
package units

import (
	"errors"
	"strings"
	"time"
)

// ErrUnknownUnit is returned by Parse for unrecognized unit names
var ErrUnknownUnit = errors.New("unknown time unit")

// Unit is a named time unit
type Unit struct {
	Name     string
	Symbol   string
	Duration time.Duration
}

// Units ordered smallest to largest. Day and Week are nominal units of
// exactly 24 and 168 hours, ignoring leap seconds and DST transitions.
var (
	Nanosecond  = Unit{Name: "nanosecond", Symbol: "ns", Duration: time.Nanosecond}
	Microsecond = Unit{Name: "microsecond", Symbol: "µs", Duration: time.Microsecond}
	Millisecond = Unit{Name: "millisecond", Symbol: "ms", Duration: time.Millisecond}
	Second      = Unit{Name: "second", Symbol: "s", Duration: time.Second}
	Minute      = Unit{Name: "minute", Symbol: "min", Duration: time.Minute}
	Hour        = Unit{Name: "hour", Symbol: "h", Duration: time.Hour}
	Day         = Unit{Name: "day", Symbol: "d", Duration: 24 * time.Hour}
	Week        = Unit{Name: "week", Symbol: "w", Duration: 7 * 24 * time.Hour}
)

// All returns the known units ordered smallest to largest.
func All() []Unit {
	return []Unit{Nanosecond, Microsecond, Millisecond, Second, Minute, Hour, Day, Week}
}

// Convert expresses d in unit u.
func Convert(d time.Duration, u Unit) float64 {
	return float64(d) / float64(u.Duration)
}

// Parse resolves a unit by name, plural name or symbol. "us" is accepted as
// an ASCII spelling of µs.
func Parse(name string) (Unit, error) {
	s := strings.ToLower(strings.TrimSpace(name))
	if s == "us" {
		return Microsecond, nil
	}
	for _, u := range All() {
		if s == u.Name || s == u.Name+"s" || s == strings.ToLower(u.Symbol) {
			return u, nil
		}
	}
	return Unit{}, ErrUnknownUnit
}
