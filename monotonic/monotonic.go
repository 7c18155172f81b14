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

package monotonic

import (
	"time"
)

// anchor is a completely arbitrary t0 used by the non-syscall fallback.
// time.Now captures a monotonic reading since Go 1.9, so time.Since(anchor)
// is itself monotonic.
var anchor = time.Now()

// Now returns the current reading of the monotonic clock as an offset from
// an arbitrary fixed point. A reading is only meaningful when compared to
// another reading taken by the same process.
func Now() time.Duration {
	return now()
}

// Since returns how much monotonic time passed since a previous reading.
// For a reading taken earlier in this process the result is never negative.
func Since(prev time.Duration) time.Duration {
	return now() - prev
}

// Stopwatch measures elapsed monotonic time from the moment it was started.
// Construct it with Start.
type Stopwatch struct {
	start time.Duration
}

// Start returns a running Stopwatch.
func Start() *Stopwatch {
	return &Stopwatch{start: now()}
}

// Elapsed returns time passed since the stopwatch was started or last reset.
func (s *Stopwatch) Elapsed() time.Duration {
	return now() - s.start
}

// Reset restarts the stopwatch from the current reading.
func (s *Stopwatch) Reset() {
	s.start = now()
}
