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

package clock

import (
	"time"

	"github.com/facebook/clockcheck/monotonic"
)

// Reading is one observation of the system clock decomposed into its two
// components.
type Reading struct {
	// Wall is calendar time, stripped of the monotonic reading
	Wall time.Time
	// Mono is the monotonic clock reading at the moment of capture
	Mono time.Duration
}

// Capture takes one reading of both clock components.
func Capture() Reading {
	t := time.Now()
	return Reading{
		Wall: t.Round(0),
		Mono: monotonic.Now(),
	}
}

// Split strips the monotonic reading from t and reports whether t carried
// one. Round(0) is the documented way to drop the monotonic part; a value
// that had none is returned unchanged.
func Split(t time.Time) (wall time.Time, hadMono bool) {
	wall = t.Round(0)
	return wall, t != wall
}

// Clock abstracts a time source so elapsed-time logic can run against the
// real system clock or a fake one in tests.
type Clock interface {
	Now() time.Time
	Since(t time.Time) time.Duration
	Sleep(d time.Duration)
}

// SystemClock reads the real system clock. Its Now values carry monotonic
// readings.
type SystemClock struct{}

// Now returns the current time.
func (SystemClock) Now() time.Time { return time.Now() }

// Since returns time elapsed since t.
func (SystemClock) Since(t time.Time) time.Duration { return time.Since(t) }

// Sleep blocks for at least d.
func (SystemClock) Sleep(d time.Duration) { time.Sleep(d) }

// Elapsed reads the clock, waits for delay, reads it again and returns the
// difference of the two readings. Over the system clock the subtraction uses
// the embedded monotonic readings, so the result is at least delay even if
// the wall clock is stepped in between.
func Elapsed(c Clock, delay time.Duration) time.Duration {
	t1 := c.Now()
	c.Sleep(delay)
	t2 := c.Now()
	return t2.Sub(t1)
}
