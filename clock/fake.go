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
	"sync"
	"time"
)

// FakeClock is a manually advanced Clock for tests. Its times carry no
// monotonic reading, so subtraction falls back to wall-clock arithmetic.
type FakeClock struct {
	mu  sync.Mutex
	cur time.Time
}

// NewFake returns a FakeClock frozen at start.
func NewFake(start time.Time) *FakeClock {
	return &FakeClock{cur: start}
}

// Now returns the fake current time.
func (f *FakeClock) Now() time.Time {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.cur
}

// Since returns elapsed fake time since t.
func (f *FakeClock) Since(t time.Time) time.Duration {
	return f.Now().Sub(t)
}

// Sleep advances the clock by d without blocking.
func (f *FakeClock) Sleep(d time.Duration) {
	f.Advance(d)
}

// Advance moves the clock forward by d. Negative d moves it backwards, which
// is exactly what a wall clock may do and a monotonic clock may not.
func (f *FakeClock) Advance(d time.Duration) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.cur = f.cur.Add(d)
}
