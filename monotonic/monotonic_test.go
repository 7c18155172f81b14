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
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestNowNeverDecreases(t *testing.T) {
	prev := Now()
	for i := 0; i < 10000; i++ {
		cur := Now()
		require.GreaterOrEqual(t, cur, prev, "monotonic reading went backwards on iteration %d", i)
		prev = cur
	}
}

func TestSince(t *testing.T) {
	t0 := Now()
	time.Sleep(10 * time.Millisecond)
	elapsed := Since(t0)
	// time.Sleep guarantees at least the requested duration
	require.GreaterOrEqual(t, elapsed, 10*time.Millisecond)
}

func TestStopwatch(t *testing.T) {
	sw := Start()
	time.Sleep(5 * time.Millisecond)
	first := sw.Elapsed()
	require.GreaterOrEqual(t, first, 5*time.Millisecond)

	time.Sleep(5 * time.Millisecond)
	second := sw.Elapsed()
	require.Greater(t, second, first, "stopwatch must keep running between reads")

	sw.Reset()
	require.Less(t, sw.Elapsed(), second, "reset must restart the stopwatch")
}
