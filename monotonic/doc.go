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

/*
Package monotonic provides read access to the monotonic clock.

A monotonic clock never goes backwards between successive reads within one
running process, which makes it the right tool for measuring elapsed
intervals: the difference of two readings is unaffected by wall-clock steps
from a sysadmin, NTP or daylight saving transitions.

Readings are offsets from an arbitrary fixed point (on Linux, boot time) and
carry no calendar meaning. They must never be persisted or compared across
processes.

On Linux the clock source is CLOCK_MONOTONIC_RAW, which on top of ignoring
steps is not slewed by frequency adjustments. Elsewhere the package falls
back to the monotonic reading Go embeds in time.Time.
*/
package monotonic
