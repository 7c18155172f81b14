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
Package clock exposes the two faces of a timestamp.

Since Go 1.9 a time.Time returned by time.Now carries two readings at once:
the wall clock (calendar time, which may be stepped forwards or backwards by
a sysadmin or by synchronization) and the monotonic clock (which only ever
moves forward). Subtracting two such values uses the monotonic readings, so
elapsed-time measurements stay correct across wall-clock adjustments.

The package provides
  - Reading and Capture to observe both components side by side
  - Split to strip the monotonic reading and tell whether one was present
  - the Clock interface with real and fake implementations, and Elapsed,
    which measures the interval around a delay.
*/
package clock
