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

package cmd

import (
	"fmt"
	"time"

	"github.com/fatih/color"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/facebook/clockcheck/clock"
)

// flags
var (
	elapsedDelayFlag   time.Duration
	elapsedSamplesFlag int
)

var okString = color.GreenString("[ OK ]")
var failString = color.RedString("[FAIL]")

func init() {
	RootCmd.AddCommand(elapsedCmd)
	elapsedCmd.Flags().DurationVarP(&elapsedDelayFlag, "delay", "d", time.Second, "how long to wait between the two readings")
	elapsedCmd.Flags().IntVarP(&elapsedSamplesFlag, "samples", "s", 1, "how many times to repeat the measurement")
}

func runElapsed(delay time.Duration) error {
	r1 := clock.Capture()
	clock.SystemClock{}.Sleep(delay)
	r2 := clock.Capture()

	wallDelta := r2.Wall.Sub(r1.Wall)
	monoDelta := r2.Mono - r1.Mono
	log.Debugf("first reading:  wall=%s mono=%v", r1.Wall.Format(time.RFC3339Nano), r1.Mono)
	log.Debugf("second reading: wall=%s mono=%v", r2.Wall.Format(time.RFC3339Nano), r2.Mono)

	fmt.Printf("slept for:       %v\n", delay)
	fmt.Printf("wall delta:      %v\n", wallDelta)
	fmt.Printf("monotonic delta: %v\n", monoDelta)

	if monoDelta < 0 {
		fmt.Printf("%s monotonic clock went backwards by %v\n", failString, -monoDelta)
		return fmt.Errorf("monotonic delta %v is negative", monoDelta)
	}
	if monoDelta < delay {
		// raw monotonic time is not slewed, so it may run marginally
		// behind the clock time.Sleep is scheduled on
		log.Warnf("monotonic delta %v is %v short of the %v we slept", monoDelta, delay-monoDelta, delay)
	}
	fmt.Printf("%s second reading is %v after the first\n", okString, monoDelta)
	if wallDelta != monoDelta {
		// expected whenever the wall clock was adjusted during the delay
		log.Infof("wall and monotonic deltas differ by %v", (wallDelta - monoDelta).Abs())
	}
	return nil
}

var elapsedCmd = &cobra.Command{
	Use:   "elapsed",
	Short: "Read the clock twice around a delay and subtract the readings",
	Run: func(_ *cobra.Command, _ []string) {
		ConfigureVerbosity()

		for i := 0; i < elapsedSamplesFlag; i++ {
			if i > 0 {
				fmt.Println()
			}
			if err := runElapsed(elapsedDelayFlag); err != nil {
				log.Fatal(err)
			}
		}
	},
}
