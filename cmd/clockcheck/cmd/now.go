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

	"github.com/spf13/cobra"

	"github.com/facebook/clockcheck/clock"
)

func init() {
	RootCmd.AddCommand(nowCmd)
}

var nowCmd = &cobra.Command{
	Use:   "now",
	Short: "Print one reading of both clock components",
	Run: func(_ *cobra.Command, _ []string) {
		ConfigureVerbosity()

		r := clock.Capture()
		zone, offset := r.Wall.Zone()
		fmt.Printf("local:     %s (%s, UTC%+ds)\n", r.Wall.Format(time.RFC3339Nano), zone, offset)
		fmt.Printf("utc:       %s\n", r.Wall.UTC().Format(time.RFC3339Nano))
		fmt.Printf("unix:      %d.%09d\n", r.Wall.Unix(), r.Wall.Nanosecond())
		fmt.Printf("monotonic: %v since an arbitrary point, meaningless outside this process\n", r.Mono)
	},
}
