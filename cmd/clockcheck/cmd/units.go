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
	"os"
	"time"

	"github.com/olekukonko/tablewriter"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/facebook/clockcheck/units"
)

func init() {
	RootCmd.AddCommand(unitsCmd)
}

var unitsCmd = &cobra.Command{
	Use:   "units [duration]",
	Short: "List time units, optionally expressing a duration in each of them",
	Args:  cobra.MaximumNArgs(1),
	Run: func(_ *cobra.Command, args []string) {
		ConfigureVerbosity()

		var d time.Duration
		withValue := len(args) == 1
		if withValue {
			var err error
			d, err = time.ParseDuration(args[0])
			if err != nil {
				log.Fatal(err)
			}
		}

		table := tablewriter.NewWriter(os.Stdout)
		header := []string{"unit", "symbol", "nanoseconds"}
		if withValue {
			header = append(header, fmt.Sprintf("%v in unit", d))
		}
		table.SetHeader(header)
		for _, u := range units.All() {
			row := []string{u.Name, u.Symbol, fmt.Sprintf("%d", u.Duration.Nanoseconds())}
			if withValue {
				row = append(row, fmt.Sprintf("%g", units.Convert(d, u)))
			}
			table.Append(row)
		}
		table.Render()
	},
}
