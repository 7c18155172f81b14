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

	"github.com/facebook/clockcheck/leapsec"
)

// flag
var leapFileFlag string

func init() {
	RootCmd.AddCommand(leapCmd)
	leapCmd.Flags().StringVarP(&leapFileFlag, "file", "f", "", fmt.Sprintf("TZif file with leap second records (default %q)", leapsec.DefaultFile))
}

var leapCmd = &cobra.Command{
	Use:   "leap",
	Short: "List leap seconds known to the system timezone database",
	Run: func(_ *cobra.Command, _ []string) {
		ConfigureVerbosity()

		leapSeconds, err := leapsec.Parse(leapFileFlag)
		if err != nil {
			log.Fatal(err)
		}

		table := tablewriter.NewWriter(os.Stdout)
		table.SetHeader([]string{"#", "date (utc)", "tai-utc after (s)"})
		for i, l := range leapSeconds {
			table.Append([]string{
				fmt.Sprintf("%d", i+1),
				l.Time().UTC().Format("2006-01-02"),
				fmt.Sprintf("%d", l.Nleap+10),
			})
		}
		table.Render()

		offset, err := leapsec.TAIOffset(leapFileFlag, time.Now())
		if err != nil {
			log.Fatal(err)
		}
		fmt.Printf("current TAI-UTC offset: %ds\n", offset)
	},
}
