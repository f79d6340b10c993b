// Copyright 2026 The Cockroach Authors.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or
// implied. See the License for the specific language governing
// permissions and limitations under the License.

package main

import (
	"fmt"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"

	"github.com/cockroachdb/spigot"
)

// renderDigitTable lays the digits out with the integer part on the first
// row and the decimal places in groups of size group after it.
func renderDigitTable(ds spigot.Digits, group int) string {
	tw := table.NewWriter()
	tw.SetStyle(table.StyleRounded)
	tw.AppendHeader(table.Row{"Places", "Digits"})

	if len(ds) > 0 {
		tw.AppendRow(table.Row{"0", ds[:1].String()})
	}
	for i := 1; i < len(ds); i += group {
		end := i + group
		if end > len(ds) {
			end = len(ds)
		}
		places := fmt.Sprintf("%d-%d", i, end-1)
		if end-1 == i {
			places = fmt.Sprint(i)
		}
		tw.AppendRow(table.Row{places, ds[i:end].String()})
	}

	tw.SetColumnConfigs([]table.ColumnConfig{
		{Number: 1, Align: text.AlignRight, AlignHeader: text.AlignLeft},
		{Number: 2, Align: text.AlignLeft, AlignHeader: text.AlignLeft},
	})
	return tw.Render()
}
