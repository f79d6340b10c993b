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

// Command pispigot prints the decimal digits of π computed by the spigot
// package, as plain text, a table, or a scrolling 7-segment marquee.
//
// Usage:
//
//	pispigot digits [N] [--format plain|decimal|table]
//	pispigot marquee [N] [--width 4] [--delay 400ms] [--text]
//	pispigot config show|init
//
// N defaults to digits.count from the configuration file
// ($XDG_CONFIG_HOME/pispigot/config.toml unless --config is given).
package main
