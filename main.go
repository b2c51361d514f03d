// Copyright 2026 Rentdesk Ltd
// SPDX-License-Identifier: AGPL-3.0

package main

import "github.com/rentdesk/people-service/cmd"

func main() {
	cmd.Execute()
}
