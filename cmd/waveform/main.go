// SPDX-License-Identifier: EPL-2.0

package main

import (
	"os"

	"github.com/ik5/waveform/internal/cli"
)

func main() {
	os.Exit(cli.Run(os.Args[1:], os.Stdout, os.Stderr))
}
