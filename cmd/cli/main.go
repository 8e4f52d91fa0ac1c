// TypeStat - Log Entry Type Statistics
//
// TypeStat reads a newline-delimited JSON log file and reports, for each
// distinct value of the "type" field, how many entries carry that type and
// how many bytes those entries occupy.
package main

import (
	"os"

	"typestat/internal/cli"
)

func main() {
	os.Exit(cli.Execute())
}
