// Command sortbench benchmarks the instrumented merge and bubble sorts on a
// users file and writes per-size and summary reports.
//
//	sortbench run --input users.txt --sizes 5,10,100 --out reports
//	sortbench sort --algo bubble --input users.txt
//	sortbench generate --count 5000 --seed 42 --out users.txt
package main

import (
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
