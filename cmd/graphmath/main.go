// SPDX-License-Identifier: MIT

// Command graphmath evaluates single vector and matrix operations from the
// command line.
//
//	graphmath dot 3 4 5 5 6 7          # 74
//	graphmath cross 1 0 0 0 1 0        # [0, 0, 1]
//	graphmath rotate --digits 9 1.5707963267948966 1 0 0
//	graphmath translate 10 -2 1 1      # [11, -1]
//	graphmath dot --digits -1 7 0 0 2 0 0   # 10
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
