// SPDX-License-Identifier: MPL-2.0

// freqtrade resolves trading strategies, pairlist filters and hyperopt loss
// functions from CUE plugin files and compiled-in fallbacks.
package main

import cmd "github.com/Shmel999/FREQTRADE/cmd/freqtrade"

func main() {
	cmd.Execute()
}
