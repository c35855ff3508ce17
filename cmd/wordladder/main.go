// Command wordladder prints every shortest word ladder between two words.
//
//	wordladder generate work play -l ./english.txt
//	wordladder neighbors cold
//	wordladder check cat cot cog dog
package main

import (
	"os"

	"github.com/katalvlaran/wordladder/internal/logger"
)

func main() {
	err := newRootCmd().Execute()
	logger.Cleanup()
	if err != nil {
		os.Exit(1)
	}
}
