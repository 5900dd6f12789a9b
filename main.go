// main is the entry point for the trackpulse CLI.
package main

import (
	"github.com/huangsam/trackpulse/cmd"
	"github.com/huangsam/trackpulse/internal/contract"
)

func main() {
	err := cmd.Execute()
	if stopErr := cmd.StopProfiling(); stopErr != nil {
		contract.LogWarn("Cannot stop profiling", stopErr)
	}
	if err != nil {
		contract.LogFatal("Cannot run command", err)
	}
}
