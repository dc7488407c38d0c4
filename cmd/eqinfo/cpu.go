package main

import (
	"fmt"

	"github.com/cwbudde/algo-eq/internal/cpu"
)

type cpuCmd struct{}

func (cpuCmd) Run() error {
	f := cpu.Detect()
	_, err := fmt.Printf("%s (best: %v)\n", f, f.Best())
	return err
}
