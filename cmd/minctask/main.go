package main

import (
	"fmt"
	"os"

	chassis "github.com/ai8future/chassis-go/v5"

	"minctasks/pkg/colors"
)

func main() {
	chassis.RequireMajor(5)
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "%sError:%s %v\n", colors.Red, colors.Reset, err)
		os.Exit(1)
	}
}
