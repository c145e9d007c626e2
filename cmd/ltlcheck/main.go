package main

import (
	"fmt"
	"os"

	"ltlcheck/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
