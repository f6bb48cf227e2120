package main

import (
	"fmt"
	"os"

	"github.com/0chain/ecdsa-multisig/multisig/main/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error: ", err)
		os.Exit(1)
	}
}
