// Package main is the entry point for the solsig CLI.
package main

import "github.com/KillAllTheHippies/Solidity-Signature-Decoder/cmd"

func main() {
	cmd.Execute()
}
