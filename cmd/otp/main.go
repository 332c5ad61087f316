package main

import "github.com/OpenTraceLab/OpenTraceParts/cmd/otp/cmd"

func main() {
	cmd.Execute()
}
