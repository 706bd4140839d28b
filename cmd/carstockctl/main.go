// Package main implements carstockctl, the operator CLI for the car
// inventory service.
package main

import "github.com/abgdnv/carstock/cmd/carstockctl/commands"

func main() {
	commands.Execute()
}
