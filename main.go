package main

import (
	"context"

	"arcadetracker/commands"
)

func main() {
	commands.ExecuteContext(context.Background())
}
