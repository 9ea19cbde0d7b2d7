package main

import (
	"github.com/zmsync/go-mtbank-sync/cmd/sync/cmd"
)

func main() {
	cmd.Execute()
}
