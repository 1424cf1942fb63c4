// Package main is the entry point for the vizor application.
package main

import (
	"github.com/samber/lo"
	"github.com/vizor-cli/vizor/cmd"
	"github.com/vizor-cli/vizor/config"
	"github.com/vizor-cli/vizor/internal/cache"
	"github.com/vizor-cli/vizor/log"
)

func main() {
	lo.Must0(config.Setup())
	lo.Must0(log.Setup())

	// Initialize asynchronous background cache maintenance.
	go cache.CollectGarbage()

	cmd.Execute()
}
