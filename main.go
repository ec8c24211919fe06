package main

import (
	"github.com/malkit/malkit/cmd"
	"github.com/malkit/malkit/config"
	"github.com/malkit/malkit/log"
	"github.com/samber/lo"
)

func main() {
	lo.Must0(config.Setup())
	lo.Must0(log.Setup())

	cmd.Execute()
}
