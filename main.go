package main

import (
	"context"
	"fmt"
	"os"

	"github.com/urfave/cli/v3"

	"github.com/lwmacct/260825-go-pkg-cenv/internal/command/conf"
	"github.com/lwmacct/260825-go-pkg-cenv/internal/command/create"
)

func main() {
	app := &cli.Command{
		Name:    "cenv",
		Usage:   "创建可随时进出的开发环境",
		Version: "1.0.0",
		Commands: []*cli.Command{
			create.Command,
			conf.Command,
		},
	}

	if err := app.Run(context.Background(), os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
