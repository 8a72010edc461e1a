// Package conf 提供配置查看命令。
package conf

import (
	"github.com/urfave/cli/v3"
)

// Command 配置命令。
var Command = New()

// New 构造一个全新的配置命令。
func New() *cli.Command {
	return &cli.Command{
		Name:  "config",
		Usage: "查看与生成 cenv 配置",
		Commands: []*cli.Command{
			{
				Name:   "show",
				Usage:  "输出合并后的有效配置",
				Action: showAction,
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:    "config",
						Aliases: []string{"c"},
						Usage:   "配置文件路径，默认按搜索顺序探测",
					},
				},
			},
			{
				Name:   "example",
				Usage:  "输出带注释的示例配置",
				Action: exampleAction,
			},
		},
	}
}
