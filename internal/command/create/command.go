// Package create 提供环境创建命令。
package create

import (
	"github.com/urfave/cli/v3"

	"github.com/lwmacct/260825-go-pkg-cenv/internal/command"
)

// Command 创建命令。
var Command = New()

// New 构造一个全新的创建命令。
// flag 状态保存在命令对象里，测试中重复运行时应各自构造。
func New() *cli.Command {
	return &cli.Command{
		Name:      "create",
		Usage:     "创建开发环境并生成 activate 脚本",
		ArgsUsage: "<folder>",
		Action:    action,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "配置文件路径，默认按搜索顺序探测",
			},
			&cli.StringMapFlag{
				Name:    "var",
				Aliases: []string{"D"},
				Usage:   "添加替换变量 (KEY=VAL, 可重复)",
			},
			&cli.StringSliceFlag{
				Name:  "vars-file",
				Usage: "从 dotenv 文件批量加载替换变量 (可重复)",
			},
			&cli.StringMapFlag{
				Name:    "setenv",
				Aliases: []string{"E"},
				Usage:   "添加额外导出的环境变量 (KEY=VAL, 可重复)",
			},
			&cli.StringFlag{
				Name:    "prompt",
				Aliases: []string{"p"},
				Value:   command.Defaults.Prompt,
				Usage:   "PS1 前缀模板",
			},
			&cli.StringFlag{
				Name:    "root",
				Aliases: []string{"r"},
				Value:   command.Defaults.Root,
				Usage:   "路径拼接前缀，默认为目标目录",
			},
			&cli.BoolFlag{
				Name:    "no-defaults",
				Aliases: []string{"n"},
				Usage:   "不追加默认安装布局",
			},
			&cli.StringSliceFlag{
				Name:    "suffix-exec",
				Aliases: []string{"e"},
				Usage:   "添加 PATH 后缀 (可重复)",
			},
			&cli.StringSliceFlag{
				Name:    "suffix-include",
				Aliases: []string{"i"},
				Usage:   "添加 C_INCLUDE_PATH 后缀 (可重复)",
			},
			&cli.StringSliceFlag{
				Name:    "suffix-info",
				Aliases: []string{"I"},
				Usage:   "添加 INFOPATH 后缀 (可重复)",
			},
			&cli.StringSliceFlag{
				Name:    "suffix-lib",
				Aliases: []string{"l"},
				Usage:   "添加 LIBRARY_PATH 系列后缀 (可重复)",
			},
			&cli.StringSliceFlag{
				Name:    "suffix-man",
				Aliases: []string{"m"},
				Usage:   "添加 MANPATH 后缀 (可重复)",
			},
			&cli.StringSliceFlag{
				Name:    "suffix-pkgconfig",
				Aliases: []string{"P"},
				Usage:   "添加 PKG_CONFIG_PATH 后缀 (可重复)",
			},
		},
	}
}
