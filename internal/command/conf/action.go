package conf

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"
	yamlv3 "go.yaml.in/yaml/v3"

	"github.com/lwmacct/260825-go-pkg-cenv/internal/command"
	"github.com/lwmacct/260825-go-pkg-cenv/internal/config"
)

// exampleConfig 示例配置，可直接保存为 .cenv.yaml 使用。
const exampleConfig = `# cenv 配置示例
# 搜索顺序: ./.cenv.yaml、~/.cenv.yaml、/etc/cenv/config.yaml

# 替换变量表，后缀、提示符与环境变量值中可用 $name 或 ${name} 引用
vars:
  mach_type: x86_64-linux-gnu
  mach_64: "yes"

# PS1 前缀模板，默认 "(目录名) "
prompt: "(${mach_type}) "

# 路径拼接前缀，默认为目标目录
# root: /opt/sysroot

# 六类路径后缀，与默认安装布局叠加
suffixes:
  exec:
    - bin
  lib:
    - lib/${mach_type}

# 额外导出的环境变量
environment:
  CC: ${mach_type}-gcc

# 设为 false 可关闭默认安装布局 (等同 --no-defaults)
defaults: true
`

func showAction(ctx context.Context, cmd *cli.Command) error {
	cfg, err := config.Load(command.Defaults, cmd.String("config"))
	if err != nil {
		return err
	}

	out, err := yamlv3.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}
	fmt.Fprint(cmd.Root().Writer, string(out))

	return nil
}

func exampleAction(ctx context.Context, cmd *cli.Command) error {
	fmt.Fprint(cmd.Root().Writer, exampleConfig)

	return nil
}
