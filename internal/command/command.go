// Package command 提供 cenv 的命令行功能。
package command

import "github.com/lwmacct/260825-go-pkg-cenv/internal/config"

// Defaults 为默认配置的单一来源。
var Defaults = config.DefaultConfig()
