// Package config 提供 cenv 的配置管理。
//
// 配置加载优先级 (从低到高)：
//  1. 默认值 - DefaultConfig() 函数中定义
//  2. 配置文件 - --config 指定，或按 DefaultPaths() 顺序探测
//  3. 环境变量 - CENV_PROMPT / CENV_ROOT
//  4. CLI flags - 由 internal/command/create 应用
package config

import (
	"maps"
	"slices"
)

// Config cenv 配置。
type Config struct {
	Vars        map[string]string `json:"vars" desc:"替换变量表"`
	Prompt      string            `json:"prompt" desc:"PS1 前缀模板"`
	Root        string            `json:"root" desc:"路径拼接前缀，默认为目标目录"`
	Suffixes    SuffixConfig      `json:"suffixes" desc:"六类路径后缀"`
	Environment map[string]string `json:"environment" desc:"额外导出的环境变量"`
	Defaults    bool              `json:"defaults" desc:"是否追加默认安装布局"`
}

// SuffixConfig 路径后缀，按目标环境变量分类。
type SuffixConfig struct {
	Exec      []string `json:"exec" desc:"PATH 后缀"`
	Include   []string `json:"include" desc:"C_INCLUDE_PATH 后缀"`
	Info      []string `json:"info" desc:"INFOPATH 后缀"`
	Lib       []string `json:"lib" desc:"LIBRARY_PATH 系列后缀"`
	Man       []string `json:"man" desc:"MANPATH 后缀"`
	PkgConfig []string `json:"pkgconfig" desc:"PKG_CONFIG_PATH 后缀"`
}

// DefaultConfig 返回默认配置。
// 注意：internal/command/command.go 中的 Defaults 变量引用此函数以实现单一配置来源。
func DefaultConfig() Config {
	return Config{
		Defaults: true,
	}
}

// clone 深拷贝全部可变字段，保证合并不回写调用方持有的 Config。
func (c Config) clone() Config {
	out := c
	out.Vars = maps.Clone(c.Vars)
	out.Environment = maps.Clone(c.Environment)
	out.Suffixes = c.Suffixes.clone()

	return out
}

func (s SuffixConfig) clone() SuffixConfig {
	return SuffixConfig{
		Exec:      slices.Clone(s.Exec),
		Include:   slices.Clone(s.Include),
		Info:      slices.Clone(s.Info),
		Lib:       slices.Clone(s.Lib),
		Man:       slices.Clone(s.Man),
		PkgConfig: slices.Clone(s.PkgConfig),
	}
}
