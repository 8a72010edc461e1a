package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-viper/mapstructure/v2"
	yamlv3 "go.yaml.in/yaml/v3"
)

// DefaultPaths 返回默认配置文件的搜索顺序。
//
// 返回顺序即查找顺序，先命中的文件生效。
//
// 优先级 (从高到低)：
//  1. ./.cenv.yaml - 当前目录配置
//  2. ~/.cenv.yaml - 用户主目录配置
//  3. /etc/cenv/config.yaml - 系统级配置
func DefaultPaths() []string {
	paths := []string{".cenv.yaml"}
	if home, err := os.UserHomeDir(); err == nil {
		paths = append(paths, filepath.Join(home, ".cenv.yaml"))
	}
	paths = append(paths, "/etc/cenv/config.yaml")

	return paths
}

// Load 在 base 之上合并配置文件与环境变量。
//
// path 非空时读取该文件，任何失败都会报错；path 为空时按
// [DefaultPaths] 顺序探测，命中首个文件即停止，全部缺席则仅使用
// base。文件之后应用环境变量 CENV_PROMPT 与 CENV_ROOT。
//
// 配置 key 由 json tag 定义，YAML 与 JSON 共享同一套 key。合并时
// 标量覆盖、map 逐键合并、列表整体替换、缺席字段保持 base 原值。
func Load(base Config, path string) (*Config, error) {
	cfg := base.clone()

	if path != "" {
		content, err := os.ReadFile(path) //nolint:gosec // path is from trusted config
		if err != nil {
			return nil, fmt.Errorf("read config file %s: %w", path, err)
		}
		if err := mergeBytes(&cfg, path, content); err != nil {
			return nil, err
		}
	} else {
		loaded := false
		for _, p := range DefaultPaths() {
			content, err := os.ReadFile(p) //nolint:gosec // path is from trusted config
			if err != nil {
				continue // 文件不存在或无法读取，尝试下一个路径
			}
			if err := mergeBytes(&cfg, p, content); err != nil {
				return nil, err
			}
			loaded = true

			break
		}
		if !loaded {
			slog.Debug("No config file found, using defaults")
		}
	}

	applyEnv(&cfg)

	return &cfg, nil
}

// mergeBytes 解析单个配置文件的内容并合并进 cfg。
func mergeBytes(cfg *Config, path string, content []byte) error {
	raw, err := parseConfigBytes(path, content)
	if err != nil {
		return fmt.Errorf("parse config file %s: %w", path, err)
	}

	if err := decodeConfigMap(raw, cfg); err != nil {
		return fmt.Errorf("apply config file %s: %w", path, err)
	}

	slog.Debug("Loaded config from file", "path", path)

	return nil
}

// applyEnv 应用进程环境变量，优先级高于配置文件。
func applyEnv(cfg *Config) {
	if v := os.Getenv("CENV_PROMPT"); v != "" {
		cfg.Prompt = v
		slog.Debug("Loaded env binding", "env", "CENV_PROMPT")
	}
	if v := os.Getenv("CENV_ROOT"); v != "" {
		cfg.Root = v
		slog.Debug("Loaded env binding", "env", "CENV_ROOT")
	}
}

// parseConfigBytes 按扩展名解析 YAML 或 JSON，并归一化 map key。
func parseConfigBytes(path string, content []byte) (map[string]any, error) {
	var raw any
	var err error
	if isJSONPath(path) {
		err = json.Unmarshal(content, &raw)
	} else {
		err = yamlv3.Unmarshal(content, &raw)
	}
	if err != nil {
		return nil, err
	}

	normalized := normalizeMapKeys(raw)
	if normalized == nil {
		return map[string]any{}, nil
	}
	configMap, ok := normalized.(map[string]any)
	if !ok {
		return nil, errors.New("config root must be object")
	}

	return configMap, nil
}

func isJSONPath(path string) bool {
	return strings.EqualFold(filepath.Ext(path), ".json")
}

// normalizeMapKeys 把 map[any]any 统一成 map[string]any，便于后续解码。
func normalizeMapKeys(val any) any {
	switch typed := val.(type) {
	case map[string]any:
		out := make(map[string]any, len(typed))
		for key, value := range typed {
			out[key] = normalizeMapKeys(value)
		}

		return out
	case map[any]any:
		out := make(map[string]any, len(typed))
		for key, value := range typed {
			out[fmt.Sprintf("%v", key)] = normalizeMapKeys(value)
		}

		return out
	case []any:
		for i := range typed {
			typed[i] = normalizeMapKeys(typed[i])
		}

		return typed
	default:
		return val
	}
}

// decodeConfigMap 把配置 map 解码到 cfg，未出现的 key 保留原值。
func decodeConfigMap(data map[string]any, cfg *Config) error {
	conf := &mapstructure.DecoderConfig{
		Result:           cfg,
		WeaklyTypedInput: true,
		TagName:          "json",
	}
	decoder, err := mapstructure.NewDecoder(conf)
	if err != nil {
		return err
	}

	return decoder.Decode(data)
}
