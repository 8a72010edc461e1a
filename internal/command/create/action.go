package create

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"maps"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/urfave/cli/v3"

	"github.com/lwmacct/260825-go-pkg-cenv/internal/command"
	"github.com/lwmacct/260825-go-pkg-cenv/internal/config"
	"github.com/lwmacct/260825-go-pkg-cenv/pkg/activate"
)

func action(ctx context.Context, cmd *cli.Command) error {
	if cmd.Args().Len() != 1 {
		return errors.New("exactly one folder name is required")
	}
	folder := cmd.Args().First()

	// 加载配置：默认值 → 配置文件 → 环境变量 → CLI flags
	cfg, err := config.Load(command.Defaults, cmd.String("config"))
	if err != nil {
		return err
	}
	if err := applyFlags(cfg, cmd); err != nil {
		return err
	}

	// 目录已存在不算错误，重复执行会覆盖旧的 activate 脚本
	if err := os.Mkdir(folder, 0o755); err != nil && !errors.Is(err, fs.ErrExist) {
		return fmt.Errorf("creating the directory %s failed: %w", folder, err)
	}

	canonical, err := canonicalize(folder)
	if err != nil {
		return err
	}

	profile := buildProfile(cfg, canonical)

	// 先整体渲染，渲染失败时不落盘，不留下残缺脚本
	script, err := profile.Script()
	if err != nil {
		return err
	}

	path := filepath.Join(canonical, "activate")
	if err := os.WriteFile(path, []byte(script), 0o644); err != nil { //nolint:gosec // activate script is meant to be world readable
		return fmt.Errorf("write activate script: %w", err)
	}

	slog.Info("Activate script written", "path", path)

	return nil
}

// applyFlags 将 CLI flags 合并进配置，标量仅在用户显式设置时覆盖。
func applyFlags(cfg *config.Config, cmd *cli.Command) error {
	for _, path := range cmd.StringSlice("vars-file") {
		vars, err := godotenv.Read(path)
		if err != nil {
			return fmt.Errorf("read vars file %s: %w", path, err)
		}
		mergeVars(&cfg.Vars, vars)
	}
	mergeVars(&cfg.Vars, cmd.StringMap("var"))
	mergeVars(&cfg.Environment, cmd.StringMap("setenv"))

	if cmd.IsSet("prompt") {
		cfg.Prompt = cmd.String("prompt")
	}
	if cmd.IsSet("root") {
		cfg.Root = cmd.String("root")
	}
	if cmd.Bool("no-defaults") {
		cfg.Defaults = false
	}

	s := &cfg.Suffixes
	s.Exec = pushFront(s.Exec, cmd.StringSlice("suffix-exec"))
	s.Include = pushFront(s.Include, cmd.StringSlice("suffix-include"))
	s.Info = pushFront(s.Info, cmd.StringSlice("suffix-info"))
	s.Lib = pushFront(s.Lib, cmd.StringSlice("suffix-lib"))
	s.Man = pushFront(s.Man, cmd.StringSlice("suffix-man"))
	s.PkgConfig = pushFront(s.PkgConfig, cmd.StringSlice("suffix-pkgconfig"))

	return nil
}

// mergeVars 把 src 合并进 *dst，必要时先分配。
func mergeVars(dst *map[string]string, src map[string]string) {
	if len(src) == 0 {
		return
	}
	if *dst == nil {
		*dst = make(map[string]string, len(src))
	}
	maps.Copy(*dst, src)
}

// pushFront 把 items 依次插到 list 头部。
func pushFront(list []string, items []string) []string {
	for _, item := range items {
		list = append([]string{item}, list...)
	}

	return list
}

// canonicalize 先转绝对路径，再解析符号链接。
func canonicalize(folder string) (string, error) {
	abs, err := filepath.Abs(folder)
	if err != nil {
		return "", fmt.Errorf("resolve %s: %w", folder, err)
	}
	canonical, err := filepath.EvalSymlinks(abs)
	if err != nil {
		return "", fmt.Errorf("resolve %s: %w", folder, err)
	}

	return canonical, nil
}

// buildProfile 把最终配置装配成环境描述。
func buildProfile(cfg *config.Config, folder string) *activate.Profile {
	p := &activate.Profile{
		Folder:      folder,
		Root:        cfg.Root,
		Prompt:      cfg.Prompt,
		Vars:        cfg.Vars,
		Exec:        cfg.Suffixes.Exec,
		Include:     cfg.Suffixes.Include,
		Info:        cfg.Suffixes.Info,
		Lib:         cfg.Suffixes.Lib,
		Man:         cfg.Suffixes.Man,
		PkgConfig:   cfg.Suffixes.PkgConfig,
		Environment: cfg.Environment,
	}
	if cfg.Defaults {
		p.ApplyDefaults()
	}

	return p
}
