package conf_test

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	yamlv3 "go.yaml.in/yaml/v3"

	"github.com/lwmacct/260825-go-pkg-cenv/internal/command/conf"
	"github.com/lwmacct/260825-go-pkg-cenv/internal/config"
)

// runConfig 执行 config 子命令并捕获输出。
func runConfig(t *testing.T, args ...string) string {
	t.Helper()
	var buf bytes.Buffer
	cmd := conf.New()
	cmd.Writer = &buf
	require.NoError(t, cmd.Run(context.Background(), append([]string{"config"}, args...)))

	return buf.String()
}

func TestConfigShow(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cenv.yaml")
	require.NoError(t, os.WriteFile(path,
		[]byte("prompt: \"(demo) \"\nsuffixes:\n  exec:\n    - bin\n"), 0o600))
	t.Setenv("CENV_PROMPT", "")
	t.Setenv("CENV_ROOT", "")

	out := runConfig(t, "show", "--config", path)

	// 输出本身是合法 YAML，key 与配置文件一致
	var cfg config.Config
	require.NoError(t, yamlv3.Unmarshal([]byte(out), &cfg))
	assert.Equal(t, "(demo) ", cfg.Prompt)
	assert.Equal(t, []string{"bin"}, cfg.Suffixes.Exec)
	assert.True(t, cfg.Defaults)
}

func TestConfigExample(t *testing.T) {
	out := runConfig(t, "example")
	require.NotEmpty(t, out)

	// 示例必须可以原样保存后直接加载
	path := filepath.Join(t.TempDir(), "example.yaml")
	require.NoError(t, os.WriteFile(path, []byte(out), 0o600))
	t.Setenv("CENV_PROMPT", "")
	t.Setenv("CENV_ROOT", "")

	cfg, err := config.Load(config.DefaultConfig(), path)
	require.NoError(t, err)
	assert.Equal(t, "x86_64-linux-gnu", cfg.Vars["mach_type"])
	assert.Equal(t, "yes", cfg.Vars["mach_64"])
	assert.Equal(t, "(${mach_type}) ", cfg.Prompt)
	assert.Equal(t, []string{"bin"}, cfg.Suffixes.Exec)
	assert.Equal(t, []string{"lib/${mach_type}"}, cfg.Suffixes.Lib)
	assert.Equal(t, "${mach_type}-gcc", cfg.Environment["CC"])
	assert.True(t, cfg.Defaults)
}
