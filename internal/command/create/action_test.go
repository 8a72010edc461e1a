package create_test

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lwmacct/260825-go-pkg-cenv/internal/command/create"
	"github.com/lwmacct/260825-go-pkg-cenv/pkg/varexp"
)

// setup 把用例切到隔离的临时目录，并清空会影响结果的环境变量。
func setup(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Chdir(dir)
	t.Setenv("HOME", t.TempDir())
	t.Setenv("CENV_PROMPT", "")
	t.Setenv("CENV_ROOT", "")

	return dir
}

func runCreate(t *testing.T, args ...string) error {
	t.Helper()

	return create.New().Run(context.Background(), append([]string{"create"}, args...))
}

func readScript(t *testing.T, dir, folder string) string {
	t.Helper()
	content, err := os.ReadFile(filepath.Join(dir, folder, "activate"))
	require.NoError(t, err)

	return string(content)
}

func TestCreate_WritesScript(t *testing.T) {
	dir := setup(t)
	err := runCreate(t, "--no-defaults", "-p", "(demo) ", "-e", "bin", "-E", "CC=gcc", "demo")
	require.NoError(t, err)

	script := readScript(t, dir, "demo")
	root, err := filepath.EvalSymlinks(filepath.Join(dir, "demo"))
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(script, "# Activate script generated by cenv\n"))
	assert.Contains(t, script, `PS1="(demo) ${PS1}"`)
	assert.Contains(t, script, `PATH="`+root+`/bin${PATH+:}${PATH}"`)
	assert.Contains(t, script, "\nCC=\"gcc\"\nexport CC\n")
	// --no-defaults 不追加默认布局
	assert.NotContains(t, script, "MANPATH")
}

func TestCreate_DefaultLayout(t *testing.T) {
	dir := setup(t)
	err := runCreate(t, "-D", "mach_type=x86_64-linux-gnu", "demo")
	require.NoError(t, err)

	script := readScript(t, dir, "demo")
	root, err := filepath.EvalSymlinks(filepath.Join(dir, "demo"))
	require.NoError(t, err)

	assert.Contains(t, script, `PS1="(demo) ${PS1}"`)
	assert.Contains(t, script, `PATH="`+root+`/bin${PATH+:}${PATH}"`)
	assert.Contains(t, script, `C_INCLUDE_PATH="`+root+`/include/x86_64-linux-gnu${C_INCLUDE_PATH+:}${C_INCLUDE_PATH}"`)
	assert.Contains(t, script, `MANPATH="`+root+`/share/man${MANPATH+:}${MANPATH}"`)
	assert.Contains(t, script, `PKG_CONFIG_PATH="`+root+`/lib/x86_64-linux-gnu/pkgconfig${PKG_CONFIG_PATH+:}${PKG_CONFIG_PATH}"`)
}

func TestCreate_VarsFilePrecedence(t *testing.T) {
	varsDir := t.TempDir()
	first := filepath.Join(varsDir, "first.env")
	second := filepath.Join(varsDir, "second.env")
	require.NoError(t, os.WriteFile(first, []byte("mach_type=riscv64-linux-gnu\ncc_name=gcc\n"), 0o600))
	require.NoError(t, os.WriteFile(second, []byte("mach_type=aarch64-linux-gnu\n"), 0o600))

	dir := setup(t)
	err := runCreate(t,
		"--no-defaults",
		"-p", "> ",
		"--vars-file", first,
		"--vars-file", second,
		"-l", "lib/${mach_type}",
		"-D", "cc_name=clang",
		"-E", "CC=${cc_name}",
		"demo")
	require.NoError(t, err)

	script := readScript(t, dir, "demo")
	// 后一个文件覆盖前一个，-D 覆盖所有文件
	assert.Contains(t, script, "/lib/aarch64-linux-gnu${")
	assert.Contains(t, script, "\nCC=\"clang\"\n")
}

func TestCreate_ConfigFileAndOverride(t *testing.T) {
	cfgPath := filepath.Join(t.TempDir(), "cenv.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte(`
prompt: "(file) "
defaults: false
suffixes:
  exec:
    - file/bin
`), 0o600))

	dir := setup(t)
	err := runCreate(t, "--config", cfgPath, "-p", "(cli) ", "demo")
	require.NoError(t, err)

	script := readScript(t, dir, "demo")
	assert.Contains(t, script, `PS1="(cli) ${PS1}"`)
	assert.Contains(t, script, "/file/bin${PATH+:}")
	assert.NotContains(t, script, "MANPATH")
}

func TestCreate_RootFlag(t *testing.T) {
	dir := setup(t)
	err := runCreate(t, "--no-defaults", "-p", "> ", "-r", "/opt/sysroot", "-e", "bin", "demo")
	require.NoError(t, err)

	script := readScript(t, dir, "demo")
	assert.Contains(t, script, `PATH="/opt/sysroot/bin${PATH+:}${PATH}"`)
}

func TestCreate_EnvPrompt(t *testing.T) {
	dir := setup(t)
	t.Setenv("CENV_PROMPT", "(env) ")
	err := runCreate(t, "--no-defaults", "demo")
	require.NoError(t, err)

	script := readScript(t, dir, "demo")
	assert.Contains(t, script, `PS1="(env) ${PS1}"`)
}

func TestCreate_SuffixOrder(t *testing.T) {
	dir := setup(t)
	err := runCreate(t, "--no-defaults", "-p", "> ", "-e", "first", "-e", "second", "demo")
	require.NoError(t, err)

	script := readScript(t, dir, "demo")
	// 后声明的后缀先输出，先声明的后缀最终占据 PATH 更前的位置
	second := strings.Index(script, "/second${PATH+:}")
	first := strings.Index(script, "/first${PATH+:}")
	require.NotEqual(t, -1, second)
	require.NotEqual(t, -1, first)
	assert.Less(t, second, first)
}

func TestCreate_ExistingFolder(t *testing.T) {
	dir := setup(t)
	require.NoError(t, os.Mkdir(filepath.Join(dir, "demo"), 0o755))

	err := runCreate(t, "--no-defaults", "-p", "> ", "demo")
	require.NoError(t, err)
	assert.FileExists(t, filepath.Join(dir, "demo", "activate"))
}

func TestCreate_Errors(t *testing.T) {
	t.Run("missing folder", func(t *testing.T) {
		setup(t)
		err := runCreate(t, "--no-defaults")
		require.ErrorContains(t, err, "exactly one folder name is required")
	})

	t.Run("extra arguments", func(t *testing.T) {
		setup(t)
		err := runCreate(t, "--no-defaults", "one", "two")
		require.ErrorContains(t, err, "exactly one folder name is required")
	})

	t.Run("unknown variable leaves no script", func(t *testing.T) {
		dir := setup(t)
		err := runCreate(t, "--no-defaults", "-p", "(${missing}) ", "demo")
		require.ErrorIs(t, err, varexp.ErrUnknownVariable)
		assert.NoFileExists(t, filepath.Join(dir, "demo", "activate"))
	})

	t.Run("missing vars file", func(t *testing.T) {
		setup(t)
		err := runCreate(t, "--vars-file", "nope.env", "demo")
		require.ErrorContains(t, err, "read vars file")
	})
}
