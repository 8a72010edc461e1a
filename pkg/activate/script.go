package activate

import (
	"fmt"
	"io"
	"maps"
	"slices"
	"strings"

	"github.com/lwmacct/260825-go-pkg-cenv/pkg/varexp"
)

// ═══════════════════════════════════════════════════════════════════════════
// 脚本样板
// ═══════════════════════════════════════════════════════════════════════════

// scriptPrelude 每个激活脚本开头的固定部分。
//
// 三个辅助函数只依赖 bash 的间接引用（${!name}）与 printf -v，
// 保存的原值放在 __CENV_<名字>_ORIG / __CENV_<名字>_DEFINED 中，
// deactivate 据此区分"还原旧值"与"取消定义"。
const scriptPrelude = `# Activate script generated by cenv
# Use the . command in the shell, do not run this script

# Args: $1 - variable name
__cenv_defined () {
  ! [ "x${!1+x}" = x ]
}
# Args: $1 - variable name
__cenv_savevar () {
  if __cenv_defined "$1"; then
    printf -v __CENV_$1_DEFINED yes
    printf -v __CENV_$1_ORIG "%s" "${!1}"
  fi
}
# Args: $1 - variable name
__cenv_restorevar () {
  printf -v __CENV_TMP "__CENV_%s_DEFINED" "$1"
  if [ "x${!__CENV_TMP}" = xyes ]; then
    printf -v __CENV_TMP "__CENV_%s_ORIG" "$1"
    printf -v $1 "%s" "${!__CENV_TMP}"
    export $1
  else
    unset $1
  fi
  unset __CENV_TMP
  unset __CENV_$1_DEFINED
  unset __CENV_$1_ORIG
}
`

// category 把一组后缀映射到若干 PATH 风格变量。
type category struct {
	vars     []string
	suffixes func(*Profile) []string
}

// categories 类别固定的输出顺序。
var categories = []category{
	{vars: []string{"PATH"}, suffixes: func(p *Profile) []string { return p.Exec }},
	{vars: []string{"C_INCLUDE_PATH"}, suffixes: func(p *Profile) []string { return p.Include }},
	{vars: []string{"INFOPATH"}, suffixes: func(p *Profile) []string { return p.Info }},
	{vars: []string{"LIBRARY_PATH", "LD_LIBRARY_PATH", "DYLD_LIBRARY_PATH"}, suffixes: func(p *Profile) []string { return p.Lib }},
	{vars: []string{"MANPATH"}, suffixes: func(p *Profile) []string { return p.Man }},
	{vars: []string{"PKG_CONFIG_PATH"}, suffixes: func(p *Profile) []string { return p.PkgConfig }},
}

// ═══════════════════════════════════════════════════════════════════════════
// 渲染
// ═══════════════════════════════════════════════════════════════════════════

// Script 渲染完整的激活脚本。
//
// 输出顺序固定：样板辅助函数、deactivate、PS1、六个类别、额外环境
// 变量（按名字排序）。每个路径变量先 __cenv_savevar，再按后缀顺序
// 逐行前插，最后 export；追加行形如：
//
//	PATH="<root>/<后缀>${PATH+:}${PATH}"
//
// ${PATH+:} 只在变量已有值时展开为冒号，避免产生空路径项。任何
// 模板渲染失败都会让 Script 返回错误且不产出内容。
func (p *Profile) Script() (string, error) {
	root := p.Root
	if root == "" {
		root = p.Folder
	}

	var b strings.Builder
	b.WriteString(scriptPrelude)

	// deactivate 要覆盖下文会动到的每一个变量
	b.WriteString("deactivate () {\n")
	b.WriteString("  __cenv_restorevar PS1\n")
	for _, c := range categories {
		if len(c.suffixes(p)) == 0 {
			continue
		}
		for _, v := range c.vars {
			fmt.Fprintf(&b, "  __cenv_restorevar %s\n", v)
		}
	}
	for _, name := range slices.Sorted(maps.Keys(p.Environment)) {
		fmt.Fprintf(&b, "  __cenv_restorevar %s\n", name)
	}
	b.WriteString("}\n")

	prompt, err := p.render(p.Prompt)
	if err != nil {
		return "", err
	}
	b.WriteString("__cenv_savevar PS1\n")
	fmt.Fprintf(&b, "PS1=\"%s${PS1}\"\n", prompt)

	for _, c := range categories {
		sfx := c.suffixes(p)
		if len(sfx) == 0 {
			continue
		}
		for _, v := range c.vars {
			fmt.Fprintf(&b, "__cenv_savevar %s\n", v)
			for _, s := range sfx {
				rendered, err := p.render(s)
				if err != nil {
					return "", err
				}
				fmt.Fprintf(&b, "%s=\"%s/%s${%s+:}${%s}\"\n", v, root, rendered, v, v)
			}
			fmt.Fprintf(&b, "export %s\n", v)
		}
	}

	for _, name := range slices.Sorted(maps.Keys(p.Environment)) {
		value, err := p.render(p.Environment[name])
		if err != nil {
			return "", err
		}
		fmt.Fprintf(&b, "__cenv_savevar %s\n", name)
		fmt.Fprintf(&b, "%s=\"%s\"\n", name, value)
		fmt.Fprintf(&b, "export %s\n", name)
	}

	return b.String(), nil
}

// WriteScript 渲染脚本并写入 w，常用于直接落盘。
func (p *Profile) WriteScript(w io.Writer) error {
	script, err := p.Script()
	if err != nil {
		return err
	}
	_, err = io.WriteString(w, script)

	return err
}

// render 通过替换变量表展开单个模板，失败时附带模板原文。
func (p *Profile) render(text string) (string, error) {
	out, err := varexp.Expand(text, p.Vars)
	if err != nil {
		return "", fmt.Errorf("activate: expand %q: %w", text, err)
	}

	return out, nil
}
