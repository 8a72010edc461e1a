package activate

import (
	"path/filepath"
)

// Profile 描述一个待激活的开发环境。
//
// 字段中凡是会被渲染的（Prompt、六类后缀、Environment 的值）都允许
// 引用 Vars 中的变量，语法见 varexp 包；其余字段按字面值使用。
type Profile struct {
	// Folder 目标目录，规范化后的绝对路径
	Folder string

	// Root 后缀拼接的前缀目录，留空时使用 Folder
	Root string

	// Prompt PS1 前缀模板
	Prompt string

	// Vars 替换变量表
	Vars map[string]string

	// Exec 可执行目录后缀，进入 PATH
	Exec []string

	// Include 头文件目录后缀，进入 C_INCLUDE_PATH
	Include []string

	// Info info 文档目录后缀，进入 INFOPATH
	Info []string

	// Lib 库目录后缀，进入 LIBRARY_PATH、LD_LIBRARY_PATH 与 DYLD_LIBRARY_PATH
	Lib []string

	// Man 手册目录后缀，进入 MANPATH
	Man []string

	// PkgConfig pkg-config 目录后缀，进入 PKG_CONFIG_PATH
	PkgConfig []string

	// Environment 额外导出的环境变量，值为模板
	Environment map[string]string
}

// ApplyDefaults 补全常规安装布局的派生默认值。
//
// 调用后：
//
//  1. Prompt 为空时设为 "(目录名) "
//  2. Root 为空时设为 Folder
//  3. 六类后缀追加 FHS 风格的标准目录；依赖机器类型的目录仅在
//     Vars 中定义了对应变量（mach_type、mach_x32、mach_32、mach_64）
//     时追加
//
// 已有的后缀保持在追加项之前，因此调用方的配置优先生效。
func (p *Profile) ApplyDefaults() {
	if p.Prompt == "" {
		p.Prompt = "(" + filepath.Base(p.Folder) + ") "
	}
	if p.Root == "" {
		p.Root = p.Folder
	}

	p.Exec = append(p.Exec, "bin")

	p.Include = append(p.Include, "include")
	if p.defined("mach_type") {
		p.Include = append(p.Include, "include/${mach_type}")
	}

	p.Info = append(p.Info, "share/info")

	p.Lib = append(p.Lib, "lib")
	if p.defined("mach_type") {
		p.Lib = append(p.Lib, "lib/${mach_type}")
	}
	// 多 ABI 库目录，仅在声明了对应位宽时出现
	if p.defined("mach_x32") {
		p.Lib = append(p.Lib, "libx32")
	}
	if p.defined("mach_32") {
		p.Lib = append(p.Lib, "lib32")
	}
	if p.defined("mach_64") {
		p.Lib = append(p.Lib, "lib64")
	}

	p.Man = append(p.Man, "man", "share/man")

	p.PkgConfig = append(p.PkgConfig, "lib/pkgconfig", "share/pkgconfig")
	if p.defined("mach_type") {
		p.PkgConfig = append(p.PkgConfig, "lib/${mach_type}/pkgconfig")
	}
}

// defined 判断变量是否在 Vars 中声明，空值也算声明。
func (p *Profile) defined(name string) bool {
	_, ok := p.Vars[name]

	return ok
}
