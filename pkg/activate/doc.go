// Package activate 负责环境描述与 activate 脚本的组装。
//
// [Profile] 聚合一次生成所需的全部输入：目标目录、提示符、替换变量、
// 六类路径后缀与额外环境变量。[Profile.Script] 将其渲染为完整的
// POSIX shell 激活脚本：
//
//  1. __cenv_defined / __cenv_savevar / __cenv_restorevar 辅助函数
//  2. deactivate()，还原全部受影响的变量
//  3. PS1 与各类路径变量（PATH、C_INCLUDE_PATH、INFOPATH、
//     LIBRARY_PATH/LD_LIBRARY_PATH/DYLD_LIBRARY_PATH、MANPATH、
//     PKG_CONFIG_PATH）的保存、前插与导出
//  4. 额外环境变量的保存、赋值与导出
//
// # 语义说明
//
//  1. 提示符、后缀与环境变量值经 varexp 渲染；Root、目录与变量名不渲染
//  2. 后缀为空的类别不出现在脚本中
//  3. 额外环境变量按名字排序输出，脚本内容完全可复现
//  4. 任何渲染失败都让整个脚本不产出，没有部分结果
//
// # 快速开始
//
//	p := &activate.Profile{
//	    Folder: "/opt/myenv",
//	    Vars:   map[string]string{"mach_type": "x86_64-linux-gnu"},
//	}
//	p.ApplyDefaults()
//	script, err := p.Script()
//
// 详见 [Profile] 与 [Profile.Script] 文档。
package activate
