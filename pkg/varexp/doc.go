// Package varexp 提供 $NAME 与 ${NAME} 形式的变量替换。
//
// 针对 activate 脚本片段（提示符、路径后缀、环境变量值）做单趟流式
// 替换。变量表由调用方构建，调用期间保持只读；不读取进程环境，
// 不支持命令替换、算术展开或默认值运算符。
//
// # 设计参考
//
//   - POSIX Shell 参数展开的最小子集（仅 $NAME / ${NAME} / $$）
//
// # 语义说明
//
//  1. braced 引用可嵌套，内层展开结果拼入外层名字（间接引用）
//  2. bare 引用由首个非名字字符隐式终结，终结字符不写入输出
//  3. 同时展开中的引用最多 [MaxDepth] 层，超出立即失败
//  4. 任何失败都终止本次调用，没有部分结果
//
// # 快速开始
//
// 展开路径后缀中的机器类型：
//
//	vars := map[string]string{"mach_type": "x86_64-linux-gnu"}
//	out, err := varexp.Expand("lib/${mach_type}", vars)
//
// 嵌套引用，内层结果作为外层名字：
//
//	vars := map[string]string{"x": "y", "y": "Z"}
//	out, err := varexp.Expand("${$x}", vars) // "Z"
//
// 详见 [Expand] 文档。
package varexp
