package varexp

import (
	"errors"
	"fmt"
	"strings"
)

// ═══════════════════════════════════════════════════════════════════════════
// 错误定义
// ═══════════════════════════════════════════════════════════════════════════

// MaxDepth 为同时处于展开中的引用数量上限。
// 打开第 MaxDepth+1 个引用立即失败，不再消费后续输入。
const MaxDepth = 1024

var (
	// ErrUnknownVariable 表示闭合引用的名字不在变量表中。
	ErrUnknownVariable = errors.New("unknown variable")

	// ErrDepthExceeded 表示嵌套引用超过 [MaxDepth] 层。
	ErrDepthExceeded = errors.New("recursion depth limit exceeded in variable")

	// ErrUnterminatedVariable 表示输入结束时仍有未闭合的 ${...} 引用。
	ErrUnterminatedVariable = errors.New("unterminated braced variable")

	// ErrInvalidStartChar 表示 "$" 之后出现了既不是名字字符
	// 也不是 "{" 或 "$" 的字符。
	ErrInvalidStartChar = errors.New("invalid variable start character")
)

func isVarNameChar(ch byte) bool {
	return ch == '_' ||
		(ch >= 'a' && ch <= 'z') ||
		(ch >= 'A' && ch <= 'Z') ||
		(ch >= '0' && ch <= '9')
}

// ═══════════════════════════════════════════════════════════════════════════
// 引用帧栈
// ═══════════════════════════════════════════════════════════════════════════

// frame 表示一个已打开、尚未解析的引用，name 为至今累积的名字。
type frame struct {
	braced bool
	name   []byte
}

type expander struct {
	vars        map[string]string
	out         strings.Builder
	stack       []frame
	afterDollar bool
}

func (e *expander) topBraced() bool {
	return len(e.stack) > 0 && e.stack[len(e.stack)-1].braced
}

func (e *expander) topUnbraced() bool {
	return len(e.stack) > 0 && !e.stack[len(e.stack)-1].braced
}

// write 按路由规则写入单个字符：有打开的引用时进入其名字缓冲，
// 否则直接进入输出。
func (e *expander) write(ch byte) {
	if n := len(e.stack); n > 0 {
		e.stack[n-1].name = append(e.stack[n-1].name, ch)

		return
	}
	e.out.WriteByte(ch)
}

func (e *expander) writeString(s string) {
	if n := len(e.stack); n > 0 {
		e.stack[n-1].name = append(e.stack[n-1].name, s...)

		return
	}
	e.out.WriteString(s)
}

func (e *expander) push(braced bool) error {
	if len(e.stack) >= MaxDepth {
		return fmt.Errorf("varexp: %w", ErrDepthExceeded)
	}
	e.stack = append(e.stack, frame{braced: braced})

	return nil
}

// pop 解析栈顶引用：按累积的名字查表，值再经 write 路由写入
// 外层引用或输出。
func (e *expander) pop() error {
	top := e.stack[len(e.stack)-1]
	e.stack = e.stack[:len(e.stack)-1]

	val, ok := e.vars[string(top.name)]
	if !ok {
		return fmt.Errorf("varexp: %w: %s", ErrUnknownVariable, top.name)
	}
	e.writeString(val)

	return nil
}

// ═══════════════════════════════════════════════════════════════════════════
// Variable Substitution
// ═══════════════════════════════════════════════════════════════════════════

func (e *expander) step(ch byte) error {
	switch {
	case ch == '$':
		if e.afterDollar {
			// "$$" 转义为字面 "$"
			e.afterDollar = false
			e.write('$')

			return nil
		}
		if e.topUnbraced() {
			if err := e.pop(); err != nil {
				return err
			}
		}
		e.afterDollar = true

		return nil

	case ch == '{':
		if e.afterDollar {
			e.afterDollar = false

			return e.push(true)
		}
		if e.topUnbraced() {
			if err := e.pop(); err != nil {
				return err
			}
		}
		e.write('{')

		return nil

	case ch == '}':
		// bare 引用由任何非名字字符终结，"}" 也不例外；
		// 先解析它，再看 "}" 是否闭合一个 braced 引用
		if e.topUnbraced() {
			if err := e.pop(); err != nil {
				return err
			}
		}
		if e.topBraced() && !e.afterDollar {
			return e.pop()
		}
		e.afterDollar = false
		e.write('}')

		return nil

	case isVarNameChar(ch):
		if e.afterDollar {
			e.afterDollar = false
			if err := e.push(false); err != nil {
				return err
			}
		}
		e.write(ch)

		return nil

	default:
		if e.topUnbraced() {
			// 终结字符本身不写入输出
			return e.pop()
		}
		if e.afterDollar {
			return fmt.Errorf("varexp: %w: %q", ErrInvalidStartChar, ch)
		}
		e.write(ch)

		return nil
	}
}

// finish 在输入结束后收尾：未闭合的 braced 引用是语法错误，
// 未闭合的 bare 引用从内到外正常解析。行尾孤立的 "$" 被丢弃。
func (e *expander) finish() (string, error) {
	for len(e.stack) > 0 {
		if e.stack[len(e.stack)-1].braced {
			return "", fmt.Errorf("varexp: %w", ErrUnterminatedVariable)
		}
		if err := e.pop(); err != nil {
			return "", err
		}
	}

	return e.out.String(), nil
}

// Expand 将 text 中的 $NAME 与 ${NAME} 引用替换为 vars 中对应的值。
//
// 语义说明：
//  1. 单趟自左向右扫描，字面字符立即写入输出
//  2. "$$" 展开为单个字面 "$"，无论当前是否处于引用内部
//  3. bare 形式由首个非名字字符或输入结尾隐式终结，名字贪婪匹配
//     （"$namerest" 查找键 "namerest"）；终结字符本身不写入输出
//  4. braced 形式由匹配的 "}" 显式终结，名字可包含 "}" 之外的任意
//     字符；引用可嵌套，内层展开结果拼入外层名字
//  5. 查找为大小写敏感的精确匹配；vars 在调用期间不会被修改
//  6. 展开结果不做二次扫描：值中的 "$" 按字面输出
//
// 失败时返回包装后的哨兵错误，可用 errors.Is 判定：
// [ErrUnknownVariable]、[ErrDepthExceeded]、[ErrUnterminatedVariable]、
// [ErrInvalidStartChar]。错误信息携带出错的名字或字符。
func Expand(text string, vars map[string]string) (string, error) {
	if !strings.Contains(text, "$") {
		return text, nil
	}

	e := &expander{vars: vars}
	e.out.Grow(len(text))

	for i := 0; i < len(text); i++ {
		if err := e.step(text[i]); err != nil {
			return "", err
		}
	}

	return e.finish()
}
