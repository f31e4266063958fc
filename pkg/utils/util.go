package utils

import (
	"bytes"
	"fmt"
	"runtime"
)

// PanicTrace 从调用 recover 的位置开始展开调用栈
func PanicTrace(err any) string {
	buf := new(bytes.Buffer)
	fmt.Fprintf(buf, "%v\n", err)
	for i := 2; ; i++ {
		pc, file, line, ok := runtime.Caller(i)
		if !ok {
			break
		}
		fn := runtime.FuncForPC(pc)
		name := "?"
		if fn != nil {
			name = fn.Name()
		}
		fmt.Fprintf(buf, "%s\n\t%s:%d\n", name, file, line)
	}
	return buf.String()
}
