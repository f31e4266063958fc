package snowflake

import "github.com/bwmarrin/snowflake"

var node *snowflake.Node

func init() {
	node, _ = snowflake.NewNode(1)
}

// GenID 审计日志等无自增主键的表使用
func GenID() int64 {
	return node.Generate().Int64()
}
