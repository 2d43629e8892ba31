package snowflake

import "github.com/bwmarrin/snowflake"

var node *snowflake.Node

func init() {
	node, _ = snowflake.NewNode(1)
}

func GenID() int64 {
	return node.Generate().Int64()
}

// GenRequestID is the base36 form used in the X-Request-ID header.
func GenRequestID() string {
	return node.Generate().Base36()
}
