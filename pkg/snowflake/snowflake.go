package snowflake

import (
	"fmt"

	"github.com/bwmarrin/snowflake"
)

var node *snowflake.Node

// Init creates the process-wide ID node. nodeID must be in [0, 1023].
// Must be called once before NextID.
func Init(nodeID int64) error {
	n, err := snowflake.NewNode(nodeID)
	if err != nil {
		return fmt.Errorf("create snowflake node: %w", err)
	}
	node = n
	return nil
}

// NextID returns the next unique ID. Panics if Init was not called.
func NextID() int64 {
	return node.Generate().Int64()
}
