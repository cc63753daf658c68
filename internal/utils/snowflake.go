package utils

import (
	"sync"
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/pkg/errors"
)

var (
	node     *snowflake.Node
	nodeOnce sync.Once
)

// InitSnowflake sets the id epoch (YYYY-MM-DD) and the node number.
func InitSnowflake(startTime string, machineID int64) error {
	st, err := time.Parse("2006-01-02", startTime)
	if err != nil {
		return errors.Wrap(err, "utils:InitSnowflake: parse start time")
	}
	snowflake.Epoch = st.UnixMilli()
	n, err := snowflake.NewNode(machineID)
	if err != nil {
		return errors.Wrap(err, "utils:InitSnowflake: NewNode")
	}
	node = n
	return nil
}

// GenSnowflakeID falls back to node 0 on the default epoch when
// InitSnowflake was never called.
func GenSnowflakeID() int64 {
	nodeOnce.Do(func() {
		if node == nil {
			node, _ = snowflake.NewNode(0)
		}
	})
	return node.Generate().Int64()
}
