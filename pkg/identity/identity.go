// Package identity issues roster record IDs. Tracker IDs carry a
// monotonically increasing numeric suffix so insertion recency can be
// recovered from the ID alone.
package identity

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/bwmarrin/snowflake"
)

// InternPrefix is the tracker ID prefix.
const InternPrefix = "INT"

// Generator produces unique record IDs.
type Generator interface {
	NextID() string
}

// Snowflake issues "<prefix>-<n>" IDs backed by a snowflake node, so the
// numeric component is unique and increases with creation time.
type Snowflake struct {
	node   *snowflake.Node
	prefix string
}

// NewSnowflake builds a generator on the given node ID.
func NewSnowflake(nodeID int64, prefix string) (*Snowflake, error) {
	node, err := snowflake.NewNode(nodeID)
	if err != nil {
		return nil, fmt.Errorf("create snowflake node: %w", err)
	}
	if prefix == "" {
		prefix = InternPrefix
	}
	return &Snowflake{node: node, prefix: prefix}, nil
}

// NextID returns the next ID.
func (s *Snowflake) NextID() string {
	return fmt.Sprintf("%s-%d", s.prefix, s.node.Generate().Int64())
}

// NumericSuffix extracts the numeric component after the last dash. IDs
// without one sort as zero.
func NumericSuffix(id string) int64 {
	idx := strings.LastIndexByte(id, '-')
	if idx < 0 || idx == len(id)-1 {
		return 0
	}
	n, err := strconv.ParseInt(id[idx+1:], 10, 64)
	if err != nil {
		return 0
	}
	return n
}
