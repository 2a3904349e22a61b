package pos

import "github.com/bwmarrin/snowflake"

// IDGenerator yields unique int64 ids for new catalog entries.
type IDGenerator interface {
	NextID() int64
}

type snowflakeGenerator struct {
	node *snowflake.Node
}

// NewSnowflakeGenerator builds the default id generator. A single local
// process owns the data, so node 1 is always safe.
func NewSnowflakeGenerator() (IDGenerator, error) {
	node, err := snowflake.NewNode(1)
	if err != nil {
		return nil, err
	}
	return &snowflakeGenerator{node: node}, nil
}

func (g *snowflakeGenerator) NextID() int64 {
	return g.node.Generate().Int64()
}
