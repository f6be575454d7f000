package bytecode

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewBlockAllocatesDistinctIncreasingIDs(t *testing.T) {
	c := NewChunk()
	b0 := c.NewBlock(Instruction{Op: OpLiteral})
	b1 := c.NewBlock(Instruction{Op: OpJump, Target: ReturnBlock})
	assert.NotEqual(t, b0, b1)

	bb0, ok := c.Block(b0)
	assert.True(t, ok)
	assert.Len(t, bb0.Instrs, 1)
}

func TestBlockLookupMissReportsNotFound(t *testing.T) {
	c := NewChunk()
	_, ok := c.Block(BlockID(99))
	assert.False(t, ok)
}

func TestReturnBlockNeverResolves(t *testing.T) {
	c := NewChunk()
	c.NewBlock(Instruction{Op: OpJump, Target: ReturnBlock})
	_, ok := c.Block(ReturnBlock)
	assert.False(t, ok)
}

func TestOpStringCoversEveryOpcode(t *testing.T) {
	ops := []Op{
		OpLiteral, OpArr, OpApp, OpSet, OpMap, OpFunLiteral, OpJump,
		OpCondJump, OpThrow, OpSetCatchHandler, OpPush, OpPop, OpSwap,
		OpCall, OpTailCall, OpApply,
	}
	for _, op := range ops {
		assert.NotEqual(t, "Unknown", op.String())
	}
}
