package generator

import (
	"github.com/omniwsa/omniwsa/dialect"
	"github.com/omniwsa/omniwsa/wstoken"
)

// instrPrefix is the fixed IMP-plus-command token sequence that
// precedes any operand for each canonical Whitespace opcode, per the
// published instruction set (Stack Manipulation [S], Arithmetic [TS],
// Heap Access [TT], Flow Control [L], I/O [TL]).
var instrPrefix = map[dialect.Opcode]wstoken.Stream{
	dialect.OpPush:     {wstoken.Space, wstoken.Space},
	dialect.OpDup:      {wstoken.Space, wstoken.LineFeed, wstoken.Space},
	dialect.OpCopy:     {wstoken.Space, wstoken.Tab, wstoken.Space},
	dialect.OpSwap:     {wstoken.Space, wstoken.LineFeed, wstoken.Tab},
	dialect.OpDrop:     {wstoken.Space, wstoken.LineFeed, wstoken.LineFeed},
	dialect.OpSlide:    {wstoken.Space, wstoken.Tab, wstoken.LineFeed},
	dialect.OpAdd:      {wstoken.Tab, wstoken.Space, wstoken.Space, wstoken.Space},
	dialect.OpSub:      {wstoken.Tab, wstoken.Space, wstoken.Space, wstoken.Tab},
	dialect.OpMul:      {wstoken.Tab, wstoken.Space, wstoken.Space, wstoken.LineFeed},
	dialect.OpDiv:      {wstoken.Tab, wstoken.Space, wstoken.Tab, wstoken.Space},
	dialect.OpMod:      {wstoken.Tab, wstoken.Space, wstoken.Tab, wstoken.Tab},
	dialect.OpStore:    {wstoken.Tab, wstoken.Tab, wstoken.Space},
	dialect.OpRetrieve: {wstoken.Tab, wstoken.Tab, wstoken.Tab},
	dialect.OpLabel:    {wstoken.LineFeed, wstoken.Space, wstoken.Space},
	dialect.OpCall:     {wstoken.LineFeed, wstoken.Space, wstoken.Tab},
	dialect.OpJump:     {wstoken.LineFeed, wstoken.Space, wstoken.LineFeed},
	dialect.OpJumpZero: {wstoken.LineFeed, wstoken.Tab, wstoken.Space},
	dialect.OpJumpNeg:  {wstoken.LineFeed, wstoken.Tab, wstoken.Tab},
	dialect.OpRet:      {wstoken.LineFeed, wstoken.Tab, wstoken.LineFeed},
	dialect.OpEnd:      {wstoken.LineFeed, wstoken.LineFeed, wstoken.LineFeed},
	dialect.OpOutChar:  {wstoken.Tab, wstoken.LineFeed, wstoken.Space, wstoken.Space},
	dialect.OpOutNum:   {wstoken.Tab, wstoken.LineFeed, wstoken.Space, wstoken.Tab},
	dialect.OpReadChar: {wstoken.Tab, wstoken.LineFeed, wstoken.Tab, wstoken.Space},
	dialect.OpReadNum:  {wstoken.Tab, wstoken.LineFeed, wstoken.Tab, wstoken.Tab},
}
