package wstoken

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTokenString(t *testing.T) {
	assert.Equal(t, "S", Space.String())
	assert.Equal(t, "T", Tab.String())
	assert.Equal(t, "L", LineFeed.String())
	assert.Equal(t, "?", Token(99).String())
}

func TestAppendIntPositiveWithSign(t *testing.T) {
	out := Stream{}.AppendInt([]bool{true, false}, false, true)
	assert.Equal(t, Stream{Space, Tab, Space, LineFeed}, out)
}

func TestAppendIntNegativeWithSign(t *testing.T) {
	out := Stream{}.AppendInt([]bool{true}, true, true)
	assert.Equal(t, Stream{Tab, Tab, LineFeed}, out)
}

func TestAppendIntZeroSignless(t *testing.T) {
	out := Stream{}.AppendInt(nil, false, false)
	assert.Equal(t, Stream{LineFeed}, out)
}

func TestAppendIntZeroPositiveSigned(t *testing.T) {
	out := Stream{}.AppendInt(nil, false, true)
	assert.Equal(t, Stream{Space, LineFeed}, out)
}

func TestDefaultEncoderRoundTrips(t *testing.T) {
	s := Stream{Space, Tab, Tab, LineFeed}
	enc := DefaultEncoder{}
	b := enc.Encode(s)
	assert.Equal(t, []byte{' ', '\t', '\t', '\n'}, b)

	back, err := enc.Decode(b)
	assert.NoError(t, err)
	assert.Equal(t, s, back)
}

func TestDefaultEncoderDecodeSkipsOtherBytes(t *testing.T) {
	enc := DefaultEncoder{}
	back, err := enc.Decode([]byte("abc\ndef"))
	assert.NoError(t, err)
	assert.Equal(t, Stream{LineFeed}, back)
}
