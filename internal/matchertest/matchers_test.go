package matchertest_test

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/aretw0/matchgen/internal/matchertest"
	"github.com/aretw0/matchgen/pkg/cursor"
)

// result is what every generated variant reports, with remainders and
// counts reduced to the number of consumed bytes.
type result[T any] struct {
	Value    T
	Consumed int
	OK       bool
}

// longest is the reference matcher: a linear scan for the longest key
// that prefixes in.
func longest[T any](table map[string]T, in []byte) result[T] {
	var best result[T]
	for key, value := range table {
		if len(key) > len(in) || string(in[:len(key)]) != key {
			continue
		}
		if !best.OK || len(key) > best.Consumed {
			best = result[T]{Value: value, Consumed: len(key), OK: true}
		}
	}
	return best
}

var basicTable = map[string]byte{
	"&amp;":  '&',
	"&lt;":   '<',
	"&gt;":   '>',
	"&quot;": '"',
}

var tupleTable = map[string]matchertest.Tuple{
	"aab": {Long: true, Path: []byte{1, 1}},
	"aa":  {Path: []byte{1, 1}},
	"ab":  {Long: true, Path: []byte{1}},
	"a":   {Path: []byte{1}},
}

var magicTable = map[string]string{
	"\x89PNG\r\n\x1a\n": "image/png",
	"GIF87a":            "image/gif",
	"GIF89a":            "image/gif",
	"\xff\xd8\xff":      "image/jpeg",
}

func fromRest[T any, S []byte | string](in []byte, v T, rest S, ok bool) result[T] {
	return result[T]{Value: v, Consumed: len(in) - len(rest), OK: ok}
}

var basicDecoders = map[string]func([]byte) result[byte]{
	"Slice": func(in []byte) result[byte] {
		v, rest, ok := matchertest.BasicEntityDecode(in)
		return fromRest(in, v, rest, ok)
	},
	"String": func(in []byte) result[byte] {
		v, rest, ok := matchertest.BasicEntityDecodeString(string(in))
		return fromRest(in, v, rest, ok)
	},
	"Flat": func(in []byte) result[byte] {
		v, rest, ok := matchertest.BasicEntityDecodeFlat(in)
		return fromRest(in, v, rest, ok)
	},
	"Count": func(in []byte) result[byte] {
		v, n, ok := matchertest.BasicEntityDecodeCount(in)
		return result[byte]{Value: v, Consumed: n, OK: ok}
	},
	"Cursor": func(in []byte) result[byte] {
		cur := cursor.New(in)
		v, ok := matchertest.BasicEntityDecodeCursor(&cur)
		return result[byte]{Value: v, Consumed: cur.Offset(), OK: ok}
	},
	"String Cursor": func(in []byte) result[byte] {
		cur := cursor.NewString(string(in))
		v, ok := matchertest.BasicEntityDecodeCursor(&cur)
		return result[byte]{Value: v, Consumed: cur.Offset(), OK: ok}
	},
}

var tupleDecoders = map[string]func([]byte) result[matchertest.Tuple]{
	"Slice": func(in []byte) result[matchertest.Tuple] {
		v, rest, ok := matchertest.SliceInTuple(in)
		return fromRest(in, v, rest, ok)
	},
	"Cursor": func(in []byte) result[matchertest.Tuple] {
		cur := cursor.New(in)
		v, ok := matchertest.SliceInTupleCursor(&cur)
		return result[matchertest.Tuple]{Value: v, Consumed: cur.Offset(), OK: ok}
	},
}

var nothingDecoders = map[string]func([]byte) result[byte]{
	"Slice": func(in []byte) result[byte] {
		v, rest, ok := matchertest.MatchNothing(in)
		return fromRest(in, v, rest, ok)
	},
	"Cursor": func(in []byte) result[byte] {
		cur := cursor.New(in)
		v, ok := matchertest.MatchNothingCursor(&cur)
		return result[byte]{Value: v, Consumed: cur.Offset(), OK: ok}
	},
}

var magicDecoders = map[string]func([]byte) result[string]{
	"String": func(in []byte) result[string] {
		v, rest, ok := matchertest.MagicNumber(string(in))
		return fromRest(in, v, rest, ok)
	},
}

// inputs returns every key with each of its prefixes, the prefixes with a
// stray byte appended, keys followed by more input, and n random strings
// over alphabet.
func inputs[T any](table map[string]T, alphabet string, n int) [][]byte {
	out := [][]byte{nil, {}}
	for key := range table {
		for i := 0; i <= len(key); i++ {
			out = append(out,
				[]byte(key[:i]),
				[]byte(key[:i]+"x"),
				[]byte(key+key[:i]),
			)
		}
	}

	r := rand.New(rand.NewPCG(1, 2))
	for range n {
		b := make([]byte, r.IntN(12))
		for i := range b {
			b[i] = alphabet[r.IntN(len(alphabet))]
		}
		out = append(out, b)
	}
	return out
}

func checkAgainstReference[T any](t *testing.T, table map[string]T, decoders map[string]func([]byte) result[T], alphabet string) {
	t.Helper()
	corpus := inputs(table, alphabet, 5000)
	for name, decode := range decoders {
		t.Run(name, func(t *testing.T) {
			for _, in := range corpus {
				if !assert.Equal(t, longest(table, in), decode(in), "input %q", in) {
					return
				}
			}
		})
	}
}

func TestBasicEntityDecode_MatchesReference(t *testing.T) {
	checkAgainstReference(t, basicTable, basicDecoders, "&amplgtquo;x")
}

func TestSliceInTuple_MatchesReference(t *testing.T) {
	checkAgainstReference(t, tupleTable, tupleDecoders, "abc")
}

func TestMatchNothing_MatchesReference(t *testing.T) {
	checkAgainstReference(t, map[string]byte{}, nothingDecoders, "ab&;")
}

func TestMagicNumber_MatchesReference(t *testing.T) {
	checkAgainstReference(t, magicTable, magicDecoders, "\x89PNG\r\n\x1a\xff\xd8GIF789a")
}

func TestBasicEntityDecode(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  result[byte]
	}{
		{"Nothing", "", result[byte]{}},
		{"Chars", "abc", result[byte]{}},
		{"Entity", "&amp;", result[byte]{Value: '&', Consumed: 5, OK: true}},
		{"Entity Chars", "&quot;abc", result[byte]{Value: '"', Consumed: 6, OK: true}},
		{"Entity Entity", "&lt;&gt;", result[byte]{Value: '<', Consumed: 4, OK: true}},
		{"Short Entity Chars", "&lt;abc", result[byte]{Value: '<', Consumed: 4, OK: true}},
		{"Invalid Entity", "&amp", result[byte]{}},
		{"Unknown Entity", "&nbsp;", result[byte]{}},
		{"Leading Chars", "x&amp;", result[byte]{}},
	}

	for name, decode := range basicDecoders {
		t.Run(name, func(t *testing.T) {
			for _, tt := range tests {
				assert.Equal(t, tt.want, decode([]byte(tt.input)), tt.name)
			}
		})
	}
}

func TestBasicEntityDecode_Remainder(t *testing.T) {
	in := []byte("&amp; on &amp; on")

	v, rest, ok := matchertest.BasicEntityDecode(in)
	assert.True(t, ok)
	assert.Equal(t, byte('&'), v)
	assert.Equal(t, " on &amp; on", string(rest))

	v, rest, ok = matchertest.BasicEntityDecode(rest)
	assert.False(t, ok)
	assert.Zero(t, v)
	assert.Equal(t, " on &amp; on", string(rest), "a miss returns the input unchanged")

	s, srest, ok := matchertest.BasicEntityDecodeString("&gt;&gt;")
	assert.True(t, ok)
	assert.Equal(t, byte('>'), s)
	assert.Equal(t, "&gt;", srest)
}

func TestBasicEntityDecodeCursor_Rewinds(t *testing.T) {
	cur := cursor.New([]byte("&amx"))
	_, ok := matchertest.BasicEntityDecodeCursor(&cur)
	assert.False(t, ok)
	assert.Zero(t, cur.Offset(), "a miss leaves the cursor where it started")
	assert.Equal(t, "&amx", string(cur.Rest()))

	cur = cursor.New([]byte("&quot;&lt;"))
	v, ok := matchertest.BasicEntityDecodeCursor(&cur)
	assert.True(t, ok)
	assert.Equal(t, byte('"'), v)
	v, ok = matchertest.BasicEntityDecodeCursor(&cur)
	assert.True(t, ok)
	assert.Equal(t, byte('<'), v)
	assert.Empty(t, cur.Rest())
}

func TestSliceInTuple(t *testing.T) {
	tests := []struct {
		input string
		want  result[matchertest.Tuple]
	}{
		{"", result[matchertest.Tuple]{}},
		{"b", result[matchertest.Tuple]{}},
		{"a", result[matchertest.Tuple]{Value: matchertest.Tuple{Path: []byte{1}}, Consumed: 1, OK: true}},
		{"ac", result[matchertest.Tuple]{Value: matchertest.Tuple{Path: []byte{1}}, Consumed: 1, OK: true}},
		{"ab", result[matchertest.Tuple]{Value: matchertest.Tuple{Long: true, Path: []byte{1}}, Consumed: 2, OK: true}},
		{"aa", result[matchertest.Tuple]{Value: matchertest.Tuple{Path: []byte{1, 1}}, Consumed: 2, OK: true}},
		{"aac", result[matchertest.Tuple]{Value: matchertest.Tuple{Path: []byte{1, 1}}, Consumed: 2, OK: true}},
		{"aab", result[matchertest.Tuple]{Value: matchertest.Tuple{Long: true, Path: []byte{1, 1}}, Consumed: 3, OK: true}},
		{"aaba", result[matchertest.Tuple]{Value: matchertest.Tuple{Long: true, Path: []byte{1, 1}}, Consumed: 3, OK: true}},
	}

	for name, decode := range tupleDecoders {
		t.Run(name, func(t *testing.T) {
			for _, tt := range tests {
				assert.Equal(t, tt.want, decode([]byte(tt.input)), "input %q", tt.input)
			}
		})
	}
}

func TestMagicNumber(t *testing.T) {
	v, rest, ok := matchertest.MagicNumber("GIF89a\x01\x00")
	assert.True(t, ok)
	assert.Equal(t, "image/gif", v)
	assert.Equal(t, "\x01\x00", rest)

	v, _, ok = matchertest.MagicNumber("\x89PNG\r\n\x1a\n....IHDR")
	assert.True(t, ok)
	assert.Equal(t, "image/png", v)

	_, rest, ok = matchertest.MagicNumber("GIF88a")
	assert.False(t, ok)
	assert.Equal(t, "GIF88a", rest)
}
