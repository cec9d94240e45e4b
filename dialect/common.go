package dialect

import "github.com/omniwsa/omniwsa/strlit"

// backslashStringConfig is the escape table shared by the Burghard,
// voliva and Whitelips string literal syntaxes: standard C-style
// backslash escapes with a doubled-quote fallback disabled.
func backslashStringConfig(quote byte) strlit.Config {
	return strlit.Config{
		Quote: quote,
		Escapes: map[byte]string{
			'n': "\n", 't': "\t", 'r': "\r", '0': "\x00",
			'\\': "\\", '\'': "'", '"': "\"",
		},
		AllowRawNewline: false,
	}
}
