package dialect

import "gopkg.in/yaml.v3"

// Overlay is a deployment's locally tweaked bug-flags or additional
// mnemonic aliases for one base dialect, expressed as YAML — the same
// optional-overlay shape the teacher uses for its docstring-embedded
// YAML metadata (sqlparser/dom.go's DocstringYamldoc, cli/cmd/config.go's
// sqlcode.yaml), generalized from "per-procedure metadata" to "per-
// dialect catalog tweaks". Per spec.md §9's "the only process-level
// invariant is that the dialect catalog is read-only", an Overlay never
// mutates the base Dialect in place; LoadOverlay returns a new value,
// which callers may install with Registry.Register.
type Overlay struct {
	Base            string            `yaml:"base"`
	MnemonicAliases map[string]string `yaml:"mnemonic_aliases"` // alias -> existing mnemonic
	Bugs            *BugOverlay       `yaml:"bugs"`
}

// BugOverlay selectively overrides BugFlags fields; a nil field leaves
// the base dialect's value untouched.
type BugOverlay struct {
	BurghardLowercasesStrings   *bool `yaml:"burghard_lowercases_strings"`
	LimeDigitCap64              *bool `yaml:"lime_digit_cap_64"`
	PalaiologosXchgXchgRemoved  *bool `yaml:"palaiologos_xchg_xchg_removed"`
	PalaiologosWrap32           *bool `yaml:"palaiologos_wrap_32"`
	VolivaStorestrZeroTerm      *bool `yaml:"voliva_storestr_zero_term"`
	CensoredUsernameZeroSignNew *bool `yaml:"censored_username_zero_sign_new"`
}

// LoadOverlay parses data as an Overlay and applies it to base, returning
// a cloned Dialect that base is left untouched by. The clone's ID is
// unchanged from base's — callers that want to register the overlaid
// dialect under a distinct ID should set Dialect.ID on the result before
// calling Registry.Register.
func LoadOverlay(data []byte, base *Dialect) (*Dialect, error) {
	var ov Overlay
	if err := yaml.Unmarshal(data, &ov); err != nil {
		return nil, err
	}
	d := base.clone()
	for alias, target := range ov.MnemonicAliases {
		if op, ok := d.Mnemonics[target]; ok {
			d.Mnemonics[alias] = op
		}
	}
	if ov.Bugs != nil {
		applyBugOverlay(&d.Bugs, ov.Bugs)
	}
	return d, nil
}

func applyBugOverlay(b *BugFlags, ov *BugOverlay) {
	if ov.BurghardLowercasesStrings != nil {
		b.BurghardLowercasesStrings = *ov.BurghardLowercasesStrings
	}
	if ov.LimeDigitCap64 != nil {
		b.LimeDigitCap64 = *ov.LimeDigitCap64
	}
	if ov.PalaiologosXchgXchgRemoved != nil {
		b.PalaiologosXchgXchgRemoved = *ov.PalaiologosXchgXchgRemoved
	}
	if ov.PalaiologosWrap32 != nil {
		b.PalaiologosWrap32 = *ov.PalaiologosWrap32
	}
	if ov.VolivaStorestrZeroTerm != nil {
		b.VolivaStorestrZeroTerm = *ov.VolivaStorestrZeroTerm
	}
	if ov.CensoredUsernameZeroSignNew != nil {
		b.CensoredUsernameZeroSignNew = *ov.CensoredUsernameZeroSignNew
	}
}

// clone returns a shallow copy of d with its Mnemonics map deep-copied,
// so overlay aliasing never mutates the shared base catalog entry.
func (d *Dialect) clone() *Dialect {
	c := *d
	c.Mnemonics = make(map[string]Opcode, len(d.Mnemonics))
	for k, v := range d.Mnemonics {
		c.Mnemonics[k] = v
	}
	return &c
}
