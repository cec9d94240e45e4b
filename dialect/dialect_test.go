package dialect

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistryLookupFindsEveryCatalogedDialect(t *testing.T) {
	r := NewRegistry()
	for _, id := range r.IDs() {
		d, ok := r.Lookup(id)
		require.True(t, ok, "dialect %s missing from its own registry", id)
		assert.Equal(t, id, d.ID)
	}
}

func TestRegistryLookupUnknownIDFails(t *testing.T) {
	r := NewRegistry()
	_, ok := r.Lookup(ID("does-not-exist"))
	assert.False(t, ok)
}

func TestFoldMnemonicRespectsCaseFoldPolicy(t *testing.T) {
	d := &Dialect{Lex: LexConfig{CaseFold: AsciiInsensitive}}
	assert.Equal(t, "push", d.FoldMnemonic("PUSH"))

	d.Lex.CaseFold = Sensitive
	assert.Equal(t, "PUSH", d.FoldMnemonic("PUSH"))
}

func TestLoadOverlayAddsMnemonicAliasWithoutMutatingBase(t *testing.T) {
	r := NewRegistry()
	base, ok := r.Lookup(Burghard)
	require.True(t, ok)
	_, hadAliasBefore := base.Mnemonics["p"]
	require.False(t, hadAliasBefore)

	overlaid, err := LoadOverlay([]byte("mnemonic_aliases:\n  p: push\n"), base)
	require.NoError(t, err)
	assert.Equal(t, OpPush, overlaid.Mnemonics["p"])
	_, stillAbsent := base.Mnemonics["p"]
	assert.False(t, stillAbsent)
}

func TestLoadOverlayOverridesNamedBugFlag(t *testing.T) {
	r := NewRegistry()
	base, ok := r.Lookup(CensoredUsername)
	require.True(t, ok)
	require.True(t, base.Bugs.CensoredUsernameZeroSignNew)

	overlaid, err := LoadOverlay([]byte("bugs:\n  censored_username_zero_sign_new: false\n"), base)
	require.NoError(t, err)
	assert.False(t, overlaid.Bugs.CensoredUsernameZeroSignNew)
	assert.True(t, base.Bugs.CensoredUsernameZeroSignNew)
}
