package cmd

import (
	"io/fs"
	"os"
	"path/filepath"
)

// dirProvider resolves every include directive, nested ones included,
// against the root source file's directory, an os.DirFS-backed
// compile.SourceProvider.
type dirProvider struct {
	fsys fs.FS
}

func newDirProvider(rootFile string) dirProvider {
	return dirProvider{fsys: os.DirFS(filepath.Dir(rootFile))}
}

func (p dirProvider) Read(name string) ([]byte, error) {
	return fs.ReadFile(p.fsys, filepath.ToSlash(name))
}
