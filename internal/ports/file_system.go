package ports

type AccessMode int

const (
	ReadWrite = iota
	ReadWriteExecute
	ReadAllWriteOwner
)

type FileSystem interface {
	WriteFile(path string, content []byte, accessMode AccessMode) error
	EnsureDirExists(path string) error
	FileExists(path string) (bool, error)
	// TempDir creates a fresh directory for scratch files and returns its
	// path. The caller removes it with RemoveAll when done.
	TempDir(pattern string) (string, error)
	RemoveAll(path string) error
}
