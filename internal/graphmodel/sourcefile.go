package graphmodel

// SourceFile is a path plus the modules it belongs to and the imports it
// declares (§3). A file may belong to more than one module when it is
// compiled into multiple targets (§4.1).
type SourceFile struct {
	Path    string
	Modules StringSet
	Imports []string
}

// NewSourceFile returns an empty SourceFile for path.
func NewSourceFile(path string) *SourceFile {
	return &SourceFile{
		Path:    path,
		Modules: NewStringSet(),
	}
}
