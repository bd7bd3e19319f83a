package catalog

// Source supplies the effective lesson catalog.
type Source interface {
	// Catalog returns the catalog plus warnings about entries that were
	// skipped while loading.
	Catalog() (*Catalog, []string, error)
}

// FileSource layers a lesson directory over the builtin catalog. An empty
// directory path serves the builtin catalog alone.
type FileSource struct {
	Dir string
}

func (s *FileSource) Catalog() (*Catalog, []string, error) {
	base := Builtin()
	if s.Dir == "" {
		return base, nil, nil
	}
	extra, warnings, err := LoadDir(s.Dir)
	if err != nil {
		return nil, warnings, err
	}
	return Merge(base, extra), warnings, nil
}

// StaticSource serves a fixed catalog (used by tests).
type StaticSource struct {
	Cat *Catalog
}

func (s *StaticSource) Catalog() (*Catalog, []string, error) {
	return s.Cat, nil, nil
}
