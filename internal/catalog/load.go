package catalog

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"gopkg.in/yaml.v3"

	"github.com/jmorland/bmadcoach/internal/domain"
)

// LoadDir loads lesson YAML files (*.yml, *.yaml) from dir. One file holds
// one lesson. Unparseable or invalid files are skipped and reported as
// warnings rather than failing the whole catalog; only an unreadable
// directory is an error. A missing directory yields an empty catalog.
func LoadDir(dir string) (*Catalog, []string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return New(nil), nil, nil
		}
		return nil, nil, fmt.Errorf("scan lesson dir: %w", err)
	}

	var files []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		switch filepath.Ext(entry.Name()) {
		case ".yml", ".yaml":
			files = append(files, filepath.Join(dir, entry.Name()))
		}
	}
	sort.Strings(files)

	var lessons []domain.Lesson
	var warnings []string
	for _, path := range files {
		lesson, loadErr := loadFile(path)
		if loadErr != nil {
			warnings = append(warnings, fmt.Sprintf("skipped %s: %v", filepath.Base(path), loadErr))
			continue
		}
		lessons = append(lessons, lesson)
	}
	return New(lessons), warnings, nil
}

func loadFile(path string) (domain.Lesson, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return domain.Lesson{}, fmt.Errorf("read: %w", err)
	}
	var doc lessonDoc
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return domain.Lesson{}, fmt.Errorf("parse: %w", err)
	}
	if err := doc.validate(); err != nil {
		return domain.Lesson{}, err
	}
	return doc.toLesson(), nil
}
