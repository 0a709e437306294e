package course

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// Load reads and validates a single course manifest.
func Load(path string) (*Course, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read course manifest: %w", err)
	}
	var c Course
	if err := json.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("parse course manifest %s: %w", path, err)
	}
	if err := Validate(&c); err != nil {
		return nil, fmt.Errorf("invalid course %s: %w", path, err)
	}
	return &c, nil
}

// LoadDir loads every *.json manifest under dir, sorted by course ID.
// A directory with no manifests yields an empty library, not an error.
func LoadDir(dir string) ([]*Course, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("read course dir: %w", err)
	}

	var courses []*Course
	for _, e := range entries {
		if e.IsDir() || filepath.Ext(e.Name()) != ".json" {
			continue
		}
		c, err := Load(filepath.Join(dir, e.Name()))
		if err != nil {
			return nil, err
		}
		courses = append(courses, c)
	}
	sort.Slice(courses, func(i, j int) bool { return courses[i].ID < courses[j].ID })
	return courses, nil
}

// DefaultDir resolves the course manifest directory in priority order:
// 1. RETAIN_COURSES environment variable
// 2. $XDG_DATA_HOME/retain/courses
// 3. ~/.local/share/retain/courses
func DefaultDir() (string, error) {
	if p := os.Getenv("RETAIN_COURSES"); p != "" {
		return p, nil
	}
	dataHome := os.Getenv("XDG_DATA_HOME")
	if dataHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		dataHome = filepath.Join(home, ".local", "share")
	}
	return filepath.Join(dataHome, "retain", "courses"), nil
}

// Validate performs structural checks on a course. It returns a combined
// error describing all problems found, or nil if valid. Negative
// checkpoint timestamps are allowed (the engine treats them as
// unreachable) but non-ascending ones and duplicate IDs are authoring
// errors.
func Validate(c *Course) error {
	var errs []string

	if c.ID == "" {
		errs = append(errs, "course has no ID")
	}

	videoIDs := make(map[string]bool, len(c.Videos))
	for _, v := range c.Videos {
		if v.ID == "" {
			errs = append(errs, "video has no ID")
			continue
		}
		if videoIDs[v.ID] {
			errs = append(errs, fmt.Sprintf("duplicate video ID: %q", v.ID))
		}
		videoIDs[v.ID] = true

		if v.Media == "" {
			errs = append(errs, fmt.Sprintf("video %q has no media source", v.ID))
		}

		cpIDs := make(map[string]bool, len(v.Checkpoints))
		lastAt := -1.0
		for _, cp := range v.Checkpoints {
			if cp.ID == "" {
				errs = append(errs, fmt.Sprintf("video %q: checkpoint has no ID", v.ID))
				continue
			}
			if cpIDs[cp.ID] {
				errs = append(errs, fmt.Sprintf("video %q: duplicate checkpoint ID %q", v.ID, cp.ID))
			}
			cpIDs[cp.ID] = true

			if cp.At >= 0 {
				if cp.At <= lastAt {
					errs = append(errs, fmt.Sprintf("video %q: checkpoint %q out of order (%.1fs after %.1fs)", v.ID, cp.ID, cp.At, lastAt))
				}
				lastAt = cp.At
			}
			if v.Duration > 0 && cp.At > v.Duration {
				errs = append(errs, fmt.Sprintf("video %q: checkpoint %q is past the end (%.1fs > %.1fs)", v.ID, cp.ID, cp.At, v.Duration))
			}
			if cp.Kind == "multiple_choice" && len(cp.Choices) < 2 {
				errs = append(errs, fmt.Sprintf("video %q: checkpoint %q needs at least 2 choices", v.ID, cp.ID))
			}
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("%s", strings.Join(errs, "; "))
	}
	return nil
}
