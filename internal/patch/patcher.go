package patch

import (
	"fmt"
	"os"
)

// filePerm is the mode used when the original file mode cannot be read.
const filePerm = 0o644

// Result holds the outcome of patching a single file. Original and Patched
// are the full file contents before and after rule application; they are
// equal when Changed is false.
type Result struct {
	Path     string
	Changed  bool
	Original string
	Patched  string
}

// Patcher applies a rule set to files on disk. The zero value is not usable;
// construct with a rule set.
type Patcher struct {
	Rules RuleSet

	// DryRun computes the result without writing anything back.
	DryRun bool

	// BackupSuffix, when non-empty, saves the original content to
	// path+BackupSuffix before overwriting.
	BackupSuffix string
}

// New creates a Patcher for the given rule set.
func New(rules RuleSet) *Patcher {
	return &Patcher{Rules: rules}
}

// File reads the file at path, applies the rule set, and writes the patched
// content back if (and only if) it differs from what was read. Content
// outside matched regions is preserved verbatim. The file is replaced whole;
// there are no partial writes.
func (p *Patcher) File(path string) (*Result, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}

	original := string(data)
	patched, changed := p.Rules.Apply(original)

	result := &Result{
		Path:     path,
		Changed:  changed,
		Original: original,
		Patched:  patched,
	}

	if !changed || p.DryRun {
		return result, nil
	}

	mode := os.FileMode(filePerm)
	if info, statErr := os.Stat(path); statErr == nil {
		mode = info.Mode()
	}

	if p.BackupSuffix != "" {
		backupPath := path + p.BackupSuffix

		writeErr := os.WriteFile(backupPath, data, mode)
		if writeErr != nil {
			return nil, fmt.Errorf("write backup %s: %w", backupPath, writeErr)
		}
	}

	writeErr := os.WriteFile(path, []byte(patched), mode)
	if writeErr != nil {
		return nil, fmt.Errorf("write %s: %w", path, writeErr)
	}

	return result, nil
}
