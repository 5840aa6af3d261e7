package solstudio

import (
	"strings"
	"sync"
)

// SourceSuffix is the conventional suffix for contract source files.
// FileStore appends it to created names that lack it, exactly once.
const SourceSuffix = ".sol"

// DefaultTemplate seeds newly created source files.
const DefaultTemplate = `// SPDX-License-Identifier: MIT
pragma solidity ^0.8.19;

contract MyContract {
    uint256 public value;

    function setValue(uint256 newValue) external {
        value = newValue;
    }
}
`

// FileItem is one named source buffer. Content is mutated in place by
// editor edits; files are never deleted.
type FileItem struct {
	Name    string
	Content string
}

// FileStore holds the ordered source buffers and the currently selected
// index. Safe for concurrent use, though mutation is expected to come from
// a single editing surface.
type FileStore struct {
	mu       sync.Mutex
	files    []FileItem
	selected int
}

// NewFileStore creates a store seeded with the given files, selecting the
// first. With no seed files the store starts empty with nothing selected.
func NewFileStore(seed ...FileItem) *FileStore {
	fs := &FileStore{selected: -1}
	fs.files = append(fs.files, seed...)
	if len(fs.files) > 0 {
		fs.selected = 0
	}
	return fs
}

// Create appends a new file with template content and selects it. The name
// is trimmed and suffix-normalized; an empty name is rejected.
func (fs *FileStore) Create(name string) (FileItem, error) {
	name = NormalizeName(name)
	if name == SourceSuffix || name == "" {
		return FileItem{}, ErrEmptyFileName
	}

	fs.mu.Lock()
	defer fs.mu.Unlock()

	item := FileItem{Name: name, Content: DefaultTemplate}
	fs.files = append(fs.files, item)
	fs.selected = len(fs.files) - 1
	return item, nil
}

// Select makes the file at index the active one.
func (fs *FileStore) Select(index int) error {
	fs.mu.Lock()
	defer fs.mu.Unlock()

	if index < 0 || index >= len(fs.files) {
		return &FileIndexError{Index: index, Len: len(fs.files)}
	}
	fs.selected = index
	return nil
}

// Active returns the selected file.
func (fs *FileStore) Active() (FileItem, error) {
	fs.mu.Lock()
	defer fs.mu.Unlock()

	if fs.selected < 0 {
		return FileItem{}, ErrNoFileSelected
	}
	return fs.files[fs.selected], nil
}

// Selected returns the active index, or -1 when nothing is selected.
func (fs *FileStore) Selected() int {
	fs.mu.Lock()
	defer fs.mu.Unlock()
	return fs.selected
}

// SetContent replaces the content of the active file only.
func (fs *FileStore) SetContent(content string) error {
	fs.mu.Lock()
	defer fs.mu.Unlock()

	if fs.selected < 0 {
		return ErrNoFileSelected
	}
	fs.files[fs.selected].Content = content
	return nil
}

// Files returns a snapshot of the stored files in order.
func (fs *FileStore) Files() []FileItem {
	fs.mu.Lock()
	defer fs.mu.Unlock()

	out := make([]FileItem, len(fs.files))
	copy(out, fs.files)
	return out
}

// Len returns the number of stored files.
func (fs *FileStore) Len() int {
	fs.mu.Lock()
	defer fs.mu.Unlock()
	return len(fs.files)
}

// NormalizeName trims whitespace and ensures the source suffix is present
// exactly once. An already-suffixed name is returned unchanged.
func NormalizeName(name string) string {
	name = strings.TrimSpace(name)
	if name == "" {
		return ""
	}
	if strings.HasSuffix(name, SourceSuffix) {
		return name
	}
	return name + SourceSuffix
}
