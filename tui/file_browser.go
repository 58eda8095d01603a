package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// FileBrowser lists the directories and CSV files of one directory. Path
// prompts use it to show candidates and feed completion.
type FileBrowser struct {
	currentDir string
	entries    []FileEntry
	showHidden bool
}

type FileEntry struct {
	Name  string
	Path  string
	IsDir bool
	Size  int64
	IsCSV bool
}

func NewFileBrowser(startDir string) *FileBrowser {
	if startDir == "" {
		startDir = "."
	}
	absDir, err := filepath.Abs(startDir)
	if err != nil || absDir == "" {
		absDir = startDir
	}

	fb := &FileBrowser{
		currentDir: filepath.Clean(absDir),
		entries:    make([]FileEntry, 0),
	}
	fb.LoadDirectory()
	return fb
}

func (fb *FileBrowser) LoadDirectory() error {
	items, err := os.ReadDir(fb.currentDir)
	if err != nil {
		fb.entries = make([]FileEntry, 0)
		return err
	}

	fb.entries = make([]FileEntry, 0, len(items))
	for _, item := range items {
		if !fb.showHidden && strings.HasPrefix(item.Name(), ".") {
			continue
		}

		info, err := item.Info()
		if err != nil {
			continue
		}

		entry := FileEntry{
			Name:  item.Name(),
			Path:  filepath.Join(fb.currentDir, item.Name()),
			IsDir: item.IsDir(),
			Size:  info.Size(),
			IsCSV: strings.EqualFold(filepath.Ext(item.Name()), ".csv"),
		}

		if entry.IsDir || entry.IsCSV {
			fb.entries = append(fb.entries, entry)
		}
	}

	sort.Slice(fb.entries, func(i, j int) bool {
		if fb.entries[i].IsDir != fb.entries[j].IsDir {
			return fb.entries[i].IsDir
		}
		return strings.ToLower(fb.entries[i].Name) < strings.ToLower(fb.entries[j].Name)
	})

	return nil
}

func (fb *FileBrowser) Entries() []FileEntry {
	return fb.entries
}

func (fb *FileBrowser) CSVFiles() []FileEntry {
	var files []FileEntry
	for _, e := range fb.entries {
		if e.IsCSV && !e.IsDir {
			files = append(files, e)
		}
	}
	return files
}

// Suggestions returns entry names for completion; directories end in a
// path separator.
func (fb *FileBrowser) Suggestions() []string {
	out := make([]string, 0, len(fb.entries))
	for _, e := range fb.entries {
		if e.IsDir {
			out = append(out, e.Name+string(filepath.Separator))
		} else {
			out = append(out, e.Name)
		}
	}
	return out
}

func (fb *FileBrowser) ToggleHidden() {
	fb.showHidden = !fb.showHidden
	fb.LoadDirectory()
}

// Listing renders folders and CSV files as a short indented list, at most
// limit entries.
func (fb *FileBrowser) Listing(limit int, theme *Theme) string {
	entries := fb.Entries()
	if len(entries) == 0 {
		return theme.MutedTextStyle.Render("No CSV files in " + fb.currentDir)
	}

	lines := []string{theme.MutedTextStyle.Render(fmt.Sprintf("%d CSV files in %s:", len(fb.CSVFiles()), fb.currentDir))}
	for i, e := range entries {
		if limit > 0 && i == limit {
			lines = append(lines, theme.MutedTextStyle.Render("  ..."))
			break
		}
		if e.IsDir {
			lines = append(lines, "  "+IconFolder+" "+theme.NormalTextStyle.Render(e.Name+string(filepath.Separator)))
			continue
		}
		lines = append(lines, "  "+IconFile+" "+theme.NormalTextStyle.Render(e.Name)+" "+theme.MutedTextStyle.Render(formatFileSize(e.Size)))
	}
	return strings.Join(lines, "\n")
}

func formatFileSize(bytes int64) string {
	const unit = 1024
	if bytes < unit {
		return fmt.Sprintf("%d B", bytes)
	}
	div, exp := int64(unit), 0
	for n := bytes / unit; n >= unit; n /= unit {
		div *= unit
		exp++
	}
	return fmt.Sprintf("%.1f %cB", float64(bytes)/float64(div), "KMGTPE"[exp])
}
