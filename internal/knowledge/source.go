package knowledge

import (
	"errors"
	"io/fs"
	"log"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

var (
	noteExtensions     = map[string]bool{".txt": true, ".md": true}
	documentExtensions = map[string]string{".pdf": "application/pdf"}
)

type Note struct {
	Name string
	Text string
}

type DocumentFile struct {
	Path     string
	MIMEType string
}

// Sources is what a knowledge directory contained at scan time.
type Sources struct {
	Notes     []Note
	Documents []DocumentFile
}

func (s Sources) Empty() bool {
	return len(s.Notes) == 0 && len(s.Documents) == 0
}

// NotesText concatenates notes with a filename banner before each one.
func (s Sources) NotesText() string {
	var sb strings.Builder
	for _, n := range s.Notes {
		sb.WriteString("\n--- ")
		sb.WriteString(n.Name)
		sb.WriteString(" ---\n")
		sb.WriteString(n.Text)
		sb.WriteString("\n")
	}
	return sb.String()
}

// Scan reads plain-text notes and lists document files directly under dir.
// A missing directory yields empty Sources. Unreadable notes are skipped.
func Scan(dir string) (Sources, error) {
	var out Sources
	if strings.TrimSpace(dir) == "" {
		return out, nil
	}
	entries, err := os.ReadDir(dir)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return out, nil
		}
		return out, err
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].Name() < entries[j].Name() })

	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		name := e.Name()
		path := filepath.Join(dir, name)
		ext := strings.ToLower(filepath.Ext(name))
		switch {
		case noteExtensions[ext]:
			b, err := os.ReadFile(path)
			if err != nil {
				log.Printf("[knowledge] stage=read_fail file=%s err=%v", name, err)
				continue
			}
			out.Notes = append(out.Notes, Note{Name: name, Text: string(b)})
		case documentExtensions[ext] != "":
			out.Documents = append(out.Documents, DocumentFile{Path: path, MIMEType: documentExtensions[ext]})
		}
	}
	return out, nil
}
