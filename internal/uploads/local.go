package uploads

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// Local stores assets on the filesystem under a single root directory.
type Local struct {
	root string
}

func NewLocal(root string) (*Local, error) {
	abs, err := filepath.Abs(root)
	if err != nil {
		return nil, err
	}
	if err := os.MkdirAll(abs, 0o755); err != nil {
		return nil, fmt.Errorf("create upload dir: %w", err)
	}
	return &Local{root: abs}, nil
}

// Root returns the absolute storage root, used for static file serving.
func (l *Local) Root() string { return l.root }

func (l *Local) resolve(key string) (string, bool) {
	full := filepath.Join(l.root, filepath.FromSlash(key))
	// the resolved path must stay inside the storage root
	if full != l.root && !strings.HasPrefix(full, l.root+string(os.PathSeparator)) {
		return "", false
	}
	return full, true
}

func (l *Local) Put(ctx context.Context, key string, data []byte, contentType string) error {
	full, ok := l.resolve(key)
	if !ok {
		return fmt.Errorf("invalid key %q", key)
	}
	if err := os.MkdirAll(filepath.Dir(full), 0o755); err != nil {
		return err
	}
	f, err := os.Create(full)
	if err != nil {
		return err
	}
	if _, err := f.Write(data); err != nil {
		f.Close()
		os.Remove(full) // drop the partial file
		return err
	}
	if err := f.Close(); err != nil {
		os.Remove(full)
		return err
	}
	return nil
}

func (l *Local) Remove(ctx context.Context, key string) (bool, error) {
	full, ok := l.resolve(key)
	if !ok {
		return false, nil
	}
	if err := os.Remove(full); err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

func (l *Local) List(ctx context.Context, subfolder string) ([]FileInfo, error) {
	dir := l.root
	urlPrefix := PublicPath
	if subfolder != "" {
		var ok bool
		dir, ok = l.resolve(subfolder)
		if !ok {
			return []FileInfo{}, nil
		}
		urlPrefix = PublicPath + "/" + subfolder
	}
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return []FileInfo{}, nil
		}
		return nil, err
	}
	out := []FileInfo{}
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		info, err := e.Info()
		if err != nil {
			continue
		}
		out = append(out, FileInfo{
			Filename: e.Name(),
			Size:     info.Size(),
			Modified: info.ModTime().UTC(),
			URL:      urlPrefix + "/" + e.Name(),
		})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Modified.After(out[j].Modified) })
	return out, nil
}
