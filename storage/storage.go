package storage

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"
)

// ObjectInfo describes a stored object returned by List.
type ObjectInfo struct {
	Key       string
	Size      int64
	UpdatedAt time.Time
}

// ObjectStore is the contract the photo flows depend on: upload bytes under a
// key, issue a public URL for a key, list a bucket, delete a key. The relational
// row owns the reference; the store owns the bytes.
type ObjectStore interface {
	Upload(bucket, key string, r io.Reader) error
	PublicURL(bucket, key string) string
	List(bucket, prefix string) ([]ObjectInfo, error)
	Delete(bucket, key string) error
}

// LocalStore keeps objects on disk under root/<bucket>/<key> and serves them
// from baseURL. It stands in for a hosted bucket service with the same contract.
type LocalStore struct {
	root    string
	baseURL string
}

func NewLocalStore(root, baseURL string) (*LocalStore, error) {
	if err := os.MkdirAll(root, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create storage root: %w", err)
	}
	return &LocalStore{root: root, baseURL: strings.TrimSuffix(baseURL, "/")}, nil
}

// Root returns the on-disk directory objects are stored under.
func (s *LocalStore) Root() string {
	return s.root
}

func (s *LocalStore) objectPath(bucket, key string) (string, error) {
	p := filepath.Join(s.root, bucket, filepath.FromSlash(key))
	// Keys come from user-influenced filenames; never escape the root.
	if !strings.HasPrefix(filepath.Clean(p), filepath.Clean(s.root)+string(os.PathSeparator)) {
		return "", fmt.Errorf("invalid object key %q", key)
	}
	return p, nil
}

func (s *LocalStore) Upload(bucket, key string, r io.Reader) error {
	path, err := s.objectPath(bucket, key)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create bucket directory: %w", err)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create object: %w", err)
	}
	defer f.Close()

	if _, err := io.Copy(f, r); err != nil {
		os.Remove(path)
		return fmt.Errorf("failed to write object: %w", err)
	}
	return nil
}

func (s *LocalStore) PublicURL(bucket, key string) string {
	return s.baseURL + "/" + bucket + "/" + key
}

func (s *LocalStore) List(bucket, prefix string) ([]ObjectInfo, error) {
	dir := filepath.Join(s.root, bucket)
	var objects []ObjectInfo

	err := filepath.Walk(dir, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			if os.IsNotExist(err) {
				return nil
			}
			return err
		}
		if info.IsDir() {
			return nil
		}
		rel, err := filepath.Rel(dir, path)
		if err != nil {
			return err
		}
		key := filepath.ToSlash(rel)
		if prefix != "" && !strings.HasPrefix(key, prefix) {
			return nil
		}
		objects = append(objects, ObjectInfo{
			Key:       key,
			Size:      info.Size(),
			UpdatedAt: info.ModTime(),
		})
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list bucket %s: %w", bucket, err)
	}

	sort.Slice(objects, func(i, j int) bool { return objects[i].Key < objects[j].Key })
	return objects, nil
}

func (s *LocalStore) Delete(bucket, key string) error {
	path, err := s.objectPath(bucket, key)
	if err != nil {
		return err
	}
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to delete object: %w", err)
	}
	return nil
}
