package product

import (
	"fmt"
	"io"
	"log"
	"mime/multipart"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

const MaxImages = 8

var allowedExt = map[string]bool{".jpg": true, ".jpeg": true, ".png": true, ".webp": true}

// ImageStore keeps uploaded product images on local disk. Stored paths are the
// public URLs under /uploads.
type ImageStore struct {
	root string
}

func NewImageStore(root string) (*ImageStore, error) {
	if err := os.MkdirAll(filepath.Join(root, "products"), 0o755); err != nil {
		return nil, err
	}
	return &ImageStore{root: root}, nil
}

func (s *ImageStore) Root() string { return s.root }

// CheckFiles validates count and extensions before anything is written.
func CheckFiles(files []*multipart.FileHeader) error {
	if len(files) > MaxImages {
		return fmt.Errorf("at most %d images are allowed", MaxImages)
	}
	for _, fh := range files {
		ext := strings.ToLower(filepath.Ext(fh.Filename))
		if !allowedExt[ext] {
			return fmt.Errorf("only .jpg, .jpeg, .png and .webp files are allowed")
		}
	}
	return nil
}

// SaveAll writes every file and returns their public paths. On failure the
// files written so far are removed.
func (s *ImageStore) SaveAll(files []*multipart.FileHeader) ([]string, error) {
	out := make([]string, 0, len(files))
	for _, fh := range files {
		p, err := s.save(fh)
		if err != nil {
			s.Remove(out)
			return nil, err
		}
		out = append(out, p)
	}
	return out, nil
}

func (s *ImageStore) save(fh *multipart.FileHeader) (string, error) {
	src, err := fh.Open()
	if err != nil {
		return "", err
	}
	defer src.Close()

	name := uuid.NewString() + strings.ToLower(filepath.Ext(fh.Filename))
	dst, err := os.Create(filepath.Join(s.root, "products", name))
	if err != nil {
		return "", err
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		return "", err
	}
	return path.Join("/uploads/products", name), nil
}

// Remove deletes stored files; missing files are ignored.
func (s *ImageStore) Remove(paths []string) {
	for _, p := range paths {
		name := path.Base(p)
		if err := os.Remove(filepath.Join(s.root, "products", name)); err != nil && !os.IsNotExist(err) {
			log.Printf("[product] remove image %s: %v", name, err)
		}
	}
}
