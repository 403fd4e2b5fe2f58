package utils

import (
	"errors"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const MaxImageSize = 5 << 20

var (
	ErrImageTooLarge = errors.New("image is larger than 5MB")
	ErrNotAnImage    = errors.New("only jpg, png, gif and webp images are accepted")
)

var imageExts = map[string]string{
	"image/jpeg": ".jpg",
	"image/png":  ".png",
	"image/gif":  ".gif",
	"image/webp": ".webp",
}

// SaveUploadedImage stores the multipart image under root/folder with a
// uuid file name and returns the public path (/uploads/folder/name).
func SaveUploadedImage(c *gin.Context, fh *multipart.FileHeader, root, folder string) (string, error) {
	if fh.Size > MaxImageSize {
		return "", ErrImageTooLarge
	}
	ext, err := sniffImage(fh)
	if err != nil {
		return "", err
	}

	dir := filepath.Join(root, folder)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", err
	}
	name := uuid.NewString() + ext
	if err := c.SaveUploadedFile(fh, filepath.Join(dir, name)); err != nil {
		return "", err
	}
	return "/uploads/" + folder + "/" + name, nil
}

func sniffImage(fh *multipart.FileHeader) (string, error) {
	f, err := fh.Open()
	if err != nil {
		return "", err
	}
	defer f.Close()

	head := make([]byte, 512)
	n, _ := f.Read(head)
	ct := http.DetectContentType(head[:n])
	ext, ok := imageExts[strings.TrimSpace(strings.Split(ct, ";")[0])]
	if !ok {
		return "", ErrNotAnImage
	}
	return ext, nil
}

// RemoveUpload deletes a file previously returned by SaveUploadedImage.
// Paths outside /uploads are ignored.
func RemoveUpload(root, publicPath string) {
	rel, ok := strings.CutPrefix(publicPath, "/uploads/")
	if !ok || rel == "" || strings.Contains(rel, "..") {
		return
	}
	_ = os.Remove(filepath.Join(root, filepath.FromSlash(rel)))
}
