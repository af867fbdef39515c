package productcontroller

import (
	"fmt"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const maxImageSize = 5 << 20 // 5MB per file

var allowedImageExts = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".webp": true,
}

// UploadsDir is where product images land; served statically under /uploads.
func UploadsDir() string {
	if dir := os.Getenv("UPLOADS_DIR"); dir != "" {
		return dir
	}
	return "uploads"
}

// saveUploadedImages stores the multipart "images" files on disk and returns
// their public URLs. Files keep their extension but get a fresh name.
func saveUploadedImages(c *gin.Context, files []*multipart.FileHeader) ([]string, error) {
	if len(files) == 0 {
		return nil, nil
	}

	dir := filepath.Join(UploadsDir(), "products")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}

	var urls []string
	for _, file := range files {
		ext := strings.ToLower(filepath.Ext(file.Filename))
		if !allowedImageExts[ext] {
			return nil, fmt.Errorf("apenas imagens são permitidas (jpg, jpeg, png, webp)")
		}
		if file.Size > maxImageSize {
			return nil, fmt.Errorf("imagem excede o limite de 5MB")
		}

		filename := "product-" + uuid.NewString() + ext
		if err := c.SaveUploadedFile(file, filepath.Join(dir, filename)); err != nil {
			return nil, err
		}
		urls = append(urls, "/uploads/products/"+filename)
	}
	return urls, nil
}

// formImages returns the uploaded image files, when the request is multipart.
func formImages(c *gin.Context) []*multipart.FileHeader {
	form, err := c.MultipartForm()
	if err != nil || form == nil {
		return nil
	}
	return form.File["images"]
}
