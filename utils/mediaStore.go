package utils

import (
	"fmt"
	"io"
	"lms/config"
	"mime/multipart"
	"os"
	"path/filepath"
	"time"

	"github.com/go-resty/resty/v2"
)

// StoreLessonMedia persists an uploaded media file and returns a durable
// URL. When MEDIA_UPLOAD_URL is configured the bytes are pushed to the
// remote storage service; otherwise the file lands on local disk.
func StoreLessonMedia(file *multipart.FileHeader) (string, error) {
	if config.AppConfig.MediaUploadURL != "" {
		return uploadToRemoteStore(file)
	}
	path, err := saveUploadedFile(file, config.AppConfig.UploadDir)
	if err != nil {
		return "", err
	}
	return "/uploads/" + filepath.Base(path), nil
}

// uploadToRemoteStore pushes the file to the storage HTTP API and expects a
// JSON body carrying the stored object's URL
func uploadToRemoteStore(file *multipart.FileHeader) (string, error) {
	src, err := file.Open()
	if err != nil {
		return "", err
	}
	defer src.Close()

	var result struct {
		URL string `json:"url"`
	}

	client := resty.New().SetTimeout(30 * time.Second)
	resp, err := client.R().
		SetHeader("Authorization", "Bearer "+config.AppConfig.MediaUploadKey).
		SetFileReader("file", file.Filename, src).
		SetResult(&result).
		Post(config.AppConfig.MediaUploadURL)
	if err != nil {
		return "", err
	}
	if resp.IsError() {
		return "", fmt.Errorf("media upload failed, code: %d", resp.StatusCode())
	}
	if result.URL == "" {
		return "", fmt.Errorf("media upload response missing url")
	}

	return result.URL, nil
}

func saveUploadedFile(file *multipart.FileHeader, destDir string) (string, error) {
	// Open the uploaded file
	src, err := file.Open()
	if err != nil {
		return "", err
	}
	defer src.Close()

	// Create destination directory if it doesn't exist
	if err := os.MkdirAll(destDir, 0755); err != nil {
		return "", err
	}

	// Create a unique filename
	ext := filepath.Ext(file.Filename)
	newFilename := time.Now().Format("20060102150405") + ext
	filePath := filepath.Join(destDir, newFilename)

	// Create destination file
	dst, err := os.Create(filePath)
	if err != nil {
		return "", err
	}
	defer dst.Close()

	// Copy the file content
	if _, err := io.Copy(dst, src); err != nil {
		return "", err
	}

	return filePath, nil
}
