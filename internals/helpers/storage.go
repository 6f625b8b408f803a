package helper

import (
	"bytes"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
	"os"
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Almacenamiento de objetos estilo Supabase Storage: PUT/DELETE por HTTP
// con service key. Las fotos de alumnos, fondos de gafete y logotipos
// viven en el bucket "image".

func UploadImageToStorage(folder string, fileHeader *multipart.FileHeader) (string, error) {
	src, err := fileHeader.Open()
	if err != nil {
		return "", fmt.Errorf("no se pudo abrir la imagen: %w", err)
	}
	defer src.Close()

	buf := new(bytes.Buffer)
	if _, err := io.Copy(buf, src); err != nil {
		return "", fmt.Errorf("no se pudo leer la imagen: %w", err)
	}

	filename := GenerateUniqueFilename(folder, fileHeader.Filename)
	contentType := fileHeader.Header.Get("Content-Type")

	if err := uploadToStorage("image", filename, contentType, buf); err != nil {
		return "", fmt.Errorf("falló la subida de la imagen: %w", err)
	}

	publicURL := fmt.Sprintf("%s/storage/v1/object/public/image/%s",
		os.Getenv("STORAGE_PROJECT_URL"),
		url.PathEscape(filename),
	)
	return publicURL, nil
}

func sanitizeFilename(filename string) string {
	// solo letras, números, punto, guion y guion bajo
	re := regexp.MustCompile(`[^a-zA-Z0-9.\-_]+`)
	return re.ReplaceAllString(filename, "_")
}

func GenerateUniqueFilename(folder, originalFilename string) string {
	timestamp := time.Now().Format("20060102")
	return fmt.Sprintf("%s/%s-%s-%s", folder, timestamp, uuid.New().String(), sanitizeFilename(originalFilename))
}

func uploadToStorage(bucket, filename, contentType string, data *bytes.Buffer) error {
	storageURL := os.Getenv("STORAGE_PROJECT_URL")
	storageKey := os.Getenv("STORAGE_SERVICE_KEY")
	if storageURL == "" || storageKey == "" {
		return fmt.Errorf("STORAGE_PROJECT_URL o STORAGE_SERVICE_KEY sin definir")
	}

	target := fmt.Sprintf("%s/storage/v1/object/%s/%s", storageURL, bucket, filename)

	req, err := http.NewRequest(http.MethodPut, target, data)
	if err != nil {
		return fmt.Errorf("no se pudo crear el request de subida: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+storageKey)
	req.Header.Set("Content-Type", contentType)

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return fmt.Errorf("no se pudo enviar el request de subida: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		body, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("subida falló status %d: %s", resp.StatusCode, string(body))
	}
	return nil
}

func DeleteFromStorage(bucket, path string) error {
	target := fmt.Sprintf("%s/storage/v1/object/%s/%s",
		os.Getenv("STORAGE_PROJECT_URL"), bucket, path)

	req, err := http.NewRequest(http.MethodDelete, target, nil)
	if err != nil {
		return err
	}
	req.Header.Set("Authorization", "Bearer "+os.Getenv("STORAGE_SERVICE_KEY"))

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		body, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("delete falló status %d: %s", resp.StatusCode, string(body))
	}
	return nil
}

// DeleteImageByURL borra un objeto a partir de su URL pública.
// Pensado para llamadas best-effort al reemplazar una imagen.
func DeleteImageByURL(fullURL string) error {
	bucket, path, err := ExtractStoragePath(fullURL)
	if err != nil {
		return err
	}
	return DeleteFromStorage(bucket, path)
}

// ExtractStoragePath separa bucket y path de una URL pública.
func ExtractStoragePath(fullURL string) (bucket string, path string, err error) {
	u, err := url.Parse(fullURL)
	if err != nil {
		return "", "", err
	}
	parts := strings.SplitN(u.Path, "/object/public/", 2)
	if len(parts) < 2 {
		return "", "", fmt.Errorf("url no es un objeto público de storage")
	}
	pathParts := strings.SplitN(parts[1], "/", 2)
	if len(pathParts) < 2 {
		return "", "", fmt.Errorf("no se pudo extraer bucket y path")
	}
	return pathParts[0], pathParts[1], nil
}

// FetchAsset descarga un asset (foto, fondo, logo) para el renderer.
// Best effort: el caller trata cualquier error como "asset ausente".
func FetchAsset(rawURL string) ([]byte, error) {
	if strings.TrimSpace(rawURL) == "" {
		return nil, fmt.Errorf("url vacía")
	}
	client := &http.Client{Timeout: 5 * time.Second}
	resp, err := client.Get(rawURL)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	if resp.StatusCode >= 300 {
		return nil, fmt.Errorf("asset status %d", resp.StatusCode)
	}
	return io.ReadAll(io.LimitReader(resp.Body, 20<<20))
}
