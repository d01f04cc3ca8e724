package download

import (
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"time"
)

const requestTimeout = 60 * time.Second

// Fetch downloads the model or model pack at url and saves it under destDir,
// which is created if needed. The filename is derived from Content-Disposition
// or the URL path; the extension from Content-Type or the URL. Returns the path
// to the saved file.
func Fetch(url, destDir string) (savedPath string, err error) {
	client := &http.Client{Timeout: requestTimeout}
	resp, err := client.Get(url)
	if err != nil {
		return "", fmt.Errorf("download: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("download: HTTP %d for %s", resp.StatusCode, url)
	}

	ext := extensionFromContentType(resp.Header.Get("Content-Type"))
	if ext == "" {
		ext = extensionFromURL(url)
	}
	if ext == "" {
		return "", fmt.Errorf("download: %s is not a model or model pack", url)
	}
	name := filenameFromContentDisposition(resp.Header.Get("Content-Disposition"))
	if name == "" {
		name = filenameFromURL(url)
	}
	if name == "" {
		name = "modelpack"
	}
	name = sanitizeFilename(name)
	if !strings.HasSuffix(strings.ToLower(name), ext) {
		name += ext
	}

	if err := os.MkdirAll(destDir, 0755); err != nil {
		return "", fmt.Errorf("download: %w", err)
	}
	savedPath = filepath.Join(destDir, name)
	out, err := os.Create(savedPath)
	if err != nil {
		return "", fmt.Errorf("download: %w", err)
	}
	defer out.Close()
	if _, err := io.Copy(out, resp.Body); err != nil {
		_ = os.Remove(savedPath)
		return "", fmt.Errorf("download: %w", err)
	}
	return savedPath, nil
}

// extensionFromContentType maps model and archive content types to a file
// extension. Unknown types return "".
func extensionFromContentType(ct string) string {
	ct = strings.ToLower(strings.TrimSpace(ct))
	if idx := strings.Index(ct, ";"); idx >= 0 {
		ct = ct[:idx]
	}
	switch {
	case strings.Contains(ct, "model/gltf-binary"):
		return ".glb"
	case strings.Contains(ct, "model/gltf+json"):
		return ".gltf"
	case strings.Contains(ct, "zip"):
		return ".zip"
	}
	return ""
}

func extensionFromURL(url string) string {
	path := url
	if idx := strings.Index(path, "?"); idx >= 0 {
		path = path[:idx]
	}
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".glb", ".gltf", ".zip":
		return ext
	}
	return ""
}

func filenameFromContentDisposition(cd string) string {
	cd = strings.TrimSpace(cd)
	if i := strings.Index(cd, "filename*=UTF-8''"); i >= 0 {
		s := cd[i+len("filename*=UTF-8''"):]
		if j := strings.IndexAny(s, ";\r\n"); j >= 0 {
			s = s[:j]
		}
		return strings.Trim(s, "\"")
	}
	if i := strings.Index(cd, "filename="); i >= 0 {
		s := strings.Trim(cd[i+len("filename="):], "\" ")
		if j := strings.IndexAny(s, ";\r\n"); j >= 0 {
			s = s[:j]
		}
		return s
	}
	return ""
}

func filenameFromURL(url string) string {
	path := url
	if idx := strings.Index(path, "?"); idx >= 0 {
		path = path[:idx]
	}
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

var safeNameRe = regexp.MustCompile(`[^a-zA-Z0-9_.-]+`)

func sanitizeFilename(name string) string {
	name = safeNameRe.ReplaceAllString(name, "_")
	if len(name) > 96 {
		name = name[:96]
	}
	if name == "" {
		return "modelpack"
	}
	return name
}
