package initializers

import (
	"log"
	"os"
)

// GeneratedDir holds rendered QR images, UploadsDir the raw logo uploads.
var (
	GeneratedDir string
	UploadsDir   string
)

func InitStorage() {
	GeneratedDir = getEnv("GENERATED_DIR", "generated")
	UploadsDir = getEnv("UPLOADS_DIR", "uploads")

	for _, dir := range []string{GeneratedDir, UploadsDir} {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			log.Fatalf("❌ Failed to create storage directory %s: %v", dir, err)
		}
	}
	log.Printf("✅ Storage ready (images: %s, logos: %s)", GeneratedDir, UploadsDir)
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
