package handlers

import (
	"bytes"
	"encoding/base64"
	"html/template"
	"image/png"
	"log"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/lithammer/shortuuid/v4"
	"gorm.io/gorm"

	"qrgen/initializers"
	"qrgen/models"
	"qrgen/qr"
)

// 2 MB cap for logo uploads, matching the form hint.
const maxLogoBytes = 2 << 20

var allowedLogoExt = map[string]bool{
	".png":  true,
	".jpg":  true,
	".jpeg": true,
	".gif":  true,
	".webp": true,
}

type generateForm struct {
	Data     string `form:"data"`
	BoxSize  int    `form:"box_size,default=10"`
	Border   int    `form:"border,default=4"`
	EC       string `form:"ec,default=M"`
	Fg       string `form:"fg,default=#000000"`
	Bg       string `form:"bg,default=#ffffff"`
	Filename string `form:"filename"`
}

func Index(c *gin.Context) {
	c.HTML(http.StatusOK, "index.html", gin.H{})
}

func GenerateQR(c *gin.Context) {
	var form generateForm
	if err := c.ShouldBind(&form); err != nil {
		renderForm(c, http.StatusBadRequest, gin.H{"Error": "Invalid form submission"})
		return
	}

	data := strings.TrimSpace(form.Data)
	if data == "" {
		renderForm(c, http.StatusBadRequest, gin.H{"Error": "Text or URL is required"})
		return
	}
	if form.BoxSize < 1 || form.BoxSize > 50 {
		renderForm(c, http.StatusBadRequest, gin.H{"Error": "Box size must be between 1 and 50"})
		return
	}
	if form.Border < 0 || form.Border > 20 {
		renderForm(c, http.StatusBadRequest, gin.H{"Error": "Border must be between 0 and 20"})
		return
	}
	ec := strings.ToUpper(strings.TrimSpace(form.EC))
	level, err := qr.Level(ec)
	if err != nil {
		renderForm(c, http.StatusBadRequest, gin.H{"Error": "Error correction must be one of L, M, Q, H"})
		return
	}
	fg, err := qr.ParseHexColor(form.Fg)
	if err != nil {
		renderForm(c, http.StatusBadRequest, gin.H{"Error": "Foreground color must be a hex value like #000000"})
		return
	}
	bg, err := qr.ParseHexColor(form.Bg)
	if err != nil {
		renderForm(c, http.StatusBadRequest, gin.H{"Error": "Background color must be a hex value like #ffffff"})
		return
	}

	img, err := qr.Render(data, qr.Options{
		BoxSize:    form.BoxSize,
		Border:     form.Border,
		Level:      level,
		Foreground: fg,
		Background: bg,
	})
	if err != nil {
		renderForm(c, http.StatusInternalServerError, gin.H{"Error": "Failed to generate QR code"})
		return
	}

	var logoPath *string
	if fh, ferr := c.FormFile("logo"); ferr == nil && fh.Filename != "" {
		if fh.Size > maxLogoBytes {
			renderForm(c, http.StatusBadRequest, gin.H{"Error": "Logo must be smaller than 2MB"})
			return
		}
		ext := strings.ToLower(filepath.Ext(fh.Filename))
		if allowedLogoExt[ext] {
			saved := filepath.Join(initializers.UploadsDir, "logo_"+uuid.New().String()+ext)
			if err := c.SaveUploadedFile(fh, saved); err != nil {
				renderForm(c, http.StatusInternalServerError, gin.H{"Error": "Failed to save logo"})
				return
			}
			if f, err := os.Open(saved); err == nil {
				if err := qr.OverlayLogo(img, f); err != nil {
					log.Printf("skipping logo overlay: %v", err)
				}
				f.Close()
			}
			logoPath = &saved
		}
		// Unsupported extensions are ignored and the code is generated without a logo.
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		renderForm(c, http.StatusInternalServerError, gin.H{"Error": "Failed to encode image"})
		return
	}

	slug := shortuuid.New()
	fname := filepath.Base(strings.TrimSpace(form.Filename))
	if fname == "" || fname == "." || fname == string(filepath.Separator) {
		fname = "qrcode_" + slug + ".png"
	}
	if !strings.HasSuffix(strings.ToLower(fname), ".png") {
		fname += ".png"
	}
	imagePath := filepath.Join(initializers.GeneratedDir, fname)
	if err := os.WriteFile(imagePath, buf.Bytes(), 0o644); err != nil {
		renderForm(c, http.StatusInternalServerError, gin.H{"Error": "Failed to save image"})
		return
	}

	rec := models.QRCode{
		ID:              uuid.New(),
		Slug:            slug,
		Data:            data,
		Filename:        fname,
		BoxSize:         form.BoxSize,
		Border:          form.Border,
		ErrorCorrection: ec,
		FgColor:         strings.TrimSpace(form.Fg),
		BgColor:         strings.TrimSpace(form.Bg),
		LogoPath:        logoPath,
		ImagePath:       imagePath,
		RequesterIP:     c.ClientIP(),
		CreatedAt:       time.Now(),
	}
	if err := initializers.DB.Create(&rec).Error; err != nil {
		os.Remove(imagePath)
		renderForm(c, http.StatusInternalServerError, gin.H{"Error": "Failed to save record"})
		return
	}

	imgURL := "data:image/png;base64," + base64.StdEncoding.EncodeToString(buf.Bytes())
	renderForm(c, http.StatusOK, gin.H{
		"ImgURL": template.URL(imgURL),
		"Record": rec,
	})
}

func Records(c *gin.Context) {
	var records []models.QRCode
	if err := initializers.DB.
		Order("created_at desc").
		Limit(200).
		Find(&records).Error; err != nil {
		c.String(http.StatusInternalServerError, "Failed to fetch records")
		return
	}
	c.HTML(http.StatusOK, "records.html", gin.H{"Records": records})
}

func ListQRCodes(c *gin.Context) {
	var records []models.QRCode
	if err := initializers.DB.
		Order("created_at desc").
		Limit(200).
		Find(&records).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch records"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"qrcodes": records})
}

func ViewQR(c *gin.Context) {
	rec, ok := findBySlug(c)
	if !ok {
		return
	}
	c.File(rec.ImagePath)
}

func DownloadQR(c *gin.Context) {
	rec, ok := findBySlug(c)
	if !ok {
		return
	}

	// Atomic counter update
	if err := initializers.DB.Model(&rec).
		UpdateColumn("download_count", gorm.Expr("download_count + ?", 1)).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to record download"})
		return
	}

	event := models.DownloadEvent{
		ID:        uuid.New(),
		QRCodeID:  rec.ID,
		IPAddress: c.ClientIP(),
		UserAgent: c.Request.UserAgent(),
		CreatedAt: time.Now(),
	}
	if err := initializers.DB.Create(&event).Error; err != nil {
		log.Printf("failed to record download event: %v", err)
	}

	c.FileAttachment(rec.ImagePath, rec.Filename)
}

// findBySlug loads the record for the :slug route param and answers 404
// when either the row or the image file is gone.
func findBySlug(c *gin.Context) (models.QRCode, bool) {
	slug := c.Param("slug")
	var rec models.QRCode
	if err := initializers.DB.Where("slug = ?", slug).First(&rec).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "QR code not found"})
		return rec, false
	}
	if _, err := os.Stat(rec.ImagePath); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "QR code not found"})
		return rec, false
	}
	return rec, true
}

func renderForm(c *gin.Context, status int, data gin.H) {
	c.HTML(status, "index.html", data)
}
