// handlers/upload.go - Object storage upload proxy
package handlers

import (
	"io"
	"log"

	"github.com/ddduartediego/sistema-coringas-sub000/services"

	"github.com/gofiber/fiber/v2"
)

// Accepted upload content types. Images feed game covers and avatars, PDFs
// feed quest attachments.
var allowedUploadTypes = map[string]string{
	"image/jpeg":      "imagens",
	"image/png":       "imagens",
	"image/webp":      "imagens",
	"application/pdf": "arquivos",
}

// Upload proxies a multipart file to the storage provider and returns its
// public URL. The route exists because the provider blocks direct client
// uploads.
// POST /api/upload
func Upload(c *fiber.Ctx) error {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		return c.Status(400).JSON(fiber.Map{
			"success": false,
			"error":   "Arquivo não informado",
		})
	}

	contentType := fileHeader.Header.Get("Content-Type")
	bucket, ok := allowedUploadTypes[contentType]
	if !ok {
		return c.Status(400).JSON(fiber.Map{
			"success": false,
			"error":   "Tipo de arquivo não permitido",
		})
	}

	file, err := fileHeader.Open()
	if err != nil {
		return c.Status(500).JSON(fiber.Map{
			"success": false,
			"error":   "Falha ao ler o arquivo",
		})
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{
			"success": false,
			"error":   "Falha ao ler o arquivo",
		})
	}

	key := services.ObjectKey("uploads", fileHeader.Filename)
	url, err := storageService.Upload(bucket, key, contentType, data)
	if err != nil {
		log.Printf("❌ Storage upload failed: %v", err)
		return c.Status(502).JSON(fiber.Map{
			"success": false,
			"error":   "Falha ao enviar o arquivo para o armazenamento",
		})
	}

	return c.Status(201).JSON(fiber.Map{
		"success": true,
		"url":     url,
	})
}
