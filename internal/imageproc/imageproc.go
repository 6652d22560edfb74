package imageproc

import (
	"bytes"
	"fmt"
	"io"

	"github.com/disintegration/imaging"

	// регистрирует webp-декодер, сам imaging его не умеет
	_ "golang.org/x/image/webp"
)

const (
	maxDimension = 800
	jpegQuality  = 90
)

// Result — обработанное изображение, готовое к загрузке в хранилище
type Result struct {
	Body        io.Reader
	Size        int64
	ContentType string
	Extension   string
}

// Process вписывает изображение в 800x800 с сохранением пропорций и перекодирует
// его в JPEG с качеством 90. GIF не трогаем, чтобы не потерять анимацию.
func Process(file io.Reader, contentType string) (*Result, error) {
	data, err := io.ReadAll(file)
	if err != nil {
		return nil, fmt.Errorf("ошибка чтения файла изображения: %w", err)
	}

	if contentType == "image/gif" {
		return &Result{
			Body:        bytes.NewReader(data),
			Size:        int64(len(data)),
			ContentType: contentType,
			Extension:   ".gif",
		}, nil
	}

	img, err := imaging.Decode(bytes.NewReader(data), imaging.AutoOrientation(true))
	if err != nil {
		return nil, fmt.Errorf("ошибка декодирования изображения: %w", err)
	}

	fitted := img
	bounds := img.Bounds()
	if bounds.Dx() > maxDimension || bounds.Dy() > maxDimension {
		fitted = imaging.Fit(img, maxDimension, maxDimension, imaging.Lanczos)
	}

	var buf bytes.Buffer
	if err := imaging.Encode(&buf, fitted, imaging.JPEG, imaging.JPEGQuality(jpegQuality)); err != nil {
		return nil, fmt.Errorf("ошибка кодирования изображения: %w", err)
	}

	return &Result{
		Body:        &buf,
		Size:        int64(buf.Len()),
		ContentType: "image/jpeg",
		Extension:   ".jpg",
	}, nil
}
