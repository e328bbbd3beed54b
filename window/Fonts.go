package window

import (
	"bytes"
	"fmt"
	"os"

	"PongBot/logger"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/sirupsen/logrus"
	"golang.org/x/image/font/basicfont"
)

// fallbackSize is the pixel height of basicfont.Face7x13.
const fallbackSize = 13

// Fonts hands out text faces by size. Without a loaded font every face is the
// built-in bitmap face, scaled.
type Fonts struct {
	source   *text.GoTextFaceSource
	fallback text.Face
	faces    map[float64]text.Face
}

func LoadFont(path string) (*text.GoTextFaceSource, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read font: %w", err)
	}
	src, err := text.NewGoTextFaceSource(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("parse font %s: %w", path, err)
	}
	return src, nil
}

// NewFonts loads the font at path once. A failure is logged and text keeps rendering
// with the fallback face.
func NewFonts(path string) *Fonts {
	f := &Fonts{
		fallback: text.NewGoXFace(basicfont.Face7x13),
		faces:    make(map[float64]text.Face),
	}
	src, err := LoadFont(path)
	if err != nil {
		logger.Log.ErrorFields(logrus.Fields{"error": err.Error()}, fmt.Sprintf(logger.FontLoadFailedMsg, path))
		return f
	}
	f.source = src
	return f
}

func (f *Fonts) Loaded() bool { return f.source != nil }

// Face returns the face for size and the extra scale to apply when drawing it.
func (f *Fonts) Face(size float64) (text.Face, float64) {
	if f.source == nil {
		return f.fallback, size / fallbackSize
	}
	if face, ok := f.faces[size]; ok {
		return face, 1
	}
	face := &text.GoTextFace{Source: f.source, Size: size}
	f.faces[size] = face
	return face, 1
}
