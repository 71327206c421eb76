package uploads

import (
	"bytes"
	"context"
	"image"
	"image/color"
	"image/jpeg"
	"image/png"
	"strings"
	"testing"

	"github.com/disintegration/imaging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newLocalManager(t *testing.T) *Manager {
	t.Helper()
	backend, err := NewLocal(t.TempDir())
	require.NoError(t, err)
	return NewManager(backend)
}

func encodeTestImage(t *testing.T, w, h int, format string) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for x := 0; x < w; x += 10 {
		for y := 0; y < h; y++ {
			img.Set(x, y, color.RGBA{R: 200, A: 255})
		}
	}
	var buf bytes.Buffer
	switch format {
	case "png":
		require.NoError(t, png.Encode(&buf, img))
	default:
		require.NoError(t, jpeg.Encode(&buf, img, nil))
	}
	return buf.Bytes()
}

func TestSaveRejectsDisallowedType(t *testing.T) {
	m := newLocalManager(t)

	_, err := m.Save(context.Background(), "script.sh", "application/x-sh", []byte("#!/bin/sh"), "")
	assert.ErrorIs(t, err, ErrTypeNotAllowed)
}

func TestSaveRejectsOversizedPayload(t *testing.T) {
	m := newLocalManager(t)

	big := make([]byte, MaxFileSize+1)
	_, err := m.Save(context.Background(), "big.pdf", "application/pdf", big, "")
	assert.ErrorIs(t, err, ErrTooLarge)
}

func TestSaveGeneratesUniqueFilenameKeepingExtension(t *testing.T) {
	m := newLocalManager(t)
	data := encodeTestImage(t, 100, 80, "jpeg")

	a, err := m.Save(context.Background(), "photo.JPG", "image/jpeg", data, "")
	require.NoError(t, err)
	b, err := m.Save(context.Background(), "photo.JPG", "image/jpeg", data, "")
	require.NoError(t, err)

	assert.NotEqual(t, a.Filename, b.Filename)
	assert.True(t, strings.HasSuffix(a.Filename, ".jpg"))
	assert.Equal(t, "photo.JPG", a.OriginalFilename)
	assert.Equal(t, PublicPath+"/"+a.Filename, a.URL)
}

func TestSaveResizesOversizedImage(t *testing.T) {
	m := newLocalManager(t)
	data := encodeTestImage(t, 2400, 1200, "jpeg")

	info, err := m.Save(context.Background(), "big.jpg", "image/jpeg", data, "")
	require.NoError(t, err)

	files, err := m.List(context.Background(), "")
	require.NoError(t, err)
	require.Len(t, files, 1)
	assert.Equal(t, info.Filename, files[0].Filename)

	img, err := imaging.Decode(bytes.NewReader(data))
	require.NoError(t, err)
	assert.Equal(t, 2400, img.Bounds().Dx())

	resized, err := optimizeImage(data, "image/jpeg")
	require.NoError(t, err)
	out, err := imaging.Decode(bytes.NewReader(resized))
	require.NoError(t, err)
	assert.LessOrEqual(t, out.Bounds().Dx(), 1920)
	assert.LessOrEqual(t, out.Bounds().Dy(), 1920)
}

func TestOptimizeImageKeepsSmallImagesFormat(t *testing.T) {
	data := encodeTestImage(t, 100, 100, "png")

	out, err := optimizeImage(data, "image/png")
	require.NoError(t, err)

	_, format, err := image.Decode(bytes.NewReader(out))
	require.NoError(t, err)
	assert.Equal(t, "png", format)
}

func TestSaveKeepsOriginalBytesWhenDecodeFails(t *testing.T) {
	m := newLocalManager(t)
	garbage := []byte("not actually an image")

	info, err := m.Save(context.Background(), "fake.png", "image/png", garbage, "")
	require.NoError(t, err)
	assert.Equal(t, int64(len(garbage)), info.Size)
}

func TestSaveIntoSubfolder(t *testing.T) {
	m := newLocalManager(t)
	data := encodeTestImage(t, 50, 50, "jpeg")

	info, err := m.Save(context.Background(), "p.jpg", "image/jpeg", data, "avatars")
	require.NoError(t, err)
	assert.Equal(t, PublicPath+"/avatars/"+info.Filename, info.URL)

	files, err := m.List(context.Background(), "avatars")
	require.NoError(t, err)
	require.Len(t, files, 1)

	root, err := m.List(context.Background(), "")
	require.NoError(t, err)
	assert.Empty(t, root)
}

func TestSaveRejectsTraversalSubfolder(t *testing.T) {
	m := newLocalManager(t)
	data := encodeTestImage(t, 10, 10, "jpeg")

	_, err := m.Save(context.Background(), "p.jpg", "image/jpeg", data, "../escape")
	assert.Error(t, err)
}

func TestDeleteRefusesTraversalNames(t *testing.T) {
	m := newLocalManager(t)

	for _, name := range []string{"", "..", "a/b.jpg", `a\b.jpg`} {
		removed, err := m.Delete(context.Background(), name, "")
		require.NoError(t, err)
		assert.False(t, removed, "name %q", name)
	}
}

func TestDeleteRemovesStoredFile(t *testing.T) {
	m := newLocalManager(t)
	data := encodeTestImage(t, 10, 10, "jpeg")

	info, err := m.Save(context.Background(), "p.jpg", "image/jpeg", data, "")
	require.NoError(t, err)

	removed, err := m.Delete(context.Background(), info.Filename, "")
	require.NoError(t, err)
	assert.True(t, removed)

	removed, err = m.Delete(context.Background(), info.Filename, "")
	require.NoError(t, err)
	assert.False(t, removed)
}

func TestListMissingSubfolderIsEmpty(t *testing.T) {
	m := newLocalManager(t)

	files, err := m.List(context.Background(), "nothing-here")
	require.NoError(t, err)
	assert.Empty(t, files)
}
