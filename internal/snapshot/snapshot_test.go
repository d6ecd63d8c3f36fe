package snapshot

import (
	"bytes"
	"context"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/image/tiff"

	"github.com/gogpu/gg-gauge/canvas"
)

func testPixmap() *canvas.Pixmap {
	dc := canvas.NewContext(8, 6)
	dc.SetColor(canvas.RGB(1, 0, 0))
	dc.DrawRectangle(0, 0, 4, 6)
	dc.Fill()
	return dc.Pixmap()
}

func TestFormatFromPath(t *testing.T) {
	tests := map[string]Format{
		"":          PNG,
		"-":         PNG,
		"out.png":   PNG,
		"OUT.PNG":   PNG,
		"out.tif":   TIFF,
		"out.tiff":  TIFF,
		"a/b/c.png": PNG,
	}
	for in, want := range tests {
		got, err := FormatFromPath(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}
	_, err := FormatFromPath("out.jpg")
	assert.ErrorIs(t, err, ErrUnsupportedFormat)
}

func TestEncodePNG(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Encode(&buf, testPixmap(), PNG))

	img, err := png.Decode(&buf)
	require.NoError(t, err)
	r, _, _, a := img.At(1, 1).RGBA()
	assert.Equal(t, uint32(0xffff), r)
	assert.Equal(t, uint32(0xffff), a)
	_, _, _, a = img.At(6, 1).RGBA()
	assert.Equal(t, uint32(0), a)
}

func TestEncodeTIFF(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Encode(&buf, testPixmap(), TIFF))

	img, err := tiff.Decode(&buf)
	require.NoError(t, err)
	assert.Equal(t, 8, img.Bounds().Dx())
	r, _, _, a := img.At(2, 3).RGBA()
	assert.Equal(t, uint32(0xffff), r)
	assert.Equal(t, uint32(0xffff), a)
}

func TestWriteStreamToFile(t *testing.T) {
	f, err := os.Create(filepath.Join(t.TempDir(), "stream.png"))
	require.NoError(t, err)
	defer f.Close()

	// A regular file is not a terminal.
	require.NoError(t, WriteStream(f, testPixmap(), PNG))
	st, err := f.Stat()
	require.NoError(t, err)
	assert.Positive(t, st.Size())
}

func TestDirSink(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "frames")
	sink := DirSink{Dir: dir}
	ctx := context.Background()

	require.NoError(t, sink.Frame(ctx, 1, testPixmap()))
	require.NoError(t, sink.Frame(ctx, 2, testPixmap()))

	assert.Equal(t, filepath.Join(dir, "frame-00002.png"), sink.Path(2))
	assert.FileExists(t, sink.Path(1))
	assert.FileExists(t, sink.Path(2))

	tsink := DirSink{Dir: dir, Prefix: "rot-", Format: TIFF}
	require.NoError(t, tsink.Frame(ctx, 7, testPixmap()))
	assert.FileExists(t, filepath.Join(dir, "rot-00007.tiff"))
}

func TestDirSinkCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	err := DirSink{Dir: t.TempDir()}.Frame(ctx, 1, testPixmap())
	assert.ErrorIs(t, err, context.Canceled)
}

func TestWriteFileUnsupported(t *testing.T) {
	err := WriteFile(filepath.Join(t.TempDir(), "x.bmp"), testPixmap())
	assert.ErrorIs(t, err, ErrUnsupportedFormat)
}
