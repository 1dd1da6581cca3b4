package render

import (
	"bytes"
	"errors"
	"image"
	"image/color"
	"image/jpeg"
	"image/png"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/ledongthuc/pdf"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Raj6773/Resume/resume/model"
)

var fixedTime = time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

func fixedOptions() Options {
	opts := DefaultOptions()
	opts.CreatedAt = fixedTime
	return opts
}

func extractText(t *testing.T, data []byte) (string, int) {
	t.Helper()
	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	require.NoError(t, err)
	plain, err := reader.GetPlainText()
	require.NoError(t, err)
	var buf bytes.Buffer
	_, err = io.Copy(&buf, plain)
	require.NoError(t, err)
	return buf.String(), reader.NumPage()
}

func testPNG(t *testing.T, w, h int) []byte {
	t.Helper()
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, color.NRGBA{R: uint8(x), G: uint8(y), B: 200, A: 255})
		}
	}
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

func testJPEG(t *testing.T, w, h int) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, color.RGBA{R: 40, G: uint8(x), B: uint8(y), A: 255})
		}
	}
	var buf bytes.Buffer
	require.NoError(t, jpeg.Encode(&buf, img, nil))
	return buf.Bytes()
}

func TestRenderResumeProducesSinglePage(t *testing.T) {
	out, err := RenderResume(janeDoe(), fixedOptions())
	require.NoError(t, err)
	require.True(t, bytes.HasPrefix(out, []byte("%PDF")), "unexpected header %q", out[:8])

	text, pages := extractText(t, out)
	assert.Equal(t, 1, pages)

	ordered := []string{
		"Jane Doe", "jane@x.com", "1234567890",
		"Skills", "Go", "Testing",
		"Hobbies",
		"Experience", "Backend Engineer", "Acme | 2020-2023",
		"Education", "Degree", "Institution", "Year", "Percentage",
		"BSc", "State University", "2019", "88",
	}
	last := -1
	for _, want := range ordered {
		idx := strings.Index(text[last+1:], want)
		require.GreaterOrEqual(t, idx, 0, "missing %q after offset %d in %q", want, last, text)
		last += 1 + idx
	}
}

func TestRenderUncompressedCoordinates(t *testing.T) {
	opts := fixedOptions()
	opts.Compress = false
	out, err := RenderResume(janeDoe(), opts)
	require.NoError(t, err)

	assert.Contains(t, string(out), "50.00 750.00 Td (Name: Jane Doe) Tj")
	assert.Contains(t, string(out), "50.00 730.00 Td (Email: jane@x.com) Tj")
	assert.Contains(t, string(out), "60.00 630.00 Td (\x95 Go) Tj")
	assert.Contains(t, string(out), "200.00 410.00 Td (State University) Tj")
	assert.NotContains(t, string(out), "/Subtype /Image")
}

func TestRenderIsDeterministic(t *testing.T) {
	first, err := RenderResume(janeDoe(), fixedOptions())
	require.NoError(t, err)
	second, err := RenderResume(janeDoe(), fixedOptions())
	require.NoError(t, err)
	assert.True(t, bytes.Equal(first, second), "identical input rendered different bytes")
}

func TestRenderIsDeterministicWithImage(t *testing.T) {
	images := map[string][]byte{
		"png":         testPNG(t, 40, 40),
		"scaled png":  testPNG(t, 900, 300),
		"jpeg":        testJPEG(t, 64, 48),
		"scaled jpeg": testJPEG(t, 400, 1200),
	}
	for name, data := range images {
		t.Run(name, func(t *testing.T) {
			c := janeDoe()
			c.Image = &model.ProfileImage{FileName: "me", Data: data}

			first, err := RenderResume(c, fixedOptions())
			require.NoError(t, err)
			second, err := RenderResume(c, fixedOptions())
			require.NoError(t, err)
			assert.True(t, bytes.Equal(first, second), "identical input rendered different bytes")
		})
	}
}

func TestRenderFallsBackOutsideCP1252(t *testing.T) {
	c := janeDoe()
	c.Name = "José Zoë 李 😀"
	opts := fixedOptions()
	opts.Compress = false

	out, err := RenderResume(c, opts)
	require.NoError(t, err)
	// Latin-1 letters map to single cp1252 bytes; anything else becomes ".".
	assert.Contains(t, string(out), "50.00 750.00 Td (Name: Jos\xe9 Zo\xeb . .) Tj")
}

func TestRenderWritesToWriter(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Render(&buf, janeDoe(), fixedOptions()))
	direct, err := RenderResume(janeDoe(), fixedOptions())
	require.NoError(t, err)
	assert.Equal(t, direct, buf.Bytes())
}

func TestRenderEmbedsPNG(t *testing.T) {
	c := janeDoe()
	c.Image = &model.ProfileImage{FileName: "me.png", Data: testPNG(t, 40, 40)}
	opts := fixedOptions()
	opts.Compress = false

	out, err := RenderResume(c, opts)
	require.NoError(t, err)
	assert.Contains(t, string(out), "/Subtype /Image")

	_, pages := extractText(t, out)
	assert.Equal(t, 1, pages)
}

func TestRenderEmbedsJPEG(t *testing.T) {
	c := janeDoe()
	c.Image = &model.ProfileImage{FileName: "me.jpg", Data: testJPEG(t, 64, 48)}
	opts := fixedOptions()
	opts.Compress = false

	out, err := RenderResume(c, opts)
	require.NoError(t, err)
	assert.Contains(t, string(out), "/DCTDecode")
}

func TestRenderRejectsInvalidImage(t *testing.T) {
	c := janeDoe()
	c.Image = &model.ProfileImage{FileName: "me.gif", Data: []byte("GIF89a not really")}
	_, err := RenderResume(c, fixedOptions())
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInvalidImage))

	c.Image.Data = append([]byte{0x89, 0x50, 0x4E, 0x47, 0x0D, 0x0A, 0x1A, 0x0A}, []byte("truncated")...)
	_, err = RenderResume(c, fixedOptions())
	assert.True(t, errors.Is(err, ErrInvalidImage))
}

func TestRenderOverflowStaysOnOnePage(t *testing.T) {
	c := janeDoe()
	c.Skills = strings.Repeat("skill,", 30)
	for i := 0; i < model.MaxExperience; i++ {
		c.Experience = append(c.Experience, model.ExperienceEntry{Title: "Role", Company: "Co", Duration: "1y"})
	}

	out, err := RenderResume(c, fixedOptions())
	require.NoError(t, err)
	_, pages := extractText(t, out)
	assert.Equal(t, 1, pages)
}

func TestPrepareImageDownscales(t *testing.T) {
	img, err := prepareImage(testPNG(t, 1000, 500), 320)
	require.NoError(t, err)
	assert.Equal(t, imageTypePNG, img.Type)
	assert.Equal(t, 320, img.Width)
	assert.Equal(t, 160, img.Height)

	cfg, format, err := image.DecodeConfig(bytes.NewReader(img.Data))
	require.NoError(t, err)
	assert.Equal(t, "png", format)
	assert.Equal(t, 320, cfg.Width)
	assert.Equal(t, 160, cfg.Height)
}

func TestPrepareImageKeepsSmallJPEG(t *testing.T) {
	data := testJPEG(t, 80, 80)
	img, err := prepareImage(data, 320)
	require.NoError(t, err)
	assert.Equal(t, imageTypeJPG, img.Type)
	assert.Equal(t, data, img.Data)
}

func TestPrepareImageDownscalesJPEG(t *testing.T) {
	img, err := prepareImage(testJPEG(t, 200, 600), 300)
	require.NoError(t, err)
	assert.Equal(t, 100, img.Width)
	assert.Equal(t, 300, img.Height)
	assert.Equal(t, imageTypeJPG, SniffImageType(img.Data))
}

func TestSniffImageType(t *testing.T) {
	assert.Equal(t, imageTypePNG, SniffImageType(testPNG(t, 2, 2)))
	assert.Equal(t, imageTypeJPG, SniffImageType(testJPEG(t, 2, 2)))
	assert.Equal(t, "", SniffImageType([]byte("%PDF-1.4")))
	assert.Equal(t, "", SniffImageType(nil))
}

func TestFitWithin(t *testing.T) {
	cases := []struct{ w, h, limit, ew, eh int }{
		{100, 100, 320, 100, 100},
		{640, 320, 320, 320, 160},
		{320, 640, 320, 160, 320},
		{5000, 1, 320, 320, 1},
		{50, 50, 0, 50, 50},
	}
	for _, tc := range cases {
		w, h := fitWithin(tc.w, tc.h, tc.limit)
		assert.Equal(t, tc.ew, w)
		assert.Equal(t, tc.eh, h)
	}
}
