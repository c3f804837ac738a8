package upload

import (
	"bytes"
	"mime/multipart"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAllowed(t *testing.T) {
	testCases := []struct {
		filename string
		allowed  bool
	}{
		{"photo.png", true},
		{"photo.JPG", true},
		{"scan.jpeg", true},
		{"anim.gif", true},
		{"resume.pdf", true},
		{"script.sh", false},
		{"page.html", false},
		{"binary.exe", false},
		{"noextension", false},
		{"", false},
	}

	for _, tc := range testCases {
		t.Run(tc.filename, func(t *testing.T) {
			assert.Equal(t, tc.allowed, Allowed(tc.filename))
		})
	}
}

func TestSanitizeName(t *testing.T) {
	testCases := []struct {
		in   string
		want string
	}{
		{"My Photo.PNG", "my-photo.png"},
		{"../../etc/passwd.png", "passwd.png"},
		{"report (final).pdf", "report-final.pdf"},
		{"ümlaut.jpg", "umlaut.jpg"},
		{"....png", "file.png"},
	}

	for _, tc := range testCases {
		t.Run(tc.in, func(t *testing.T) {
			assert.Equal(t, tc.want, SanitizeName(tc.in))
		})
	}
}

// newFileHeader builds a multipart.FileHeader carrying the given content.
func newFileHeader(t *testing.T, filename string, content []byte) *multipart.FileHeader {
	t.Helper()

	var body bytes.Buffer
	writer := multipart.NewWriter(&body)

	part, err := writer.CreateFormFile("file", filename)
	require.NoError(t, err)
	_, err = part.Write(content)
	require.NoError(t, err)
	require.NoError(t, writer.Close())

	req := httptest.NewRequest("POST", "/", &body)
	req.Header.Set("Content-Type", writer.FormDataContentType())

	require.NoError(t, req.ParseMultipartForm(1<<20))

	return req.MultipartForm.File["file"][0]
}

func TestSaveOverwrites(t *testing.T) {
	dir := t.TempDir()

	first := newFileHeader(t, "resume.pdf", []byte("first version"))
	path, err := Save(first, dir, "resume.pdf")
	require.NoError(t, err)
	assert.Equal(t, filepath.ToSlash(filepath.Join(dir, "resume.pdf")), path)

	second := newFileHeader(t, "resume.pdf", []byte("second version"))
	path2, err := Save(second, dir, "resume.pdf")
	require.NoError(t, err)
	assert.Equal(t, path, path2, "repeated uploads use the same fixed path")

	got, err := os.ReadFile(filepath.Join(dir, "resume.pdf"))
	require.NoError(t, err)
	assert.Equal(t, []byte("second version"), got, "latest upload wins")
}
