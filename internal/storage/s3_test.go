package storage

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubS3 points the client at a local endpoint using path-style
// addressing, so the request path carries bucket and key.
func stubS3(srvURL string) *S3Uploader {
	client := s3.New(s3.Options{
		Region:       "us-east-1",
		Credentials:  credentials.NewStaticCredentialsProvider("test-key", "test-secret", ""),
		BaseEndpoint: aws.String(srvURL),
		UsePathStyle: true,
	})
	return &S3Uploader{
		client: client,
		bucket: "evidence",
		region: "us-east-1",
		now:    fixedClock,
	}
}

func TestS3Upload(t *testing.T) {
	var gotMethod, gotPath string

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		gotPath = r.URL.Path
		w.Header().Set("ETag", `"d41d8cd98f"`)
	}))
	defer srv.Close()

	u := stubS3(srv.URL)

	url, err := u.Upload(context.Background(), []byte("jpeg-bytes"), "foto.png", "prueba-imagenes")
	require.NoError(t, err)

	assert.Equal(t, http.MethodPut, gotMethod)

	// Path-style: /<bucket>/<dated folder>/<uuid><ext>
	assert.True(t, strings.HasPrefix(gotPath, "/evidence/prueba-imagenes/03/semana_11/"), "path %q", gotPath)
	assert.True(t, strings.HasSuffix(gotPath, ".png"), "path %q", gotPath)

	key := strings.TrimPrefix(gotPath, "/evidence/")
	assert.Equal(t, "https://evidence.s3.us-east-1.amazonaws.com/"+key, url)
}

func TestS3Upload_DefaultsExtension(t *testing.T) {
	var gotPath string

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
	}))
	defer srv.Close()

	u := stubS3(srv.URL)

	_, err := u.Upload(context.Background(), []byte("x"), "sin-extension", "notas")
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(gotPath, "/evidence/notas/03/semana_11/"), "path %q", gotPath)
	assert.True(t, strings.HasSuffix(gotPath, ".jpg"), "path %q", gotPath)
}

func TestS3Upload_ServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "<Error><Code>AccessDenied</Code></Error>", http.StatusForbidden)
	}))
	defer srv.Close()

	u := stubS3(srv.URL)

	_, err := u.Upload(context.Background(), []byte("x"), "foto.jpg", "prueba-imagenes")
	require.ErrorIs(t, err, ErrUpload)
}
