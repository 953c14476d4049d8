package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"content-site-api/internal/mocks"
	"content-site-api/internal/validator"
)

func init() {
	gin.SetMode(gin.TestMode)
}

const (
	testID        = "2b5e8c1a-4d3f-4a6b-9c8d-7e6f5a4b3c2d"
	testUploadMax = 1024
)

type stubPinger struct{ err error }

func (p stubPinger) Ping(context.Context) error { return p.err }

type testAPI struct {
	router   *gin.Engine
	contacts *mocks.MockContactService
	blogs    *mocks.MockBlogService
	jobs     *mocks.MockJobService
	products *mocks.MockProductService
	chat     *mocks.MockChatService
}

func newTestAPI(t *testing.T) *testAPI {
	api := &testAPI{
		router:   gin.New(),
		contacts: mocks.NewMockContactService(t),
		blogs:    mocks.NewMockBlogService(t),
		jobs:     mocks.NewMockJobService(t),
		products: mocks.NewMockProductService(t),
		chat:     mocks.NewMockChatService(t),
	}
	RegisterRoutes(api.router, Handlers{
		Contact: NewContactHandler(api.contacts),
		Blog:    NewBlogHandler(api.blogs, testUploadMax),
		Job:     NewJobHandler(api.jobs),
		Product: NewProductHandler(api.products, testUploadMax),
		Chat:    NewChatHandler(api.chat),
		Health:  NewHealthHandler(stubPinger{}),
	})
	return api
}

func (a *testAPI) do(req *http.Request) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	a.router.ServeHTTP(w, req)
	return w
}

func jsonRequest(t *testing.T, method, path string, body any) *http.Request {
	t.Helper()
	var buf bytes.Buffer
	if s, ok := body.(string); ok {
		buf.WriteString(s)
	} else {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	return req
}

// multipartRequest builds a multipart form; a non-empty imageName attaches a file.
func multipartRequest(t *testing.T, method, path string, fields [][2]string, imageName string, image []byte) *http.Request {
	t.Helper()
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	for _, f := range fields {
		require.NoError(t, w.WriteField(f[0], f[1]))
	}
	if imageName != "" {
		part, err := w.CreateFormFile(imageField, imageName)
		require.NoError(t, err)
		_, err = part.Write(image)
		require.NoError(t, err)
	}
	require.NoError(t, w.Close())

	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", w.FormDataContentType())
	return req
}

func decodeMessage(t *testing.T, w *httptest.ResponseRecorder) string {
	t.Helper()
	var body ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body.Message
}

func validationErr() error {
	return validator.NewFieldError("name", "name_required", "name_required")
}
