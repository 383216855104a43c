//go:build integration
// +build integration

package integration

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/linskybing/portal-go/pkg/response"
	"github.com/stretchr/testify/require"
)

// HTTPClient sends requests straight into the router as one signed-in user.
type HTTPClient struct {
	t      *testing.T
	router *gin.Engine
	token  string
}

func NewHTTPClient(t *testing.T, router *gin.Engine, token string) *HTTPClient {
	return &HTTPClient{t: t, router: router, token: token}
}

func (c *HTTPClient) JSON(method, path string, body any) *httptest.ResponseRecorder {
	c.t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(c.t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	return c.send(req)
}

func (c *HTTPClient) Upload(path, field, fileName string, content []byte) *httptest.ResponseRecorder {
	c.t.Helper()
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	part, err := mw.CreateFormFile(field, fileName)
	require.NoError(c.t, err)
	_, err = part.Write(content)
	require.NoError(c.t, err)
	require.NoError(c.t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, path, &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	return c.send(req)
}

func (c *HTTPClient) send(req *http.Request) *httptest.ResponseRecorder {
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}
	w := httptest.NewRecorder()
	c.router.ServeHTTP(w, req)
	return w
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out), w.Body.String())
	return out
}

// signUp registers an account and returns a client holding its token.
func signUp(t *testing.T, email, name string) (uint, *HTTPClient) {
	t.Helper()
	anon := NewHTTPClient(t, testCtx.Router, "")
	w := anon.JSON(http.MethodPost, "/api/auth/signup", gin.H{"email": email, "password": "password123", "name": name})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	w = anon.JSON(http.MethodPost, "/api/auth/signin", gin.H{"email": email, "password": "password123"})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	tok := decode[response.TokenResponse](t, w)
	return tok.UserID, NewHTTPClient(t, testCtx.Router, tok.Token)
}
