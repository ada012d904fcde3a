package testutils

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"

	"github.com/gin-gonic/gin"
)

// HTTPClient drives a gin engine in-process, optionally as a logged-in user.
type HTTPClient struct {
	router *gin.Engine
	token  string
}

func NewHTTPClient(router *gin.Engine, token string) *HTTPClient {
	return &HTTPClient{
		router: router,
		token:  token,
	}
}

type Response struct {
	StatusCode int
	Body       []byte
	Headers    http.Header
}

func (r *Response) DecodeJSON(v any) error {
	return json.Unmarshal(r.Body, v)
}

// FormFile is a file part of a multipart request.
type FormFile struct {
	Field    string
	Filename string
	Content  []byte
}

func (c *HTTPClient) do(method, path string, body io.Reader, contentType string) (*Response, error) {
	req, err := http.NewRequest(method, path, body)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	w := httptest.NewRecorder()
	c.router.ServeHTTP(w, req)

	return &Response{
		StatusCode: w.Code,
		Body:       w.Body.Bytes(),
		Headers:    w.Header(),
	}, nil
}

func (c *HTTPClient) GET(path string) (*Response, error) {
	return c.do(http.MethodGet, path, nil, "")
}

func (c *HTTPClient) DELETE(path string) (*Response, error) {
	return c.do(http.MethodDelete, path, nil, "")
}

func (c *HTTPClient) POST(path string, body any) (*Response, error) {
	return c.sendJSON(http.MethodPost, path, body)
}

func (c *HTTPClient) PUT(path string, body any) (*Response, error) {
	return c.sendJSON(http.MethodPut, path, body)
}

func (c *HTTPClient) sendJSON(method, path string, body any) (*Response, error) {
	if body == nil {
		return c.do(method, path, nil, "")
	}
	raw, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request body: %w", err)
	}
	return c.do(method, path, bytes.NewReader(raw), "application/json")
}

// Multipart sends fields and files as multipart/form-data.
func (c *HTTPClient) Multipart(method, path string, fields map[string]string, files ...FormFile) (*Response, error) {
	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)

	for key, value := range fields {
		if err := writer.WriteField(key, value); err != nil {
			return nil, fmt.Errorf("failed to write form field %s: %w", key, err)
		}
	}
	for _, f := range files {
		part, err := writer.CreateFormFile(f.Field, f.Filename)
		if err != nil {
			return nil, fmt.Errorf("failed to create form file %s: %w", f.Field, err)
		}
		if _, err := part.Write(f.Content); err != nil {
			return nil, err
		}
	}
	if err := writer.Close(); err != nil {
		return nil, fmt.Errorf("failed to close multipart writer: %w", err)
	}

	return c.do(method, path, body, writer.FormDataContentType())
}
