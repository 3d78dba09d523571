package httpapi

import (
	"bytes"
	"context"
	"fmt"
	"mime/multipart"
)

// multipartBody accumulates form fields and file parts for the endpoints
// that take multipart uploads.
type multipartBody struct {
	buf bytes.Buffer
	w   *multipart.Writer
	err error
}

func newMultipartBody() *multipartBody {
	m := &multipartBody{}
	m.w = multipart.NewWriter(&m.buf)
	return m
}

func (m *multipartBody) field(name, value string) {
	if m.err != nil {
		return
	}
	m.err = m.w.WriteField(name, value)
}

func (m *multipartBody) file(name, filename string, data []byte) {
	if m.err != nil {
		return
	}
	part, err := m.w.CreateFormFile(name, filename)
	if err != nil {
		m.err = err
		return
	}
	_, m.err = part.Write(data)
}

func (m *multipartBody) close() error {
	if m.err != nil {
		return fmt.Errorf("build multipart body: %w", m.err)
	}
	return m.w.Close()
}

// submitMultipart finalizes the body and issues the request.
func (c *Client) submitMultipart(ctx context.Context, method, path string, m *multipartBody, out any) error {
	if err := m.close(); err != nil {
		return err
	}
	req, err := c.newRequest(ctx, method, path, &m.buf, m.w.FormDataContentType())
	if err != nil {
		return err
	}
	return c.do(req, out)
}
