package api

import (
	"bytes"
	"fmt"
	"io"
	"mime/multipart"
)

type multipartForm struct {
	buf bytes.Buffer
	w   *multipart.Writer
	err error
}

func newMultipart() *multipartForm {
	f := &multipartForm{}
	f.w = multipart.NewWriter(&f.buf)
	return f
}

func (f *multipartForm) field(name, value string) {
	if f.err != nil {
		return
	}
	f.err = f.w.WriteField(name, value)
}

func (f *multipartForm) file(name, filename string, r io.Reader) {
	if f.err != nil {
		return
	}
	part, err := f.w.CreateFormFile(name, filename)
	if err != nil {
		f.err = err
		return
	}
	_, f.err = io.Copy(part, r)
}

func (f *multipartForm) body() (*requestBody, error) {
	if f.err != nil {
		return nil, fmt.Errorf("api: encode form: %w", f.err)
	}
	if err := f.w.Close(); err != nil {
		return nil, fmt.Errorf("api: encode form: %w", err)
	}
	return &requestBody{contentType: f.w.FormDataContentType(), data: f.buf.Bytes()}, nil
}
