package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"mime/multipart"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"content-site-api/internal/domain"
	"content-site-api/internal/validator"
)

// StringList accepts either a JSON array of strings or a single
// comma-separated string.
type StringList []string

func (l *StringList) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*l = nil
		return nil
	}
	var csv string
	if err := json.Unmarshal(data, &csv); err == nil {
		*l = domain.SplitList(csv)
		return nil
	}
	var items []string
	if err := json.Unmarshal(data, &items); err != nil {
		return errors.New("expected a string or an array of strings")
	}
	*l = items
	return nil
}

// FlexBool accepts a JSON boolean or a string; only the string "true" is true.
type FlexBool bool

func (b *FlexBool) UnmarshalJSON(data []byte) error {
	var v bool
	if err := json.Unmarshal(data, &v); err == nil {
		*b = FlexBool(v)
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return errors.New("expected a boolean")
	}
	*b = FlexBool(s == "true")
	return nil
}

// FlexNumber accepts a JSON number or a numeric string. An empty string
// counts as absent.
type FlexNumber struct {
	Value *float64
}

func (n *FlexNumber) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		n.Value = nil
		return nil
	}
	var f float64
	if err := json.Unmarshal(data, &f); err == nil {
		n.Value = &f
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return errors.New("expected a number")
	}
	v, err := parseOptionalFloat(s)
	if err != nil {
		return err
	}
	n.Value = v
	return nil
}

func isJSONRequest(c *gin.Context) bool {
	return c.ContentType() == gin.MIMEJSON
}

func isMultipartRequest(c *gin.Context) bool {
	return c.ContentType() == gin.MIMEMultipartPOSTForm
}

func bindJSON(c *gin.Context, dst any) error {
	if err := c.ShouldBindJSON(dst); err != nil {
		return validator.NewFieldError("body", "invalid_body", "malformed request body: "+err.Error())
	}
	return nil
}

func parseOptionalFloat(s string) (*float64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return nil, fmt.Errorf("%q is not a number", s)
	}
	return &f, nil
}

// parseDeadline accepts RFC 3339 timestamps and plain dates. An empty value
// means no deadline.
func parseDeadline(s string) (*time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}
	for _, layout := range []string{TimeFormat, DateFormat} {
		if t, err := time.Parse(layout, s); err == nil {
			return &t, nil
		}
	}
	return nil, validator.NewFieldError("applicationDeadline", "invalid_deadline",
		"applicationDeadline must be an RFC 3339 timestamp or a YYYY-MM-DD date")
}

// formList collects a list field sent as repeated values or as "field[]".
// Each form value is comma-separated text.
func formList(c *gin.Context, field string) []string {
	values := c.PostFormArray(field)
	values = append(values, c.PostFormArray(field+"[]")...)

	out := []string{}
	for _, v := range values {
		out = append(out, domain.SplitList(v)...)
	}
	return out
}

// formBool reads a form flag; only "true" is true. ok is false when the
// field is absent.
func formBool(c *gin.Context, field string) (value, ok bool) {
	raw, ok := c.GetPostForm(field)
	return raw == "true", ok
}

// multipartOverhead is the room left for text fields and part headers on top
// of the image limit.
const multipartOverhead = 1 << 20

// limitMultipart caps a multipart body before anything reads it and parses
// the form under that cap.
func limitMultipart(c *gin.Context, maxSize int64) error {
	if !isMultipartRequest(c) || maxSize <= 0 {
		return nil
	}

	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxSize+multipartOverhead)
	if _, err := c.MultipartForm(); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			return validator.NewFieldError(imageField, "image_too_large",
				fmt.Sprintf("image exceeds the %d byte limit", maxSize))
		}
		return validator.NewFieldError(imageField, "invalid_upload", "could not read multipart form")
	}
	return nil
}

// readImage opens the optional image upload. It returns nil when the request
// carries no file. The caller closes the returned file.
func readImage(c *gin.Context, maxSize int64) (*domain.MediaFile, multipart.File, error) {
	if !isMultipartRequest(c) {
		return nil, nil, nil
	}

	header, err := c.FormFile(imageField)
	if errors.Is(err, http.ErrMissingFile) {
		return nil, nil, nil
	}
	if err != nil {
		return nil, nil, validator.NewFieldError(imageField, "invalid_upload", "could not read uploaded image")
	}
	if maxSize > 0 && header.Size > maxSize {
		return nil, nil, validator.NewFieldError(imageField, "image_too_large",
			fmt.Sprintf("image exceeds the %d byte limit", maxSize))
	}

	file, err := header.Open()
	if err != nil {
		return nil, nil, fmt.Errorf("open uploaded image: %w", err)
	}

	return &domain.MediaFile{
		Filename:    header.Filename,
		ContentType: header.Header.Get("Content-Type"),
		Size:        header.Size,
		Content:     file,
	}, file, nil
}

func closeUpload(f multipart.File) {
	if f != nil {
		_ = f.Close()
	}
}
