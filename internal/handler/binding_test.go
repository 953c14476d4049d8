package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"content-site-api/internal/validator"
)

func TestStringList_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    StringList
		wantErr bool
	}{
		{"array", `["a","b"]`, StringList{"a", "b"}, false},
		{"comma separated", `"a, b ,c"`, StringList{"a", "b", "c"}, false},
		{"empty string", `""`, StringList{}, false},
		{"null", `null`, nil, false},
		{"number", `7`, nil, true},
		{"mixed array", `["a",1]`, nil, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got StringList
			err := json.Unmarshal([]byte(tt.input), &got)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFlexBool_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		input string
		want  FlexBool
	}{
		{`true`, true},
		{`false`, false},
		{`"true"`, true},
		{`"false"`, false},
		{`"yes"`, false},
	}

	for _, tt := range tests {
		var got FlexBool
		require.NoError(t, json.Unmarshal([]byte(tt.input), &got), tt.input)
		assert.Equal(t, tt.want, got, tt.input)
	}

	var b FlexBool
	assert.Error(t, json.Unmarshal([]byte(`[]`), &b))
}

func TestFlexNumber_UnmarshalJSON(t *testing.T) {
	var n FlexNumber
	require.NoError(t, json.Unmarshal([]byte(`12.5`), &n))
	require.NotNil(t, n.Value)
	assert.Equal(t, 12.5, *n.Value)

	require.NoError(t, json.Unmarshal([]byte(`"3000"`), &n))
	assert.Equal(t, 3000.0, *n.Value)

	require.NoError(t, json.Unmarshal([]byte(`""`), &n))
	assert.Nil(t, n.Value)

	assert.Error(t, json.Unmarshal([]byte(`"abc"`), &n))
}

func TestParseDeadline(t *testing.T) {
	got, err := parseDeadline("2025-03-01")
	require.NoError(t, err)
	assert.True(t, got.Equal(time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)))

	got, err = parseDeadline("2025-03-01T08:30:00+02:00")
	require.NoError(t, err)
	assert.True(t, got.Equal(time.Date(2025, 3, 1, 6, 30, 0, 0, time.UTC)))

	got, err = parseDeadline("  ")
	require.NoError(t, err)
	assert.Nil(t, got)

	_, err = parseDeadline("03/01/2025")
	assert.True(t, validator.IsValidationError(err))
}

func TestLimitMultipart(t *testing.T) {
	contextFor := func(req *http.Request) *gin.Context {
		c, _ := gin.CreateTestContext(httptest.NewRecorder())
		c.Request = req
		return c
	}

	t.Run("body past the cap is rejected while parsing", func(t *testing.T) {
		req := multipartRequest(t, http.MethodPost, "/", [][2]string{{"title", "Big"}},
			"big.png", make([]byte, testUploadMax+multipartOverhead+1))

		err := limitMultipart(contextFor(req), testUploadMax)
		require.True(t, validator.IsValidationError(err))
		assert.Contains(t, err.Error(), "exceeds")
	})

	t.Run("body under the cap leaves the form readable", func(t *testing.T) {
		req := multipartRequest(t, http.MethodPost, "/", [][2]string{{"title", "Small"}}, "s.png", []byte("png"))
		c := contextFor(req)

		require.NoError(t, limitMultipart(c, testUploadMax))
		assert.Equal(t, "Small", c.PostForm("title"))
		_, err := c.FormFile(imageField)
		assert.NoError(t, err)
	})

	t.Run("broken multipart body", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader("not a multipart body"))
		req.Header.Set("Content-Type", "multipart/form-data; boundary=xyz")

		err := limitMultipart(contextFor(req), testUploadMax)
		require.True(t, validator.IsValidationError(err))
		assert.Contains(t, err.Error(), "could not read")
	})

	t.Run("json bodies pass untouched", func(t *testing.T) {
		req := jsonRequest(t, http.MethodPost, "/", map[string]any{"title": "T"})

		assert.NoError(t, limitMultipart(contextFor(req), testUploadMax))
	})
}
