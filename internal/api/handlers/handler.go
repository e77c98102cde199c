package handlers

import (
	"net/http"
	"net/url"
	"strings"

	"github.com/gin-gonic/gin"

	"yelpcamp/internal/validation"
)

// multipartMemory matches gin's default for multipart forms
const multipartMemory = 32 << 20

// HandlerFunc is a request handler that reports failure by returning an error
type HandlerFunc func(c *gin.Context) error

// Wrap adapts fn to gin. A returned error is forwarded to the error responder
// and the remaining handlers are skipped.
func Wrap(fn HandlerFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := fn(c); err != nil {
			_ = c.Error(err)
			c.Abort()
		}
	}
}

// render answers with the named template, or with data as JSON when the
// client prefers it.
func render(c *gin.Context, status int, name string, data interface{}) {
	switch c.NegotiateFormat(gin.MIMEHTML, gin.MIMEJSON) {
	case gin.MIMEJSON:
		c.JSON(status, data)
	default:
		c.HTML(status, name, data)
	}
}

// bind decodes the body as JSON or form data depending on Content-Type
func bind(c *gin.Context, obj interface{}) error {
	form, err := formValues(c)
	if err != nil {
		return validation.FromBindError(err)
	}
	if form != nil {
		if err := validation.CheckForm(obj, form); err != nil {
			return err
		}
	}
	if err := c.ShouldBind(obj); err != nil {
		return validation.FromBindError(err)
	}
	return nil
}

// formValues parses a form body and removes blank fields, so that an empty
// input counts as missing instead of being bound as zero. It returns nil for
// non-form requests.
func formValues(c *gin.Context) (url.Values, error) {
	r := c.Request
	switch c.ContentType() {
	case gin.MIMEPOSTForm:
		if err := r.ParseForm(); err != nil {
			return nil, err
		}
	case gin.MIMEMultipartPOSTForm:
		if err := r.ParseMultipartForm(multipartMemory); err != nil && err != http.ErrNotMultipart {
			return nil, err
		}
	default:
		return nil, nil
	}

	dropBlank(r.Form)
	dropBlank(r.PostForm)
	if r.MultipartForm != nil {
		dropBlank(r.MultipartForm.Value)
	}
	return r.Form, nil
}

func dropBlank(values map[string][]string) {
	for key, vals := range values {
		blank := true
		for _, v := range vals {
			if strings.TrimSpace(v) != "" {
				blank = false
				break
			}
		}
		if blank {
			delete(values, key)
		}
	}
}
