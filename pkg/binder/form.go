package binder

import (
	"fmt"
	"mime"
	"net/http"
	"net/url"
)

// DefaultMaxMemory is the default maximum memory used for parsing multipart forms (10MB).
const DefaultMaxMemory = 10 << 20 // 10 MB

// FormValues returns the submitted form fields of a POST-like request.
// It accepts application/x-www-form-urlencoded, multipart/form-data and flat
// application/json bodies; query parameters are not included.
func FormValues(r *http.Request) (url.Values, error) {
	contentType := r.Header.Get("Content-Type")
	if contentType == "" {
		return nil, fmt.Errorf("%w: expected form or JSON body", ErrMissingContentType)
	}

	mediaType, _, err := mime.ParseMediaType(contentType)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnsupportedMediaType, err)
	}

	switch mediaType {
	case "application/x-www-form-urlencoded":
		if err := r.ParseForm(); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrFailedToParseForm, err)
		}
	case "multipart/form-data":
		if err := r.ParseMultipartForm(DefaultMaxMemory); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrFailedToParseForm, err)
		}
	case "application/json":
		return jsonValues(r)
	default:
		return nil, fmt.Errorf("%w: got %s, expected form or JSON body", ErrUnsupportedMediaType, mediaType)
	}

	return r.PostForm, nil
}
