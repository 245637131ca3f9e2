package validate

import (
	"encoding/base64"
	"strings"

	appErrors "github.com/openlearn/lms-gateway/pkg/errors"
)

// Image payload ceilings, in decoded bytes.
const (
	ProfileImageMaxBytes = 2 * 1024 * 1024
	TopicImageMaxBytes   = 5 * 1024 * 1024
	UploadMaxBytes       = 10 * 1024 * 1024
)

const (
	imagePrefix     = "data:image/"
	base64Separator = ";base64,"
)

// Image checks that the payload is a base64 data URI with an image MIME
// prefix and that its decoded size does not exceed limit. The limit is
// inclusive: a payload of exactly limit bytes passes.
func Image(dataURI string, limit int64) error {
	if !strings.HasPrefix(dataURI, imagePrefix) {
		return appErrors.Clone(appErrors.ErrValidation, "Image must be a base64-encoded data URI with an image MIME type")
	}

	idx := strings.Index(dataURI, base64Separator)
	if idx < 0 {
		return appErrors.Clone(appErrors.ErrValidation, "Image must be base64 encoded")
	}

	payload := dataURI[idx+len(base64Separator):]
	decoded, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return appErrors.Clone(appErrors.ErrValidation, "Image contains invalid base64 data")
	}

	if int64(len(decoded)) > limit {
		return appErrors.Clone(appErrors.ErrValidation, "Image exceeds the maximum allowed size")
	}

	return nil
}
