package api

import "errors"

var (
	// ErrUnavailable indicates the FitFinder service could not be reached.
	ErrUnavailable = errors.New("fitfinder service unreachable")

	// ErrTimeout indicates the request exceeded the configured timeout.
	ErrTimeout = errors.New("fitfinder request timed out")

	// ErrBadResponse indicates the response body could not be decoded.
	ErrBadResponse = errors.New("malformed fitfinder response")
)

// StatusError is returned for non-2xx responses. Message carries the
// server-supplied explanation when the body included one.
type StatusError struct {
	Code    int
	Message string
}

func (e *StatusError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return fallbackMessage(e.Code)
}

// fallbackMessage maps an HTTP status class to a generic user-facing message
// used when the server supplied none.
func fallbackMessage(code int) string {
	switch {
	case code >= 500:
		return "서버에 일시적인 문제가 발생했어요. 잠시 후 다시 시도해 주세요."
	case code >= 400:
		return "요청을 처리할 수 없어요. 설문 내용을 확인해 주세요."
	default:
		return "알 수 없는 오류가 발생했어요."
	}
}

// UserMessage converts any client error into a message fit for the UI,
// preferring server-provided text.
func UserMessage(err error) string {
	var se *StatusError
	switch {
	case err == nil:
		return ""
	case errors.As(err, &se):
		return se.Error()
	case errors.Is(err, ErrTimeout):
		return "응답이 너무 늦어요. 네트워크 상태를 확인해 주세요."
	case errors.Is(err, ErrUnavailable):
		return "서버에 연결할 수 없어요. 잠시 후 다시 시도해 주세요."
	default:
		return "알 수 없는 오류가 발생했어요."
	}
}
