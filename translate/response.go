package translate

import (
	"encoding/json"
	"fmt"

	"github.com/tidwall/gjson"
)

// maxErrorBody caps how much of an unexpected body ends up in an error.
const maxErrorBody = 512

// decodeResponse inspects body for a top-level error object before decoding
// the data payload into out. The service reports some failures with a 200
// status, so the body decides, not the status code.
func decodeResponse(statusCode int, body []byte, out any) error {
	if !gjson.ValidBytes(body) {
		return &UnexpectedResponseError{StatusCode: statusCode, Body: excerpt(body)}
	}

	root := gjson.ParseBytes(body)
	if errNode := root.Get("error"); errNode.IsObject() {
		var svcErr ServiceError
		if err := json.Unmarshal([]byte(errNode.Raw), &svcErr); err != nil {
			return fmt.Errorf("failed to decode error response: %w", err)
		}
		return &svcErr
	}

	data := root.Get("data")
	if statusCode < 200 || statusCode > 299 || !data.Exists() {
		return &UnexpectedResponseError{StatusCode: statusCode, Body: excerpt(body)}
	}

	if err := json.Unmarshal([]byte(data.Raw), out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}

func excerpt(body []byte) string {
	if len(body) > maxErrorBody {
		return string(body[:maxErrorBody]) + "..."
	}
	return string(body)
}

// flattenDetections concatenates per-text guesses in input order.
func flattenDetections(perText [][]Detection) []Detection {
	n := 0
	for _, d := range perText {
		n += len(d)
	}
	out := make([]Detection, 0, n)
	for _, d := range perText {
		out = append(out, d...)
	}
	return out
}
