package mais

import (
	"encoding/json"
	"fmt"
	"net/http"
)

// decode interprets a raw response. When allow404 is set a 404 means
// the resource is absent: found is false and there is no error. Any
// other non-200 status becomes a StatusError. A 200 body carrying an
// "error" key becomes a PayloadError even though the HTTP status
// reports success; otherwise the body is unmarshaled into v.
func decode(resp *Response, allow404 bool, v any) (found bool, err error) {
	if allow404 && resp.StatusCode == http.StatusNotFound {
		return false, nil
	}
	if resp.StatusCode != http.StatusOK {
		return false, &StatusError{StatusCode: resp.StatusCode}
	}

	var probe struct {
		Error json.RawMessage `json:"error"`
	}
	if err := json.Unmarshal(resp.Body, &probe); err != nil {
		return false, fmt.Errorf("%w: %v", ErrInvalidResponse, err)
	}
	if len(probe.Error) > 0 {
		return false, &PayloadError{Body: string(resp.Body)}
	}

	if err := json.Unmarshal(resp.Body, v); err != nil {
		return false, fmt.Errorf("%w: %v", ErrInvalidResponse, err)
	}
	return true, nil
}
