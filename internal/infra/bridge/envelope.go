package bridge

import (
	"encoding/json"
	"fmt"

	"github.com/taskdeck/taskdeck/internal/domain"
)

// envelope is the common response wrapper: every backend response carries
// a success boolean, and failures carry a human-readable error.
type envelope struct {
	Error   errorField `json:"error"`
	Success bool       `json:"success"`
}

// errorField tolerates both error encodings the backend produces: a bare
// string from tool handlers and a {code, message} object from the bridge
// layer in front of them.
type errorField struct {
	Code    string
	Message string
}

func (e *errorField) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		e.Message = s
		return nil
	}
	var obj struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	}
	if err := json.Unmarshal(data, &obj); err != nil {
		return err
	}
	e.Code = obj.Code
	e.Message = obj.Message
	return nil
}

// decodeEnvelope checks the success flag and, when the response is good,
// unmarshals the full payload into out (which may be nil for calls whose
// result is just the flag).
func decodeEnvelope(intent string, raw []byte, out any) error {
	var env envelope
	if err := json.Unmarshal(raw, &env); err != nil {
		return fmt.Errorf("%s: decode response: %w", intent, err)
	}
	if !env.Success {
		return domain.NewRemoteError(intent, env.Error.Message)
	}
	if out == nil {
		return nil
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("%s: decode result: %w", intent, err)
	}
	return nil
}
