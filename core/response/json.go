package response

import (
	"encoding/json"
	"net/http"

	"github.com/dmitrymomot/routekit/core/handler"
)

// JSON responds 200 OK with v encoded as application/json.
// Encoding happens at construction time; a failure degrades to a plain 500
// so the pipeline always carries a valid response value.
func JSON(v any) handler.Response {
	return JSONWithStatus(v, http.StatusOK)
}

// JSONWithStatus creates an application/json response with custom status
// code. A zero status becomes 204 for nil data and 200 otherwise; for 204
// and 304 the body is dropped per HTTP semantics. nil data encodes as "null".
func JSONWithStatus(v any, status int) handler.Response {
	if status == 0 {
		if v == nil {
			status = http.StatusNoContent
		} else {
			status = http.StatusOK
		}
	}

	switch status {
	case http.StatusNoContent, http.StatusNotModified:
		return newBaseResponse(nil, status, "application/json; charset=utf-8")
	}

	data, err := json.Marshal(v)
	if err != nil {
		return StringWithStatus("response encoding failed: "+err.Error(), http.StatusInternalServerError)
	}
	return newBaseResponse(data, status, "application/json; charset=utf-8")
}
