package web

import (
	"encoding/json"
	"net/http"
)

type ErrResult struct {
	Status int         `json:"status,omitempty"`
	Des    string      `json:"description,omitempty"`
	Data   interface{} `json:"data,omitempty"`
}

func toErrResult(status int, des string) []byte {
	b, _ := json.Marshal(&ErrResult{
		Status: status,
		Des:    des,
	})
	return b
}

func writeErr(w http.ResponseWriter, status int, err error) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	w.Write(toErrResult(status, err.Error()))
}

func writeJSON(w http.ResponseWriter, v interface{}) error {
	return json.NewEncoder(w).Encode(v)
}
