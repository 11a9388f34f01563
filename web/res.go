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

func writeErr(w http.ResponseWriter, status int, des string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	w.Write(toErrResult(status, des))
}
