package controller

import (
	"net/http"

	"github.com/go-faster/jx"
)

// UnhandledErrorMessage is returned to clients for failures nobody handled.
const UnhandledErrorMessage = "Something went wrong!"

// WriteJSON writes an already encoded JSON body with the given status.
func WriteJSON(w http.ResponseWriter, status int, body []byte) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_, _ = w.Write(body)
}

// EncodeError encodes {"error": message}.
func EncodeError(message string) []byte {
	var e jx.Encoder
	e.Obj(func(e *jx.Encoder) {
		e.Field("error", func(e *jx.Encoder) { e.Str(message) })
	})

	return e.Bytes()
}

// WriteError writes {"error": message} with the given status.
func WriteError(w http.ResponseWriter, status int, message string) {
	WriteJSON(w, status, EncodeError(message))
}
