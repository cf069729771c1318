package common

import (
	"encoding/json"
	"io"
	"math/rand"
	"net/http"
)

var letterRunes = []rune("abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789")

func RandStringRunes(n int) string {
	b := make([]rune, n)
	for i := range b {
		b[i] = letterRunes[rand.Intn(len(letterRunes))]
	}
	return string(b)
}

func ParseReqBody(body io.ReadCloser, v interface{}) error {
	return json.NewDecoder(body).Decode(v)
}

// WriteMsg writes a `{"message": ...}` response with the given status code.
func WriteMsg(w http.ResponseWriter, msg string, status int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	//nolint:errcheck
	json.NewEncoder(w).Encode(struct {
		Message string `json:"message"`
	}{msg})
}

func WriteRespJSON(w http.ResponseWriter, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	//nolint:errcheck
	json.NewEncoder(w).Encode(v)
}

// WriteData writes the standard dashboard payload envelope.
func WriteData(w http.ResponseWriter, data interface{}, msg string) {
	WriteRespJSON(w, struct {
		Data    interface{} `json:"data"`
		Message string      `json:"message"`
	}{data, msg})
}
