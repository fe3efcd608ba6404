package adapter

import (
	"github.com/goccy/go-json"
)

// JSON wraps encoding so identity payloads and published events can be
// marshalled through a mockable seam
//
//go:generate mockgen -source=json.go -destination=../mocks/json.go -package=mocks -mock_names=JSON=MockJSON
type JSON interface {
	Marshal(v interface{}) ([]byte, error)
	Unmarshal(data []byte, v interface{}) error
}

type goJSON struct{}

// NewJSON creates a JSON implementation backed by goccy/go-json
func NewJSON() JSON {
	return goJSON{}
}

func (goJSON) Marshal(v interface{}) ([]byte, error) {
	return json.Marshal(v)
}

// Unmarshal treats an empty body as a no-op
func (goJSON) Unmarshal(data []byte, v interface{}) error {
	if len(data) == 0 {
		return nil
	}
	return json.Unmarshal(data, v)
}
