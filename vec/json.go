package vec

import (
	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

func (v *Vec[T]) MarshalJSON() ([]byte, error) {
	s := v.Slice()
	if s == nil {
		s = []T{}
	}
	return json.Marshal(s)
}

// UnmarshalJSON appends the elements of a JSON array.
func (v *Vec[T]) UnmarshalJSON(data []byte) error {
	var items []T
	if err := json.Unmarshal(data, &items); err != nil {
		return err
	}
	for i := range items {
		v.Push(items[i])
	}
	return nil
}
