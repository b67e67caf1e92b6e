package account

import "encoding/json"

// Encode serializes an account record to its stored JSON form.
func Encode(a *Account) ([]byte, error) {
	return json.Marshal(a)
}

// Decode parses a stored record. Callers treat a decode failure on a present
// record as data corruption, not as absence.
func Decode(data []byte) (*Account, error) {
	var a Account
	if err := json.Unmarshal(data, &a); err != nil {
		return nil, err
	}
	return &a, nil
}
