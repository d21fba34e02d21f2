package dto

// Envelope is the uniform response wrapper for every endpoint. Data is set
// on success, Error on failure; Details carries extra failure context and is
// withheld in production mode for internal errors.
type Envelope struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Error   string      `json:"error,omitempty"`
	Details string      `json:"details,omitempty"`
}

func OK(data interface{}) Envelope {
	return Envelope{Success: true, Data: data}
}

func Fail(msg string, details ...string) Envelope {
	e := Envelope{Success: false, Error: msg}
	if len(details) > 0 {
		e.Details = details[0]
	}
	return e
}
