package httperror

// Error is the response body of a failed request.
type Error struct {
	Message string `json:"error" example:"the note memo must not be empty"`
}

func New(e error) Error {
	return Error{
		Message: e.Error(),
	}
}

func NewFromString(s string) Error {
	return Error{
		Message: s,
	}
}
