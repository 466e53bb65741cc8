package httperror

// Error is the response body for failed requests that do not return a resource.
type Error struct {
	Message string `json:"error" example:"the database is not reachable"`
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
