package apperror

// Error is the single failure type every pipeline step signals. It carries the
// HTTP status, the human-readable message, and the field error map populated
// only for validation failures.
type Error struct {
	Status  int
	Message string
	Fields  map[string]string
}

func (e *Error) Error() string {
	return e.Message
}

func Validation(fields map[string]string) *Error {
	return &Error{Status: 400, Message: "Validation Failure", Fields: fields}
}

func Unauthorized() *Error {
	return &Error{Status: 401, Message: "You are unauthorized to access this route"}
}

func Forbidden() *Error {
	return &Error{Status: 403, Message: "You are forbidden to access this route"}
}

func FunkoPopNotFound() *Error {
	return &Error{Status: 404, Message: "Sorry! Requested Funko Pop not found"}
}

func ReviewNotFound() *Error {
	return &Error{Status: 404, Message: "Sorry! Requested review not found"}
}

// InvalidResourceID covers identifiers that cannot address any record at all,
// as opposed to well-formed identifiers that simply match nothing.
func InvalidResourceID() *Error {
	return &Error{Status: 404, Message: "Sorry! You have provided an invalid resource ID"}
}

func InvalidLogin() *Error {
	return &Error{Status: 400, Message: "Invalid email or password"}
}

func UserAlreadyExists() *Error {
	return &Error{Status: 400, Message: "A user already exists with that email"}
}

func RouteNotFound() *Error {
	return &Error{Status: 404, Message: "Sorry! Route not found"}
}

func TokenGeneration() *Error {
	return &Error{Status: 500, Message: "Error generating JWT"}
}

func RateLimited() *Error {
	return &Error{Status: 429, Message: "Too many requests. Please try again later"}
}
