package response

// Envelope codes. Failures with an HTTPError carry its status code instead.
const (
	CodeOK      = 0
	CodeInvalid = 1

	MessageSuccess      = "Success"
	DefaultErrorMessage = "Something went wrong"
)
