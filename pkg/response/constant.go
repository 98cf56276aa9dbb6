package response

const (
	// DateFormat is the wire format for dates.
	DateFormat = "2006-01-02"
	// DateTimeFormat is the wire format for datetimes.
	DateTimeFormat = "2006-01-02 15:04:05"
)

const (
	// CodeOK is the error_code for successful responses.
	CodeOK = 0
	// CodeInternal is the error_code for unexpected failures.
	CodeInternal = 500
)
