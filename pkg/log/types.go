package log

// ZapConfig configures the zap-backed logger.
type ZapConfig struct {
	Level        string // debug, info, warn, error, dpanic, panic, fatal
	Mode         string // "production" or anything else for development
	Encoding     string // "json" or "console"
	ColorEnabled bool
}

const (
	ModeProduction  = "production"
	EncodingJSON    = "json"
	EncodingConsole = "console"

	// ctxKeyRequestID is read from the context and attached to every entry when present.
	ctxKeyRequestID ctxKey = "request_id"
)

type ctxKey string
