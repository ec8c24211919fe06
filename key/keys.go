// Package key lists the configuration keys understood by malkit.
package key

// Service connection.
const (
	MalBaseURL              = "mal.base_url"
	MalUsername             = "mal.username"
	MalTimeout              = "mal.timeout"
	MalReconnectOnNoContent = "mal.reconnect_on_no_content"
)

// Transport tuning.
const (
	NetworkTLSFingerprint = "network.tls_fingerprint"
	NetworkAllowInsecure  = "network.allow_insecure"
)

const (
	SearchShowQuerySuggestions = "search.show_query_suggestions"
	SearchWrapWidth            = "search.wrap_width"
)

// Logging.
const (
	LogsWrite = "logs.write"
	LogsLevel = "logs.level"
	LogsJson  = "logs.json"
)

const (
	CliColored = "cli.colored"
)
