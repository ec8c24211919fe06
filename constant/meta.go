// Package constant holds the application identifiers shared by every other package.
package constant

const (
	// App names the binary, the config file and the per-user directories.
	App = "malkit"

	Version = "0.3.0"

	// UserAgent is sent with every request to the list service.
	UserAgent = App + "/" + Version
)
