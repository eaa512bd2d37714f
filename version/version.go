// version.go
package version

// AppName holds the name of the application
var AppName = "go-graph-api-session"

// Version holds the current version of the application
var Version = "0.1.0"

// GetAppName returns the name of the application
func GetAppName() string {
	return AppName
}

// GetVersion returns the current version of the application
func GetVersion() string {
	return Version
}

// GetUserAgentHeader returns the User-Agent string for clients built by this module.
func GetUserAgentHeader() string {
	return AppName + "/" + Version
}
