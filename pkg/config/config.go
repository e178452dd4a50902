package config

// this holds the resolved configuration values from CLI
var (
	LogLevel  string // sets the log level (zap log level values)
	LogFormat string // text vs json
	LogFilter string // zapfilter namespace patterns, empty means no filtering
)
