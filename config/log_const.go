package config

const (
	LogErrorColor = "\033[31m"
	LogInfoColor  = "\033[32m"
	LogColorReset = "\033[0m"
)

// Color constants for component log prefixes
const (
	ColorBlue  = "\033[34m"
	ColorCyan  = "\033[36m"
	ColorReset = "\033[0m"
)
