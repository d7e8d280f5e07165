package app

import "github.com/sirupsen/logrus"

// SetupLogging configures the shared logrus logger for the commands.
func SetupLogging(verbose bool) {
	logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	logrus.SetLevel(logrus.InfoLevel)
	if verbose {
		logrus.SetLevel(logrus.DebugLevel)
	}
}
