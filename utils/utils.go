package utils

import (
	"os"
	"os/signal"
	"strings"
	"syscall"
)

// ContainsString reports whether targetString is in sliceOfStrings, ignoring case
func ContainsString(targetString string, sliceOfStrings []string) bool {
	for i := range sliceOfStrings {
		if strings.EqualFold(sliceOfStrings[i], targetString) {
			return true
		}
	}
	return false
}

// GetSignalChannel returns a channel that receive interrupt or termination signals
func GetSignalChannel() chan os.Signal {
	signalChannel := make(chan os.Signal, 1)
	signal.Notify(signalChannel, os.Interrupt, syscall.SIGTERM)
	return signalChannel
}
