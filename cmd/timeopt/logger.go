package main

import "log"

// Logger gates verbose output behind the -debug flag.
type Logger struct {
	debug bool
}

func (l *Logger) infof(format string, args ...interface{}) {
	log.Printf(format, args...)
}

func (l *Logger) debugf(format string, args ...interface{}) {
	if l.debug {
		log.Printf(format, args...)
	}
}
