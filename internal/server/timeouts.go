package server

import "time"

const (
	// Story generation holds the response open while the model streams, so
	// the write timeout leaves room for the 30s model budget.
	readTimeout  = 10 * time.Second
	writeTimeout = 60 * time.Second
	idleTimeout  = 60 * time.Second
)

// shutdownTimeout remains a var for tests to override.
var shutdownTimeout = 10 * time.Second
