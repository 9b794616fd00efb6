package civic

import (
	"log"
	"time"
)

// logRequest logs an API request being made.
func logRequest(provider, method, url string, params map[string]interface{}) {
	if len(params) > 0 {
		log.Printf("[%s] %s %s params=%v", provider, method, url, params)
	} else {
		log.Printf("[%s] %s %s", provider, method, url)
	}
}

// logResponse logs an API response received.
func logResponse(provider string, statusCode int, duration time.Duration, resultCount int) {
	log.Printf("[%s] response status=%d duration=%dms results=%d",
		provider, statusCode, duration.Milliseconds(), resultCount)
}

// logError logs an error from an API operation.
func logError(provider, operation string, err error) {
	log.Printf("[%s] %s error: %v", provider, operation, err)
}
