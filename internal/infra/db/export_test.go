//go:build unit

package db

import "time"

func SetRetryBase(d time.Duration) func() {
	prev := retryBase
	retryBase = d
	return func() { retryBase = prev }
}
