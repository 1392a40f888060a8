// Package testutil provides utilities for testing
package testutil

import (
	"fmt"
	"math/rand"
	"time"
)

// RandomString generates a random string of given length
func RandomString(length int) string {
	const charset = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
	b := make([]byte, length)
	for i := range b {
		b[i] = charset[rand.Intn(len(charset))]
	}
	return string(b)
}

// RandomProjectName generates a unique mixed-case project name for testing
func RandomProjectName() string {
	return fmt.Sprintf("VrTest%s%d", RandomString(6), time.Now().UnixNano()%100000)
}

// RandomCompanyName returns a lower-case company identifier
func RandomCompanyName() string {
	names := []string{"acme", "initech", "globex", "umbrella", "hooli"}
	return names[rand.Intn(len(names))]
}

// RandomFailureCode returns a non-zero process exit code (1-255)
func RandomFailureCode() int {
	return 1 + rand.Intn(255)
}

// RandomMultiLineOutput generates random multi-line text
func RandomMultiLineOutput(lines int) string {
	result := ""
	for i := 0; i < lines; i++ {
		result += fmt.Sprintf("Line %d: %s\n", i+1, RandomString(20))
	}
	return result
}
