// Package repository provides CRUD access to the persisted entity
// collections. Every mutation rewrites the whole collection through the
// store; at this entity volume the simplicity beats incremental writes.
package repository

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/sirupsen/logrus"

	"dfontes/server/internal/store"
)

func defaultLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetFormatter(&logrus.JSONFormatter{})
	logger.SetOutput(os.Stdout)
	return logger
}

// writeCollection serializes v and rewrites the value under key.
func writeCollection(st store.Store, key string, v interface{}) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("failed to serialize %s: %w", key, err)
	}
	if err := st.Set(key, string(data)); err != nil {
		return fmt.Errorf("failed to persist %s: %w", key, err)
	}
	return nil
}
