package ingestion

import "errors"

var (
	// ErrProtocolRepositoryRequired is returned when a protocol repository is not provided.
	ErrProtocolRepositoryRequired = errors.New("protocol repository required")

	// ErrCheckpointRepositoryRequired is returned when a checkpoint repository is not provided.
	ErrCheckpointRepositoryRequired = errors.New("checkpoint repository required")

	// ErrSourceRequired is returned when an import is started without a source name.
	ErrSourceRequired = errors.New("source name required")
)
