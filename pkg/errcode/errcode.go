package errcode

import (
	"github.com/gnames/gn"
)

const (
	UnknownError gn.ErrorCode = iota

	// File System errors
	CreateDirError
	CopyFileError
	ReadFileError

	// Logging errors
	CreateLogFileError

	// Query errors
	InvalidQueryError

	// Reference index errors
	ReferenceFileNotFoundError
	ReferenceReadError
	ReferenceFormatError

	// GBIF errors
	TaxonResolutionError
	OccurrenceFetchError
	NoOccurrencesError

	// Matching errors
	NoMatchedSpeciesError

	// Cache errors
	CacheOpenError
	CacheReadError
	CacheWriteError

	// Report errors
	ReportClientError

	// Archive errors
	DBConnectionError
	DBNotConnectedError
	SchemaGORMConnectionError
	SchemaMigrateError
	ArchiveSaveError
)
