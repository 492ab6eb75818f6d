package services

import "errors"

var (
	ErrEntryNotFound      = errors.New("journal entry not found")
	ErrFolderNotFound     = errors.New("journal folder not found")
	ErrFolderNameRequired = errors.New("folder name is required")
	ErrUnsupportedMedia   = errors.New("unsupported media kind")
)
