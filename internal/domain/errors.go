package domain

import "errors"

var (
	ErrInvalidPatch      = errors.New("invalid patch identifier")
	ErrChampionNotFound  = errors.New("champion not found")
	ErrPatchDataNotFound = errors.New("no data for champion in patch")
)
