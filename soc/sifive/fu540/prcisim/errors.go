package prcisim

import "errors"

var (
	ErrMissing   = errors.New("milestone missing from trace")
	ErrOrder     = errors.New("milestones out of order")
	ErrValue     = errors.New("unexpected register value")
	ErrCount     = errors.New("unexpected number of accesses")
	ErrRules     = errors.New("bring-up rules are cyclic")
	ErrBadConfig = errors.New("invalid scenario")
)
