package project

import "errors"

var (
	// ErrParse indicates serialized input could not be decoded.
	ErrParse = errors.New("malformed project document")
	// ErrInvalidStructure indicates an imported document lacks required fields.
	ErrInvalidStructure = errors.New("invalid project structure")
	// ErrGeneration indicates the generation collaborator failed.
	ErrGeneration = errors.New("project generation failed")
	// ErrExport indicates serialization or download of the export failed.
	ErrExport = errors.New("project export failed")
	// ErrNoDocument indicates there is no active document.
	ErrNoDocument = errors.New("no active project")
	// ErrCanceled indicates the user declined a confirmation.
	ErrCanceled = errors.New("operation canceled")
	// ErrPersist indicates the persistence slot could not be written.
	ErrPersist = errors.New("persisting project failed")
	// ErrCoolingDown indicates generation was requested inside the cooldown.
	ErrCoolingDown = errors.New("project generation is cooling down")
	// ErrCreateInProgress indicates a generation request is already running.
	ErrCreateInProgress = errors.New("project generation already in progress")
)
