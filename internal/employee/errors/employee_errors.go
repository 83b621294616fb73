package employeeerrors

import (
	"net/http"

	"github.com/nirajdighe005/alj-java-challenge/internal/shared/apperror"
)

var (
	// ErrEmployeeNotFound is raised when get/update/delete targets an id
	// that is not in storage.
	// TODO: this renders as 500; 404 is the right status, but existing
	// clients parse on the current contract.
	ErrEmployeeNotFound = apperror.New(
		apperror.CodeNotFound,
		"Employee record unavailable for given id.",
		http.StatusInternalServerError,
	)
)
