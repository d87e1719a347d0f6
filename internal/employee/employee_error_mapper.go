package employee

import (
	employeeerrors "go-hrdesk/internal/employee/errors"
	"go-hrdesk/internal/shared/dberror"
)

const employeeNumberConstraint = "uq_employees_employee_number"

func mapRepositoryError(err error) error {
	if err == nil {
		return nil
	}
	if dberror.IsUniqueViolation(err, employeeNumberConstraint) {
		return employeeerrors.ErrEmployeeNumberAlreadyExists
	}
	return dberror.Map(err, employeeerrors.ErrEmployeeNotFound)
}
