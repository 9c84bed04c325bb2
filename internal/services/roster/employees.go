package roster

import (
	"context"
	"fmt"
	"net/mail"

	"github.com/UnknownOlympus/hestia/internal/models"
	"github.com/tamathecxder/randomail"
)

// SetupEmployees upserts the static roster into the employee master table and returns the number
// of records written. An employee without a valid contact email keeps the address already stored
// for them, or gets a generated placeholder. Any storage failure aborts the setup.
func (g *Generator) SetupEmployees(ctx context.Context) (int, error) {
	const opn = "Roster.SetupEmployees"
	log := g.initLogger(opn)

	var written int
	for _, employee := range g.employees {
		existing, exists := g.existingEmployee(ctx, employee.ID)

		if !isValidEmail(employee.Email) {
			if exists && isValidEmail(existing.Email) {
				employee.Email = existing.Email
			} else {
				log.DebugContext(ctx, "Email was not specified, generate random email", "employee", employee.Name)
				employee.Email = randomail.GenerateRandomEmail()
				g.metrics.EmailsGenerated.Inc()
			}
		}

		if exists && sameEmployee(existing, employee) {
			log.DebugContext(ctx, "employee is existed, skipped", "employee", employee.Name)
			continue
		}

		if err := g.employeeRepo.UpsertEmployee(ctx, employee); err != nil {
			return written, fmt.Errorf("failed to upsert employee '%s': %w", employee.Name, err)
		}
		written++
	}

	log.InfoContext(ctx, "Employee records are set up", "written", written, "roster", len(g.employees))
	return written, nil
}

func (g *Generator) existingEmployee(ctx context.Context, employeeID string) (models.Employee, bool) {
	employee, err := g.employeeRepo.GetEmployeeByID(ctx, employeeID)
	if err != nil {
		return models.Employee{}, false
	}
	return employee, true
}

func sameEmployee(left, right models.Employee) bool {
	return left.ID == right.ID &&
		left.Name == right.Name &&
		left.Position == right.Position &&
		left.HourlyRate.Equal(right.HourlyRate) &&
		left.Email == right.Email &&
		left.Active == right.Active
}

func isValidEmail(email string) bool {
	if email == "" {
		return false
	}
	_, err := mail.ParseAddress(email)
	return err == nil
}
