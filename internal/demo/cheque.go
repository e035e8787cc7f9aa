package demo

import (
	"fmt"
	"math"

	"github.com/Uaq907/estateflow-sub002/internal/core"
)

var chequeStatuses = []string{
	core.ChequeStatusSubmitted,
	core.ChequeStatusPending,
	core.ChequeStatusPartiallyPaid,
	core.ChequeStatusCleared,
	core.ChequeStatusBounced,
	core.ChequeStatusCancelled,
}

var chequeTypes = []string{
	core.ChequeTypeRent,
	core.ChequeTypeSecurityDeposit,
	core.ChequeTypeMaintenance,
	core.ChequeTypeCommission,
	core.ChequeTypeOther,
}

// generateCheques produces the fixed-size cheque collection. Tenant and
// creator links are sampled independently of the lease data: demo cheques
// reference plausible parties, not a consistent ledger.
func (g *Generator) generateCheques(tenants []core.Tenant, owners []core.Owner, employees []core.Employee) []core.Cheque {
	if len(tenants) == 0 {
		tenants = SeedTenants()
	}
	if len(owners) == 0 {
		owners = SeedOwners()
	}
	if len(employees) == 0 {
		employees = SeedEmployees()
	}

	cheques := make([]core.Cheque, 0, chequeCount)
	for i := 1; i <= chequeCount; i++ {
		status := g.pick(chequeStatuses)
		chequeType := g.pick(chequeTypes)
		bounds := chequeAmountRanges[chequeType]
		amount := g.amountBetween(bounds[0], bounds[1])

		issue := g.daysAgo(365)
		due := issue.AddDate(0, 0, g.rng.Intn(91))

		tenant := tenants[g.rng.Intn(len(tenants))]
		owner := owners[g.rng.Intn(len(owners))]
		creator := employees[g.rng.Intn(len(employees))]
		bankIdx := g.rng.Intn(len(banks))

		c := core.Cheque{
			ID:            fmt.Sprintf("cheque-%d", i),
			ChequeNumber:  fmt.Sprintf("CHQ-%06d", 100000+g.rng.Intn(900000)),
			Amount:        amount,
			IssueDate:     issue,
			DueDate:       due,
			Status:        status,
			Type:          chequeType,
			BankID:        fmt.Sprintf("bank-%d", bankIdx+1),
			BankName:      banks[bankIdx],
			PayeeID:       owner.ID,
			PayeeName:     owner.Name,
			TenantID:      tenant.ID,
			TenantName:    tenant.Name,
			CreatedByID:   creator.ID,
			CreatedByName: creator.Name,
			CreatedAt:     g.now,
			UpdatedAt:     g.now,
		}

		switch status {
		case core.ChequeStatusCleared:
			cleared := due.AddDate(0, 0, g.rng.Intn(4))
			c.PaidAmount = amount
			c.ClearedDate = &cleared
		case core.ChequeStatusPartiallyPaid:
			fraction := chequePartialMin + g.rng.Float64()*(chequePartialMax-chequePartialMin)
			c.PaidAmount = math.Floor(amount * fraction)
		case core.ChequeStatusBounced:
			bounced := due.AddDate(0, 0, g.rng.Intn(4))
			c.BouncedDate = &bounced
		}
		c.RemainingAmount = c.Amount - c.PaidAmount

		cheques = append(cheques, c)
	}
	return cheques
}
