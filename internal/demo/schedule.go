package demo

import (
	"fmt"
	"math"

	"github.com/Uaq907/estateflow-sub002/internal/core"
)

// generateLeases synthesizes exactly one lease per occupied unit along
// with its payment schedule, and back-fills the unit's lease end date and
// next payment due date. Tenant links fall back to the seed catalog when
// no tenants were generated, so references always resolve against the
// full dataset.
func (g *Generator) generateLeases(units []core.Unit, tenants []core.Tenant) ([]core.Lease, []core.LeasePayment) {
	if len(tenants) == 0 {
		tenants = SeedTenants()
	}

	var leases []core.Lease
	var payments []core.LeasePayment
	for i := range units {
		unit := &units[i]
		if unit.Status != core.UnitStatusOccupied || unit.ActiveLeaseID == nil {
			continue
		}

		tenant := tenants[g.rng.Intn(len(tenants))]
		durationMonths := leaseDurationsMonths[g.rng.Intn(len(leaseDurationsMonths))]

		// The payment interval never exceeds the lease duration.
		frequency := g.pick(paymentFrequencies)
		for core.FrequencyMonths(frequency) > durationMonths {
			frequency = g.pick(paymentFrequencies)
		}

		start := g.daysAgo(3 * 365)
		end := start.AddDate(0, durationMonths, 0)
		status := core.LeaseStatusExpired
		if end.After(g.now) {
			status = core.LeaseStatusActive
		}

		classification := core.ClassificationResidential
		if unit.BusinessName != "" {
			classification = core.ClassificationCommercial
		}

		total := unit.Rent * float64(durationMonths)
		lease := core.Lease{
			ID:               *unit.ActiveLeaseID,
			TenantID:         tenant.ID,
			PropertyID:       unit.PropertyID,
			UnitID:           unit.ID,
			StartDate:        start,
			EndDate:          end,
			MonthlyRent:      unit.Rent,
			DepositAmount:    unit.Rent * 2,
			PaymentFrequency: frequency,
			Classification:   classification,
			Status:           status,
			TotalLeaseAmount: total,
			TotalPaidAmount:  math.Floor(g.rng.Float64() * total),
			CreatedAt:        g.now,
			UpdatedAt:        g.now,
		}

		schedule := g.generateSchedule(&lease)
		lease.PaymentsCount = len(schedule)
		payments = append(payments, schedule...)
		leases = append(leases, lease)

		unit.LeaseEndDate = &lease.EndDate
		for _, p := range schedule {
			if p.Status == core.PaymentStatusPending {
				due := p.DueDate
				unit.NextPaymentDueDate = &due
				break
			}
		}
	}
	return leases, payments
}

// generateSchedule builds the installment sequence: one payment per
// frequency interval across the lease term, clamped to [3, 36] payments.
func (g *Generator) generateSchedule(lease *core.Lease) []core.LeasePayment {
	freqMonths := core.FrequencyMonths(lease.PaymentFrequency)
	durationDays := lease.EndDate.Sub(lease.StartDate).Hours() / 24
	n := int(math.Ceil(durationDays / float64(freqMonths*30)))
	if n < minPaymentsPerLease {
		n = minPaymentsPerLease
	}
	if n > maxPaymentsPerLease {
		n = maxPaymentsPerLease
	}

	amount := lease.MonthlyRent * float64(freqMonths)
	payments := make([]core.LeasePayment, 0, n)
	for i := 0; i < n; i++ {
		due := lease.StartDate.AddDate(0, i*freqMonths, 0)
		p := core.LeasePayment{
			ID:        fmt.Sprintf("%s-payment-%d", lease.ID, i+1),
			LeaseID:   lease.ID,
			Amount:    amount,
			DueDate:   due,
			CreatedAt: g.now,
			UpdatedAt: g.now,
		}

		switch {
		case due.Before(g.now):
			switch r := g.rng.Float64(); {
			case r < probPastPaid:
				p.Status = core.PaymentStatusPaid
			case r < probPastPaid+probPastOverdue:
				p.Status = core.PaymentStatusOverdue
			case r < probPastPaid+probPastOverdue+probPastPartial:
				p.Status = core.PaymentStatusPartial
			default:
				p.Status = core.PaymentStatusCancelled
			}
		case due.Before(g.now.AddDate(0, 0, 7)):
			if g.chance(probUpcomingPaid) {
				p.Status = core.PaymentStatusPaid
			} else {
				p.Status = core.PaymentStatusPending
			}
		default:
			p.Status = core.PaymentStatusPending
		}

		if p.Status == core.PaymentStatusPaid || p.Status == core.PaymentStatusPartial {
			paid := due.AddDate(0, 0, g.rng.Intn(5)+1)
			if paid.After(g.now) {
				// Settled ahead of an upcoming due date.
				paid = g.now.AddDate(0, 0, -g.rng.Intn(3))
			}
			p.PaidDate = &paid
			p.PaymentMethod = g.pick(paymentMethods)
		}
		payments = append(payments, p)
	}
	return payments
}
