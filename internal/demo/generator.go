// Package demo synthesizes realistic demo records for the back office:
// a static hand-authored seed catalog plus count-sized generated
// collections with valid cross-entity links.
package demo

import (
	"fmt"
	"math"
	"math/rand"
	"strings"
	"time"

	"github.com/Uaq907/estateflow-sub002/internal/core"
)

// Dataset holds one slice per entity type, in generation dependency order.
type Dataset struct {
	Employees     []core.Employee     `json:"employees"`
	Owners        []core.Owner        `json:"owners"`
	Properties    []core.Property     `json:"properties"`
	Units         []core.Unit         `json:"units"`
	Tenants       []core.Tenant       `json:"tenants"`
	Expenses      []core.Expense      `json:"expenses"`
	Leases        []core.Lease        `json:"leases"`
	LeasePayments []core.LeasePayment `json:"lease_payments"`
	Assets        []core.Asset        `json:"assets"`
	Cheques       []core.Cheque       `json:"cheques"`
}

// Generator produces demo datasets from an injected random source. Output
// is fully reproducible given the same source state and reference time.
type Generator struct {
	rng *rand.Rand
	now time.Time
}

// NewGenerator returns a generator using rng and the current time as the
// reference "now" for all date arithmetic and status derivation.
func NewGenerator(rng *rand.Rand) *Generator {
	return NewGeneratorAt(rng, time.Now())
}

// NewGeneratorAt pins the reference time, making output byte-identical
// across invocations with equally-seeded sources.
func NewGeneratorAt(rng *rand.Rand, now time.Time) *Generator {
	return &Generator{rng: rng, now: now}
}

// Generate produces generated records only (no seed catalog entries).
// Seeded entity types get ids starting right after the catalog's, so a
// count smaller than the catalog size yields empty generated slices.
func Generate(count int) *Dataset {
	return NewGenerator(rand.New(rand.NewSource(time.Now().UnixNano()))).Generate(count)
}

// Full returns the seed catalog concatenated with Generate output.
func Full(count int) *Dataset {
	return NewGenerator(rand.New(rand.NewSource(time.Now().UnixNano()))).Full(count)
}

// Generate runs the entity generators in dependency order: owners and
// employees first, then properties and their units, tenants, the
// independent expense/asset collections, and finally leases, payment
// schedules and cheques.
func (g *Generator) Generate(count int) *Dataset {
	if count <= 0 {
		count = DefaultCount
	}

	d := &Dataset{}
	d.Employees = g.generateEmployees(count)
	d.Owners = g.generateOwners(count)
	d.Properties = g.generateProperties(count, d.Owners, d.Employees)
	for i := range d.Properties {
		d.Units = append(d.Units, g.generateUnits(&d.Properties[i])...)
	}
	d.Tenants = g.generateTenants(count)
	d.Expenses = g.generateExpenses(count, d.Properties, d.Employees)
	d.Assets = g.generateAssets(count, d.Properties, d.Units)
	d.Leases, d.LeasePayments = g.generateLeases(d.Units, d.Tenants)
	d.Cheques = g.generateCheques(d.Tenants, d.Owners, d.Employees)
	return d
}

// Full returns the static seed catalog with Generate(count) appended.
// Units and cheques come from generation only.
func (g *Generator) Full(count int) *Dataset {
	gen := g.Generate(count)
	full := Seed()
	full.Employees = append(full.Employees, gen.Employees...)
	full.Owners = append(full.Owners, gen.Owners...)
	full.Properties = append(full.Properties, gen.Properties...)
	full.Units = gen.Units
	full.Tenants = append(full.Tenants, gen.Tenants...)
	full.Expenses = append(full.Expenses, gen.Expenses...)
	full.Leases = append(full.Leases, gen.Leases...)
	full.LeasePayments = append(full.LeasePayments, gen.LeasePayments...)
	full.Assets = append(full.Assets, gen.Assets...)
	full.Cheques = gen.Cheques
	return full
}

// --- sampling helpers ---

func (g *Generator) pick(pool []string) string {
	return pool[g.rng.Intn(len(pool))]
}

// intBetween returns an integer in [min, max).
func (g *Generator) intBetween(min, max int) int {
	return min + g.rng.Intn(max-min)
}

// amountBetween returns a value in [min, max) rounded to whole dirhams.
func (g *Generator) amountBetween(min, max float64) float64 {
	return math.Floor(min + g.rng.Float64()*(max-min))
}

func (g *Generator) chance(p float64) bool {
	return g.rng.Float64() < p
}

func (g *Generator) fullName() string {
	return g.pick(firstNames) + " " + g.pick(lastNames)
}

func (g *Generator) daysAgo(maxDays int) time.Time {
	return g.now.AddDate(0, 0, -g.rng.Intn(maxDays))
}

func (g *Generator) phone() string {
	return fmt.Sprintf("+9715%08d", g.rng.Intn(100000000))
}

func emailFor(name string, n int) string {
	slug := strings.ToLower(strings.NewReplacer(" ", ".", "'", "").Replace(name))
	return fmt.Sprintf("%s.%d@estateflow.ae", slug, n)
}

// --- entity generators ---

func (g *Generator) generateEmployees(count int) []core.Employee {
	var employees []core.Employee
	for i := seedEntryCount + 1; i <= count; i++ {
		name := g.fullName()
		dob := g.now.AddDate(-g.intBetween(25, 55), 0, -g.rng.Intn(365))
		visaExpiry := g.now.AddDate(0, g.intBetween(1, 30), 0)
		insExpiry := g.now.AddDate(0, g.intBetween(1, 18), 0)
		status := core.StatusInactive
		if g.chance(probEmployeeActive) {
			status = core.StatusActive
		}

		emp := core.Employee{
			ID:                  fmt.Sprintf("%d", i),
			Name:                name,
			Email:               emailFor(name, i),
			Position:            g.pick(positions),
			Department:          g.pick(departments),
			StartDate:           g.daysAgo(5 * 365),
			AllowLogin:          g.chance(probEmployeeLogin),
			Permissions:         g.samplePermissions(),
			Phone:               g.phone(),
			EmiratesID:          fmt.Sprintf("784-%d-%07d-%d", dob.Year(), g.rng.Intn(10000000), g.rng.Intn(10)),
			PassportNumber:      fmt.Sprintf("%c%07d", 'A'+rune(g.rng.Intn(26)), g.rng.Intn(10000000)),
			DateOfBirth:         &dob,
			Status:              status,
			Nationality:         g.pick(nationalities),
			Salary:              g.amountBetween(4000, 25000),
			VisaNumber:          fmt.Sprintf("V-%d-%05d", g.now.Year(), g.rng.Intn(100000)),
			VisaExpiryDate:      &visaExpiry,
			InsuranceNumber:     fmt.Sprintf("INS-%05d", g.rng.Intn(100000)),
			InsuranceExpiryDate: &insExpiry,
			EmailNotifications:  true,
			SMSNotifications:    g.chance(0.5),
			Password:            "demo1234",
			CreatedAt:           g.now,
			UpdatedAt:           g.now,
		}

		// Later hires may report to an earlier generated employee.
		if len(employees) > 0 && g.chance(probEmployeeManager) {
			managerID := employees[g.rng.Intn(len(employees))].ID
			emp.ManagerID = &managerID
		}
		employees = append(employees, emp)
	}
	return employees
}

func (g *Generator) samplePermissions() []string {
	perms := []string{"properties:read", "tenants:read", "leases:read"}
	optional := []string{"tenants:write", "leases:write", "cheques:read", "cheques:write", "expenses:read", "expenses:write", "properties:write"}
	for _, p := range optional {
		if g.chance(0.4) {
			perms = append(perms, p)
		}
	}
	return perms
}

func (g *Generator) generateOwners(count int) []core.Owner {
	ownerTypes := []string{
		core.OwnerTypeIndividual,
		core.OwnerTypeCompany,
		core.OwnerTypeInvestmentGroup,
		core.OwnerTypeDeveloper,
	}

	var owners []core.Owner
	for i := seedEntryCount + 1; i <= count; i++ {
		ownerType := g.pick(ownerTypes)
		name := g.fullName()
		if ownerType != core.OwnerTypeIndividual {
			name = g.pick(companyNames)
		}
		owners = append(owners, core.Owner{
			ID:          fmt.Sprintf("%d", i),
			Name:        name,
			Email:       emailFor(name, i),
			Phone:       g.phone(),
			Type:        ownerType,
			Nationality: g.pick(nationalities),
			BankName:    g.pick(banks),
			BankAccount: fmt.Sprintf("AE%021d", g.rng.Int63n(1_000_000_000_000)),
			CreatedAt:   g.now,
			UpdatedAt:   g.now,
		})
	}
	return owners
}

func (g *Generator) generateProperties(count int, owners []core.Owner, employees []core.Employee) []core.Property {
	if len(owners) == 0 {
		owners = SeedOwners()
	}
	if len(employees) == 0 {
		employees = SeedEmployees()
	}

	var properties []core.Property
	for i := seedEntryCount + 1; i <= count; i++ {
		owner := owners[g.rng.Intn(len(owners))]
		purpose := "Residential"
		if g.chance(0.35) {
			purpose = "Commercial"
		}
		purchase := g.amountBetween(1_000_000, 20_000_000)
		properties = append(properties, core.Property{
			ID:            fmt.Sprintf("%d", i),
			Name:          fmt.Sprintf("%s %d", g.pick(propertyNames), i),
			Type:          g.pick(propertyTypes),
			Purpose:       purpose,
			Address:       fmt.Sprintf("Plot %d, Street %d", g.intBetween(1, 99), g.intBetween(1, 40)),
			City:          g.pick(propertyCities),
			Area:          g.pick(propertyAreas),
			TotalUnits:    g.intBetween(4, 21),
			OwnerID:       owner.ID,
			ManagerID:     employees[g.rng.Intn(len(employees))].ID,
			PurchaseValue: purchase,
			CurrentValue:  math.Floor(purchase * (0.9 + g.rng.Float64()*0.5)),
			CreatedAt:     g.now,
			UpdatedAt:     g.now,
			Owner:         &owner,
		})
	}
	return properties
}

// generateUnits builds a property's unit slice and enforces the minimum
// occupancy invariant: the first max(1, floor(0.3*totalUnits)) units are
// forced Occupied with a tenant name and a synthetic active lease id.
// Remaining units never carry tenant fields.
func (g *Generator) generateUnits(p *core.Property) []core.Unit {
	if p.TotalUnits <= 0 {
		p.OccupiedUnits = 0
		return nil
	}

	occupied := int(math.Floor(minOccupancyRatio * float64(p.TotalUnits)))
	if occupied < 1 {
		occupied = 1
	}
	p.OccupiedUnits = occupied

	var ownerName, ownerPhone string
	if p.Owner != nil {
		ownerName = p.Owner.Name
		ownerPhone = p.Owner.Phone
	}

	units := make([]core.Unit, 0, p.TotalUnits)
	for i := 1; i <= p.TotalUnits; i++ {
		rent := g.amountBetween(2500, 15000)
		unit := core.Unit{
			ID:         fmt.Sprintf("%s-%d", p.ID, i),
			PropertyID: p.ID,
			UnitNumber: fmt.Sprintf("%d%02d", (i-1)/4+1, i),
			Type:       g.pick(unitTypes),
			Rent:       rent,
			Price:      rent * float64(g.intBetween(150, 250)),
			Size:       g.amountBetween(400, 3000),
			Bedrooms:   g.rng.Intn(5),
			Bathrooms:  g.intBetween(1, 5),
			Floor:      (i-1)/4 + 1,
			OwnerID:    p.OwnerID,
			OwnerName:  ownerName,
			OwnerPhone: ownerPhone,
			CreatedAt:  g.now,
			UpdatedAt:  g.now,
		}

		if i <= occupied {
			leaseID := fmt.Sprintf("lease-%s-%d", p.ID, i)
			unit.Status = core.UnitStatusOccupied
			unit.TenantName = g.fullName()
			unit.ActiveLeaseID = &leaseID
			if p.Purpose == "Commercial" {
				unit.BusinessName = g.pick(businessNames)
			}
		} else {
			switch r := g.rng.Float64(); {
			case r < probUnitAvailable:
				unit.Status = core.UnitStatusAvailable
			case r < probUnitAvailable+probUnitReserved:
				unit.Status = core.UnitStatusReserved
			default:
				unit.Status = core.UnitStatusUnderMaintenance
			}
		}
		units = append(units, unit)
	}
	return units
}

func (g *Generator) generateTenants(count int) []core.Tenant {
	var tenants []core.Tenant
	for i := seedEntryCount + 1; i <= count; i++ {
		name := g.fullName()
		emiratesID := fmt.Sprintf("784-%d-%07d-%d", g.intBetween(1960, 2000), g.rng.Intn(10000000), g.rng.Intn(10))
		if g.chance(probBusinessTenant) {
			name = g.pick(businessNames)
			emiratesID = ""
		}
		status := core.StatusInactive
		if g.chance(probTenantActive) {
			status = core.StatusActive
		}
		tenants = append(tenants, core.Tenant{
			ID:             fmt.Sprintf("%d", i),
			Name:           name,
			Email:          emailFor(name, i),
			Phone:          g.phone(),
			EmiratesID:     emiratesID,
			PassportNumber: fmt.Sprintf("%c%07d", 'A'+rune(g.rng.Intn(26)), g.rng.Intn(10000000)),
			Nationality:    g.pick(nationalities),
			Status:         status,
			AllowLogin:     g.chance(0.3),
			CreatedAt:      g.now,
			UpdatedAt:      g.now,
		})
	}
	return tenants
}

func (g *Generator) generateExpenses(count int, properties []core.Property, employees []core.Employee) []core.Expense {
	if len(properties) == 0 {
		properties = SeedProperties()
	}
	if len(employees) == 0 {
		employees = SeedEmployees()
	}

	var expenses []core.Expense
	for i := 1; i <= count; i++ {
		var status string
		switch r := g.rng.Float64(); {
		case r < 0.4:
			status = core.ExpenseStatusPaid
		case r < 0.7:
			status = core.ExpenseStatusPending
		case r < 0.9:
			status = core.ExpenseStatusApproved
		default:
			status = core.ExpenseStatusRejected
		}

		notes := ""
		if g.chance(probExpenseNotes) {
			notes = "Recurring"
		}

		expenses = append(expenses, core.Expense{
			ID:          fmt.Sprintf("expense-%d", i),
			Description: g.pick(expenseDescriptions),
			Amount:      g.amountBetween(200, 15000),
			Category:    g.pick(expenseCategories),
			Status:      status,
			PropertyID:  properties[g.rng.Intn(len(properties))].ID,
			EmployeeID:  employees[g.rng.Intn(len(employees))].ID,
			Date:        g.daysAgo(365),
			Notes:       notes,
			CreatedAt:   g.now,
			UpdatedAt:   g.now,
		})
	}
	return expenses
}

// generateAssets links propertyId and unitId independently; a demo asset
// may reference a unit outside its property.
func (g *Generator) generateAssets(count int, properties []core.Property, units []core.Unit) []core.Asset {
	if len(properties) == 0 {
		properties = SeedProperties()
	}

	var assets []core.Asset
	for i := 1; i <= count; i++ {
		purchase := g.daysAgo(5 * 365)
		unitID := ""
		if len(units) > 0 && g.chance(0.4) {
			unitID = units[g.rng.Intn(len(units))].ID
		}
		assets = append(assets, core.Asset{
			ID:                 fmt.Sprintf("asset-%d", i),
			Name:               g.pick(assetNames),
			Category:           g.pick(assetCategories),
			Status:             g.pick(assetStatuses),
			PropertyID:         properties[g.rng.Intn(len(properties))].ID,
			UnitID:             unitID,
			PurchaseDate:       purchase,
			WarrantyExpiryDate: purchase.AddDate(3, 0, 0),
			PurchasePrice:      g.amountBetween(1000, 50000),
			SerialNumber:       fmt.Sprintf("SN-%06d", g.rng.Intn(1000000)),
			Brand:              g.pick(assetBrands),
			Model:              fmt.Sprintf("M-%d", g.intBetween(100, 999)),
			CreatedAt:          g.now,
			UpdatedAt:          g.now,
		})
	}
	return assets
}
