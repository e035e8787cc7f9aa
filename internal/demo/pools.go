package demo

// Sampling pools for the demo data synthesizer. These are fixed inputs:
// generators pick from them uniformly unless a probability constant below
// says otherwise.

var (
	firstNames = []string{
		"Ahmed", "Mohammed", "Khalid", "Omar", "Saeed", "Rashid", "Hamdan",
		"Fatima", "Aisha", "Mariam", "Noora", "Layla", "Sara", "Hessa",
		"John", "Michael", "David", "James", "Robert", "Anna", "Maria",
		"Priya", "Ravi", "Arjun", "Deepa", "Imran", "Zainab", "Yusuf",
	}

	lastNames = []string{
		"Al Maktoum", "Al Nahyan", "Al Qasimi", "Al Falasi", "Al Suwaidi",
		"Khan", "Sharma", "Patel", "Kumar", "Hussain", "Mansoor",
		"Smith", "Johnson", "Williams", "Brown", "Fernandes", "D'Souza",
	}

	departments = []string{
		"Property Management", "Finance", "Legal", "Maintenance",
		"Leasing", "Customer Service", "Administration",
	}

	positions = []string{
		"Property Manager", "Accountant", "Leasing Agent", "Legal Advisor",
		"Maintenance Supervisor", "Receptionist", "Operations Manager",
		"Collections Officer",
	}

	nationalities = []string{
		"UAE", "India", "Pakistan", "Egypt", "Jordan", "Philippines",
		"United Kingdom", "Lebanon", "Syria", "Bangladesh",
	}

	companyNames = []string{
		"Falcon Holdings", "Oasis Investments", "Marina Developments",
		"Gulf Gate Properties", "Desert Rose Group", "Pearl Estates",
		"Horizon Capital", "Palm Crown Investments",
	}

	propertyNames = []string{
		"Marina Heights", "Palm Residence", "Golden Tower", "Sunset Plaza",
		"Oasis Court", "Pearl Building", "Desert View Complex",
		"Creek Side Tower", "Jasmine Villas", "Crown Business Center",
	}

	propertyTypes  = []string{"Apartment Building", "Villa Compound", "Office Tower", "Mixed Use", "Retail Center"}
	propertyCities = []string{"Dubai", "Abu Dhabi", "Sharjah", "Ajman", "Ras Al Khaimah"}
	propertyAreas  = []string{"Al Barsha", "Deira", "Jumeirah", "Al Nahda", "Downtown", "Al Qusais", "Marina"}

	unitTypes = []string{"Studio", "Apartment", "Villa", "Office", "Shop", "Warehouse"}

	businessNames = []string{
		"Sunrise Trading LLC", "Blue Ocean Cafe", "Star Tailoring",
		"Golden Spoon Restaurant", "City Pharmacy", "Express Laundry",
	}

	expenseCategories = []string{
		"Maintenance", "Utilities", "Cleaning", "Security", "Landscaping",
		"Insurance", "Government Fees",
	}

	expenseDescriptions = []string{
		"AC compressor replacement", "Common area deep cleaning",
		"Annual fire system inspection", "Elevator service contract",
		"Water tank cleaning", "Facade painting", "Pest control treatment",
		"DEWA bill settlement", "Security guard services",
		"Garden maintenance", "Chiller maintenance",
	}

	assetNames      = []string{"HVAC Unit", "Elevator", "Backup Generator", "Water Pump", "CCTV System", "Fire Alarm Panel", "Access Control System"}
	assetCategories = []string{"Mechanical", "Electrical", "Safety", "Security"}
	assetStatuses   = []string{"Operational", "Under Repair", "Retired"}
	assetBrands     = []string{"Carrier", "Daikin", "Otis", "Schindler", "Honeywell", "Siemens", "Bosch"}

	paymentMethods = []string{"Bank Transfer", "Cheque", "Cash", "Credit Card"}

	banks = []string{
		"Emirates NBD", "First Abu Dhabi Bank", "Abu Dhabi Commercial Bank",
		"Dubai Islamic Bank", "Mashreq Bank", "RAKBANK",
	}
)

// Sizing constants.
const (
	// DefaultCount is the record count used when callers pass zero.
	DefaultCount = 50

	// seedEntryCount is the number of hand-authored records per seeded
	// entity type. Generated ids start right after them.
	seedEntryCount = 3

	// chequeCount is fixed regardless of the requested record count.
	chequeCount = 1000

	// minPaymentsPerLease and maxPaymentsPerLease clamp a lease's
	// payment schedule length.
	minPaymentsPerLease = 3
	maxPaymentsPerLease = 36

	// minOccupancyRatio is the fraction of a property's units forced
	// into Occupied status (at least one unit).
	minOccupancyRatio = 0.3
)

// Probability constants. Tests assert distribution shape against these,
// never exact draws.
const (
	probEmployeeActive  = 0.9
	probEmployeeLogin   = 0.5
	probEmployeeManager = 0.6
	probTenantActive    = 0.9
	probBusinessTenant  = 0.25
	probExpenseNotes    = 0.3

	// Past-due lease payment outcome split.
	probPastPaid    = 0.70
	probPastOverdue = 0.15
	probPastPartial = 0.10
	// Remainder is Cancelled.

	// Payments due within the next week.
	probUpcomingPaid = 0.30

	// Non-forced unit status split.
	probUnitAvailable = 0.65
	probUnitReserved  = 0.15
	// Remainder is Under Maintenance.

	// Partially paid cheques cover between 30% and 90% of the amount.
	chequePartialMin = 0.3
	chequePartialMax = 0.9
)

var leaseDurationsMonths = []int{6, 12, 24, 36}

var paymentFrequencies = []string{"Monthly", "Quarterly", "Semi-Annual", "Annual"}

// chequeAmountRanges maps a cheque type to its [min, max) amount range.
var chequeAmountRanges = map[string][2]float64{
	"Rent":             {3000, 15000},
	"Security Deposit": {6000, 20000},
	"Maintenance":      {500, 5000},
	"Commission":       {1000, 8000},
	"Other":            {200, 3000},
}
