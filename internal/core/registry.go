package core

// ServiceRegistry holds all domain services
type ServiceRegistry struct {
	Auth      *AuthService
	Portfolio *PortfolioService
	Leasing   *LeasingService
	Cheques   *ChequeService
	Dashboard *DashboardService
}
